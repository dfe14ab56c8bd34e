package model

// Status levels produced by threshold classification.
const (
	StatusOK       = "OK"
	StatusWarning  = "WARNING"
	StatusCritical = "CRITICAL"
)

// ProcessStat is one OS process as seen at collection time.
type ProcessStat struct {
	PID           int32    `json:"pid"`
	Name          string   `json:"name"`
	Cmdline       []string `json:"cmdline,omitempty"`
	CPUPercent    float64  `json:"cpu_percent"`
	MemoryPercent float64  `json:"memory_percent"`
	MemoryRSS     uint64   `json:"memory_rss"`
	Threads       int32    `json:"num_threads"`
	Status        string   `json:"status"`
}

// ProgramStat aggregates all processes sharing a program name.
// Name is unique within one snapshot and is the identity key for
// row diffing and expand-state lookup in the UI.
type ProgramStat struct {
	Name               string        `json:"name"`
	PIDs               []int32       `json:"pids"`
	PIDsCount          int           `json:"pids_count"`
	CPUPercentTotal    float64       `json:"cpu_percent_total"`
	MemoryPercentTotal float64       `json:"memory_percent_total"`
	MemoryRSS          uint64        `json:"memory_rss"`
	Threads            int32         `json:"threads"`
	Status             string        `json:"status"`
	CPUStatus          string        `json:"cpu_status"`
	MemStatus          string        `json:"mem_status"`
	Pinned             bool          `json:"pinned"`
	Processes          []ProcessStat `json:"processes"`
}
