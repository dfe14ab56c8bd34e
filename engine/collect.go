package engine

import (
	"github.com/rs/zerolog/log"
	"github.com/shirou/gopsutil/v4/process"

	"github.com/devia2025/progtop/model"
)

// Collect enumerates OS processes and returns one ProcessStat per
// readable process. Per-process read errors (races with exit,
// permission limits) skip individual fields or processes — the
// snapshot degrades rather than fails.
func Collect() ([]model.ProcessStat, error) {
	procs, err := process.Processes()
	if err != nil {
		return nil, err
	}

	out := make([]model.ProcessStat, 0, len(procs))
	for _, p := range procs {
		name, err := p.Name()
		if err != nil {
			// Process likely exited mid-scan.
			continue
		}

		ps := model.ProcessStat{PID: p.Pid, Name: name}

		if cmdline, err := p.CmdlineSlice(); err == nil {
			ps.Cmdline = cmdline
		}
		if cpu, err := p.CPUPercent(); err == nil {
			ps.CPUPercent = cpu
		}
		if mem, err := p.MemoryPercent(); err == nil {
			ps.MemoryPercent = float64(mem)
		}
		if mi, err := p.MemoryInfo(); err == nil && mi != nil {
			ps.MemoryRSS = mi.RSS
		}
		if n, err := p.NumThreads(); err == nil {
			ps.Threads = n
		}
		if st, err := p.Status(); err == nil && len(st) > 0 {
			ps.Status = st[0]
		}

		out = append(out, ps)
	}

	if len(out) == 0 {
		log.Warn().Int("seen", len(procs)).Msg("process scan produced no readable processes")
	}
	return out, nil
}
