package engine

import (
	"sort"

	"github.com/devia2025/progtop/model"
)

// Aggregate groups processes by derived program name and sums their
// resource usage. Member process lists are ordered by CPU descending,
// which is the order the UI reveals them in when a row is expanded.
// Output order is name-ascending; display ordering is the view's job.
func Aggregate(procs []model.ProcessStat, thresholds Thresholds) []model.ProgramStat {
	byName := make(map[string]*model.ProgramStat)

	for _, proc := range procs {
		key := ProgramName(proc.Name, proc.Cmdline)

		prog, ok := byName[key]
		if !ok {
			prog = &model.ProgramStat{Name: key, Status: model.StatusOK}
			byName[key] = prog
		}

		prog.PIDs = append(prog.PIDs, proc.PID)
		prog.PIDsCount++
		prog.CPUPercentTotal += proc.CPUPercent
		prog.MemoryPercentTotal += proc.MemoryPercent
		prog.MemoryRSS += proc.MemoryRSS
		if proc.Threads > 0 {
			prog.Threads += proc.Threads
		} else {
			prog.Threads++
		}
		prog.Processes = append(prog.Processes, proc)
	}

	programs := make([]model.ProgramStat, 0, len(byName))
	for _, prog := range byName {
		thresholds.Classify(prog)
		sort.SliceStable(prog.Processes, func(i, j int) bool {
			return prog.Processes[i].CPUPercent > prog.Processes[j].CPUPercent
		})
		programs = append(programs, *prog)
	}

	sort.Slice(programs, func(i, j int) bool {
		return programs[i].Name < programs[j].Name
	})
	return programs
}
