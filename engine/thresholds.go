package engine

import "github.com/devia2025/progtop/model"

// Thresholds holds warning/critical levels for aggregated program
// CPU and memory totals (percent).
type Thresholds struct {
	CPUWarning  float64
	CPUCritical float64
	MemWarning  float64
	MemCritical float64
}

// DefaultThresholds returns the stock levels.
func DefaultThresholds() Thresholds {
	return Thresholds{
		CPUWarning:  50,
		CPUCritical: 70,
		MemWarning:  50,
		MemCritical: 70,
	}
}

// level classifies a single value against a warning/critical pair.
func level(v, warn, crit float64) string {
	switch {
	case v >= crit:
		return model.StatusCritical
	case v >= warn:
		return model.StatusWarning
	default:
		return model.StatusOK
	}
}

// Classify sets CPUStatus, MemStatus, and the overall Status (the worse
// of the two) on a program from its aggregated totals.
func (t Thresholds) Classify(p *model.ProgramStat) {
	p.CPUStatus = level(p.CPUPercentTotal, t.CPUWarning, t.CPUCritical)
	p.MemStatus = level(p.MemoryPercentTotal, t.MemWarning, t.MemCritical)

	p.Status = model.StatusOK
	if p.CPUStatus == model.StatusWarning || p.MemStatus == model.StatusWarning {
		p.Status = model.StatusWarning
	}
	if p.CPUStatus == model.StatusCritical || p.MemStatus == model.StatusCritical {
		p.Status = model.StatusCritical
	}
}
