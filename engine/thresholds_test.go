package engine

import (
	"testing"

	"github.com/devia2025/progtop/model"
)

func TestClassify(t *testing.T) {
	th := DefaultThresholds() // cpu 50/70, mem 50/70

	tests := []struct {
		name      string
		cpu, mem  float64
		cpuStatus string
		memStatus string
		status    string
	}{
		{"all quiet", 10, 10, model.StatusOK, model.StatusOK, model.StatusOK},
		{"cpu at warning boundary", 50, 0, model.StatusWarning, model.StatusOK, model.StatusWarning},
		{"cpu at critical boundary", 70, 0, model.StatusCritical, model.StatusOK, model.StatusCritical},
		{"mem warning only", 0, 60, model.StatusOK, model.StatusWarning, model.StatusWarning},
		{"mem critical beats cpu warning", 55, 90, model.StatusWarning, model.StatusCritical, model.StatusCritical},
		{"both critical", 99, 99, model.StatusCritical, model.StatusCritical, model.StatusCritical},
		{"just under warning", 49.9, 49.9, model.StatusOK, model.StatusOK, model.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := model.ProgramStat{CPUPercentTotal: tt.cpu, MemoryPercentTotal: tt.mem}
			th.Classify(&p)
			if p.CPUStatus != tt.cpuStatus {
				t.Errorf("cpu_status = %q, want %q", p.CPUStatus, tt.cpuStatus)
			}
			if p.MemStatus != tt.memStatus {
				t.Errorf("mem_status = %q, want %q", p.MemStatus, tt.memStatus)
			}
			if p.Status != tt.status {
				t.Errorf("status = %q, want %q", p.Status, tt.status)
			}
		})
	}
}

func TestClassifyCustomThresholds(t *testing.T) {
	th := Thresholds{CPUWarning: 10, CPUCritical: 20, MemWarning: 10, MemCritical: 20}
	p := model.ProgramStat{CPUPercentTotal: 15}
	th.Classify(&p)
	if p.CPUStatus != model.StatusWarning {
		t.Errorf("cpu_status = %q, want WARNING with lowered thresholds", p.CPUStatus)
	}
}
