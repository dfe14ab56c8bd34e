package ui

import (
	"testing"
	"time"

	"github.com/devia2025/progtop/engine"
	"github.com/devia2025/progtop/model"
)

func testApp(programs ...model.ProgramStat) App {
	a := NewApp(nil, time.Second, engine.DefaultQuery())
	a.snap = &engine.Snapshot{Programs: programs}
	a.refresh()
	return a
}

func rowNames(a App) []string {
	out := make([]string, len(a.table.rows))
	for i, r := range a.table.rows {
		out[i] = r.Name
	}
	return out
}

func TestAppPinIntentReordersRows(t *testing.T) {
	a := testApp(
		model.ProgramStat{Name: "big", CPUPercentTotal: 50},
		model.ProgramStat{Name: "small", CPUPercentTotal: 1},
	)

	got := rowNames(a)
	if got[0] != "big" {
		t.Fatalf("expected cpu-desc default order, got %v", got)
	}

	m, _ := a.Update(PinMsg{Name: "small"})
	a = m.(App)
	got = rowNames(a)
	if got[0] != "small" {
		t.Errorf("pinned row should sort first, got %v", got)
	}
	if !a.table.rows[0].Pinned {
		t.Error("pinned flag should be stamped on the row")
	}

	m, _ = a.Update(UnpinMsg{Name: "small"})
	a = m.(App)
	if got := rowNames(a); got[0] != "big" {
		t.Errorf("unpin should restore sort order, got %v", got)
	}
}

func TestAppFilterIntentNarrowsRows(t *testing.T) {
	a := testApp(
		model.ProgramStat{Name: "nginx"},
		model.ProgramStat{Name: "postgres"},
	)

	m, _ := a.Update(FilterChangedMsg{Text: "post", Key: model.FilterByName})
	a = m.(App)
	if got := rowNames(a); len(got) != 1 || got[0] != "postgres" {
		t.Errorf("filter intent should narrow rows, got %v", got)
	}

	m, _ = a.Update(FilterChangedMsg{Text: "", Key: model.FilterByName})
	a = m.(App)
	if got := rowNames(a); len(got) != 2 {
		t.Errorf("clearing filter should restore all rows, got %v", got)
	}
}

func TestAppSortIntentReorders(t *testing.T) {
	a := testApp(
		model.ProgramStat{Name: "b", PIDsCount: 1},
		model.ProgramStat{Name: "a", PIDsCount: 9},
	)

	m, _ := a.Update(SortChangedMsg{Key: model.SortByName, Dir: model.SortAsc})
	a = m.(App)
	if got := rowNames(a); got[0] != "a" || got[1] != "b" {
		t.Errorf("name asc = %v", got)
	}

	m, _ = a.Update(SortChangedMsg{Key: model.SortByPIDsCount, Dir: model.SortDesc})
	a = m.(App)
	if got := rowNames(a); got[0] != "a" {
		t.Errorf("pids desc should put a (9 pids) first, got %v", got)
	}
}
