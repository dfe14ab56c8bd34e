package engine

import (
	"sort"
	"strings"

	"github.com/devia2025/progtop/model"
)

// Query is the view-model state: what the user is currently filtering
// and sorting by. The zero FilterText means no filtering.
type Query struct {
	FilterText string
	FilterKey  model.FilterKey
	SortKey    model.SortKey
	SortDir    model.SortDir
}

// DefaultQuery sorts by total CPU, descending, unfiltered.
func DefaultQuery() Query {
	return Query{
		FilterKey: model.FilterByName,
		SortKey:   model.SortByCPU,
		SortDir:   model.SortDesc,
	}
}

// DeriveView computes the display ordering for one snapshot:
// filter, then sort, then pinned-first partition. The input is not
// mutated; the result shares the input's ProgramStat values.
func DeriveView(programs []model.ProgramStat, q Query) []model.ProgramStat {
	out := filterPrograms(programs, q.FilterText, q.FilterKey)
	sortPrograms(out, q.SortKey, q.SortDir)
	return pinnedFirst(out)
}

// filterPrograms keeps records whose chosen field contains the filter
// text, case-insensitively. An unknown filter key passes everything
// through rather than hiding the whole table.
func filterPrograms(programs []model.ProgramStat, text string, key model.FilterKey) []model.ProgramStat {
	out := make([]model.ProgramStat, 0, len(programs))
	if text == "" {
		return append(out, programs...)
	}

	needle := strings.ToLower(text)
	for _, p := range programs {
		var hay string
		switch key {
		case model.FilterByName:
			hay = p.Name
		case model.FilterByStatus:
			hay = p.Status
		default:
			out = append(out, p)
			continue
		}
		if strings.Contains(strings.ToLower(hay), needle) {
			out = append(out, p)
		}
	}
	return out
}

// sortPrograms orders in place by the named field. String fields
// compare case-insensitively; an unknown key compares everything
// equal, leaving the order as-is. Ties carry no stability contract.
func sortPrograms(programs []model.ProgramStat, key model.SortKey, dir model.SortDir) {
	less := lessFunc(key)
	if less == nil {
		return
	}
	sort.Slice(programs, func(i, j int) bool {
		if dir == model.SortDesc {
			return less(&programs[j], &programs[i])
		}
		return less(&programs[i], &programs[j])
	})
}

func lessFunc(key model.SortKey) func(a, b *model.ProgramStat) bool {
	switch key {
	case model.SortByName:
		return func(a, b *model.ProgramStat) bool {
			return strings.ToLower(a.Name) < strings.ToLower(b.Name)
		}
	case model.SortByPIDsCount:
		return func(a, b *model.ProgramStat) bool { return a.PIDsCount < b.PIDsCount }
	case model.SortByCPU:
		return func(a, b *model.ProgramStat) bool { return a.CPUPercentTotal < b.CPUPercentTotal }
	case model.SortByMemory:
		return func(a, b *model.ProgramStat) bool { return a.MemoryPercentTotal < b.MemoryPercentTotal }
	case model.SortByThreads:
		return func(a, b *model.ProgramStat) bool { return a.Threads < b.Threads }
	case model.SortByRSS:
		return func(a, b *model.ProgramStat) bool { return a.MemoryRSS < b.MemoryRSS }
	case model.SortByStatus:
		return func(a, b *model.ProgramStat) bool {
			return strings.ToLower(a.Status) < strings.ToLower(b.Status)
		}
	}
	return nil
}

// pinnedFirst partitions pinned rows ahead of unpinned ones, keeping
// each group's relative order from the sort.
func pinnedFirst(programs []model.ProgramStat) []model.ProgramStat {
	out := make([]model.ProgramStat, 0, len(programs))
	for _, p := range programs {
		if p.Pinned {
			out = append(out, p)
		}
	}
	for _, p := range programs {
		if !p.Pinned {
			out = append(out, p)
		}
	}
	return out
}
