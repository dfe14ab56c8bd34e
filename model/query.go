package model

// SortKey names a ProgramStat field the view can order by.
type SortKey string

const (
	SortByName      SortKey = "name"
	SortByPIDsCount SortKey = "pids_count"
	SortByCPU       SortKey = "cpu_percent_total"
	SortByMemory    SortKey = "memory_percent_total"
	SortByThreads   SortKey = "threads"
	SortByRSS       SortKey = "memory_rss"
	SortByStatus    SortKey = "status"
)

// SortKeys lists the sortable columns in display order.
var SortKeys = []SortKey{
	SortByName, SortByPIDsCount, SortByCPU, SortByMemory,
	SortByThreads, SortByRSS, SortByStatus,
}

// SortDir is the sort direction.
type SortDir string

const (
	SortAsc  SortDir = "asc"
	SortDesc SortDir = "desc"
)

// Toggle returns the opposite direction.
func (d SortDir) Toggle() SortDir {
	if d == SortAsc {
		return SortDesc
	}
	return SortAsc
}

// FilterKey names the field substring filtering applies to.
type FilterKey string

const (
	FilterByName   FilterKey = "name"
	FilterByStatus FilterKey = "status"
)

// ParseSortKey maps a user-supplied string to a SortKey.
// Unknown values are returned as-is: the view treats them as a
// no-op ordering rather than failing.
func ParseSortKey(s string) SortKey {
	for _, k := range SortKeys {
		if string(k) == s {
			return k
		}
	}
	return SortKey(s)
}

// DefaultDir returns the conventional initial direction for a column:
// numeric columns start descending (biggest consumers first), string
// columns ascending.
func (k SortKey) DefaultDir() SortDir {
	switch k {
	case SortByName, SortByStatus:
		return SortAsc
	default:
		return SortDesc
	}
}
