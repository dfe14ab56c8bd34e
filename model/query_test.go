package model

import "testing"

func TestParseSortKey(t *testing.T) {
	if got := ParseSortKey("memory_rss"); got != SortByRSS {
		t.Errorf("ParseSortKey(memory_rss) = %q", got)
	}
	// Unknown keys pass through; the view treats them as a no-op order.
	if got := ParseSortKey("bogus"); got != SortKey("bogus") {
		t.Errorf("ParseSortKey(bogus) = %q", got)
	}
}

func TestSortDirToggle(t *testing.T) {
	if SortAsc.Toggle() != SortDesc || SortDesc.Toggle() != SortAsc {
		t.Error("Toggle should flip direction")
	}
}

func TestDefaultDir(t *testing.T) {
	if SortByName.DefaultDir() != SortAsc {
		t.Error("name should default ascending")
	}
	if SortByCPU.DefaultDir() != SortDesc {
		t.Error("cpu should default descending")
	}
}
