package ui

import "testing"

func TestFmtByteSize(t *testing.T) {
	tests := []struct {
		in   uint64
		want string
	}{
		{0, "0 Byte"},
		{1, "1 B"},
		{512, "512 B"},
		{1023, "1023 B"},
		{1024, "1 KB"},
		{1536, "1.5 KB"},
		{1048576, "1 MB"},
		{1572864, "1.5 MB"},
		{1073741824, "1 GB"},
		{1099511627776, "1 TB"},
		{1125899906842624, "1024 TB"}, // TB is the largest unit
	}

	for _, tt := range tests {
		if got := fmtByteSize(tt.in); got != tt.want {
			t.Errorf("fmtByteSize(%d) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestDisplayStatus(t *testing.T) {
	tests := []struct{ in, want string }{
		{"running", "Running"},
		{"sleeping", "Sleeping"},
		{"Z", "Z"},
		{"", "?"},
	}
	for _, tt := range tests {
		if got := displayStatus(tt.in); got != tt.want {
			t.Errorf("displayStatus(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestPadRight(t *testing.T) {
	if got := padRight("abc", 6); got != "abc   " {
		t.Errorf("padRight short = %q", got)
	}
	if got := padRight("hello world", 8); got != "hello..." {
		t.Errorf("padRight long = %q", got)
	}
	if got := padRight("hello", 3); got != "hel" {
		t.Errorf("padRight tiny width = %q", got)
	}
}

func TestPadLeft(t *testing.T) {
	if got := padLeft("42", 5); got != "   42" {
		t.Errorf("padLeft = %q", got)
	}
	if got := padLeft("123456", 4); got != "1234" {
		t.Errorf("padLeft truncation = %q", got)
	}
}
