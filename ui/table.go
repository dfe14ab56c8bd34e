package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/devia2025/progtop/model"
)

// maxExpandedProcs caps how many member processes an expanded row shows.
const maxExpandedProcs = 10

// Intent messages the table emits to its owner. The table never
// mutates pin state or triggers a refetch itself — the owner
// interprets these and feeds new rows back via SetRows.
type (
	// SortChangedMsg carries the resolved sort column and direction.
	SortChangedMsg struct {
		Key model.SortKey
		Dir model.SortDir
	}

	// FilterChangedMsg carries the current filter text and field.
	FilterChangedMsg struct {
		Text string
		Key  model.FilterKey
	}

	// PinMsg asks the owner to pin a program.
	PinMsg struct{ Name string }

	// UnpinMsg asks the owner to unpin a program.
	UnpinMsg struct{ Name string }
)

// column describes one header cell.
type column struct {
	key   model.SortKey
	label string
	width int
}

var columns = []column{
	{model.SortByName, "PROGRAM", 24},
	{model.SortByPIDsCount, "PIDS", 6},
	{model.SortByCPU, "CPU%", 8},
	{model.SortByMemory, "MEM%", 8},
	{model.SortByThreads, "THR", 6},
	{model.SortByRSS, "RSS", 10},
	{model.SortByStatus, "STATUS", 10},
}

// Table renders the program list and tracks its ephemeral UI state:
// cursor, expand map, filter input, sort choice.
// Row data is owned by the caller and replaced wholesale via SetRows;
// expand state survives refreshes because it is keyed by program name.
type Table struct {
	rows     []model.ProgramStat
	cursor   int
	expanded map[string]bool

	sortKey model.SortKey
	sortDir model.SortDir

	filterInput textinput.Model
	filterKey   model.FilterKey
	filtering   bool
}

// NewTable creates a table with the given initial sort.
func NewTable(key model.SortKey, dir model.SortDir) Table {
	ti := textinput.New()
	ti.Placeholder = "filter"
	ti.CharLimit = 64
	ti.Width = 24

	return Table{
		expanded:    make(map[string]bool),
		sortKey:     key,
		sortDir:     dir,
		filterInput: ti,
		filterKey:   model.FilterByName,
	}
}

// SetRows replaces the display rows (already filtered/sorted/pinned
// by the owner) and clamps the cursor.
func (t *Table) SetRows(rows []model.ProgramStat) {
	t.rows = rows
	if t.cursor >= len(rows) {
		t.cursor = len(rows) - 1
	}
	if t.cursor < 0 {
		t.cursor = 0
	}
}

// Filtering reports whether the filter input currently owns the keyboard.
func (t Table) Filtering() bool { return t.filtering }

func emit(msg tea.Msg) tea.Cmd {
	return func() tea.Msg { return msg }
}

// Update handles one key press and returns the updated table plus any
// intent command for the owner.
func (t Table) Update(msg tea.KeyMsg) (Table, tea.Cmd) {
	if t.filtering {
		return t.updateFiltering(msg)
	}

	switch msg.String() {
	case "j", "down":
		if t.cursor < len(t.rows)-1 {
			t.cursor++
		}
	case "k", "up":
		if t.cursor > 0 {
			t.cursor--
		}
	case "g", "home":
		t.cursor = 0
	case "G", "end":
		if len(t.rows) > 0 {
			t.cursor = len(t.rows) - 1
		}
	case "enter", " ":
		if row := t.selected(); row != nil {
			t.expanded[row.Name] = !t.expanded[row.Name]
		}
	case "p":
		if row := t.selected(); row != nil {
			if row.Pinned {
				return t, emit(UnpinMsg{Name: row.Name})
			}
			return t, emit(PinMsg{Name: row.Name})
		}
	case "s", "right":
		t.sortKey = nextSortKey(t.sortKey, 1)
		t.sortDir = t.sortKey.DefaultDir()
		return t, emit(SortChangedMsg{Key: t.sortKey, Dir: t.sortDir})
	case "left":
		t.sortKey = nextSortKey(t.sortKey, -1)
		t.sortDir = t.sortKey.DefaultDir()
		return t, emit(SortChangedMsg{Key: t.sortKey, Dir: t.sortDir})
	case "r":
		t.sortDir = t.sortDir.Toggle()
		return t, emit(SortChangedMsg{Key: t.sortKey, Dir: t.sortDir})
	case "/":
		t.filtering = true
		t.filterInput.Focus()
	}
	return t, nil
}

// updateFiltering routes keys into the filter textinput. Every change
// emits the current {text, key} pair so the owner can re-derive.
func (t Table) updateFiltering(msg tea.KeyMsg) (Table, tea.Cmd) {
	switch msg.String() {
	case "enter":
		t.filtering = false
		t.filterInput.Blur()
		return t, nil
	case "esc":
		t.filtering = false
		t.filterInput.Blur()
		t.filterInput.SetValue("")
		return t, emit(FilterChangedMsg{Text: "", Key: t.filterKey})
	case "tab":
		if t.filterKey == model.FilterByName {
			t.filterKey = model.FilterByStatus
		} else {
			t.filterKey = model.FilterByName
		}
		return t, emit(FilterChangedMsg{Text: t.filterInput.Value(), Key: t.filterKey})
	}

	var cmd tea.Cmd
	before := t.filterInput.Value()
	t.filterInput, cmd = t.filterInput.Update(msg)
	if v := t.filterInput.Value(); v != before {
		return t, tea.Batch(cmd, emit(FilterChangedMsg{Text: v, Key: t.filterKey}))
	}
	return t, cmd
}

func (t Table) selected() *model.ProgramStat {
	if t.cursor < 0 || t.cursor >= len(t.rows) {
		return nil
	}
	return &t.rows[t.cursor]
}

func nextSortKey(key model.SortKey, step int) model.SortKey {
	for i, k := range model.SortKeys {
		if k == key {
			n := len(model.SortKeys)
			return model.SortKeys[(i+step+n)%n]
		}
	}
	return model.SortKeys[0]
}

// View renders the table: header, program rows, and expanded process
// detail under any toggled-open row.
func (t Table) View(width int) string {
	var sb strings.Builder

	sb.WriteString(t.renderHeader())
	sb.WriteString("\n")
	sb.WriteString(dimStyle.Render(strings.Repeat("─", min(width, tableWidth()))))
	sb.WriteString("\n")

	if len(t.rows) == 0 {
		sb.WriteString(dimStyle.Render("  no programs match"))
		sb.WriteString("\n")
		return sb.String()
	}

	for i := range t.rows {
		sb.WriteString(t.renderRow(i))
		sb.WriteString("\n")
		if t.expanded[t.rows[i].Name] {
			sb.WriteString(renderProcesses(&t.rows[i]))
		}
	}
	return sb.String()
}

func tableWidth() int {
	w := 2
	for _, c := range columns {
		w += c.width + 1
	}
	return w
}

func (t Table) renderHeader() string {
	cells := make([]string, 0, len(columns))
	for _, c := range columns {
		if c.key == t.sortKey {
			arrow := "▲"
			if t.sortDir == model.SortDesc {
				arrow = "▼"
			}
			cells = append(cells, headerStyle.Render(padRight(c.label, c.width-1)+arrow))
		} else {
			cells = append(cells, dimStyle.Render(padRight(c.label, c.width)))
		}
	}
	return "  " + strings.Join(cells, " ")
}

func (t Table) renderRow(i int) string {
	row := &t.rows[i]

	marker := " "
	if row.Pinned {
		marker = pinStyle.Render("*")
	}

	name := padRight(row.Name, columns[0].width)
	nameCell := valueStyle.Render(name)
	if i == t.cursor {
		nameCell = selectedStyle.Render(name)
	}

	line := fmt.Sprintf("%s %s %s %s %s %s %s %s",
		marker,
		styledPad(nameCell, columns[0].width),
		styledPad(valueStyle.Render(padLeft(fmt.Sprintf("%d", row.PIDsCount), columns[1].width)), columns[1].width),
		styledPad(statusStyle(row.CPUStatus).Render(padLeft(fmtPct(row.CPUPercentTotal), columns[2].width)), columns[2].width),
		styledPad(statusStyle(row.MemStatus).Render(padLeft(fmtPct(row.MemoryPercentTotal), columns[3].width)), columns[3].width),
		styledPad(valueStyle.Render(padLeft(fmt.Sprintf("%d", row.Threads), columns[4].width)), columns[4].width),
		styledPad(valueStyle.Render(padLeft(fmtByteSize(row.MemoryRSS), columns[5].width)), columns[5].width),
		statusBadge(row.Status))
	return line
}

// renderProcesses renders the expanded detail for one program: up to
// maxExpandedProcs member processes plus a summary line counting the
// rest when the program has more.
func renderProcesses(prog *model.ProgramStat) string {
	var sb strings.Builder

	shown := prog.Processes
	if len(shown) > maxExpandedProcs {
		shown = shown[:maxExpandedProcs]
	}

	for _, proc := range shown {
		sb.WriteString(fmt.Sprintf("      %s %s %s %s %s %s\n",
			dimStyle.Render(padLeft(fmt.Sprintf("%d", proc.PID), 7)),
			styledPad(dimStyle.Render(padRight(proc.Name, 20)), 20),
			padLeft(fmtPct(proc.CPUPercent), 8),
			padLeft(fmtPct(proc.MemoryPercent), 8),
			padLeft(fmtByteSize(proc.MemoryRSS), 10),
			dimStyle.Render(displayStatus(proc.Status))))
	}

	if extra := len(prog.Processes) - maxExpandedProcs; extra > 0 {
		sb.WriteString(dimStyle.Render(fmt.Sprintf("      ... and %d more processes", extra)))
		sb.WriteString("\n")
	}
	return sb.String()
}

// FilterLine renders the filter input line shown while filtering, or
// a summary of the active filter otherwise.
func (t Table) FilterLine() string {
	if t.filtering {
		return fmt.Sprintf("  filter (%s, tab switches): %s", t.filterKey, t.filterInput.View())
	}
	if v := t.filterInput.Value(); v != "" {
		return dimStyle.Render(fmt.Sprintf("  filter %s~%q — / to edit, esc clears", t.filterKey, v))
	}
	return ""
}
