package ui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/devia2025/progtop/engine"
)

type tickMsg time.Time

type collectMsg struct {
	snap *engine.Snapshot
	err  error
}

// App is the owning bubbletea model. It holds the authoritative state
// the table only signals intent about: the pin set, the view query,
// and the refresh loop. The table gets a freshly derived row slice
// after every snapshot or query change.
type App struct {
	eng      *engine.Engine
	interval time.Duration
	width    int
	height   int

	snap  *engine.Snapshot
	query engine.Query
	pins  map[string]bool
	table Table

	paused   bool
	showHelp bool
	lastErr  string
}

// NewApp creates the application model.
func NewApp(eng *engine.Engine, interval time.Duration, query engine.Query) App {
	return App{
		eng:      eng,
		interval: interval,
		query:    query,
		pins:     make(map[string]bool),
		table:    NewTable(query.SortKey, query.SortDir),
	}
}

func (a App) Init() tea.Cmd {
	return tea.Batch(tick(a.interval), collectOnce(a.eng, a.pins))
}

func tick(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg { return tickMsg(t) })
}

func collectOnce(eng *engine.Engine, pins map[string]bool) tea.Cmd {
	pinned := make(map[string]bool, len(pins))
	for k, v := range pins {
		pinned[k] = v
	}
	return func() tea.Msg {
		snap, err := eng.Tick(pinned)
		return collectMsg{snap: snap, err: err}
	}
}

// refresh re-derives the table rows from the current snapshot, pin
// set, and query.
func (a *App) refresh() {
	if a.snap == nil {
		return
	}
	for i := range a.snap.Programs {
		a.snap.Programs[i].Pinned = a.pins[a.snap.Programs[i].Name]
	}
	a.table.SetRows(engine.DeriveView(a.snap.Programs, a.query))
}

func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if a.showHelp {
			a.showHelp = false
			return a, nil
		}
		// While the filter input is active, only quit bypasses the table.
		if a.table.Filtering() {
			if msg.String() == "ctrl+c" {
				return a, tea.Quit
			}
			var cmd tea.Cmd
			a.table, cmd = a.table.Update(msg)
			return a, cmd
		}
		switch msg.String() {
		case "q", "ctrl+c":
			return a, tea.Quit
		case "?":
			a.showHelp = true
		case "a":
			a.paused = !a.paused
			if !a.paused {
				return a, tea.Batch(tick(a.interval), collectOnce(a.eng, a.pins))
			}
		default:
			var cmd tea.Cmd
			a.table, cmd = a.table.Update(msg)
			return a, cmd
		}

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height

	case tickMsg:
		if a.paused {
			return a, nil
		}
		return a, tea.Batch(tick(a.interval), collectOnce(a.eng, a.pins))

	case collectMsg:
		if msg.err != nil {
			a.lastErr = msg.err.Error()
			return a, nil
		}
		a.lastErr = ""
		if !a.paused {
			a.snap = msg.snap
			a.refresh()
		}

	case SortChangedMsg:
		a.query.SortKey = msg.Key
		a.query.SortDir = msg.Dir
		a.refresh()

	case FilterChangedMsg:
		a.query.FilterText = msg.Text
		a.query.FilterKey = msg.Key
		a.refresh()

	case PinMsg:
		a.pins[msg.Name] = true
		a.refresh()

	case UnpinMsg:
		delete(a.pins, msg.Name)
		a.refresh()
	}
	return a, nil
}

func (a App) View() string {
	if a.showHelp {
		return a.renderHelp()
	}
	if a.width == 0 {
		return "Loading..."
	}
	if a.snap == nil {
		return "Collecting first sample..."
	}

	var sb strings.Builder
	sb.WriteString(titleStyle.Render("PROGRAMS"))
	sb.WriteString(dimStyle.Render(fmt.Sprintf("  %d programs · sort %s %s",
		len(a.snap.Programs), a.query.SortKey, a.query.SortDir)))
	if a.paused {
		sb.WriteString("  " + warnStyle.Render("PAUSED"))
	}
	if a.lastErr != "" {
		sb.WriteString("  " + critStyle.Render("collect error: "+a.lastErr))
	}
	sb.WriteString("\n")
	if fl := a.table.FilterLine(); fl != "" {
		sb.WriteString(fl)
		sb.WriteString("\n")
	}
	sb.WriteString(a.table.View(a.width))

	// Trim to viewport, leaving room for the status bar.
	lines := strings.Split(sb.String(), "\n")
	maxLines := a.height - 2
	if maxLines > 0 && len(lines) > maxLines {
		lines = lines[:maxLines]
	}
	return strings.Join(lines, "\n") + "\n" + a.renderStatusBar()
}

func (a App) renderStatusBar() string {
	hints := []string{
		"enter:expand", "p:pin", "s/←→:sort", "r:reverse", "/:filter", "a:pause", "?:help", "q:quit",
	}
	bar := dimStyle.Render(" " + strings.Join(hints, "  "))
	clock := dimStyle.Render(fmt.Sprintf("%s · %s ", time.Now().Format("15:04:05"), a.interval))
	pad := a.width - lipgloss.Width(bar) - lipgloss.Width(clock)
	if pad < 1 {
		return bar
	}
	return bar + strings.Repeat(" ", pad) + clock
}

func (a App) renderHelp() string {
	lines := []string{
		titleStyle.Render("progtop — keys"),
		"",
		"  j/k, ↑/↓      move cursor",
		"  g/G           first / last row",
		"  enter, space  expand/collapse program processes",
		"  p             pin or unpin the selected program",
		"  s, ←/→        cycle sort column",
		"  r             reverse sort direction",
		"  /             filter; tab switches name/status field",
		"  esc           clear filter",
		"  a             pause/resume refresh",
		"  q             quit",
		"",
		dimStyle.Render("  any key to close"),
	}
	return strings.Join(lines, "\n")
}
