package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/devia2025/progtop/config"
	"github.com/devia2025/progtop/engine"
	"github.com/devia2025/progtop/model"
	"github.com/devia2025/progtop/ui"
)

// Version is set at build time via ldflags.
var Version = "0.2.0"

var (
	flagInterval int
	flagSort     string
	flagJSON     bool
	flagTop      int
	flagDebug    bool
)

var rootCmd = &cobra.Command{
	Use:   "progtop",
	Short: "Program-aggregated process monitor",
	Long: `progtop groups running processes by program and shows a sortable,
filterable table of per-program CPU, memory, thread, and RSS totals.

Default: interactive fullscreen TUI. --json dumps one aggregated
snapshot; --top prints the top N programs and exits.`,
	Version:       Version,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          run,
}

func init() {
	rootCmd.Flags().IntVarP(&flagInterval, "interval", "i", 0, "refresh interval in seconds (default from config, 2)")
	rootCmd.Flags().StringVarP(&flagSort, "sort", "s", "", "initial sort key (name, pids_count, cpu_percent_total, memory_percent_total, threads, memory_rss, status)")
	rootCmd.Flags().BoolVarP(&flagJSON, "json", "j", false, "print one aggregated snapshot as JSON and exit")
	rootCmd.Flags().IntVarP(&flagTop, "top", "t", 0, "print the top N programs and exit")
	rootCmd.Flags().BoolVar(&flagDebug, "debug", false, "verbose logging to stderr (one-shot modes only)")
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	cfg := config.Load()

	interval := time.Duration(cfg.IntervalSec) * time.Second
	if flagInterval > 0 {
		interval = time.Duration(flagInterval) * time.Second
	}

	sortKey := model.ParseSortKey(cfg.SortKey)
	if flagSort != "" {
		sortKey = model.ParseSortKey(flagSort)
	}

	eng := engine.NewEngine(engine.Thresholds{
		CPUWarning:  cfg.Thresholds.CPUWarning,
		CPUCritical: cfg.Thresholds.CPUCritical,
		MemWarning:  cfg.Thresholds.MemWarning,
		MemCritical: cfg.Thresholds.MemCritical,
	})

	if flagJSON || flagTop > 0 {
		setupLogging(flagDebug)
		if flagJSON {
			return runJSON(eng)
		}
		return runTop(eng, flagTop, sortKey)
	}

	// TUI mode: the alternate screen owns the terminal, so anything
	// below warn level is dropped instead of corrupting the display.
	setupLogging(false)

	query := engine.DefaultQuery()
	query.SortKey = sortKey
	query.SortDir = sortKey.DefaultDir()

	app := ui.NewApp(eng, interval, query)
	p := tea.NewProgram(app, tea.WithAltScreen())
	_, err := p.Run()
	return err
}

func setupLogging(debug bool) {
	w := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly}
	level := zerolog.WarnLevel
	if debug {
		level = zerolog.DebugLevel
	}
	log.Logger = zerolog.New(w).Level(level).With().Timestamp().Logger()
}

// runJSON writes one aggregated snapshot to stdout.
// CPU percentages need two samples, so one warm-up tick runs first.
func runJSON(eng *engine.Engine) error {
	if _, err := eng.Tick(nil); err != nil {
		return err
	}
	time.Sleep(time.Second)
	snap, err := eng.Tick(nil)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(snap)
}

// runTop prints a plain-text table of the top n programs.
func runTop(eng *engine.Engine, n int, key model.SortKey) error {
	if _, err := eng.Tick(nil); err != nil {
		return err
	}
	time.Sleep(time.Second)
	snap, err := eng.Tick(nil)
	if err != nil {
		return err
	}

	fmt.Printf("%-24s %6s %8s %8s %6s %10s  %s\n",
		"PROGRAM", "PIDS", "CPU%", "MEM%", "THR", "RSS", "STATUS")
	for _, p := range engine.TopPrograms(snap.Programs, n, key) {
		fmt.Printf("%-24.24s %6d %8.1f %8.1f %6d %10d  %s\n",
			p.Name, p.PIDsCount, p.CPUPercentTotal, p.MemoryPercentTotal,
			p.Threads, p.MemoryRSS, p.Status)
	}
	return nil
}
