package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"searchbox/internal/config"
	"searchbox/internal/eventbus"
	"searchbox/internal/matcher"
	"searchbox/internal/search"
	"searchbox/internal/ui"
)

const defaultLogFile = "searchbox.log"

var (
	configPath string
	regex      bool
	engine     string
	ignoreCase bool
	candidates []string
	logFile    string
)

var rootCmd = &cobra.Command{
	Use:   "searchbox",
	Short: "Interactive search box over a fixed list of strings",
	Long: `searchbox filters a list of strings as you type and highlights every match.

Queries are matched literally unless regex mode is on (ctrl+r in the UI,
--regex on the command line). Candidates come from the config file or
from repeated --candidate flags.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runTUI,
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&configPath, "config", "c", "", "Config file (default $XDG_CONFIG_HOME/searchbox/config.toml)")
	flags.BoolVarP(&regex, "regex", "r", false, "Interpret the query as a regular expression")
	flags.StringVar(&engine, "engine", "", "Regex engine: re2 or pcre")
	flags.BoolVarP(&ignoreCase, "ignore-case", "i", false, "Case-insensitive matching")
	flags.StringArrayVar(&candidates, "candidate", nil, "Candidate string (repeatable, replaces the configured list)")
	flags.StringVar(&logFile, "log-file", "", "Write logs to this file")

	rootCmd.AddCommand(matchCmd)
	rootCmd.AddCommand(versionCmd)
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// loadConfig reads the config file and applies command line overrides
func loadConfig(cmd *cobra.Command, bus eventbus.EventBus) (*config.Config, config.ConfigService, error) {
	path := configPath
	if path == "" {
		path = config.DefaultPath()
	}

	var svc config.ConfigService
	if bus != nil {
		svc = config.NewConfigServiceWithBus(path, bus)
	} else {
		svc = config.NewConfigServiceForPath(path)
	}

	cfg, err := svc.Load()
	if err != nil {
		return nil, nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("regex") {
		cfg.Search.Regex = regex
	}
	if flags.Changed("engine") {
		cfg.Search.Engine = engine
	}
	if flags.Changed("ignore-case") {
		cfg.Search.IgnoreCase = ignoreCase
	}
	if flags.Changed("candidate") {
		cfg.Candidates = append([]string(nil), candidates...)
	}

	if err := cfg.Validate(); err != nil {
		return nil, nil, err
	}
	return cfg, svc, nil
}

// setupLogging redirects the standard logger. An empty path discards logs.
func setupLogging(path string) func() {
	if path == "" {
		log.SetOutput(io.Discard)
		return func() {}
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		log.SetOutput(io.Discard)
		fmt.Fprintf(os.Stderr, "Could not open log file: %v\n", err)
		return func() {}
	}
	log.SetOutput(f)
	return func() { f.Close() }
}

func runTUI(cmd *cobra.Command, args []string) error {
	path := logFile
	if path == "" {
		path = defaultLogFile
	}
	closeLog := setupLogging(path)
	defer closeLog()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	bus := eventbus.New()
	defer bus.Close()

	cfg, configSvc, err := loadConfig(cmd, bus)
	if err != nil {
		return err
	}
	regexState := trackRegexSetting(bus, cfg.Search.Regex)

	m, err := matcher.New(cfg.MatcherOptions())
	if err != nil {
		return err
	}

	svc := search.NewService(bus, m, cfg.Candidates)
	svc.SetKeepOnInvalid(cfg.KeepResultsOnInvalid())
	svc.SetRegex(cfg.Search.Regex)

	model := ui.NewModel(bus, cfg, svc, m.Engine())

	log.Printf("Starting UI with %d candidates (engine %s)", len(cfg.Candidates), m.Engine())
	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		log.Printf("Error running program: %v", err)
		return fmt.Errorf("running program: %w", err)
	}
	log.Printf("UI exited normally")

	// Deliver pending ConfigChanged events before reading the final toggle
	bus.Close()

	if enabled, changed := regexState.Value(); cfg.UISettings.SaveOnExit && changed {
		if err := saveRegexSetting(configSvc, enabled); err != nil {
			log.Printf("Failed to save config: %v", err)
		} else {
			log.Printf("Config saved to %s", configSvc.Path())
		}
	}

	return nil
}

// saveRegexSetting persists the regex toggle without writing command line overrides
func saveRegexSetting(svc config.ConfigService, enabled bool) error {
	cfg, err := svc.Load()
	if err != nil {
		return err
	}
	cfg.Search.Regex = enabled
	return svc.Save(cfg)
}
