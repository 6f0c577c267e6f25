// Package main provides the CLI entrypoint for wordrush.
package main

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/verte-zerg/wordrush/internal/config"
	"github.com/verte-zerg/wordrush/internal/model"
	"github.com/verte-zerg/wordrush/internal/score"
	"github.com/verte-zerg/wordrush/internal/session"
	"github.com/verte-zerg/wordrush/internal/tui"
)

const (
	defaultLang     = "en"
	defaultWords    = session.DefaultWords
	defaultDuration = session.DefaultDuration
	defaultSource   = model.SourceBuiltin
	defaultCaps     = 0.0
	defaultPunct    = 0.0
)

const defaultPunctSet = ".,!?;:"

var (
	practiceLang     string
	practiceWords    int
	practiceDuration int
	practiceSource   string
	practiceCaps     float64
	practicePunct    float64
	practicePunctSet string

	dictLang     string
	dictNoFilter bool
)

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "wordrush",
		Short:         "Timed typing-speed practice",
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE:          runPracticeCmd,
	}

	rootCmd.Flags().StringVar(&practiceLang, "lang", defaultLang, "language code")
	rootCmd.Flags().IntVar(&practiceWords, "words", defaultWords, "words per session")
	rootCmd.Flags().IntVar(&practiceDuration, "duration", defaultDuration, "session length in seconds")
	rootCmd.Flags().StringVar(&practiceSource, "source", defaultSource, "word source: builtin, file or db")
	rootCmd.Flags().Float64Var(&practiceCaps, "caps", defaultCaps, "probability of capitalized first letter (0-1)")
	rootCmd.Flags().Float64Var(&practicePunct, "punct", defaultPunct, "punctuation probability per word (0-1)")
	rootCmd.Flags().StringVar(&practicePunctSet, "punct-set", defaultPunctSet, "punctuation set")

	rootCmd.AddCommand(newConfigCmd())
	rootCmd.AddCommand(newDictCmd())

	return rootCmd
}

func runPracticeCmd(cmd *cobra.Command, _ []string) error {
	cfg, err := resolvePracticeConfig(cmd)
	if err != nil {
		return err
	}
	if err := validateConfig(cfg); err != nil {
		return err
	}
	if !term.IsTerminal(int(os.Stdin.Fd())) || !term.IsTerminal(int(os.Stdout.Fd())) {
		return fmt.Errorf("wordrush needs an interactive terminal")
	}

	src, err := buildSource(cmd.Context(), cfg)
	if err != nil {
		return err
	}

	sess := session.New(src, session.Options{
		Words:    cfg.Words,
		Duration: cfg.Duration,
		Lang:     cfg.Lang,
	})
	program := tea.NewProgram(tui.NewModel(sess), tea.WithAltScreen())
	final, err := program.Run()
	if err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}
	if m, ok := final.(*tui.Model); ok {
		if res, ok := m.Result(); ok {
			if err := score.RenderSummary(cmd.OutOrStdout(), res); err != nil {
				return fmt.Errorf("failed to write result: %w", err)
			}
		}
	}
	return nil
}

// resolvePracticeConfig layers flags over environment over the config file.
func resolvePracticeConfig(cmd *cobra.Command) (model.Config, error) {
	fileCfg, err := config.LoadConfig(config.DefaultConfigPath())
	if err != nil {
		return model.Config{}, fmt.Errorf("failed to load config: %w", err)
	}
	envCfg, err := config.LoadEnv()
	if err != nil {
		return model.Config{}, fmt.Errorf("failed to load environment: %w", err)
	}
	practice := config.Overlay(fileCfg.Practice, envCfg)

	applyConfig(cmd, "lang", &practiceLang, practice.Lang)
	applyConfig(cmd, "words", &practiceWords, practice.Words)
	applyConfig(cmd, "duration", &practiceDuration, practice.Duration)
	applyConfig(cmd, "source", &practiceSource, practice.Source)
	applyConfig(cmd, "caps", &practiceCaps, practice.CapsPct)
	applyConfig(cmd, "punct", &practicePunct, practice.PunctPct)
	applyConfig(cmd, "punct-set", &practicePunctSet, practice.PunctSet)

	return model.Config{
		Lang:     practiceLang,
		Words:    practiceWords,
		Duration: practiceDuration,
		Source:   strings.ToLower(strings.TrimSpace(practiceSource)),
		CapsPct:  practiceCaps,
		PunctPct: practicePunct,
		PunctSet: practicePunctSet,
	}, nil
}

func applyConfig[T any](cmd *cobra.Command, name string, target, value *T) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func validateConfig(cfg model.Config) error {
	if cfg.Words <= 0 {
		return fmt.Errorf("--words must be > 0")
	}
	if cfg.Duration <= 0 {
		return fmt.Errorf("--duration must be > 0")
	}
	if cfg.CapsPct < 0 || cfg.CapsPct > 1 {
		return fmt.Errorf("--caps must be between 0 and 1")
	}
	if cfg.PunctPct < 0 || cfg.PunctPct > 1 {
		return fmt.Errorf("--punct must be between 0 and 1")
	}
	if cfg.PunctPct > 0 && cfg.PunctSet == "" {
		return fmt.Errorf("--punct-set must not be empty")
	}
	switch cfg.Source {
	case model.SourceBuiltin, model.SourceFile, model.SourceDB:
	default:
		return fmt.Errorf("--source must be one of builtin, file, db")
	}
	return nil
}

func newConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Create/open config file",
		Args:  cobra.NoArgs,
		RunE:  runConfigCmd,
	}
}

func runConfigCmd(_ *cobra.Command, _ []string) error {
	path := config.DefaultConfigPath()
	if err := ensureConfigFile(path); err != nil {
		return err
	}

	editor := strings.TrimSpace(os.Getenv("EDITOR"))
	if editor == "" {
		editor = "vi"
	}
	parts := strings.Fields(editor)
	cmd := exec.Command(parts[0], append(parts[1:], path)...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("failed to open editor: %w", err)
	}
	return nil
}

func ensureConfigFile(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if _, err := os.Stat(path); err == nil {
		return nil
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("failed to stat config: %w", err)
	}
	if err := os.WriteFile(path, []byte(defaultConfigTemplate()), 0o644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

func defaultConfigTemplate() string {
	return fmt.Sprintf(`# wordrush configuration
# Uncomment a value to enable it.
# CLI flags override WORDRUSH_* environment variables, which override this file.

[practice]
# lang = %q             # Language code
# words = %d             # Words generated per session
# duration = %d           # Session length in seconds
# source = %q      # Word source: builtin, file or db
# caps = %.2f            # Probability of capitalized first letter (0-1)
# punct = %.2f           # Punctuation probability per word (0-1)
# punct-set = %q     # Punctuation set
`,
		defaultLang,
		defaultWords,
		defaultDuration,
		defaultSource,
		defaultCaps,
		defaultPunct,
		defaultPunctSet,
	)
}

func logErrf(format string, args ...any) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		// Best-effort logging to stderr.
		_ = err
	}
}
