package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/verte-zerg/wordrush/internal/config"
	"github.com/verte-zerg/wordrush/internal/model"
	"github.com/verte-zerg/wordrush/internal/store"
	"github.com/verte-zerg/wordrush/internal/wordlist"
	"github.com/verte-zerg/wordrush/internal/wordsource"
)

// buildSource loads the dictionary selected by cfg.Source.
func buildSource(ctx context.Context, cfg model.Config) (wordsource.Source, error) {
	var (
		words []string
		err   error
	)
	switch cfg.Source {
	case model.SourceFile:
		path := config.DefaultWordListPath(cfg.Lang)
		words, err = wordlist.LoadWords(path)
		if err != nil {
			return nil, wordListLoadError(cfg.Lang, path, err)
		}
	case model.SourceDB:
		words, err = loadDictionary(ctx, config.DefaultDBPath(), cfg.Lang)
		if err != nil {
			return nil, err
		}
	default:
		words, err = wordsource.BuiltinWords(cfg.Lang)
		if err != nil {
			return nil, fmt.Errorf("%w (use --source file or --source db for other languages)", err)
		}
	}
	return wordsource.New(words, wordsource.WithDecoration(cfg.CapsPct, cfg.PunctPct, []rune(cfg.PunctSet))), nil
}

func loadDictionary(ctx context.Context, path, lang string) ([]string, error) {
	st, err := store.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open dictionary: %w", err)
	}
	defer func() {
		if cerr := st.Close(); cerr != nil {
			logErrf("failed to close dictionary: %v\n", cerr)
		}
	}()
	words, err := st.ListWords(ctx, lang)
	if err != nil {
		return nil, fmt.Errorf("failed to read dictionary: %w", err)
	}
	if len(words) == 0 {
		return nil, fmt.Errorf("no %q words in dictionary\nImport: wordrush dict import --lang %s <file>", lang, lang)
	}
	return words, nil
}

func wordListLoadError(lang, path string, err error) error {
	lines := []string{
		fmt.Sprintf("failed to load word list: %v", err),
		fmt.Sprintf("expected word list at: %s", path),
		fmt.Sprintf("language %q not found", lang),
		"Put one word per line in that file, or use --source builtin",
	}
	return fmt.Errorf("%s", strings.Join(lines, "\n"))
}

func newDictCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dict",
		Short: "Manage the SQLite word dictionary",
	}

	importCmd := &cobra.Command{
		Use:   "import <file>",
		Short: "Import a one-word-per-line file into the dictionary",
		Args:  cobra.ExactArgs(1),
		RunE:  runDictImportCmd,
	}
	importCmd.Flags().StringVar(&dictLang, "lang", defaultLang, "language code")
	importCmd.Flags().BoolVar(&dictNoFilter, "no-filter", false, "keep words rejected by the language filter")

	langsCmd := &cobra.Command{
		Use:   "langs",
		Short: "List dictionary languages",
		Args:  cobra.NoArgs,
		RunE:  runDictLangsCmd,
	}

	cmd.AddCommand(importCmd, langsCmd)
	return cmd
}

func runDictImportCmd(cmd *cobra.Command, args []string) error {
	lang := strings.TrimSpace(strings.ToLower(dictLang))
	if lang == "" {
		return fmt.Errorf("--lang must not be empty")
	}
	words, err := wordlist.LoadWords(args[0])
	if err != nil {
		return fmt.Errorf("failed to load %s: %w", args[0], err)
	}
	if !dictNoFilter {
		kept := wordlist.Filter(words, wordlist.FilterForLang(lang))
		if skipped := len(words) - len(kept); skipped > 0 {
			logErrf("Skipped %d words rejected by the %s filter\n", skipped, lang)
		}
		words = kept
	}

	st, err := store.Open(config.DefaultDBPath())
	if err != nil {
		return fmt.Errorf("failed to open dictionary: %w", err)
	}
	defer func() {
		if cerr := st.Close(); cerr != nil {
			logErrf("failed to close dictionary: %v\n", cerr)
		}
	}()
	n, err := st.ImportWords(cmd.Context(), lang, words)
	if err != nil {
		return fmt.Errorf("failed to import words: %w", err)
	}
	if _, err := fmt.Fprintf(cmd.OutOrStdout(), "Imported %d new %s words\n", n, lang); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

func runDictLangsCmd(cmd *cobra.Command, _ []string) error {
	st, err := store.Open(config.DefaultDBPath())
	if err != nil {
		return fmt.Errorf("failed to open dictionary: %w", err)
	}
	defer func() {
		if cerr := st.Close(); cerr != nil {
			logErrf("failed to close dictionary: %v\n", cerr)
		}
	}()
	langs, err := st.ListLangs(cmd.Context())
	if err != nil {
		return fmt.Errorf("failed to list languages: %w", err)
	}
	if len(langs) == 0 {
		logErrf("Dictionary is empty. Import with: wordrush dict import --lang <code> <file>\n")
		return fmt.Errorf("no dictionary languages found")
	}
	for _, lc := range langs {
		if _, err := fmt.Fprintf(cmd.OutOrStdout(), "%s\t%d\n", lc.Lang, lc.Words); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	}
	return nil
}
