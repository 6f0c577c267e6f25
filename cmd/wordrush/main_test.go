package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/verte-zerg/wordrush/internal/model"
)

func writeFile(t *testing.T, path, data string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

func TestResolvePracticeConfigPrecedence(t *testing.T) {
	cfgHome := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", cfgHome)
	writeFile(t, filepath.Join(cfgHome, "wordrush", "config.toml"),
		"[practice]\nwords = 50\nduration = 30\nlang = \"de\"\n")
	t.Setenv("WORDRUSH_DURATION", "20")

	cmd := newRootCmd()
	if err := cmd.Flags().Parse([]string{"--words", "10"}); err != nil {
		t.Fatalf("parse flags: %v", err)
	}
	cfg, err := resolvePracticeConfig(cmd)
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if cfg.Words != 10 {
		t.Fatalf("expected flag words 10, got %d", cfg.Words)
	}
	if cfg.Duration != 20 {
		t.Fatalf("expected env duration 20, got %d", cfg.Duration)
	}
	if cfg.Lang != "de" {
		t.Fatalf("expected file lang de, got %q", cfg.Lang)
	}
	if cfg.Source != model.SourceBuiltin {
		t.Fatalf("expected default source, got %q", cfg.Source)
	}
}

func TestValidateConfig(t *testing.T) {
	good := model.Config{Lang: "en", Words: 200, Duration: 60, Source: model.SourceBuiltin}
	if err := validateConfig(good); err != nil {
		t.Fatalf("expected valid config: %v", err)
	}
	bad := []model.Config{
		{Words: 0, Duration: 60, Source: model.SourceBuiltin},
		{Words: 10, Duration: 0, Source: model.SourceBuiltin},
		{Words: 10, Duration: 60, CapsPct: 2, Source: model.SourceBuiltin},
		{Words: 10, Duration: 60, PunctPct: 0.5, Source: model.SourceBuiltin},
		{Words: 10, Duration: 60, Source: "web"},
	}
	for i, cfg := range bad {
		if err := validateConfig(cfg); err == nil {
			t.Fatalf("case %d: expected validation error", i)
		}
	}
}

func TestBuildSourceBuiltin(t *testing.T) {
	src, err := buildSource(context.Background(), model.Config{Lang: "en", Source: model.SourceBuiltin})
	if err != nil {
		t.Fatalf("buildSource: %v", err)
	}
	words, err := src.Generate(200)
	if err != nil || len(words) != 200 {
		t.Fatalf("unexpected generate result: %d %v", len(words), err)
	}
}

func TestBuildSourceFile(t *testing.T) {
	cfgHome := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", cfgHome)
	writeFile(t, filepath.Join(cfgHome, "wordrush", "wordlists", "xx.txt"), "alpha\nbeta\n")

	src, err := buildSource(context.Background(), model.Config{Lang: "xx", Source: model.SourceFile})
	if err != nil {
		t.Fatalf("buildSource: %v", err)
	}
	words, err := src.Generate(5)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	for _, w := range words {
		if w != "alpha" && w != "beta" {
			t.Fatalf("unexpected word %q", w)
		}
	}

	if _, err := buildSource(context.Background(), model.Config{Lang: "yy", Source: model.SourceFile}); err == nil {
		t.Fatalf("expected error for missing word list")
	}
}

func TestDictImportAndDBSource(t *testing.T) {
	t.Setenv("XDG_DATA_HOME", t.TempDir())
	listPath := filepath.Join(t.TempDir(), "words.txt")
	writeFile(t, listPath, "cat\ndog\nCafe\n")

	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"dict", "import", "--lang", "en", listPath})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("dict import: %v", err)
	}
	if !strings.Contains(out.String(), "Imported 2 new en words") {
		t.Fatalf("unexpected import output: %q", out.String())
	}

	out.Reset()
	cmd = newRootCmd()
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"dict", "langs"})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("dict langs: %v", err)
	}
	if strings.TrimSpace(out.String()) != "en\t2" {
		t.Fatalf("unexpected langs output: %q", out.String())
	}

	src, err := buildSource(context.Background(), model.Config{Lang: "en", Source: model.SourceDB})
	if err != nil {
		t.Fatalf("buildSource: %v", err)
	}
	words, err := src.Generate(4)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	for _, w := range words {
		if w != "cat" && w != "dog" {
			t.Fatalf("unexpected word %q", w)
		}
	}
	if _, err := buildSource(context.Background(), model.Config{Lang: "de", Source: model.SourceDB}); err == nil {
		t.Fatalf("expected error for empty dictionary language")
	}
}

func TestEnsureConfigFileWritesTemplate(t *testing.T) {
	path := filepath.Join(t.TempDir(), "wordrush", "config.toml")
	if err := ensureConfigFile(path); err != nil {
		t.Fatalf("ensureConfigFile: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read config: %v", err)
	}
	if !strings.Contains(string(data), "[practice]") || !strings.Contains(string(data), "# duration = 60") {
		t.Fatalf("unexpected template: %s", data)
	}
}
