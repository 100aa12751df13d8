package store

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeConfig(t *testing.T, yaml string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(yaml), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadConfigAppliesDefaults(t *testing.T) {
	path := writeConfig(t, `
server:
  listen_addr: ":9000"
watchlist: ["AAPL", "MSFT"]
`)

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Server.ListenAddr != ":9000" {
		t.Errorf("explicit value lost: %q", cfg.Server.ListenAddr)
	}
	if cfg.Scorer.Strategy != "LEXICON" {
		t.Errorf("expected default strategy LEXICON, got %q", cfg.Scorer.Strategy)
	}
	if cfg.Scorer.MaxInputLen != 512 {
		t.Errorf("expected default max_input_len 512, got %d", cfg.Scorer.MaxInputLen)
	}
	if cfg.Analysis.HeadlineWindow != 10 {
		t.Errorf("expected default window 10, got %d", cfg.Analysis.HeadlineWindow)
	}
	if cfg.Earnings.MaxScored != 5 || cfg.Earnings.Nudge != 0.25 {
		t.Errorf("unexpected earnings defaults: %+v", cfg.Earnings)
	}
	if len(cfg.Earnings.Keywords) == 0 {
		t.Error("expected default earnings keywords")
	}
	if len(cfg.Watchlist) != 2 {
		t.Errorf("watchlist not loaded: %v", cfg.Watchlist)
	}
	if cfg.Calendar.TopN != 10 {
		t.Errorf("expected default top_n 10, got %d", cfg.Calendar.TopN)
	}
}

func TestLoadConfigOverrides(t *testing.T) {
	path := writeConfig(t, `
scorer:
  strategy: FINBERT
  max_input_len: 256
analysis:
  headline_window: 15
  thresholds:
    classifier: 20
earnings:
  keywords: ["earnings"]
  max_scored: 3
`)

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Scorer.Strategy != "FINBERT" || cfg.Scorer.MaxInputLen != 256 {
		t.Errorf("scorer overrides lost: %+v", cfg.Scorer)
	}
	if cfg.Analysis.HeadlineWindow != 15 {
		t.Errorf("window override lost: %d", cfg.Analysis.HeadlineWindow)
	}
	if cfg.Analysis.Thresholds.Classifier != 20 {
		t.Errorf("threshold override lost: %v", cfg.Analysis.Thresholds.Classifier)
	}
	if cfg.Analysis.Thresholds.Lexicon != 0.05 {
		t.Errorf("sibling default lost: %v", cfg.Analysis.Thresholds.Lexicon)
	}
	if len(cfg.Earnings.Keywords) != 1 || cfg.Earnings.MaxScored != 3 {
		t.Errorf("earnings overrides lost: %+v", cfg.Earnings)
	}
}

func TestLoadConfigRejectsUnknownStrategy(t *testing.T) {
	path := writeConfig(t, `
scorer:
  strategy: UNKNOWN
`)

	_, err := LoadConfig(path)
	if err == nil {
		t.Fatal("expected validation error")
	}
	if !strings.Contains(err.Error(), "scorer.strategy") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestLoadConfigRejectsBadValues(t *testing.T) {
	cases := []struct {
		name string
		yaml string
		want string
	}{
		{
			name: "negative window",
			yaml: "analysis:\n  headline_window: -1\n",
			want: "headline_window",
		},
		{
			name: "negative max input",
			yaml: "scorer:\n  max_input_len: -5\n",
			want: "max_input_len",
		},
		{
			name: "negative threshold",
			yaml: "analysis:\n  thresholds:\n    lexicon: -0.1\n",
			want: "thresholds",
		},
		{
			name: "negative max scored",
			yaml: "earnings:\n  max_scored: -2\n",
			want: "max_scored",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := LoadConfig(writeConfig(t, tc.yaml))
			if err == nil {
				t.Fatal("expected validation error")
			}
			if !strings.Contains(err.Error(), tc.want) {
				t.Errorf("error %v does not mention %q", err, tc.want)
			}
		})
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	if _, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestLoadConfigInvalidYAML(t *testing.T) {
	path := writeConfig(t, "server: [this is not\n  a mapping")
	if _, err := LoadConfig(path); err == nil {
		t.Fatal("expected YAML parse error")
	}
}

func TestDefaultPassesValidation(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Fatalf("default config must validate: %v", err)
	}
}
