package store

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Default tuning tables. Thresholds and keyword sets vary between
// deployments, so they live in config rather than in the aggregation code.
var (
	defaultEarningsKeywords = []string{
		"earnings", "report", "results", "quarter",
		"q1", "q2", "q3", "q4", "revenue", "profit",
	}
	defaultPositiveNudgeWords = []string{"beat", "soars", "strong", "jump"}
	defaultNegativeNudgeWords = []string{"miss", "falls", "weak", "drop"}
)

type Config struct {
	Server struct {
		ListenAddr     string `yaml:"listen_addr"`
		TimeoutSeconds int    `yaml:"timeout_seconds"`
	} `yaml:"server"`
	Scorer struct {
		Strategy    string `yaml:"strategy"` // LEXICON or FINBERT
		MaxInputLen int    `yaml:"max_input_len"`
		FinBERT     struct {
			BaseURL        string `yaml:"base_url"`
			Model          string `yaml:"model"`
			TokenEnv       string `yaml:"token_env"`
			TimeoutSeconds int    `yaml:"timeout_seconds"`
		} `yaml:"finbert"`
	} `yaml:"scorer"`
	Upstream struct {
		BaseURL         string `yaml:"base_url"`
		TimeoutSeconds  int    `yaml:"timeout_seconds"`
		CacheTTLMinutes int    `yaml:"cache_ttl_minutes"`
		ScrapeFallback  bool   `yaml:"scrape_fallback"`
	} `yaml:"upstream"`
	Analysis struct {
		HeadlineWindow int `yaml:"headline_window"`
		Thresholds     struct {
			Lexicon    float64 `yaml:"lexicon"`
			Classifier float64 `yaml:"classifier"`
		} `yaml:"thresholds"`
	} `yaml:"analysis"`
	Earnings struct {
		Keywords           []string `yaml:"keywords"`
		MaxScored          int      `yaml:"max_scored"`
		SampleHeadlines    int      `yaml:"sample_headlines"`
		PositiveNudgeWords []string `yaml:"positive_nudge_words"`
		NegativeNudgeWords []string `yaml:"negative_nudge_words"`
		Nudge              float64  `yaml:"nudge"`
		CallThreshold      float64  `yaml:"call_threshold"`
	} `yaml:"earnings"`
	Watchlist []string `yaml:"watchlist"`
	Calendar  struct {
		TopN int `yaml:"top_n"`
	} `yaml:"calendar"`
}

func (c *Config) Validate() error {
	strategy := strings.ToUpper(c.Scorer.Strategy)
	if strategy != "LEXICON" && strategy != "FINBERT" {
		return fmt.Errorf("invalid scorer.strategy '%s': must be 'LEXICON' or 'FINBERT'", c.Scorer.Strategy)
	}
	if c.Scorer.MaxInputLen <= 0 {
		return fmt.Errorf("scorer.max_input_len must be positive, got %d", c.Scorer.MaxInputLen)
	}
	if c.Analysis.HeadlineWindow <= 0 {
		return fmt.Errorf("analysis.headline_window must be positive, got %d", c.Analysis.HeadlineWindow)
	}
	if c.Analysis.Thresholds.Lexicon <= 0 || c.Analysis.Thresholds.Classifier <= 0 {
		return errors.New("analysis.thresholds must be positive")
	}
	if len(c.Earnings.Keywords) == 0 {
		return errors.New("earnings.keywords cannot be empty")
	}
	if c.Earnings.MaxScored <= 0 {
		return fmt.Errorf("earnings.max_scored must be positive, got %d", c.Earnings.MaxScored)
	}
	return nil
}

// Default returns a fully-defaulted configuration without reading a file.
func Default() *Config {
	var c Config
	c.applyDefaults()
	return &c
}

func (c *Config) applyDefaults() {
	if c.Server.ListenAddr == "" {
		c.Server.ListenAddr = ":8000"
	}
	if c.Server.TimeoutSeconds == 0 {
		c.Server.TimeoutSeconds = 15
	}
	if c.Scorer.Strategy == "" {
		c.Scorer.Strategy = "LEXICON"
	}
	if c.Scorer.MaxInputLen == 0 {
		c.Scorer.MaxInputLen = 512
	}
	if c.Scorer.FinBERT.BaseURL == "" {
		c.Scorer.FinBERT.BaseURL = "https://api-inference.huggingface.co"
	}
	if c.Scorer.FinBERT.Model == "" {
		c.Scorer.FinBERT.Model = "ProsusAI/finbert"
	}
	if c.Scorer.FinBERT.TokenEnv == "" {
		c.Scorer.FinBERT.TokenEnv = "HF_API_TOKEN"
	}
	if c.Scorer.FinBERT.TimeoutSeconds == 0 {
		c.Scorer.FinBERT.TimeoutSeconds = 30
	}
	if c.Upstream.BaseURL == "" {
		c.Upstream.BaseURL = "https://query1.finance.yahoo.com"
	}
	if c.Upstream.TimeoutSeconds == 0 {
		c.Upstream.TimeoutSeconds = 10
	}
	if c.Upstream.CacheTTLMinutes == 0 {
		c.Upstream.CacheTTLMinutes = 15
	}
	if c.Analysis.HeadlineWindow == 0 {
		c.Analysis.HeadlineWindow = 10
	}
	if c.Analysis.Thresholds.Lexicon == 0 {
		c.Analysis.Thresholds.Lexicon = 0.05
	}
	if c.Analysis.Thresholds.Classifier == 0 {
		c.Analysis.Thresholds.Classifier = 15
	}
	if len(c.Earnings.Keywords) == 0 {
		c.Earnings.Keywords = append([]string(nil), defaultEarningsKeywords...)
	}
	if c.Earnings.MaxScored == 0 {
		c.Earnings.MaxScored = 5
	}
	if c.Earnings.SampleHeadlines == 0 {
		c.Earnings.SampleHeadlines = 3
	}
	if len(c.Earnings.PositiveNudgeWords) == 0 {
		c.Earnings.PositiveNudgeWords = append([]string(nil), defaultPositiveNudgeWords...)
	}
	if len(c.Earnings.NegativeNudgeWords) == 0 {
		c.Earnings.NegativeNudgeWords = append([]string(nil), defaultNegativeNudgeWords...)
	}
	if c.Earnings.Nudge == 0 {
		c.Earnings.Nudge = 0.25
	}
	if c.Earnings.CallThreshold == 0 {
		c.Earnings.CallThreshold = 0.05
	}
	if c.Calendar.TopN == 0 {
		c.Calendar.TopN = 10
	}
}

func LoadConfig(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var c Config
	if err := yaml.Unmarshal(b, &c); err != nil {
		return nil, err
	}

	c.applyDefaults()

	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &c, nil
}
