package sentiment

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"stock-sentiment-api/internal/store"
	"stock-sentiment-api/internal/types"
)

// FinBERT scores text with a hosted FinBERT classifier over the
// HuggingFace inference API. Polarity is reported on the [-100, 100]
// scale: +confidence*100 for positive, -confidence*100 for negative,
// 0 for neutral.
type FinBERT struct {
	httpClient  *http.Client
	baseURL     string
	model       string
	tokenEnv    string
	maxInputLen int
}

// NewFinBERT creates the classifier strategy from config. The API token
// is read from the configured environment variable per request so a
// rotated token takes effect without a restart.
func NewFinBERT(cfg *store.Config) *FinBERT {
	return &FinBERT{
		httpClient: &http.Client{
			Timeout: time.Duration(cfg.Scorer.FinBERT.TimeoutSeconds) * time.Second,
		},
		baseURL:     cfg.Scorer.FinBERT.BaseURL,
		model:       cfg.Scorer.FinBERT.Model,
		tokenEnv:    cfg.Scorer.FinBERT.TokenEnv,
		maxInputLen: cfg.Scorer.MaxInputLen,
	}
}

func (f *FinBERT) MaxInputLen() int { return f.maxInputLen }

func (f *FinBERT) Scale() Scale { return ScaleClassifier }

// classification is one label candidate returned by the inference API.
type classification struct {
	Label string  `json:"label"`
	Score float64 `json:"score"`
}

// Score sends text to the inference endpoint and maps the top label to a
// signed polarity.
func (f *FinBERT) Score(ctx context.Context, text string) (Result, error) {
	body := map[string]any{"inputs": text}
	bb, _ := json.Marshal(body)

	url := fmt.Sprintf("%s/models/%s", f.baseURL, f.model)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(bb))
	if err != nil {
		return Result{}, fmt.Errorf("%w: %v", ErrScorerUnavailable, err)
	}
	req.Header.Set("Content-Type", "application/json")
	if token := os.Getenv(f.tokenEnv); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := f.httpClient.Do(req)
	if err != nil {
		return Result{}, fmt.Errorf("%w: %v", ErrScorerUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		return Result{}, fmt.Errorf("%w: inference http %d", ErrScorerUnavailable, resp.StatusCode)
	}

	// The text-classification pipeline returns one candidate list per input.
	var candidates [][]classification
	if err := json.NewDecoder(resp.Body).Decode(&candidates); err != nil {
		return Result{}, fmt.Errorf("%w: invalid response: %v", ErrScorerUnavailable, err)
	}
	if len(candidates) == 0 || len(candidates[0]) == 0 {
		return Result{}, fmt.Errorf("%w: empty classification", ErrScorerUnavailable)
	}

	top := candidates[0][0]
	for _, c := range candidates[0][1:] {
		if c.Score > top.Score {
			top = c
		}
	}

	label, polarity := classifierPolarity(top.Label, top.Score)
	return Result{
		Label:      label,
		Polarity:   polarity,
		Confidence: top.Score,
	}, nil
}

// classifierPolarity converts a model label and confidence to the
// [-100, 100] scale.
func classifierPolarity(label string, confidence float64) (types.Label, float64) {
	switch strings.ToLower(label) {
	case "positive":
		return types.LabelPositive, confidence * 100
	case "negative":
		return types.LabelNegative, -confidence * 100
	default:
		return types.LabelNeutral, 0
	}
}
