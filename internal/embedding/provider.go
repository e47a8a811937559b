// internal/embedding/provider.go
package embedding

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"go_5_vocab_srs/internal/config"
	"go_5_vocab_srs/internal/model"
)

// Provider は外部の埋め込みプロバイダ (OpenAI互換API) への境界です。
// テストではスタブに差し替える。
type Provider interface {
	// Embed はテキスト群のベクトルと合計トークン数を返します
	Embed(ctx context.Context, texts []string) ([][]float32, int, error)
}

// --- OpenAI互換 HTTPプロバイダ ---

type providerRequest struct {
	Input      []string `json:"input"`
	Model      string   `json:"model"`
	Dimensions int      `json:"dimensions,omitempty"`
}

type providerResponse struct {
	Data []struct {
		Embedding []float32 `json:"embedding"`
		Index     int       `json:"index"`
	} `json:"data"`
	Usage struct {
		PromptTokens int `json:"prompt_tokens"`
		TotalTokens  int `json:"total_tokens"`
	} `json:"usage"`
}

type httpProvider struct {
	cfg    config.EmbeddingConfig
	client *http.Client
}

// NewHTTPProvider はOpenAI互換の埋め込みAPIクライアントを作成します。
// タイムアウトは設定値で制限し、遅いプロバイダが全体を巻き込まないようにする。
func NewHTTPProvider(cfg config.EmbeddingConfig) Provider {
	return &httpProvider{
		cfg:    cfg,
		client: &http.Client{Timeout: cfg.Timeout},
	}
}

func (p *httpProvider) Embed(ctx context.Context, texts []string) ([][]float32, int, error) {
	if p.cfg.Endpoint == "" {
		return nil, 0, fmt.Errorf("embedding endpoint not configured")
	}

	reqBody := providerRequest{
		Input:      texts,
		Model:      p.cfg.Model,
		Dimensions: p.cfg.Dimensions,
	}
	bodyJSON, err := json.Marshal(reqBody)
	if err != nil {
		return nil, 0, fmt.Errorf("marshal embedding request: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, p.cfg.Timeout)
	defer cancel()

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, p.cfg.Endpoint, bytes.NewReader(bodyJSON))
	if err != nil {
		return nil, 0, fmt.Errorf("create embedding request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	if p.cfg.APIKey != "" {
		httpReq.Header.Set("Authorization", "Bearer "+p.cfg.APIKey)
	}

	resp, err := p.client.Do(httpReq)
	if err != nil {
		if ctx.Err() == context.DeadlineExceeded {
			return nil, 0, fmt.Errorf("embedding API call: %w", model.ErrDependencyTimeout)
		}
		return nil, 0, fmt.Errorf("embedding API call: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
		return nil, 0, fmt.Errorf("embedding API %d: %s", resp.StatusCode, string(body))
	}

	var apiResp providerResponse
	if err := json.NewDecoder(resp.Body).Decode(&apiResp); err != nil {
		return nil, 0, fmt.Errorf("decode embedding response: %w", err)
	}

	vectors := make([][]float32, len(texts))
	for _, d := range apiResp.Data {
		if d.Index >= 0 && d.Index < len(vectors) {
			vectors[d.Index] = d.Embedding
		}
	}
	for i, v := range vectors {
		if len(v) == 0 {
			return nil, 0, fmt.Errorf("empty embedding result for input %d", i)
		}
	}

	return vectors, apiResp.Usage.TotalTokens, nil
}
