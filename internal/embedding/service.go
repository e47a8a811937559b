//go:generate mockery --name Service --output ./mocks --outpkg mocks --case=underscore
package embedding

import (
	"context"
	"crypto/sha256"
	"encoding/binary"
	"encoding/hex"
	"fmt"
	"math"
	"sync"
	"time"

	"go_5_vocab_srs/internal/config"
	"go_5_vocab_srs/internal/middleware"
	"go_5_vocab_srs/internal/model"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

// Service はテキストを固定次元ベクトルに変換します。
// プロバイダ障害時は決定的なフォールバックベクトルに縮退する (fail-soft):
// 品質は落ちるが可用性は落とさない。
type Service interface {
	Embed(ctx context.Context, text string) (*model.EmbeddingRecord, error)
	BatchEmbed(ctx context.Context, texts []string) ([]*model.EmbeddingRecord, error)
	// Similarity はコサイン類似度 [-1,1] を返します。次元不一致はエラー。
	Similarity(a, b []float32) (float64, error)
	Health(ctx context.Context) model.ComponentHealth
}

type service struct {
	cfg      *config.Config
	provider Provider
	cache    *expirable.LRU[string, []float32]

	mu              sync.Mutex
	lastProviderErr time.Time
}

// NewService は埋め込みサービスを作成します。
// キャッシュは use_semantic_cache フラグが有効な場合のみ持つ。
func NewService(cfg *config.Config, provider Provider) Service {
	s := &service{
		cfg:      cfg,
		provider: provider,
	}
	if cfg.Features.UseSemanticCache {
		s.cache = expirable.NewLRU[string, []float32](
			cfg.Embedding.CacheSize, nil, cfg.Embedding.CacheTTL)
	}
	return s
}

func (s *service) Embed(ctx context.Context, text string) (*model.EmbeddingRecord, error) {
	records, err := s.BatchEmbed(ctx, []string{text})
	if err != nil {
		return nil, err
	}
	return records[0], nil
}

func (s *service) BatchEmbed(ctx context.Context, texts []string) ([]*model.EmbeddingRecord, error) {
	logger := middleware.GetLogger(ctx)

	for _, text := range texts {
		if len([]rune(text)) > model.MaxEmbeddingTextLength {
			return nil, model.NewAppError("TEXT_TOO_LONG",
				fmt.Sprintf("テキストは%d文字以内で指定してください。", model.MaxEmbeddingTextLength),
				"text", model.ErrInvalidInput)
		}
		if text == "" {
			return nil, model.NewAppError("TEXT_EMPTY", "テキストが空です。", "text", model.ErrInvalidInput)
		}
	}

	records := make([]*model.EmbeddingRecord, len(texts))
	var missing []string
	var missingIdx []int

	for i, text := range texts {
		hash := s.cacheKey(text)
		if s.cache != nil {
			if vec, ok := s.cache.Get(hash); ok {
				records[i] = s.newRecord(hash, vec, true, false, 0)
				continue
			}
		}
		missing = append(missing, text)
		missingIdx = append(missingIdx, i)
	}

	if len(missing) == 0 {
		return records, nil
	}

	vectors, tokens, err := s.provider.Embed(ctx, missing)
	if err != nil {
		// フォールバック: ハッシュ由来の擬似ベクトルを返す。
		// 呼び出し元は常に使用可能なベクトルを受け取る。
		logger.Warn("Embedding provider failed, using deterministic fallback vectors",
			"error", err, "count", len(missing))
		s.markProviderError()
		for n, i := range missingIdx {
			hash := s.cacheKey(missing[n])
			vec := fallbackVector(hash, s.cfg.Embedding.Dimensions)
			records[i] = s.newRecord(hash, vec, false, true, 0)
		}
		return records, nil
	}

	perText := 0
	if len(missing) > 0 {
		perText = tokens / len(missing)
	}
	for n, i := range missingIdx {
		hash := s.cacheKey(missing[n])
		vec := vectors[n]
		// フォールバックではない本物のベクトルのみキャッシュする
		if s.cache != nil {
			s.cache.Add(hash, vec)
		}
		records[i] = s.newRecord(hash, vec, false, false, perText)
	}
	return records, nil
}

func (s *service) Similarity(a, b []float32) (float64, error) {
	return CosineSimilarity(a, b)
}

func (s *service) Health(ctx context.Context) model.ComponentHealth {
	health := model.ComponentHealth{Name: "embedding", Status: model.StatusHealthy}

	s.mu.Lock()
	lastErr := s.lastProviderErr
	s.mu.Unlock()

	if !lastErr.IsZero() && time.Since(lastErr) < time.Minute {
		health.Status = model.StatusDegraded
		health.Message = "provider errors within the last minute, serving fallback vectors"
	}
	if s.cfg.Features.UseSemanticCache && s.cache != nil {
		health.Message = fmt.Sprintf("cache entries: %d", s.cache.Len())
	}
	return health
}

func (s *service) newRecord(hash string, vec []float32, cached, fallback bool, tokens int) *model.EmbeddingRecord {
	return &model.EmbeddingRecord{
		TextHash:   hash,
		Vector:     vec,
		Model:      s.cfg.Embedding.Model,
		Dimensions: len(vec),
		TokenCount: tokens,
		Cached:     cached,
		Fallback:   fallback,
	}
}

// cacheKey は hash(text, model, dimensions) をキャッシュキーとして返します
func (s *service) cacheKey(text string) string {
	h := sha256.New()
	h.Write([]byte(text))
	h.Write([]byte{0})
	h.Write([]byte(s.cfg.Embedding.Model))
	h.Write([]byte{0})
	h.Write([]byte(fmt.Sprintf("%d", s.cfg.Embedding.Dimensions)))
	return hex.EncodeToString(h.Sum(nil))
}

func (s *service) markProviderError() {
	s.mu.Lock()
	s.lastProviderErr = time.Now()
	s.mu.Unlock()
}

// CosineSimilarity はコサイン類似度を計算する純粋関数です。
// 次元が一致しないベクトルはプログラミングエラーとして必ずエラーを返す。
func CosineSimilarity(a, b []float32) (float64, error) {
	if len(a) == 0 || len(b) == 0 {
		return 0, model.NewAppError("EMPTY_VECTOR", "ベクトルが空です。", "", model.ErrInvalidInput)
	}
	if len(a) != len(b) {
		return 0, model.NewAppError("DIMENSION_MISMATCH",
			fmt.Sprintf("ベクトルの次元が一致しません (%d != %d)。", len(a), len(b)),
			"", model.ErrDimensionMismatch)
	}

	var dot, normA, normB float64
	for i := range a {
		dot += float64(a[i]) * float64(b[i])
		normA += float64(a[i]) * float64(a[i])
		normB += float64(b[i]) * float64(b[i])
	}
	if normA == 0 || normB == 0 {
		return 0, nil
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB)), nil
}

// fallbackVector はテキストハッシュから決定的な正規化済み擬似ベクトルを生成します。
// 同じテキストには常に同じベクトルを返す。
func fallbackVector(textHash string, dimensions int) []float32 {
	seed := sha256.Sum256([]byte(textHash))
	vec := make([]float32, dimensions)

	state := seed
	var norm float64
	for i := 0; i < dimensions; i++ {
		if i%8 == 0 && i > 0 {
			state = sha256.Sum256(state[:])
		}
		bits := binary.BigEndian.Uint32(state[(i%8)*4 : (i%8)*4+4])
		// [-1, 1) に写像
		v := float64(bits)/float64(math.MaxUint32)*2 - 1
		vec[i] = float32(v)
		norm += v * v
	}

	if norm > 0 {
		scale := float32(1 / math.Sqrt(norm))
		for i := range vec {
			vec[i] *= scale
		}
	}
	return vec
}
