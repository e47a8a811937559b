//go:generate mockery --name Service --output ./mocks --outpkg mocks --case=underscore
package search

import (
	"context"
	"sort"

	"go_5_vocab_srs/internal/config"
	"go_5_vocab_srs/internal/embedding"
	"go_5_vocab_srs/internal/middleware"
	"go_5_vocab_srs/internal/model"
	"go_5_vocab_srs/internal/repository"

	"gorm.io/gorm"
)

// Options は検索パラメータ。未指定の値は設定のデフォルトで補う。
type Options struct {
	Limit     int
	Threshold float64
}

// Service は語彙コレクションに対するセマンティック近傍検索です。
//
// GraphService と違い、このサービスは機能が有効なのに依存先が壊れている
// 場合はハードに失敗する: 劣化した検索結果は誤解を招くため返さない。
// フラグ無効時は「見つからない」と区別できる ErrFeatureDisabled を返す。
type Service interface {
	Search(ctx context.Context, query string, opts Options) ([]model.ScoredResult, error)
	// HybridSearch は構造化フィルタで候補を絞ってからベクトル類似度で順位付けします。
	// ベクトル比較のコストを事前に絞った候補集合に限定する二段構成。
	HybridSearch(ctx context.Context, query string, filter repository.VocabFilter, opts Options) ([]model.ScoredResult, error)
	Health(ctx context.Context) model.ComponentHealth
}

type service struct {
	db        *gorm.DB
	cfg       *config.Config
	vocabRepo repository.VocabRepository
	embedder  embedding.Service
}

func NewService(db *gorm.DB, cfg *config.Config, vocabRepo repository.VocabRepository, embedder embedding.Service) Service {
	return &service{
		db:        db,
		cfg:       cfg,
		vocabRepo: vocabRepo,
		embedder:  embedder,
	}
}

func (s *service) Search(ctx context.Context, query string, opts Options) ([]model.ScoredResult, error) {
	return s.HybridSearch(ctx, query, repository.VocabFilter{}, opts)
}

func (s *service) HybridSearch(ctx context.Context, query string, filter repository.VocabFilter, opts Options) ([]model.ScoredResult, error) {
	logger := middleware.GetLogger(ctx)

	if !s.cfg.Features.UseVectorSearch {
		return nil, model.NewAppError("FEATURE_DISABLED",
			"ベクトル検索は現在無効化されています。", "", model.ErrFeatureDisabled)
	}

	limit := opts.Limit
	if limit <= 0 {
		limit = s.cfg.Search.DefaultLimit
	}
	threshold := opts.Threshold
	if threshold == 0 {
		threshold = s.cfg.Search.SimilarityThreshold
	}

	record, err := s.embedder.Embed(ctx, query)
	if err != nil {
		return nil, model.NewAppError("SEARCH_EMBED_FAILED",
			"検索クエリの埋め込み生成に失敗しました。", "", model.ErrInternalServer)
	}
	if record.Fallback {
		// フォールバックベクトルでの検索は誤った結果を返しかねないため拒否する
		logger.Error("Vector search rejected: query embedding degraded to fallback")
		return nil, model.NewAppError("SEARCH_UNAVAILABLE",
			"埋め込みプロバイダが利用できないため検索できません。", "", model.ErrDependencyTimeout)
	}

	candidates, err := s.vocabRepo.FindCandidates(ctx, s.db, filter, s.cfg.Search.CandidateLimit)
	if err != nil {
		logger.Error("Failed to load search candidates", "error", err)
		return nil, model.NewAppError("SEARCH_FAILED",
			"検索候補の取得に失敗しました。", "", model.ErrInternalServer)
	}

	results := make([]model.ScoredResult, 0, len(candidates))
	for _, item := range candidates {
		vec := s.itemVector(ctx, item)
		if vec == nil {
			continue
		}
		sim, err := s.embedder.Similarity(record.Vector, vec)
		if err != nil {
			// 次元不一致は別モデルで計算された古いキャッシュ。スキップして再埋め込みに任せる。
			logger.Debug("Skipping candidate with incompatible vector",
				"vocabulary_id", item.VocabularyID, "error", err)
			continue
		}
		if sim >= threshold {
			results = append(results, model.ScoredResult{
				VocabularyID: item.VocabularyID,
				Word:         item.Word,
				Translation:  item.Translation,
				Language:     item.Language,
				Difficulty:   item.Difficulty,
				Similarity:   sim,
			})
		}
	}

	sort.Slice(results, func(i, j int) bool { return results[i].Similarity > results[j].Similarity })
	if len(results) > limit {
		results = results[:limit]
	}
	return results, nil
}

func (s *service) Health(ctx context.Context) model.ComponentHealth {
	if !s.cfg.Features.UseVectorSearch {
		return model.ComponentHealth{Name: "vector_search", Status: model.StatusDisabled}
	}
	return model.ComponentHealth{Name: "vector_search", Status: model.StatusHealthy}
}

// itemVector は語彙のキャッシュ済みベクトルを返し、無ければ埋め込みを
// 生成して保存します (遅延バックフィル)。保存失敗は無視してよい:
// 埋め込みは派生データであり、失っても再計算できる。
func (s *service) itemVector(ctx context.Context, item *model.VocabularyItem) []float32 {
	logger := middleware.GetLogger(ctx)

	if vec := item.Vector(); vec != nil && item.EmbeddingModel == s.cfg.Embedding.Model {
		return vec
	}

	record, err := s.embedder.Embed(ctx, item.Word+" "+item.Translation)
	if err != nil || record.Fallback {
		return nil
	}

	if err := item.SetVector(record.Vector, record.Model); err == nil {
		if err := s.vocabRepo.SaveEmbedding(ctx, s.db, item); err != nil {
			logger.Debug("Failed to backfill vocabulary embedding", "error", err)
		}
	}
	return record.Vector
}
