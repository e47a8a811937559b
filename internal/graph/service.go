//go:generate mockery --name Service --output ./mocks --outpkg mocks --case=underscore
package graph

import (
	"context"
	"sort"
	"time"

	"go_5_vocab_srs/internal/config"
	"go_5_vocab_srs/internal/embedding"
	"go_5_vocab_srs/internal/middleware"
	"go_5_vocab_srs/internal/model"
	"go_5_vocab_srs/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Service はユーザーごとの混同グラフを管理します。
//
// 失敗セマンティクス: このサービスはハードに失敗しない。グラフストアに
// 到達できない場合も空リストを返す。呼び出し元は「関連語なし」を
// 正常な結果として扱わなければならない。
// エッジの重みは参考値であり、at-least-once の加算で十分 (厳密な回数は不要)。
type Service interface {
	// RecordConfusion はエッジの重みを加算します。ベストエフォートの副作用として
	// 呼び出される想定で、失敗はログに残すがロールバックはしない。
	RecordConfusion(ctx context.Context, userID, itemA, itemB uuid.UUID) error
	// GetRelated は混同の重い順に関連語彙IDを返します。
	// 混同履歴が乏しい場合は埋め込み類似度にフォールバックする (コールドスタート)。
	GetRelated(ctx context.Context, userID, itemID uuid.UUID, limit int) []uuid.UUID
	GetConfusionPairs(ctx context.Context, userID uuid.UUID) []*model.ConfusionEdge
	Health(ctx context.Context) model.ComponentHealth
}

type service struct {
	db        *gorm.DB
	cfg       *config.Config
	edgeRepo  repository.EdgeRepository
	vocabRepo repository.VocabRepository
	embedder  embedding.Service
}

func NewService(db *gorm.DB, cfg *config.Config, edgeRepo repository.EdgeRepository, vocabRepo repository.VocabRepository, embedder embedding.Service) Service {
	return &service{
		db:        db,
		cfg:       cfg,
		edgeRepo:  edgeRepo,
		vocabRepo: vocabRepo,
		embedder:  embedder,
	}
}

func (s *service) RecordConfusion(ctx context.Context, userID, itemA, itemB uuid.UUID) error {
	logger := middleware.GetLogger(ctx).With("user_id", userID)

	if !s.cfg.Features.UseKnowledgeGraph {
		// フラグ無効時は黙って何もしない (記録はベストエフォートの副作用)
		return nil
	}
	if itemA == itemB {
		logger.Debug("Ignoring self-confusion edge", "item", itemA)
		return nil
	}

	if err := s.edgeRepo.IncrementWeight(ctx, s.db, userID, itemA, itemB, time.Now()); err != nil {
		logger.Warn("Failed to record confusion edge", "error", err)
		return err
	}
	return nil
}

func (s *service) GetRelated(ctx context.Context, userID, itemID uuid.UUID, limit int) []uuid.UUID {
	logger := middleware.GetLogger(ctx).With("user_id", userID, "item_id", itemID)

	if !s.cfg.Features.UseKnowledgeGraph || limit <= 0 {
		return []uuid.UUID{}
	}

	timeoutCtx, cancel := context.WithTimeout(ctx, s.cfg.Learning.ReadTimeout)
	defer cancel()

	related := make([]uuid.UUID, 0, limit)
	seen := map[uuid.UUID]bool{itemID: true}

	edges, err := s.edgeRepo.FindByUserAndItem(timeoutCtx, s.db, userID, itemID, limit)
	if err != nil {
		logger.Warn("Failed to find confusion edges, falling back to similarity", "error", err)
	} else {
		for _, edge := range edges {
			other := edge.ItemA
			if other == itemID {
				other = edge.ItemB
			}
			if !seen[other] {
				seen[other] = true
				related = append(related, other)
			}
		}
	}

	if len(related) >= limit {
		return related[:limit]
	}

	// コールドスタート: 混同履歴が不足している分は埋め込み類似度で補う
	for _, id := range s.relatedBySimilarity(timeoutCtx, itemID, limit, seen) {
		related = append(related, id)
		if len(related) >= limit {
			break
		}
	}
	return related
}

func (s *service) GetConfusionPairs(ctx context.Context, userID uuid.UUID) []*model.ConfusionEdge {
	logger := middleware.GetLogger(ctx).With("user_id", userID)

	if !s.cfg.Features.UseKnowledgeGraph {
		return []*model.ConfusionEdge{}
	}

	timeoutCtx, cancel := context.WithTimeout(ctx, s.cfg.Learning.ReadTimeout)
	defer cancel()

	edges, err := s.edgeRepo.FindByUser(timeoutCtx, s.db, userID)
	if err != nil {
		logger.Warn("Failed to find confusion pairs, returning empty list", "error", err)
		return []*model.ConfusionEdge{}
	}
	return edges
}

func (s *service) Health(ctx context.Context) model.ComponentHealth {
	if !s.cfg.Features.UseKnowledgeGraph {
		return model.ComponentHealth{Name: "graph", Status: model.StatusDisabled}
	}
	return model.ComponentHealth{Name: "graph", Status: model.StatusHealthy}
}

// relatedBySimilarity は対象語彙の埋め込みに近い語彙IDを返します。
// あらゆる失敗は空リストに縮退する。
func (s *service) relatedBySimilarity(ctx context.Context, itemID uuid.UUID, limit int, seen map[uuid.UUID]bool) []uuid.UUID {
	logger := middleware.GetLogger(ctx)

	item, err := s.vocabRepo.FindByID(ctx, s.db, itemID)
	if err != nil {
		logger.Debug("Similarity fallback unavailable: vocabulary not found", "error", err)
		return []uuid.UUID{}
	}

	target := item.Vector()
	if target == nil {
		record, err := s.embedder.Embed(ctx, item.Word+" "+item.Translation)
		if err != nil {
			logger.Debug("Similarity fallback unavailable: embed failed", "error", err)
			return []uuid.UUID{}
		}
		target = record.Vector
	}

	candidates, err := s.vocabRepo.FindCandidates(ctx, s.db,
		repository.VocabFilter{Language: item.Language}, s.cfg.Search.CandidateLimit)
	if err != nil {
		logger.Debug("Similarity fallback unavailable: candidate query failed", "error", err)
		return []uuid.UUID{}
	}

	type scored struct {
		id  uuid.UUID
		sim float64
	}
	ranked := make([]scored, 0, len(candidates))
	for _, c := range candidates {
		if seen[c.VocabularyID] {
			continue
		}
		vec := c.Vector()
		if vec == nil {
			continue
		}
		sim, err := s.embedder.Similarity(target, vec)
		if err != nil {
			continue
		}
		ranked = append(ranked, scored{id: c.VocabularyID, sim: sim})
	}

	sort.Slice(ranked, func(i, j int) bool { return ranked[i].sim > ranked[j].sim })

	result := make([]uuid.UUID, 0, limit)
	for _, r := range ranked {
		result = append(result, r.id)
		if len(result) >= limit {
			break
		}
	}
	return result
}
