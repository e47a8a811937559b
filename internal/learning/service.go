//go:generate mockery --name Service --output ./mocks --outpkg mocks --case=underscore
package learning

import (
	"context"
	"errors"
	"math"
	"sort"
	"time"

	"go_5_vocab_srs/internal/config"
	"go_5_vocab_srs/internal/graph"
	"go_5_vocab_srs/internal/middleware"
	"go_5_vocab_srs/internal/model"
	"go_5_vocab_srs/internal/repository"
	"go_5_vocab_srs/internal/srs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// サンプル数不足のときの confidence 上限。
// min_confidence_samples 未満では confidence が 1.0 に達しないことを保証する。
const lowSampleConfidenceCap = 0.6

// confidence の飽和上限。サンプルが多くても 1.0 は報告しない。
const maxConfidence = 0.95

// 楽観ロック競合時のリトライ回数
const cardUpdateRetries = 3

// Service はインタラクションの記録と成功率予測を担当します。
//
// 失敗セマンティクス: fail-soft。内部依存の障害はベースライン応答
// (混同グラフなしの純粋な成功率予測) に縮退し、エラーを上位に伝播しない。
// スケジューリングは常に何らかの答えを返さなければならない。
type Service interface {
	// RecordInteraction は復習試行を記録し、対応する ReviewCard を
	// SM-2 で前進させます。confusedWith が指定された場合の混同エッジ記録は
	// 独立したベストエフォートの副作用で、失敗してもロールバックしない。
	RecordInteraction(ctx context.Context, userID, vocabularyID uuid.UUID, success bool, responseTimeMs int, confusedWith *uuid.UUID) error
	GetPrediction(ctx context.Context, userID, vocabularyID uuid.UUID) (*model.Prediction, error)
	// GetOptimalReviewSchedule は期限超過度と予測成功率を組み合わせた
	// 優先度順で、復習すべきカードを最大 limit 件返します。
	GetOptimalReviewSchedule(ctx context.Context, userID uuid.UUID, limit int) ([]*model.ScheduleEntry, error)
	// GetConfusionPairs は GraphService に委譲します
	GetConfusionPairs(ctx context.Context, userID uuid.UUID) []*model.ConfusionEdge
	Health(ctx context.Context) model.ComponentHealth
}

type service struct {
	db              *gorm.DB
	cfg             *config.Config
	cardRepo        repository.CardRepository
	interactionRepo repository.InteractionRepository
	edgeRepo        repository.EdgeRepository
	vocabRepo       repository.VocabRepository
	graphSvc        graph.Service
}

func NewService(
	db *gorm.DB,
	cfg *config.Config,
	cardRepo repository.CardRepository,
	interactionRepo repository.InteractionRepository,
	edgeRepo repository.EdgeRepository,
	vocabRepo repository.VocabRepository,
	graphSvc graph.Service,
) Service {
	return &service{
		db:              db,
		cfg:             cfg,
		cardRepo:        cardRepo,
		interactionRepo: interactionRepo,
		edgeRepo:        edgeRepo,
		vocabRepo:       vocabRepo,
		graphSvc:        graphSvc,
	}
}

func (s *service) RecordInteraction(ctx context.Context, userID, vocabularyID uuid.UUID, success bool, responseTimeMs int, confusedWith *uuid.UUID) error {
	logger := middleware.GetLogger(ctx).With("user_id", userID, "vocabulary_id", vocabularyID)

	if responseTimeMs < 0 || responseTimeMs > model.MaxResponseTimeMs {
		return model.NewAppError("INVALID_RESPONSE_TIME",
			"回答時間が範囲外です。", "response_time", model.ErrInvalidInput)
	}

	now := time.Now()
	interaction := &model.Interaction{
		InteractionID:  uuid.New(),
		UserID:         userID,
		VocabularyID:   vocabularyID,
		Success:        success,
		ResponseTimeMs: responseTimeMs,
		ConfusedWith:   confusedWith,
		CreatedAt:      now,
	}
	if err := s.interactionRepo.Append(ctx, s.db, interaction); err != nil {
		logger.Error("Failed to append interaction", "error", err)
		return model.NewAppError("INTERNAL_SERVER_ERROR",
			"インタラクションの記録に失敗しました。", "", model.ErrInternalServer)
	}

	// ReviewCard の前進。同一カードへの並行更新は楽観ロックで直列化し、
	// 競合したら読み直してリトライする (last-writer-wins は不可)。
	if err := s.advanceCard(ctx, userID, vocabularyID, success, responseTimeMs, now); err != nil {
		logger.Error("Failed to advance review card", "error", err)
		return err
	}

	// 混同エッジの記録は独立した副作用。失敗はログのみ (at-least-once, best-effort)。
	if confusedWith != nil {
		if err := s.graphSvc.RecordConfusion(ctx, userID, vocabularyID, *confusedWith); err != nil {
			logger.Warn("Failed to record confusion edge (best-effort, not rolled back)", "error", err)
		}
	}

	return nil
}

func (s *service) advanceCard(ctx context.Context, userID, vocabularyID uuid.UUID, success bool, responseTimeMs int, now time.Time) error {
	logger := middleware.GetLogger(ctx)

	for attempt := 0; attempt < cardUpdateRetries; attempt++ {
		card, err := s.cardRepo.FindByUserAndVocab(ctx, s.db, userID, vocabularyID)
		if errors.Is(err, model.ErrNotFound) {
			newCard := s.newCard(ctx, userID, vocabularyID)
			updated := srs.ComputeNext(*newCard, success, responseTimeMs, now)
			updated.CardID = newCard.CardID
			createErr := s.cardRepo.Create(ctx, s.db, &updated)
			if errors.Is(createErr, model.ErrConflict) {
				// 並行リクエストが先にカードを作成した。読み直して更新経路へ。
				continue
			}
			if createErr != nil {
				return model.NewAppError("INTERNAL_SERVER_ERROR",
					"復習カードの作成に失敗しました。", "", model.ErrInternalServer)
			}
			return nil
		}
		if err != nil {
			return model.NewAppError("INTERNAL_SERVER_ERROR",
				"復習カードの取得に失敗しました。", "", model.ErrInternalServer)
		}

		updated := srs.ComputeNext(*card, success, responseTimeMs, now)
		updateErr := s.cardRepo.UpdateVersioned(ctx, s.db, &updated)
		if errors.Is(updateErr, model.ErrConflict) {
			logger.Debug("Optimistic lock conflict on review card, retrying", "attempt", attempt+1)
			continue
		}
		if updateErr != nil {
			return model.NewAppError("INTERNAL_SERVER_ERROR",
				"復習カードの更新に失敗しました。", "", model.ErrInternalServer)
		}
		return nil
	}

	return model.NewAppError("CONFLICT",
		"復習カードの更新が競合しました。再試行してください。", "", model.ErrConflict)
}

func (s *service) newCard(ctx context.Context, userID, vocabularyID uuid.UUID) *model.ReviewCard {
	card := &model.ReviewCard{
		CardID:       uuid.New(),
		UserID:       userID,
		VocabularyID: vocabularyID,
		EaseFactor:   model.DefaultEaseFactor,
		Version:      1,
	}
	// 表示用の word は非正規化フィールド。取れなくても致命的ではない。
	if item, err := s.vocabRepo.FindByID(ctx, s.db, vocabularyID); err == nil {
		card.Word = item.Word
	}
	return card
}

func (s *service) GetPrediction(ctx context.Context, userID, vocabularyID uuid.UUID) (*model.Prediction, error) {
	logger := middleware.GetLogger(ctx).With("user_id", userID, "vocabulary_id", vocabularyID)

	timeoutCtx, cancel := context.WithTimeout(ctx, s.cfg.Learning.ReadTimeout)
	defer cancel()

	prediction := &model.Prediction{
		UserID:                userID,
		VocabularyID:          vocabularyID,
		PredictedSuccessRate:  0.5,
		Confidence:            0,
		RecommendedDifficulty: model.DifficultyBeginner,
		NextReviewDate:        time.Now().AddDate(0, 0, 1),
		BaselineOnly:          true,
	}

	if item, err := s.vocabRepo.FindByID(timeoutCtx, s.db, vocabularyID); err == nil {
		prediction.RecommendedDifficulty = item.Difficulty
	}

	var card *model.ReviewCard
	if c, err := s.cardRepo.FindByUserAndVocab(timeoutCtx, s.db, userID, vocabularyID); err == nil {
		card = c
		prediction.NextReviewDate = c.NextReview
	}

	interactions, err := s.interactionRepo.FindRecentByUserAndVocab(
		timeoutCtx, s.db, userID, vocabularyID, s.cfg.Learning.RecentWindow)
	if err != nil {
		// ストア障害でも予測は返す (コールドスタート相当に縮退)
		logger.Warn("Failed to load interactions, returning cold-start prediction", "error", err)
		return prediction, nil
	}

	prediction.SampleCount = len(interactions)
	if len(interactions) > 0 {
		prediction.PredictedSuccessRate = s.weightedSuccessRate(interactions)
		prediction.Confidence = s.confidenceFromSamples(len(interactions))
	}

	// グラフ信号による補正 (GNN学習が有効な場合のみ)
	if s.cfg.Features.UseGNNLearning {
		prediction.BaselineOnly = false
		s.applyConfusionPenalty(timeoutCtx, prediction)
		prediction.SuggestedRelatedWords = s.graphSvc.GetRelated(
			timeoutCtx, userID, vocabularyID, s.cfg.Schedule.RelatedLimit)
	}

	s.adjustRecommendedDifficulty(prediction, card)

	prediction.PredictedSuccessRate = clamp01(prediction.PredictedSuccessRate)
	prediction.Confidence = clamp01(prediction.Confidence)
	return prediction, nil
}

// weightedSuccessRate は指数加重の成功率を計算します。
// interactions は新しい順で渡され、新しいものほど重みが大きい。
func (s *service) weightedSuccessRate(interactions []*model.Interaction) float64 {
	decay := s.cfg.Learning.DecayFactor
	weight := 1.0
	var sum, total float64
	for _, it := range interactions {
		if it.Success {
			sum += weight
		}
		total += weight
		weight *= decay
	}
	if total == 0 {
		return 0.5
	}
	return sum / total
}

// confidenceFromSamples はサンプル数の単調非減少関数です。
// n / (n + 3) を min_confidence_samples 未満では lowSampleConfidenceCap、
// それ以外では maxConfidence で頭打ちにする。1.0 には決して達しない。
func (s *service) confidenceFromSamples(n int) float64 {
	confidence := float64(n) / (float64(n) + 3.0)
	if n < s.cfg.Learning.MinConfidenceSamples {
		return math.Min(confidence, lowSampleConfidenceCap)
	}
	return math.Min(confidence, maxConfidence)
}

// applyConfusionPenalty は混同エッジの重みに応じて予測成功率と
// confidence を引き下げます。エッジが重いほど成功しにくい。
func (s *service) applyConfusionPenalty(ctx context.Context, prediction *model.Prediction) {
	logger := middleware.GetLogger(ctx)

	edges, err := s.edgeRepo.FindByUserAndItem(ctx, s.db, prediction.UserID, prediction.VocabularyID, 20)
	if err != nil {
		// グラフストア障害はベースラインに縮退
		logger.Warn("Failed to load confusion edges for prediction, skipping penalty", "error", err)
		prediction.BaselineOnly = true
		return
	}

	totalWeight := 0
	for _, edge := range edges {
		totalWeight += edge.Weight
	}
	if totalWeight == 0 {
		return
	}

	ratePenalty := math.Min(0.3, 0.03*float64(totalWeight))
	confidencePenalty := math.Min(0.3, 0.05*float64(len(edges)))
	prediction.PredictedSuccessRate -= ratePenalty
	prediction.Confidence *= 1 - confidencePenalty
}

// adjustRecommendedDifficulty は予測成功率とカードの間隔から推奨難易度を調整します。
// 高成功率かつ短い間隔は「簡単すぎる」シグナルとして難易度を上げる。
func (s *service) adjustRecommendedDifficulty(prediction *model.Prediction, card *model.ReviewCard) {
	if prediction.SampleCount == 0 {
		return
	}
	if prediction.PredictedSuccessRate > 0.85 && (card == nil || card.IntervalDays < 7) {
		prediction.RecommendedDifficulty = harder(prediction.RecommendedDifficulty)
	} else if prediction.PredictedSuccessRate < 0.4 {
		prediction.RecommendedDifficulty = easier(prediction.RecommendedDifficulty)
	}
}

func (s *service) GetOptimalReviewSchedule(ctx context.Context, userID uuid.UUID, limit int) ([]*model.ScheduleEntry, error) {
	logger := middleware.GetLogger(ctx).With("user_id", userID)

	if limit <= 0 || limit > s.cfg.Schedule.Limit {
		limit = s.cfg.Schedule.Limit
	}

	now := time.Now()
	// 優先度順に並べ替えるため、限度より広めに取得する
	cards, err := s.cardRepo.FindDueByUser(ctx, s.db, userID, now, limit*3)
	if err != nil {
		logger.Error("Failed to find due cards", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR",
			"復習スケジュールの取得に失敗しました。", "", model.ErrInternalServer)
	}

	entries := make([]*model.ScheduleEntry, 0, len(cards))
	for _, card := range cards {
		entry := &model.ScheduleEntry{
			CardID:        card.CardID,
			VocabularyID:  card.VocabularyID,
			Word:          card.Word,
			ScheduledDate: card.NextReview,
			Source:        model.SourceSM2,
		}

		overdueDays := now.Sub(card.NextReview).Hours() / 24
		if overdueDays < 0 {
			overdueDays = 0
		}

		prediction, err := s.GetPrediction(ctx, userID, card.VocabularyID)
		if err == nil {
			entry.ConfidenceScore = prediction.Confidence
			entry.RecommendedRelated = prediction.SuggestedRelatedWords
			// 期限超過が大きく、成功予測が低いものほど優先
			entry.Priority = overdueDays + (1-prediction.PredictedSuccessRate)*2
			if !prediction.BaselineOnly {
				entry.Source = model.SourceHybrid
			}
		} else {
			entry.Priority = overdueDays
		}
		entries = append(entries, entry)
	}

	sort.SliceStable(entries, func(i, j int) bool { return entries[i].Priority > entries[j].Priority })
	if len(entries) > limit {
		entries = entries[:limit]
	}

	logger.Info("Successfully built review schedule", "count", len(entries))
	return entries, nil
}

func (s *service) GetConfusionPairs(ctx context.Context, userID uuid.UUID) []*model.ConfusionEdge {
	return s.graphSvc.GetConfusionPairs(ctx, userID)
}

func (s *service) Health(ctx context.Context) model.ComponentHealth {
	if !s.cfg.Features.UseGNNLearning {
		return model.ComponentHealth{Name: "learning", Status: model.StatusDisabled,
			Message: "gnn learning disabled, serving baseline predictions"}
	}
	return model.ComponentHealth{Name: "learning", Status: model.StatusHealthy}
}

func clamp01(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}

func harder(d model.Difficulty) model.Difficulty {
	switch d {
	case model.DifficultyBeginner:
		return model.DifficultyIntermediate
	default:
		return model.DifficultyAdvanced
	}
}

func easier(d model.Difficulty) model.Difficulty {
	switch d {
	case model.DifficultyAdvanced:
		return model.DifficultyIntermediate
	default:
		return model.DifficultyBeginner
	}
}
