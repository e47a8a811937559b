//go:generate mockery --name Bridge --output ./mocks --outpkg mocks --case=underscore
package bridge

import (
	"context"
	"math"
	"time"

	"go_5_vocab_srs/internal/config"
	"go_5_vocab_srs/internal/learning"
	"go_5_vocab_srs/internal/middleware"
	"go_5_vocab_srs/internal/model"

	"github.com/google/uuid"
)

// Bridge は SM-2 ベースラインと学習ベース予測を単一のハイブリッド
// スケジュールに統合するオーケストレーション層です。
//
// 不変条件: ハイブリッド層はベースラインを「調整」するだけで「置換」しない。
// 拡張経路が完全に停止しても、決定的な ReviewCard 状態だけで有効な
// スケジュールが成立する。
type Bridge interface {
	// GetHybridSchedule は渡されたカード状態ごとにスケジュールを計算します。
	// 永続化の副作用はない。拡張経路の可否はリクエストごとに1回だけ判定する。
	GetHybridSchedule(ctx context.Context, userID uuid.UUID, cards []model.ReviewCard) *model.ScheduleResponse
	// AdaptDifficulty は予測の confidence が閾値を超える場合に限り、
	// easeFactor を推奨難易度へ少しずつ近づけます (振動を防ぐため1回の
	// 変化量は ease_step で制限)。それ以外はカードを変更せず返す。
	AdaptDifficulty(ctx context.Context, userID uuid.UUID, card model.ReviewCard) (model.ReviewCard, bool)
	// IsGNNAvailable は拡張経路の可否の単一情報源です。
	// フィーチャーフラグと直近の呼び出し成否の両方を反映する。
	IsGNNAvailable() bool
	Health(ctx context.Context) model.ComponentHealth
}

// predictionProvider はリクエストごとに1回選択される予測戦略です
type predictionProvider interface {
	Predict(ctx context.Context, userID, vocabularyID uuid.UUID) (*model.Prediction, error)
}

// baselineProvider は予測を返さない。純粋な SM-2 経路。
type baselineProvider struct{}

func (baselineProvider) Predict(context.Context, uuid.UUID, uuid.UUID) (*model.Prediction, error) {
	return nil, nil
}

// enhancedProvider は LearningService の予測を使い、成否をトラッカーに報告する
type enhancedProvider struct {
	learningSvc learning.Service
	tracker     *availabilityTracker
}

func (p *enhancedProvider) Predict(ctx context.Context, userID, vocabularyID uuid.UUID) (*model.Prediction, error) {
	prediction, err := p.learningSvc.GetPrediction(ctx, userID, vocabularyID)
	if err != nil {
		p.tracker.ReportFailure()
		return nil, err
	}
	p.tracker.ReportSuccess()
	return prediction, nil
}

type srsBridge struct {
	cfg         *config.Config
	learningSvc learning.Service
	tracker     *availabilityTracker
}

func New(cfg *config.Config, learningSvc learning.Service) Bridge {
	return &srsBridge{
		cfg:         cfg,
		learningSvc: learningSvc,
		tracker:     newAvailabilityTracker(),
	}
}

func (b *srsBridge) IsGNNAvailable() bool {
	return b.cfg.Features.UseGNNLearning && b.tracker.Available()
}

// provider はこのリクエストで使う予測戦略を1回だけ決定します
func (b *srsBridge) provider() (predictionProvider, bool) {
	if b.IsGNNAvailable() {
		return &enhancedProvider{learningSvc: b.learningSvc, tracker: b.tracker}, true
	}
	return baselineProvider{}, false
}

func (b *srsBridge) GetHybridSchedule(ctx context.Context, userID uuid.UUID, cards []model.ReviewCard) *model.ScheduleResponse {
	logger := middleware.GetLogger(ctx).With("user_id", userID)

	now := time.Now()
	provider, enhanced := b.provider()

	// レスポンスの enhanced は「実際に拡張経路を使ったエントリがあるか」。
	// 経路が選択されても全カードがベースラインに縮退したら false を返す。
	usedEnhanced := false
	entries := make([]*model.ScheduleEntry, 0, len(cards))
	for _, card := range cards {
		baseline := card.NextReview
		if baseline.IsZero() {
			baseline = now.AddDate(0, 0, card.IntervalDays)
		}

		entry := &model.ScheduleEntry{
			CardID:        card.CardID,
			VocabularyID:  card.VocabularyID,
			Word:          card.Word,
			ScheduledDate: baseline,
			Source:        model.SourceSM2,
		}

		if enhanced {
			prediction, err := provider.Predict(ctx, userID, card.VocabularyID)
			if err != nil {
				// 予測失敗はこのカードだけベースラインに縮退。半端なブレンドは書かない。
				logger.Warn("Prediction failed, falling back to baseline for card",
					"vocabulary_id", card.VocabularyID, "error", err)
			} else if prediction != nil {
				entry.ScheduledDate = b.blendDate(baseline, prediction, now)
				entry.ConfidenceScore = prediction.Confidence
				entry.RecommendedRelated = prediction.SuggestedRelatedWords
				entry.Source = model.SourceHybrid
				usedEnhanced = true
			}
		}

		entries = append(entries, entry)
	}

	return &model.ScheduleResponse{Entries: entries, Enhanced: usedEnhanced}
}

// blendDate はベースライン日付を予測に応じて前倒しします。
// 前倒し量は max_shift_days × (1 − 予測成功率) × confidence。
// 過去にはスケジュールしない ("now" より前に倒さない)。
func (b *srsBridge) blendDate(baseline time.Time, prediction *model.Prediction, now time.Time) time.Time {
	shiftDays := float64(b.cfg.Schedule.MaxShiftDays) *
		(1 - prediction.PredictedSuccessRate) * prediction.Confidence
	if shiftDays <= 0 {
		return baseline
	}
	if shiftDays > float64(b.cfg.Schedule.MaxShiftDays) {
		shiftDays = float64(b.cfg.Schedule.MaxShiftDays)
	}

	shiftHours := math.Round(shiftDays * 24)
	shifted := baseline.Add(-time.Duration(shiftHours) * time.Hour)
	if shifted.Before(now) {
		return now
	}
	return shifted
}

func (b *srsBridge) AdaptDifficulty(ctx context.Context, userID uuid.UUID, card model.ReviewCard) (model.ReviewCard, bool) {
	logger := middleware.GetLogger(ctx).With("user_id", userID, "vocabulary_id", card.VocabularyID)

	provider, enhanced := b.provider()
	if !enhanced {
		return card, false
	}

	prediction, err := provider.Predict(ctx, userID, card.VocabularyID)
	if err != nil || prediction == nil {
		logger.Warn("Prediction unavailable, returning card unchanged", "error", err)
		return card, false
	}
	if prediction.Confidence < b.cfg.Schedule.MinAdaptConfidence {
		logger.Debug("Confidence below adaptation threshold, returning card unchanged",
			"confidence", prediction.Confidence)
		return card, false
	}

	target := targetEase(prediction.RecommendedDifficulty)
	step := b.cfg.Schedule.EaseStep
	diff := target - card.EaseFactor
	if math.Abs(diff) > step {
		diff = math.Copysign(step, diff)
	}
	card.EaseFactor = clampEase(card.EaseFactor + diff)
	return card, true
}

func (b *srsBridge) Health(ctx context.Context) model.ComponentHealth {
	if !b.cfg.Features.UseGNNLearning {
		return model.ComponentHealth{Name: "bridge", Status: model.StatusDisabled,
			Message: "hybrid path disabled, serving sm2 baseline"}
	}
	if !b.tracker.Available() {
		return model.ComponentHealth{Name: "bridge", Status: model.StatusDegraded,
			Message: "enhanced path suspended after repeated prediction failures"}
	}
	return model.ComponentHealth{Name: "bridge", Status: model.StatusHealthy}
}

// targetEase は推奨難易度を easeFactor の目標値に写像します。
// 難しい語ほど短い間隔 (小さい ease) で回す。
func targetEase(d model.Difficulty) float64 {
	switch d {
	case model.DifficultyAdvanced:
		return 1.5
	case model.DifficultyIntermediate:
		return 2.0
	default:
		return model.MaxEaseFactor
	}
}

func clampEase(ease float64) float64 {
	if ease < model.MinEaseFactor {
		return model.MinEaseFactor
	}
	if ease > model.MaxEaseFactor {
		return model.MaxEaseFactor
	}
	return ease
}
