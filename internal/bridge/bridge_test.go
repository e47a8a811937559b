// internal/bridge/bridge_test.go
package bridge

import (
	"context"
	"errors"
	"testing"
	"time"

	"go_5_vocab_srs/internal/config"
	learning_mocks "go_5_vocab_srs/internal/learning/mocks"
	"go_5_vocab_srs/internal/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func testBridgeConfig(gnnEnabled bool) *config.Config {
	return &config.Config{
		Features: config.FeaturesConfig{UseGNNLearning: gnnEnabled},
		Schedule: config.ScheduleConfig{
			MaxShiftDays:       3,
			MinAdaptConfidence: 0.5,
			EaseStep:           0.1,
		},
	}
}

func TestBridge_GetHybridSchedule_BaselineWhenDisabled(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	mockLearning := new(learning_mocks.Service)
	b := New(testBridgeConfig(false), mockLearning)

	baseline := time.Now().AddDate(0, 0, 6)
	cards := []model.ReviewCard{
		{CardID: uuid.New(), VocabularyID: uuid.New(), Word: "ephemeral", NextReview: baseline},
	}

	resp := b.GetHybridSchedule(ctx, userID, cards)

	require.Len(t, resp.Entries, 1)
	assert.False(t, resp.Enhanced)
	assert.Equal(t, baseline, resp.Entries[0].ScheduledDate, "フラグ無効時はベースラインそのまま")
	assert.Equal(t, model.SourceSM2, resp.Entries[0].Source)
	mockLearning.AssertNotCalled(t, "GetPrediction", mock.Anything, mock.Anything, mock.Anything)
}

func TestBridge_GetHybridSchedule_BlendsDateEarlier(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	vocabularyID := uuid.New()
	mockLearning := new(learning_mocks.Service)
	b := New(testBridgeConfig(true), mockLearning)

	baseline := time.Now().AddDate(0, 0, 10)
	cards := []model.ReviewCard{{CardID: uuid.New(), VocabularyID: vocabularyID, NextReview: baseline}}

	// 成功率が低く confidence が高い → 最大限前倒しされる
	mockLearning.On("GetPrediction", mock.Anything, userID, vocabularyID).
		Return(&model.Prediction{
			PredictedSuccessRate: 0.0,
			Confidence:           1.0,
		}, nil).Once()

	resp := b.GetHybridSchedule(ctx, userID, cards)

	require.Len(t, resp.Entries, 1)
	entry := resp.Entries[0]
	assert.True(t, resp.Enhanced)
	assert.Equal(t, model.SourceHybrid, entry.Source)
	assert.True(t, entry.ScheduledDate.Before(baseline), "予測により前倒しされる")
	// 前倒し量は max_shift_days を超えない
	assert.False(t, entry.ScheduledDate.Before(baseline.AddDate(0, 0, -3)))
	assert.Equal(t, 1.0, entry.ConfidenceScore)
}

func TestBridge_GetHybridSchedule_NeverSchedulesInPast(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	vocabularyID := uuid.New()
	mockLearning := new(learning_mocks.Service)
	b := New(testBridgeConfig(true), mockLearning)

	// ベースラインが数時間後 → 最大前倒しすると過去になるケース
	baseline := time.Now().Add(2 * time.Hour)
	cards := []model.ReviewCard{{VocabularyID: vocabularyID, NextReview: baseline}}

	mockLearning.On("GetPrediction", mock.Anything, userID, vocabularyID).
		Return(&model.Prediction{PredictedSuccessRate: 0.0, Confidence: 1.0}, nil).Once()

	resp := b.GetHybridSchedule(ctx, userID, cards)

	require.Len(t, resp.Entries, 1)
	assert.False(t, resp.Entries[0].ScheduledDate.Before(time.Now().Add(-time.Minute)),
		"過去にはスケジュールしない")
}

func TestBridge_GetHybridSchedule_HighSuccessKeepsBaseline(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	vocabularyID := uuid.New()
	mockLearning := new(learning_mocks.Service)
	b := New(testBridgeConfig(true), mockLearning)

	baseline := time.Now().AddDate(0, 0, 10)
	cards := []model.ReviewCard{{VocabularyID: vocabularyID, NextReview: baseline}}

	mockLearning.On("GetPrediction", mock.Anything, userID, vocabularyID).
		Return(&model.Prediction{PredictedSuccessRate: 1.0, Confidence: 0.9}, nil).Once()

	resp := b.GetHybridSchedule(ctx, userID, cards)

	require.Len(t, resp.Entries, 1)
	assert.Equal(t, baseline, resp.Entries[0].ScheduledDate, "成功予測が高ければ前倒ししない")
	assert.Equal(t, model.SourceHybrid, resp.Entries[0].Source)
}

func TestBridge_GetHybridSchedule_PredictionFailureFallsBack(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	vocabularyID := uuid.New()
	mockLearning := new(learning_mocks.Service)
	b := New(testBridgeConfig(true), mockLearning)

	baseline := time.Now().AddDate(0, 0, 5)
	cards := []model.ReviewCard{{VocabularyID: vocabularyID, NextReview: baseline}}

	mockLearning.On("GetPrediction", mock.Anything, userID, vocabularyID).
		Return(nil, errors.New("prediction failed")).Once()

	resp := b.GetHybridSchedule(ctx, userID, cards)

	require.Len(t, resp.Entries, 1)
	assert.Equal(t, baseline, resp.Entries[0].ScheduledDate, "失敗したカードはベースラインに縮退")
	assert.Equal(t, model.SourceSM2, resp.Entries[0].Source)
	assert.False(t, resp.Enhanced, "全カードが縮退したら enhanced は立てない")
}

func TestBridge_AvailabilitySuspendsAfterRepeatedFailures(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	mockLearning := new(learning_mocks.Service)
	b := New(testBridgeConfig(true), mockLearning)

	mockLearning.On("GetPrediction", mock.Anything, userID, mock.Anything).
		Return(nil, errors.New("prediction failed")).Times(maxConsecutiveFailures)

	assert.True(t, b.IsGNNAvailable())

	cards := make([]model.ReviewCard, maxConsecutiveFailures)
	for i := range cards {
		cards[i] = model.ReviewCard{VocabularyID: uuid.New(), NextReview: time.Now().AddDate(0, 0, 3)}
	}
	b.GetHybridSchedule(ctx, userID, cards)

	assert.False(t, b.IsGNNAvailable(), "連続失敗で拡張経路を停止")

	// 停止後はベースラインのみで、学習サービスは呼ばれない
	resp := b.GetHybridSchedule(ctx, userID, cards[:1])
	assert.False(t, resp.Enhanced)
	mockLearning.AssertExpectations(t)
}

func TestAvailabilityTracker(t *testing.T) {
	current := time.Now()
	tracker := newAvailabilityTracker()
	tracker.now = func() time.Time { return current }
	assert.True(t, tracker.Available())

	for i := 0; i < maxConsecutiveFailures-1; i++ {
		tracker.ReportFailure()
		assert.True(t, tracker.Available(), "閾値未満では利用可能のまま")
	}
	tracker.ReportFailure()
	assert.False(t, tracker.Available())
	assert.False(t, tracker.Available(), "クールダウン中は利用不可のまま")

	// クールダウン経過後は試行を1回だけ許可する
	current = current.Add(suspensionCooldown + time.Second)
	assert.True(t, tracker.Available(), "クールダウン経過で試行を許可")
	assert.False(t, tracker.Available(), "同じ窓内の2回目は通さない")

	tracker.ReportSuccess()
	assert.True(t, tracker.Available(), "成功でカウンタはリセット")
	assert.True(t, tracker.Available(), "リセット後は毎回利用可能")
}

func TestBridge_AvailabilityRecoversAfterCooldown(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	mockLearning := new(learning_mocks.Service)
	b := New(testBridgeConfig(true), mockLearning)

	current := time.Now()
	b.(*srsBridge).tracker.now = func() time.Time { return current }

	mockLearning.On("GetPrediction", mock.Anything, userID, mock.Anything).
		Return(nil, errors.New("prediction failed")).Times(maxConsecutiveFailures)

	cards := make([]model.ReviewCard, maxConsecutiveFailures)
	for i := range cards {
		cards[i] = model.ReviewCard{VocabularyID: uuid.New(), NextReview: time.Now().AddDate(0, 0, 3)}
	}
	b.GetHybridSchedule(ctx, userID, cards)
	assert.False(t, b.IsGNNAvailable(), "連続失敗で停止")

	// 学習サービスが復旧。クールダウン経過後の試行で予測が成功すると
	// カウンタがリセットされ、拡張経路がプロセス再起動なしで復帰する。
	mockLearning.On("GetPrediction", mock.Anything, userID, mock.Anything).
		Return(&model.Prediction{PredictedSuccessRate: 0.9, Confidence: 0.8}, nil)
	current = current.Add(suspensionCooldown + time.Second)

	resp := b.GetHybridSchedule(ctx, userID, cards[:1])
	require.Len(t, resp.Entries, 1)
	assert.True(t, resp.Enhanced, "試行が成功すれば拡張経路で応答")
	assert.Equal(t, model.SourceHybrid, resp.Entries[0].Source)
	assert.True(t, b.IsGNNAvailable(), "成功後は利用可能に戻る")
}

func TestBridge_AdaptDifficulty(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	vocabularyID := uuid.New()

	card := model.ReviewCard{
		CardID:       uuid.New(),
		VocabularyID: vocabularyID,
		EaseFactor:   2.5,
	}

	tests := []struct {
		name        string
		gnnEnabled  bool
		prediction  *model.Prediction
		predictErr  error
		wantAdapted bool
		wantEase    float64
	}{
		{
			name:        "正常系: confidence が高ければ1ステップだけ難しく",
			gnnEnabled:  true,
			prediction:  &model.Prediction{Confidence: 0.8, RecommendedDifficulty: model.DifficultyAdvanced},
			wantAdapted: true,
			wantEase:    2.4, // 目標1.5へ最大0.1だけ近づく
		},
		{
			name:        "正常系: confidence 不足なら変更しない",
			gnnEnabled:  true,
			prediction:  &model.Prediction{Confidence: 0.3, RecommendedDifficulty: model.DifficultyAdvanced},
			wantAdapted: false,
			wantEase:    2.5,
		},
		{
			name:        "正常系: フラグ無効なら変更しない",
			gnnEnabled:  false,
			wantAdapted: false,
			wantEase:    2.5,
		},
		{
			name:        "正常系: 予測失敗なら変更しない",
			gnnEnabled:  true,
			predictErr:  errors.New("prediction failed"),
			wantAdapted: false,
			wantEase:    2.5,
		},
		{
			name:        "正常系: 目標が現在値と同じなら変化量ゼロ",
			gnnEnabled:  true,
			prediction:  &model.Prediction{Confidence: 0.9, RecommendedDifficulty: model.DifficultyBeginner},
			wantAdapted: true,
			wantEase:    2.5, // 目標2.5に既に到達
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockLearning := new(learning_mocks.Service)
			if tt.gnnEnabled {
				mockLearning.On("GetPrediction", mock.Anything, userID, vocabularyID).
					Return(tt.prediction, tt.predictErr).Once()
			}
			b := New(testBridgeConfig(tt.gnnEnabled), mockLearning)

			adapted, changed := b.AdaptDifficulty(ctx, userID, card)

			assert.Equal(t, tt.wantAdapted, changed)
			assert.InDelta(t, tt.wantEase, adapted.EaseFactor, 1e-9)
			assert.GreaterOrEqual(t, adapted.EaseFactor, model.MinEaseFactor)
			assert.LessOrEqual(t, adapted.EaseFactor, model.MaxEaseFactor)
		})
	}
}

func TestBridge_Health(t *testing.T) {
	ctx := context.Background()

	t.Run("正常系: フラグ無効は disabled", func(t *testing.T) {
		b := New(testBridgeConfig(false), new(learning_mocks.Service))
		assert.Equal(t, model.StatusDisabled, b.Health(ctx).Status)
	})

	t.Run("正常系: 有効で障害なしは healthy", func(t *testing.T) {
		b := New(testBridgeConfig(true), new(learning_mocks.Service))
		assert.Equal(t, model.StatusHealthy, b.Health(ctx).Status)
	})
}
