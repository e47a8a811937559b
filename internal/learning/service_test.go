// internal/learning/service_test.go
package learning

import (
	"context"
	"errors"
	"testing"
	"time"

	"go_5_vocab_srs/internal/config"
	graph_mocks "go_5_vocab_srs/internal/graph/mocks"
	"go_5_vocab_srs/internal/model"
	"go_5_vocab_srs/internal/repository/mocks"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func testLearningConfig() *config.Config {
	return &config.Config{
		Features: config.FeaturesConfig{UseGNNLearning: false},
		Learning: config.LearningConfig{
			RecentWindow:         20,
			DecayFactor:          0.8,
			MinConfidenceSamples: 5,
			ReadTimeout:          time.Second,
		},
		Schedule: config.ScheduleConfig{
			Limit:        20,
			RelatedLimit: 5,
		},
	}
}

type learningMocks struct {
	cardRepo        *mocks.CardRepository
	interactionRepo *mocks.InteractionRepository
	edgeRepo        *mocks.EdgeRepository
	vocabRepo       *mocks.VocabRepository
	graphSvc        *graph_mocks.Service
}

func newLearningService(cfg *config.Config) (Service, *learningMocks) {
	m := &learningMocks{
		cardRepo:        new(mocks.CardRepository),
		interactionRepo: new(mocks.InteractionRepository),
		edgeRepo:        new(mocks.EdgeRepository),
		vocabRepo:       new(mocks.VocabRepository),
		graphSvc:        new(graph_mocks.Service),
	}
	svc := NewService(nil, cfg, m.cardRepo, m.interactionRepo, m.edgeRepo, m.vocabRepo, m.graphSvc)
	return svc, m
}

// makeInteractions は新しい順の interaction 列を生成します
func makeInteractions(userID, vocabularyID uuid.UUID, successes []bool) []*model.Interaction {
	interactions := make([]*model.Interaction, len(successes))
	now := time.Now()
	for i, success := range successes {
		interactions[i] = &model.Interaction{
			InteractionID:  uuid.New(),
			UserID:         userID,
			VocabularyID:   vocabularyID,
			Success:        success,
			ResponseTimeMs: 3000,
			CreatedAt:      now.Add(-time.Duration(i) * time.Hour),
		}
	}
	return interactions
}

func TestService_RecordInteraction(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	vocabularyID := uuid.New()
	confusedWith := uuid.New()

	existingCard := func() *model.ReviewCard {
		return &model.ReviewCard{
			CardID:       uuid.New(),
			UserID:       userID,
			VocabularyID: vocabularyID,
			EaseFactor:   2.5,
			IntervalDays: 6,
			Repetitions:  2,
			Version:      3,
		}
	}

	t.Run("正常系: 既存カードの前進と混同エッジ記録", func(t *testing.T) {
		svc, m := newLearningService(testLearningConfig())

		m.interactionRepo.On("Append", mock.Anything, mock.Anything, mock.AnythingOfType("*model.Interaction")).
			Return(nil).Once()
		m.cardRepo.On("FindByUserAndVocab", mock.Anything, mock.Anything, userID, vocabularyID).
			Return(existingCard(), nil).Once()
		m.cardRepo.On("UpdateVersioned", mock.Anything, mock.Anything, mock.MatchedBy(func(c *model.ReviewCard) bool {
			return c.Repetitions == 3 // 成功で前進している
		})).Return(nil).Once()
		m.graphSvc.On("RecordConfusion", mock.Anything, userID, vocabularyID, confusedWith).
			Return(nil).Once()

		err := svc.RecordInteraction(ctx, userID, vocabularyID, true, 2000, &confusedWith)

		require.NoError(t, err)
		m.cardRepo.AssertExpectations(t)
		m.graphSvc.AssertExpectations(t)
	})

	t.Run("正常系: 混同エッジの記録失敗はロールバックしない", func(t *testing.T) {
		svc, m := newLearningService(testLearningConfig())

		m.interactionRepo.On("Append", mock.Anything, mock.Anything, mock.Anything).Return(nil).Once()
		m.cardRepo.On("FindByUserAndVocab", mock.Anything, mock.Anything, userID, vocabularyID).
			Return(existingCard(), nil).Once()
		m.cardRepo.On("UpdateVersioned", mock.Anything, mock.Anything, mock.Anything).Return(nil).Once()
		m.graphSvc.On("RecordConfusion", mock.Anything, userID, vocabularyID, confusedWith).
			Return(errors.New("graph store down")).Once()

		err := svc.RecordInteraction(ctx, userID, vocabularyID, false, 2000, &confusedWith)

		require.NoError(t, err, "副作用の失敗は呼び出し全体を失敗させない")
	})

	t.Run("正常系: カード未存在なら新規作成", func(t *testing.T) {
		svc, m := newLearningService(testLearningConfig())

		m.interactionRepo.On("Append", mock.Anything, mock.Anything, mock.Anything).Return(nil).Once()
		m.cardRepo.On("FindByUserAndVocab", mock.Anything, mock.Anything, userID, vocabularyID).
			Return(nil, model.ErrNotFound).Once()
		m.vocabRepo.On("FindByID", mock.Anything, mock.Anything, vocabularyID).
			Return(&model.VocabularyItem{VocabularyID: vocabularyID, Word: "ephemeral"}, nil).Once()
		m.cardRepo.On("Create", mock.Anything, mock.Anything, mock.MatchedBy(func(c *model.ReviewCard) bool {
			return c.Repetitions == 1 && c.IntervalDays == 1 && c.Word == "ephemeral"
		})).Return(nil).Once()

		err := svc.RecordInteraction(ctx, userID, vocabularyID, true, 2000, nil)

		require.NoError(t, err)
		m.cardRepo.AssertExpectations(t)
	})

	t.Run("正常系: 楽観ロック競合は読み直してリトライ", func(t *testing.T) {
		svc, m := newLearningService(testLearningConfig())

		m.interactionRepo.On("Append", mock.Anything, mock.Anything, mock.Anything).Return(nil).Once()
		m.cardRepo.On("FindByUserAndVocab", mock.Anything, mock.Anything, userID, vocabularyID).
			Return(existingCard(), nil).Twice()
		m.cardRepo.On("UpdateVersioned", mock.Anything, mock.Anything, mock.Anything).
			Return(model.ErrConflict).Once()
		m.cardRepo.On("UpdateVersioned", mock.Anything, mock.Anything, mock.Anything).
			Return(nil).Once()

		err := svc.RecordInteraction(ctx, userID, vocabularyID, true, 2000, nil)

		require.NoError(t, err)
		m.cardRepo.AssertExpectations(t)
	})

	t.Run("異常系: 競合がリトライ上限まで続いたらCONFLICT", func(t *testing.T) {
		svc, m := newLearningService(testLearningConfig())

		m.interactionRepo.On("Append", mock.Anything, mock.Anything, mock.Anything).Return(nil).Once()
		m.cardRepo.On("FindByUserAndVocab", mock.Anything, mock.Anything, userID, vocabularyID).
			Return(existingCard(), nil).Times(cardUpdateRetries)
		m.cardRepo.On("UpdateVersioned", mock.Anything, mock.Anything, mock.Anything).
			Return(model.ErrConflict).Times(cardUpdateRetries)

		err := svc.RecordInteraction(ctx, userID, vocabularyID, true, 2000, nil)

		require.Error(t, err)
		assert.ErrorIs(t, err, model.ErrConflict)
	})

	t.Run("異常系: 回答時間が範囲外", func(t *testing.T) {
		svc, _ := newLearningService(testLearningConfig())

		err := svc.RecordInteraction(ctx, userID, vocabularyID, true, -1, nil)
		require.Error(t, err)
		assert.ErrorIs(t, err, model.ErrInvalidInput)

		err = svc.RecordInteraction(ctx, userID, vocabularyID, true, model.MaxResponseTimeMs+1, nil)
		require.Error(t, err)
		assert.ErrorIs(t, err, model.ErrInvalidInput)
	})
}

func TestService_GetPrediction(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	vocabularyID := uuid.New()

	setupBase := func(m *learningMocks, interactions []*model.Interaction, interactionsErr error) {
		m.vocabRepo.On("FindByID", mock.Anything, mock.Anything, vocabularyID).
			Return(nil, model.ErrNotFound)
		m.cardRepo.On("FindByUserAndVocab", mock.Anything, mock.Anything, userID, vocabularyID).
			Return(nil, model.ErrNotFound)
		m.interactionRepo.On("FindRecentByUserAndVocab", mock.Anything, mock.Anything, userID, vocabularyID, 20).
			Return(interactions, interactionsErr)
	}

	t.Run("正常系: コールドスタートは0.5/confidence 0/BaselineOnly", func(t *testing.T) {
		svc, m := newLearningService(testLearningConfig())
		setupBase(m, []*model.Interaction{}, nil)

		prediction, err := svc.GetPrediction(ctx, userID, vocabularyID)

		require.NoError(t, err)
		assert.Equal(t, 0.5, prediction.PredictedSuccessRate)
		assert.Equal(t, 0.0, prediction.Confidence)
		assert.True(t, prediction.BaselineOnly)
		assert.Equal(t, 0, prediction.SampleCount)
	})

	t.Run("正常系: confidence はサンプル数に対して単調非減少", func(t *testing.T) {
		var prev float64
		for _, n := range []int{1, 2, 3, 5, 10, 20} {
			svc, m := newLearningService(testLearningConfig())
			successes := make([]bool, n)
			for i := range successes {
				successes[i] = true
			}
			setupBase(m, makeInteractions(userID, vocabularyID, successes), nil)

			prediction, err := svc.GetPrediction(ctx, userID, vocabularyID)
			require.NoError(t, err)

			assert.GreaterOrEqual(t, prediction.Confidence, prev)
			assert.Less(t, prediction.Confidence, 1.0, "confidence は1.0に達しない")
			prev = prediction.Confidence
		}
	})

	t.Run("正常系: サンプル数が閾値未満なら confidence は0.6以下", func(t *testing.T) {
		svc, m := newLearningService(testLearningConfig())
		setupBase(m, makeInteractions(userID, vocabularyID, []bool{true, true, true, true}), nil)

		prediction, err := svc.GetPrediction(ctx, userID, vocabularyID)

		require.NoError(t, err)
		assert.LessOrEqual(t, prediction.Confidence, lowSampleConfidenceCap)
	})

	t.Run("正常系: 直近の結果ほど重く効く", func(t *testing.T) {
		// 新しい順: 成功2回のあと失敗3回 → 単純平均0.4より高い
		svc, m := newLearningService(testLearningConfig())
		setupBase(m, makeInteractions(userID, vocabularyID, []bool{true, true, false, false, false}), nil)

		prediction, err := svc.GetPrediction(ctx, userID, vocabularyID)

		require.NoError(t, err)
		assert.Greater(t, prediction.PredictedSuccessRate, 0.4)
	})

	t.Run("正常系: ストア障害はコールドスタートに縮退 (fail-soft)", func(t *testing.T) {
		svc, m := newLearningService(testLearningConfig())
		setupBase(m, nil, errors.New("db down"))

		prediction, err := svc.GetPrediction(ctx, userID, vocabularyID)

		require.NoError(t, err, "予測は常に何かを返す")
		assert.Equal(t, 0.5, prediction.PredictedSuccessRate)
		assert.True(t, prediction.BaselineOnly)
	})

	t.Run("正常系: GNN有効時は混同ペナルティで成功率が下がる", func(t *testing.T) {
		cfg := testLearningConfig()
		cfg.Features.UseGNNLearning = true
		svc, m := newLearningService(cfg)

		successes := make([]bool, 10)
		for i := range successes {
			successes[i] = true
		}
		setupBase(m, makeInteractions(userID, vocabularyID, successes), nil)
		m.edgeRepo.On("FindByUserAndItem", mock.Anything, mock.Anything, userID, vocabularyID, 20).
			Return([]*model.ConfusionEdge{{Weight: 5}}, nil).Once()
		m.graphSvc.On("GetRelated", mock.Anything, userID, vocabularyID, 5).
			Return([]uuid.UUID{uuid.New()}).Once()

		prediction, err := svc.GetPrediction(ctx, userID, vocabularyID)

		require.NoError(t, err)
		assert.False(t, prediction.BaselineOnly)
		assert.Less(t, prediction.PredictedSuccessRate, 1.0)
		assert.Len(t, prediction.SuggestedRelatedWords, 1)
	})

	t.Run("正常系: グラフストア障害はBaselineOnlyに縮退", func(t *testing.T) {
		cfg := testLearningConfig()
		cfg.Features.UseGNNLearning = true
		svc, m := newLearningService(cfg)

		setupBase(m, makeInteractions(userID, vocabularyID, []bool{true}), nil)
		m.edgeRepo.On("FindByUserAndItem", mock.Anything, mock.Anything, userID, vocabularyID, 20).
			Return(nil, errors.New("db down")).Once()
		m.graphSvc.On("GetRelated", mock.Anything, userID, vocabularyID, 5).
			Return([]uuid.UUID{}).Once()

		prediction, err := svc.GetPrediction(ctx, userID, vocabularyID)

		require.NoError(t, err)
		assert.True(t, prediction.BaselineOnly)
	})
}

func TestService_GetOptimalReviewSchedule(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	now := time.Now()

	t.Run("正常系: 期限超過が大きいカードほど優先", func(t *testing.T) {
		svc, m := newLearningService(testLearningConfig())

		slightlyOverdue := &model.ReviewCard{
			CardID: uuid.New(), UserID: userID, VocabularyID: uuid.New(),
			Word: "recent", NextReview: now.Add(-24 * time.Hour),
		}
		veryOverdue := &model.ReviewCard{
			CardID: uuid.New(), UserID: userID, VocabularyID: uuid.New(),
			Word: "stale", NextReview: now.Add(-120 * time.Hour),
		}
		m.cardRepo.On("FindDueByUser", mock.Anything, mock.Anything, userID, mock.AnythingOfType("time.Time"), 60).
			Return([]*model.ReviewCard{slightlyOverdue, veryOverdue}, nil).Once()
		// 予測はどちらもコールドスタート
		m.vocabRepo.On("FindByID", mock.Anything, mock.Anything, mock.Anything).Return(nil, model.ErrNotFound)
		m.cardRepo.On("FindByUserAndVocab", mock.Anything, mock.Anything, userID, mock.Anything).
			Return(nil, model.ErrNotFound)
		m.interactionRepo.On("FindRecentByUserAndVocab", mock.Anything, mock.Anything, userID, mock.Anything, 20).
			Return([]*model.Interaction{}, nil)

		entries, err := svc.GetOptimalReviewSchedule(ctx, userID, 20)

		require.NoError(t, err)
		require.Len(t, entries, 2)
		assert.Equal(t, "stale", entries[0].Word, "期限超過の大きいカードが先頭")
		assert.Equal(t, model.SourceSM2, entries[0].Source)
	})

	t.Run("正常系: limit で件数を制限", func(t *testing.T) {
		svc, m := newLearningService(testLearningConfig())

		cards := make([]*model.ReviewCard, 5)
		for i := range cards {
			cards[i] = &model.ReviewCard{
				CardID: uuid.New(), UserID: userID, VocabularyID: uuid.New(),
				NextReview: now.Add(-time.Duration(i) * time.Hour),
			}
		}
		m.cardRepo.On("FindDueByUser", mock.Anything, mock.Anything, userID, mock.AnythingOfType("time.Time"), 6).
			Return(cards, nil).Once()
		m.vocabRepo.On("FindByID", mock.Anything, mock.Anything, mock.Anything).Return(nil, model.ErrNotFound)
		m.cardRepo.On("FindByUserAndVocab", mock.Anything, mock.Anything, userID, mock.Anything).
			Return(nil, model.ErrNotFound)
		m.interactionRepo.On("FindRecentByUserAndVocab", mock.Anything, mock.Anything, userID, mock.Anything, 20).
			Return([]*model.Interaction{}, nil)

		entries, err := svc.GetOptimalReviewSchedule(ctx, userID, 2)

		require.NoError(t, err)
		assert.Len(t, entries, 2)
	})

	t.Run("異常系: カード取得失敗はエラー", func(t *testing.T) {
		svc, m := newLearningService(testLearningConfig())

		m.cardRepo.On("FindDueByUser", mock.Anything, mock.Anything, userID, mock.AnythingOfType("time.Time"), 60).
			Return(nil, errors.New("db down")).Once()

		entries, err := svc.GetOptimalReviewSchedule(ctx, userID, 20)

		require.Error(t, err)
		assert.ErrorIs(t, err, model.ErrInternalServer)
		assert.Nil(t, entries)
	})
}
