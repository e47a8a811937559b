// internal/graph/service_test.go
package graph

import (
	"context"
	"errors"
	"testing"
	"time"

	"go_5_vocab_srs/internal/config"
	embedding_mocks "go_5_vocab_srs/internal/embedding/mocks"
	"go_5_vocab_srs/internal/model"
	"go_5_vocab_srs/internal/repository/mocks"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func testGraphConfig() *config.Config {
	return &config.Config{
		Features: config.FeaturesConfig{UseKnowledgeGraph: true},
		Learning: config.LearningConfig{ReadTimeout: time.Second},
		Search:   config.SearchConfig{CandidateLimit: 100},
	}
}

func TestService_RecordConfusion(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	itemA := uuid.New()
	itemB := uuid.New()

	tests := []struct {
		name      string
		cfg       *config.Config
		itemA     uuid.UUID
		itemB     uuid.UUID
		setupMock func(m *mocks.EdgeRepository)
		wantErr   bool
	}{
		{
			name:  "正常系: エッジの重みを加算",
			cfg:   testGraphConfig(),
			itemA: itemA,
			itemB: itemB,
			setupMock: func(m *mocks.EdgeRepository) {
				m.On("IncrementWeight", mock.Anything, mock.Anything, userID, itemA, itemB, mock.AnythingOfType("time.Time")).
					Return(nil).Once()
			},
			wantErr: false,
		},
		{
			name: "正常系: フラグ無効時は何もしない",
			cfg: &config.Config{
				Features: config.FeaturesConfig{UseKnowledgeGraph: false},
				Learning: config.LearningConfig{ReadTimeout: time.Second},
			},
			itemA:     itemA,
			itemB:     itemB,
			setupMock: func(m *mocks.EdgeRepository) {},
			wantErr:   false,
		},
		{
			name:      "正常系: 自己エッジは無視する",
			cfg:       testGraphConfig(),
			itemA:     itemA,
			itemB:     itemA,
			setupMock: func(m *mocks.EdgeRepository) {},
			wantErr:   false,
		},
		{
			name:  "異常系: ストア障害はエラーを返す (呼び出し元がログする)",
			cfg:   testGraphConfig(),
			itemA: itemA,
			itemB: itemB,
			setupMock: func(m *mocks.EdgeRepository) {
				m.On("IncrementWeight", mock.Anything, mock.Anything, userID, itemA, itemB, mock.AnythingOfType("time.Time")).
					Return(errors.New("db down")).Once()
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockEdgeRepo := new(mocks.EdgeRepository)
			mockVocabRepo := new(mocks.VocabRepository)
			mockEmbedder := new(embedding_mocks.Service)
			tt.setupMock(mockEdgeRepo)

			svc := NewService(nil, tt.cfg, mockEdgeRepo, mockVocabRepo, mockEmbedder)
			err := svc.RecordConfusion(ctx, userID, tt.itemA, tt.itemB)

			if tt.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}
			mockEdgeRepo.AssertExpectations(t)
		})
	}
}

func TestService_GetRelated(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	itemID := uuid.New()
	otherA := uuid.New()
	otherB := uuid.New()

	t.Run("正常系: 混同の重い順に関連語を返す", func(t *testing.T) {
		mockEdgeRepo := new(mocks.EdgeRepository)
		mockVocabRepo := new(mocks.VocabRepository)
		mockEmbedder := new(embedding_mocks.Service)

		edges := []*model.ConfusionEdge{
			{ItemA: itemID, ItemB: otherA, Weight: 5},
			{ItemA: otherB, ItemB: itemID, Weight: 2},
		}
		mockEdgeRepo.On("FindByUserAndItem", mock.Anything, mock.Anything, userID, itemID, 2).
			Return(edges, nil).Once()

		svc := NewService(nil, testGraphConfig(), mockEdgeRepo, mockVocabRepo, mockEmbedder)
		related := svc.GetRelated(ctx, userID, itemID, 2)

		assert.Equal(t, []uuid.UUID{otherA, otherB}, related, "自分以外の端点が返る")
		mockEdgeRepo.AssertExpectations(t)
	})

	t.Run("正常系: ストア障害は空リストに縮退 (fail-soft)", func(t *testing.T) {
		mockEdgeRepo := new(mocks.EdgeRepository)
		mockVocabRepo := new(mocks.VocabRepository)
		mockEmbedder := new(embedding_mocks.Service)

		mockEdgeRepo.On("FindByUserAndItem", mock.Anything, mock.Anything, userID, itemID, 3).
			Return(nil, errors.New("db down")).Once()
		// 類似度フォールバックも語彙が引けず空になる
		mockVocabRepo.On("FindByID", mock.Anything, mock.Anything, itemID).
			Return(nil, model.ErrNotFound).Once()

		svc := NewService(nil, testGraphConfig(), mockEdgeRepo, mockVocabRepo, mockEmbedder)
		related := svc.GetRelated(ctx, userID, itemID, 3)

		assert.Empty(t, related)
		assert.NotNil(t, related, "nilではなく空リスト")
	})

	t.Run("正常系: フラグ無効時は空リスト", func(t *testing.T) {
		cfg := testGraphConfig()
		cfg.Features.UseKnowledgeGraph = false
		svc := NewService(nil, cfg, new(mocks.EdgeRepository), new(mocks.VocabRepository), new(embedding_mocks.Service))

		assert.Empty(t, svc.GetRelated(ctx, userID, itemID, 3))
	})

	t.Run("正常系: 混同履歴が不足する分は埋め込み類似度で補う", func(t *testing.T) {
		mockEdgeRepo := new(mocks.EdgeRepository)
		mockVocabRepo := new(mocks.VocabRepository)
		mockEmbedder := new(embedding_mocks.Service)

		mockEdgeRepo.On("FindByUserAndItem", mock.Anything, mock.Anything, userID, itemID, 2).
			Return([]*model.ConfusionEdge{}, nil).Once()

		target := &model.VocabularyItem{VocabularyID: itemID, Word: "ephemeral", Translation: "儚い", Language: "en"}
		require.NoError(t, target.SetVector([]float32{1, 0}, "m"))
		candidate := &model.VocabularyItem{VocabularyID: otherA, Word: "transient", Translation: "一時的な", Language: "en"}
		require.NoError(t, candidate.SetVector([]float32{0.9, 0.1}, "m"))

		mockVocabRepo.On("FindByID", mock.Anything, mock.Anything, itemID).Return(target, nil).Once()
		mockVocabRepo.On("FindCandidates", mock.Anything, mock.Anything, mock.Anything, 100).
			Return([]*model.VocabularyItem{target, candidate}, nil).Once()
		mockEmbedder.On("Similarity", mock.Anything, mock.Anything).Return(0.95, nil).Once()

		svc := NewService(nil, testGraphConfig(), mockEdgeRepo, mockVocabRepo, mockEmbedder)
		related := svc.GetRelated(ctx, userID, itemID, 2)

		assert.Equal(t, []uuid.UUID{otherA}, related, "対象自身は候補から除外される")
		mockVocabRepo.AssertExpectations(t)
	})
}

func TestService_GetConfusionPairs(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	t.Run("正常系: 重み降順のエッジ一覧", func(t *testing.T) {
		mockEdgeRepo := new(mocks.EdgeRepository)
		edges := []*model.ConfusionEdge{
			{UserID: userID, Weight: 9},
			{UserID: userID, Weight: 3},
		}
		mockEdgeRepo.On("FindByUser", mock.Anything, mock.Anything, userID).Return(edges, nil).Once()

		svc := NewService(nil, testGraphConfig(), mockEdgeRepo, new(mocks.VocabRepository), new(embedding_mocks.Service))
		got := svc.GetConfusionPairs(ctx, userID)

		assert.Equal(t, edges, got)
	})

	t.Run("正常系: ストア障害は空リストに縮退", func(t *testing.T) {
		mockEdgeRepo := new(mocks.EdgeRepository)
		mockEdgeRepo.On("FindByUser", mock.Anything, mock.Anything, userID).
			Return(nil, errors.New("db down")).Once()

		svc := NewService(nil, testGraphConfig(), mockEdgeRepo, new(mocks.VocabRepository), new(embedding_mocks.Service))
		got := svc.GetConfusionPairs(ctx, userID)

		assert.NotNil(t, got)
		assert.Empty(t, got)
	})
}

func TestNormalizePair_Symmetric(t *testing.T) {
	a := uuid.MustParse("00000000-0000-0000-0000-000000000001")
	b := uuid.MustParse("00000000-0000-0000-0000-000000000002")

	x1, y1 := model.NormalizePair(a, b)
	x2, y2 := model.NormalizePair(b, a)

	assert.Equal(t, x1, x2, "引数の順序によらず同じ格納順になる")
	assert.Equal(t, y1, y2)
	assert.True(t, x1.String() < y1.String())
}
