// internal/search/service_test.go
package search

import (
	"context"
	"testing"

	"go_5_vocab_srs/internal/config"
	embedding_mocks "go_5_vocab_srs/internal/embedding/mocks"
	"go_5_vocab_srs/internal/model"
	"go_5_vocab_srs/internal/repository"
	"go_5_vocab_srs/internal/repository/mocks"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func testSearchConfig() *config.Config {
	return &config.Config{
		Features: config.FeaturesConfig{UseVectorSearch: true},
		Embedding: config.EmbeddingConfig{
			Model:      "text-embedding-3-small",
			Dimensions: 4,
		},
		Search: config.SearchConfig{
			SimilarityThreshold: 0.7,
			DefaultLimit:        10,
			CandidateLimit:      100,
		},
	}
}

func queryRecord(vec []float32) *model.EmbeddingRecord {
	return &model.EmbeddingRecord{Vector: vec, Model: "text-embedding-3-small", Dimensions: len(vec)}
}

func newCandidate(word string, vec []float32) *model.VocabularyItem {
	item := &model.VocabularyItem{
		VocabularyID: uuid.New(),
		Word:         word,
		Translation:  word + "-ja",
		Language:     "en",
		Difficulty:   model.DifficultyBeginner,
	}
	if vec != nil {
		if err := item.SetVector(vec, "text-embedding-3-small"); err != nil {
			panic(err)
		}
	}
	return item
}

func TestService_HybridSearch(t *testing.T) {
	ctx := context.Background()

	t.Run("異常系: フラグ無効はFeatureDisabled", func(t *testing.T) {
		cfg := testSearchConfig()
		cfg.Features.UseVectorSearch = false
		svc := NewService(nil, cfg, new(mocks.VocabRepository), new(embedding_mocks.Service))

		_, err := svc.Search(ctx, "query", Options{})

		require.Error(t, err)
		assert.ErrorIs(t, err, model.ErrFeatureDisabled)
	})

	t.Run("異常系: クエリ埋め込みがフォールバックなら検索拒否", func(t *testing.T) {
		mockEmbedder := new(embedding_mocks.Service)
		mockEmbedder.On("Embed", mock.Anything, "query").
			Return(&model.EmbeddingRecord{Vector: []float32{1, 0, 0, 0}, Fallback: true}, nil).Once()

		svc := NewService(nil, testSearchConfig(), new(mocks.VocabRepository), mockEmbedder)
		_, err := svc.Search(ctx, "query", Options{})

		require.Error(t, err)
		assert.ErrorIs(t, err, model.ErrDependencyTimeout, "劣化した検索結果は返さない")
	})

	t.Run("正常系: 類似度降順で閾値以上の結果のみ", func(t *testing.T) {
		mockVocabRepo := new(mocks.VocabRepository)
		mockEmbedder := new(embedding_mocks.Service)

		close1 := newCandidate("ephemeral", []float32{1, 0, 0, 0})
		close2 := newCandidate("transient", []float32{0.9, 0.1, 0, 0})
		far := newCandidate("dog", []float32{0, 0, 0, 1})

		mockEmbedder.On("Embed", mock.Anything, "fleeting").
			Return(queryRecord([]float32{1, 0, 0, 0}), nil).Once()
		mockVocabRepo.On("FindCandidates", mock.Anything, mock.Anything, repository.VocabFilter{}, 100).
			Return([]*model.VocabularyItem{far, close2, close1}, nil).Once()
		mockEmbedder.On("Similarity", mock.Anything, far.Vector()).Return(0.0, nil).Once()
		mockEmbedder.On("Similarity", mock.Anything, close2.Vector()).Return(0.95, nil).Once()
		mockEmbedder.On("Similarity", mock.Anything, close1.Vector()).Return(1.0, nil).Once()

		svc := NewService(nil, testSearchConfig(), mockVocabRepo, mockEmbedder)
		results, err := svc.Search(ctx, "fleeting", Options{})

		require.NoError(t, err)
		require.Len(t, results, 2, "閾値未満の候補は含まない")
		assert.Equal(t, "ephemeral", results[0].Word, "類似度の高い順")
		assert.Equal(t, "transient", results[1].Word)
		assert.Greater(t, results[0].Similarity, results[1].Similarity)
	})

	t.Run("正常系: limit で件数を制限", func(t *testing.T) {
		mockVocabRepo := new(mocks.VocabRepository)
		mockEmbedder := new(embedding_mocks.Service)

		candidates := make([]*model.VocabularyItem, 5)
		for i := range candidates {
			candidates[i] = newCandidate("w", []float32{1, 0, 0, 0})
		}
		mockEmbedder.On("Embed", mock.Anything, "q").Return(queryRecord([]float32{1, 0, 0, 0}), nil).Once()
		mockVocabRepo.On("FindCandidates", mock.Anything, mock.Anything, repository.VocabFilter{}, 100).
			Return(candidates, nil).Once()
		mockEmbedder.On("Similarity", mock.Anything, mock.Anything).Return(0.9, nil).Times(5)

		svc := NewService(nil, testSearchConfig(), mockVocabRepo, mockEmbedder)
		results, err := svc.Search(ctx, "q", Options{Limit: 2})

		require.NoError(t, err)
		assert.Len(t, results, 2)
	})

	t.Run("正常系: ベクトル未計算の候補は遅延バックフィル", func(t *testing.T) {
		mockVocabRepo := new(mocks.VocabRepository)
		mockEmbedder := new(embedding_mocks.Service)

		missing := newCandidate("fresh", nil)

		mockEmbedder.On("Embed", mock.Anything, "q").Return(queryRecord([]float32{1, 0, 0, 0}), nil).Once()
		mockVocabRepo.On("FindCandidates", mock.Anything, mock.Anything, repository.VocabFilter{}, 100).
			Return([]*model.VocabularyItem{missing}, nil).Once()
		mockEmbedder.On("Embed", mock.Anything, "fresh fresh-ja").
			Return(queryRecord([]float32{0.8, 0.2, 0, 0}), nil).Once()
		mockVocabRepo.On("SaveEmbedding", mock.Anything, mock.Anything, missing).Return(nil).Once()
		mockEmbedder.On("Similarity", mock.Anything, mock.Anything).Return(0.9, nil).Once()

		svc := NewService(nil, testSearchConfig(), mockVocabRepo, mockEmbedder)
		results, err := svc.Search(ctx, "q", Options{})

		require.NoError(t, err)
		assert.Len(t, results, 1)
		mockVocabRepo.AssertExpectations(t)
	})

	t.Run("正常系: 構造化フィルタはリポジトリへ渡る", func(t *testing.T) {
		mockVocabRepo := new(mocks.VocabRepository)
		mockEmbedder := new(embedding_mocks.Service)

		filter := repository.VocabFilter{Language: "en", Difficulty: model.DifficultyAdvanced}
		mockEmbedder.On("Embed", mock.Anything, "q").Return(queryRecord([]float32{1, 0, 0, 0}), nil).Once()
		mockVocabRepo.On("FindCandidates", mock.Anything, mock.Anything, filter, 100).
			Return([]*model.VocabularyItem{}, nil).Once()

		svc := NewService(nil, testSearchConfig(), mockVocabRepo, mockEmbedder)
		results, err := svc.HybridSearch(ctx, "q", filter, Options{})

		require.NoError(t, err)
		assert.Empty(t, results)
		mockVocabRepo.AssertExpectations(t)
	})
}

func TestService_Health(t *testing.T) {
	t.Run("正常系: フラグ無効は disabled", func(t *testing.T) {
		cfg := testSearchConfig()
		cfg.Features.UseVectorSearch = false
		svc := NewService(nil, cfg, new(mocks.VocabRepository), new(embedding_mocks.Service))
		assert.Equal(t, model.StatusDisabled, svc.Health(context.Background()).Status)
	})

	t.Run("正常系: 有効時は healthy", func(t *testing.T) {
		svc := NewService(nil, testSearchConfig(), new(mocks.VocabRepository), new(embedding_mocks.Service))
		assert.Equal(t, model.StatusHealthy, svc.Health(context.Background()).Status)
	})
}
