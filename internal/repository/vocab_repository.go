//go:generate mockery --name VocabRepository --output ./mocks --outpkg mocks --case=underscore
package repository

import (
	"context"
	"errors"
	"fmt"

	"go_5_vocab_srs/internal/middleware"
	"go_5_vocab_srs/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// VocabFilter はハイブリッド検索の構造化フィルタです。
// ベクトル比較の前に候補集合を絞り込む。
type VocabFilter struct {
	Language   string
	Difficulty model.Difficulty
}

// VocabRepository は語彙の読み取りと埋め込みキャッシュの保存を担当します。
// 語彙のCRUD本体は別コンポーネントの責務なので、ここでは読み取り中心。
type VocabRepository interface {
	FindByID(ctx context.Context, db *gorm.DB, vocabularyID uuid.UUID) (*model.VocabularyItem, error)
	FindByIDs(ctx context.Context, db *gorm.DB, vocabularyIDs []uuid.UUID) ([]*model.VocabularyItem, error)
	// FindCandidates はフィルタに一致する語彙を最大 limit 件返します
	FindCandidates(ctx context.Context, db *gorm.DB, filter VocabFilter, limit int) ([]*model.VocabularyItem, error)
	// SaveEmbedding は埋め込みキャッシュ列のみを更新します (派生データ、ベストエフォート)
	SaveEmbedding(ctx context.Context, db *gorm.DB, item *model.VocabularyItem) error
}

type gormVocabRepository struct{}

func NewGormVocabRepository() VocabRepository {
	return &gormVocabRepository{}
}

func (r *gormVocabRepository) FindByID(ctx context.Context, db *gorm.DB, vocabularyID uuid.UUID) (*model.VocabularyItem, error) {
	var item model.VocabularyItem
	result := db.WithContext(ctx).Where("vocabulary_id = ?", vocabularyID).First(&item)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		return nil, fmt.Errorf("gormVocabRepository.FindByID: %w", result.Error)
	}
	return &item, nil
}

func (r *gormVocabRepository) FindByIDs(ctx context.Context, db *gorm.DB, vocabularyIDs []uuid.UUID) ([]*model.VocabularyItem, error) {
	if len(vocabularyIDs) == 0 {
		return []*model.VocabularyItem{}, nil
	}
	var items []*model.VocabularyItem
	result := db.WithContext(ctx).Where("vocabulary_id IN ?", vocabularyIDs).Find(&items)
	if result.Error != nil {
		return nil, fmt.Errorf("gormVocabRepository.FindByIDs: %w", result.Error)
	}
	return items, nil
}

func (r *gormVocabRepository) FindCandidates(ctx context.Context, db *gorm.DB, filter VocabFilter, limit int) ([]*model.VocabularyItem, error) {
	query := db.WithContext(ctx).Model(&model.VocabularyItem{})
	if filter.Language != "" {
		query = query.Where("language = ?", filter.Language)
	}
	if filter.Difficulty != "" {
		query = query.Where("difficulty = ?", filter.Difficulty)
	}

	var items []*model.VocabularyItem
	result := query.Limit(limit).Find(&items)
	if result.Error != nil {
		return nil, fmt.Errorf("gormVocabRepository.FindCandidates: %w", result.Error)
	}
	return items, nil
}

func (r *gormVocabRepository) SaveEmbedding(ctx context.Context, db *gorm.DB, item *model.VocabularyItem) error {
	logger := middleware.GetLogger(ctx)
	result := db.WithContext(ctx).Model(&model.VocabularyItem{}).
		Where("vocabulary_id = ?", item.VocabularyID).
		Updates(map[string]interface{}{
			"embedding":       item.Embedding,
			"embedding_model": item.EmbeddingModel,
		})
	if result.Error != nil {
		logger.Error("Error saving vocabulary embedding in DB",
			"error", result.Error,
			"vocabulary_id", item.VocabularyID.String(),
		)
		return fmt.Errorf("gormVocabRepository.SaveEmbedding: %w", result.Error)
	}
	return nil
}
