//go:generate mockery --name InteractionRepository --output ./mocks --outpkg mocks --case=underscore
package repository

import (
	"context"
	"fmt"

	"go_5_vocab_srs/internal/middleware"
	"go_5_vocab_srs/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// InteractionRepository は復習試行イベントの追記専用ストアです。
// Interaction は作成後に更新しない。並行追記は可換なので直列化不要。
type InteractionRepository interface {
	Append(ctx context.Context, tx *gorm.DB, interaction *model.Interaction) error
	// FindRecentByUserAndVocab は新しい順に最大 limit 件を返します
	FindRecentByUserAndVocab(ctx context.Context, db *gorm.DB, userID, vocabularyID uuid.UUID, limit int) ([]*model.Interaction, error)
	CountByUserAndVocab(ctx context.Context, db *gorm.DB, userID, vocabularyID uuid.UUID) (int64, error)
	// FindDistinctVocabByUser は試行履歴のある語彙IDの一覧を返します
	FindDistinctVocabByUser(ctx context.Context, db *gorm.DB, userID uuid.UUID) ([]uuid.UUID, error)
}

type gormInteractionRepository struct{}

func NewGormInteractionRepository() InteractionRepository {
	return &gormInteractionRepository{}
}

func (r *gormInteractionRepository) Append(ctx context.Context, tx *gorm.DB, interaction *model.Interaction) error {
	logger := middleware.GetLogger(ctx)
	result := tx.WithContext(ctx).Create(interaction)
	if result.Error != nil {
		logger.Error("Error appending interaction in DB",
			"error", result.Error,
			"user_id", interaction.UserID.String(),
			"vocabulary_id", interaction.VocabularyID.String(),
		)
		return fmt.Errorf("gormInteractionRepository.Append: %w", result.Error)
	}
	return nil
}

func (r *gormInteractionRepository) FindRecentByUserAndVocab(ctx context.Context, db *gorm.DB, userID, vocabularyID uuid.UUID, limit int) ([]*model.Interaction, error) {
	var interactions []*model.Interaction
	result := db.WithContext(ctx).
		Where("user_id = ? AND vocabulary_id = ?", userID, vocabularyID).
		Order("created_at DESC").
		Limit(limit).
		Find(&interactions)
	if result.Error != nil {
		return nil, fmt.Errorf("gormInteractionRepository.FindRecentByUserAndVocab: %w", result.Error)
	}
	return interactions, nil
}

func (r *gormInteractionRepository) CountByUserAndVocab(ctx context.Context, db *gorm.DB, userID, vocabularyID uuid.UUID) (int64, error) {
	var count int64
	result := db.WithContext(ctx).Model(&model.Interaction{}).
		Where("user_id = ? AND vocabulary_id = ?", userID, vocabularyID).
		Count(&count)
	if result.Error != nil {
		return 0, fmt.Errorf("gormInteractionRepository.CountByUserAndVocab: %w", result.Error)
	}
	return count, nil
}

func (r *gormInteractionRepository) FindDistinctVocabByUser(ctx context.Context, db *gorm.DB, userID uuid.UUID) ([]uuid.UUID, error) {
	var vocabularyIDs []uuid.UUID
	result := db.WithContext(ctx).Model(&model.Interaction{}).
		Where("user_id = ?", userID).
		Distinct("vocabulary_id").
		Pluck("vocabulary_id", &vocabularyIDs)
	if result.Error != nil {
		return nil, fmt.Errorf("gormInteractionRepository.FindDistinctVocabByUser: %w", result.Error)
	}
	return vocabularyIDs, nil
}
