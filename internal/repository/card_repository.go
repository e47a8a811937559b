//go:generate mockery --name CardRepository --output ./mocks --outpkg mocks --case=underscore
package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go_5_vocab_srs/internal/middleware"
	"go_5_vocab_srs/internal/model"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// CardRepository は ReviewCard の永続化を担当します。
// (user_id, vocabulary_id) の一意性と、Version による楽観ロックを保証する。
type CardRepository interface {
	Create(ctx context.Context, tx *gorm.DB, card *model.ReviewCard) error
	FindByUserAndVocab(ctx context.Context, db *gorm.DB, userID, vocabularyID uuid.UUID) (*model.ReviewCard, error)
	// UpdateVersioned は読み取り時の Version が一致する場合のみ更新します。
	// 競合時は model.ErrConflict を返し、呼び出し元が読み直してリトライする。
	UpdateVersioned(ctx context.Context, tx *gorm.DB, card *model.ReviewCard) error
	FindDueByUser(ctx context.Context, db *gorm.DB, userID uuid.UUID, until time.Time, limit int) ([]*model.ReviewCard, error)
}

type gormCardRepository struct{}

func NewGormCardRepository() CardRepository {
	return &gormCardRepository{}
}

func (r *gormCardRepository) Create(ctx context.Context, tx *gorm.DB, card *model.ReviewCard) error {
	logger := middleware.GetLogger(ctx)
	result := tx.WithContext(ctx).Create(card)
	if result.Error != nil {
		// (user_id, vocabulary_id) の一意制約違反は Conflict として返す
		var pgErr *pgconn.PgError
		if errors.As(result.Error, &pgErr) && pgErr.Code == "23505" {
			return model.ErrConflict
		}
		if errors.Is(result.Error, gorm.ErrDuplicatedKey) {
			return model.ErrConflict
		}
		logger.Error("Error creating review card in DB",
			"error", result.Error,
			"user_id", card.UserID.String(),
			"vocabulary_id", card.VocabularyID.String(),
		)
		return fmt.Errorf("gormCardRepository.Create: %w", result.Error)
	}
	return nil
}

func (r *gormCardRepository) FindByUserAndVocab(ctx context.Context, db *gorm.DB, userID, vocabularyID uuid.UUID) (*model.ReviewCard, error) {
	var card model.ReviewCard
	result := db.WithContext(ctx).
		Where("user_id = ? AND vocabulary_id = ?", userID, vocabularyID).
		First(&card)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		return nil, fmt.Errorf("gormCardRepository.FindByUserAndVocab: %w", result.Error)
	}
	return &card, nil
}

func (r *gormCardRepository) UpdateVersioned(ctx context.Context, tx *gorm.DB, card *model.ReviewCard) error {
	logger := middleware.GetLogger(ctx)

	currentVersion := card.Version
	updates := map[string]interface{}{
		"ease_factor":      card.EaseFactor,
		"interval_days":    card.IntervalDays,
		"repetitions":      card.Repetitions,
		"next_review":      card.NextReview,
		"last_reviewed_at": card.LastReviewedAt,
		"version":          currentVersion + 1,
	}

	result := tx.WithContext(ctx).Model(&model.ReviewCard{}).
		Where("card_id = ? AND version = ?", card.CardID, currentVersion).
		Updates(updates)
	if result.Error != nil {
		logger.Error("Error updating review card in DB", "error", result.Error, "card_id", card.CardID.String())
		return fmt.Errorf("gormCardRepository.UpdateVersioned: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		// 別のリクエストが先に更新した。last-writer-wins で上書きしてはいけない。
		return model.ErrConflict
	}
	card.Version = currentVersion + 1
	return nil
}

func (r *gormCardRepository) FindDueByUser(ctx context.Context, db *gorm.DB, userID uuid.UUID, until time.Time, limit int) ([]*model.ReviewCard, error) {
	var cards []*model.ReviewCard
	result := db.WithContext(ctx).
		Where("user_id = ? AND next_review <= ?", userID, until).
		Order("next_review ASC, ease_factor ASC").
		Limit(limit).
		Find(&cards)
	if result.Error != nil {
		return nil, fmt.Errorf("gormCardRepository.FindDueByUser: %w", result.Error)
	}
	return cards, nil
}
