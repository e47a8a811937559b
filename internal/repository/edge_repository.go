//go:generate mockery --name EdgeRepository --output ./mocks --outpkg mocks --case=underscore
package repository

import (
	"context"
	"fmt"
	"time"

	"go_5_vocab_srs/internal/middleware"
	"go_5_vocab_srs/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// EdgeRepository は混同グラフのエッジを永続化します。
// IncrementWeight はUPSERTで weight を加算するため、並行呼び出しでも
// 加算が失われない (上書きではなく加算)。
type EdgeRepository interface {
	IncrementWeight(ctx context.Context, tx *gorm.DB, userID, itemA, itemB uuid.UUID, now time.Time) error
	FindByUser(ctx context.Context, db *gorm.DB, userID uuid.UUID) ([]*model.ConfusionEdge, error)
	// FindByUserAndItem は item がどちらかの端点であるエッジを weight 降順で返します
	FindByUserAndItem(ctx context.Context, db *gorm.DB, userID, itemID uuid.UUID, limit int) ([]*model.ConfusionEdge, error)
}

type gormEdgeRepository struct{}

func NewGormEdgeRepository() EdgeRepository {
	return &gormEdgeRepository{}
}

func (r *gormEdgeRepository) IncrementWeight(ctx context.Context, tx *gorm.DB, userID, itemA, itemB uuid.UUID, now time.Time) error {
	logger := middleware.GetLogger(ctx)

	// 格納順序は (ItemA < ItemB) に正規化。対称ペアとして扱う。
	a, b := model.NormalizePair(itemA, itemB)

	edge := &model.ConfusionEdge{
		EdgeID:         uuid.New(),
		UserID:         userID,
		ItemA:          a,
		ItemB:          b,
		Weight:         1,
		LastConfusedAt: now,
	}

	result := tx.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}, {Name: "item_a"}, {Name: "item_b"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"weight":           gorm.Expr("confusion_edges.weight + 1"),
			"last_confused_at": now,
			"updated_at":       now,
		}),
	}).Create(edge)
	if result.Error != nil {
		logger.Error("Error incrementing confusion edge weight in DB",
			"error", result.Error,
			"user_id", userID.String(),
		)
		return fmt.Errorf("gormEdgeRepository.IncrementWeight: %w", result.Error)
	}
	return nil
}

func (r *gormEdgeRepository) FindByUser(ctx context.Context, db *gorm.DB, userID uuid.UUID) ([]*model.ConfusionEdge, error) {
	var edges []*model.ConfusionEdge
	result := db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("weight DESC").
		Find(&edges)
	if result.Error != nil {
		return nil, fmt.Errorf("gormEdgeRepository.FindByUser: %w", result.Error)
	}
	return edges, nil
}

func (r *gormEdgeRepository) FindByUserAndItem(ctx context.Context, db *gorm.DB, userID, itemID uuid.UUID, limit int) ([]*model.ConfusionEdge, error) {
	var edges []*model.ConfusionEdge
	result := db.WithContext(ctx).
		Where("user_id = ? AND (item_a = ? OR item_b = ?)", userID, itemID, itemID).
		Order("weight DESC").
		Limit(limit).
		Find(&edges)
	if result.Error != nil {
		return nil, fmt.Errorf("gormEdgeRepository.FindByUserAndItem: %w", result.Error)
	}
	return edges, nil
}
