// internal/model/graph.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// ConfusionEdge はユーザーごとの混同グラフの重み付きエッジを表します。
// 対称なペアとして扱うため、ItemA < ItemB (UUID文字列比較) に正規化して格納する。
// Weight は単調増加カウンタ。加算は可換なので並行更新の直列化は不要。
type ConfusionEdge struct {
	EdgeID         uuid.UUID `gorm:"type:uuid;primaryKey" json:"edge_id"`
	UserID         uuid.UUID `gorm:"type:uuid;not null;index:idx_user_pair,unique" json:"user_id"`
	ItemA          uuid.UUID `gorm:"type:uuid;not null;index:idx_user_pair,unique" json:"item_a"`
	ItemB          uuid.UUID `gorm:"type:uuid;not null;index:idx_user_pair,unique" json:"item_b"`
	Weight         int       `gorm:"not null;default:1" json:"weight"`
	LastConfusedAt time.Time `gorm:"not null" json:"last_confused_at"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"-"`
}

func (ConfusionEdge) TableName() string {
	return "confusion_edges"
}

// NormalizePair はエッジの格納順序 (ItemA < ItemB) に正規化したペアを返します
func NormalizePair(a, b uuid.UUID) (uuid.UUID, uuid.UUID) {
	if a.String() > b.String() {
		return b, a
	}
	return a, b
}

// ConfusionPairResponse は混同ペア一覧のレスポンスDTO
type ConfusionPairResponse struct {
	ItemA          uuid.UUID `json:"item_a"`
	ItemB          uuid.UUID `json:"item_b"`
	Weight         int       `json:"weight"`
	LastConfusedAt time.Time `json:"last_confused_at"`
}
