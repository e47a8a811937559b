// internal/model/interaction.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// ResponseTime の上限 (ms)。これを超える入力はバリデーションエラー。
const MaxResponseTimeMs = 300000

// Interaction は1回の復習試行を表す追記専用イベント。
// LearningService の予測と混同グラフの正本であり、作成後は変更しない。
type Interaction struct {
	InteractionID  uuid.UUID  `gorm:"type:uuid;primaryKey" json:"interaction_id"`
	UserID         uuid.UUID  `gorm:"type:uuid;not null;index:idx_user_vocab_created" json:"user_id"`
	VocabularyID   uuid.UUID  `gorm:"type:uuid;not null;index:idx_user_vocab_created" json:"vocabulary_id"`
	Success        bool       `gorm:"not null" json:"success"`
	ResponseTimeMs int        `gorm:"not null" json:"response_time_ms"`
	ConfusedWith   *uuid.UUID `gorm:"type:uuid" json:"confused_with,omitempty"`
	CreatedAt      time.Time  `gorm:"not null;index:idx_user_vocab_created" json:"created_at"`
}

func (Interaction) TableName() string {
	return "interactions"
}

// PostInteractionRequest は復習結果送信のDTO。
// success と response_time はゼロ値と未指定を区別するためポインタで受ける。
type PostInteractionRequest struct {
	UserID       string `json:"user_id" validate:"required,uuid"`
	VocabularyID string `json:"vocabulary_id" validate:"required,uuid"`
	Success      *bool  `json:"success" validate:"required"`
	ResponseTime *int   `json:"response_time" validate:"required,gte=0,lte=300000"`
	ConfusedWith string `json:"confused_with,omitempty" validate:"omitempty,uuid"`
}

// InteractionItemError はバッチ登録で失敗した項目の内訳
type InteractionItemError struct {
	Index   int    `json:"index"`
	Message string `json:"message"`
}

// PostInteractionsResponse は単件・バッチ共通のレスポンス
type PostInteractionsResponse struct {
	Accepted int                    `json:"accepted"`
	Failed   int                    `json:"failed"`
	Errors   []InteractionItemError `json:"errors,omitempty"`
}
