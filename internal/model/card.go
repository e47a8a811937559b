// internal/model/card.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// EaseFactor の定義域。範囲外の入力はクランプする（エラーにしない）。
const (
	MinEaseFactor     = 1.3
	MaxEaseFactor     = 2.5
	DefaultEaseFactor = 2.5
)

// ReviewCard はユーザーごとの復習カード（SM-2 の決定的状態）を表します。
// (user_id, vocabulary_id) の組で一意。更新は必ず Version による楽観ロックで直列化する。
type ReviewCard struct {
	CardID         uuid.UUID `gorm:"type:uuid;primaryKey" json:"card_id"`
	UserID         uuid.UUID `gorm:"type:uuid;not null;index:idx_user_vocab,unique" json:"user_id"`
	VocabularyID   uuid.UUID `gorm:"type:uuid;not null;index:idx_user_vocab,unique" json:"vocabulary_id"`
	Word           string    `json:"word"` // 表示用の非正規化フィールド
	EaseFactor     float64   `gorm:"not null;default:2.5" json:"ease_factor"`
	IntervalDays   int       `gorm:"not null;default:0" json:"interval_days"`
	Repetitions    int       `gorm:"not null;default:0" json:"repetitions"`
	NextReview     time.Time `gorm:"not null;index" json:"next_review"`
	Version        int64     `gorm:"not null;default:1" json:"-"` // 楽観ロック用
	LastReviewedAt *time.Time `json:"last_reviewed_at,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

func (ReviewCard) TableName() string {
	return "review_cards"
}

// CardState はスケジュール計算API (POST /schedule, PUT /schedule) で
// 呼び出し元が渡すカード状態のDTO。永続化には影響しない。
type CardState struct {
	CardID       *uuid.UUID `json:"card_id,omitempty"`
	VocabularyID uuid.UUID  `json:"vocabulary_id" validate:"required"`
	Word         string     `json:"word,omitempty"`
	EaseFactor   float64    `json:"ease_factor" validate:"omitempty,gte=0"`
	IntervalDays int        `json:"interval_days" validate:"omitempty,gte=0"`
	Repetitions  int        `json:"repetitions" validate:"omitempty,gte=0"`
	NextReview   *time.Time `json:"next_review,omitempty"`
}

// ToCard はDTOを ReviewCard に変換します（未設定値はデフォルトを補う）
func (s *CardState) ToCard(userID uuid.UUID) ReviewCard {
	card := ReviewCard{
		UserID:       userID,
		VocabularyID: s.VocabularyID,
		Word:         s.Word,
		EaseFactor:   s.EaseFactor,
		IntervalDays: s.IntervalDays,
		Repetitions:  s.Repetitions,
	}
	if s.CardID != nil {
		card.CardID = *s.CardID
	}
	if card.EaseFactor == 0 {
		card.EaseFactor = DefaultEaseFactor
	}
	if s.NextReview != nil {
		card.NextReview = *s.NextReview
	}
	return card
}
