// internal/model/prediction.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// ScheduleSource はスケジュールがどの経路で計算されたかを示すタグ
type ScheduleSource string

const (
	SourceSM2    ScheduleSource = "sm2"    // 決定的ベースラインのみ
	SourceGNN    ScheduleSource = "gnn"    // 学習ベースの信号のみ
	SourceHybrid ScheduleSource = "hybrid" // ベースライン + 予測のブレンド
)

// Prediction は特定ユーザー・語彙に対する成功率予測。
// オンデマンドで計算される一時データであり、永続化しない。
type Prediction struct {
	UserID                uuid.UUID   `json:"user_id"`
	VocabularyID          uuid.UUID   `json:"vocabulary_id"`
	NextReviewDate        time.Time   `json:"next_review_date"`
	PredictedSuccessRate  float64     `json:"predicted_success_rate"` // [0,1]
	Confidence            float64     `json:"confidence"`             // [0,1]
	RecommendedDifficulty Difficulty  `json:"recommended_difficulty"`
	SuggestedRelatedWords []uuid.UUID `json:"suggested_related_words,omitempty"`
	SampleCount           int         `json:"sample_count"`
	BaselineOnly          bool        `json:"baseline_only"` // グラフ信号なしで計算された場合 true
}

// ScheduleEntry はスケジュール要求ごとに生成されるリードモデル。
// ReviewCard + Prediction の合成結果であり、永続化しない。
type ScheduleEntry struct {
	CardID             uuid.UUID      `json:"card_id,omitempty"`
	VocabularyID       uuid.UUID      `json:"vocabulary_id"`
	Word               string         `json:"word,omitempty"`
	ScheduledDate      time.Time      `json:"scheduled_date"`
	ConfidenceScore    float64        `json:"confidence_score"`
	RecommendedRelated []uuid.UUID    `json:"recommended_related,omitempty"`
	Source             ScheduleSource `json:"source"`
	Priority           float64        `json:"priority,omitempty"`
}

// PostPredictionRequest は予測取得リクエストのDTO
type PostPredictionRequest struct {
	UserID       string `json:"user_id" validate:"required,uuid"`
	VocabularyID string `json:"vocabulary_id" validate:"required,uuid"`
}

// PostScheduleRequest は呼び出し元が渡すカード状態に対する
// ハイブリッドスケジュール計算リクエスト (永続化の副作用なし)
type PostScheduleRequest struct {
	UserID string      `json:"user_id" validate:"required,uuid"`
	Cards  []CardState `json:"cards" validate:"required,min=1,max=200,dive"`
}

// PutScheduleRequest は単一カードの難易度適応リクエスト
type PutScheduleRequest struct {
	UserID string    `json:"user_id" validate:"required,uuid"`
	Card   CardState `json:"card" validate:"required"`
}

// ScheduleResponse はスケジュール系APIの共通レスポンス。
// Enhanced はハイブリッド経路が使われたかどうかを呼び出し元に明示する。
type ScheduleResponse struct {
	Entries  []*ScheduleEntry `json:"entries"`
	Enhanced bool             `json:"enhanced"`
}
