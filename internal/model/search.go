// internal/model/search.go
package model

import "github.com/google/uuid"

// ScoredResult はベクトル検索の1件分の結果
type ScoredResult struct {
	VocabularyID uuid.UUID  `json:"vocabulary_id"`
	Word         string     `json:"word"`
	Translation  string     `json:"translation"`
	Language     string     `json:"language"`
	Difficulty   Difficulty `json:"difficulty"`
	Similarity   float64    `json:"similarity"`
}

// PostSearchRequest はセマンティック検索リクエストのDTO。
// Language / Difficulty を指定するとハイブリッド検索 (構造化フィルタ → ベクトル順位付け) になる。
type PostSearchRequest struct {
	Query      string  `json:"query" validate:"required,max=10000"`
	Limit      int     `json:"limit" validate:"omitempty,gte=1,lte=100"`
	Threshold  float64 `json:"threshold" validate:"omitempty,gte=-1,lte=1"`
	Language   string  `json:"language,omitempty" validate:"omitempty,max=16"`
	Difficulty string  `json:"difficulty,omitempty" validate:"omitempty,oneof=beginner intermediate advanced"`
}

// SearchResponse は検索レスポンス
type SearchResponse struct {
	Results []ScoredResult `json:"results"`
	Query   string         `json:"query"`
}
