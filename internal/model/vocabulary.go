// internal/model/vocabulary.go
package model

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Difficulty は語彙の難易度区分
type Difficulty string

const (
	DifficultyBeginner     Difficulty = "beginner"
	DifficultyIntermediate Difficulty = "intermediate"
	DifficultyAdvanced     Difficulty = "advanced"
)

// Valid は難易度が定義済みの値かどうかを返します
func (d Difficulty) Valid() bool {
	switch d {
	case DifficultyBeginner, DifficultyIntermediate, DifficultyAdvanced:
		return true
	}
	return false
}

// VocabularyItem は学習対象の語彙を表します。
// Embedding は派生キャッシュであり、失っても再計算できる（正本ではない）。
type VocabularyItem struct {
	VocabularyID   uuid.UUID      `gorm:"type:uuid;primaryKey" json:"vocabulary_id"`
	Word           string         `gorm:"not null;index" json:"word"`
	Translation    string         `gorm:"not null" json:"translation"`
	Language       string         `gorm:"not null;index" json:"language"`
	Difficulty     Difficulty     `gorm:"not null;default:beginner" json:"difficulty"`
	Embedding      string         `gorm:"type:text" json:"-"` // JSONエンコードした []float32
	EmbeddingModel string         `json:"-"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
	DeletedAt      gorm.DeletedAt `gorm:"index" json:"-"` // 論理削除用
}

func (VocabularyItem) TableName() string {
	return "vocabulary_items"
}

// Vector はキャッシュ済みの埋め込みベクトルをデコードして返します。
// 未設定の場合は nil を返します（エラーではない）。
func (v *VocabularyItem) Vector() []float32 {
	if v.Embedding == "" {
		return nil
	}
	var vec []float32
	if err := json.Unmarshal([]byte(v.Embedding), &vec); err != nil {
		return nil
	}
	return vec
}

// SetVector は埋め込みベクトルをJSON文字列として格納します
func (v *VocabularyItem) SetVector(vec []float32, modelName string) error {
	data, err := json.Marshal(vec)
	if err != nil {
		return err
	}
	v.Embedding = string(data)
	v.EmbeddingModel = modelName
	return nil
}
