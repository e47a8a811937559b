// internal/model/embedding.go
package model

// 埋め込み対象テキストの最大長 (文字数)
const MaxEmbeddingTextLength = 10000

// EmbeddingRecord は埋め込み計算の結果を表します。
// キャッシュから返された場合は Cached が true、プロバイダ障害時の
// 決定的フォールバックの場合は Fallback が true になる。
// これは派生エンティティであり、正本ではない（失っても再計算できる）。
type EmbeddingRecord struct {
	TextHash   string    `json:"text_hash"`
	Vector     []float32 `json:"vector"`
	Model      string    `json:"model"`
	Dimensions int       `json:"dimensions"`
	TokenCount int       `json:"token_count"`
	Cached     bool      `json:"cached"`
	Fallback   bool      `json:"fallback"`
}

// PostEmbedRequest は埋め込み生成リクエストのDTO
type PostEmbedRequest struct {
	Text  string   `json:"text,omitempty" validate:"omitempty,max=10000"`
	Texts []string `json:"texts,omitempty" validate:"omitempty,min=1,max=100,dive,max=10000"`
}

// PutSimilarityRequest はコサイン類似度計算リクエストのDTO
type PutSimilarityRequest struct {
	VectorA []float32 `json:"vector_a" validate:"required,min=1"`
	VectorB []float32 `json:"vector_b" validate:"required,min=1"`
}

// SimilarityResponse は類似度計算のレスポンス
type SimilarityResponse struct {
	Similarity float64 `json:"similarity"`
}
