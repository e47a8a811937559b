// internal/model/error.go
package model

import (
	"errors"
	"fmt"
)

// アプリケーション固有のエラー
var (
	ErrNotFound          = errors.New("resource not found")
	ErrInvalidInput      = errors.New("invalid input")
	ErrInternalServer    = errors.New("internal server error")
	ErrConflict          = errors.New("resource conflict") // 楽観ロック・重複エラー用
	ErrFeatureDisabled   = errors.New("feature disabled")  // フィーチャーフラグ無効
	ErrDependencyTimeout = errors.New("dependency timeout")
	ErrDimensionMismatch = errors.New("vector dimension mismatch") // ベクトル演算の誤用
)

// ErrorDetail はAPIエラーレスポンスの詳細部分
type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Field   string `json:"field,omitempty"`
}

// APIErrorResponse はAPIエラーレスポンスの構造体
type APIErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// AppError はエラーコードとユーザー向けメッセージを持つカスタムエラー型。
// Unwrap でラップした原因エラー (sentinel) を返し、HTTPステータスの判定に使う。
type AppError struct {
	Detail ErrorDetail
	Err    error
}

func NewAppError(code, message, field string, err error) *AppError {
	return &AppError{
		Detail: ErrorDetail{Code: code, Message: message, Field: field},
		Err:    err,
	}
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (%v)", e.Detail.Code, e.Detail.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Detail.Code, e.Detail.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}
