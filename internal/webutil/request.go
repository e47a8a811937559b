// internal/webutil/request.go
package webutil

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"go_5_vocab_srs/internal/model"
)

// DecodeJSONBody はリクエストボディをデコードします
func DecodeJSONBody(r *http.Request, dst interface{}) error {
	if r.Body == nil {
		return model.NewAppError("INVALID_BODY", "リクエストボディが必要です。", "", model.ErrInvalidInput)
	}
	defer r.Body.Close()

	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()

	if err := decoder.Decode(dst); err != nil {
		slog.Debug("Error decoding JSON body", "error", err)
		return model.NewAppError("INVALID_BODY", "リクエストボディの形式が正しくありません。", "", model.ErrInvalidInput)
	}
	return nil
}

// DecodeAndValidate はデコードとバリデーションをまとめて行うヘルパー
func DecodeAndValidate(r *http.Request, dst interface{}) error {
	if err := DecodeJSONBody(r, dst); err != nil {
		return err
	}
	return ValidateStruct(dst)
}
