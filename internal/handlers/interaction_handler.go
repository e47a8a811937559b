// internal/handlers/interaction_handler.go
package handlers

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"

	"go_5_vocab_srs/internal/learning"
	"go_5_vocab_srs/internal/middleware"
	"go_5_vocab_srs/internal/model"
	"go_5_vocab_srs/internal/webutil"

	"github.com/google/uuid"
)

type InteractionHandler struct {
	service learning.Service
	logger  *slog.Logger
}

func NewInteractionHandler(s learning.Service, logger *slog.Logger) *InteractionHandler {
	return &InteractionHandler{service: s, logger: logger}
}

// PostInteractions は単一オブジェクトまたは配列を受け付け、
// 項目ごとの受理/失敗件数を返します。
func (h *InteractionHandler) PostInteractions(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context())

	body, err := io.ReadAll(io.LimitReader(r.Body, 1<<20))
	if err != nil {
		webutil.HandleError(w, logger, model.NewAppError("INVALID_BODY",
			"リクエストボディの読み取りに失敗しました。", "", model.ErrInvalidInput))
		return
	}
	defer r.Body.Close()

	requests, appErr := decodeInteractionBody(body)
	if appErr != nil {
		webutil.HandleError(w, logger, appErr)
		return
	}

	resp := model.PostInteractionsResponse{Errors: []model.InteractionItemError{}}
	for i, req := range requests {
		if err := h.processOne(r, &req); err != nil {
			resp.Failed++
			resp.Errors = append(resp.Errors, model.InteractionItemError{
				Index:   i,
				Message: err.Error(),
			})
			continue
		}
		resp.Accepted++
	}

	status := http.StatusAccepted
	if resp.Accepted == 0 && resp.Failed > 0 {
		status = http.StatusBadRequest
	}
	webutil.RespondWithJSON(w, status, resp)
}

func (h *InteractionHandler) processOne(r *http.Request, req *model.PostInteractionRequest) error {
	if err := webutil.ValidateStruct(req); err != nil {
		return err
	}

	userID, err := uuid.Parse(req.UserID)
	if err != nil {
		return model.NewAppError("INVALID_USER_ID", "ユーザーIDが不正です。", "user_id", model.ErrInvalidInput)
	}
	vocabularyID, err := uuid.Parse(req.VocabularyID)
	if err != nil {
		return model.NewAppError("INVALID_VOCABULARY_ID", "語彙IDが不正です。", "vocabulary_id", model.ErrInvalidInput)
	}

	var confusedWith *uuid.UUID
	if req.ConfusedWith != "" {
		parsed, err := uuid.Parse(req.ConfusedWith)
		if err != nil {
			return model.NewAppError("INVALID_CONFUSED_WITH", "混同した語彙IDが不正です。", "confused_with", model.ErrInvalidInput)
		}
		confusedWith = &parsed
	}

	return h.service.RecordInteraction(r.Context(), userID, vocabularyID,
		*req.Success, *req.ResponseTime, confusedWith)
}

// decodeInteractionBody は配列・単一オブジェクトの両形式をデコードします
func decodeInteractionBody(body []byte) ([]model.PostInteractionRequest, *model.AppError) {
	trimmed := bytes.TrimLeft(body, " \t\r\n")
	if len(trimmed) == 0 {
		return nil, model.NewAppError("INVALID_BODY", "リクエストボディが必要です。", "", model.ErrInvalidInput)
	}

	if trimmed[0] == '[' {
		var requests []model.PostInteractionRequest
		if err := json.Unmarshal(trimmed, &requests); err != nil {
			return nil, model.NewAppError("INVALID_BODY", "リクエストボディの形式が正しくありません。", "", model.ErrInvalidInput)
		}
		if len(requests) == 0 {
			return nil, model.NewAppError("EMPTY_BATCH", "バッチが空です。", "", model.ErrInvalidInput)
		}
		return requests, nil
	}

	var single model.PostInteractionRequest
	if err := json.Unmarshal(trimmed, &single); err != nil {
		return nil, model.NewAppError("INVALID_BODY", "リクエストボディの形式が正しくありません。", "", model.ErrInvalidInput)
	}
	return []model.PostInteractionRequest{single}, nil
}
