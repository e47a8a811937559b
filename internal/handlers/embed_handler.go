// internal/handlers/embed_handler.go
package handlers

import (
	"log/slog"
	"net/http"

	"go_5_vocab_srs/internal/embedding"
	"go_5_vocab_srs/internal/middleware"
	"go_5_vocab_srs/internal/model"
	"go_5_vocab_srs/internal/webutil"
)

type EmbedHandler struct {
	service embedding.Service
	logger  *slog.Logger
}

func NewEmbedHandler(s embedding.Service, logger *slog.Logger) *EmbedHandler {
	return &EmbedHandler{service: s, logger: logger}
}

// PostEmbed は単一テキストまたはバッチの埋め込みを生成します
// POST /api/v1/embed
func (h *EmbedHandler) PostEmbed(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context())

	var req model.PostEmbedRequest
	if err := webutil.DecodeAndValidate(r, &req); err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	// text / texts のどちらか一方を必須とする
	if req.Text == "" && len(req.Texts) == 0 {
		webutil.HandleError(w, logger, model.NewAppError("TEXT_REQUIRED",
			"text または texts のいずれかが必要です。", "text", model.ErrInvalidInput))
		return
	}
	if req.Text != "" && len(req.Texts) > 0 {
		webutil.HandleError(w, logger, model.NewAppError("TEXT_AMBIGUOUS",
			"text と texts は同時に指定できません。", "text", model.ErrInvalidInput))
		return
	}

	if req.Text != "" {
		record, err := h.service.Embed(r.Context(), req.Text)
		if err != nil {
			webutil.HandleError(w, logger, err)
			return
		}
		webutil.RespondWithJSON(w, http.StatusOK, record)
		return
	}

	records, err := h.service.BatchEmbed(r.Context(), req.Texts)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, records)
}

// PutSimilarity は2つのベクトルのコサイン類似度を計算します
// PUT /api/v1/embed
func (h *EmbedHandler) PutSimilarity(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context())

	var req model.PutSimilarityRequest
	if err := webutil.DecodeAndValidate(r, &req); err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	similarity, err := h.service.Similarity(req.VectorA, req.VectorB)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, model.SimilarityResponse{Similarity: similarity})
}
