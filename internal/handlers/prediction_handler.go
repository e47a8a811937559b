// internal/handlers/prediction_handler.go
package handlers

import (
	"log/slog"
	"net/http"

	"go_5_vocab_srs/internal/learning"
	"go_5_vocab_srs/internal/middleware"
	"go_5_vocab_srs/internal/model"
	"go_5_vocab_srs/internal/webutil"

	"github.com/google/uuid"
)

type PredictionHandler struct {
	service learning.Service
	logger  *slog.Logger
}

func NewPredictionHandler(s learning.Service, logger *slog.Logger) *PredictionHandler {
	return &PredictionHandler{service: s, logger: logger}
}

// PostPrediction は特定ユーザー・語彙の成功率予測を返します
// POST /api/v1/predictions
func (h *PredictionHandler) PostPrediction(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context())

	var req model.PostPredictionRequest
	if err := webutil.DecodeAndValidate(r, &req); err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	userID, err := uuid.Parse(req.UserID)
	if err != nil {
		webutil.HandleError(w, logger, model.NewAppError("INVALID_USER_ID",
			"ユーザーIDが不正です。", "user_id", model.ErrInvalidInput))
		return
	}
	vocabularyID, err := uuid.Parse(req.VocabularyID)
	if err != nil {
		webutil.HandleError(w, logger, model.NewAppError("INVALID_VOCABULARY_ID",
			"語彙IDが不正です。", "vocabulary_id", model.ErrInvalidInput))
		return
	}

	prediction, err := h.service.GetPrediction(r.Context(), userID, vocabularyID)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, prediction)
}

// GetConfusionPairs はユーザーの混同ペア一覧を重み降順で返します
// GET /api/v1/predictions?user_id=...
func (h *PredictionHandler) GetConfusionPairs(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context())

	userID, err := uuid.Parse(r.URL.Query().Get("user_id"))
	if err != nil {
		webutil.HandleError(w, logger, model.NewAppError("INVALID_USER_ID",
			"ユーザーIDが不正です。", "user_id", model.ErrInvalidInput))
		return
	}

	edges := h.service.GetConfusionPairs(r.Context(), userID)
	pairs := make([]model.ConfusionPairResponse, 0, len(edges))
	for _, edge := range edges {
		pairs = append(pairs, model.ConfusionPairResponse{
			ItemA:          edge.ItemA,
			ItemB:          edge.ItemB,
			Weight:         edge.Weight,
			LastConfusedAt: edge.LastConfusedAt,
		})
	}
	webutil.RespondWithJSON(w, http.StatusOK, pairs)
}
