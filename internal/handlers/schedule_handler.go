// internal/handlers/schedule_handler.go
package handlers

import (
	"log/slog"
	"net/http"
	"strconv"

	"go_5_vocab_srs/internal/bridge"
	"go_5_vocab_srs/internal/learning"
	"go_5_vocab_srs/internal/middleware"
	"go_5_vocab_srs/internal/model"
	"go_5_vocab_srs/internal/webutil"

	"github.com/google/uuid"
)

type ScheduleHandler struct {
	learningSvc learning.Service
	bridge      bridge.Bridge
	logger      *slog.Logger
}

func NewScheduleHandler(learningSvc learning.Service, b bridge.Bridge, logger *slog.Logger) *ScheduleHandler {
	return &ScheduleHandler{learningSvc: learningSvc, bridge: b, logger: logger}
}

// GetSchedule は保存済みカードから復習スケジュールを返します
// GET /api/v1/schedule?user_id=...&limit=...
func (h *ScheduleHandler) GetSchedule(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context())

	userID, err := uuid.Parse(r.URL.Query().Get("user_id"))
	if err != nil {
		webutil.HandleError(w, logger, model.NewAppError("INVALID_USER_ID",
			"ユーザーIDが不正です。", "user_id", model.ErrInvalidInput))
		return
	}

	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		limit, err = strconv.Atoi(raw)
		if err != nil || limit < 0 {
			webutil.HandleError(w, logger, model.NewAppError("INVALID_LIMIT",
				"limit が不正です。", "limit", model.ErrInvalidInput))
			return
		}
	}

	entries, err := h.learningSvc.GetOptimalReviewSchedule(r.Context(), userID, limit)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	// enhanced はフラグの状態ではなく、返すエントリが実際に拡張経路を
	// 使ったかで決める。グラフ障害時に enhanced=true で sm2 のみを返さない。
	enhanced := false
	for _, entry := range entries {
		if entry.Source != model.SourceSM2 {
			enhanced = true
			break
		}
	}

	webutil.RespondWithJSON(w, http.StatusOK, model.ScheduleResponse{
		Entries:  entries,
		Enhanced: enhanced,
	})
}

// PostSchedule は渡されたカード状態に対してハイブリッドスケジュールを
// 計算します。ステートレスで、永続化の副作用はありません。
// POST /api/v1/schedule
func (h *ScheduleHandler) PostSchedule(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context())

	var req model.PostScheduleRequest
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

	cards := make([]model.ReviewCard, 0, len(req.Cards))
	for _, state := range req.Cards {
		cards = append(cards, state.ToCard(userID))
	}

	resp := h.bridge.GetHybridSchedule(r.Context(), userID, cards)
	webutil.RespondWithJSON(w, http.StatusOK, resp)
}

// PutSchedule は単一カードの難易度 (easeFactor) を予測に基づいて適応させ、
// 適応後のカード状態を返します。confidence が閾値未満なら変更しません。
// PUT /api/v1/schedule
func (h *ScheduleHandler) PutSchedule(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context())

	var req model.PutScheduleRequest
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
	if req.Card.VocabularyID == uuid.Nil {
		webutil.HandleError(w, logger, model.NewAppError("INVALID_VOCABULARY_ID",
			"語彙IDが不正です。", "card.vocabulary_id", model.ErrInvalidInput))
		return
	}

	adapted, changed := h.bridge.AdaptDifficulty(r.Context(), userID, req.Card.ToCard(userID))
	webutil.RespondWithJSON(w, http.StatusOK, map[string]any{
		"card":    adapted,
		"adapted": changed,
	})
}
