// internal/handlers/health_handler.go
package handlers

import (
	"log/slog"
	"net/http"

	"go_5_vocab_srs/internal/health"
	"go_5_vocab_srs/internal/model"
	"go_5_vocab_srs/internal/webutil"
)

type HealthHandler struct {
	aggregator *health.Aggregator
	logger     *slog.Logger
}

func NewHealthHandler(aggregator *health.Aggregator, logger *slog.Logger) *HealthHandler {
	return &HealthHandler{aggregator: aggregator, logger: logger}
}

// GetHealth はシステム全体の稼働状態を返します。
// detailed=true でコンポーネントごとの内訳を含める。
// 全体が unhealthy のときのみ 503 を返す (degraded/disabled は 200)。
// GET /api/v1/health?detailed=true
func (h *HealthHandler) GetHealth(w http.ResponseWriter, r *http.Request) {
	resp := h.aggregator.Check(r.Context())

	if r.URL.Query().Get("detailed") != "true" {
		resp.Components = nil
	}

	status := http.StatusOK
	if resp.Status == model.StatusUnhealthy {
		status = http.StatusServiceUnavailable
	}
	webutil.RespondWithJSON(w, status, resp)
}
