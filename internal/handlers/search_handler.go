// internal/handlers/search_handler.go
package handlers

import (
	"log/slog"
	"net/http"

	"go_5_vocab_srs/internal/middleware"
	"go_5_vocab_srs/internal/model"
	"go_5_vocab_srs/internal/repository"
	"go_5_vocab_srs/internal/search"
	"go_5_vocab_srs/internal/webutil"
)

type SearchHandler struct {
	service search.Service
	logger  *slog.Logger
}

func NewSearchHandler(s search.Service, logger *slog.Logger) *SearchHandler {
	return &SearchHandler{service: s, logger: logger}
}

// PostSearch はセマンティック検索 (フィルタ付きはハイブリッド検索) を実行します
// POST /api/v1/search
func (h *SearchHandler) PostSearch(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context())

	var req model.PostSearchRequest
	if err := webutil.DecodeAndValidate(r, &req); err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	filter := repository.VocabFilter{
		Language:   req.Language,
		Difficulty: model.Difficulty(req.Difficulty),
	}
	results, err := h.service.HybridSearch(r.Context(), req.Query, filter, search.Options{
		Limit:     req.Limit,
		Threshold: req.Threshold,
	})
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	webutil.RespondWithJSON(w, http.StatusOK, model.SearchResponse{
		Results: results,
		Query:   req.Query,
	})
}

// GetSearch はクエリ文字列だけの簡易検索エンドポイントです
// GET /api/v1/search?q=...
func (h *SearchHandler) GetSearch(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context())

	query := r.URL.Query().Get("q")
	if query == "" {
		webutil.HandleError(w, logger, model.NewAppError("INVALID_QUERY",
			"検索クエリ q が必要です。", "q", model.ErrInvalidInput))
		return
	}

	results, err := h.service.Search(r.Context(), query, search.Options{})
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	webutil.RespondWithJSON(w, http.StatusOK, model.SearchResponse{
		Results: results,
		Query:   query,
	})
}
