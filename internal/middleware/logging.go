// internal/middleware/logging.go
package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5/middleware"
)

// logCtxKey はコンテキストにロガーを格納するためのキーです。
type logCtxKey struct{}

// NewStructuredLogger はリクエスト/レスポンスのログ出力を一元管理するミドルウェアです。
// リクエストIDを付与したロガーをコンテキストに格納し、ハンドラ以降は GetLogger で取り出す。
func NewStructuredLogger(logger *slog.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		fn := func(w http.ResponseWriter, r *http.Request) {
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			t1 := time.Now()
			requestID := middleware.GetReqID(r.Context())

			reqLogger := logger.With(slog.String("request_id", requestID))
			ctx := context.WithValue(r.Context(), logCtxKey{}, reqLogger)

			defer func() {
				// 5xxはError、4xxはWarn、それ以外はInfo
				level := slog.LevelInfo
				if ww.Status() >= 500 {
					level = slog.LevelError
				} else if ww.Status() >= 400 {
					level = slog.LevelWarn
				}

				reqLogger.LogAttrs(ctx, level, "Request completed",
					slog.String("method", r.Method),
					slog.String("path", r.URL.Path),
					slog.Int("status", ww.Status()),
					slog.Int("bytes_out", ww.BytesWritten()),
					slog.Duration("latency", time.Since(t1)),
				)
			}()

			next.ServeHTTP(ww, r.WithContext(ctx))
		}
		return http.HandlerFunc(fn)
	}
}

// GetLogger はコンテキストからリクエストスコープのロガーを取り出します。
// ミドルウェアを経由していない場合はデフォルトロガーを返す。
func GetLogger(ctx context.Context) *slog.Logger {
	if logger, ok := ctx.Value(logCtxKey{}).(*slog.Logger); ok {
		return logger
	}
	return slog.Default()
}
