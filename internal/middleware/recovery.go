package middleware

import (
	"log/slog"
	"net/http"
	"runtime/debug"
)

// NewRecoveryMiddleware はハンドラー内のpanicを捕捉し、スタックトレースを
// ログに記録したうえで統一エラーフォーマットの500を返すミドルウェアを返す。
// panicの詳細はログのみに残し、レスポンスには含めない。
func NewRecoveryMiddleware() func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rec := recover(); rec != nil {
					attrs := []any{
						slog.Any("panic", rec),
						slog.String("method", r.Method),
						slog.String("path", r.URL.Path),
						slog.String("stack", string(debug.Stack())),
					}
					if sid, err := SessionIDFromContext(r.Context()); err == nil {
						attrs = append(attrs, slog.String("session_id", sid))
					}
					slog.Error("panic recovered", attrs...)

					WriteInternalServerError(w)
				}
			}()

			next.ServeHTTP(w, r)
		})
	}
}
