package middleware

import "net/http"

// NewSecurityHeadersMiddleware は全レスポンスにセキュリティヘッダーを
// 付与するミドルウェアを返す。このAPIはJSONのみを返すため、CSPは
// 一切のリソース読み込みと埋め込みを禁止する。レスポンスが他オリジンの
// ページに取り込まれるのを防ぐため、CORPはsame-originとする。
func NewSecurityHeadersMiddleware() func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			h := w.Header()
			h.Set("X-Content-Type-Options", "nosniff")
			h.Set("X-Frame-Options", "DENY")
			h.Set("Content-Security-Policy", "default-src 'none'; frame-ancestors 'none'")
			h.Set("Cross-Origin-Resource-Policy", "same-origin")
			h.Set("Referrer-Policy", "strict-origin-when-cross-origin")
			h.Set("Permissions-Policy", "camera=(), microphone=(), geolocation=()")

			next.ServeHTTP(w, r)
		})
	}
}
