package middleware

import "net/http"

// corsAllowedMethods はAPIが受け付けるメソッド。読み取りはGET、
// 状態変更はすべてPOSTで表現するため、PUT/PATCH/DELETEは許可しない。
const corsAllowedMethods = "GET, POST, OPTIONS"

// corsAllowedHeaders はプリフライトで許可するリクエストヘッダー。
// 状態変更リクエストはCSRFミドルウェアがX-CSRF-Tokenを要求するため、
// ここで許可しないとクロスオリジンのフロントエンドからのPOSTが
// すべてプリフライトで落ちる。
const corsAllowedHeaders = "Content-Type, X-CSRF-Token"

// NewCORSMiddleware は指定されたオリジンに対するCORSミドルウェアを返す。
// セッションCookieとCSRF Cookieをクロスオリジンで送るためcredentialsを
// 許可する。credentials送信と共存するため、ワイルドカード(*)は使用しない。
// OPTIONSプリフライトリクエストには204で応答する。
func NewCORSMiddleware(allowedOrigin string) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Access-Control-Allow-Origin", allowedOrigin)
			w.Header().Set("Access-Control-Allow-Methods", corsAllowedMethods)
			w.Header().Set("Access-Control-Allow-Headers", corsAllowedHeaders)
			w.Header().Set("Access-Control-Allow-Credentials", "true")
			w.Header().Set("Access-Control-Max-Age", "86400")
			w.Header().Add("Vary", "Origin")

			// OPTIONSプリフライトリクエストには204で応答
			if r.Method == http.MethodOptions {
				w.WriteHeader(http.StatusNoContent)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
