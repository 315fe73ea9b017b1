// Package middleware はHTTPミドルウェアを提供する。
package middleware

import (
	"context"
	"fmt"
	"net/http"

	"github.com/google/uuid"
)

const sessionCookieName = "gdh_session"

// contextKey はコンテキストに値を格納するための型安全なキー。
type contextKey string

// sessionIDContextKey はリクエストコンテキストにブラウザセッションIDを格納するためのキー。
var sessionIDContextKey = contextKey("session_id")

// SessionCookieConfig はブラウザセッションCookieの設定。
type SessionCookieConfig struct {
	Secure bool
	Domain string
	MaxAge int // 秒
}

// NewBrowserSessionMiddleware はブラウザセッションIDを管理するミドルウェアを返す。
// HTTP Only CookieからセッションIDを読み取り、存在しない場合は新規発行する。
// 匿名アクセスも許可されるため、このミドルウェアは401を返さない。
// セッションIDはリクエストコンテキストに注入される。
func NewBrowserSessionMiddleware(config SessionCookieConfig) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			var sid string

			cookie, err := r.Cookie(sessionCookieName)
			if err == nil && cookie.Value != "" {
				sid = cookie.Value
			} else {
				sid = uuid.New().String()
				http.SetCookie(w, &http.Cookie{
					Name:     sessionCookieName,
					Value:    sid,
					Path:     "/",
					Domain:   config.Domain,
					MaxAge:   config.MaxAge,
					HttpOnly: true,
					Secure:   config.Secure,
					SameSite: http.SameSiteLaxMode,
				})
			}

			ctx := context.WithValue(r.Context(), sessionIDContextKey, sid)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// SessionIDFromContext はリクエストコンテキストからブラウザセッションIDを取得する。
// セッションミドルウェアを通過したリクエストでのみ有効。
func SessionIDFromContext(ctx context.Context) (string, error) {
	sid, ok := ctx.Value(sessionIDContextKey).(string)
	if !ok || sid == "" {
		return "", fmt.Errorf("session ID not found in context")
	}
	return sid, nil
}

// ContextWithSessionID はコンテキストにセッションIDを注入する。
// テストやミドルウェア以外のコンテキスト生成で使用する。
func ContextWithSessionID(ctx context.Context, sid string) context.Context {
	return context.WithValue(ctx, sessionIDContextKey, sid)
}
