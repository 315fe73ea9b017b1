package handler

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/gdhispano/hub/internal/idp"
	"github.com/gdhispano/hub/internal/middleware"
)

// RouterDeps はNewRouterに必要な依存関係をまとめた構造体。
type RouterDeps struct {
	// ミドルウェア依存
	Registry          *SessionRegistry
	SessionCookie     middleware.SessionCookieConfig
	CSRF              middleware.CSRFConfig
	CORSAllowedOrigin string
	RateLimiter       *middleware.RateLimiter

	// 認証
	Provider idp.Provider

	// サービス
	Catalog   CatalogServiceInterface
	Assistant AssistantServiceInterface
	Images    ImageServiceInterface
	Deeplink  DeeplinkResolverInterface

	// 監視
	Logger  *slog.Logger // リクエストログ。nil可
	Denials DenialRecorder
	Metrics http.Handler // /metrics。nil可
	DB      Pinger       // ヘルスチェック用。nil可
}

// NewRouter は全APIエンドポイントのルーティングとミドルウェアチェーンを構成したchi.Routerを返す。
//
// ミドルウェアスタックの実行順序:
//
//	Recovery → Logging → CORS → SecurityHeaders → BrowserSession → CSRF → RateLimit(General)
//
// ヘルスチェックとメトリクスはチェーンの外に配置する。
func NewRouter(deps *RouterDeps) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.NewRecoveryMiddleware())
	if deps.Logger != nil {
		r.Use(middleware.NewLoggingMiddleware(deps.Logger))
	}
	r.Use(middleware.NewCORSMiddleware(deps.CORSAllowedOrigin))
	r.Use(middleware.NewSecurityHeadersMiddleware())

	authHandler := NewAuthHandler(deps.Registry, deps.Provider)
	catalogHandler := NewCatalogHandler(deps.Registry, deps.Catalog, deps.Denials)
	subHandler := NewSubscriptionHandler(deps.Registry)
	chatHandler := NewChatHandler(deps.Registry, deps.Assistant)
	imageHandler := NewImageHandler(deps.Registry, deps.Images, deps.Denials)
	deeplinkHandler := NewDeeplinkHandler(deps.Registry, deps.Deeplink)
	healthHandler := NewHealthHandler(deps.DB)

	// --- 運用ルート（セッション/レート制限の外） ---
	r.Get("/healthz", healthHandler.Healthz)
	if deps.Metrics != nil {
		r.Method(http.MethodGet, "/metrics", deps.Metrics)
	}
	r.Method(http.MethodGet, "/csrf-token", middleware.NewCSRFTokenHandler(deps.CSRF))

	// --- APIルート ---
	// 匿名アクセスを許可するため、セッションミドルウェアは401を返さず
	// ブラウザセッションIDを発行するだけに留める。
	r.Group(func(r chi.Router) {
		r.Use(middleware.NewBrowserSessionMiddleware(deps.SessionCookie))
		r.Use(middleware.NewCSRFMiddleware(deps.CSRF))
		r.Use(deps.RateLimiter.GeneralMiddleware())

		// 認証フロー
		r.Route("/auth", func(r chi.Router) {
			r.Post("/open", authHandler.Open)
			r.Post("/close", authHandler.Close)
			r.Post("/view", authHandler.SwitchView)
			r.Post("/draft", authHandler.UpdateDraft)
			r.Post("/captcha", authHandler.GrantCaptcha)

			// 認証送信はIdPを呼ぶため専用の厳しいレート制限を重ねる
			r.With(deps.RateLimiter.AuthSubmitMiddleware()).Post("/submit", authHandler.Submit)
			r.With(deps.RateLimiter.AuthSubmitMiddleware()).Post("/check-verification", authHandler.CheckVerification)
			r.With(deps.RateLimiter.AuthSubmitMiddleware()).Post("/resend", authHandler.ResendVerification)

			r.Get("/state", authHandler.State)
			r.Post("/logout", authHandler.Logout)
			r.Get("/me", authHandler.Me)
		})

		// カタログ
		r.Route("/api/methods", func(r chi.Router) {
			r.Get("/", catalogHandler.ListMethods)
			r.Get("/{id}", catalogHandler.GetMethod)
		})
		r.Route("/api/scams", func(r chi.Router) {
			r.Get("/", catalogHandler.ListScams)
			r.Get("/{id}", catalogHandler.GetScam)
		})
		r.Route("/api/blog", func(r chi.Router) {
			r.Get("/", catalogHandler.ListPosts)
			r.Get("/{id}", catalogHandler.GetPost)
		})

		// 購読
		r.Route("/api/subscription", func(r chi.Router) {
			r.Get("/entry", subHandler.Entry)
			r.Post("/purchase", subHandler.Purchase)
			r.Get("/status", subHandler.Status)
		})

		// AIアシスタント
		r.Route("/api/chat", func(r chi.Router) {
			r.Post("/session", chatHandler.StartSession)
			r.Post("/message", chatHandler.SendMessage)
			r.Post("/analyze-site", chatHandler.AnalyzeSite)
		})

		// 画像スタジオ
		r.Route("/api/images", func(r chi.Router) {
			r.Get("/styles", imageHandler.ListStyles)
			r.Post("/generate", imageHandler.Generate)
		})

		// ディープリンク解決
		r.Get("/api/deeplink", deeplinkHandler.Resolve)
	})

	return r
}
