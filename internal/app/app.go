package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"golang.org/x/time/rate"

	"github.com/gdhispano/hub/internal/assistant"
	"github.com/gdhispano/hub/internal/billing"
	"github.com/gdhispano/hub/internal/catalog"
	"github.com/gdhispano/hub/internal/config"
	"github.com/gdhispano/hub/internal/database"
	"github.com/gdhispano/hub/internal/deeplink"
	"github.com/gdhispano/hub/internal/genai"
	"github.com/gdhispano/hub/internal/handler"
	"github.com/gdhispano/hub/internal/idp"
	"github.com/gdhispano/hub/internal/imagegen"
	"github.com/gdhispano/hub/internal/logger"
	"github.com/gdhispano/hub/internal/metrics"
	"github.com/gdhispano/hub/internal/middleware"
	"github.com/gdhispano/hub/internal/repository"
	"github.com/gdhispano/hub/internal/security"
)

// Init はアプリケーションの初期化を行う。
// 環境変数からConfigを読み込み、JSON構造化ログをセットアップする。
// writerが指定された場合はログ出力先としてそのwriterを使用する。
func Init(w io.Writer) (*config.Config, error) {
	// 1. ログの初期化（設定読み込み前にログを使えるようにする）
	logger.SetupDefault(w, slog.LevelInfo)

	// 2. 環境変数から設定を読み込む
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	return cfg, nil
}

// Run はアプリケーションのメインエントリーポイント。
// コマンドライン引数からサブコマンドを解析し、対応するモードで起動する。
// argsにはos.Args[1:]を渡す。
func Run(w io.Writer, args []string) error {
	cmd := ParseCommand(args)

	// healthcheck は軽量サブコマンドのため、フル初期化をスキップする
	if cmd == CommandHealthcheck {
		port := os.Getenv("SERVER_PORT")
		if port == "" {
			port = "8080"
		}
		return runHealthcheck(port)
	}

	cfg, err := Init(w)
	if err != nil {
		return fmt.Errorf("initialization failed: %w", err)
	}

	slog.Info("starting application",
		slog.String("command", string(cmd)),
		slog.String("port", cfg.ServerPort),
		slog.String("base_url", cfg.BaseURL),
	)

	switch cmd {
	case CommandMigrate:
		return runMigrate(cfg)
	default:
		return runServe(cfg)
	}
}

// runServe はAPIサーバーモードで起動する。
// DB接続を開き、全依存関係をワイヤリングし、HTTPサーバーを起動する。
// SIGINTまたはSIGTERMシグナルを受信するとグレースフルシャットダウンを行う。
func runServe(cfg *config.Config) error {
	// 1. DB接続（プレミアム資格の永続記録用）
	db, err := database.Open(cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	slog.Info("database connection established")

	entitlementRepo := repository.NewPostgresEntitlementRepo(db)

	// 2. メトリクスの初期化
	promRegistry := prometheus.NewRegistry()
	collector := metrics.NewCollector(promRegistry)

	// 3. セキュリティサービスの初期化
	ssrfGuard := security.NewSSRFGuard()
	sanitizer := security.NewContentSanitizer()

	// 4. 外部APIクライアントの初期化
	// 外部API呼び出しは全てSSRF防止付きクライアントを通す
	idpProvider := idp.NewHTTPProvider(idp.HTTPProviderConfig{
		APIKey:  cfg.IdPAPIKey,
		BaseURL: cfg.IdPBaseURL,
	}, ssrfGuard.NewSafeClient(cfg.IdPTimeout))

	aiClient := genai.NewClient(
		ssrfGuard.NewSafeClient(cfg.AITimeout),
		slog.Default(),
		genai.Config{APIKey: cfg.AIAPIKey, BaseURL: cfg.AIBaseURL},
	)

	// 5. ドメインサービスの初期化
	catalogService := catalog.NewService(sanitizer)

	assistantService := assistant.NewService(aiClient, cfg.AIChatModel, catalogService, collector)
	defer assistantService.Stop()

	imageGenerator := imagegen.NewGenerator(aiClient, cfg.AIChatModel, cfg.AIImageModel, collector)

	deeplinkResolver := deeplink.NewResolver(catalogService)

	// 6. ブラウザセッションレジストリの構築
	registry := handler.NewSessionRegistry(handler.RegistryDeps{
		Provider:     idpProvider,
		Entitlements: entitlementRepo,
		Gateway: &billing.SimulatedGateway{
			Delay:       cfg.PaymentDelay,
			DeclineRate: cfg.PaymentDeclineRate,
		},
		Metrics: collector,
	})
	defer registry.Stop()

	// 7. ルーターの構築
	// configのレート制限はreq/min単位なのでreq/secに変換する
	rateLimiterCfg := middleware.DefaultRateLimiterConfig()
	if cfg.RateLimitGeneral > 0 {
		rateLimiterCfg.GeneralRate = rate.Limit(float64(cfg.RateLimitGeneral) / 60.0)
		rateLimiterCfg.GeneralBurst = cfg.RateLimitGeneral
	}
	if cfg.RateLimitAuth > 0 {
		rateLimiterCfg.AuthRate = rate.Limit(float64(cfg.RateLimitAuth) / 60.0)
		rateLimiterCfg.AuthBurst = cfg.RateLimitAuth
	}
	rateLimiter := middleware.NewRateLimiter(rateLimiterCfg)
	defer rateLimiter.Stop()

	deps := &handler.RouterDeps{
		Registry: registry,
		SessionCookie: middleware.SessionCookieConfig{
			Secure: cfg.CookieSecure,
			Domain: cfg.CookieDomain,
			MaxAge: cfg.SessionMaxAge,
		},
		CSRF: middleware.CSRFConfig{
			CookieSecure: cfg.CookieSecure,
			CookieDomain: cfg.CookieDomain,
		},
		CORSAllowedOrigin: cfg.CORSAllowedOrigin,
		RateLimiter:       rateLimiter,

		Provider: idpProvider,

		Catalog:   catalogService,
		Assistant: assistantService,
		Images:    imageGenerator,
		Deeplink:  deeplinkResolver,

		Logger:  slog.Default(),
		Denials: collector,
		Metrics: metrics.Handler(promRegistry),
		DB:      db,
	}

	router := handler.NewRouter(deps)

	// 8. HTTPサーバーの起動
	server := &http.Server{
		Addr:         ":" + cfg.ServerPort,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// グレースフルシャットダウンのためのシグナルハンドリング
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		slog.Info("API server starting",
			slog.String("addr", server.Addr),
		)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server listen error", slog.String("error", err.Error()))
		}
	}()

	<-stop
	slog.Info("shutting down API server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	slog.Info("API server stopped gracefully")
	return nil
}

// runMigrate はデータベースマイグレーションを実行する。
// すべての未適用マイグレーションを順番に適用する。
func runMigrate(cfg *config.Config) error {
	slog.Info("running database migrations",
		slog.String("database_url", maskDatabaseURL(cfg.DatabaseURL)),
	)

	if err := database.RunMigrations(cfg.DatabaseURL); err != nil {
		return fmt.Errorf("migration failed: %w", err)
	}

	slog.Info("database migrations completed successfully")
	return nil
}

// runHealthcheck はヘルスチェックを実行する。
// distroless環境でのDockerヘルスチェック用サブコマンド。
// /healthz エンドポイントにHTTPリクエストを送り、結果を返す。
func runHealthcheck(port string) error {
	url := fmt.Sprintf("http://localhost:%s/healthz", port)
	client := &http.Client{Timeout: 5 * time.Second}

	resp, err := client.Get(url)
	if err != nil {
		return fmt.Errorf("health check failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("health check returned status %d", resp.StatusCode)
	}

	return nil
}

// maskDatabaseURL はデータベースURLの認証情報をマスクする。
func maskDatabaseURL(url string) string {
	if len(url) > 20 {
		return url[:12] + "***@..."
	}
	return "***"
}
