// Package metrics はPrometheusメトリクスの収集と公開を提供する。
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// MetricsCollector はメトリクス収集のインターフェース。
// 認証フロー、課金、AI機能の各サービスから利用する。
type MetricsCollector interface {
	RecordLoginSuccess()
	RecordLoginFailure(code string)
	RecordRegistration()
	RecordVerificationPass()
	RecordPurchase(result string)
	RecordChatMessage(duration time.Duration, success bool)
	RecordImageGeneration(duration time.Duration, success bool)
	RecordGateDenial(surface string)
}

// Collector はPrometheusメトリクスを収集する実装。
type Collector struct {
	loginSuccess     prometheus.Counter
	loginFail        *prometheus.CounterVec
	registrations    prometheus.Counter
	verifications    prometheus.Counter
	purchases        *prometheus.CounterVec
	chatMessages     *prometheus.CounterVec
	chatLatency      prometheus.Histogram
	imageGenerations *prometheus.CounterVec
	imageLatency     prometheus.Histogram
	gateDenials      *prometheus.CounterVec
}

// NewCollector は新しいCollectorを生成し、指定されたレジストリにメトリクスを登録する。
func NewCollector(reg prometheus.Registerer) *Collector {
	c := &Collector{
		loginSuccess: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "gdh_login_success_total",
			Help: "ログイン成功の合計数",
		}),
		loginFail: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "gdh_login_fail_total",
			Help: "エラーコード別のログイン失敗数",
		}, []string{"code"}),
		registrations: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "gdh_registrations_total",
			Help: "新規登録の合計数",
		}),
		verifications: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "gdh_verification_pass_total",
			Help: "メール確認通過の合計数",
		}),
		purchases: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "gdh_purchases_total",
			Help: "結果別のプレミアム購入試行数",
		}, []string{"result"}),
		chatMessages: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "gdh_chat_messages_total",
			Help: "結果別のチャットメッセージ数",
		}, []string{"result"}),
		chatLatency: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "gdh_chat_latency_seconds",
			Help:    "チャット応答のレイテンシ（秒）",
			Buckets: prometheus.DefBuckets,
		}),
		imageGenerations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "gdh_image_generations_total",
			Help: "結果別の画像生成数",
		}, []string{"result"}),
		imageLatency: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "gdh_image_latency_seconds",
			Help:    "画像生成のレイテンシ（秒）",
			Buckets: []float64{1, 2.5, 5, 10, 20, 30, 60},
		}),
		gateDenials: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "gdh_gate_denials_total",
			Help: "サーフェス別のプレミアムゲート拒否数",
		}, []string{"surface"}),
	}

	reg.MustRegister(
		c.loginSuccess,
		c.loginFail,
		c.registrations,
		c.verifications,
		c.purchases,
		c.chatMessages,
		c.chatLatency,
		c.imageGenerations,
		c.imageLatency,
		c.gateDenials,
	)

	return c
}

// RecordLoginSuccess はログイン成功を記録する。
func (c *Collector) RecordLoginSuccess() {
	c.loginSuccess.Inc()
}

// RecordLoginFailure はログイン失敗をエラーコードとともに記録する。
func (c *Collector) RecordLoginFailure(code string) {
	c.loginFail.WithLabelValues(code).Inc()
}

// RecordRegistration は新規登録を記録する。
func (c *Collector) RecordRegistration() {
	c.registrations.Inc()
}

// RecordVerificationPass はメール確認通過を記録する。
func (c *Collector) RecordVerificationPass() {
	c.verifications.Inc()
}

// RecordPurchase はプレミアム購入試行を結果とともに記録する。
// resultは success / declined / timeout / signed_out / error のいずれか。
func (c *Collector) RecordPurchase(result string) {
	c.purchases.WithLabelValues(result).Inc()
}

// RecordChatMessage はチャットメッセージの処理結果とレイテンシを記録する。
func (c *Collector) RecordChatMessage(duration time.Duration, success bool) {
	c.chatMessages.WithLabelValues(resultLabel(success)).Inc()
	c.chatLatency.Observe(duration.Seconds())
}

// RecordImageGeneration は画像生成の処理結果とレイテンシを記録する。
func (c *Collector) RecordImageGeneration(duration time.Duration, success bool) {
	c.imageGenerations.WithLabelValues(resultLabel(success)).Inc()
	c.imageLatency.Observe(duration.Seconds())
}

// RecordGateDenial はプレミアムゲートによるアクセス拒否を記録する。
func (c *Collector) RecordGateDenial(surface string) {
	c.gateDenials.WithLabelValues(surface).Inc()
}

func resultLabel(success bool) string {
	if success {
		return "success"
	}
	return "failure"
}

// Handler はPrometheusスクレイプ用のHTTPハンドラーを返す。
// ルーティングは呼び出し側（/metrics）が行う。
func Handler(gatherer prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})
}
