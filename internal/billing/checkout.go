// Package billing はプレミアム購読の購入フローを提供する。
// 決済ゲートウェイはシミュレーションであり、固定遅延が実際の
// ラウンドトリップの代わりを務める。成功時にセッションストアの
// 資格フラグと永続資格記録の両方を更新する。
package billing

import (
	"context"
	"errors"
	"log/slog"
	"math/rand"
	"time"

	"github.com/gdhispano/hub/internal/model"
	"github.com/gdhispano/hub/internal/session"
)

// defaultGatewayDelay は決済ゲートウェイ往復のシミュレーション遅延。
const defaultGatewayDelay = 2500 * time.Millisecond

// ErrDeclined はゲートウェイによる決済拒否を表す。
var ErrDeclined = errors.New("billing: payment declined")

// ErrTimeout はゲートウェイ応答のタイムアウトを表す。
var ErrTimeout = errors.New("billing: gateway timeout")

// Gateway は決済ゲートウェイのインターフェース。
type Gateway interface {
	// Charge は決済を実行する。成功時はnil、拒否時はErrDeclined、
	// 時間切れ時はErrTimeoutを返す。
	Charge(ctx context.Context) error
}

// SimulatedGateway は固定遅延で成功を返す決済ゲートウェイのシミュレーション。
// DeclineRateを設定すると確率的に拒否を返す（実ゲートウェイの失敗経路の検証用）。
type SimulatedGateway struct {
	Delay       time.Duration // ゼロ値の場合は2.5秒
	DeclineRate float64       // 0.0-1.0。ゼロ値は常に成功
}

// Charge は遅延後に決済結果を返す。ctxの期限切れはErrTimeoutになる。
func (g *SimulatedGateway) Charge(ctx context.Context) error {
	delay := g.Delay
	if delay <= 0 {
		delay = defaultGatewayDelay
	}

	timer := time.NewTimer(delay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ErrTimeout
	case <-timer.C:
	}

	if g.DeclineRate > 0 && rand.Float64() < g.DeclineRate {
		return ErrDeclined
	}
	return nil
}

// EntitlementWriter はプレミアム資格の永続記録への書き込みインターフェース。
// repository.EntitlementRepositoryの部分集合として定義する。
type EntitlementWriter interface {
	SetPremium(ctx context.Context, providerUID string) error
}

// Recorder は購入メトリクスの記録インターフェース。
type Recorder interface {
	RecordPurchase(result string)
}

type nopRecorder struct{}

func (nopRecorder) RecordPurchase(string) {}

// Checkout は購読購入フロー。
type Checkout struct {
	store   *session.Store
	gateway Gateway
	ent     EntitlementWriter // nil可（永続化なし）
	metrics Recorder
}

// NewCheckout はCheckoutを生成する。entとmetricsはnil可。
func NewCheckout(store *session.Store, gateway Gateway, ent EntitlementWriter, metrics Recorder) *Checkout {
	if metrics == nil {
		metrics = nopRecorder{}
	}
	return &Checkout{store: store, gateway: gateway, ent: ent, metrics: metrics}
}

// Purchase は決済を実行し、成功時にセッションのプレミアム資格を付与する。
// Identity不在の場合は決済を試みず、呼び出し側が認証フローへ誘導するための
// NOT_AUTHENTICATEDエラーを返す。
func (c *Checkout) Purchase(ctx context.Context) error {
	ident := c.store.Current()
	if ident == nil {
		return model.NewNotAuthenticatedError()
	}

	if err := c.gateway.Charge(ctx); err != nil {
		switch {
		case errors.Is(err, ErrDeclined):
			c.metrics.RecordPurchase("declined")
			return model.NewPaymentDeclinedError()
		case errors.Is(err, ErrTimeout):
			c.metrics.RecordPurchase("timeout")
			return model.NewPaymentTimeoutError()
		default:
			c.metrics.RecordPurchase("error")
			return model.NewPaymentDeclinedError()
		}
	}

	// 決済とUpgradeの間にサインアウトが挟まる可能性に備えて再確認する。
	if err := c.store.Upgrade(); err != nil {
		c.metrics.RecordPurchase("signed_out")
		return model.NewNotAuthenticatedError()
	}

	if c.ent != nil {
		if err := c.ent.SetPremium(ctx, ident.ProviderUID); err != nil {
			// セッション内の資格は付与済み。永続化失敗は診断ログのみ。
			slog.Error("failed to persist entitlement",
				slog.String("provider_uid", ident.ProviderUID),
				slog.String("error", err.Error()),
			)
		}
	}

	c.metrics.RecordPurchase("success")
	slog.Info("premium entitlement granted",
		slog.String("provider_uid", ident.ProviderUID),
	)
	return nil
}
