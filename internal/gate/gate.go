// Package gate はプレミアムコンテンツの資格判定を提供する。
// メソッド詳細、ブログ記事、画像生成の3つの独立したサーフェスが
// 同一の述語を通過する。ディープリンクも例外ではない。
package gate

import (
	"context"

	"github.com/gdhispano/hub/internal/model"
)

// IsLocked はコンテンツをロック表示すべきかを返す純粋述語。
// locked = contentIsPremium AND NOT (identityが存在 AND identity.Premium)。
// 非プレミアムコンテンツはIdentityの有無に関わらず常にロックされない。
func IsLocked(contentIsPremium bool, ident *model.Identity) bool {
	if !contentIsPremium {
		return false
	}
	return ident == nil || !ident.Premium
}

// Outcome は「購読を開く」操作の分岐結果を表す。
type Outcome string

const (
	// OutcomeOpenAuth はIdentity不在のため認証フロー（LOGIN）を開くべきことを示す。
	OutcomeOpenAuth Outcome = "OPEN_AUTH"
	// OutcomeOpenSubscription は非プレミアムIdentityのため課金フローを開くべきことを示す。
	OutcomeOpenSubscription Outcome = "OPEN_SUBSCRIPTION"
)

// IdentityReader は現在のIdentityの読み取りインターフェース。
// session.Storeの部分集合として定義する。
type IdentityReader interface {
	Current() *model.Identity
}

// Gate はセッションストアを参照する資格ゲート。
type Gate struct {
	store IdentityReader
}

// NewGate はGateを生成する。
func NewGate(store IdentityReader) *Gate {
	return &Gate{store: store}
}

// Locked は現在のIdentityに対してコンテンツがロックされるかを返す。
// 読み取りと行動の間にサスペンションがあり得るため、ゲートされた行動の
// 直前に毎回呼び出すこと（描画時の判定だけに頼らない）。
func (g *Gate) Locked(ctx context.Context, contentIsPremium bool) bool {
	return IsLocked(contentIsPremium, g.store.Current())
}

// OpenSubscription は「購読を開く」操作の分岐を判定する。
// Identity不在なら課金フローではなくまず認証フロー（LOGIN）へ誘導する。
func (g *Gate) OpenSubscription(ctx context.Context) Outcome {
	if g.store.Current() == nil {
		return OutcomeOpenAuth
	}
	return OutcomeOpenSubscription
}
