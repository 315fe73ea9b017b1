package handler

import (
	"encoding/json"
	"net/http"

	"github.com/gdhispano/hub/internal/gate"
)

// SubscriptionHandler はプレミアム購読のHTTPハンドラー。
type SubscriptionHandler struct {
	registry SessionResolver
}

// NewSubscriptionHandler はSubscriptionHandlerを生成する。
func NewSubscriptionHandler(registry SessionResolver) *SubscriptionHandler {
	return &SubscriptionHandler{registry: registry}
}

// subscriptionStatusResponse は購読状態のAPIレスポンス。
type subscriptionStatusResponse struct {
	Premium bool `json:"premium"`
}

// Purchase はプレミアム購読の購入を実行する。
// 決済ゲートウェイの往復後にセッションのプレミアム資格を付与し、
// 永続記録にも書き込む。未認証の場合は購入せず認証を要求する。
// POST /api/subscription/purchase
func (h *SubscriptionHandler) Purchase(w http.ResponseWriter, r *http.Request) {
	bs, ok := browserSession(w, r, h.registry)
	if !ok {
		return
	}

	if err := bs.Checkout.Purchase(r.Context()); err != nil {
		handleServiceError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(subscriptionStatusResponse{Premium: true})
}

// subscriptionEntryResponse は「購読を開く」入口の分岐結果のAPIレスポンス。
type subscriptionEntryResponse struct {
	Open   gate.Outcome `json:"open"`
	Locked bool         `json:"locked"`
}

// Entry は「購読を開く」操作の分岐先を返す。未認証ならまず認証フロー
// （OPEN_AUTH）へ、認証済み非プレミアムなら課金フロー
// （OPEN_SUBSCRIPTION）へ誘導する。すでにプレミアムの場合はlockedが
// falseになり、クライアントは入口自体を表示しない。
// GET /api/subscription/entry
func (h *SubscriptionHandler) Entry(w http.ResponseWriter, r *http.Request) {
	bs, ok := browserSession(w, r, h.registry)
	if !ok {
		return
	}

	g := gate.NewGate(bs.Store)
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(subscriptionEntryResponse{
		Open:   g.OpenSubscription(r.Context()),
		Locked: g.Locked(r.Context(), true),
	})
}

// Status は現在のセッションのプレミアム資格を返す。
// GET /api/subscription/status
func (h *SubscriptionHandler) Status(w http.ResponseWriter, r *http.Request) {
	bs, ok := browserSession(w, r, h.registry)
	if !ok {
		return
	}

	premium := false
	if ident := bs.Store.Current(); ident != nil {
		premium = ident.Premium
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(subscriptionStatusResponse{Premium: premium})
}
