package handler

import (
	"encoding/json"
	"net/http"

	"github.com/gdhispano/hub/internal/deeplink"
	"github.com/gdhispano/hub/internal/model"
)

// DeeplinkResolverInterface はディープリンクハンドラーが必要とするインターフェース。
type DeeplinkResolverInterface interface {
	// Resolve はURLフラグメントをナビゲーション先に解決する。
	Resolve(fragment string, ident *model.Identity) (*deeplink.Resolution, error)
}

// DeeplinkHandler はURLフラグメントのディープリンク解決のHTTPハンドラー。
type DeeplinkHandler struct {
	registry SessionResolver
	resolver DeeplinkResolverInterface
}

// NewDeeplinkHandler はDeeplinkHandlerを生成する。
func NewDeeplinkHandler(registry SessionResolver, resolver DeeplinkResolverInterface) *DeeplinkHandler {
	return &DeeplinkHandler{
		registry: registry,
		resolver: resolver,
	}
}

// Resolve はフラグメントをナビゲーション先に解決する。
// GET /api/deeplink?fragment=
func (h *DeeplinkHandler) Resolve(w http.ResponseWriter, r *http.Request) {
	bs, ok := browserSession(w, r, h.registry)
	if !ok {
		return
	}

	fragment := r.URL.Query().Get("fragment")

	resolution, err := h.resolver.Resolve(fragment, bs.Store.Current())
	if err != nil {
		handleServiceError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resolution)
}
