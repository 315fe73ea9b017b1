package handler

import (
	"encoding/json"
	"net/http"
	"net/url"
	"testing"

	"github.com/gdhispano/hub/internal/deeplink"
	"github.com/gdhispano/hub/internal/model"
)

// mockDeeplinkResolver はDeeplinkResolverInterfaceのテスト用モック。
type mockDeeplinkResolver struct {
	resolveFunc func(fragment string, ident *model.Identity) (*deeplink.Resolution, error)
}

func (m *mockDeeplinkResolver) Resolve(fragment string, ident *model.Identity) (*deeplink.Resolution, error) {
	if m.resolveFunc != nil {
		return m.resolveFunc(fragment, ident)
	}
	return nil, model.NewInvalidFragmentError(fragment)
}

// TestDeeplinkHandler_Resolve はフラグメント解決の受け渡しを検証する。
func TestDeeplinkHandler_Resolve(t *testing.T) {
	var gotFragment string
	resolver := &mockDeeplinkResolver{
		resolveFunc: func(fragment string, ident *model.Identity) (*deeplink.Resolution, error) {
			gotFragment = fragment
			return &deeplink.Resolution{
				Kind:          deeplink.KindScam,
				ID:            "s1",
				ClearFragment: true,
				HighlightMS:   2500,
			}, nil
		},
	}
	reg := newTestRegistry(t, &fakeProvider{})
	h := NewDeeplinkHandler(reg, resolver)

	path := "/api/deeplink?fragment=" + url.QueryEscape("#scam-s1")
	w := doHandlerRequest(t, h.Resolve, http.MethodGet, path, "sid-1", nil)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if gotFragment != "#scam-s1" {
		t.Errorf("fragment = %q, want #scam-s1", gotFragment)
	}

	var resp deeplink.Resolution
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to parse response: %v", err)
	}
	if resp.Kind != deeplink.KindScam || resp.ID != "s1" {
		t.Errorf("resolution = %+v", resp)
	}
	if !resp.ClearFragment {
		t.Error("clear_fragment should be true")
	}
	if resp.HighlightMS != 2500 {
		t.Errorf("highlight_ms = %d, want 2500", resp.HighlightMS)
	}
}

// TestDeeplinkHandler_Resolve_Invalid は不正フラグメントが400になることを検証する。
func TestDeeplinkHandler_Resolve_Invalid(t *testing.T) {
	reg := newTestRegistry(t, &fakeProvider{})
	h := NewDeeplinkHandler(reg, &mockDeeplinkResolver{})

	w := doHandlerRequest(t, h.Resolve, http.MethodGet, "/api/deeplink?fragment=bogus", "sid-1", nil)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}

	var errResp apiErrorResponse
	if err := json.Unmarshal(w.Body.Bytes(), &errResp); err != nil {
		t.Fatalf("failed to parse error response: %v", err)
	}
	if errResp.Code != model.ErrCodeInvalidFragment {
		t.Errorf("code = %q, want INVALID_FRAGMENT", errResp.Code)
	}
}
