package idp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/gdhispano/hub/internal/model"
)

// providerStub はIdentity Toolkit互換エンドポイントのテストサーバー。
type providerStub struct {
	mu    sync.Mutex
	calls []string // 受信したエンドポイント名

	signInStatus int
	signInBody   string
	verified     bool
}

func (s *providerStub) handler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		endpoint := r.URL.Path[strings.LastIndex(r.URL.Path, "/")+1:]
		s.mu.Lock()
		s.calls = append(s.calls, endpoint)
		s.mu.Unlock()

		switch endpoint {
		case "accounts:signInWithPassword":
			if s.signInStatus != 0 {
				w.WriteHeader(s.signInStatus)
				fmt.Fprint(w, s.signInBody)
				return
			}
			json.NewEncoder(w).Encode(map[string]any{
				"localId":     "uid-1",
				"email":       "a@b.com",
				"displayName": "Usuario",
				"idToken":     "token-1",
			})
		case "accounts:signUp":
			json.NewEncoder(w).Encode(map[string]any{
				"localId": "uid-2",
				"email":   "new@b.com",
				"idToken": "token-2",
			})
		case "accounts:lookup":
			json.NewEncoder(w).Encode(map[string]any{
				"users": []map[string]any{{"emailVerified": s.verified}},
			})
		case "accounts:update", "accounts:sendOobCode":
			fmt.Fprint(w, "{}")
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	})
}

func (s *providerStub) endpointCalls() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.calls...)
}

func newTestProvider(t *testing.T, stub *providerStub) *HTTPProvider {
	t.Helper()
	srv := httptest.NewServer(stub.handler())
	t.Cleanup(srv.Close)
	return NewHTTPProvider(HTTPProviderConfig{APIKey: "test-key", BaseURL: srv.URL}, srv.Client())
}

// TestHTTPProvider_SignIn はサインイン成功とlookupによる検証状態の反映を検証する。
func TestHTTPProvider_SignIn(t *testing.T) {
	stub := &providerStub{verified: true}
	p := newTestProvider(t, stub)

	ident, err := p.SignIn(context.Background(), "a@b.com", "pw")
	if err != nil {
		t.Fatalf("SignIn() error = %v", err)
	}

	if ident.ProviderUID != "uid-1" || ident.Token != "token-1" {
		t.Errorf("identity = %+v", ident)
	}
	if !ident.Verified {
		t.Error("expected verified identity from lookup")
	}

	calls := stub.endpointCalls()
	if len(calls) != 2 || calls[0] != "accounts:signInWithPassword" || calls[1] != "accounts:lookup" {
		t.Errorf("endpoint calls = %v", calls)
	}
}

// TestHTTPProvider_SignInUnverified はlookupの未検証状態がIdentityに反映されることを検証する。
func TestHTTPProvider_SignInUnverified(t *testing.T) {
	p := newTestProvider(t, &providerStub{verified: false})

	ident, err := p.SignIn(context.Background(), "a@b.com", "pw")
	if err != nil {
		t.Fatalf("SignIn() error = %v", err)
	}
	if ident.Verified {
		t.Error("expected unverified identity")
	}
}

// TestHTTPProvider_SignInErrors はプロバイダーエラーの正規化を検証する。
func TestHTTPProvider_SignInErrors(t *testing.T) {
	tests := []struct {
		name     string
		message  string
		wantCode Code
	}{
		{"パスワード不一致", "INVALID_PASSWORD", CodeWrongPassword},
		{"資格情報不一致", "INVALID_LOGIN_CREDENTIALS", CodeInvalidCredential},
		{"未登録", "EMAIL_NOT_FOUND", CodeUserNotFound},
		{"レート制限", "TOO_MANY_ATTEMPTS_TRY_LATER", CodeTooManyRequests},
		{"認証方式無効", "OPERATION_NOT_ALLOWED", CodeOperationNotAllowed},
		{"未知コード", "SOMETHING_NEW", CodeUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stub := &providerStub{
				signInStatus: http.StatusBadRequest,
				signInBody:   fmt.Sprintf(`{"error":{"message":%q}}`, tt.message),
			}
			p := newTestProvider(t, stub)

			_, err := p.SignIn(context.Background(), "a@b.com", "pw")

			var provErr *Error
			if !errors.As(err, &provErr) {
				t.Fatalf("error = %v, want *idp.Error", err)
			}
			if provErr.Code != tt.wantCode {
				t.Errorf("code = %q, want %q", provErr.Code, tt.wantCode)
			}
			if tt.wantCode == CodeUnknown && provErr.Raw != tt.message {
				t.Errorf("raw = %q, want %q", provErr.Raw, tt.message)
			}
		})
	}
}

// TestHTTPProvider_Register は登録が表示名設定と検証メール送信を伴うことを検証する。
func TestHTTPProvider_Register(t *testing.T) {
	stub := &providerStub{}
	p := newTestProvider(t, stub)

	ident, err := p.Register(context.Background(), "new@b.com", "Abcdefg1", "Nuevo")
	if err != nil {
		t.Fatalf("Register() error = %v", err)
	}

	if ident.Verified {
		t.Error("freshly registered identity must be unverified")
	}
	if ident.DisplayName != "Nuevo" {
		t.Errorf("display name = %q", ident.DisplayName)
	}

	calls := stub.endpointCalls()
	want := []string{"accounts:signUp", "accounts:update", "accounts:sendOobCode"}
	if len(calls) != len(want) {
		t.Fatalf("endpoint calls = %v, want %v", calls, want)
	}
	for i := range want {
		if calls[i] != want[i] {
			t.Errorf("call %d = %q, want %q", i, calls[i], want[i])
		}
	}
}

// TestHTTPProvider_RegisterWithoutDisplayName は表示名なし登録がupdateを省くことを検証する。
func TestHTTPProvider_RegisterWithoutDisplayName(t *testing.T) {
	stub := &providerStub{}
	p := newTestProvider(t, stub)

	if _, err := p.Register(context.Background(), "new@b.com", "Abcdefg1", ""); err != nil {
		t.Fatalf("Register() error = %v", err)
	}

	for _, c := range stub.endpointCalls() {
		if c == "accounts:update" {
			t.Error("accounts:update should be skipped without display name")
		}
	}
}

// TestHTTPProvider_ReloadVerified は検証状態の再取得を検証する。
func TestHTTPProvider_ReloadVerified(t *testing.T) {
	stub := &providerStub{verified: true}
	p := newTestProvider(t, stub)

	verified, err := p.ReloadVerified(context.Background(), &model.Identity{ProviderUID: "uid-1", Token: "token-1"})
	if err != nil {
		t.Fatalf("ReloadVerified() error = %v", err)
	}
	if !verified {
		t.Error("expected verified = true")
	}
}

// TestHTTPProvider_NilIdentity はnilプリンシパルでの呼び出しがエラーになることを検証する。
func TestHTTPProvider_NilIdentity(t *testing.T) {
	p := newTestProvider(t, &providerStub{})

	if _, err := p.ReloadVerified(context.Background(), nil); err == nil {
		t.Error("expected error for nil identity")
	}
	if err := p.ResendVerification(context.Background(), nil); err == nil {
		t.Error("expected error for nil identity")
	}
}

// TestHTTPProvider_SendPasswordReset はリセットメール送信のエンドポイント呼び出しを検証する。
func TestHTTPProvider_SendPasswordReset(t *testing.T) {
	stub := &providerStub{}
	p := newTestProvider(t, stub)

	if err := p.SendPasswordReset(context.Background(), "a@b.com"); err != nil {
		t.Fatalf("SendPasswordReset() error = %v", err)
	}

	calls := stub.endpointCalls()
	if len(calls) != 1 || calls[0] != "accounts:sendOobCode" {
		t.Errorf("endpoint calls = %v", calls)
	}
}
