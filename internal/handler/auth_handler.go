package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/gdhispano/hub/internal/authflow"
	"github.com/gdhispano/hub/internal/idp"
	"github.com/gdhispano/hub/internal/middleware"
	"github.com/gdhispano/hub/internal/model"
)

// SessionResolver はブラウザセッションIDからサーバー側状態を引くインターフェース。
// SessionRegistryの部分集合として定義する。
type SessionResolver interface {
	Session(sid string) *BrowserSession
}

// AuthHandler は認証フローのHTTPハンドラー。
// 状態機械そのものはauthflow.Flowが所有し、ハンドラーは薄い変換層に徹する。
type AuthHandler struct {
	registry SessionResolver
	provider idp.Provider
}

// NewAuthHandler はAuthHandlerを生成する。
func NewAuthHandler(registry SessionResolver, provider idp.Provider) *AuthHandler {
	return &AuthHandler{
		registry: registry,
		provider: provider,
	}
}

// draftResponse は認証フォームドラフトのAPIレスポンス。
// パスワードは書き込み専用であり、レスポンスには含めない。
type draftResponse struct {
	Email         string `json:"email"`
	Username      string `json:"username"`
	ShowPassword  bool   `json:"show_password"`
	ErrorMsg      string `json:"error,omitempty"`
	SuccessMsg    string `json:"success,omitempty"`
	InFlight      bool   `json:"in_flight"`
	CaptchaPassed bool   `json:"captcha_passed"`
}

// authStateResponse は認証フロー状態のAPIレスポンス。
type authStateResponse struct {
	Open     bool          `json:"open"`
	View     string        `json:"view"`
	Draft    draftResponse `json:"draft"`
	Strength int           `json:"strength"`
}

// identityResponse は現在のプリンシパルのAPIレスポンス。
type identityResponse struct {
	LoggedIn    bool   `json:"logged_in"`
	Email       string `json:"email,omitempty"`
	DisplayName string `json:"display_name,omitempty"`
	Verified    bool   `json:"verified,omitempty"`
	Premium     bool   `json:"premium"`
}

// authViewRequest はビュー切り替えリクエストのボディ。
type authViewRequest struct {
	View string `json:"view"`
}

// authDraftRequest はドラフト更新リクエストのボディ。
type authDraftRequest struct {
	Email        string `json:"email"`
	Password     string `json:"password"`
	Username     string `json:"username"`
	ShowPassword bool   `json:"show_password"`
}

// browserSession はリクエストのブラウザセッション状態を解決する。
// セッションミドルウェアを通過していないリクエストではfalseを返す。
func browserSession(w http.ResponseWriter, r *http.Request, registry SessionResolver) (*BrowserSession, bool) {
	sid, err := middleware.SessionIDFromContext(r.Context())
	if err != nil {
		slog.Error("request reached handler without browser session", slog.String("path", r.URL.Path))
		middleware.WriteInternalServerError(w)
		return nil, false
	}
	return registry.Session(sid), true
}

// writeSnapshot はフロースナップショットをJSONで書き込む。
func writeSnapshot(w http.ResponseWriter, snap authflow.Snapshot) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(authStateResponse{
		Open: snap.Open,
		View: string(snap.View),
		Draft: draftResponse{
			Email:         snap.Draft.Email,
			Username:      snap.Draft.Username,
			ShowPassword:  snap.Draft.ShowPassword,
			ErrorMsg:      snap.Draft.ErrorMsg,
			SuccessMsg:    snap.Draft.SuccessMsg,
			InFlight:      snap.Draft.InFlight,
			CaptchaPassed: snap.Draft.CaptchaPassed,
		},
		Strength: snap.Strength,
	})
}

// Open は認証フローを開く。
// POST /auth/open
func (h *AuthHandler) Open(w http.ResponseWriter, r *http.Request) {
	bs, ok := browserSession(w, r, h.registry)
	if !ok {
		return
	}
	writeSnapshot(w, bs.Flow.Open())
}

// Close は認証フローを閉じ、ドラフトを破棄する。
// POST /auth/close
func (h *AuthHandler) Close(w http.ResponseWriter, r *http.Request) {
	bs, ok := browserSession(w, r, h.registry)
	if !ok {
		return
	}
	bs.Flow.Close()
	w.WriteHeader(http.StatusNoContent)
}

// SwitchView はフローのビューを切り替える。
// POST /auth/view
func (h *AuthHandler) SwitchView(w http.ResponseWriter, r *http.Request) {
	bs, ok := browserSession(w, r, h.registry)
	if !ok {
		return
	}

	var req authViewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeInvalidRequestBody(w)
		return
	}

	view := authflow.View(req.View)
	switch view {
	case authflow.ViewLogin, authflow.ViewRegister, authflow.ViewVerifyEmail, authflow.ViewForgotPassword:
	default:
		writeAPIErrorResponse(w, http.StatusBadRequest, &model.APIError{
			Code:     "INVALID_REQUEST",
			Message:  "Vista de autenticación desconocida.",
			Category: "validation",
			Action:   "Usa una de las vistas válidas.",
		})
		return
	}

	writeSnapshot(w, bs.Flow.SwitchView(view))
}

// UpdateDraft はフォームドラフトを更新する。
// POST /auth/draft
func (h *AuthHandler) UpdateDraft(w http.ResponseWriter, r *http.Request) {
	bs, ok := browserSession(w, r, h.registry)
	if !ok {
		return
	}

	var req authDraftRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeInvalidRequestBody(w)
		return
	}

	writeSnapshot(w, bs.Flow.UpdateDraft(req.Email, req.Password, req.Username, req.ShowPassword))
}

// GrantCaptcha はキャプチャ通過を記録する。
// POST /auth/captcha
func (h *AuthHandler) GrantCaptcha(w http.ResponseWriter, r *http.Request) {
	bs, ok := browserSession(w, r, h.registry)
	if !ok {
		return
	}
	writeSnapshot(w, bs.Flow.GrantCaptcha())
}

// Submit は現在のビューに応じた認証送信を実行する。
// POST /auth/submit
func (h *AuthHandler) Submit(w http.ResponseWriter, r *http.Request) {
	bs, ok := browserSession(w, r, h.registry)
	if !ok {
		return
	}
	writeSnapshot(w, bs.Flow.Submit(r.Context()))
}

// CheckVerification はメール検証の完了を確認する。
// POST /auth/check-verification
func (h *AuthHandler) CheckVerification(w http.ResponseWriter, r *http.Request) {
	bs, ok := browserSession(w, r, h.registry)
	if !ok {
		return
	}
	writeSnapshot(w, bs.Flow.CheckVerification(r.Context()))
}

// ResendVerification は検証メールを再送する。
// POST /auth/resend
func (h *AuthHandler) ResendVerification(w http.ResponseWriter, r *http.Request) {
	bs, ok := browserSession(w, r, h.registry)
	if !ok {
		return
	}
	writeSnapshot(w, bs.Flow.ResendVerification(r.Context()))
}

// State は現在のフロー状態を返す。
// GET /auth/state
func (h *AuthHandler) State(w http.ResponseWriter, r *http.Request) {
	bs, ok := browserSession(w, r, h.registry)
	if !ok {
		return
	}
	writeSnapshot(w, bs.Flow.Snapshot())
}

// Logout は現在のプリンシパルをサインアウトする。
// サインアウトはWatcher経由で全購読者に通知される。
// POST /auth/logout
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	bs, ok := browserSession(w, r, h.registry)
	if !ok {
		return
	}

	if ident := bs.Store.Current(); ident != nil {
		if err := h.provider.SignOut(r.Context(), ident); err != nil {
			// プロバイダー側の失敗でもローカルセッションは破棄する
			slog.Warn("provider sign-out failed", slog.String("error", err.Error()))
		}
	}

	bs.Watcher.Publish(nil)
	w.WriteHeader(http.StatusNoContent)
}

// Me は現在のプリンシパル情報を返す。未認証の場合もlogged_in=falseで200を返す。
// GET /auth/me
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	bs, ok := browserSession(w, r, h.registry)
	if !ok {
		return
	}

	ident := bs.Store.Current()
	resp := identityResponse{}
	if ident != nil {
		resp.LoggedIn = ident.LoggedIn()
		resp.Email = ident.Email
		resp.DisplayName = ident.DisplayName
		resp.Verified = ident.Verified
		resp.Premium = ident.Premium
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
}
