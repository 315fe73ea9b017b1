package idp

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/gdhispano/hub/internal/model"
)

const defaultBaseURL = "https://identitytoolkit.googleapis.com/v1"

// HTTPProviderConfig はHTTPProviderの設定。
type HTTPProviderConfig struct {
	APIKey string

	// テスト用にオーバーライド可能なURL
	BaseURL string
}

// HTTPProvider はREST APIベースのIDプロバイダー実装。
// Identity Toolkit互換のエンドポイント群を呼び出す。
type HTTPProvider struct {
	config     HTTPProviderConfig
	httpClient *http.Client
}

// NewHTTPProvider はHTTPProviderを生成する。
// httpClientがnilの場合はhttp.DefaultClientを使用する。
func NewHTTPProvider(config HTTPProviderConfig, httpClient *http.Client) *HTTPProvider {
	if config.BaseURL == "" {
		config.BaseURL = defaultBaseURL
	}
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &HTTPProvider{config: config, httpClient: httpClient}
}

// providerAccount はプロバイダーが返すアカウント情報。
type providerAccount struct {
	LocalID       string `json:"localId"`
	Email         string `json:"email"`
	DisplayName   string `json:"displayName"`
	IDToken       string `json:"idToken"`
	EmailVerified bool   `json:"emailVerified"`
}

// providerErrorBody はプロバイダーのエラーレスポンス。
type providerErrorBody struct {
	Error struct {
		Message string `json:"message"`
	} `json:"error"`
}

// SignIn はメール/パスワードでサインインする。
// サインイン後にlookupを行い、最新のemailVerified状態を取得する。
func (p *HTTPProvider) SignIn(ctx context.Context, email, password string) (*model.Identity, error) {
	var acct providerAccount
	err := p.post(ctx, "accounts:signInWithPassword", map[string]any{
		"email":             email,
		"password":          password,
		"returnSecureToken": true,
	}, &acct)
	if err != nil {
		return nil, err
	}

	verified, err := p.lookupVerified(ctx, acct.IDToken)
	if err != nil {
		return nil, err
	}

	return &model.Identity{
		ProviderUID: acct.LocalID,
		DisplayName: acct.DisplayName,
		Email:       acct.Email,
		Token:       acct.IDToken,
		Verified:    verified,
	}, nil
}

// Register は新規アカウントを作成し、表示名を設定し、検証メールを送信する。
// 返されるIdentityはVerified=false。
func (p *HTTPProvider) Register(ctx context.Context, email, password, displayName string) (*model.Identity, error) {
	var acct providerAccount
	err := p.post(ctx, "accounts:signUp", map[string]any{
		"email":             email,
		"password":          password,
		"returnSecureToken": true,
	}, &acct)
	if err != nil {
		return nil, err
	}

	// 表示名の設定
	if displayName != "" {
		if err := p.post(ctx, "accounts:update", map[string]any{
			"idToken":           acct.IDToken,
			"displayName":       displayName,
			"returnSecureToken": false,
		}, nil); err != nil {
			return nil, err
		}
	}

	// 検証メールの送信（プロバイダー側の副作用）
	if err := p.post(ctx, "accounts:sendOobCode", map[string]any{
		"requestType": "VERIFY_EMAIL",
		"idToken":     acct.IDToken,
	}, nil); err != nil {
		return nil, err
	}

	return &model.Identity{
		ProviderUID: acct.LocalID,
		DisplayName: displayName,
		Email:       acct.Email,
		Token:       acct.IDToken,
		Verified:    false,
	}, nil
}

// ResendVerification は検証メールを再送する。
func (p *HTTPProvider) ResendVerification(ctx context.Context, ident *model.Identity) error {
	if ident == nil {
		return &Error{Code: CodeUserNotFound}
	}
	return p.post(ctx, "accounts:sendOobCode", map[string]any{
		"requestType": "VERIFY_EMAIL",
		"idToken":     ident.Token,
	}, nil)
}

// ReloadVerified は認証済みプリンシパルの検証状態を再取得する。
func (p *HTTPProvider) ReloadVerified(ctx context.Context, ident *model.Identity) (bool, error) {
	if ident == nil {
		return false, &Error{Code: CodeUserNotFound}
	}
	return p.lookupVerified(ctx, ident.Token)
}

// SendPasswordReset はパスワードリセットメールを送信する。
func (p *HTTPProvider) SendPasswordReset(ctx context.Context, email string) error {
	return p.post(ctx, "accounts:sendOobCode", map[string]any{
		"requestType": "PASSWORD_RESET",
		"email":       email,
	}, nil)
}

// SignOut はプロバイダー側セッションを終了する。
// トークンベースのプロバイダーでは失効APIが提供されないため、
// クライアント側でのトークン破棄のみで完了する。
func (p *HTTPProvider) SignOut(ctx context.Context, ident *model.Identity) error {
	return nil
}

// lookupVerified はidTokenに対応するアカウントのemailVerifiedを取得する。
func (p *HTTPProvider) lookupVerified(ctx context.Context, idToken string) (bool, error) {
	var result struct {
		Users []struct {
			EmailVerified bool `json:"emailVerified"`
		} `json:"users"`
	}
	if err := p.post(ctx, "accounts:lookup", map[string]any{"idToken": idToken}, &result); err != nil {
		return false, err
	}
	if len(result.Users) == 0 {
		return false, &Error{Code: CodeUserNotFound}
	}
	return result.Users[0].EmailVerified, nil
}

// post はプロバイダーAPIへのPOSTリクエストを実行し、レスポンスをoutにデコードする。
// outがnilの場合はレスポンスボディを捨てる。
func (p *HTTPProvider) post(ctx context.Context, endpoint string, body map[string]any, out any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("failed to encode request body: %w", err)
	}

	url := fmt.Sprintf("%s/%s?key=%s", p.config.BaseURL, endpoint, p.config.APIKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("provider request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read provider response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return translateProviderError(respBody)
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(respBody, out); err != nil {
		return fmt.Errorf("failed to parse provider response: %w", err)
	}
	return nil
}

// translateProviderError はプロバイダーのエラーレスポンスを閉じたコード列挙に変換する。
func translateProviderError(body []byte) error {
	var eb providerErrorBody
	if err := json.Unmarshal(body, &eb); err != nil || eb.Error.Message == "" {
		return &Error{Code: CodeUnknown, Raw: string(body)}
	}

	switch eb.Error.Message {
	case "EMAIL_EXISTS":
		return &Error{Code: CodeEmailInUse}
	case "INVALID_EMAIL", "MISSING_EMAIL":
		return &Error{Code: CodeInvalidEmail}
	case "WEAK_PASSWORD", "WEAK_PASSWORD : Password should be at least 6 characters":
		return &Error{Code: CodeWeakPassword}
	case "EMAIL_NOT_FOUND":
		return &Error{Code: CodeUserNotFound}
	case "INVALID_PASSWORD":
		return &Error{Code: CodeWrongPassword}
	case "INVALID_LOGIN_CREDENTIALS":
		return &Error{Code: CodeInvalidCredential}
	case "TOO_MANY_ATTEMPTS_TRY_LATER":
		return &Error{Code: CodeTooManyRequests}
	case "OPERATION_NOT_ALLOWED":
		return &Error{Code: CodeOperationNotAllowed}
	default:
		return &Error{Code: CodeUnknown, Raw: eb.Error.Message}
	}
}

// compile-time interface check
var _ Provider = (*HTTPProvider)(nil)
