// Package idp は外部IDプロバイダーとの連携を提供する。
// リモート認証サービスと通信する唯一のコンポーネントであり、
// プロバイダー固有のエラーを閉じたエラーコード列挙に正規化する。
package idp

import (
	"context"
	"fmt"

	"github.com/gdhispano/hub/internal/model"
)

// Code はプロバイダーエラーの正規化済みコードを表す。
// 未知のエラーはCodeUnknownに畳み込まれ、生コードはError.Rawに保持される。
type Code string

const (
	// CodeEmailInUse は登録済みメールアドレスでの再登録。
	CodeEmailInUse Code = "email-already-in-use"
	// CodeInvalidEmail は不正な形式のメールアドレス。
	CodeInvalidEmail Code = "invalid-email"
	// CodeWeakPassword はプロバイダー側のパスワード強度不足。
	CodeWeakPassword Code = "weak-password"
	// CodeUserNotFound は未登録ユーザー。
	CodeUserNotFound Code = "user-not-found"
	// CodeWrongPassword はパスワード不一致。
	CodeWrongPassword Code = "wrong-password"
	// CodeInvalidCredential は資格情報不一致（メール/パスワードを区別しない形式）。
	CodeInvalidCredential Code = "invalid-credential"
	// CodeTooManyRequests はプロバイダー側のレート制限。
	CodeTooManyRequests Code = "too-many-requests"
	// CodeOperationNotAllowed はプロバイダー側で無効化された認証方式。
	CodeOperationNotAllowed Code = "operation-not-allowed"
	// CodeUnknown は上記いずれにも該当しないエラー。
	CodeUnknown Code = "unknown"
)

// Error はプロバイダーエラーを表す。
// CodeUnknownの場合のみRawに生のエラーコードが入る。
type Error struct {
	Code Code
	Raw  string // プロバイダーの生コード（診断用）
}

// Error はerrorインターフェースを実装する。
func (e *Error) Error() string {
	if e.Code == CodeUnknown {
		return fmt.Sprintf("idp: unknown provider error: %s", e.Raw)
	}
	return fmt.Sprintf("idp: %s", e.Code)
}

// Expected は「想定内のユーザー起因エラー」かどうかを返す。
// 想定内エラーは診断ログに記録しない（ノイズ回避）。
func (e *Error) Expected() bool {
	switch e.Code {
	case CodeEmailInUse, CodeWrongPassword, CodeUserNotFound, CodeInvalidCredential:
		return true
	}
	return false
}

// RawCode はログ・フォールバックメッセージ用の生コードを返す。
// 既知コードはコード自身、未知コードはプロバイダーの生コードを返す。
func (e *Error) RawCode() string {
	if e.Code == CodeUnknown && e.Raw != "" {
		return e.Raw
	}
	return string(e.Code)
}

// Provider はリモートIDプロバイダーのインターフェース。
// 全操作は非同期（ネットワーク待ち）であり、呼び出し側は
// 並行呼び出し間の順序を仮定してはならない。
type Provider interface {
	// SignIn はメール/パスワードでサインインする。
	// 返されるIdentityのVerifiedはプロバイダーの最新状態を反映する。
	SignIn(ctx context.Context, email, password string) (*model.Identity, error)

	// Register は新規アカウントを作成する。
	// 成功時、プロバイダーは副作用として検証メールを送信し、
	// 返されるIdentityはVerified=falseである。
	Register(ctx context.Context, email, password, displayName string) (*model.Identity, error)

	// ResendVerification は検証メールを再送する。副作用のみ。
	ResendVerification(ctx context.Context, ident *model.Identity) error

	// ReloadVerified は認証済みプリンシパルの最新の検証状態を再取得する。
	// 「リンクをクリックしたか」のユーザー起点チェックに使用する。
	ReloadVerified(ctx context.Context, ident *model.Identity) (bool, error)

	// SendPasswordReset はパスワードリセットメールを送信する。
	SendPasswordReset(ctx context.Context, email string) error

	// SignOut はプロバイダー側のセッションを終了する。
	SignOut(ctx context.Context, ident *model.Identity) error
}
