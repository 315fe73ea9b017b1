// Package authflow はログイン/登録/検証/リセットの認証フロー状態機械を提供する。
// フローはビュー遷移、一時的なフォームドラフト、プロバイダーエラーの翻訳を所有し、
// 成功遷移の時点でのみSessionストアへ書き込む。
package authflow

// View は認証フローの相互排他的なUI状態を表す。常にちょうど1つがアクティブ。
type View string

const (
	// ViewLogin はサインインフォーム。フローを新規に開いたときの初期ビュー。
	ViewLogin View = "LOGIN"
	// ViewRegister はアカウント作成フォーム。
	ViewRegister View = "REGISTER"
	// ViewVerifyEmail はメール検証待ち画面。
	ViewVerifyEmail View = "VERIFY_EMAIL"
	// ViewForgotPassword はパスワードリセットフォーム。
	ViewForgotPassword View = "FORGOT_PASSWORD"
)

// Draft は認証フローが排他的に所有する一時フォーム状態。
// クローズ時に破棄され、永続化されない。
type Draft struct {
	Email         string
	Password      string
	Username      string
	ShowPassword  bool
	ErrorMsg      string
	SuccessMsg    string
	InFlight      bool
	CaptchaPassed bool
}

// Snapshot はフローの観測可能な状態のコピー。
type Snapshot struct {
	Open     bool
	View     View
	Draft    Draft
	Strength int // 現在のパスワードの強度スコア（0-100）
}
