// Package model はドメインモデルを定義する。
package model

// Identity は認証済みプリンシパルを表す。
// IdPから取得した検証状態と、ローカルで管理するプレミアム資格フラグを持つ。
type Identity struct {
	ProviderUID string
	DisplayName string
	Email       string
	Token       string // 短命のアクセストークン
	Verified    bool   // メールアドレス検証済みか
	Premium     bool   // プレミアム資格（IdP由来ではなくローカル管理）
}

// LoggedIn はプロダクトを解放してよい「ログイン済み」状態かを返す。
// Verified=falseのIdentityは保留状態であり、ログイン済みとして扱ってはならない。
func (i *Identity) LoggedIn() bool {
	return i != nil && i.Verified
}

// Clone はIdentityの複製を返す。nilにはnilを返す。
func (i *Identity) Clone() *Identity {
	if i == nil {
		return nil
	}
	c := *i
	return &c
}
