// Package repository はデータ永続化のインターフェースを定義する。
package repository

import (
	"context"
)

// EntitlementRepository はプレミアム資格記録の永続化インターフェース。
// 資格はIdPのproviderUIDに紐付き、ブラウザセッションを越えて保持される。
type EntitlementRepository interface {
	// IsPremium は指定providerUIDが有効なプレミアム資格を持つかを返す。
	// 記録が存在しない場合はfalseを返す（エラーにはしない）。
	IsPremium(ctx context.Context, providerUID string) (bool, error)

	// SetPremium は指定providerUIDのプレミアム資格を冪等にUPSERTする。
	SetPremium(ctx context.Context, providerUID string) error

	// Revoke は指定providerUIDのプレミアム資格を取り消す。
	// 記録が存在しない場合も成功として扱う。
	Revoke(ctx context.Context, providerUID string) error
}
