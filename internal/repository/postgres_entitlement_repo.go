package repository

import (
	"context"
	"database/sql"
	"fmt"
)

// PostgresEntitlementRepo はPostgreSQLを使用した資格リポジトリ。
type PostgresEntitlementRepo struct {
	db *sql.DB
}

// NewPostgresEntitlementRepo はPostgresEntitlementRepoを生成する。
func NewPostgresEntitlementRepo(db *sql.DB) *PostgresEntitlementRepo {
	return &PostgresEntitlementRepo{db: db}
}

// IsPremium は指定providerUIDが有効なプレミアム資格を持つかを返す。
// 記録が存在しない場合はfalseを返す。
func (r *PostgresEntitlementRepo) IsPremium(ctx context.Context, providerUID string) (bool, error) {
	var premium bool
	err := r.db.QueryRowContext(ctx,
		`SELECT premium FROM entitlements WHERE provider_uid = $1`,
		providerUID,
	).Scan(&premium)

	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("資格の取得に失敗しました: %w", err)
	}

	return premium, nil
}

// SetPremium は指定providerUIDのプレミアム資格を冪等にUPSERTする。
func (r *PostgresEntitlementRepo) SetPremium(ctx context.Context, providerUID string) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO entitlements (provider_uid, premium, granted_at, updated_at)
		 VALUES ($1, true, NOW(), NOW())
		 ON CONFLICT (provider_uid)
		 DO UPDATE SET premium = true, updated_at = NOW()`,
		providerUID,
	)
	if err != nil {
		return fmt.Errorf("資格の付与に失敗しました: %w", err)
	}
	return nil
}

// Revoke は指定providerUIDのプレミアム資格を取り消す。
func (r *PostgresEntitlementRepo) Revoke(ctx context.Context, providerUID string) error {
	_, err := r.db.ExecContext(ctx,
		`UPDATE entitlements SET premium = false, updated_at = NOW() WHERE provider_uid = $1`,
		providerUID,
	)
	if err != nil {
		return fmt.Errorf("資格の取り消しに失敗しました: %w", err)
	}
	return nil
}

// compile-time interface check
var _ EntitlementRepository = (*PostgresEntitlementRepo)(nil)
