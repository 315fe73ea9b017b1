// Package session は現在の認証済みIdentityとプレミアム資格の保持を提供する。
package session

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"github.com/gdhispano/hub/internal/model"
)

// ErrNotAuthenticated はIdentity不在時のUpgrade呼び出しを表す。
// 呼び出し側はこのエラーを検知して認証フローへ誘導する。
var ErrNotAuthenticated = errors.New("session: not authenticated")

// EntitlementSource はプロバイダーUIDに紐づく永続プレミアム記録の参照インターフェース。
// repository.EntitlementRepositoryの部分集合として定義する。
type EntitlementSource interface {
	IsPremium(ctx context.Context, providerUID string) (bool, error)
}

// Store は現在のIdentity（または不在）を保持するゲーティング判断の唯一の情報源。
// 書き込みはWatcherコールバックと課金フローのみに許可される規約であり、
// 他のコンポーネントは読み取り専用オブザーバーである。
type Store struct {
	mu      sync.RWMutex
	current *model.Identity

	// ent が設定されている場合、Setで永続記録からプレミアムを復元する。
	// nilの場合はセッション内メモリのみ（元実装の揮発挙動）。
	ent EntitlementSource
}

// NewStore は空のStoreを生成する。
// entはnil可。nilの場合プレミアム資格はセッション内でのみ保持される。
func NewStore(ent EntitlementSource) *Store {
	return &Store{ent: ent}
}

// Current は現在のIdentityを返す。不在の場合はnil。
func (s *Store) Current() *model.Identity {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current.Clone()
}

// Set は現在のIdentityを置き換える。identがnilの場合はサインアウト。
// プレミアムフラグはプロバイダー由来ではないため、直前のIdentityから
// 引き継ぐ（トークンリフレッシュを跨いで保持、サインアウトで消滅）。
// 永続記録が参照可能な場合はそちらを優先する。
func (s *Store) Set(ctx context.Context, ident *model.Identity) {
	var premium bool
	if ident != nil {
		s.mu.RLock()
		if s.current != nil {
			premium = s.current.Premium
		}
		s.mu.RUnlock()

		if s.ent != nil {
			durable, err := s.ent.IsPremium(ctx, ident.ProviderUID)
			if err != nil {
				slog.Error("failed to load durable entitlement",
					slog.String("provider_uid", ident.ProviderUID),
					slog.String("error", err.Error()),
				)
			} else if durable {
				premium = true
			}
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if ident == nil {
		s.current = nil
		return
	}
	c := ident.Clone()
	c.Premium = premium
	s.current = c
}

// Upgrade は現在のIdentityにプレミアム資格を付与する。
// Identity不在の場合はErrNotAuthenticatedを返す。呼び出し側は
// このエラー時に課金フローではなく認証フローを開くこと。
func (s *Store) Upgrade() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.current == nil {
		return ErrNotAuthenticated
	}
	s.current.Premium = true
	return nil
}
