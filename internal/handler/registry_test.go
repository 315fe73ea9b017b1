package handler

import (
	"context"
	"testing"
	"time"

	"github.com/gdhispano/hub/internal/billing"
	"github.com/gdhispano/hub/internal/model"
)

// TestSessionRegistry_SameSIDReturnsSameSession は同一SIDで同じ状態が返ることを検証する。
func TestSessionRegistry_SameSIDReturnsSameSession(t *testing.T) {
	reg := newTestRegistry(t, &fakeProvider{})

	bs1 := reg.Session("sid-1")
	bs2 := reg.Session("sid-1")

	if bs1 != bs2 {
		t.Error("same SID should return the same browser session")
	}
	if reg.Count() != 1 {
		t.Errorf("count = %d, want 1", reg.Count())
	}
}

// TestSessionRegistry_DifferentSIDsAreIsolated はセッション間の分離を検証する。
func TestSessionRegistry_DifferentSIDsAreIsolated(t *testing.T) {
	reg := newTestRegistry(t, &fakeProvider{})

	bs1 := reg.Session("sid-1")
	bs2 := reg.Session("sid-2")

	if bs1 == bs2 {
		t.Fatal("different SIDs must get different browser sessions")
	}

	bs1.Watcher.Publish(&model.Identity{ProviderUID: "uid-1", Verified: true})

	if bs1.Store.Current() == nil {
		t.Error("sid-1 should be signed in")
	}
	if bs2.Store.Current() != nil {
		t.Error("sid-2 must not observe sid-1's sign-in")
	}
}

// TestSessionRegistry_WatcherUpdatesStore はWatcher発行がストアへ伝搬することを検証する。
func TestSessionRegistry_WatcherUpdatesStore(t *testing.T) {
	reg := newTestRegistry(t, &fakeProvider{})
	bs := reg.Session("sid-1")

	bs.Watcher.Publish(&model.Identity{ProviderUID: "uid-1", Email: "ana@example.com", Verified: true})

	ident := bs.Store.Current()
	if ident == nil || ident.Email != "ana@example.com" {
		t.Fatalf("store should hold the published identity, got %+v", ident)
	}

	// サインアウトの伝搬
	bs.Watcher.Publish(nil)
	if bs.Store.Current() != nil {
		t.Error("store should be empty after nil publish")
	}
}

// TestSessionRegistry_PremiumSurvivesTokenRefresh はトークンリフレッシュ相当の
// 再発行でプレミアム資格が維持されることを検証する。
func TestSessionRegistry_PremiumSurvivesTokenRefresh(t *testing.T) {
	reg := newTestRegistry(t, &fakeProvider{})
	bs := reg.Session("sid-1")

	bs.Watcher.Publish(&model.Identity{ProviderUID: "uid-1", Verified: true})
	if err := bs.Store.Upgrade(); err != nil {
		t.Fatalf("upgrade failed: %v", err)
	}

	// 同一プリンシパルの再発行（新トークン）
	bs.Watcher.Publish(&model.Identity{ProviderUID: "uid-1", Verified: true, Token: "fresh"})

	ident := bs.Store.Current()
	if ident == nil || !ident.Premium {
		t.Error("premium must survive a token refresh")
	}

	// サインアウトで消滅する
	bs.Watcher.Publish(nil)
	bs.Watcher.Publish(&model.Identity{ProviderUID: "uid-1", Verified: true})
	if ident := bs.Store.Current(); ident != nil && ident.Premium {
		t.Error("premium must not survive a sign-out without a durable record")
	}
}

// fakeEntitlementRepo はrepository.EntitlementRepositoryのテスト用実装。
type fakeEntitlementRepo struct {
	premium map[string]bool
}

func (f *fakeEntitlementRepo) IsPremium(ctx context.Context, providerUID string) (bool, error) {
	return f.premium[providerUID], nil
}

func (f *fakeEntitlementRepo) SetPremium(ctx context.Context, providerUID string) error {
	if f.premium == nil {
		f.premium = make(map[string]bool)
	}
	f.premium[providerUID] = true
	return nil
}

func (f *fakeEntitlementRepo) Revoke(ctx context.Context, providerUID string) error {
	delete(f.premium, providerUID)
	return nil
}

// TestSessionRegistry_DurableEntitlementRestored は永続記録からの
// プレミアム復元を検証する。
func TestSessionRegistry_DurableEntitlementRestored(t *testing.T) {
	repo := &fakeEntitlementRepo{premium: map[string]bool{"uid-1": true}}
	reg := NewSessionRegistry(RegistryDeps{
		Provider:     &fakeProvider{},
		Entitlements: repo,
		Gateway:      &billing.SimulatedGateway{Delay: time.Millisecond},
	})
	defer reg.Stop()

	bs := reg.Session("sid-1")
	bs.Watcher.Publish(&model.Identity{ProviderUID: "uid-1", Verified: true})

	ident := bs.Store.Current()
	if ident == nil || !ident.Premium {
		t.Error("premium should be restored from the durable record on sign-in")
	}

	// 記録のないプリンシパルは復元されない
	bs2 := reg.Session("sid-2")
	bs2.Watcher.Publish(&model.Identity{ProviderUID: "uid-2", Verified: true})
	if ident := bs2.Store.Current(); ident == nil || ident.Premium {
		t.Error("uid-2 must not be premium")
	}
}

// TestSessionRegistry_CleanupEvictsStale は期限切れセッションの破棄を検証する。
func TestSessionRegistry_CleanupEvictsStale(t *testing.T) {
	reg := NewSessionRegistry(RegistryDeps{
		Provider:        &fakeProvider{},
		Gateway:         &billing.SimulatedGateway{Delay: time.Millisecond},
		TTL:             20 * time.Millisecond,
		CleanupInterval: 10 * time.Millisecond,
	})
	defer reg.Stop()

	reg.Session("sid-1")
	if reg.Count() != 1 {
		t.Fatalf("count = %d, want 1", reg.Count())
	}

	deadline := time.Now().Add(500 * time.Millisecond)
	for time.Now().Before(deadline) {
		if reg.Count() == 0 {
			return
		}
		time.Sleep(10 * time.Millisecond)
	}

	t.Errorf("count = %d, want 0 after cleanup", reg.Count())
}
