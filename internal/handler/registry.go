package handler

import (
	"context"
	"sync"
	"time"

	"github.com/gdhispano/hub/internal/authflow"
	"github.com/gdhispano/hub/internal/billing"
	"github.com/gdhispano/hub/internal/idp"
	"github.com/gdhispano/hub/internal/metrics"
	"github.com/gdhispano/hub/internal/model"
	"github.com/gdhispano/hub/internal/repository"
	"github.com/gdhispano/hub/internal/session"
)

const (
	defaultRegistryTTL             = time.Hour
	defaultRegistryCleanupInterval = 10 * time.Minute
)

// BrowserSession は1ブラウザセッション分のサーバー側状態。
// 認証状態機械、Identityストア、課金フロー、チャットセッションIDを束ねる。
type BrowserSession struct {
	Store    *session.Store
	Flow     *authflow.Flow
	Watcher  *idp.Watcher
	Checkout *billing.Checkout

	mu          sync.Mutex
	chatID      string
	lastAccess  time.Time
	unsubscribe func()
}

// ChatID は紐づくチャットセッションIDを返す。未開始の場合は空文字。
func (bs *BrowserSession) ChatID() string {
	bs.mu.Lock()
	defer bs.mu.Unlock()
	return bs.chatID
}

// SetChatID はチャットセッションIDを紐づける。
func (bs *BrowserSession) SetChatID(id string) {
	bs.mu.Lock()
	defer bs.mu.Unlock()
	bs.chatID = id
}

// RegistryDeps はSessionRegistryの依存関係をまとめた構造体。
type RegistryDeps struct {
	Provider     idp.Provider
	Entitlements repository.EntitlementRepository // nil可（永続記録なし）
	Gateway      billing.Gateway
	Metrics      metrics.MetricsCollector // nil可
	FlowConfig   authflow.Config

	// TTL は最終アクセスからセッション状態を破棄するまでの時間。ゼロ値は1時間。
	TTL time.Duration
	// CleanupInterval は期限切れセッションの掃除間隔。ゼロ値は10分。
	CleanupInterval time.Duration
}

// SessionRegistry はブラウザセッションIDごとのサーバー側状態を管理する。
// 状態はメモリ上にのみ保持され、期限切れで破棄される。プレミアム資格は
// 永続記録から次回サインイン時に復元されるため、破棄しても失われない。
type SessionRegistry struct {
	deps RegistryDeps

	mu       sync.RWMutex
	sessions map[string]*BrowserSession

	stopCh chan struct{}
}

// NewSessionRegistry はSessionRegistryを生成し、バックグラウンドで
// 期限切れセッションのクリーンアップを開始する。
func NewSessionRegistry(deps RegistryDeps) *SessionRegistry {
	if deps.TTL <= 0 {
		deps.TTL = defaultRegistryTTL
	}
	if deps.CleanupInterval <= 0 {
		deps.CleanupInterval = defaultRegistryCleanupInterval
	}

	r := &SessionRegistry{
		deps:     deps,
		sessions: make(map[string]*BrowserSession),
		stopCh:   make(chan struct{}),
	}

	go r.cleanupLoop()

	return r
}

// Stop はクリーンアップのバックグラウンドゴルーチンを停止する。
func (r *SessionRegistry) Stop() {
	close(r.stopCh)
}

// Session はセッションIDに対応するBrowserSessionを取得または作成する。
func (r *SessionRegistry) Session(sid string) *BrowserSession {
	r.mu.RLock()
	bs, exists := r.sessions[sid]
	r.mu.RUnlock()

	if exists {
		r.mu.Lock()
		bs.lastAccess = time.Now()
		r.mu.Unlock()
		return bs
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	// ダブルチェック
	if bs, exists := r.sessions[sid]; exists {
		bs.lastAccess = time.Now()
		return bs
	}

	bs = r.newBrowserSession()
	r.sessions[sid] = bs
	return bs
}

// Count は現在管理されているセッション数を返す。テストおよびメトリクス用。
func (r *SessionRegistry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.sessions)
}

// newBrowserSession はセッション状態一式を組み立てる。
// 認証状態の変化はWatcher経由でStoreに届く。フローはWatcherに発行し、
// Storeはその購読者として更新される。購読解除後の変化は反映されない。
func (r *SessionRegistry) newBrowserSession() *BrowserSession {
	var ent session.EntitlementSource
	var writer billing.EntitlementWriter
	if r.deps.Entitlements != nil {
		ent = r.deps.Entitlements
		writer = r.deps.Entitlements
	}

	store := session.NewStore(ent)
	watcher := idp.NewWatcher()
	unsubscribe := watcher.Subscribe(func(ident *model.Identity) {
		store.Set(context.Background(), ident)
	})

	var authMetrics authflow.Recorder
	var billingMetrics billing.Recorder
	if r.deps.Metrics != nil {
		authMetrics = r.deps.Metrics
		billingMetrics = r.deps.Metrics
	}

	flow := authflow.NewFlow(r.deps.Provider, &watchedStore{store: store, watcher: watcher}, authMetrics, r.deps.FlowConfig)
	checkout := billing.NewCheckout(store, r.deps.Gateway, writer, billingMetrics)

	return &BrowserSession{
		Store:       store,
		Flow:        flow,
		Watcher:     watcher,
		Checkout:    checkout,
		lastAccess:  time.Now(),
		unsubscribe: unsubscribe,
	}
}

// watchedStore はauthflow.IdentityStoreをWatcher発行に適合させるアダプタ。
// 読み取りはStoreへ委譲し、書き込みはWatcherの全購読者への発行になる。
type watchedStore struct {
	store   *session.Store
	watcher *idp.Watcher
}

// compile-time interface check
var _ authflow.IdentityStore = (*watchedStore)(nil)

func (ws *watchedStore) Current() *model.Identity {
	return ws.store.Current()
}

func (ws *watchedStore) Set(ctx context.Context, ident *model.Identity) {
	ws.watcher.Publish(ident)
}

// cleanupLoop はバックグラウンドで期限切れセッションを定期的にクリーンアップする。
func (r *SessionRegistry) cleanupLoop() {
	ticker := time.NewTicker(r.deps.CleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			r.cleanup()
		case <-r.stopCh:
			return
		}
	}
}

// cleanup は最終アクセスからTTLを超えたセッションを破棄する。
func (r *SessionRegistry) cleanup() {
	now := time.Now()

	r.mu.Lock()
	defer r.mu.Unlock()

	for sid, bs := range r.sessions {
		if now.Sub(bs.lastAccess) > r.deps.TTL {
			bs.unsubscribe()
			bs.Flow.Close()
			delete(r.sessions, sid)
		}
	}
}
