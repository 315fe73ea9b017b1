package idp

import (
	"sync"

	"github.com/gdhispano/hub/internal/model"
)

// Watcher はセッション変化イベントの長命サブスクリプションを提供する。
// サインイン、サインアウト、トークンリフレッシュのたびに登録済み
// コールバックが呼び出される。解除後のコールバックは二度と発火しない。
// テストではPublishを直接呼び、ネットワークなしで同期的にイベントを
// シミュレートできる。
type Watcher struct {
	mu      sync.Mutex
	nextID  int
	subs    map[int]func(*model.Identity)
}

// NewWatcher はWatcherを生成する。
func NewWatcher() *Watcher {
	return &Watcher{subs: make(map[int]func(*model.Identity))}
}

// Subscribe はセッション変化コールバックを登録し、解除関数を返す。
// 解除関数は何度呼んでも安全（冪等）。
func (w *Watcher) Subscribe(fn func(*model.Identity)) (unsubscribe func()) {
	w.mu.Lock()
	defer w.mu.Unlock()

	id := w.nextID
	w.nextID++
	w.subs[id] = fn

	return func() {
		w.mu.Lock()
		defer w.mu.Unlock()
		delete(w.subs, id)
	}
}

// Publish は現在のプリンシパル（サインアウト時はnil）を全購読者に通知する。
// 呼び出し順は登録順を保証しない。最後に発行されたイベントが勝つ。
func (w *Watcher) Publish(ident *model.Identity) {
	w.mu.Lock()
	fns := make([]func(*model.Identity), 0, len(w.subs))
	for _, fn := range w.subs {
		fns = append(fns, fn)
	}
	w.mu.Unlock()

	for _, fn := range fns {
		fn(ident.Clone())
	}
}
