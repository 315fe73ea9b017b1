package idp

import (
	"testing"

	"github.com/gdhispano/hub/internal/model"
)

// TestWatcher_PublishReachesSubscribers は発行イベントが全購読者に届くことを検証する。
func TestWatcher_PublishReachesSubscribers(t *testing.T) {
	w := NewWatcher()

	var got1, got2 *model.Identity
	w.Subscribe(func(ident *model.Identity) { got1 = ident })
	w.Subscribe(func(ident *model.Identity) { got2 = ident })

	w.Publish(&model.Identity{ProviderUID: "u1", Verified: true})

	if got1 == nil || got1.ProviderUID != "u1" {
		t.Errorf("subscriber 1 received %+v", got1)
	}
	if got2 == nil || got2.ProviderUID != "u1" {
		t.Errorf("subscriber 2 received %+v", got2)
	}
}

// TestWatcher_PublishNilSignalsSignOut はnil発行がサインアウトとして届くことを検証する。
func TestWatcher_PublishNilSignalsSignOut(t *testing.T) {
	w := NewWatcher()

	called := false
	var got *model.Identity
	w.Subscribe(func(ident *model.Identity) {
		called = true
		got = ident
	})

	w.Publish(nil)

	if !called {
		t.Fatal("subscriber not called for nil publish")
	}
	if got != nil {
		t.Errorf("received %+v, want nil", got)
	}
}

// TestWatcher_SubscriberReceivesCopy は購読者がコピーを受け取り、
// 変更が他の購読者に波及しないことを検証する。
func TestWatcher_SubscriberReceivesCopy(t *testing.T) {
	w := NewWatcher()

	original := &model.Identity{ProviderUID: "u1", Verified: true}
	w.Subscribe(func(ident *model.Identity) {
		ident.Premium = true
	})

	w.Publish(original)

	if original.Premium {
		t.Error("subscriber mutation leaked into published identity")
	}
}

// TestWatcher_Unsubscribe は解除後のコールバックが発火しないことを検証する。
func TestWatcher_Unsubscribe(t *testing.T) {
	w := NewWatcher()

	calls := 0
	unsubscribe := w.Subscribe(func(ident *model.Identity) { calls++ })

	w.Publish(nil)
	unsubscribe()
	w.Publish(nil)

	if calls != 1 {
		t.Errorf("calls = %d, want 1", calls)
	}

	// 解除は冪等
	unsubscribe()
	w.Publish(nil)
	if calls != 1 {
		t.Errorf("calls after double unsubscribe = %d, want 1", calls)
	}
}

// TestWatcher_UnsubscribeDoesNotAffectOthers は個別解除が他の購読に影響しないことを検証する。
func TestWatcher_UnsubscribeDoesNotAffectOthers(t *testing.T) {
	w := NewWatcher()

	calls1, calls2 := 0, 0
	unsub1 := w.Subscribe(func(ident *model.Identity) { calls1++ })
	w.Subscribe(func(ident *model.Identity) { calls2++ })

	unsub1()
	w.Publish(nil)

	if calls1 != 0 {
		t.Errorf("unsubscribed callback fired %d times", calls1)
	}
	if calls2 != 1 {
		t.Errorf("remaining subscriber calls = %d, want 1", calls2)
	}
}
