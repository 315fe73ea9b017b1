package authflow

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/gdhispano/hub/internal/idp"
	"github.com/gdhispano/hub/internal/model"
)

// defaultResetRedirectDelay はリセットメール送信成功後に
// LOGINビューへ自動遷移するまでの固定遅延。
const defaultResetRedirectDelay = 3 * time.Second

// IdentityStore は成功遷移時にフローが書き込むセッションストアのインターフェース。
// session.Storeの部分集合として定義する。
type IdentityStore interface {
	Current() *model.Identity
	Set(ctx context.Context, ident *model.Identity)
}

// Recorder は認証メトリクスの記録インターフェース。
// metrics.Collectorの部分集合として定義する。
type Recorder interface {
	RecordLoginSuccess()
	RecordLoginFailure(code string)
	RecordRegistration()
	RecordVerificationPass()
}

// nopRecorder は何も記録しないRecorder。
type nopRecorder struct{}

func (nopRecorder) RecordLoginSuccess()            {}
func (nopRecorder) RecordLoginFailure(code string) {}
func (nopRecorder) RecordRegistration()            {}
func (nopRecorder) RecordVerificationPass()        {}

// Config はフローの設定。
type Config struct {
	// ResetRedirectDelay はFORGOT_PASSWORD成功後のLOGIN自動遷移遅延。
	// ゼロ値の場合は3秒。
	ResetRedirectDelay time.Duration
}

// Flow は1ブラウザセッション分の認証フロー状態機械。
// ビュー遷移とフォームドラフトを所有し、検証済みサインインの
// 成功時のみIdentityStoreへ書き込む。
//
// プロバイダー呼び出し中はロックを保持しない。呼び出し完了時に
// 世代カウンタを照合し、クローズ後に到着した結果が破棄済みの
// ドラフトを更新しないことを保証する。
type Flow struct {
	provider idp.Provider
	store    IdentityStore
	metrics  Recorder
	cfg      Config

	mu      sync.Mutex
	open    bool
	view    View
	draft   Draft
	pending *model.Identity // 検証待ちの認証済みプリンシパル（ログイン済みとは扱わない）
	gen     uint64          // クローズごとに進む世代カウンタ
}

// NewFlow はFlowを生成する。metricsがnilの場合は記録しない。
func NewFlow(provider idp.Provider, store IdentityStore, metrics Recorder, cfg Config) *Flow {
	if cfg.ResetRedirectDelay <= 0 {
		cfg.ResetRedirectDelay = defaultResetRedirectDelay
	}
	if metrics == nil {
		metrics = nopRecorder{}
	}
	return &Flow{
		provider: provider,
		store:    store,
		metrics:  metrics,
		cfg:      cfg,
		view:     ViewLogin,
	}
}

// Open はフローを開く。エラー/成功メッセージ、ローディングフラグ、
// キャプチャ、パスワード可視状態をリセットする。
// 直前のクローズでドラフト全体が初期化済みのため、ビューは常にLOGINで始まる。
func (f *Flow) Open() Snapshot {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.open = true
	f.draft.ErrorMsg = ""
	f.draft.SuccessMsg = ""
	f.draft.InFlight = false
	f.draft.CaptchaPassed = false
	f.draft.ShowPassword = false
	return f.snapshotLocked()
}

// Close はフローを閉じ、ドラフトと一時状態をすべて初期値に戻す。
// 実行中のプロバイダー呼び出しは中断されないが、その結果は
// 破棄済みドラフトに反映されない（世代ガード）。
func (f *Flow) Close() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.closeLocked()
}

// closeLocked はロック保持下でフローを閉じる。
func (f *Flow) closeLocked() {
	f.open = false
	f.view = ViewLogin
	f.draft = Draft{}
	f.pending = nil
	f.gen++
}

// SwitchView はLOGIN/REGISTERタブの切り替え、およびFORGOT_PASSWORDへの
// 遷移を行う。切り替え時にエラーメッセージをクリアする。
func (f *Flow) SwitchView(v View) Snapshot {
	f.mu.Lock()
	defer f.mu.Unlock()

	switch v {
	case ViewLogin, ViewRegister, ViewForgotPassword:
		f.view = v
		f.draft.ErrorMsg = ""
	}
	return f.snapshotLocked()
}

// UpdateDraft は入力フィールドを更新する。
func (f *Flow) UpdateDraft(email, password, username string, showPassword bool) Snapshot {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.draft.Email = email
	f.draft.Password = password
	f.draft.Username = username
	f.draft.ShowPassword = showPassword
	return f.snapshotLocked()
}

// GrantCaptcha はキャプチャ合格を記録する。現在のドラフトが
// リセットされるまで再検証は要求されない。
func (f *Flow) GrantCaptcha() Snapshot {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.draft.CaptchaPassed = true
	return f.snapshotLocked()
}

// Snapshot は現在の観測可能な状態を返す。
func (f *Flow) Snapshot() Snapshot {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.snapshotLocked()
}

func (f *Flow) snapshotLocked() Snapshot {
	return Snapshot{
		Open:     f.open,
		View:     f.view,
		Draft:    f.draft,
		Strength: Strength(f.draft.Password),
	}
}

// Submit は現在のビューのフォーム送信を処理する。
// LOGIN/REGISTERはキャプチャ合格が必須。送信中の重複送信は無視される。
func (f *Flow) Submit(ctx context.Context) Snapshot {
	f.mu.Lock()

	if !f.open || f.draft.InFlight {
		defer f.mu.Unlock()
		return f.snapshotLocked()
	}

	view := f.view
	f.draft.ErrorMsg = ""

	// キャプチャはLOGIN/REGISTERのみ必須。未合格はネットワーク到達前に失敗する。
	if (view == ViewLogin || view == ViewRegister) && !f.draft.CaptchaPassed {
		f.draft.ErrorMsg = "Por favor completa la verificación de seguridad (Smart Button)."
		defer f.mu.Unlock()
		return f.snapshotLocked()
	}

	// REGISTERは強度不足をローカルで拒否する（fail-fast、プロバイダー呼び出しなし）。
	if view == ViewRegister && Strength(f.draft.Password) < MinRegisterStrength {
		f.draft.ErrorMsg = "La contraseña es demasiado débil."
		defer f.mu.Unlock()
		return f.snapshotLocked()
	}

	f.draft.InFlight = true
	gen := f.gen
	email := strings.TrimSpace(f.draft.Email) // コピー&ペースト由来の空白除去。小文字化はしない。
	password := f.draft.Password
	username := f.draft.Username
	f.mu.Unlock()

	switch view {
	case ViewLogin:
		return f.submitLogin(ctx, gen, email, password)
	case ViewRegister:
		return f.submitRegister(ctx, gen, email, password, username)
	case ViewForgotPassword:
		return f.submitPasswordReset(ctx, gen, email)
	default:
		f.mu.Lock()
		defer f.mu.Unlock()
		f.draft.InFlight = false
		return f.snapshotLocked()
	}
}

// submitLogin はサインインを実行する。
func (f *Flow) submitLogin(ctx context.Context, gen uint64, email, password string) Snapshot {
	ident, err := f.provider.SignIn(ctx, email, password)

	f.mu.Lock()
	defer f.mu.Unlock()
	if f.gen != gen {
		// フローはクローズ済み。破棄されたドラフトには触れない。
		return f.snapshotLocked()
	}
	f.draft.InFlight = false

	if err != nil {
		f.failLocked(err)
		return f.snapshotLocked()
	}

	if !ident.Verified {
		// 検証ギャップ: エラーではなく強制遷移。ストアはログイン済みに更新しない。
		f.pending = ident
		f.draft.ErrorMsg = "Tu cuenta no está verificada."
		f.view = ViewVerifyEmail
		return f.snapshotLocked()
	}

	f.store.Set(ctx, ident)
	f.metrics.RecordLoginSuccess()
	f.closeLocked()
	return f.snapshotLocked()
}

// submitRegister はアカウント作成を実行する。成功時はVERIFY_EMAILへ遷移する。
func (f *Flow) submitRegister(ctx context.Context, gen uint64, email, password, username string) Snapshot {
	ident, err := f.provider.Register(ctx, email, password, username)

	f.mu.Lock()
	defer f.mu.Unlock()
	if f.gen != gen {
		return f.snapshotLocked()
	}
	f.draft.InFlight = false

	if err != nil {
		f.failLocked(err)
		return f.snapshotLocked()
	}

	f.pending = ident
	f.metrics.RecordRegistration()
	f.view = ViewVerifyEmail
	return f.snapshotLocked()
}

// submitPasswordReset はリセットメールを送信し、成功時は固定遅延後に
// LOGINビューへ自動遷移する。
func (f *Flow) submitPasswordReset(ctx context.Context, gen uint64, email string) Snapshot {
	err := f.provider.SendPasswordReset(ctx, email)

	f.mu.Lock()
	defer f.mu.Unlock()
	if f.gen != gen {
		return f.snapshotLocked()
	}
	f.draft.InFlight = false

	if err != nil {
		f.failLocked(err)
		return f.snapshotLocked()
	}

	f.draft.SuccessMsg = "Enlace de recuperación enviado a tu correo."
	f.draft.ErrorMsg = ""

	time.AfterFunc(f.cfg.ResetRedirectDelay, func() {
		f.mu.Lock()
		defer f.mu.Unlock()
		if f.gen != gen || f.view != ViewForgotPassword {
			return
		}
		f.view = ViewLogin
	})
	return f.snapshotLocked()
}

// CheckVerification は「検証済みにした」ボタンの処理。
// 自動ポーリングは行わず、ユーザー起点でのみ再確認する。
func (f *Flow) CheckVerification(ctx context.Context) Snapshot {
	f.mu.Lock()

	if !f.open || f.view != ViewVerifyEmail || f.draft.InFlight {
		defer f.mu.Unlock()
		return f.snapshotLocked()
	}

	if f.pending == nil {
		f.draft.ErrorMsg = "Sesión expirada. Inicia sesión de nuevo."
		f.view = ViewLogin
		defer f.mu.Unlock()
		return f.snapshotLocked()
	}

	f.draft.InFlight = true
	f.draft.ErrorMsg = ""
	gen := f.gen
	pending := f.pending.Clone()
	f.mu.Unlock()

	verified, err := f.provider.ReloadVerified(ctx, pending)

	f.mu.Lock()
	defer f.mu.Unlock()
	if f.gen != gen {
		return f.snapshotLocked()
	}
	f.draft.InFlight = false

	if err != nil {
		f.draft.ErrorMsg = "Error verificando estado. Intenta de nuevo."
		return f.snapshotLocked()
	}

	if !verified {
		f.draft.ErrorMsg = "Aún no has verificado el correo. Revisa tu bandeja de entrada o spam."
		return f.snapshotLocked()
	}

	pending.Verified = true
	f.store.Set(ctx, pending)
	f.metrics.RecordVerificationPass()
	f.closeLocked()
	return f.snapshotLocked()
}

// ResendVerification は検証メールの再送を要求する。ビューは遷移しない。
func (f *Flow) ResendVerification(ctx context.Context) Snapshot {
	f.mu.Lock()

	if !f.open || f.view != ViewVerifyEmail || f.pending == nil {
		defer f.mu.Unlock()
		return f.snapshotLocked()
	}

	gen := f.gen
	pending := f.pending.Clone()
	f.mu.Unlock()

	err := f.provider.ResendVerification(ctx, pending)

	f.mu.Lock()
	defer f.mu.Unlock()
	if f.gen != gen {
		return f.snapshotLocked()
	}

	if err != nil {
		var provErr *idp.Error
		if errors.As(err, &provErr) && provErr.Code == idp.CodeTooManyRequests {
			f.draft.ErrorMsg = "Espera unos minutos antes de reenviar."
		} else {
			f.draft.ErrorMsg = "Error al reenviar correo."
		}
		return f.snapshotLocked()
	}

	f.draft.SuccessMsg = "Correo reenviado. Revisa Spam."
	return f.snapshotLocked()
}

// failLocked はプロバイダーエラーを翻訳してドラフトに反映する。
// 想定内のユーザー起因エラーは診断ログに記録しない。
func (f *Flow) failLocked(err error) {
	var provErr *idp.Error
	if !errors.As(err, &provErr) {
		slog.Error("auth flow provider call failed", slog.String("error", err.Error()))
		f.draft.ErrorMsg = "Error de autenticación. Intenta de nuevo."
		return
	}

	f.draft.ErrorMsg = TranslateError(provErr)
	f.metrics.RecordLoginFailure(provErr.RawCode())

	if !provErr.Expected() {
		slog.Error("unexpected auth provider error",
			slog.String("code", provErr.RawCode()),
		)
	}
}
