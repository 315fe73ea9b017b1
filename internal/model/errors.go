// Package model はドメインモデルを定義する。
package model

import "fmt"

// APIError は統一エラーフォーマットを表す。
// UIに表示する原因カテゴリと対処方法を含む。
type APIError struct {
	Code     string // エラーコード
	Message  string // エラーメッセージ（ユーザー向け・スペイン語）
	Category string // カテゴリ: auth, validation, content, billing, ai, system
	Action   string // ユーザー向け対処方法
}

// Error はerrorインターフェースを実装する。
func (e *APIError) Error() string {
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// 定義済みエラーコード
const (
	ErrCodeNotAuthenticated   = "NOT_AUTHENTICATED"
	ErrCodeContentLocked      = "CONTENT_LOCKED"
	ErrCodeMethodNotFound     = "METHOD_NOT_FOUND"
	ErrCodePostNotFound       = "POST_NOT_FOUND"
	ErrCodeScamNotFound       = "SCAM_NOT_FOUND"
	ErrCodeCaptchaRequired    = "CAPTCHA_REQUIRED"
	ErrCodeWeakPassword       = "WEAK_PASSWORD"
	ErrCodePaymentDeclined    = "PAYMENT_DECLINED"
	ErrCodePaymentTimeout     = "PAYMENT_TIMEOUT"
	ErrCodeAIUnavailable      = "AI_UNAVAILABLE"
	ErrCodeInvalidAspectRatio = "INVALID_ASPECT_RATIO"
	ErrCodeInvalidFragment    = "INVALID_FRAGMENT"
	ErrCodeSessionNotFound    = "SESSION_NOT_FOUND"
)

// NewNotAuthenticatedError は未認証エラーを生成する。
func NewNotAuthenticatedError() *APIError {
	return &APIError{
		Code:     ErrCodeNotAuthenticated,
		Message:  "Necesitas iniciar sesión para continuar.",
		Category: "auth",
		Action:   "Inicia sesión o crea una cuenta.",
	}
}

// NewContentLockedError はプレミアムコンテンツのロックエラーを生成する。
func NewContentLockedError(contentID string) *APIError {
	return &APIError{
		Code:     ErrCodeContentLocked,
		Message:  fmt.Sprintf("Este contenido es exclusivo para miembros PRO: %s", contentID),
		Category: "content",
		Action:   "Mejora tu cuenta a PRO para desbloquearlo.",
	}
}

// NewMethodNotFoundError はメソッド未検出エラーを生成する。
func NewMethodNotFoundError(methodID string) *APIError {
	return &APIError{
		Code:     ErrCodeMethodNotFound,
		Message:  fmt.Sprintf("No se encontró el método indicado: %s", methodID),
		Category: "content",
		Action:   "Verifica el identificador del método.",
	}
}

// NewPostNotFoundError はブログ記事未検出エラーを生成する。
func NewPostNotFoundError(postID string) *APIError {
	return &APIError{
		Code:     ErrCodePostNotFound,
		Message:  fmt.Sprintf("No se encontró el artículo indicado: %s", postID),
		Category: "content",
		Action:   "Verifica el identificador del artículo.",
	}
}

// NewScamNotFoundError は監査エントリ未検出エラーを生成する。
func NewScamNotFoundError(scamID string) *APIError {
	return &APIError{
		Code:     ErrCodeScamNotFound,
		Message:  fmt.Sprintf("No se encontró la ficha de auditoría: %s", scamID),
		Category: "content",
		Action:   "Verifica el identificador de la ficha.",
	}
}

// NewCaptchaRequiredError はキャプチャ未完了エラーを生成する。
func NewCaptchaRequiredError() *APIError {
	return &APIError{
		Code:     ErrCodeCaptchaRequired,
		Message:  "Por favor completa la verificación de seguridad (Smart Button).",
		Category: "validation",
		Action:   "Pulsa el botón de verificación humana antes de enviar.",
	}
}

// NewWeakPasswordError はローカル検証によるパスワード強度不足エラーを生成する。
func NewWeakPasswordError() *APIError {
	return &APIError{
		Code:     ErrCodeWeakPassword,
		Message:  "La contraseña es demasiado débil.",
		Category: "validation",
		Action:   "Usa al menos 8 caracteres combinando mayúsculas, números y símbolos.",
	}
}

// NewPaymentDeclinedError は決済拒否エラーを生成する。
func NewPaymentDeclinedError() *APIError {
	return &APIError{
		Code:     ErrCodePaymentDeclined,
		Message:  "El pago fue rechazado por la pasarela.",
		Category: "billing",
		Action:   "Revisa tu método de pago e inténtalo de nuevo.",
	}
}

// NewPaymentTimeoutError は決済タイムアウトエラーを生成する。
func NewPaymentTimeoutError() *APIError {
	return &APIError{
		Code:     ErrCodePaymentTimeout,
		Message:  "La pasarela de pago no respondió a tiempo.",
		Category: "billing",
		Action:   "Espera un momento e inténtalo de nuevo. No se realizó ningún cargo.",
	}
}

// NewAIUnavailableError はAIバックエンド障害エラーを生成する。
func NewAIUnavailableError() *APIError {
	return &APIError{
		Code:     ErrCodeAIUnavailable,
		Message:  "Error de conexión con la IA.",
		Category: "ai",
		Action:   "Intenta reformular tu mensaje en unos segundos.",
	}
}

// NewInvalidAspectRatioError は無効なアスペクト比エラーを生成する。
func NewInvalidAspectRatioError(ratio string) *APIError {
	return &APIError{
		Code:     ErrCodeInvalidAspectRatio,
		Message:  fmt.Sprintf("Relación de aspecto no soportada: %s", ratio),
		Category: "validation",
		Action:   "Usa una de: 1:1, 3:4, 4:3, 9:16, 16:9.",
	}
}

// NewInvalidFragmentError は無効なディープリンクフラグメントエラーを生成する。
func NewInvalidFragmentError(fragment string) *APIError {
	return &APIError{
		Code:     ErrCodeInvalidFragment,
		Message:  fmt.Sprintf("Enlace interno no reconocido: %s", fragment),
		Category: "validation",
		Action:   "Usa un enlace con formato #method-<id> o #scam-<id>.",
	}
}

// NewSessionNotFoundError はブラウザセッション未検出エラーを生成する。
func NewSessionNotFoundError() *APIError {
	return &APIError{
		Code:     ErrCodeSessionNotFound,
		Message:  "Sesión expirada. Recarga la página.",
		Category: "auth",
		Action:   "Recarga la página para iniciar una nueva sesión.",
	}
}
