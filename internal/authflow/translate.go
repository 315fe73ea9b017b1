package authflow

import "github.com/gdhispano/hub/internal/idp"

// translations はプロバイダーエラーコードからユーザー向け文言への固定対応表。
var translations = map[idp.Code]string{
	idp.CodeEmailInUse:          "Este correo ya está registrado. ¿Ya tienes cuenta?",
	idp.CodeInvalidEmail:        "El correo no es válido.",
	idp.CodeWeakPassword:        "La contraseña es muy débil (min 6 caracteres).",
	idp.CodeUserNotFound:        "Usuario no encontrado. Crea una cuenta.",
	idp.CodeWrongPassword:       "Contraseña incorrecta.",
	idp.CodeInvalidCredential:   "Correo o contraseña incorrectos. Verifica espacios o mayúsculas.",
	idp.CodeTooManyRequests:     "Demasiados intentos. Espera un momento o restablece contraseña.",
	idp.CodeOperationNotAllowed: "¡Error de Configuración! Habilita \"Email/Password\" en la consola del proveedor.",
}

// TranslateError はプロバイダーエラーをユーザー向け文言に変換する。
// 未対応コードは生コード付きの汎用メッセージにフォールバックする。
func TranslateError(err *idp.Error) string {
	if msg, ok := translations[err.Code]; ok {
		return msg
	}
	return "Error de autenticación: " + err.RawCode()
}
