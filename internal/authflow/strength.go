package authflow

import (
	"unicode"
	"unicode/utf8"
)

// MinRegisterStrength は登録を許可する最低強度スコア。
// これ未満はネットワーク呼び出し前にローカルで拒否する。
const MinRegisterStrength = 50

// Strength はパスワード強度スコアを0-100（25刻み）で返す。
// 加点規則: 長さ8以上 +25、大文字を含む +25、数字を含む +25、
// 英数字以外を含む +25。規則を多く満たす文字列のスコアは
// 少なく満たす文字列のスコアを下回らない（単調性）。
func Strength(password string) int {
	score := 0
	// バイト数ではなく文字数で判定する。multibyte文字を含む7文字の
	// パスワードに長さ加点を与えないため。
	if utf8.RuneCountInString(password) > 7 {
		score += 25
	}

	var hasUpper, hasDigit, hasSymbol bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsDigit(r):
			hasDigit = true
		case !unicode.IsLetter(r) && !unicode.IsDigit(r):
			hasSymbol = true
		}
	}

	if hasUpper {
		score += 25
	}
	if hasDigit {
		score += 25
	}
	if hasSymbol {
		score += 25
	}
	return score
}
