package authflow

import "testing"

// TestStrength は強度スコアの加点規則を検証する。
func TestStrength(t *testing.T) {
	tests := []struct {
		name     string
		password string
		want     int
	}{
		{"空文字", "", 0},
		{"短い小文字のみ", "ab", 0},
		{"長さのみ", "abcdefgh", 25},
		{"長さと大文字", "Abcdefgh", 50},
		{"長さと大文字と数字", "Abcdefg1", 75},
		{"全規則", "Abcdefg1!", 100},
		{"短いが記号と数字と大文字", "A1!", 75},
		{"7文字は長さ加点なし", "Abcdef1", 50},
		{"multibyte含む7文字は長さ加点なし", "mañanas", 0},
		{"multibyte含む8文字は長さ加点あり", "mañanita", 25},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Strength(tt.password)
			if got != tt.want {
				t.Errorf("Strength(%q) = %d, want %d", tt.password, got, tt.want)
			}
		})
	}
}

// TestStrength_Monotonicity は規則を追加で満たすほどスコアが下がらないことを検証する。
func TestStrength_Monotonicity(t *testing.T) {
	chain := []string{"", "abcdefgh", "Abcdefgh", "Abcdefg1", "Abcdefg1!"}

	prev := -1
	for _, p := range chain {
		got := Strength(p)
		if got < prev {
			t.Errorf("Strength(%q) = %d, less than previous %d", p, got, prev)
		}
		prev = got
	}
}
