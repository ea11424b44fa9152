package text

import "testing"

func TestJoinRunText(t *testing.T) {
	tests := []struct {
		name  string
		parts []string
		want  string
	}{
		{"plain", []string{"Hel", "lo"}, "Hello"},
		{"trimmed", []string{"  ", "Hello", " ", "World", " "}, "Hello World"},
		{"nbsp trimmed", []string{"\u00a0Hi\u00a0"}, "Hi"},
		{"combining mark composes", []string{"e", "\u0301", "t", "e", "\u0301"}, "\u00e9t\u00e9"},
		{"empty", nil, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := JoinRunText(tt.parts); got != tt.want {
				t.Errorf("JoinRunText(%q) = %q, want %q", tt.parts, got, tt.want)
			}
		})
	}
}

func TestIsBlank(t *testing.T) {
	for _, s := range []string{"", " ", "\t\n", "\u00a0", "\uFEFF"} {
		if !IsBlank(s) {
			t.Errorf("IsBlank(%q) = false", s)
		}
	}
	if IsBlank(" x ") {
		t.Error("IsBlank(\" x \") = true")
	}
}
