package domain

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidTokenFormat(t *testing.T) {
	tests := []struct {
		name  string
		token string
		want  bool
	}{
		{"typical token", "hf_" + strings.Repeat("a", 35), true},
		{"mixed case alphanumeric", "hf_AbCdEfGhIjKlMnOpQrStUvWxYz0123456789", true},
		{"garbage", "garbage", false},
		{"empty", "", false},
		{"missing prefix", strings.Repeat("a", 40), false},
		{"prefix only", "hf_", false},
		{"too short after prefix", "hf_" + strings.Repeat("a", 10), false},
		{"non-alphanumeric characters", "hf_" + strings.Repeat("a", 30) + "!", false},
		{"internal whitespace", "hf_" + strings.Repeat("a", 15) + " " + strings.Repeat("a", 15), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ValidTokenFormat(tt.token))
		})
	}
}
