package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateSlug(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"simple", "Birthday", "birthday"},
		{"spaces", "My Birthday List", "my-birthday-list"},
		{"uppercase", "CHRISTMAS 2026", "christmas-2026"},
		{"cyrillic", "День Рождения", "den-rozhdeniya"},
		{"vietnamese", "Quà Tết", "qua-tet"},
		{"special chars", "gifts!!! & more???", "gifts-more"},
		{"consecutive separators", "a  --  b", "a-b"},
		{"emoji only falls back", "🎁🎉", "wishlist"},
		{"empty falls back", "", "wishlist"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, GenerateSlug(tt.input))
		})
	}
}

func TestGenerateSlug_LengthCapped(t *testing.T) {
	long := strings.Repeat("wishlist ", 20)
	slug := GenerateSlug(long)

	assert.LessOrEqual(t, len(slug), maxSlugLength)
	assert.False(t, strings.HasSuffix(slug, "-"))
	assert.False(t, strings.HasPrefix(slug, "-"))
}

func TestGenerateSecret(t *testing.T) {
	a, err := GenerateSecret(16)
	require.NoError(t, err)
	b, err := GenerateSecret(16)
	require.NoError(t, err)

	assert.Len(t, a, 32) // hex doubles the byte length
	assert.NotEqual(t, a, b)
}
