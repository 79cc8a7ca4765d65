package conv

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMarkdownToTelegramHTML(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "empty input",
			input:    "",
			expected: "",
		},
		{
			name:     "bold step title",
			input:    "**Calcul du discriminant**",
			expected: "<strong>Calcul du discriminant</strong>\n",
		},
		{
			name:     "inline code",
			input:    "`Δ = b² - 4ac`",
			expected: "<code>Δ = b² - 4ac</code>\n",
		},
		{
			name:     "header tags stripped",
			input:    "# Solutions",
			expected: "Solutions\n",
		},
		{
			name:     "script tags sanitized",
			input:    "<script>alert('xss')</script>",
			expected: "\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, MarkdownToTelegramHTML([]byte(tt.input)))
		})
	}
}

func TestMarkdownToHTML(t *testing.T) {
	got := MarkdownToHTML([]byte("**Étape 1**"))
	assert.Equal(t, "<p><strong>Étape 1</strong></p>\n", got)

	got = MarkdownToHTML([]byte("texte <script>alert('xss')</script>"))
	assert.NotContains(t, got, "<script")
	assert.Contains(t, got, "texte")
}

func TestMarkdownToText(t *testing.T) {
	assert.Equal(t, "", MarkdownToText([]byte("   ")))

	got := MarkdownToText([]byte("**Forme exponentielle** : `z = r·e^(iθ)`"))
	assert.Contains(t, got, "Forme exponentielle")
	assert.Contains(t, got, "z = r·e^(iθ)")
	assert.NotContains(t, got, "<strong>")
	assert.NotContains(t, got, "**")
}
