package solver

import (
	"sync"
	"unicode/utf8"

	"github.com/pkoukk/tiktoken-go"
)

var (
	tkOnce sync.Once
	tk     *tiktoken.Tiktoken
)

// countTokens estimates the prompt size of text. When the encoding cannot be
// loaded the rune count is used, which never undercounts cl100k.
func countTokens(text string) int {
	tkOnce.Do(func() {
		enc, err := tiktoken.GetEncoding("cl100k_base")
		if err == nil {
			tk = enc
		}
	})
	if tk == nil {
		return utf8.RuneCountInString(text)
	}
	return len(tk.Encode(text, nil, nil))
}
