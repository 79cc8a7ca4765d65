package conv

import (
	"strings"

	"github.com/gomarkdown/markdown"
	"github.com/gomarkdown/markdown/html"
	"github.com/gomarkdown/markdown/parser"
	"github.com/inbucket/html2text"
	"github.com/microcosm-cc/bluemonday"
)

var (
	extensions = parser.CommonExtensions | parser.NoEmptyLineBeforeBlock
	htmlFlags  = html.CommonFlags | html.HrefTargetBlank
	tgPolicy   = bluemonday.NewPolicy()
	webPolicy  = bluemonday.UGCPolicy()
)

func init() {
	// Allowed tags https://core.telegram.org/bots/api#html-style
	tgPolicy.AllowElements("b", "strong", "i", "em", "u", "ins", "s", "strike", "del", "code", "pre", "blockquote")
	tgPolicy.AllowAttrs("href").OnElements("a")
	tgPolicy.AllowAttrs("class").OnElements("code")
}

func render(md []byte) []byte {
	p := parser.NewWithExtensions(extensions)
	renderer := html.NewRenderer(html.RendererOptions{Flags: htmlFlags})
	return markdown.Render(p.Parse(md), renderer)
}

// MarkdownToTelegramHTML renders md restricted to the tags Telegram accepts.
func MarkdownToTelegramHTML(md []byte) string {
	return string(tgPolicy.SanitizeBytes(render(md)))
}

// MarkdownToHTML renders md for the web page. Output is sanitized and safe to
// embed as template.HTML.
func MarkdownToHTML(md []byte) string {
	return string(webPolicy.SanitizeBytes(render(md)))
}

// MarkdownToText renders md as plain terminal text.
func MarkdownToText(md []byte) string {
	if len(strings.TrimSpace(string(md))) == 0 {
		return ""
	}
	text, err := html2text.FromString(MarkdownToHTML(md), html2text.Options{
		OmitLinks:    false,
		PrettyTables: false,
	})
	if err != nil {
		// html2text only fails on broken readers; fall back to the raw source
		return string(md)
	}
	return strings.TrimSpace(text)
}
