package render

import "strings"

var (
	htmlEscaper = strings.NewReplacer(
		"&", "&amp;",
		"<", "&lt;",
		">", "&gt;",
		`"`, "&quot;",
		"'", "&#39;",
	)

	// attrEscaper also encodes whitespace that would otherwise be folded
	// when the attribute value is parsed.
	attrEscaper = strings.NewReplacer(
		"&", "&amp;",
		"<", "&lt;",
		">", "&gt;",
		`"`, "&quot;",
		"'", "&#39;",
		"\n", "&#10;",
		"\r", "&#13;",
		"\t", "&#9;",
	)
)

// escapeHTML escapes text content.
func escapeHTML(s string) string { return htmlEscaper.Replace(s) }

// escapeAttr escapes a quoted attribute value.
func escapeAttr(s string) string { return attrEscaper.Replace(s) }
