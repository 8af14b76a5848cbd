package rendering

import (
	"html"
	"html/template"
	"regexp"
	"strings"
)

// inlineRe matches **text** or *text* emphasis spans.
var inlineRe = regexp.MustCompile(`\*\*(.+?)\*\*|\*([^*\n]+?)\*`)

// bulletRe matches lines that render as list items.
var bulletRe = regexp.MustCompile(`^[*\-•]\s`)

// bulletPrefixRe strips the bullet marker and surrounding whitespace.
var bulletPrefixRe = regexp.MustCompile(`^[*\-•]\s*`)

// Span is one run of description text, optionally emphasized.
type Span struct {
	Text   string
	Strong bool
}

// ParseInline splits text into plain and emphasized spans. A substring
// wrapped in **...** or single *...* becomes an emphasized span.
func ParseInline(text string) []Span {
	var spans []Span
	last := 0

	for _, m := range inlineRe.FindAllStringSubmatchIndex(text, -1) {
		if m[0] > last {
			spans = append(spans, Span{Text: text[last:m[0]]})
		}
		// Group 1 for **, group 2 for *.
		if m[2] >= 0 {
			spans = append(spans, Span{Text: text[m[2]:m[3]], Strong: true})
		} else {
			spans = append(spans, Span{Text: text[m[4]:m[5]], Strong: true})
		}
		last = m[1]
	}

	if last < len(text) {
		spans = append(spans, Span{Text: text[last:]})
	}
	if spans == nil {
		spans = []Span{{Text: text}}
	}
	return spans
}

// InlineHTML renders text with inline emphasis as escaped HTML.
func InlineHTML(text string) template.HTML {
	var sb strings.Builder
	for _, span := range ParseInline(text) {
		if span.Strong {
			sb.WriteString("<strong>")
			sb.WriteString(html.EscapeString(span.Text))
			sb.WriteString("</strong>")
		} else {
			sb.WriteString(html.EscapeString(span.Text))
		}
	}
	return template.HTML(sb.String())
}

// Block is one parsed description line.
type Block struct {
	Bullet bool
	Text   string
}

// HTML renders the block's text with inline emphasis.
func (b Block) HTML() template.HTML {
	return InlineHTML(b.Text)
}

// Description is a parsed entry description. When any trimmed line starts
// with a bullet marker the description renders as mixed text/bullet blocks;
// otherwise the raw text renders preformatted with inline emphasis only.
type Description struct {
	Mixed  bool
	Blocks []Block
	Raw    string
}

// Empty reports whether there is nothing to render.
func (d Description) Empty() bool {
	return strings.TrimSpace(d.Raw) == ""
}

// HTML renders the raw text of a non-mixed description.
func (d Description) HTML() template.HTML {
	return InlineHTML(d.Raw)
}

// ParseDescription classifies newline-delimited description text.
func ParseDescription(text string) Description {
	var lines []string
	for _, line := range strings.Split(text, "\n") {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			lines = append(lines, trimmed)
		}
	}

	hasBullets := false
	for _, line := range lines {
		if bulletRe.MatchString(line) {
			hasBullets = true
			break
		}
	}

	if !hasBullets {
		return Description{Raw: text}
	}

	blocks := make([]Block, 0, len(lines))
	for _, line := range lines {
		if bulletRe.MatchString(line) {
			blocks = append(blocks, Block{Bullet: true, Text: bulletPrefixRe.ReplaceAllString(line, "")})
		} else {
			blocks = append(blocks, Block{Text: line})
		}
	}
	return Description{Mixed: true, Blocks: blocks, Raw: text}
}
