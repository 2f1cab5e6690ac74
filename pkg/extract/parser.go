// Package extract turns semi-structured EUR-Lex document markup into a flat,
// ordered table of typed rows annotated with their position in the document
// hierarchy (document title, section, group, article, paragraph).
package extract

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
)

// ErrMalformedInput indicates markup that cannot be decoded at all. The whole
// extraction aborts with no partial table, so callers never mistake truncated
// output for a complete document.
var ErrMalformedInput = errors.New("malformed markup input")

// Parser extracts the document structure from EUR-Lex HTML. A Parser holds no
// per-run state: each Parse call owns a fresh hierarchy tracker, so a single
// Parser may serve many documents, concurrently if desired.
type Parser struct {
	onUnknownMarker func(marker string)
}

// ParserOption configures a Parser.
type ParserOption func(*Parser)

// WithUnknownMarkerHandler installs a callback invoked once per block whose
// role marker is not in the classification table. Unknown markers are a
// normal occurrence across the historical markup dialects; the block is
// skipped either way, and the handler exists only so callers can log them.
func WithUnknownMarkerHandler(handler func(marker string)) ParserOption {
	return func(parser *Parser) {
		parser.onUnknownMarker = handler
	}
}

// NewParser creates a Parser.
func NewParser(opts ...ParserOption) *Parser {
	parser := &Parser{}
	for _, opt := range opts {
		opt(parser)
	}
	return parser
}

// ParseHTML extracts the structure of a document using a default Parser.
func ParseHTML(markup string) (Rows, error) {
	return NewParser().Parse(markup)
}

// Parse performs a single forward pass over the block elements of the markup
// and returns the emitted rows in source document order.
//
// Heading blocks update the hierarchy tracker and emit nothing themselves;
// body blocks are split into numbered paragraph units, each emitted as one
// row carrying a snapshot of the hierarchy at that point. Blocks whose role
// is unrecognized are skipped. Markup that cannot be decoded fails with
// ErrMalformedInput.
func (parser *Parser) Parse(markup string) (Rows, error) {
	if !utf8.ValidString(markup) {
		return nil, fmt.Errorf("%w: input is not valid UTF-8", ErrMalformedInput)
	}

	document, err := goquery.NewDocumentFromReader(strings.NewReader(markup))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedInput, err)
	}

	parseContext := ParseContext{}
	var rows Rows

	document.Find("p").Each(func(_ int, block *goquery.Selection) {
		classAttr, _ := block.Attr("class")
		kind, known := parser.classifyBlock(classAttr)
		if kind == ItemIgnore {
			if !known && parser.onUnknownMarker != nil {
				parser.onUnknownMarker(classAttr)
			}
			return
		}

		text := collapseWhitespace(block.Text())
		if text == "" {
			return
		}

		switch kind {
		case ItemTitle, ItemSectionTitle, ItemGroupTitle, ItemArticleTitle:
			// Headings are metadata-only: they shape the context of the rows
			// that follow but contribute no row themselves.
			parseContext.apply(kind, text)

		case ItemAnnexTitle, ItemOther:
			rows = append(rows, buildRow(text, kind, "", detectModifier(block, text), parseContext))

		case ItemText:
			modifier := detectModifier(block, text)
			for _, unit := range SplitParagraphs(text) {
				rows = append(rows, buildRow(
					unit.Text,
					ItemText,
					normalizeParagraphLabel(unit.Label),
					modifier,
					parseContext,
				))
			}
		}
	})

	return rows, nil
}

// classifyBlock resolves the class attribute of a block to its kind. The
// attribute may carry several class tokens; the first one present in the
// classification table decides. A block with no class attribute is silently
// ignored, while one whose markers are all unknown reports known=false.
func (parser *Parser) classifyBlock(classAttr string) (ItemType, bool) {
	markers := strings.Fields(classAttr)
	if len(markers) == 0 {
		return ItemIgnore, true
	}
	for _, marker := range markers {
		if kind, known := classifyMarker(marker); known {
			return kind, true
		}
	}
	return ItemIgnore, false
}

// detectModifier reports an emphasis annotation when the block's entire text
// is wrapped in <i> or <em>.
func detectModifier(block *goquery.Selection, blockText string) string {
	emphasized := block.Find("i, em").First()
	if emphasized.Length() > 0 && collapseWhitespace(emphasized.Text()) == blockText {
		return "italic"
	}
	return ""
}

// buildRow snapshots the current hierarchy into a new immutable row.
func buildRow(text string, kind ItemType, paragraph, modifier string, parseContext ParseContext) Row {
	return Row{
		Text:      text,
		Type:      kind,
		Paragraph: paragraph,
		Document:  parseContext.Document,
		Section:   parseContext.Section,
		Group:     parseContext.Group,
		Article:   parseContext.Article,
		Modifier:  modifier,
	}
}
