package extract

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// ParagraphUnit is one sub-unit of a body block: a numbering label in its
// source form ("1." or "(1)"), or empty for unlabeled lead-in text, plus the
// unit's trimmed text.
type ParagraphUnit struct {
	Label string
	Text  string
}

// The two competing numbering dialects found inside a single body block.
// Tokens must stand alone between whitespace (or at the block boundary) so
// that inline occurrences like "Article 5(2)" are not taken for numbering.
var (
	dottedTokenPattern = regexp.MustCompile(`(?:^|\s)(\d{1,3})\.(?:\s|$)`)
	parenTokenPattern  = regexp.MustCompile(`(?:^|\s)\((\d{1,3})\)(?:\s|$)`)
)

// numberingToken is one recognized numbering marker inside a block.
type numberingToken struct {
	number int
	label  string
	start  int // offset of the token in the collapsed text
	end    int // offset just past the token and its trailing separator
}

// SplitParagraphs splits one block of raw text into its ordered numbered
// sub-units. Text before the first numbering token becomes one unlabeled
// unit; if no tokens are found the whole block is a single unlabeled unit.
//
// When both numbering dialects appear in the same block, the dialect whose
// numbers are strictly increasing starting at 1 across the full block wins;
// if neither is internally consistent the block is treated as unlabeled.
// Whitespace runs collapse to single spaces and empty units are dropped.
func SplitParagraphs(text string) []ParagraphUnit {
	collapsed := collapseWhitespace(text)
	if collapsed == "" {
		return nil
	}

	dottedTokens := findTokens(dottedTokenPattern, collapsed, func(number string) string {
		return number + "."
	})
	parenTokens := findTokens(parenTokenPattern, collapsed, func(number string) string {
		return "(" + number + ")"
	})

	tokens := chooseDialect(dottedTokens, parenTokens)
	if len(tokens) == 0 {
		return []ParagraphUnit{{Text: collapsed}}
	}

	units := make([]ParagraphUnit, 0, len(tokens)+1)
	if lead := strings.TrimSpace(collapsed[:tokens[0].start]); lead != "" {
		units = append(units, ParagraphUnit{Text: lead})
	}
	for tokenIndex, token := range tokens {
		endOfUnit := len(collapsed)
		if tokenIndex+1 < len(tokens) {
			endOfUnit = tokens[tokenIndex+1].start
		}
		unitText := strings.TrimSpace(collapsed[token.end:endOfUnit])
		if unitText == "" {
			continue
		}
		units = append(units, ParagraphUnit{Label: token.label, Text: unitText})
	}
	return units
}

// findTokens locates every standalone numbering token of one dialect.
func findTokens(pattern *regexp.Regexp, text string, renderLabel func(string) string) []numberingToken {
	matches := pattern.FindAllStringSubmatchIndex(text, -1)
	tokens := make([]numberingToken, 0, len(matches))
	for _, match := range matches {
		numberText := text[match[2]:match[3]]
		number, err := strconv.Atoi(numberText)
		if err != nil {
			continue
		}
		tokens = append(tokens, numberingToken{
			number: number,
			label:  renderLabel(numberText),
			start:  match[0],
			end:    match[1],
		})
	}
	return tokens
}

// chooseDialect picks the numbering dialect for a block. A lone dialect wins
// outright (a block may legitimately open at "2." when the article's first
// paragraph lives in an earlier block). When both dialects match, only an
// internally consistent one (strictly increasing from 1) is trusted; ties go
// to whichever matched more tokens, then to the dotted dialect.
func chooseDialect(dottedTokens, parenTokens []numberingToken) []numberingToken {
	switch {
	case len(dottedTokens) == 0:
		return parenTokens
	case len(parenTokens) == 0:
		return dottedTokens
	}

	dottedConsistent := isConsistentNumbering(dottedTokens)
	parenConsistent := isConsistentNumbering(parenTokens)
	switch {
	case dottedConsistent && !parenConsistent:
		return dottedTokens
	case parenConsistent && !dottedConsistent:
		return parenTokens
	case !dottedConsistent && !parenConsistent:
		return nil
	}

	if len(parenTokens) > len(dottedTokens) {
		return parenTokens
	}
	return dottedTokens
}

// isConsistentNumbering reports whether the token numbers are strictly
// increasing starting at 1.
func isConsistentNumbering(tokens []numberingToken) bool {
	if len(tokens) == 0 || tokens[0].number != 1 {
		return false
	}
	for tokenIndex := 1; tokenIndex < len(tokens); tokenIndex++ {
		if tokens[tokenIndex].number <= tokens[tokenIndex-1].number {
			return false
		}
	}
	return true
}

// collapseWhitespace reduces every whitespace run to a single space and trims
// the ends.
func collapseWhitespace(text string) string {
	return strings.Join(strings.Fields(text), " ")
}

// normalizeParagraphLabel reduces a source-form numbering label to the bare
// digit string used in the row table: "1." and "(1)" both become "1".
func normalizeParagraphLabel(label string) string {
	trimmed := strings.TrimSuffix(label, ".")
	trimmed = strings.TrimPrefix(trimmed, "(")
	trimmed = strings.TrimSuffix(trimmed, ")")
	return trimmed
}

// String renders the unit in "label text" form for diagnostics.
func (paragraphUnit ParagraphUnit) String() string {
	if paragraphUnit.Label == "" {
		return paragraphUnit.Text
	}
	return fmt.Sprintf("%s %s", paragraphUnit.Label, paragraphUnit.Text)
}
