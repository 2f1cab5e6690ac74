package extract

import "regexp"

// ParseContext is the hierarchy state threaded through one extraction run:
// the document title and the current section, group, and article. An empty
// string means the slot has not been set yet, which is the legitimate state
// for rows emitted before the first heading of that kind (preamble text).
//
// ParseContext is a value type. Rows receive copies of its fields at emission
// time, so later transitions never retroactively change emitted rows.
type ParseContext struct {
	Document string
	Section  string
	Group    string
	Article  string
}

// articleLabelPattern extracts the numeric label (with an optional letter
// suffix, as in "Article 3a") following the article lead-in word.
var articleLabelPattern = regexp.MustCompile(`(?i)^Article\s+(\d+[a-z]?)`)

// apply performs the state transition for a heading block. Each heading kind
// overwrites exactly its own slot; no transition ever clears another slot, so
// section and group persist across article changes until replaced.
func (parseContext *ParseContext) apply(kind ItemType, headingText string) {
	switch kind {
	case ItemTitle:
		parseContext.Document = headingText
	case ItemSectionTitle:
		parseContext.Section = headingText
	case ItemGroupTitle:
		parseContext.Group = headingText
	case ItemArticleTitle:
		parseContext.Article = extractArticleLabel(headingText)
	}
}

// extractArticleLabel pulls the article number out of a heading like
// "Article 1" or "Article 3a Subject matter". Headings without a recognizable
// label keep their full text, so the row still records which article it
// belongs to.
func extractArticleLabel(headingText string) string {
	if match := articleLabelPattern.FindStringSubmatch(headingText); match != nil {
		return match[1]
	}
	return headingText
}
