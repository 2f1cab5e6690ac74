package extract

import (
	"regexp"
	"strings"
)

// ItemType is the semantic kind of a classified block. The same vocabulary is
// used for classification results and for the type column of emitted rows;
// ItemIgnore never appears in a row.
type ItemType string

const (
	ItemTitle        ItemType = "title"
	ItemSectionTitle ItemType = "section-title"
	ItemGroupTitle   ItemType = "group-title"
	ItemArticleTitle ItemType = "article-title"
	ItemText         ItemType = "text"
	ItemAnnexTitle   ItemType = "annex-title"
	ItemOther        ItemType = "other"
	ItemIgnore       ItemType = "ignore"
)

// markerClasses maps a dialect-normalized role marker to its block kind.
// The marker vocabulary spans the historical EUR-Lex HTML dialects; new
// dialects are folded in by normalizeMarker, not by new conditionals.
var markerClasses = map[string]ItemType{
	// Document title
	"doc-ti":          ItemTitle,
	"title-doc-first": ItemTitle,

	// Hierarchy headings
	"ti-section": ItemSectionTitle,
	"ti-grseq":   ItemGroupTitle,
	"ti-art":     ItemArticleTitle,

	// Article subtitles carry no hierarchy state but are content worth keeping.
	"sti-art": ItemOther,

	// Body text
	"normal": ItemText,
	"norm":   ItemText,

	// Annex markers
	"ti-annex": ItemAnnexTitle,

	// Non-content markers
	"note":      ItemIgnore,
	"footnote":  ItemIgnore,
	"signatory": ItemIgnore,
	"doc-sep":   ItemIgnore,
	"page":      ItemIgnore,
}

// depthSuffixPattern strips the nesting depth from heading markers like
// "ti-grseq-1" or "ti-section-2"; all depths collapse to one level.
var depthSuffixPattern = regexp.MustCompile(`^(ti-(?:grseq|section|annex))-\d+$`)

// normalizeMarker collapses a raw class marker to the dialect-independent
// vocabulary: lowercase, the "oj-" prefix of the post-2023 Official Journal
// dialect removed, and heading depth suffixes dropped.
func normalizeMarker(marker string) string {
	marker = strings.ToLower(strings.TrimSpace(marker))
	marker = strings.TrimPrefix(marker, "oj-")
	if match := depthSuffixPattern.FindStringSubmatch(marker); match != nil {
		marker = match[1]
	}
	return marker
}

// classifyMarker returns the block kind for a single role marker. The second
// return reports whether the marker is in the table at all; unknown markers
// classify as ItemIgnore so that undocumented dialect variants degrade
// gracefully instead of aborting the document.
func classifyMarker(marker string) (ItemType, bool) {
	if kind, known := markerClasses[normalizeMarker(marker)]; known {
		return kind, true
	}
	return ItemIgnore, false
}
