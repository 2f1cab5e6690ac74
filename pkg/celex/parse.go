package celex

import (
	"regexp"
	"strconv"
)

// celexPattern matches the full CELEX grammar:
// sector (1 digit), year (4 digits), type code (1-2 uppercase letters),
// number (4-5 digits), optional corrigendum suffix like "R(06)".
// The whole identifier must match; partial matches are rejected.
var celexPattern = regexp.MustCompile(`^([1-6])(\d{4})([A-Z]{1,2})(\d{4,5})([A-Z]\(\d{2}\))?$`)

// ParseCELEX parses a CELEX identifier into its structured form.
//
// Returns false for anything that does not satisfy the grammar: malformed
// field widths, unknown type codes, years outside the plausible window, and
// non-CELEX references such as OJ locators ("C/2026/00064"). A failed parse
// never returns a partially populated value.
func ParseCELEX(identifier string) (CELEXNumber, bool) {
	match := celexPattern.FindStringSubmatch(identifier)
	if match == nil {
		return CELEXNumber{}, false
	}

	year, err := strconv.Atoi(match[2])
	if err != nil || year < minCELEXYear || year > maxCELEXYear {
		return CELEXNumber{}, false
	}

	if !validDocumentTypes[match[3]] {
		return CELEXNumber{}, false
	}

	return CELEXNumber{
		Sector:   DocumentSector(match[1]),
		Year:     match[2],
		TypeCode: DocumentTypeCode(match[3]),
		Number:   match[4],
		Suffix:   match[5],
	}, true
}

// IsValidCELEXID reports whether the identifier satisfies the CELEX grammar.
func IsValidCELEXID(identifier string) bool {
	_, ok := ParseCELEX(identifier)
	return ok
}
