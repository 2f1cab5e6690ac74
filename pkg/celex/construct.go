package celex

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrInvalidReference indicates a slash-notation reference that could not be
// resolved into exactly two numeric segments.
var ErrInvalidReference = errors.New("invalid document reference")

// Option configures CELEX construction.
type Option func(*constructConfig)

type constructConfig struct {
	documentType DocumentTypeCode
	sector       DocumentSector
}

// WithDocumentType fixes the document type code used during construction.
func WithDocumentType(documentType DocumentTypeCode) Option {
	return func(config *constructConfig) {
		config.documentType = documentType
	}
}

// WithSector fixes the sector used during construction.
func WithSector(sector DocumentSector) Option {
	return func(config *constructConfig) {
		config.sector = sector
	}
}

// CELEXID constructs a canonical CELEX identifier from a slash-notation
// reference like "2019/947" or "947/2019".
//
// Segment order is irrelevant: if the first segment is a 4-digit value in the
// plausible year window it is taken as the year, otherwise the second segment
// is. The document type defaults to regulation and the sector to legislation
// when not supplied. The sequence number is zero-padded to 4 digits.
//
// Returns ErrInvalidReference (wrapped) when the notation does not resolve to
// exactly two numeric segments.
func CELEXID(slashNotation string, opts ...Option) (string, error) {
	config := constructConfig{
		documentType: TypeRegulation,
		sector:       SectorLegislation,
	}
	for _, opt := range opts {
		opt(&config)
	}

	year, number, err := splitReference(slashNotation)
	if err != nil {
		return "", err
	}

	celexNumber := CELEXNumber{
		Sector:   config.sector,
		Year:     year,
		TypeCode: config.documentType,
		Number:   padNumber(number),
	}
	return celexNumber.String(), nil
}

// PossibleCELEXIDs returns the ordered set of candidate CELEX identifiers for
// a slash-notation reference. For each dimension left unspecified (document
// type, sector) the candidates cover the cross-product of the plausible value
// sets; when both are supplied the result has exactly one element. The
// canonical guess (legislation, regulation) is always first.
func PossibleCELEXIDs(slashNotation string, opts ...Option) ([]string, error) {
	config := constructConfig{}
	for _, opt := range opts {
		opt(&config)
	}

	year, number, err := splitReference(slashNotation)
	if err != nil {
		return nil, err
	}

	sectors := candidateSectors
	if config.sector != "" {
		sectors = []DocumentSector{config.sector}
	}
	documentTypes := candidateTypes
	if config.documentType != "" {
		documentTypes = []DocumentTypeCode{config.documentType}
	}

	paddedNumber := padNumber(number)
	identifiers := make([]string, 0, len(sectors)*len(documentTypes))
	for _, sector := range sectors {
		for _, documentType := range documentTypes {
			celexNumber := CELEXNumber{
				Sector:   sector,
				Year:     year,
				TypeCode: documentType,
				Number:   paddedNumber,
			}
			identifiers = append(identifiers, celexNumber.String())
		}
	}
	return identifiers, nil
}

// splitReference isolates the year and sequence number from a slash-notation
// reference. Trailing segments beyond the first two are ignored, matching how
// references like "2019/947/EU" are written in running text.
func splitReference(slashNotation string) (year string, number string, err error) {
	segments := strings.Split(strings.TrimSpace(slashNotation), "/")
	if len(segments) < 2 {
		return "", "", fmt.Errorf("%w: %q does not contain two segments", ErrInvalidReference, slashNotation)
	}

	first := strings.TrimSpace(segments[0])
	second := strings.TrimSpace(segments[1])
	if !isNumeric(first) || !isNumeric(second) {
		return "", "", fmt.Errorf("%w: %q has non-numeric segments", ErrInvalidReference, slashNotation)
	}

	if isPlausibleYear(first) {
		return normalizeYear(first), second, nil
	}
	return normalizeYear(second), first, nil
}

// isPlausibleYear reports whether the segment is a 4-digit year inside the
// CELEX year window.
func isPlausibleYear(segment string) bool {
	if len(segment) != 4 {
		return false
	}
	year, err := strconv.Atoi(segment)
	if err != nil {
		return false
	}
	return year >= minCELEXYear && year <= maxCELEXYear
}

func isNumeric(segment string) bool {
	if segment == "" {
		return false
	}
	for _, character := range segment {
		if character < '0' || character > '9' {
			return false
		}
	}
	return true
}

// normalizeYear converts a 2-digit year to 4-digit.
// Uses 1958 as the cutoff (year the EU/EEC was founded):
// - Years >= 58 are interpreted as 19xx (e.g., "95" -> "1995")
// - Years < 58 are interpreted as 20xx (e.g., "16" -> "2016")
// 4-digit years pass through unchanged.
func normalizeYear(yearString string) string {
	if len(yearString) == 2 {
		yearValue, err := strconv.Atoi(yearString)
		if err != nil {
			return yearString
		}
		if yearValue >= 58 {
			return "19" + yearString
		}
		return "20" + yearString
	}
	return yearString
}

// padNumber pads a sequence number to 4 digits with leading zeros.
// Example: "947" -> "0947", "46" -> "0046". Longer numbers pass through.
func padNumber(numberString string) string {
	for len(numberString) < 4 {
		numberString = "0" + numberString
	}
	return numberString
}
