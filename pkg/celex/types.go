// Package celex implements the CELEX identifier grammar used to reference
// EU legal documents: parsing, validation, and construction of canonical
// identifiers from partial "number/year" references.
package celex

// DocumentSector represents the CELEX sector code (first digit of an identifier).
// See: https://eur-lex.europa.eu/content/tools/TableOfSectors/types_of_documents_in_eurlex.html
type DocumentSector string

const (
	SectorTreaties                 DocumentSector = "1"
	SectorInternationalAgreements  DocumentSector = "2"
	SectorLegislation              DocumentSector = "3"
	SectorComplementaryLegislation DocumentSector = "4"
	SectorPreparatoryActs          DocumentSector = "5"
	SectorCaseLaw                  DocumentSector = "6"
)

// DocumentTypeCode represents the CELEX document type indicator within a sector.
type DocumentTypeCode string

const (
	TypeRegulation DocumentTypeCode = "R"
	TypeDirective  DocumentTypeCode = "L"
	TypeDecision   DocumentTypeCode = "D"
	TypeBudget     DocumentTypeCode = "B"
)

// validDocumentTypes is the closed set of type codes accepted by the grammar.
// Single letters cover the classic sector-3 instruments; the two-letter codes
// are the X-series and preparatory-act variants that appear in sectors 4 and 5.
var validDocumentTypes = map[string]bool{
	"A": true, "B": true, "C": true, "D": true, "E": true, "F": true,
	"G": true, "H": true, "J": true, "K": true, "L": true, "M": true,
	"O": true, "Q": true, "R": true, "S": true, "X": true, "Y": true,
	"AG": true, "DC": true, "IG": true, "JC": true, "PC": true, "SC": true,
	"XA": true, "XB": true, "XC": true, "XE": true, "XG": true, "XK": true,
	"XP": true, "XT": true, "XX": true,
}

// Plausible year window for CELEX identifiers. Documents predate the EU's
// legal database only back to the 1951 ECSC treaty; anything earlier is not
// a digitized identifier.
const (
	minCELEXYear = 1951
	maxCELEXYear = 2099
)

// Candidate value sets used by PossibleCELEXIDs when a dimension is omitted.
// Kept small: each candidate costs one clause in the downstream lookup query.
// Legislation/regulation lead so the canonical guess comes first.
var (
	candidateSectors = []DocumentSector{SectorLegislation, SectorPreparatoryActs}
	candidateTypes   = []DocumentTypeCode{TypeRegulation, TypeDirective, TypeDecision, TypeBudget}
)

// CELEXNumber is a structured representation of a CELEX identifier.
// Format: {Sector}{Year}{TypeCode}{Number}[{Suffix}]
// Example: "32019R0947" = Sector 3, Year 2019, Regulation, Number 0947.
// A corrigendum suffix like "R(06)" may trail the number.
type CELEXNumber struct {
	Sector   DocumentSector   `json:"sector"`
	Year     string           `json:"year"`
	TypeCode DocumentTypeCode `json:"type_code"`
	Number   string           `json:"number"`
	Suffix   string           `json:"suffix,omitempty"`
}

// String returns the canonical CELEX string representation, including any suffix.
func (celexNumber CELEXNumber) String() string {
	return celexNumber.Base() + celexNumber.Suffix
}

// Base returns the canonical CELEX string without the revision suffix.
func (celexNumber CELEXNumber) Base() string {
	return string(celexNumber.Sector) + celexNumber.Year + string(celexNumber.TypeCode) + celexNumber.Number
}
