package celex

import (
	"fmt"
	"regexp"
	"sort"
	"strings"
)

// EURLexPrefixes maps the namespace prefixes used by the EUR-Lex Cellar
// vocabulary to their full IRIs. Consumed by external lookup layers to build
// queries and to render query results compactly.
var EURLexPrefixes = map[string]string{
	"cdm":    "http://publications.europa.eu/ontology/cdm#",
	"celex":  "http://publications.europa.eu/resource/celex/",
	"cellar": "http://publications.europa.eu/resource/cellar/",
	"at":     "http://publications.europa.eu/ontology/annotation#",
	"dc":     "http://purl.org/dc/elements/1.1/",
	"owl":    "http://www.w3.org/2002/07/owl#",
	"rdf":    "http://www.w3.org/1999/02/22-rdf-syntax-ns#",
	"rdfs":   "http://www.w3.org/2000/01/rdf-schema#",
	"skos":   "http://www.w3.org/2004/02/skos/core#",
	"xsd":    "http://www.w3.org/2001/XMLSchema#",
}

// PrependPrefixes returns the query with a PREFIX declaration for every entry
// in EURLexPrefixes prepended, in stable alphabetical order.
func PrependPrefixes(query string) string {
	prefixes := make([]string, 0, len(EURLexPrefixes))
	for prefix := range EURLexPrefixes {
		prefixes = append(prefixes, prefix)
	}
	sort.Strings(prefixes)

	var builder strings.Builder
	for _, prefix := range prefixes {
		fmt.Fprintf(&builder, "PREFIX %s: <%s>\n", prefix, EURLexPrefixes[prefix])
	}
	builder.WriteString(query)
	return builder.String()
}

// SimplifyIRI collapses a full IRI to its prefixed form ("cdm:work") using the
// longest matching namespace from EURLexPrefixes. IRIs with no known namespace
// are returned unchanged.
func SimplifyIRI(iri string) string {
	bestPrefix := ""
	bestNamespace := ""
	for prefix, namespace := range EURLexPrefixes {
		if strings.HasPrefix(iri, namespace) && len(namespace) > len(bestNamespace) {
			bestPrefix = prefix
			bestNamespace = namespace
		}
	}
	if bestPrefix == "" {
		return iri
	}
	return bestPrefix + ":" + iri[len(bestNamespace):]
}

// CELEXResourceURL returns the Cellar resource URL for a CELEX identifier.
func CELEXResourceURL(celexID string) string {
	return EURLexPrefixes["celex"] + celexID
}

// CellarResourceURL returns the Cellar resource URL for a Cellar UUID.
func CellarResourceURL(cellarID string) string {
	return EURLexPrefixes["cellar"] + cellarID
}

// IdentifierKind discriminates the identifier formats accepted by EUR-Lex.
type IdentifierKind string

const (
	IdentifierCELEX   IdentifierKind = "celex"
	IdentifierCellar  IdentifierKind = "cellar"
	IdentifierUnknown IdentifierKind = "unknown"
)

// cellarIDPattern matches Cellar UUIDs (standard 8-4-4-4-12 hex form).
var cellarIDPattern = regexp.MustCompile(`^[0-9a-f]{8}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{12}$`)

// DetectIDType reports which identifier format the string uses: a CELEX
// identifier, a Cellar UUID, or neither.
func DetectIDType(identifier string) IdentifierKind {
	if IsValidCELEXID(identifier) {
		return IdentifierCELEX
	}
	if cellarIDPattern.MatchString(strings.ToLower(identifier)) {
		return IdentifierCellar
	}
	return IdentifierUnknown
}
