package celex

import "testing"

func TestParseCELEX(t *testing.T) {
	cases := []struct {
		name       string
		identifier string
		expected   CELEXNumber
	}{
		{
			name:       "standard_regulation",
			identifier: "32019R0947",
			expected: CELEXNumber{
				Sector:   SectorLegislation,
				Year:     "2019",
				TypeCode: TypeRegulation,
				Number:   "0947",
			},
		},
		{
			name:       "directive_with_corrigendum_suffix",
			identifier: "32012L0029R(06)",
			expected: CELEXNumber{
				Sector:   SectorLegislation,
				Year:     "2012",
				TypeCode: TypeDirective,
				Number:   "0029",
				Suffix:   "R(06)",
			},
		},
		{
			name:       "preparatory_act_two_letter_type_five_digit_number",
			identifier: "52026XG00745",
			expected: CELEXNumber{
				Sector:   SectorPreparatoryActs,
				Year:     "2026",
				TypeCode: "XG",
				Number:   "00745",
			},
		},
		{
			name:       "budget_type_five_digit_number",
			identifier: "32026B00249",
			expected: CELEXNumber{
				Sector:   SectorLegislation,
				Year:     "2026",
				TypeCode: TypeBudget,
				Number:   "00249",
			},
		},
		{
			name:       "gdpr",
			identifier: "32016R0679",
			expected: CELEXNumber{
				Sector:   SectorLegislation,
				Year:     "2016",
				TypeCode: TypeRegulation,
				Number:   "0679",
			},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			celexNumber, ok := ParseCELEX(tc.identifier)
			if !ok {
				t.Fatalf("ParseCELEX(%q): expected success", tc.identifier)
			}
			if celexNumber != tc.expected {
				t.Errorf("ParseCELEX(%q): got %+v, want %+v", tc.identifier, celexNumber, tc.expected)
			}
			if celexNumber.String() != tc.identifier {
				t.Errorf("String(): got %q, want %q", celexNumber.String(), tc.identifier)
			}
		})
	}
}

func TestParseCELEX_Rejects(t *testing.T) {
	cases := []struct {
		name       string
		identifier string
	}{
		{name: "oj_series_reference", identifier: "C/2026/00064"},
		{name: "empty_string", identifier: ""},
		{name: "free_text", identifier: "not-a-celex-id"},
		{name: "year_before_digitization", identifier: "31800R0001"},
		{name: "unknown_type_code", identifier: "32019Z0947"},
		{name: "number_too_short", identifier: "32019R947"},
		{name: "number_too_long", identifier: "32019R094712"},
		{name: "lowercase_type", identifier: "32019r0947"},
		{name: "trailing_garbage", identifier: "32019R0947xyz"},
		{name: "sector_zero", identifier: "02019R0947"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			celexNumber, ok := ParseCELEX(tc.identifier)
			if ok {
				t.Errorf("ParseCELEX(%q): expected rejection, got %+v", tc.identifier, celexNumber)
			}
			if celexNumber != (CELEXNumber{}) {
				t.Errorf("ParseCELEX(%q): rejected parse must not populate fields, got %+v", tc.identifier, celexNumber)
			}
		})
	}
}

func TestIsValidCELEXID(t *testing.T) {
	valid := []string{"32019R0947", "32012L0029R(06)", "52026XG00745", "32026B00249"}
	for _, identifier := range valid {
		if !IsValidCELEXID(identifier) {
			t.Errorf("IsValidCELEXID(%q): got false, want true", identifier)
		}
	}

	invalid := []string{"C/2026/00064", "", "invalid"}
	for _, identifier := range invalid {
		if IsValidCELEXID(identifier) {
			t.Errorf("IsValidCELEXID(%q): got true, want false", identifier)
		}
	}
}

func TestBase_ExcludesSuffix(t *testing.T) {
	celexNumber, ok := ParseCELEX("32012L0029R(06)")
	if !ok {
		t.Fatal("ParseCELEX failed")
	}
	if celexNumber.Base() != "32012L0029" {
		t.Errorf("Base(): got %q, want %q", celexNumber.Base(), "32012L0029")
	}
}
