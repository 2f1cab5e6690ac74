package extract

import (
	"reflect"
	"strings"
	"testing"
)

func TestHeader(t *testing.T) {
	expected := []string{"text", "type", "paragraph", "document", "section", "group", "article", "modifier"}
	if !reflect.DeepEqual(Header(), expected) {
		t.Errorf("Header(): got %v, want %v", Header(), expected)
	}
}

func TestRows_Records(t *testing.T) {
	rows := Rows{
		{Text: "First", Type: ItemText, Paragraph: "1", Document: "REGULATION", Article: "1"},
		{Text: "ANNEX I", Type: ItemAnnexTitle, Document: "REGULATION"},
	}

	records := rows.Records()
	expected := [][]string{
		{"First", "text", "1", "REGULATION", "", "", "1", ""},
		{"ANNEX I", "annex-title", "", "REGULATION", "", "", "", ""},
	}
	if !reflect.DeepEqual(records, expected) {
		t.Errorf("Records():\n got %v\nwant %v", records, expected)
	}
}

// Absent fields render as empty columns, never as a "None" literal.
func TestRows_WriteCSV(t *testing.T) {
	rows := Rows{
		{Text: "Body text", Type: ItemText, Paragraph: "1", Document: "REGULATION", Section: "TITLE I", Article: "1"},
	}

	var output strings.Builder
	if err := rows.WriteCSV(&output); err != nil {
		t.Fatalf("WriteCSV failed: %v", err)
	}

	lines := strings.Split(strings.TrimRight(output.String(), "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("line count: got %d, want 2", len(lines))
	}
	if lines[0] != "text,type,paragraph,document,section,group,article,modifier" {
		t.Errorf("header line: got %q", lines[0])
	}
	if lines[1] != "Body text,text,1,REGULATION,TITLE I,,1," {
		t.Errorf("data line: got %q", lines[1])
	}
	if strings.Contains(output.String(), "None") {
		t.Error(`absent fields must render empty, not as "None"`)
	}
}

func TestRows_Articles(t *testing.T) {
	rows := Rows{
		{Text: "preamble", Type: ItemText},
		{Text: "a", Type: ItemText, Article: "1"},
		{Text: "b", Type: ItemText, Article: "1"},
		{Text: "c", Type: ItemText, Article: "2"},
	}

	if articles := rows.Articles(); !reflect.DeepEqual(articles, []string{"1", "2"}) {
		t.Errorf("Articles(): got %v, want [1 2]", articles)
	}
}
