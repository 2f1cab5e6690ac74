package extract

import (
	"encoding/csv"
	"fmt"
	"io"
)

// Row is one emitted unit of document content together with the hierarchy
// snapshot taken when it was produced. Rows are immutable once appended to
// the output table; absent fields are empty strings and render as empty
// columns, never as a "None" literal.
type Row struct {
	Text      string   `json:"text"`
	Type      ItemType `json:"type"`
	Paragraph string   `json:"paragraph,omitempty"`
	Document  string   `json:"document,omitempty"`
	Section   string   `json:"section,omitempty"`
	Group     string   `json:"group,omitempty"`
	Article   string   `json:"article,omitempty"`
	Modifier  string   `json:"modifier,omitempty"`
}

// Rows is the ordered output table of an extraction run. Order follows the
// source document; it is never re-sorted.
type Rows []Row

// Header returns the column names of the tabular rendering.
func Header() []string {
	return []string{"text", "type", "paragraph", "document", "section", "group", "article", "modifier"}
}

// Records returns the rows as string records aligned with Header.
func (rows Rows) Records() [][]string {
	records := make([][]string, 0, len(rows))
	for _, row := range rows {
		records = append(records, []string{
			row.Text,
			string(row.Type),
			row.Paragraph,
			row.Document,
			row.Section,
			row.Group,
			row.Article,
			row.Modifier,
		})
	}
	return records
}

// WriteCSV writes the table, header included, to the writer.
func (rows Rows) WriteCSV(writer io.Writer) error {
	csvWriter := csv.NewWriter(writer)
	if err := csvWriter.Write(Header()); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	for _, record := range rows.Records() {
		if err := csvWriter.Write(record); err != nil {
			return fmt.Errorf("writing row: %w", err)
		}
	}
	csvWriter.Flush()
	return csvWriter.Error()
}

// Articles returns the distinct article labels in document order.
func (rows Rows) Articles() []string {
	seen := make(map[string]bool)
	var articles []string
	for _, row := range rows {
		if row.Article != "" && !seen[row.Article] {
			seen[row.Article] = true
			articles = append(articles, row.Article)
		}
	}
	return articles
}
