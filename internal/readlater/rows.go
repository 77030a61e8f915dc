package readlater

import "github.com/nikbrunner/rl/internal/model"

// RowKind distinguishes day headers from articles in the list.
type RowKind int

const (
	RowDay RowKind = iota
	RowArticle
)

// Row is one line of the reading list: a day header or an article below it.
type Row struct {
	Kind     RowKind
	Label    string // day label, set for both kinds
	Count    int    // articles in the day, day rows only
	Expanded bool   // day rows only
	Bookmark *model.Bookmark
}

// IsDay returns true if this row is a day header.
func (r Row) IsDay() bool {
	return r.Kind == RowDay
}

// Title returns a display title for the row.
func (r Row) Title() string {
	if r.Kind == RowDay {
		return r.Label
	}
	return r.Bookmark.Title
}

// Rows flattens buckets into display rows, listing the articles of expanded
// days. expandAll shows every day regardless of expansion, used while
// filtering and by the search picker.
func Rows(buckets []Bucket, expansion ExpansionState, expandAll bool) []Row {
	var rows []Row
	for _, bucket := range buckets {
		expanded := expandAll || expansion.IsExpanded(bucket.Label)
		rows = append(rows, Row{
			Kind:     RowDay,
			Label:    bucket.Label,
			Count:    bucket.Count(),
			Expanded: expanded,
		})
		if !expanded {
			continue
		}
		for i := range bucket.Bookmarks {
			rows = append(rows, Row{
				Kind:     RowArticle,
				Label:    bucket.Label,
				Bookmark: &bucket.Bookmarks[i],
			})
		}
	}
	return rows
}
