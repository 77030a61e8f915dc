package printers

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/nikbrunner/rl/internal/model"
	"github.com/nikbrunner/rl/internal/readlater"
)

// PrettyPrint writes the reading list grouped by day.
type PrettyPrint struct {
	Out    io.Writer
	ShowID bool
}

var (
	spacing = strings.Repeat(" ", len("00000000-0000-0000-0000-000000000000  "))
)

func (pp *PrettyPrint) NewLine() {
	_, _ = fmt.Fprintln(pp.Out)
}

// Buckets prints every bucket, articles included.
func (pp *PrettyPrint) Buckets(buckets []readlater.Bucket) {
	if len(buckets) == 0 {
		pp.Empty()
		return
	}
	for i, b := range buckets {
		if i > 0 {
			pp.NewLine()
		}
		pp.TitleWithCount(b.Label, b.Count())
		for _, bm := range b.Bookmarks {
			pp.Article(bm)
		}
	}
}

func (pp *PrettyPrint) TitleWithCount(title string, count int) {
	t := color.New(color.Bold, color.Underline)
	c := color.New(color.Faint)

	if pp.ShowID {
		_, _ = t.Fprint(pp.Out, spacing)
	}
	_, _ = t.Fprint(pp.Out, title)
	_, _ = c.Fprintf(pp.Out, " - %s\n", readlater.CountLabel(count))
}

// Article prints one article, marking it when it was opened before.
func (pp *PrettyPrint) Article(b model.Bookmark) {
	id := color.New(color.Faint)
	title := color.New()
	url := color.New(color.FgCyan, color.Faint)
	mark := "  "
	if b.VisitedAt != nil {
		title = color.New(color.Faint)
		mark = "✓ "
	}

	if pp.ShowID {
		_, _ = id.Fprintf(pp.Out, "%-38s", b.ID)
	}
	_, _ = title.Fprintf(pp.Out, "%s%s\n", mark, b.Title)

	if pp.ShowID {
		_, _ = id.Fprint(pp.Out, spacing)
	}
	_, _ = url.Fprintf(pp.Out, "    %s\n", b.URL)
}

func (pp *PrettyPrint) Empty() {
	f := color.New(color.Faint, color.Italic)
	_, _ = f.Fprintln(pp.Out, "No saved articles yet")
}

// Saved confirms a newly saved article.
func (pp *PrettyPrint) Saved(b model.Bookmark) {
	ok := color.New(color.FgGreen, color.Bold)
	_, _ = ok.Fprint(pp.Out, "Saved ")
	_, _ = fmt.Fprintln(pp.Out, b.Title)
	_, _ = color.New(color.FgCyan, color.Faint).Fprintf(pp.Out, "  %s\n", b.URL)
}
