package exporter

import (
	"fmt"
	"html"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/nikbrunner/rl/internal/readlater"
)

// DefaultExportPath returns the default export file path.
// Format: ~/Downloads/read-later-YYYY-MM-DD.html
func DefaultExportPath(now time.Time) (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	filename := fmt.Sprintf("read-later-%s.html", now.Format("2006-01-02"))
	return filepath.Join(home, "Downloads", filename), nil
}

// ExportHTML writes grouped buckets as Netscape bookmark HTML. The reading list
// becomes a folder named folder with one sub folder per day, so any browser
// import recreates the same grouping.
func ExportHTML(folder string, buckets []readlater.Bucket) string {
	var b strings.Builder

	// Header
	b.WriteString("<!DOCTYPE NETSCAPE-Bookmark-file-1>\n")
	b.WriteString("<META HTTP-EQUIV=\"Content-Type\" CONTENT=\"text/html; charset=UTF-8\">\n")
	b.WriteString("<TITLE>Bookmarks</TITLE>\n")
	b.WriteString("<H1>Bookmarks</H1>\n")
	b.WriteString("<DL><p>\n")

	fmt.Fprintf(&b, "    <DT><H3>%s</H3>\n", html.EscapeString(folder))
	b.WriteString("    <DL><p>\n")
	for _, bucket := range buckets {
		writeBucket(&b, bucket, 2)
	}
	b.WriteString("    </DL><p>\n")

	// Footer
	b.WriteString("</DL><p>\n")

	return b.String()
}

func writeBucket(b *strings.Builder, bucket readlater.Bucket, indent int) {
	prefix := strings.Repeat("    ", indent)

	fmt.Fprintf(b, "%s<DT><H3 ADD_DATE=\"%d\">%s</H3>\n", prefix, bucket.Day.Unix(), html.EscapeString(bucket.Label))
	fmt.Fprintf(b, "%s<DL><p>\n", prefix)

	for _, bookmark := range bucket.Bookmarks {
		tags := ""
		if len(bookmark.Tags) > 0 {
			tags = fmt.Sprintf(" TAGS=\"%s\"", html.EscapeString(strings.Join(bookmark.Tags, ",")))
		}
		fmt.Fprintf(b,
			"%s    <DT><A HREF=\"%s\" ADD_DATE=\"%d\"%s>%s</A>\n",
			prefix,
			html.EscapeString(bookmark.URL),
			bookmark.CreatedAt.Unix(),
			tags,
			html.EscapeString(bookmark.Title),
		)
	}

	fmt.Fprintf(b, "%s</DL><p>\n", prefix)
}
