package importer

import (
	"io"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/nikbrunner/rl/internal/model"
	"golang.org/x/net/html"
)

// Entry is a parsed bookmark together with the folder path it was found in.
type Entry struct {
	Bookmark model.Bookmark
	Path     []string // folder names from the root, empty = top level
}

// ParseHTMLBookmarks parses Netscape bookmark HTML, the format every browser
// exports, and returns the links in document order.
func ParseHTMLBookmarks(r io.Reader) ([]Entry, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, err
	}

	var entries []Entry

	// Track current folder names for hierarchy
	var path []string
	var pendingFolder string // folder waiting to be pushed on next DL

	var parse func(*html.Node)
	parse = func(n *html.Node) {
		if n.Type == html.ElementNode {
			switch strings.ToLower(n.Data) {
			case "h3":
				pendingFolder = getTextContent(n)
				return

			case "a":
				href := getAttr(n, "href")
				if href == "" {
					return
				}

				title := getTextContent(n)
				if title == "" {
					title = href
				}

				// zero CreatedAt lets the store stamp the import time
				var createdAt time.Time
				if addDate := getAttr(n, "add_date"); addDate != "" {
					if ts, err := strconv.ParseInt(addDate, 10, 64); err == nil {
						createdAt = time.Unix(ts, 0)
					}
				}

				entries = append(entries, Entry{
					Bookmark: model.Bookmark{
						Title:     title,
						URL:       href,
						Tags:      parseTags(getAttr(n, "tags")),
						CreatedAt: createdAt,
					},
					Path: slices.Clone(path),
				})
				return

			case "dl":
				pushed := false
				if pendingFolder != "" {
					path = append(path, pendingFolder)
					pendingFolder = ""
					pushed = true
				}

				for c := n.FirstChild; c != nil; c = c.NextSibling {
					parse(c)
				}

				if pushed {
					path = path[:len(path)-1]
				}
				return
			}
		}

		for c := n.FirstChild; c != nil; c = c.NextSibling {
			parse(c)
		}
	}

	parse(doc)
	return entries, nil
}

// InFolder returns the bookmarks of entries that sit anywhere below a folder
// called name. An empty name returns every bookmark.
func InFolder(entries []Entry, name string) []model.Bookmark {
	var result []model.Bookmark
	for _, e := range entries {
		if name == "" || slices.Contains(e.Path, name) {
			result = append(result, e.Bookmark)
		}
	}
	return result
}

func parseTags(raw string) []string {
	tags := []string{}
	for _, t := range strings.Split(raw, ",") {
		if t = strings.TrimSpace(t); t != "" {
			tags = append(tags, t)
		}
	}
	return tags
}

// getTextContent returns the text content of a node.
func getTextContent(n *html.Node) string {
	var text strings.Builder
	var extract func(*html.Node)
	extract = func(n *html.Node) {
		if n.Type == html.TextNode {
			text.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			extract(c)
		}
	}
	extract(n)
	return strings.TrimSpace(text.String())
}

// getAttr returns the value of an attribute, case-insensitive.
func getAttr(n *html.Node, key string) string {
	key = strings.ToLower(key)
	for _, attr := range n.Attr {
		if strings.ToLower(attr.Key) == key {
			return attr.Val
		}
	}
	return ""
}
