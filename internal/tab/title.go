package tab

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"golang.org/x/net/html"

	"github.com/nikbrunner/rl/internal/logger"
)

const maxPageBytes = 1 << 20

// TitleFetcher downloads a page and reads its <title>.
type TitleFetcher struct {
	client *http.Client
	log    logger.Logger
}

// NewTitleFetcher creates a TitleFetcher. A nil client gets a 5s timeout
// client, a nil log discards.
func NewTitleFetcher(client *http.Client, log logger.Logger) *TitleFetcher {
	if client == nil {
		client = &http.Client{Timeout: 5 * time.Second}
	}
	if log == nil {
		log = logger.Nop()
	}
	return &TitleFetcher{client: client, log: log}
}

// Fetch returns the page title of rawURL.
func (f *TitleFetcher) Fetch(ctx context.Context, rawURL string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "text/html")

	resp, err := f.client.Do(req)
	if err != nil {
		return "", err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("fetch %s: status %d", rawURL, resp.StatusCode)
	}

	return ExtractTitle(io.LimitReader(resp.Body, maxPageBytes))
}

// TitleOrEmpty is Fetch with failures logged and swallowed.
func (f *TitleFetcher) TitleOrEmpty(ctx context.Context, rawURL string) string {
	title, err := f.Fetch(ctx, rawURL)
	if err != nil {
		f.log.Warn("title fetch failed", logger.String("url", rawURL), logger.Error(err))
		return ""
	}
	return title
}

// ExtractTitle returns the whitespace-collapsed text of the document's
// first <title> outside of <svg>. Returns "" if there is none.
func ExtractTitle(r io.Reader) (string, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return "", err
	}

	var title string
	var find func(*html.Node) bool
	find = func(n *html.Node) bool {
		if n.Type == html.ElementNode {
			switch strings.ToLower(n.Data) {
			case "svg":
				return false
			case "title":
				title = strings.Join(strings.Fields(textContent(n)), " ")
				return true
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if find(c) {
				return true
			}
		}
		return false
	}
	find(doc)

	return title, nil
}

func textContent(n *html.Node) string {
	var b strings.Builder
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.TextNode {
			b.WriteString(c.Data)
		}
	}
	return b.String()
}
