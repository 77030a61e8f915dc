// Package tab provides the "active tab" sources rl can save from: an explicit
// URL or the system clipboard.
package tab

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/atotto/clipboard"

	"github.com/nikbrunner/rl/internal/readlater"
)

var (
	ErrEmptyClipboard = errors.New("clipboard is empty")
	ErrInvalidURL     = errors.New("not an http(s) URL")
)

// ValidateURL trims raw and checks it is an absolute http(s) URL.
func ValidateURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	u, err := url.Parse(raw)
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrInvalidURL, raw)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return "", fmt.Errorf("%w: %q", ErrInvalidURL, raw)
	}
	return raw, nil
}

// Static is a tab query that always returns one fixed page.
type Static struct {
	URL    string
	Title  string
	Titles *TitleFetcher // optional, fills an empty Title
}

// Query implements readlater.TabQuery.
func (s Static) Query(ctx context.Context, _ readlater.TabFilter) ([]readlater.Tab, error) {
	return single(ctx, s.URL, s.Title, s.Titles)
}

// Clipboard is a tab query reading the page URL from the system clipboard.
type Clipboard struct {
	Read   func() (string, error)
	Titles *TitleFetcher // optional
}

// NewClipboard returns a Clipboard reading the system clipboard.
func NewClipboard(titles *TitleFetcher) Clipboard {
	return Clipboard{Read: clipboard.ReadAll, Titles: titles}
}

// Query implements readlater.TabQuery.
func (c Clipboard) Query(ctx context.Context, _ readlater.TabFilter) ([]readlater.Tab, error) {
	text, err := c.Read()
	if err != nil {
		return nil, fmt.Errorf("read clipboard: %w", err)
	}
	if strings.TrimSpace(text) == "" {
		return nil, ErrEmptyClipboard
	}
	return single(ctx, text, "", c.Titles)
}

func single(ctx context.Context, rawURL, title string, titles *TitleFetcher) ([]readlater.Tab, error) {
	u, err := ValidateURL(rawURL)
	if err != nil {
		return nil, err
	}
	if title == "" && titles != nil {
		title = titles.TitleOrEmpty(ctx, u)
	}
	return []readlater.Tab{{Title: title, URL: u}}, nil
}
