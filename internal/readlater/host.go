package readlater

import (
	"context"
	"time"

	"github.com/nikbrunner/rl/internal/model"
)

// BookmarkStore is the host bookmark store. Implementations serialize their
// own operations.
type BookmarkStore interface {
	// SearchFolders returns folders whose title matches exactly.
	SearchFolders(ctx context.Context, title string) ([]model.Folder, error)
	CreateFolder(ctx context.Context, params model.NewFolderParams) (model.Folder, error)
	CreateBookmark(ctx context.Context, params model.NewBookmarkParams) (model.Bookmark, error)
	// GetChildren lists the bookmarks directly inside a folder in listing order.
	GetChildren(ctx context.Context, folderID string) ([]model.Bookmark, error)
	Remove(ctx context.Context, id string) error
	// Touch records that a bookmark was opened at the given time.
	Touch(ctx context.Context, id string, at time.Time) error
}

// Tab is a browsable page with a title and URL.
type Tab struct {
	Title string
	URL   string
}

// TabFilter narrows a tab query.
type TabFilter struct {
	Active        bool
	CurrentWindow bool
}

// TabQuery lists tabs matching a filter.
type TabQuery interface {
	Query(ctx context.Context, filter TabFilter) ([]Tab, error)
}

// TabQueryFunc adapts a function to TabQuery.
type TabQueryFunc func(ctx context.Context, filter TabFilter) ([]Tab, error)

// Query implements TabQuery.
func (f TabQueryFunc) Query(ctx context.Context, filter TabFilter) ([]Tab, error) {
	return f(ctx, filter)
}
