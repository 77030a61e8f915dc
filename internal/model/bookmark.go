package model

import "time"

// Bookmark represents a saved URL with metadata.
type Bookmark struct {
	ID        string     `json:"id"`
	Title     string     `json:"title"`
	URL       string     `json:"url"`
	FolderID  *string    `json:"folderId"` // nil = root level
	Tags      []string   `json:"tags"`
	CreatedAt time.Time  `json:"createdAt"`
	VisitedAt *time.Time `json:"visitedAt"` // nil = never visited
}

// NewBookmarkParams holds parameters for creating a new Bookmark.
type NewBookmarkParams struct {
	Title     string
	URL       string
	FolderID  *string
	Tags      []string
	CreatedAt time.Time // zero = now
}

// NewBookmark creates a Bookmark with generated UUID and timestamps.
func NewBookmark(params NewBookmarkParams) Bookmark {
	tags := params.Tags
	if tags == nil {
		tags = []string{}
	}

	createdAt := params.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now()
	}

	return Bookmark{
		ID:        GenerateUUID(),
		Title:     params.Title,
		URL:       params.URL,
		FolderID:  params.FolderID,
		Tags:      tags,
		CreatedAt: createdAt,
		VisitedAt: nil,
	}
}

// InFolder reports whether the bookmark lives directly in the given folder.
func (b Bookmark) InFolder(folderID string) bool {
	return b.FolderID != nil && *b.FolderID == folderID
}
