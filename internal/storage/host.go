package storage

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/nikbrunner/rl/internal/model"
)

// Host is a bookmark store backed by a Storage. Every operation reloads the
// backend, so changes from another rl process are picked up, and mutations
// are saved before returning. Operations are serialized.
type Host struct {
	mu      sync.Mutex
	backend Storage
}

// NewHost creates a Host over backend.
func NewHost(backend Storage) *Host {
	return &Host{backend: backend}
}

// Close closes the backend.
func (h *Host) Close() error {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.backend.Close()
}

// SearchFolders returns folders named exactly title, in creation order.
func (h *Host) SearchFolders(ctx context.Context, title string) ([]model.Folder, error) {
	var folders []model.Folder
	err := h.view(ctx, func(s *model.Store) error {
		folders = s.FindFoldersByName(title)
		return nil
	})
	return folders, err
}

// CreateFolder adds a folder. A non-nil ParentID must exist.
func (h *Host) CreateFolder(ctx context.Context, params model.NewFolderParams) (model.Folder, error) {
	var folder model.Folder
	err := h.update(ctx, func(s *model.Store) error {
		if params.ParentID != nil && s.GetFolderByID(*params.ParentID) == nil {
			return fmt.Errorf("parent folder %s: %w", *params.ParentID, ErrNotFound)
		}
		folder = model.NewFolder(params)
		s.AddFolder(folder)
		return nil
	})
	return folder, err
}

// CreateBookmark adds a bookmark. A non-nil FolderID must exist.
func (h *Host) CreateBookmark(ctx context.Context, params model.NewBookmarkParams) (model.Bookmark, error) {
	if params.URL == "" {
		return model.Bookmark{}, ErrInvalidURL
	}

	var bookmark model.Bookmark
	err := h.update(ctx, func(s *model.Store) error {
		if params.FolderID != nil && s.GetFolderByID(*params.FolderID) == nil {
			return fmt.Errorf("folder %s: %w", *params.FolderID, ErrNotFound)
		}
		bookmark = model.NewBookmark(params)
		s.AddBookmark(bookmark)
		return nil
	})
	return bookmark, err
}

// GetChildren lists the bookmarks in folderID in insertion order.
func (h *Host) GetChildren(ctx context.Context, folderID string) ([]model.Bookmark, error) {
	var bookmarks []model.Bookmark
	err := h.view(ctx, func(s *model.Store) error {
		if s.GetFolderByID(folderID) == nil {
			return fmt.Errorf("folder %s: %w", folderID, ErrNotFound)
		}
		bookmarks = s.GetBookmarksInFolder(&folderID)
		return nil
	})
	return bookmarks, err
}

// Remove deletes a bookmark, or a folder with everything inside it.
func (h *Host) Remove(ctx context.Context, id string) error {
	return h.update(ctx, func(s *model.Store) error {
		if !s.Remove(id) {
			return fmt.Errorf("bookmark %s: %w", id, ErrNotFound)
		}
		return nil
	})
}

// Touch records a visit to a bookmark.
func (h *Host) Touch(ctx context.Context, id string, at time.Time) error {
	return h.update(ctx, func(s *model.Store) error {
		b := s.GetBookmarkByID(id)
		if b == nil {
			return fmt.Errorf("bookmark %s: %w", id, ErrNotFound)
		}
		b.VisitedAt = &at
		return nil
	})
}

func (h *Host) view(ctx context.Context, fn func(*model.Store) error) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return err
	}
	store, err := h.backend.Load()
	if err != nil {
		return fmt.Errorf("load store: %w", err)
	}
	return fn(store)
}

func (h *Host) update(ctx context.Context, fn func(*model.Store) error) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return err
	}
	store, err := h.backend.Load()
	if err != nil {
		return fmt.Errorf("load store: %w", err)
	}
	if err := fn(store); err != nil {
		return err
	}
	if err := h.backend.Save(store); err != nil {
		return fmt.Errorf("save store: %w", err)
	}
	return nil
}
