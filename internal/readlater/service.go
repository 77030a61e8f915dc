package readlater

import (
	"context"
	"time"

	"github.com/nikbrunner/rl/internal/logger"
	"github.com/nikbrunner/rl/internal/model"
)

// Service runs reading list operations against the host store.
type Service struct {
	store    BookmarkStore
	tabs     TabQuery
	resolver *FolderResolver
	log      logger.Logger
}

// ServiceParams holds parameters for creating a Service.
type ServiceParams struct {
	Store      BookmarkStore
	Tabs       TabQuery      // optional, SaveCurrentTab fails without it
	FolderName string        // optional, defaults to DefaultFolderName
	Logger     logger.Logger // optional
}

// NewService creates a Service.
func NewService(params ServiceParams) *Service {
	log := params.Logger
	if log == nil {
		log = logger.Nop()
	}
	return &Service{
		store:    params.Store,
		tabs:     params.Tabs,
		resolver: NewFolderResolver(params.Store, params.FolderName),
		log:      log,
	}
}

// FolderName returns the reading list folder title.
func (s *Service) FolderName() string {
	return s.resolver.Name()
}

// Load returns the bookmarks in the reading list folder in listing order.
func (s *Service) Load(ctx context.Context) ([]model.Bookmark, error) {
	start := time.Now()

	folder, err := s.resolver.Resolve(ctx)
	if err != nil {
		return nil, s.fail(OpLoad, err)
	}

	bookmarks, err := s.store.GetChildren(ctx, folder.ID)
	if err != nil {
		return nil, s.fail(OpLoad, err)
	}

	s.log.Debug("loaded reading list",
		logger.String("folder", folder.ID),
		logger.Int("count", len(bookmarks)),
		logger.Duration("took", time.Since(start)),
	)
	return bookmarks, nil
}

// SaveCurrentTab bookmarks the active tab of the current window.
func (s *Service) SaveCurrentTab(ctx context.Context) (model.Bookmark, error) {
	if s.tabs == nil {
		return model.Bookmark{}, s.fail(OpSave, ErrNoActiveTab)
	}

	tabs, err := s.tabs.Query(ctx, TabFilter{Active: true, CurrentWindow: true})
	if err != nil {
		return model.Bookmark{}, s.fail(OpSave, err)
	}
	if len(tabs) == 0 {
		return model.Bookmark{}, s.fail(OpSave, ErrNoActiveTab)
	}

	return s.SaveTab(ctx, tabs[0])
}

// SaveTab bookmarks tab into the reading list. An empty title falls back to
// the URL.
func (s *Service) SaveTab(ctx context.Context, tab Tab) (model.Bookmark, error) {
	folder, err := s.resolver.Resolve(ctx)
	if err != nil {
		return model.Bookmark{}, s.fail(OpSave, err)
	}

	title := tab.Title
	if title == "" {
		title = tab.URL
	}

	folderID := folder.ID
	bookmark, err := s.store.CreateBookmark(ctx, model.NewBookmarkParams{
		Title:    title,
		URL:      tab.URL,
		FolderID: &folderID,
	})
	if err != nil {
		return model.Bookmark{}, s.fail(OpSave, err)
	}

	s.log.Info("saved tab", logger.String("id", bookmark.ID), logger.String("url", bookmark.URL))
	return bookmark, nil
}

// Remove deletes a bookmark by ID.
func (s *Service) Remove(ctx context.Context, id string) error {
	if err := s.store.Remove(ctx, id); err != nil {
		return s.fail(OpRemove, err)
	}
	s.log.Info("removed bookmark", logger.String("id", id))
	return nil
}

// MarkVisited records that a bookmark was opened at.
func (s *Service) MarkVisited(ctx context.Context, id string, at time.Time) error {
	if err := s.store.Touch(ctx, id, at); err != nil {
		return s.fail(OpVisit, err)
	}
	s.log.Debug("visited bookmark", logger.String("id", id))
	return nil
}

// Import adds bookmarks to the reading list, keeping their CreatedAt and
// skipping URLs already saved. Nothing is rolled back if a create fails
// midway.
func (s *Service) Import(ctx context.Context, bookmarks []model.Bookmark) (added, skipped int, err error) {
	folder, err := s.resolver.Resolve(ctx)
	if err != nil {
		return 0, 0, s.fail(OpImport, err)
	}

	existing, err := s.store.GetChildren(ctx, folder.ID)
	if err != nil {
		return 0, 0, s.fail(OpImport, err)
	}

	seen := make(map[string]bool, len(existing))
	for _, b := range existing {
		seen[b.URL] = true
	}

	folderID := folder.ID
	for _, b := range bookmarks {
		if seen[b.URL] {
			skipped++
			continue
		}
		if _, err := s.store.CreateBookmark(ctx, model.NewBookmarkParams{
			Title:     b.Title,
			URL:       b.URL,
			FolderID:  &folderID,
			Tags:      b.Tags,
			CreatedAt: b.CreatedAt,
		}); err != nil {
			return added, skipped, s.fail(OpImport, err)
		}
		seen[b.URL] = true
		added++
	}

	s.log.Info("imported bookmarks", logger.Int("added", added), logger.Int("skipped", skipped))
	return added, skipped, nil
}

func (s *Service) fail(op string, err error) error {
	err = wrapOp(op, err)
	s.log.Error("operation failed", logger.String("op", op), logger.Error(err))
	return err
}
