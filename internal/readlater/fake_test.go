package readlater_test

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/nikbrunner/rl/internal/model"
	"github.com/nikbrunner/rl/internal/readlater"
)

// fakeStore is an in-memory BookmarkStore with failure injection.
type fakeStore struct {
	mu    sync.Mutex
	store *model.Store

	searchDelay time.Duration
	searches    int
	creates     int

	failSearch   error
	failCreate   error
	failChildren error
	failRemove   error
}

func newFakeStore() *fakeStore {
	return &fakeStore{store: model.NewStore()}
}

func (f *fakeStore) SearchFolders(_ context.Context, title string) ([]model.Folder, error) {
	if f.searchDelay > 0 {
		time.Sleep(f.searchDelay)
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.searches++
	if f.failSearch != nil {
		return nil, f.failSearch
	}
	return f.store.FindFoldersByName(title), nil
}

func (f *fakeStore) CreateFolder(_ context.Context, params model.NewFolderParams) (model.Folder, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failCreate != nil {
		return model.Folder{}, f.failCreate
	}
	f.creates++
	folder := model.NewFolder(params)
	f.store.AddFolder(folder)
	return folder, nil
}

func (f *fakeStore) CreateBookmark(_ context.Context, params model.NewBookmarkParams) (model.Bookmark, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failCreate != nil {
		return model.Bookmark{}, f.failCreate
	}
	b := model.NewBookmark(params)
	f.store.AddBookmark(b)
	return b, nil
}

func (f *fakeStore) GetChildren(_ context.Context, folderID string) ([]model.Bookmark, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failChildren != nil {
		return nil, f.failChildren
	}
	return f.store.GetBookmarksInFolder(&folderID), nil
}

func (f *fakeStore) Remove(_ context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failRemove != nil {
		return f.failRemove
	}
	if !f.store.Remove(id) {
		return errors.New("bookmark not found")
	}
	return nil
}

func (f *fakeStore) Touch(_ context.Context, id string, at time.Time) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	b := f.store.GetBookmarkByID(id)
	if b == nil {
		return errors.New("bookmark not found")
	}
	b.VisitedAt = &at
	return nil
}

func staticTabs(tabs ...readlater.Tab) readlater.TabQuery {
	return readlater.TabQueryFunc(func(context.Context, readlater.TabFilter) ([]readlater.Tab, error) {
		return tabs, nil
	})
}
