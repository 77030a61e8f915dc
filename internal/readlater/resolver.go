package readlater

import (
	"context"
	"fmt"

	"golang.org/x/sync/singleflight"

	"github.com/nikbrunner/rl/internal/model"
)

// DefaultFolderName is the folder that holds the reading list.
const DefaultFolderName = "Read Later"

// FolderResolver finds the reading list folder, creating it on first use.
type FolderResolver struct {
	store BookmarkStore
	name  string
	group singleflight.Group
}

// NewFolderResolver creates a resolver for the folder called name.
// An empty name falls back to DefaultFolderName.
func NewFolderResolver(store BookmarkStore, name string) *FolderResolver {
	if name == "" {
		name = DefaultFolderName
	}
	return &FolderResolver{store: store, name: name}
}

// Name returns the folder title being resolved.
func (r *FolderResolver) Name() string {
	return r.name
}

// Resolve returns the first folder titled Name, creating one if none exists.
// Concurrent calls share one lookup, so they never race to create duplicates.
func (r *FolderResolver) Resolve(ctx context.Context) (model.Folder, error) {
	v, err, _ := r.group.Do(r.name, func() (interface{}, error) {
		return r.resolve(ctx)
	})
	if err != nil {
		return model.Folder{}, err
	}
	return v.(model.Folder), nil
}

func (r *FolderResolver) resolve(ctx context.Context) (model.Folder, error) {
	folders, err := r.store.SearchFolders(ctx, r.name)
	if err != nil {
		return model.Folder{}, fmt.Errorf("search folder %q: %w", r.name, err)
	}
	if len(folders) > 0 {
		return folders[0], nil
	}

	folder, err := r.store.CreateFolder(ctx, model.NewFolderParams{Name: r.name})
	if err != nil {
		return model.Folder{}, fmt.Errorf("create folder %q: %w", r.name, err)
	}
	return folder, nil
}
