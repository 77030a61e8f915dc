package model

// Store holds all bookmarks and folders.
type Store struct {
	Folders   []Folder   `json:"folders"`
	Bookmarks []Bookmark `json:"bookmarks"`
}

// NewStore creates an empty Store with initialized slices.
func NewStore() *Store {
	return &Store{
		Folders:   []Folder{},
		Bookmarks: []Bookmark{},
	}
}

// GetFoldersInFolder returns folders with the given parent ID.
// Pass nil for root level folders.
func (s *Store) GetFoldersInFolder(parentID *string) []Folder {
	var result []Folder
	for _, f := range s.Folders {
		if ptrEqual(f.ParentID, parentID) {
			result = append(result, f)
		}
	}
	return result
}

// GetBookmarksInFolder returns bookmarks in the given folder, in insertion order.
// Pass nil for root level bookmarks.
func (s *Store) GetBookmarksInFolder(folderID *string) []Bookmark {
	var result []Bookmark
	for _, b := range s.Bookmarks {
		if ptrEqual(b.FolderID, folderID) {
			result = append(result, b)
		}
	}
	return result
}

// FindFoldersByName returns every folder whose name matches exactly,
// in insertion order.
func (s *Store) FindFoldersByName(name string) []Folder {
	var result []Folder
	for _, f := range s.Folders {
		if f.Name == name {
			result = append(result, f)
		}
	}
	return result
}

// GetFolderByID finds a folder by ID, returns nil if not found.
func (s *Store) GetFolderByID(id string) *Folder {
	for i := range s.Folders {
		if s.Folders[i].ID == id {
			return &s.Folders[i]
		}
	}
	return nil
}

// GetBookmarkByID finds a bookmark by ID, returns nil if not found.
func (s *Store) GetBookmarkByID(id string) *Bookmark {
	for i := range s.Bookmarks {
		if s.Bookmarks[i].ID == id {
			return &s.Bookmarks[i]
		}
	}
	return nil
}

// AddFolder appends a folder to the store.
func (s *Store) AddFolder(f Folder) {
	s.Folders = append(s.Folders, f)
}

// AddBookmark appends a bookmark to the store.
func (s *Store) AddBookmark(b Bookmark) {
	s.Bookmarks = append(s.Bookmarks, b)
}

// Remove deletes the bookmark or folder with the given ID.
// Removing a folder also removes everything nested below it.
// Returns false if nothing matched.
func (s *Store) Remove(id string) bool {
	for i := range s.Bookmarks {
		if s.Bookmarks[i].ID == id {
			s.Bookmarks = append(s.Bookmarks[:i], s.Bookmarks[i+1:]...)
			return true
		}
	}

	if s.GetFolderByID(id) == nil {
		return false
	}
	s.removeFolderTree(id)
	return true
}

// removeFolderTree removes a folder, its subfolders and all their bookmarks.
func (s *Store) removeFolderTree(id string) {
	for _, child := range s.GetFoldersInFolder(&id) {
		s.removeFolderTree(child.ID)
	}

	bookmarks := s.Bookmarks[:0]
	for _, b := range s.Bookmarks {
		if !b.InFolder(id) {
			bookmarks = append(bookmarks, b)
		}
	}
	s.Bookmarks = bookmarks

	folders := s.Folders[:0]
	for _, f := range s.Folders {
		if f.ID != id {
			folders = append(folders, f)
		}
	}
	s.Folders = folders
}

// ptrEqual compares two string pointers for equality.
func ptrEqual(a, b *string) bool {
	if a == nil && b == nil {
		return true
	}
	if a == nil || b == nil {
		return false
	}
	return *a == *b
}
