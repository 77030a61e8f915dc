// Package readlater implements the reading list: resolving the "Read Later"
// folder in a bookmark store, saving the active tab into it and grouping the
// saved bookmarks by the calendar day they were added.
//
// The bookmark store and the tab source are injected through the
// BookmarkStore and TabQuery interfaces, so everything here runs without a
// live host.
package readlater
