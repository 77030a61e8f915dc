package readlater

import (
	"fmt"
	"slices"
	"time"

	"github.com/nikbrunner/rl/internal/model"
)

// Bucket holds the bookmarks added on one calendar day.
type Bucket struct {
	Label     string
	Day       time.Time // local midnight of the bucket's day
	Bookmarks []model.Bookmark
}

// Count returns the number of bookmarks in the bucket.
func (b Bucket) Count() int {
	return len(b.Bookmarks)
}

// CountLabel renders "1 article" / "N articles".
func CountLabel(n int) string {
	if n == 1 {
		return "1 article"
	}
	return fmt.Sprintf("%d articles", n)
}

// Group partitions bookmarks into day buckets relative to now.
//
// Buckets keep the input order of their bookmarks. "Today" sorts first,
// "Yesterday" second, and every other day follows most recent first. Ordering
// compares the bucket's Day directly, labels are never parsed back.
func Group(bookmarks []model.Bookmark, now time.Time) []Bucket {
	if len(bookmarks) == 0 {
		return nil
	}

	loc := now.Location()
	ref := newDayRef(now, loc)

	var buckets []Bucket
	index := make(map[string]int)

	for _, b := range bookmarks {
		day := StartOfDay(b.CreatedAt, loc)
		label := labelForDay(day, ref)

		i, ok := index[label]
		if !ok {
			i = len(buckets)
			index[label] = i
			buckets = append(buckets, Bucket{Label: label, Day: day})
		}
		buckets[i].Bookmarks = append(buckets[i].Bookmarks, b)
	}

	slices.SortStableFunc(buckets, compareBuckets)
	return buckets
}

func compareBuckets(a, b Bucket) int {
	if ra, rb := labelRank(a.Label), labelRank(b.Label); ra != rb {
		return ra - rb
	}
	// newest first
	return b.Day.Compare(a.Day)
}

func labelRank(label string) int {
	switch label {
	case LabelToday:
		return 0
	case LabelYesterday:
		return 1
	default:
		return 2
	}
}
