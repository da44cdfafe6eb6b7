package tableview

import (
	"sync"
	"time"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Comparator orders two records: negative when a sorts before b.
type Comparator[T any] func(a, b T) int

var (
	collMu sync.Mutex
	coll   = collate.New(language.English)
)

// CompareText compares two strings with locale-aware collation, matching
// what the table headers promise for text columns. The collator keeps
// internal buffers, hence the lock.
func CompareText(a, b string) int {
	collMu.Lock()
	defer collMu.Unlock()
	return coll.CompareString(a, b)
}

// CompareTime orders two instants chronologically.
func CompareTime(a, b time.Time) int {
	switch {
	case a.Before(b):
		return -1
	case a.After(b):
		return 1
	default:
		return 0
	}
}
