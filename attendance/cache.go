package attendance

import (
	"strconv"
	"time"

	"github.com/cespare/xxhash/v2"
)

// =============================================================================
// CACHE - Memoized classifications
// =============================================================================

// Cache stores classification results by key. It is strictly an
// optimization: Clear may be called at any time. Implementations used by a
// shared Engine must be safe for concurrent use.
//
// IMPLEMENTATIONS:
//   - cache/memory.go: bounded in-process map
//   - cache.Disabled: never stores
type Cache interface {
	Get(key string) (ClassificationResult, bool)
	Put(key string, value ClassificationResult)
	Clear()
}

const (
	fieldSep  = "\x1f"
	recordSep = "\x1e"
)

// Fingerprint hashes every field of every record, in order. A record can
// affect dates other than its own, so the whole set is part of every key.
func Fingerprint(records []Record) string {
	h := xxhash.New()
	for _, r := range records {
		for _, field := range []string{
			r.Date,
			string(r.Type),
			r.StartTime,
			r.EndTime,
			strconv.Itoa(r.DaysOffset),
			strconv.Itoa(r.Hours),
			strconv.Itoa(r.Minutes),
			r.CustomerID,
			r.EmployeeID,
			stamp(r.UpdatedAt),
			stamp(r.CreatedAt),
		} {
			_, _ = h.WriteString(field)
			_, _ = h.WriteString(fieldSep)
		}
		_, _ = h.WriteString(recordSep)
	}
	return strconv.FormatUint(h.Sum64(), 16)
}

func stamp(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339Nano)
}

// CacheKey combines a date with a record-set fingerprint.
func CacheKey(date Date, fingerprint string) string {
	return date.String() + "|" + fingerprint
}
