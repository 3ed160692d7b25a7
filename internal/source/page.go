// ABOUTME: Offset/limit pagination over an in-memory slice.
// ABOUTME: Clamps offset and limit against a maximum page size.
package source

// DefaultMaxPageSize caps a page when the caller does not configure one.
const DefaultMaxPageSize = 50

// Page returns the window of items starting at offset. Negative offsets are
// treated as 0; a limit that is non-positive or above maxPage becomes maxPage.
// The effective offset and limit are returned alongside the window.
func Page[T any](items []T, offset, limit, maxPage int) ([]T, int, int) {
	if maxPage <= 0 {
		maxPage = DefaultMaxPageSize
	}
	if offset < 0 {
		offset = 0
	}
	if limit <= 0 || limit > maxPage {
		limit = maxPage
	}

	if offset >= len(items) {
		return []T{}, offset, limit
	}
	end := min(offset+limit, len(items))
	return items[offset:end], offset, limit
}
