// Package pagination slices a list into fixed-size pages and builds the windowed
// page-number controls shown beneath it.
package pagination

const (
	// NarrowMaxVisible caps page controls below NarrowWidth.
	NarrowMaxVisible = 5
	// WideMaxVisible caps page controls at or above NarrowWidth.
	WideMaxVisible = 7
	// NarrowWidth is the viewport width, in pixels, under which the narrow cap applies.
	NarrowWidth = 768

	// windowRadius is how many pages either side of the current page are shown.
	windowRadius = 2
	// edgeRun is the last page of the contiguous run shown near the start.
	edgeRun = 5
)

// TotalPages returns ceil(itemCount/pageSize). Zero items means zero pages.
func TotalPages(itemCount, pageSize int) int {
	if itemCount <= 0 {
		return 0
	}
	if pageSize < 1 {
		pageSize = 1
	}
	return (itemCount + pageSize - 1) / pageSize
}

// Slice returns the items on page, using the half-open range [(page-1)*size, page*size)
// clipped to items. Pages outside the list yield an empty slice.
func Slice[T any](items []T, pageSize, page int) []T {
	if pageSize < 1 {
		pageSize = 1
	}
	if page < 1 {
		return []T{}
	}
	start := (page - 1) * pageSize
	if start >= len(items) {
		return []T{}
	}
	end := start + pageSize
	if end > len(items) {
		end = len(items)
	}
	return items[start:end:end]
}

// Navigate returns target when it is a valid page, otherwise current unchanged.
func Navigate(current, target, totalPages int) int {
	if target < 1 || target > totalPages {
		return current
	}
	return target
}

// Clamp pins page into [1, max(1, totalPages)].
func Clamp(page, totalPages int) int {
	upper := totalPages
	if upper < 1 {
		upper = 1
	}
	if page < 1 {
		return 1
	}
	if page > upper {
		return upper
	}
	return page
}

// MaxVisibleForWidth picks the control cap for a viewport width. Unknown widths (<= 0) use the wide cap.
func MaxVisibleForWidth(width int) int {
	if width > 0 && width < NarrowWidth {
		return NarrowMaxVisible
	}
	return WideMaxVisible
}

// ShouldShowControls reports whether more than one page worth of items exists.
func ShouldShowControls(itemCount, pageSize int) bool {
	if pageSize < 1 {
		pageSize = 1
	}
	return itemCount > pageSize
}

// Range returns the 1-based positions of the first and last item on page,
// as in "Showing first-last of n". Both are zero when the page is empty.
func Range(itemCount, pageSize, page int) (first, last int) {
	if pageSize < 1 {
		pageSize = 1
	}
	if page < 1 || itemCount <= 0 {
		return 0, 0
	}
	first = (page-1)*pageSize + 1
	if first > itemCount {
		return 0, 0
	}
	last = page * pageSize
	if last > itemCount {
		last = itemCount
	}
	return first, last
}
