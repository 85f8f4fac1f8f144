package panel

import (
	"context"
	"fmt"
	"sync"

	"github.com/binarakost/kostctl/internal/api"
	"github.com/binarakost/kostctl/internal/models"
)

// FetchFunc retrieves one page of a resource listing. The category is only
// meaningful for nearby places; other fetchers ignore it.
type FetchFunc[T any] func(ctx context.Context, page, pageSize int, category models.NearbyCategory) (*models.Page[T], error)

// Collection drives one paginated listing screen. It owns the current page of
// items, the active category filter, and the last load error.
//
// Loads may overlap when issued from concurrent UI commands; each Load is
// tagged with a generation number and a result whose generation has been
// superseded is discarded, so the newest request always wins regardless of
// arrival order.
type Collection[T any] struct {
	mu         sync.Mutex
	fetch      FetchFunc[T]
	pageSize   int
	items      []T
	total      int
	page       int
	filter     models.NearbyCategory
	err        error
	generation uint64
}

// NewCollection creates a Collection around a fetch function. A non-positive
// page size falls back to [api.DefaultPageSize].
func NewCollection[T any](fetch FetchFunc[T], pageSize int) *Collection[T] {
	if pageSize <= 0 {
		pageSize = api.DefaultPageSize
	}
	return &Collection[T]{fetch: fetch, pageSize: pageSize, page: 1}
}

// Load requests the given page and applies the result. The page number the
// backend reports is adopted over the one requested, so server-side clamping
// never leaves the controller pointing past the end of the list.
//
// On failure the previous items and total are retained and the error is kept
// for [Collection.Err]; the listing never blanks out on a transient error.
func (c *Collection[T]) Load(ctx context.Context, page int) error {
	if page < 1 {
		page = 1
	}

	c.mu.Lock()
	c.generation++
	gen := c.generation
	filter := c.filter
	c.mu.Unlock()

	result, err := c.fetch(ctx, page, c.pageSize, filter)

	c.mu.Lock()
	defer c.mu.Unlock()
	if gen != c.generation {
		// A newer load superseded this one while it was in flight.
		return nil
	}
	if err != nil {
		c.err = err
		return err
	}

	c.err = nil
	c.items = result.Items
	c.total = result.Total
	c.page = result.Page
	return nil
}

// Reload re-requests the page the controller is currently on.
func (c *Collection[T]) Reload(ctx context.Context) error {
	return c.Load(ctx, c.Page())
}

// SetFilter changes the category filter and resets the controller to page 1.
// The caller is expected to Load afterwards.
func (c *Collection[T]) SetFilter(category models.NearbyCategory) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.filter == category {
		return
	}
	c.filter = category
	c.page = 1
}

// Filter returns the active category filter.
func (c *Collection[T]) Filter() models.NearbyCategory {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.filter
}

// Items returns the last successfully loaded page of items.
func (c *Collection[T]) Items() []T {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.items
}

// Total returns the backend-reported total row count.
func (c *Collection[T]) Total() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.total
}

// Page returns the current (server-adopted) page number.
func (c *Collection[T]) Page() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.page
}

// PageSize returns the fixed page size.
func (c *Collection[T]) PageSize() int { return c.pageSize }

// Err returns the error from the most recent load, or nil.
func (c *Collection[T]) Err() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.err
}

// TotalPages returns the number of pages the current total implies, never
// below 1 so an empty listing still reads "Page 1 / 1".
func (c *Collection[T]) TotalPages() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return totalPages(c.total, c.pageSize)
}

func totalPages(total, pageSize int) int {
	pages := (total + pageSize - 1) / pageSize
	if pages < 1 {
		pages = 1
	}
	return pages
}

// CanPrev reports whether a previous page exists.
func (c *Collection[T]) CanPrev() bool { return c.Page() > 1 }

// CanNext reports whether a next page exists.
func (c *Collection[T]) CanNext() bool { return c.Page() < c.TotalPages() }

// PageWindow returns the page numbers to offer as direct targets: the current
// page plus two on each side, clipped to the valid range.
func (c *Collection[T]) PageWindow() []int {
	c.mu.Lock()
	page, total := c.page, c.total
	c.mu.Unlock()

	last := totalPages(total, c.pageSize)
	lo, hi := page-2, page+2
	if lo < 1 {
		lo = 1
	}
	if hi > last {
		hi = last
	}

	window := make([]int, 0, hi-lo+1)
	for p := lo; p <= hi; p++ {
		window = append(window, p)
	}
	return window
}

// Caption renders the pagination footer, e.g. "Page 3 / 3 • Total 23".
func (c *Collection[T]) Caption() string {
	c.mu.Lock()
	page, total := c.page, c.total
	c.mu.Unlock()
	return fmt.Sprintf("Page %d / %d • Total %d", page, totalPages(total, c.pageSize), total)
}
