package panel

import (
	"context"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/binarakost/kostctl/internal/api"
	"github.com/binarakost/kostctl/internal/models"
)

// Catalog holds the facility catalog backing the room editor's checklist. It
// is fetched once per session, best-effort: a failed fetch leaves the catalog
// empty and room editing keeps working, since the draft's selection is seeded
// from the room itself and not from the catalog.
type Catalog struct {
	mu     sync.Mutex
	admin  *api.AdminService
	logger *log.Logger
	loaded bool
	items  []models.Facility
}

// NewCatalog creates an unloaded Catalog.
func NewCatalog(admin *api.AdminService, logger *log.Logger) *Catalog {
	return &Catalog{admin: admin, logger: logger}
}

// Ensure fetches the catalog if it has not been fetched yet. Failures are
// logged and swallowed; the next Ensure tries again.
func (c *Catalog) Ensure(ctx context.Context) {
	c.mu.Lock()
	if c.loaded {
		c.mu.Unlock()
		return
	}
	c.mu.Unlock()

	items, err := c.admin.FacilityCatalog(ctx)
	if err != nil {
		if c.logger != nil {
			c.logger.Warn("facility catalog unavailable", "error", err)
		}
		return
	}

	c.mu.Lock()
	c.loaded = true
	c.items = items
	c.mu.Unlock()
}

// Items returns the catalog entries, empty until a fetch has succeeded.
func (c *Catalog) Items() []models.Facility {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.items
}

// Invalidate forces the next Ensure to fetch again, e.g. after the facility
// catalog itself was edited.
func (c *Catalog) Invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.loaded = false
	c.items = nil
}
