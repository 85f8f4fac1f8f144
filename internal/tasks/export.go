package tasks

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"github.com/binarakost/kostctl/internal/api"
	"github.com/binarakost/kostctl/internal/formatter"
	"github.com/binarakost/kostctl/internal/models"
	"github.com/binarakost/kostctl/internal/shared"
)

// exportPageSize is the page size used when walking listings for export;
// larger than the interactive page size to cut round trips.
const exportPageSize = 100

// ExportResources are the listings the engine knows how to export.
var ExportResources = []string{"rooms", "nearby", "rules", "facilities"}

// ExportOpts contains configuration for listing exports.
type ExportOpts struct {
	Format     string   // Export format: csv, markdown, txt, xlsx
	OutputDir  string   // Base output directory (default: kost_export_{epoch})
	NumWorkers int      // Concurrent workers (default: 2)
	RateLimit  float64  // Page requests per second (default: 5)
	Resources  []string // Listings to export (default: all)
}

// ResourceExport is the outcome for one listing.
type ResourceExport struct {
	Resource string
	Rows     int
	File     string
	Success  bool
	Error    error
}

// ExportResult summarizes a full export run.
type ExportResult struct {
	OutputDirectory string
	Exports         []ResourceExport
	Succeeded       int
	Failed          int
}

// ExportEngine dumps complete listings through the admin API.
type ExportEngine struct {
	admin *api.AdminService
}

// NewExportEngine creates an ExportEngine over the admin service.
func NewExportEngine(admin *api.AdminService) *ExportEngine {
	return &ExportEngine{admin: admin}
}

// Export walks every page of the requested listings and writes one file per
// listing in the requested format. Listings are exported concurrently by a
// small worker pool; page requests share a rate limiter. A listing that fails
// is reported in the result without aborting the others.
func (e *ExportEngine) Export(ctx context.Context, prog chan<- ProgressUpdate, opts ExportOpts) (*ExportResult, error) {
	if e.admin == nil {
		return nil, fmt.Errorf("%w: admin service not initialized", shared.ErrServiceUnavailable)
	}

	if opts.Format == "" {
		opts.Format = "csv"
	}
	if opts.OutputDir == "" {
		opts.OutputDir = fmt.Sprintf("kost_export_%d", time.Now().Unix())
	}
	if opts.NumWorkers <= 0 {
		opts.NumWorkers = 2
	}
	if opts.NumWorkers > 4 {
		opts.NumWorkers = 4
	}
	if opts.RateLimit <= 0 {
		opts.RateLimit = 5.0
	}
	if len(opts.Resources) == 0 {
		opts.Resources = ExportResources
	}
	for _, resource := range opts.Resources {
		if !knownResource(resource) {
			return nil, fmt.Errorf("%w: unknown resource %q", shared.ErrInvalidInput, resource)
		}
	}

	if err := os.MkdirAll(opts.OutputDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}

	limiter := rate.NewLimiter(rate.Limit(opts.RateLimit), 1)
	jobs := make(chan string, len(opts.Resources))
	results := make(chan ResourceExport, len(opts.Resources))

	var wg sync.WaitGroup
	for i := 0; i < opts.NumWorkers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for resource := range jobs {
				select {
				case <-ctx.Done():
					results <- ResourceExport{Resource: resource, Error: ctx.Err()}
					continue
				default:
				}
				results <- e.exportOne(ctx, prog, limiter, resource, opts)
			}
		}()
	}

	for _, resource := range opts.Resources {
		jobs <- resource
	}
	close(jobs)

	go func() {
		wg.Wait()
		close(results)
	}()

	result := &ExportResult{OutputDirectory: opts.OutputDir}
	completed := 0
	for res := range results {
		completed++
		result.Exports = append(result.Exports, res)
		if res.Success {
			result.Succeeded++
			sendProgress(prog, ProgressUpdate{
				Phase:    Completed,
				Resource: res.Resource,
				Step:     completed,
				Total:    len(opts.Resources),
				Message:  fmt.Sprintf("Exported %d %s rows to %s", res.Rows, res.Resource, res.File),
			})
		} else {
			result.Failed++
			sendProgress(prog, ProgressUpdate{
				Phase:    Failed,
				Resource: res.Resource,
				Step:     completed,
				Total:    len(opts.Resources),
				Message:  fmt.Sprintf("Export of %s failed: %v", res.Resource, res.Error),
			})
		}
	}

	return result, nil
}

func knownResource(name string) bool {
	for _, known := range ExportResources {
		if known == name {
			return true
		}
	}
	return false
}

func (e *ExportEngine) exportOne(ctx context.Context, prog chan<- ProgressUpdate, limiter *rate.Limiter, resource string, opts ExportOpts) ResourceExport {
	result := ResourceExport{Resource: resource}

	sendProgress(prog, ProgressUpdate{
		Phase:    FetchPages,
		Resource: resource,
		Message:  fmt.Sprintf("Fetching %s...", resource),
	})

	table, err := e.collect(ctx, limiter, resource)
	if err != nil {
		result.Error = fmt.Errorf("failed to fetch %s: %w", resource, err)
		return result
	}

	path := filepath.Join(opts.OutputDir, fmt.Sprintf("%s.%s", resource, formatter.Ext(opts.Format)))
	sendProgress(prog, ProgressUpdate{
		Phase:    WriteFile,
		Resource: resource,
		Message:  fmt.Sprintf("Writing %s...", path),
	})

	if err := table.WriteFile(opts.Format, path); err != nil {
		result.Error = fmt.Errorf("failed to write %s: %w", resource, err)
		return result
	}

	result.Rows = len(table.Rows)
	result.File = path
	result.Success = true
	return result
}

func (e *ExportEngine) collect(ctx context.Context, limiter *rate.Limiter, resource string) (formatter.Table, error) {
	switch resource {
	case "rooms":
		rooms, err := collectAll(ctx, limiter, func(ctx context.Context, page int) (*models.Page[models.Room], error) {
			return e.admin.Rooms(ctx, page, exportPageSize)
		})
		return formatter.RoomsTable(rooms), err
	case "nearby":
		places, err := collectAll(ctx, limiter, func(ctx context.Context, page int) (*models.Page[models.Nearby], error) {
			return e.admin.Nearby(ctx, page, exportPageSize, "")
		})
		return formatter.NearbyTable(places), err
	case "rules":
		rules, err := collectAll(ctx, limiter, func(ctx context.Context, page int) (*models.Page[models.Rule], error) {
			return e.admin.Rules(ctx, page, exportPageSize)
		})
		return formatter.RulesTable(rules), err
	case "facilities":
		facilities, err := collectAll(ctx, limiter, func(ctx context.Context, page int) (*models.Page[models.Facility], error) {
			return e.admin.Facilities(ctx, page, exportPageSize)
		})
		return formatter.FacilitiesTable(facilities), err
	default:
		return formatter.Table{}, fmt.Errorf("%w: unknown resource %q", shared.ErrInvalidInput, resource)
	}
}

// collectAll walks a paginated listing from page 1 until the backend-reported
// total is covered. It trusts the server's page number, so a clamping backend
// terminates the walk instead of looping.
func collectAll[T any](ctx context.Context, limiter *rate.Limiter, fetch func(ctx context.Context, page int) (*models.Page[T], error)) ([]T, error) {
	var items []T
	for page := 1; ; {
		if err := limiter.Wait(ctx); err != nil {
			return nil, err
		}
		result, err := fetch(ctx, page)
		if err != nil {
			return nil, err
		}
		items = append(items, result.Items...)
		if len(result.Items) == 0 || result.Page*result.PageSize >= result.Total {
			return items, nil
		}
		page = result.Page + 1
	}
}
