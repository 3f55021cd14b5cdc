// Package products caches a working set of product records fetched from the
// backend and keeps it consistent with create/update operations. There is no
// offline persistence; the cache lives for the process lifetime.
package products

import (
	"context"
	"fmt"
	"sync"

	"github.com/go-playground/validator/v10"

	"shopkeep/internal/client/api"
	"shopkeep/internal/client/models"
	"shopkeep/internal/logging"
)

// DefaultLimit is the fixed page size used when loading the collection.
const DefaultLimit = 50

// Manager owns the in-memory product collection.
//
// Refresh policy: LoadAll replaces the whole collection with the fetched
// set. Create appends, Update replaces in place preserving order. There is
// no merge and no automatic refetch after mutations.
type Manager struct {
	mu       sync.RWMutex
	items    []models.Product
	client   api.Client
	log      logging.Logger
	validate *validator.Validate
}

func NewManager(client api.Client, log logging.Logger) *Manager {
	return &Manager{
		client:   client,
		log:      log.With("component", "products"),
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}
}

// Products returns a copy of the cached collection, in load/insertion order.
func (m *Manager) Products() []models.Product {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]models.Product, len(m.items))
	copy(out, m.items)
	return out
}

// LoadAll fetches up to DefaultLimit products and replaces the entire
// cached collection with the fetched set.
func (m *Manager) LoadAll(ctx context.Context) error {
	fetched, err := m.client.Products(ctx, DefaultLimit)
	if err != nil {
		m.log.Error(ctx, "failed to load products", "error", err)
		return fmt.Errorf("load products: %w", err)
	}

	m.mu.Lock()
	m.items = fetched
	m.mu.Unlock()

	m.log.Debug(ctx, "products loaded", "count", len(fetched))
	return nil
}

// LoadByID fetches a single product. The result is returned to the caller
// (e.g. to populate an edit form) and is not merged into the collection.
func (m *Manager) LoadByID(ctx context.Context, id string) (*models.Product, error) {
	p, err := m.client.ProductByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("load product %s: %w", id, err)
	}
	return p, nil
}

type productInput struct {
	Name       string `validate:"required"`
	CategoryID string `validate:"required"`
}

// Create posts a new product. On success the record returned by the backend
// (with its server-assigned id) is appended to the collection and returned;
// on failure the collection is left untouched.
func (m *Manager) Create(ctx context.Context, categoryID, name string) (*models.Product, error) {
	if err := m.validate.Struct(productInput{Name: name, CategoryID: categoryID}); err != nil {
		return nil, fmt.Errorf("invalid product: %w", err)
	}

	created, err := m.client.CreateProduct(ctx, name, categoryID)
	if err != nil {
		return nil, fmt.Errorf("create product: %w", err)
	}

	m.mu.Lock()
	m.items = append(m.items, *created)
	m.mu.Unlock()

	return created, nil
}

// Update puts the changed fields and, on success, replaces the matching
// cached record in place, preserving collection order. A product that is
// not cached stays uncached; there is no refetch.
func (m *Manager) Update(ctx context.Context, categoryID, name, id string) error {
	if err := m.validate.Struct(productInput{Name: name, CategoryID: categoryID}); err != nil {
		return fmt.Errorf("invalid product: %w", err)
	}

	updated, err := m.client.UpdateProduct(ctx, id, name, categoryID)
	if err != nil {
		m.log.Error(ctx, "failed to update product", "id", id, "error", err)
		return fmt.Errorf("update product %s: %w", id, err)
	}

	m.mu.Lock()
	for i := range m.items {
		if m.items[i].ID == id {
			m.items[i] = *updated
			break
		}
	}
	m.mu.Unlock()

	return nil
}

// Remove is declared for contract completeness but the backend offers no
// deletion for this client; it performs no mutation. Callers must not
// assume the product is gone.
func (m *Manager) Remove(ctx context.Context, id string) error {
	m.log.Warn(ctx, "product removal is not implemented", "id", id)
	return nil
}

// UploadImage sends the local image for the given product. The cached
// record's image reference is not updated; a subsequent LoadAll picks up
// the new locator from the backend.
func (m *Manager) UploadImage(ctx context.Context, asset models.ImageAsset, productID string) error {
	if err := m.client.UploadProductImage(ctx, productID, asset); err != nil {
		m.log.Error(ctx, "failed to upload image", "id", productID, "error", err)
		return fmt.Errorf("upload image for %s: %w", productID, err)
	}
	return nil
}

// LoadCategories fetches the category id+label pairs used by product forms.
// Categories are not cached; each call hits the backend.
func (m *Manager) LoadCategories(ctx context.Context) ([]models.Category, error) {
	cats, err := m.client.Categories(ctx)
	if err != nil {
		return nil, fmt.Errorf("load categories: %w", err)
	}
	return cats, nil
}
