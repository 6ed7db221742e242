package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"cats-shop/internal/model"

	"github.com/rs/zerolog"
)

// fileStore implements ProductRepository over a single JSON file with a
// {"products": [...]} envelope. The admin board is assumed to be the only
// writer; concurrent HTTP access is serialised with a read-write mutex and
// writes are last-write-wins.
type fileStore struct {
	path   string
	mu     sync.RWMutex
	logger zerolog.Logger
}

// NewFileStore creates a JSON-file-backed product repository.
func NewFileStore(path string, logger zerolog.Logger) ProductRepository {
	return &fileStore{
		path:   path,
		logger: logger.With().Str("repository", "product-file").Logger(),
	}
}

// GetAll retrieves the full catalog, seeding the default one when the file
// does not exist yet.
func (s *fileStore) GetAll(ctx context.Context) ([]model.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	catalog, err := s.load()
	if err != nil {
		return nil, err
	}
	return catalog.Products, nil
}

// GetByID retrieves a single product by its ID.
func (s *fileStore) GetByID(ctx context.Context, id string) (*model.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	catalog, err := s.load()
	if err != nil {
		return nil, err
	}

	for i := range catalog.Products {
		if catalog.Products[i].ID == id {
			p := catalog.Products[i]
			return &p, nil
		}
	}

	s.logger.Debug().Str("product_id", id).Msg("product not found")
	return nil, nil
}

// Create inserts a new product.
func (s *fileStore) Create(ctx context.Context, product model.Product) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	catalog, err := s.load()
	if err != nil {
		return err
	}

	for i := range catalog.Products {
		if catalog.Products[i].ID == product.ID {
			s.logger.Warn().Str("product_id", product.ID).Msg("duplicate product id")
			return model.ErrProductExists
		}
	}

	catalog.Products = append(catalog.Products, product)
	return s.save(catalog)
}

// Update replaces the record with the matching ID.
func (s *fileStore) Update(ctx context.Context, product model.Product) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	catalog, err := s.load()
	if err != nil {
		return err
	}

	for i := range catalog.Products {
		if catalog.Products[i].ID == product.ID {
			catalog.Products[i] = product
			return s.save(catalog)
		}
	}

	s.logger.Debug().Str("product_id", product.ID).Msg("product not found for update")
	return model.ErrProductNotFound
}

// Delete removes the product with the given ID.
func (s *fileStore) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	catalog, err := s.load()
	if err != nil {
		return err
	}

	filtered := catalog.Products[:0]
	for _, p := range catalog.Products {
		if p.ID != id {
			filtered = append(filtered, p)
		}
	}
	catalog.Products = filtered

	return s.save(catalog)
}

// load reads the product file. A missing file is not an error: the default
// catalog is written back and returned, preserving the original
// seed-on-first-read behaviour.
func (s *fileStore) load() (model.Catalog, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			s.logger.Info().Str("file", s.path).Msg("product file missing, seeding default catalog")
			catalog := DefaultCatalog()
			if saveErr := s.save(catalog); saveErr != nil {
				return model.Catalog{}, saveErr
			}
			return catalog, nil
		}
		s.logger.Error().Err(err).Str("file", s.path).Msg("failed to read product file")
		return model.Catalog{}, fmt.Errorf("failed to read product file %s: %w", s.path, err)
	}

	var catalog model.Catalog
	if err := json.Unmarshal(data, &catalog); err != nil {
		s.logger.Error().Err(err).Str("file", s.path).Msg("failed to parse product file")
		return model.Catalog{}, fmt.Errorf("failed to parse product file %s: %w", s.path, err)
	}

	return catalog, nil
}

// save writes the catalog atomically via a temp file and rename so a crash
// mid-write never truncates the live file.
func (s *fileStore) save(catalog model.Catalog) error {
	data, err := json.MarshalIndent(catalog, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode catalog: %w", err)
	}

	dir := filepath.Dir(s.path)
	tmp, err := os.CreateTemp(dir, ".products-*.json")
	if err != nil {
		s.logger.Error().Err(err).Str("file", s.path).Msg("failed to create temp file")
		return fmt.Errorf("failed to create temp file: %w", err)
	}

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to write catalog: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to close temp file: %w", err)
	}

	if err := os.Rename(tmp.Name(), s.path); err != nil {
		os.Remove(tmp.Name())
		s.logger.Error().Err(err).Str("file", s.path).Msg("failed to replace product file")
		return fmt.Errorf("failed to replace product file: %w", err)
	}

	s.logger.Debug().
		Str("file", s.path).
		Int("products", len(catalog.Products)).
		Msg("product file saved")

	return nil
}
