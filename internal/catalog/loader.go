package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	pkgerrors "github.com/angelmondragon/storefront/pkg/errors"
	"github.com/angelmondragon/storefront/pkg/logger"
	"go.uber.org/multierr"
)

// SeedFile is the on-disk catalog format consumed by the loader.
type SeedFile struct {
	Products   []Product  `json:"products"`
	Categories []Category `json:"categories"`
}

// Loader populates a catalog store from a seed file, maintaining the store's
// loading and error flags along the way.
type Loader struct {
	store *Store
	log   *logger.Logger
}

// NewLoader builds a loader writing into the given store.
func NewLoader(store *Store, log *logger.Logger) (*Loader, error) {
	if store == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "catalog store is required")
	}
	if log == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "logger is required")
	}
	return &Loader{store: store, log: log}, nil
}

// LoadFile reads, validates and installs the seed catalog. On failure the
// store keeps its previous contents and surfaces the error flag.
func (l *Loader) LoadFile(ctx context.Context, path string) error {
	l.store.SetLoading(true)
	defer l.store.SetLoading(false)

	data, err := os.ReadFile(path)
	if err != nil {
		return l.fail(ctx, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "read catalog seed"))
	}

	var seed SeedFile
	if err := json.Unmarshal(data, &seed); err != nil {
		return l.fail(ctx, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "decode catalog seed"))
	}

	if err := validateSeed(seed); err != nil {
		return l.fail(ctx, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid catalog seed"))
	}

	l.store.ReplaceProducts(seed.Products)
	l.store.ReplaceCategories(seed.Categories)
	l.store.SetLoadError("")

	l.log.Info(l.log.WithFields(ctx, map[string]any{
		"products":   len(seed.Products),
		"categories": len(seed.Categories),
	}), "catalog loaded")
	return nil
}

func (l *Loader) fail(ctx context.Context, err *pkgerrors.Error) error {
	l.store.SetLoadError(err.Message())
	l.log.Error(ctx, "catalog load failed", err)
	return err
}

func validateSeed(seed SeedFile) error {
	var problems error

	productIDs := map[int]struct{}{}
	for i, p := range seed.Products {
		if p.Name == "" {
			problems = multierr.Append(problems, fmt.Errorf("product %d: name is empty", i))
		}
		if p.Price.IsNegative() {
			problems = multierr.Append(problems, fmt.Errorf("product %d: price is negative", i))
		}
		if p.Stock < 0 {
			problems = multierr.Append(problems, fmt.Errorf("product %d: stock is negative", i))
		}
		if _, dup := productIDs[p.ID]; dup {
			problems = multierr.Append(problems, fmt.Errorf("product %d: duplicate id %d", i, p.ID))
		}
		productIDs[p.ID] = struct{}{}
	}

	categoryIDs := map[int]struct{}{}
	for i, c := range seed.Categories {
		if c.Name == "" {
			problems = multierr.Append(problems, fmt.Errorf("category %d: name is empty", i))
		}
		if _, dup := categoryIDs[c.ID]; dup {
			problems = multierr.Append(problems, fmt.Errorf("category %d: duplicate id %d", i, c.ID))
		}
		categoryIDs[c.ID] = struct{}{}
	}

	return problems
}
