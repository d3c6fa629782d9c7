package productform

import (
	"context"
	"time"

	"github.com/angelmondragon/storefront/internal/catalog"
	pkgerrors "github.com/angelmondragon/storefront/pkg/errors"
	"github.com/angelmondragon/storefront/pkg/logger"
	"github.com/shopspring/decimal"
)

// Boundary converts validated form records into catalog products and hands
// them to the catalog store, emitting exactly one of add or edit per submit.
type Boundary struct {
	catalog *catalog.Store
	log     *logger.Logger
	now     func() time.Time
}

// NewBoundary builds the form boundary over the given catalog store.
func NewBoundary(store *catalog.Store, log *logger.Logger) (*Boundary, error) {
	if store == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "catalog store is required")
	}
	if log == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "logger is required")
	}
	return &Boundary{
		catalog: store,
		log:     log,
		now:     time.Now,
	}, nil
}

// Submit validates the form and either adds a new product or edits the one
// identified by editID. New products get an id derived from the current time
// in milliseconds.
func (b *Boundary) Submit(ctx context.Context, form *Form, editID *int) (catalog.Product, error) {
	if form == nil {
		return catalog.Product{}, pkgerrors.New(pkgerrors.CodeValidation, "form is required")
	}
	if err := validate.Struct(form); err != nil {
		return catalog.Product{}, formatValidationErrors(err)
	}

	product, err := b.buildProduct(form, editID)
	if err != nil {
		return catalog.Product{}, err
	}

	ctx = b.log.WithProductID(ctx, product.ID)
	if editID == nil {
		if err := b.catalog.AddProduct(product); err != nil {
			return catalog.Product{}, err
		}
		b.log.Info(ctx, "product added")
		return product, nil
	}

	if err := b.catalog.EditProduct(product); err != nil {
		return catalog.Product{}, err
	}
	b.log.Info(ctx, "product updated")
	return product, nil
}

func (b *Boundary) buildProduct(form *Form, editID *int) (catalog.Product, error) {
	categories, err := splitIDList(form.Categories)
	if err != nil {
		return catalog.Product{}, err
	}

	id := int(b.now().UnixMilli())
	if editID != nil {
		id = *editID
	}

	return catalog.Product{
		ID:          id,
		Name:        form.Name,
		Image:       form.Image,
		Description: form.Description,
		Price:       decimal.NewFromFloat(form.Price),
		Categories:  categories,
		Variants:    splitList(form.Variants),
		Sizes:       splitList(form.Sizes),
		Stock:       form.Stock,
	}, nil
}
