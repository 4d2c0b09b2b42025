package store

import (
	"context"

	goerrors "github.com/goliatone/go-errors"
)

// ProductRepository carries the product specific life cycle: availability is
// a status string, not the is_active flag, and the status flips require the
// product to be in the expected state.
type ProductRepository struct {
	db *Repository[Product]
}

func NewProductRepository(repo *Repository[Product]) *ProductRepository {
	return &ProductRepository{db: repo}
}

func (r *ProductRepository) Create(ctx context.Context, record *Product) (*Product, error) {
	record.Status = ProductAvailable
	return r.db.Create(ctx, record)
}

func (r *ProductRepository) ByID(ctx context.Context, id int64) (*Product, error) {
	return r.db.ByID(ctx, id)
}

func (r *ProductRepository) Update(ctx context.Context, record *Product) (*Product, error) {
	return r.db.Update(ctx, record)
}

// ListByStatus returns products in the given availability state, ordered by id.
func (r *ProductRepository) ListByStatus(ctx context.Context, status ProductStatus) ([]Product, error) {
	var records []Product
	err := r.db.selectQuery(&records).
		Where("?TableAlias.status = ?", status).
		OrderExpr("?TableAlias.id ASC").
		Scan(ctx)
	if err != nil {
		return nil, goerrors.Wrap(err, goerrors.CategoryInternal, "could not list products")
	}
	return records, nil
}

// SetStatus transitions a product between availability states. The product
// must currently be in the opposite state, matching the original endpoints:
// deactivating an already unavailable product is a not-found.
func (r *ProductRepository) SetStatus(ctx context.Context, id int64, from, to ProductStatus) (*Product, error) {
	res, err := r.db.DB().NewUpdate().
		Model((*Product)(nil)).
		Set("status = ?", to).
		Where("?TableAlias.id = ?", id).
		Where("?TableAlias.status = ?", from).
		Exec(ctx)
	if err != nil {
		return nil, goerrors.Wrap(err, goerrors.CategoryInternal, "could not update product status")
	}
	if affected, err := res.RowsAffected(); err == nil && affected == 0 {
		return nil, NewRecordNotFound("product")
	}
	return r.db.ByID(ctx, id)
}
