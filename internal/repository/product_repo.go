package repository

import (
	"context"
	"strings"

	"github.com/yoshi1414/inventory-management-sub000/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// MutationTx is the write scope handed to a stock mutation. The product row
// is locked for the whole callback; both writes commit together or roll
// back together.
type MutationTx interface {
	SaveProduct(product *model.Product) error
	AppendTransaction(transaction *model.StockTransaction) error
}

type ProductRepository interface {
	Create(ctx context.Context, product *model.Product) error
	// FindByID with includeDeleted is the privileged lookup that sees
	// soft-deleted rows.
	FindByID(ctx context.Context, id uuid.UUID, includeDeleted bool) (*model.Product, error)
	FindByProductCode(ctx context.Context, code string) (*model.Product, error)
	Search(ctx context.Context, crit model.SearchCriteria) (*model.ProductPage, error)
	BandCounts(ctx context.Context) (*model.StockBandCounts, error)
	Categories(ctx context.Context) ([]string, error)
	// MutateProduct loads the product (soft-deleted included) under a
	// row lock and runs fn inside that transaction. Whatever fn writes
	// through the MutationTx commits atomically with the lock scope; any
	// error from fn rolls everything back.
	MutateProduct(ctx context.Context, id uuid.UUID, fn func(tx MutationTx, product *model.Product) error) (*model.Product, error)
}

type productRepo struct {
	db *gorm.DB
}

func NewProductRepo(db *gorm.DB) ProductRepository {
	return &productRepo{db}
}

func (r *productRepo) Create(ctx context.Context, product *model.Product) error {
	return r.db.WithContext(ctx).Create(product).Error
}

func (r *productRepo) FindByID(ctx context.Context, id uuid.UUID, includeDeleted bool) (*model.Product, error) {
	q := r.db.WithContext(ctx)
	if includeDeleted {
		q = q.Unscoped()
	}
	var product model.Product
	if err := q.First(&product, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &product, nil
}

// FindByProductCode looks across soft-deleted rows too: product codes are
// unique for the lifetime of the table, deleted or not.
func (r *productRepo) FindByProductCode(ctx context.Context, code string) (*model.Product, error) {
	var product model.Product
	if err := r.db.WithContext(ctx).Unscoped().First(&product, "product_code = ?", code).Error; err != nil {
		return nil, err
	}
	return &product, nil
}

func (r *productRepo) Search(ctx context.Context, crit model.SearchCriteria) (*model.ProductPage, error) {
	q := r.db.WithContext(ctx).Model(&model.Product{})
	if crit.IncludeDeleted {
		q = q.Unscoped()
	}
	if crit.Keyword != "" {
		q = q.Where("LOWER(product_name) LIKE ?", "%"+strings.ToLower(crit.Keyword)+"%")
	}
	if crit.Category != "" {
		q = q.Where("category = ?", crit.Category)
	}
	if crit.Status != "" {
		q = q.Where("status = ?", crit.Status)
	}
	if minStock, maxStock := crit.Band.Bounds(); minStock != nil || maxStock != nil {
		if minStock != nil {
			q = q.Where("stock >= ?", *minStock)
		}
		if maxStock != nil {
			q = q.Where("stock <= ?", *maxStock)
		}
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, err
	}

	var products []model.Product
	err := q.Order(crit.Sort.OrderClause()).
		Limit(crit.PageSize).
		Offset(crit.Page * crit.PageSize).
		Find(&products).Error
	if err != nil {
		return nil, err
	}

	return model.NewProductPage(products, total, crit.Page, crit.PageSize), nil
}

// BandCounts always runs against the default scope: soft-deleted products
// never show up in the alert numbers.
func (r *productRepo) BandCounts(ctx context.Context) (*model.StockBandCounts, error) {
	var counts model.StockBandCounts

	err := r.db.WithContext(ctx).Model(&model.Product{}).
		Where("stock > 0 AND stock <= ?", model.LowStockMax).
		Count(&counts.LowStockCount).Error
	if err != nil {
		return nil, err
	}

	err = r.db.WithContext(ctx).Model(&model.Product{}).
		Where("stock = 0").
		Count(&counts.OutOfStockCount).Error
	if err != nil {
		return nil, err
	}

	return &counts, nil
}

func (r *productRepo) Categories(ctx context.Context) ([]string, error) {
	var categories []string
	err := r.db.WithContext(ctx).Model(&model.Product{}).
		Distinct("category").
		Order("category ASC").
		Pluck("category", &categories).Error
	return categories, err
}

func (r *productRepo) MutateProduct(ctx context.Context, id uuid.UUID, fn func(tx MutationTx, product *model.Product) error) (*model.Product, error) {
	var mutated *model.Product
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var product model.Product
		// FOR UPDATE: conflicting mutations on the same product queue
		// behind this row lock, so stock checks always see the latest
		// committed value.
		err := tx.Unscoped().
			Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&product, "id = ?", id).Error
		if err != nil {
			return err
		}

		if err := fn(&mutationTx{tx: tx}, &product); err != nil {
			return err
		}

		mutated = &product
		return nil
	})
	if err != nil {
		return nil, err
	}
	return mutated, nil
}

type mutationTx struct {
	tx *gorm.DB
}

// SaveProduct writes unscoped so mutations on soft-deleted products (a
// privileged operation) and restores actually hit the row.
func (m *mutationTx) SaveProduct(product *model.Product) error {
	return m.tx.Unscoped().Save(product).Error
}

func (m *mutationTx) AppendTransaction(transaction *model.StockTransaction) error {
	return m.tx.Create(transaction).Error
}
