package service

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/yoshi1414/inventory-management-sub000/internal/model"
	"github.com/yoshi1414/inventory-management-sub000/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// memoryStore implements the repository interfaces for tests. MutateProduct
// honors the same contract as the GORM store: a per-product lock held for
// the whole callback, with the product write and ledger appends committing
// together or not at all.
type memoryStore struct {
	mu       sync.Mutex
	products map[uuid.UUID]*model.Product
	ledger   []model.StockTransaction
	locks    map[uuid.UUID]*sync.Mutex

	// failure injection
	failAppend      error
	codeAlwaysTaken bool
}

func newMemoryStore(products ...*model.Product) *memoryStore {
	s := &memoryStore{
		products: make(map[uuid.UUID]*model.Product),
		locks:    make(map[uuid.UUID]*sync.Mutex),
	}
	for _, p := range products {
		if p.ID == uuid.Nil {
			p.ID = uuid.New()
		}
		cp := *p
		s.products[p.ID] = &cp
	}
	return s
}

func (s *memoryStore) productLock(id uuid.UUID) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()
	lock, ok := s.locks[id]
	if !ok {
		lock = &sync.Mutex{}
		s.locks[id] = lock
	}
	return lock
}

func (s *memoryStore) Create(ctx context.Context, product *model.Product) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if product.ID == uuid.Nil {
		product.ID = uuid.New()
	}
	cp := *product
	s.products[product.ID] = &cp
	return nil
}

func (s *memoryStore) FindByID(ctx context.Context, id uuid.UUID, includeDeleted bool) (*model.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.products[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	if !includeDeleted && p.DeletedAt.Valid {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *p
	return &cp, nil
}

func (s *memoryStore) FindByProductCode(ctx context.Context, code string) (*model.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.codeAlwaysTaken {
		taken := model.Product{ProductCode: code}
		return &taken, nil
	}
	for _, p := range s.products {
		if p.ProductCode == code {
			cp := *p
			return &cp, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (s *memoryStore) Search(ctx context.Context, crit model.SearchCriteria) (*model.ProductPage, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	minStock, maxStock := crit.Band.Bounds()
	var matched []model.Product
	for _, p := range s.products {
		if p.DeletedAt.Valid && !crit.IncludeDeleted {
			continue
		}
		if crit.Keyword != "" && !strings.Contains(strings.ToLower(p.ProductName), strings.ToLower(crit.Keyword)) {
			continue
		}
		if crit.Category != "" && p.Category != crit.Category {
			continue
		}
		if crit.Status != "" && p.Status != crit.Status {
			continue
		}
		if minStock != nil && p.Stock < *minStock {
			continue
		}
		if maxStock != nil && p.Stock > *maxStock {
			continue
		}
		matched = append(matched, *p)
	}

	sort.SliceStable(matched, func(i, j int) bool {
		a, b := matched[i], matched[j]
		switch crit.Sort {
		case model.SortNameDesc:
			return a.ProductName > b.ProductName
		case model.SortPriceAsc:
			return a.Price < b.Price
		case model.SortPriceDesc:
			return a.Price > b.Price
		case model.SortStockAsc:
			return a.Stock < b.Stock
		case model.SortStockDesc:
			return a.Stock > b.Stock
		case model.SortUpdatedDesc:
			return a.UpdatedAt.After(b.UpdatedAt)
		default:
			return a.ProductName < b.ProductName
		}
	})

	total := int64(len(matched))
	start := crit.Page * crit.PageSize
	if start > len(matched) {
		start = len(matched)
	}
	end := start + crit.PageSize
	if end > len(matched) {
		end = len(matched)
	}

	return model.NewProductPage(matched[start:end], total, crit.Page, crit.PageSize), nil
}

func (s *memoryStore) BandCounts(ctx context.Context) (*model.StockBandCounts, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var counts model.StockBandCounts
	for _, p := range s.products {
		if p.DeletedAt.Valid {
			continue
		}
		if p.IsOutOfStock() {
			counts.OutOfStockCount++
		} else if p.IsLowStock() {
			counts.LowStockCount++
		}
	}
	return &counts, nil
}

func (s *memoryStore) Categories(ctx context.Context) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	seen := make(map[string]bool)
	var categories []string
	for _, p := range s.products {
		if p.DeletedAt.Valid || seen[p.Category] {
			continue
		}
		seen[p.Category] = true
		categories = append(categories, p.Category)
	}
	sort.Strings(categories)
	return categories, nil
}

func (s *memoryStore) MutateProduct(ctx context.Context, id uuid.UUID, fn func(tx repository.MutationTx, product *model.Product) error) (*model.Product, error) {
	lock := s.productLock(id)
	lock.Lock()
	defer lock.Unlock()

	s.mu.Lock()
	stored, ok := s.products[id]
	if !ok {
		s.mu.Unlock()
		return nil, gorm.ErrRecordNotFound
	}
	working := *stored
	s.mu.Unlock()

	tx := &memoryMutationTx{failAppend: s.failAppend}
	if err := fn(tx, &working); err != nil {
		return nil, err
	}

	s.mu.Lock()
	if tx.saved != nil {
		cp := *tx.saved
		s.products[id] = &cp
	}
	for _, t := range tx.appended {
		if t.ID == uuid.Nil {
			t.ID = uuid.New()
		}
		s.ledger = append(s.ledger, t)
	}
	s.mu.Unlock()

	result := working
	return &result, nil
}

// ledgerFor returns the store's ledger rows for one product, append order.
func (s *memoryStore) ledgerFor(id uuid.UUID) []model.StockTransaction {
	s.mu.Lock()
	defer s.mu.Unlock()
	var rows []model.StockTransaction
	for _, t := range s.ledger {
		if t.ProductID == id {
			rows = append(rows, t)
		}
	}
	return rows
}

// FindByProductID implements the ledger read: newest first, optional cap.
func (s *memoryStore) FindByProductID(ctx context.Context, productID uuid.UUID, limit int) ([]model.StockTransaction, error) {
	rows := s.ledgerFor(productID)
	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].TransactionDate.After(rows[j].TransactionDate)
	})
	if limit > 0 && len(rows) > limit {
		rows = rows[:limit]
	}
	return rows, nil
}

type memoryMutationTx struct {
	saved      *model.Product
	appended   []model.StockTransaction
	failAppend error
}

func (m *memoryMutationTx) SaveProduct(product *model.Product) error {
	cp := *product
	m.saved = &cp
	return nil
}

func (m *memoryMutationTx) AppendTransaction(transaction *model.StockTransaction) error {
	if m.failAppend != nil {
		return m.failAppend
	}
	m.appended = append(m.appended, *transaction)
	return nil
}
