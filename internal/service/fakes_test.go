package service

import (
	"sort"
	"strings"
	"time"

	"go-shop-pos/internal/model"
	"go-shop-pos/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// In-memory fakes behind the repository interfaces.

type fakeProductRepo struct {
	products map[uuid.UUID]*model.Product
}

func newFakeProductRepo() *fakeProductRepo {
	return &fakeProductRepo{products: make(map[uuid.UUID]*model.Product)}
}

func (r *fakeProductRepo) add(p model.Product) *model.Product {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	r.products[p.ID] = &p
	return &p
}

func (r *fakeProductRepo) Create(product *model.Product) error {
	if product.ID == uuid.Nil {
		product.ID = uuid.New()
	}
	product.CreatedAt = time.Now()
	clone := *product
	r.products[product.ID] = &clone
	return nil
}

func (r *fakeProductRepo) Search(query string) ([]model.Product, error) {
	var out []model.Product
	q := strings.ToLower(query)
	for _, p := range r.products {
		if !p.IsActive {
			continue
		}
		if q != "" && !strings.Contains(strings.ToLower(p.Name), q) &&
			!(p.HasSKU() && strings.Contains(strings.ToLower(*p.SKU), q)) {
			continue
		}
		out = append(out, *p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r *fakeProductRepo) FindByID(id uuid.UUID) (*model.Product, error) {
	p, ok := r.products[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	clone := *p
	return &clone, nil
}

func (r *fakeProductRepo) FindBySKU(sku string) (*model.Product, error) {
	for _, p := range r.products {
		if p.HasSKU() && *p.SKU == sku {
			clone := *p
			return &clone, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeProductRepo) Update(product *model.Product) error {
	if _, ok := r.products[product.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	clone := *product
	r.products[product.ID] = &clone
	return nil
}

func (r *fakeProductRepo) Delete(id uuid.UUID) error {
	delete(r.products, id)
	return nil
}

func (r *fakeProductRepo) stock(id uuid.UUID) int {
	return r.products[id].StockQty
}

// fakeSaleRepo stages checkout writes and applies them only when the
// transaction callback succeeds, mirroring the rollback semantics of the
// real implementation.
type fakeSaleRepo struct {
	products     *fakeProductRepo
	sales        []model.Sale
	items        []model.SaleItem
	decrementErr error
}

func newFakeSaleRepo(products *fakeProductRepo) *fakeSaleRepo {
	return &fakeSaleRepo{products: products}
}

type fakeCheckoutTx struct {
	repo   *fakeSaleRepo
	sales  []model.Sale
	items  []model.SaleItem
	stocks map[uuid.UUID]int
}

func (r *fakeSaleRepo) InTransaction(fn func(tx repository.CheckoutTx) error) error {
	tx := &fakeCheckoutTx{repo: r, stocks: make(map[uuid.UUID]int)}
	for id, p := range r.products.products {
		tx.stocks[id] = p.StockQty
	}

	if err := fn(tx); err != nil {
		return err
	}

	r.sales = append(r.sales, tx.sales...)
	r.items = append(r.items, tx.items...)
	for id, stock := range tx.stocks {
		r.products.products[id].StockQty = stock
	}
	return nil
}

func (t *fakeCheckoutTx) CreateSale(sale *model.Sale) error {
	if sale.ID == uuid.Nil {
		sale.ID = uuid.New()
	}
	sale.CreatedAt = time.Now()
	t.sales = append(t.sales, *sale)
	return nil
}

func (t *fakeCheckoutTx) CreateSaleItems(items []model.SaleItem) error {
	t.items = append(t.items, items...)
	return nil
}

func (t *fakeCheckoutTx) ProductForUpdate(id uuid.UUID) (*model.Product, error) {
	p, ok := t.repo.products.products[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	clone := *p
	clone.StockQty = t.stocks[id]
	return &clone, nil
}

func (t *fakeCheckoutTx) DecrementStock(id uuid.UUID, qty int) error {
	if t.repo.decrementErr != nil {
		return t.repo.decrementErr
	}
	t.stocks[id] -= qty
	return nil
}

func (r *fakeSaleRepo) FindAll() ([]model.Sale, error) {
	out := make([]model.Sale, len(r.sales))
	copy(out, r.sales)
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r *fakeSaleRepo) FindRecent(limit int) ([]model.Sale, error) {
	all, _ := r.FindAll()
	if len(all) > limit {
		all = all[:limit]
	}
	return all, nil
}

func (r *fakeSaleRepo) FindBetween(start, end time.Time) ([]model.Sale, error) {
	var out []model.Sale
	for _, s := range r.sales {
		if !s.CreatedAt.Before(start) && !s.CreatedAt.After(end) {
			out = append(out, s)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

func (r *fakeSaleRepo) SumBetween(start, end time.Time) (float64, int64, error) {
	var total float64
	var orders int64
	for _, s := range r.sales {
		if !s.CreatedAt.Before(start) && !s.CreatedAt.After(end) {
			total += s.TotalAmount
			orders++
		}
	}
	return total, orders, nil
}
