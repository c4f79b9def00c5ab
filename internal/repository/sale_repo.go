package repository

import (
	"time"

	"go-shop-pos/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// CheckoutTx is the unit-of-work handed to a checkout: sale header, line
// items, and per-product stock decrements all commit or roll back together.
type CheckoutTx interface {
	CreateSale(sale *model.Sale) error
	CreateSaleItems(items []model.SaleItem) error
	// ProductForUpdate loads a product row under a write lock so
	// concurrent checkouts serialize on the same stock count.
	ProductForUpdate(id uuid.UUID) (*model.Product, error)
	DecrementStock(id uuid.UUID, qty int) error
}

type SaleRepository interface {
	InTransaction(fn func(tx CheckoutTx) error) error
	FindAll() ([]model.Sale, error)
	FindRecent(limit int) ([]model.Sale, error)
	FindBetween(start, end time.Time) ([]model.Sale, error)
	SumBetween(start, end time.Time) (total float64, orders int64, err error)
}

type saleRepo struct {
	db *gorm.DB
}

func NewSaleRepo(db *gorm.DB) SaleRepository {
	return &saleRepo{db}
}

func (r *saleRepo) InTransaction(fn func(tx CheckoutTx) error) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		return fn(&checkoutTx{tx})
	})
}

func (r *saleRepo) FindAll() ([]model.Sale, error) {
	var sales []model.Sale
	err := r.db.Order("created_at DESC").Find(&sales).Error
	return sales, err
}

func (r *saleRepo) FindRecent(limit int) ([]model.Sale, error) {
	var sales []model.Sale
	err := r.db.Order("created_at DESC").Limit(limit).Find(&sales).Error
	return sales, err
}

func (r *saleRepo) FindBetween(start, end time.Time) ([]model.Sale, error) {
	var sales []model.Sale
	err := r.db.
		Where("created_at BETWEEN ? AND ?", start, end).
		Order("created_at ASC").
		Find(&sales).Error
	return sales, err
}

func (r *saleRepo) SumBetween(start, end time.Time) (float64, int64, error) {
	var total float64
	var orders int64

	if err := r.db.Model(&model.Sale{}).
		Where("created_at BETWEEN ? AND ?", start, end).
		Count(&orders).Error; err != nil {
		return 0, 0, err
	}

	err := r.db.Model(&model.Sale{}).
		Where("created_at BETWEEN ? AND ?", start, end).
		Select("COALESCE(SUM(total_amount), 0)").
		Scan(&total).Error
	return total, orders, err
}

type checkoutTx struct {
	tx *gorm.DB
}

func (t *checkoutTx) CreateSale(sale *model.Sale) error {
	return t.tx.Create(sale).Error
}

func (t *checkoutTx) CreateSaleItems(items []model.SaleItem) error {
	return t.tx.Create(&items).Error
}

func (t *checkoutTx) ProductForUpdate(id uuid.UUID) (*model.Product, error) {
	var product model.Product
	err := t.tx.Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&product, "id = ?", id).Error
	return &product, err
}

func (t *checkoutTx) DecrementStock(id uuid.UUID, qty int) error {
	return t.tx.Model(&model.Product{}).
		Where("id = ?", id).
		UpdateColumn("stock_qty", gorm.Expr("stock_qty - ?", qty)).Error
}
