package service

import (
	"errors"

	"go-shop-pos/internal/model"
	"go-shop-pos/internal/repository"
	"go-shop-pos/internal/ws"
	"go-shop-pos/pkg/validator"

	"github.com/google/uuid"
)

var (
	ErrProductNotFound  = errors.New("product not found")
	ErrCategoryExists   = errors.New("category already exists")
	ErrSKUAlreadyExists = errors.New("SKU already exists")
)

// ValidationError carries per-field messages for inline form reporting.
type ValidationError struct {
	Fields map[string]string `json:"fields"`
}

func (e *ValidationError) Error() string { return "validation failed" }

func validateStruct(data interface{}) error {
	if errs := validator.ValidateStruct(data); len(errs) > 0 {
		return &ValidationError{Fields: validator.FieldMessages(errs)}
	}
	return nil
}

type CatalogService interface {
	ListProducts(query string) ([]model.Product, error)
	GetProduct(id uuid.UUID) (*model.Product, error)
	CreateProduct(req *model.Product) error
	UpdateProduct(id uuid.UUID, req *model.Product) (*model.Product, error)
	DeleteProduct(id uuid.UUID) error
	ListCategories() ([]model.Category, error)
	CreateCategory(req *model.Category) error
}

type catalogService struct {
	productRepo  repository.ProductRepository
	categoryRepo repository.CategoryRepository
	wsHub        *ws.Hub
}

func NewCatalogService(pRepo repository.ProductRepository, cRepo repository.CategoryRepository, hub *ws.Hub) CatalogService {
	return &catalogService{
		productRepo:  pRepo,
		categoryRepo: cRepo,
		wsHub:        hub,
	}
}

func (s *catalogService) publish(ev ws.Event) {
	if s.wsHub != nil {
		go s.wsHub.Publish(ev)
	}
}

func (s *catalogService) ListProducts(query string) ([]model.Product, error) {
	return s.productRepo.Search(query)
}

func (s *catalogService) GetProduct(id uuid.UUID) (*model.Product, error) {
	product, err := s.productRepo.FindByID(id)
	if err != nil {
		return nil, ErrProductNotFound
	}
	return product, nil
}

func (s *catalogService) CreateProduct(req *model.Product) error {
	if err := validateStruct(req); err != nil {
		return err
	}

	// SKU duplication check (business rule, not a form constraint)
	if req.HasSKU() {
		existing, _ := s.productRepo.FindBySKU(*req.SKU)
		if existing != nil && existing.ID != uuid.Nil {
			return ErrSKUAlreadyExists
		}
	}

	req.IsActive = true
	if err := s.productRepo.Create(req); err != nil {
		return err
	}

	s.publish(ws.Event{
		Type:    ws.EventProductCreated,
		Data:    req,
		Message: "Product '" + req.Name + "' created",
	})
	return nil
}

func (s *catalogService) UpdateProduct(id uuid.UUID, req *model.Product) (*model.Product, error) {
	if err := validateStruct(req); err != nil {
		return nil, err
	}

	existing, err := s.productRepo.FindByID(id)
	if err != nil {
		return nil, ErrProductNotFound
	}

	if req.HasSKU() && (existing.SKU == nil || *existing.SKU != *req.SKU) {
		dup, _ := s.productRepo.FindBySKU(*req.SKU)
		if dup != nil && dup.ID != uuid.Nil && dup.ID != id {
			return nil, ErrSKUAlreadyExists
		}
	}

	oldStock := existing.StockQty

	existing.Name = req.Name
	existing.SKU = req.SKU
	existing.CostPrice = req.CostPrice
	existing.SellingPrice = req.SellingPrice
	existing.StockQty = req.StockQty
	existing.Unit = req.Unit
	existing.ImageURL = req.ImageURL
	existing.Category = req.Category
	existing.IsActive = req.IsActive

	if err := s.productRepo.Update(existing); err != nil {
		return nil, err
	}

	evType := ws.EventProductUpdated
	if oldStock != existing.StockQty {
		evType = ws.EventStockUpdated
	}
	s.publish(ws.Event{
		Type:    evType,
		Data:    existing,
		Message: "Product '" + existing.Name + "' updated",
	})
	return existing, nil
}

func (s *catalogService) DeleteProduct(id uuid.UUID) error {
	existing, err := s.productRepo.FindByID(id)
	if err != nil {
		return ErrProductNotFound
	}

	if err := s.productRepo.Delete(id); err != nil {
		return err
	}

	s.publish(ws.Event{
		Type:    ws.EventProductDeleted,
		Data:    map[string]interface{}{"id": id},
		Message: "Product '" + existing.Name + "' deleted",
	})
	return nil
}

func (s *catalogService) ListCategories() ([]model.Category, error) {
	return s.categoryRepo.FindAll()
}

func (s *catalogService) CreateCategory(req *model.Category) error {
	if err := validateStruct(req); err != nil {
		return err
	}

	existing, _ := s.categoryRepo.FindByName(req.Name)
	if existing != nil && existing.ID != uuid.Nil {
		return ErrCategoryExists
	}

	return s.categoryRepo.Create(req)
}
