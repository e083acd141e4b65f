package service

import (
	"context"
	"fmt"

	"saral-shop/internal/domain"
	"saral-shop/internal/repository"
	"saral-shop/internal/storage"
)

// CatalogQuery carries raw listing parameters as the transport received
// them. Composition into a predicate and pagination bounds happens here,
// so handlers never build filters by hand.
type CatalogQuery struct {
	Category    string
	Subcategory string
	Occasion    string
	Size        string
	Search      string
	PriceRange  string
	Page        string
	Limit       string
}

// ProductPage is one page of catalog results
type ProductPage struct {
	Products   []*domain.Product `json:"products"`
	TotalPages int               `json:"totalPages"`
}

// OccasionPage is one page of occasions with product counts
type OccasionPage struct {
	Occasions  []*domain.OccasionCount `json:"occasions"`
	TotalPages int                     `json:"totalPages"`
}

// AddProductInput is the admin catalog-management payload
type AddProductInput struct {
	Name        string
	Category    string
	Subcategory string
	Occasion    string
	Price       float64
	Stock       int
	Size        string
	Image       string
}

// CatalogService defines catalog business logic: listing and filtering,
// identifier allocation, and catalog management.
type CatalogService interface {
	ListProducts(ctx context.Context, q CatalogQuery) (*ProductPage, error)
	GetProduct(ctx context.Context, productID string) (*domain.Product, error)
	AddProduct(ctx context.Context, input AddProductInput) (*domain.Product, error)
	AllocateProductID(ctx context.Context) (string, error)
	AddCategory(ctx context.Context, categoryName, subcategoryName, image string) error
	ListCategories(ctx context.Context) ([]*domain.CategoryGroup, error)
	AddOccasion(ctx context.Context, name string) error
	ListOccasions(ctx context.Context, page, limit string) (*OccasionPage, error)
	SizesByCategory(ctx context.Context, category, subcategory string) ([]domain.SizeCount, error)
	CountByCategory(ctx context.Context, category string) (int, error)
}

type catalogService struct {
	products   repository.ProductRepository
	categories repository.CategoryRepository
	occasions  repository.OccasionRepository
	images     storage.Resolver
	idPrefix   string
}

// NewCatalogService creates a new instance of CatalogService
func NewCatalogService(
	products repository.ProductRepository,
	categories repository.CategoryRepository,
	occasions repository.OccasionRepository,
	images storage.Resolver,
	idPrefix string,
) CatalogService {
	return &catalogService{
		products:   products,
		categories: categories,
		occasions:  occasions,
		images:     images,
		idPrefix:   idPrefix,
	}
}

// compose builds the predicate and pagination bounds from raw parameters
func compose(q CatalogQuery) (repository.ProductFilter, repository.Pagination) {
	min, max := repository.ParsePriceRange(q.PriceRange)

	filter := repository.ProductFilter{
		Category:    q.Category,
		Subcategory: q.Subcategory,
		Occasion:    q.Occasion,
		Size:        q.Size,
		Search:      q.Search,
		PriceMin:    min,
		PriceMax:    max,
	}

	return filter, repository.ParsePagination(q.Page, q.Limit, repository.DefaultPageSize)
}

// resolveImages rewrites every product's stored image reference into a
// displayable URL through the configured resolver.
func (s *catalogService) resolveImages(ctx context.Context, products []*domain.Product) error {
	for _, p := range products {
		resolved, err := s.images.Resolve(ctx, p.Image)
		if err != nil {
			return fmt.Errorf("failed to resolve image for product %s: %w", p.ProductID, err)
		}
		p.Image = resolved
	}
	return nil
}

// ListProducts returns the page of products matching the composed
// filters, with totalPages = ceil(matching / limit).
func (s *catalogService) ListProducts(ctx context.Context, q CatalogQuery) (*ProductPage, error) {
	filter, pg := compose(q)

	products, total, err := s.products.List(ctx, filter, pg)
	if err != nil {
		return nil, err
	}

	if err := s.resolveImages(ctx, products); err != nil {
		return nil, err
	}

	return &ProductPage{
		Products:   products,
		TotalPages: pg.TotalPages(total),
	}, nil
}

// GetProduct retrieves a product with its sibling sizes attached
func (s *catalogService) GetProduct(ctx context.Context, productID string) (*domain.Product, error) {
	if productID == "" {
		return nil, domain.NewValidationError("productId", "product ID is required")
	}

	product, err := s.products.FindByID(ctx, productID)
	if err != nil {
		return nil, err
	}

	resolved, err := s.images.Resolve(ctx, product.Image)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve image for product %s: %w", productID, err)
	}
	product.Image = resolved

	sizes, err := s.products.SiblingSizes(ctx, product.Name, product.Category)
	if err != nil {
		return nil, err
	}
	product.Sizes = sizes

	return product, nil
}

// AllocateProductID derives the next sequential identifier
func (s *catalogService) AllocateProductID(ctx context.Context) (string, error) {
	return s.products.AllocateID(ctx, s.idPrefix)
}

// AddProduct validates the input, allocates an identifier and inserts
// the product in one transactional step.
func (s *catalogService) AddProduct(ctx context.Context, input AddProductInput) (*domain.Product, error) {
	switch {
	case input.Name == "":
		return nil, domain.NewValidationError("name", "name is required")
	case input.Category == "":
		return nil, domain.NewValidationError("category", "category is required")
	case input.Subcategory == "":
		return nil, domain.NewValidationError("subcategory", "subcategory is required")
	case input.Occasion == "":
		return nil, domain.NewValidationError("occasion", "occasion is required")
	case input.Price < 0:
		return nil, domain.NewValidationError("price", "price must not be negative")
	case input.Stock < 0:
		return nil, domain.NewValidationError("stock", "stock must not be negative")
	}

	product := &domain.Product{
		Name:        input.Name,
		Category:    input.Category,
		Subcategory: input.Subcategory,
		Occasion:    input.Occasion,
		Price:       input.Price,
		Stock:       input.Stock,
		Size:        input.Size,
		Image:       input.Image,
	}

	if _, err := s.products.CreateWithAllocatedID(ctx, product, s.idPrefix); err != nil {
		return nil, err
	}

	return product, nil
}

// AddCategory registers a (category, subcategory) pair
func (s *catalogService) AddCategory(ctx context.Context, categoryName, subcategoryName, image string) error {
	if categoryName == "" {
		return domain.NewValidationError("category_name", "category name is required")
	}
	if subcategoryName == "" {
		return domain.NewValidationError("subcategory_name", "subcategory name is required")
	}

	return s.categories.Create(ctx, &domain.Category{
		CategoryName:    categoryName,
		SubcategoryName: subcategoryName,
		Image:           image,
	})
}

// ListCategories returns categories grouped by name with resolved images
func (s *catalogService) ListCategories(ctx context.Context) ([]*domain.CategoryGroup, error) {
	groups, err := s.categories.ListGrouped(ctx)
	if err != nil {
		return nil, err
	}

	for _, g := range groups {
		resolved, err := s.images.Resolve(ctx, g.Image)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve image for category %s: %w", g.CategoryName, err)
		}
		g.Image = resolved
	}

	return groups, nil
}

// AddOccasion registers a new occasion name
func (s *catalogService) AddOccasion(ctx context.Context, name string) error {
	if name == "" {
		return domain.NewValidationError("name", "name is required")
	}

	return s.occasions.Create(ctx, &domain.Occasion{Name: name})
}

// ListOccasions returns a page of occasions with product counts
func (s *catalogService) ListOccasions(ctx context.Context, page, limit string) (*OccasionPage, error) {
	pg := repository.ParsePagination(page, limit, repository.DefaultOccasionPageSize)

	occasions, total, err := s.occasions.ListWithCounts(ctx, pg)
	if err != nil {
		return nil, err
	}

	return &OccasionPage{
		Occasions:  occasions,
		TotalPages: pg.TotalPages(total),
	}, nil
}

// SizesByCategory returns the size buckets for a category
func (s *catalogService) SizesByCategory(ctx context.Context, category, subcategory string) ([]domain.SizeCount, error) {
	if category == "" {
		return nil, domain.NewValidationError("category", "category is required")
	}
	return s.products.SizesByCategory(ctx, category, subcategory)
}

// CountByCategory returns the product count for a category
func (s *catalogService) CountByCategory(ctx context.Context, category string) (int, error) {
	if category == "" {
		return 0, domain.NewValidationError("category", "category is required")
	}
	return s.products.CountByCategory(ctx, category)
}
