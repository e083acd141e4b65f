package transport

import (
	"net/http"

	"saral-shop/internal/middleware"
	"saral-shop/internal/service"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// AddProductRequest is the admin product-creation payload
type AddProductRequest struct {
	Name        string  `json:"name" validate:"required"`
	Category    string  `json:"category" validate:"required"`
	Subcategory string  `json:"subcategory" validate:"required"`
	Occasion    string  `json:"occasion" validate:"required"`
	Price       float64 `json:"price" validate:"gte=0"`
	Stock       int     `json:"stock" validate:"gte=0"`
	Size        string  `json:"size"`
	Image       string  `json:"image"`
}

// AddCategoryRequest registers a subcategory under a category
type AddCategoryRequest struct {
	CategoryName    string `json:"category_name" validate:"required"`
	SubcategoryName string `json:"subcategory_name" validate:"required"`
	Image           string `json:"image"`
}

// AddOccasionRequest registers a new occasion
type AddOccasionRequest struct {
	Name string `json:"name" validate:"required"`
}

// CatalogHandler handles HTTP requests for catalog browsing and
// catalog management.
type CatalogHandler struct {
	catalog service.CatalogService
	logger  *zap.Logger
}

// NewCatalogHandler creates a new CatalogHandler
func NewCatalogHandler(catalog service.CatalogService, logger *zap.Logger) *CatalogHandler {
	return &CatalogHandler{catalog: catalog, logger: logger}
}

// RegisterRoutes registers catalog routes. Management endpoints require
// an authenticated admin.
func (h *CatalogHandler) RegisterRoutes(r chi.Router, authMiddleware, adminMiddleware func(http.Handler) http.Handler) {
	r.Route("/api/products", func(r chi.Router) {
		// Public browsing
		r.Get("/all-products", h.ListAll)
		r.Get("/category/{category}", h.ListByCategory)
		r.Get("/category/{category}/subcategory/{subcategory}", h.ListByCategory)
		r.Get("/occasion/{occasion}", h.ListByOccasion)
		r.Get("/sizes/{category}", h.SizesByCategory)
		r.Get("/count/{category}", h.CountByCategory)
		r.Get("/categories", h.ListCategories)
		r.Get("/getOccasions", h.ListOccasions)
		r.Get("/product/{productID}", h.GetProduct)

		// Catalog management
		r.Group(func(r chi.Router) {
			r.Use(authMiddleware)
			r.Use(adminMiddleware)
			r.Post("/addProduct", h.AddProduct)
			r.Post("/category", h.AddCategory)
			r.Post("/occasion", h.AddOccasion)
		})
	})
}

func (h *CatalogHandler) query(r *http.Request) service.CatalogQuery {
	q := r.URL.Query()
	return service.CatalogQuery{
		Category:    chi.URLParam(r, "category"),
		Subcategory: chi.URLParam(r, "subcategory"),
		Occasion:    q.Get("occasion"),
		Size:        q.Get("size"),
		Search:      q.Get("search"),
		PriceRange:  q.Get("priceRange"),
		Page:        q.Get("page"),
		Limit:       q.Get("limit"),
	}
}

// ListAll returns a page of the whole catalog
func (h *CatalogHandler) ListAll(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	page, err := h.catalog.ListProducts(r.Context(), service.CatalogQuery{
		Page:  q.Get("page"),
		Limit: q.Get("limit"),
	})
	if err != nil {
		respondServiceError(w, h.logger, "list_products", err)
		return
	}

	middleware.RespondWithJSON(w, http.StatusOK, page)
}

// ListByCategory returns a filtered page of products within a category
func (h *CatalogHandler) ListByCategory(w http.ResponseWriter, r *http.Request) {
	query := h.query(r)
	if query.Category == "" {
		middleware.RespondWithError(w, http.StatusBadRequest, "category is required")
		return
	}

	page, err := h.catalog.ListProducts(r.Context(), query)
	if err != nil {
		respondServiceError(w, h.logger, "list_products", err,
			zap.String("category", query.Category))
		return
	}

	middleware.RespondWithJSON(w, http.StatusOK, page)
}

// ListByOccasion returns a page of products for an occasion
func (h *CatalogHandler) ListByOccasion(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	occasion := chi.URLParam(r, "occasion")

	page, err := h.catalog.ListProducts(r.Context(), service.CatalogQuery{
		Occasion:   occasion,
		PriceRange: q.Get("priceRange"),
		Page:       q.Get("page"),
		Limit:      q.Get("limit"),
	})
	if err != nil {
		respondServiceError(w, h.logger, "list_products_by_occasion", err,
			zap.String("occasion", occasion))
		return
	}

	middleware.RespondWithJSON(w, http.StatusOK, page)
}

// GetProduct returns one product with its available sizes
func (h *CatalogHandler) GetProduct(w http.ResponseWriter, r *http.Request) {
	productID := chi.URLParam(r, "productID")

	product, err := h.catalog.GetProduct(r.Context(), productID)
	if err != nil {
		respondServiceError(w, h.logger, "get_product", err,
			zap.String("product_id", productID))
		return
	}

	middleware.RespondWithJSON(w, http.StatusOK, product)
}

// SizesByCategory returns the size buckets within a category
func (h *CatalogHandler) SizesByCategory(w http.ResponseWriter, r *http.Request) {
	category := chi.URLParam(r, "category")
	subcategory := r.URL.Query().Get("subcategory")

	sizes, err := h.catalog.SizesByCategory(r.Context(), category, subcategory)
	if err != nil {
		respondServiceError(w, h.logger, "sizes_by_category", err,
			zap.String("category", category))
		return
	}

	middleware.RespondWithJSON(w, http.StatusOK, map[string]interface{}{"sizes": sizes})
}

// CountByCategory returns the product count for a category
func (h *CatalogHandler) CountByCategory(w http.ResponseWriter, r *http.Request) {
	category := chi.URLParam(r, "category")

	count, err := h.catalog.CountByCategory(r.Context(), category)
	if err != nil {
		respondServiceError(w, h.logger, "count_by_category", err,
			zap.String("category", category))
		return
	}

	middleware.RespondWithJSON(w, http.StatusOK, map[string]int{"count": count})
}

// ListCategories returns categories grouped by name
func (h *CatalogHandler) ListCategories(w http.ResponseWriter, r *http.Request) {
	groups, err := h.catalog.ListCategories(r.Context())
	if err != nil {
		respondServiceError(w, h.logger, "list_categories", err)
		return
	}

	middleware.RespondWithJSON(w, http.StatusOK, map[string]interface{}{"categories": groups})
}

// ListOccasions returns a page of occasions with product counts
func (h *CatalogHandler) ListOccasions(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	page, err := h.catalog.ListOccasions(r.Context(), q.Get("page"), q.Get("limit"))
	if err != nil {
		respondServiceError(w, h.logger, "list_occasions", err)
		return
	}

	middleware.RespondWithJSON(w, http.StatusOK, page)
}

// AddProduct creates a product under a freshly allocated identifier
func (h *CatalogHandler) AddProduct(w http.ResponseWriter, r *http.Request) {
	var req AddProductRequest
	if err := middleware.DecodeAndValidate(r, &req); err != nil {
		if validationErrors := middleware.FormatValidationErrors(err); len(validationErrors) > 0 {
			middleware.RespondWithValidationErrors(w, validationErrors)
			return
		}
		middleware.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	product, err := h.catalog.AddProduct(r.Context(), service.AddProductInput{
		Name:        req.Name,
		Category:    req.Category,
		Subcategory: req.Subcategory,
		Occasion:    req.Occasion,
		Price:       req.Price,
		Stock:       req.Stock,
		Size:        req.Size,
		Image:       req.Image,
	})
	if err != nil {
		respondServiceError(w, h.logger, "add_product", err,
			zap.String("name", req.Name),
			zap.String("category", req.Category))
		return
	}

	h.logger.Info("Product added", zap.String("product_id", product.ProductID))
	middleware.RespondWithJSON(w, http.StatusCreated, map[string]interface{}{
		"message":   "Product added successfully",
		"productId": product.ProductID,
	})
}

// AddCategory registers a (category, subcategory) pair
func (h *CatalogHandler) AddCategory(w http.ResponseWriter, r *http.Request) {
	var req AddCategoryRequest
	if err := middleware.DecodeAndValidate(r, &req); err != nil {
		if validationErrors := middleware.FormatValidationErrors(err); len(validationErrors) > 0 {
			middleware.RespondWithValidationErrors(w, validationErrors)
			return
		}
		middleware.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	err := h.catalog.AddCategory(r.Context(), req.CategoryName, req.SubcategoryName, req.Image)
	if err != nil {
		respondServiceError(w, h.logger, "add_category", err,
			zap.String("subcategory", req.SubcategoryName))
		return
	}

	middleware.RespondWithJSON(w, http.StatusCreated, map[string]string{
		"message": "Category added successfully",
	})
}

// AddOccasion registers a new occasion
func (h *CatalogHandler) AddOccasion(w http.ResponseWriter, r *http.Request) {
	var req AddOccasionRequest
	if err := middleware.DecodeAndValidate(r, &req); err != nil {
		if validationErrors := middleware.FormatValidationErrors(err); len(validationErrors) > 0 {
			middleware.RespondWithValidationErrors(w, validationErrors)
			return
		}
		middleware.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.catalog.AddOccasion(r.Context(), req.Name); err != nil {
		respondServiceError(w, h.logger, "add_occasion", err,
			zap.String("name", req.Name))
		return
	}

	middleware.RespondWithJSON(w, http.StatusCreated, map[string]string{
		"message": "Occasion added successfully",
	})
}
