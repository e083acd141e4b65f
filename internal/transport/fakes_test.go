package transport

import (
	"context"
	"net/http"

	"saral-shop/internal/domain"
	"saral-shop/internal/payment"
	"saral-shop/internal/service"

	"github.com/google/uuid"
)

// Handler tests stub the service layer with function fields so each
// test pins exactly the interaction it cares about. A nil field means
// the test does not expect that call.

type stubCartService struct {
	addItemFn    func(ctx context.Context, input service.AddCartItemInput) (*domain.CartItem, bool, error)
	listItemsFn  func(ctx context.Context, userID uuid.UUID) ([]*domain.CartItem, error)
	removeItemFn func(ctx context.Context, userID uuid.UUID, productID, size string) error
	clearCartFn  func(ctx context.Context, userID uuid.UUID) error
}

func (s *stubCartService) AddItem(ctx context.Context, input service.AddCartItemInput) (*domain.CartItem, bool, error) {
	return s.addItemFn(ctx, input)
}

func (s *stubCartService) ListItems(ctx context.Context, userID uuid.UUID) ([]*domain.CartItem, error) {
	return s.listItemsFn(ctx, userID)
}

func (s *stubCartService) RemoveItem(ctx context.Context, userID uuid.UUID, productID, size string) error {
	return s.removeItemFn(ctx, userID, productID, size)
}

func (s *stubCartService) ClearCart(ctx context.Context, userID uuid.UUID) error {
	return s.clearCartFn(ctx, userID)
}

type stubReviewService struct {
	addReviewFn     func(ctx context.Context, input service.AddReviewInput) (*domain.Review, error)
	listByProductFn func(ctx context.Context, productID string) ([]*domain.Review, error)
}

func (s *stubReviewService) AddReview(ctx context.Context, input service.AddReviewInput) (*domain.Review, error) {
	return s.addReviewFn(ctx, input)
}

func (s *stubReviewService) ListByProduct(ctx context.Context, productID string) ([]*domain.Review, error) {
	return s.listByProductFn(ctx, productID)
}

type stubCatalogService struct {
	listProductsFn    func(ctx context.Context, q service.CatalogQuery) (*service.ProductPage, error)
	getProductFn      func(ctx context.Context, productID string) (*domain.Product, error)
	addProductFn      func(ctx context.Context, input service.AddProductInput) (*domain.Product, error)
	addCategoryFn     func(ctx context.Context, categoryName, subcategoryName, image string) error
	listCategoriesFn  func(ctx context.Context) ([]*domain.CategoryGroup, error)
	addOccasionFn     func(ctx context.Context, name string) error
	listOccasionsFn   func(ctx context.Context, page, limit string) (*service.OccasionPage, error)
	sizesByCategoryFn func(ctx context.Context, category, subcategory string) ([]domain.SizeCount, error)
	countByCategoryFn func(ctx context.Context, category string) (int, error)
}

func (s *stubCatalogService) ListProducts(ctx context.Context, q service.CatalogQuery) (*service.ProductPage, error) {
	return s.listProductsFn(ctx, q)
}

func (s *stubCatalogService) GetProduct(ctx context.Context, productID string) (*domain.Product, error) {
	return s.getProductFn(ctx, productID)
}

func (s *stubCatalogService) AddProduct(ctx context.Context, input service.AddProductInput) (*domain.Product, error) {
	return s.addProductFn(ctx, input)
}

func (s *stubCatalogService) AllocateProductID(ctx context.Context) (string, error) {
	return "SARAL01", nil
}

func (s *stubCatalogService) AddCategory(ctx context.Context, categoryName, subcategoryName, image string) error {
	return s.addCategoryFn(ctx, categoryName, subcategoryName, image)
}

func (s *stubCatalogService) ListCategories(ctx context.Context) ([]*domain.CategoryGroup, error) {
	return s.listCategoriesFn(ctx)
}

func (s *stubCatalogService) AddOccasion(ctx context.Context, name string) error {
	return s.addOccasionFn(ctx, name)
}

func (s *stubCatalogService) ListOccasions(ctx context.Context, page, limit string) (*service.OccasionPage, error) {
	return s.listOccasionsFn(ctx, page, limit)
}

func (s *stubCatalogService) SizesByCategory(ctx context.Context, category, subcategory string) ([]domain.SizeCount, error) {
	return s.sizesByCategoryFn(ctx, category, subcategory)
}

func (s *stubCatalogService) CountByCategory(ctx context.Context, category string) (int, error) {
	return s.countByCategoryFn(ctx, category)
}

type stubUserService struct {
	registerFn    func(ctx context.Context, name, email, password string) (*domain.User, error)
	loginFn       func(ctx context.Context, email, password string) (string, string, *domain.User, error)
	logoutFn      func(ctx context.Context, refreshToken string) error
	refreshFn     func(ctx context.Context, refreshToken string) (string, error)
	listUsersFn   func(ctx context.Context) ([]*domain.User, error)
	setAdminFn    func(ctx context.Context, userID uuid.UUID, isAdmin bool) error
	getUserByIDFn func(ctx context.Context, userID uuid.UUID) (*domain.User, error)
	validateToken func(tokenString string) (*service.Claims, error)
}

func (s *stubUserService) Register(ctx context.Context, name, email, password string) (*domain.User, error) {
	return s.registerFn(ctx, name, email, password)
}

func (s *stubUserService) Login(ctx context.Context, email, password string) (string, string, *domain.User, error) {
	return s.loginFn(ctx, email, password)
}

func (s *stubUserService) Logout(ctx context.Context, refreshToken string) error {
	return s.logoutFn(ctx, refreshToken)
}

func (s *stubUserService) RefreshToken(ctx context.Context, refreshToken string) (string, error) {
	return s.refreshFn(ctx, refreshToken)
}

func (s *stubUserService) ValidateToken(tokenString string) (*service.Claims, error) {
	return s.validateToken(tokenString)
}

func (s *stubUserService) GetUserByID(ctx context.Context, userID uuid.UUID) (*domain.User, error) {
	return s.getUserByIDFn(ctx, userID)
}

func (s *stubUserService) ListUsers(ctx context.Context) ([]*domain.User, error) {
	return s.listUsersFn(ctx)
}

func (s *stubUserService) SetAdmin(ctx context.Context, userID uuid.UUID, isAdmin bool) error {
	return s.setAdminFn(ctx, userID, isAdmin)
}

type stubPaymentProvider struct {
	createOrderFn func(ctx context.Context, amount int64, currency string) (*payment.Order, error)
}

func (s *stubPaymentProvider) CreateOrder(ctx context.Context, amount int64, currency string) (*payment.Order, error) {
	return s.createOrderFn(ctx, amount, currency)
}

// passthrough stands in for the auth middlewares on routes where the
// test exercises the handler, not the guard.
func passthrough(next http.Handler) http.Handler {
	return next
}
