package service

import (
	"context"

	"saral-shop/internal/domain"
	"saral-shop/internal/repository"

	"github.com/google/uuid"
)

// In-memory repository doubles. They record the arguments services pass
// down and return canned results, so these tests pin the composition and
// validation logic without a database.

type fakeProductRepo struct {
	products map[string]*domain.Product

	lastFilter     repository.ProductFilter
	lastPagination repository.Pagination
	listTotal      int

	allocErr  error
	createErr error
}

func newFakeProductRepo() *fakeProductRepo {
	return &fakeProductRepo{products: map[string]*domain.Product{}}
}

func (f *fakeProductRepo) AllocateID(ctx context.Context, prefix string) (string, error) {
	if f.allocErr != nil {
		return "", f.allocErr
	}
	return prefix + "01", nil
}

func (f *fakeProductRepo) Create(ctx context.Context, product *domain.Product) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.products[product.ProductID] = product
	return nil
}

func (f *fakeProductRepo) CreateWithAllocatedID(ctx context.Context, product *domain.Product, prefix string) (string, error) {
	if f.createErr != nil {
		return "", f.createErr
	}
	id, _ := f.AllocateID(ctx, prefix)
	product.ProductID = id
	f.products[id] = product
	return id, nil
}

func (f *fakeProductRepo) FindByID(ctx context.Context, productID string) (*domain.Product, error) {
	p, ok := f.products[productID]
	if !ok {
		return nil, repository.ErrProductNotFound
	}
	clone := *p
	return &clone, nil
}

func (f *fakeProductRepo) SiblingSizes(ctx context.Context, name, category string) ([]string, error) {
	sizes := []string{}
	for _, p := range f.products {
		if p.Name == name && p.Category == category {
			sizes = append(sizes, p.Size)
		}
	}
	return sizes, nil
}

func (f *fakeProductRepo) List(ctx context.Context, filter repository.ProductFilter, pg repository.Pagination) ([]*domain.Product, int, error) {
	f.lastFilter = filter
	f.lastPagination = pg

	products := []*domain.Product{}
	for _, p := range f.products {
		products = append(products, p)
	}
	total := f.listTotal
	if total == 0 {
		total = len(products)
	}
	return products, total, nil
}

func (f *fakeProductRepo) CountByCategory(ctx context.Context, category string) (int, error) {
	count := 0
	for _, p := range f.products {
		if p.Category == category {
			count++
		}
	}
	return count, nil
}

func (f *fakeProductRepo) SizesByCategory(ctx context.Context, category, subcategory string) ([]domain.SizeCount, error) {
	return []domain.SizeCount{{Size: "6", Count: 2}}, nil
}

type fakeCategoryRepo struct {
	categories []*domain.Category
	createErr  error
}

func (f *fakeCategoryRepo) Create(ctx context.Context, category *domain.Category) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.categories = append(f.categories, category)
	return nil
}

func (f *fakeCategoryRepo) ListGrouped(ctx context.Context) ([]*domain.CategoryGroup, error) {
	groups := map[string]*domain.CategoryGroup{}
	order := []string{}
	for _, c := range f.categories {
		g, ok := groups[c.CategoryName]
		if !ok {
			g = &domain.CategoryGroup{CategoryName: c.CategoryName, Image: c.Image}
			groups[c.CategoryName] = g
			order = append(order, c.CategoryName)
		}
		g.Subcategories = append(g.Subcategories, c.SubcategoryName)
	}
	result := []*domain.CategoryGroup{}
	for _, name := range order {
		result = append(result, groups[name])
	}
	return result, nil
}

func (f *fakeCategoryRepo) FindBySubcategory(ctx context.Context, subcategory string) (*domain.Category, error) {
	for _, c := range f.categories {
		if c.SubcategoryName == subcategory {
			return c, nil
		}
	}
	return nil, repository.ErrCategoryNotFound
}

type fakeOccasionRepo struct {
	occasions []*domain.OccasionCount
	total     int

	lastPagination repository.Pagination
	createErr      error
}

func (f *fakeOccasionRepo) Create(ctx context.Context, occasion *domain.Occasion) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.occasions = append(f.occasions, &domain.OccasionCount{Name: occasion.Name})
	return nil
}

func (f *fakeOccasionRepo) ListWithCounts(ctx context.Context, pg repository.Pagination) ([]*domain.OccasionCount, int, error) {
	f.lastPagination = pg
	total := f.total
	if total == 0 {
		total = len(f.occasions)
	}
	return f.occasions, total, nil
}

type fakeCartRepo struct {
	items map[string]*domain.CartItem

	upsertErr error
}

func newFakeCartRepo() *fakeCartRepo {
	return &fakeCartRepo{items: map[string]*domain.CartItem{}}
}

func cartKey(userID uuid.UUID, productID, size string) string {
	return userID.String() + "|" + productID + "|" + size
}

func (f *fakeCartRepo) Upsert(ctx context.Context, item *domain.CartItem) (bool, error) {
	if f.upsertErr != nil {
		return false, f.upsertErr
	}
	key := cartKey(item.UserID, item.ProductID, item.Size)
	if existing, ok := f.items[key]; ok {
		existing.Quantity += item.Quantity
		item.ID = existing.ID
		item.Quantity = existing.Quantity
		return false, nil
	}
	clone := *item
	f.items[key] = &clone
	return true, nil
}

func (f *fakeCartRepo) ListByUser(ctx context.Context, userID uuid.UUID) ([]*domain.CartItem, error) {
	items := []*domain.CartItem{}
	for _, item := range f.items {
		if item.UserID == userID {
			items = append(items, item)
		}
	}
	return items, nil
}

func (f *fakeCartRepo) Remove(ctx context.Context, userID uuid.UUID, productID, size string) (int64, error) {
	key := cartKey(userID, productID, size)
	if _, ok := f.items[key]; !ok {
		return 0, nil
	}
	delete(f.items, key)
	return 1, nil
}

func (f *fakeCartRepo) Clear(ctx context.Context, userID uuid.UUID) error {
	for key, item := range f.items {
		if item.UserID == userID {
			delete(f.items, key)
		}
	}
	return nil
}

type fakeReviewRepo struct {
	reviews   []*domain.Review
	createErr error
}

func (f *fakeReviewRepo) Create(ctx context.Context, review *domain.Review) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.reviews = append(f.reviews, review)
	return nil
}

func (f *fakeReviewRepo) ListByProduct(ctx context.Context, productID string) ([]*domain.Review, error) {
	result := []*domain.Review{}
	for _, r := range f.reviews {
		if r.ProductID == productID {
			result = append(result, r)
		}
	}
	return result, nil
}

type fakeUserRepo struct {
	users map[uuid.UUID]*domain.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[uuid.UUID]*domain.User{}}
}

func (f *fakeUserRepo) Create(ctx context.Context, user *domain.User) error {
	for _, u := range f.users {
		if u.Email == user.Email {
			return repository.ErrUserAlreadyExists
		}
	}
	clone := *user
	f.users[user.ID] = &clone
	return nil
}

func (f *fakeUserRepo) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			clone := *u
			return &clone, nil
		}
	}
	return nil, repository.ErrUserNotFound
}

func (f *fakeUserRepo) FindByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, repository.ErrUserNotFound
	}
	clone := *u
	return &clone, nil
}

func (f *fakeUserRepo) List(ctx context.Context) ([]*domain.User, error) {
	users := []*domain.User{}
	for _, u := range f.users {
		users = append(users, u)
	}
	return users, nil
}

func (f *fakeUserRepo) UpdateRole(ctx context.Context, id uuid.UUID, role string) error {
	u, ok := f.users[id]
	if !ok {
		return repository.ErrUserNotFound
	}
	u.Role = role
	return nil
}

type fakeRefreshTokenRepo struct {
	tokens map[string]*domain.RefreshToken
}

func newFakeRefreshTokenRepo() *fakeRefreshTokenRepo {
	return &fakeRefreshTokenRepo{tokens: map[string]*domain.RefreshToken{}}
}

func (f *fakeRefreshTokenRepo) Create(ctx context.Context, token *domain.RefreshToken) error {
	clone := *token
	f.tokens[token.Token] = &clone
	return nil
}

func (f *fakeRefreshTokenRepo) FindByToken(ctx context.Context, token string) (*domain.RefreshToken, error) {
	t, ok := f.tokens[token]
	if !ok {
		return nil, repository.ErrRefreshTokenNotFound
	}
	if t.Revoked {
		return nil, repository.ErrRefreshTokenRevoked
	}
	clone := *t
	return &clone, nil
}

func (f *fakeRefreshTokenRepo) Revoke(ctx context.Context, token string) error {
	t, ok := f.tokens[token]
	if !ok {
		return repository.ErrRefreshTokenNotFound
	}
	t.Revoked = true
	return nil
}

// fakeResolver prefixes references the way the public-URL resolver does
type fakeResolver struct {
	prefix string
	err    error
}

func (f *fakeResolver) Resolve(ctx context.Context, ref string) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	return f.prefix + ref, nil
}
