package transport

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"saral-shop/internal/domain"
	"saral-shop/internal/middleware"
	"saral-shop/internal/repository"
	"saral-shop/internal/service"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

func newReviewRouter(svc service.ReviewService) *chi.Mux {
	r := chi.NewRouter()
	NewReviewHandler(svc, zap.NewNop()).RegisterRoutes(r)
	return r
}

func validReviewBody() map[string]interface{} {
	return map[string]interface{}{
		"productId":    "SARAL01",
		"name":         "Priya Sharma",
		"email":        "priya@example.com",
		"purchaseDate": "2026-07-15",
		"experience":   "Excellent",
		"rating":       5,
		"review":       "Beautiful craftsmanship, exactly as pictured.",
	}
}

func TestAddReview(t *testing.T) {
	var got service.AddReviewInput
	router := newReviewRouter(&stubReviewService{
		addReviewFn: func(ctx context.Context, input service.AddReviewInput) (*domain.Review, error) {
			got = input
			return &domain.Review{
				ID:           uuid.New(),
				ProductID:    input.ProductID,
				Name:         input.Name,
				Rating:       input.Rating,
				PurchaseDate: input.PurchaseDate,
				CreatedAt:    time.Now(),
			}, nil
		},
	})

	body, _ := json.Marshal(validReviewBody())
	req := httptest.NewRequest("POST", "/api/products/addReview", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d: %s", w.Code, w.Body.String())
	}

	var resp struct {
		Message string        `json:"message"`
		Data    domain.Review `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Message != "Review added successfully" {
		t.Errorf("unexpected message %q", resp.Message)
	}
	if resp.Data.ProductID != "SARAL01" {
		t.Errorf("expected product SARAL01, got %q", resp.Data.ProductID)
	}

	want := time.Date(2026, 7, 15, 0, 0, 0, 0, time.UTC)
	if !got.PurchaseDate.Equal(want) {
		t.Errorf("expected purchase date %v, got %v", want, got.PurchaseDate)
	}
}

func TestAddReviewBadPurchaseDate(t *testing.T) {
	router := newReviewRouter(&stubReviewService{
		addReviewFn: func(ctx context.Context, input service.AddReviewInput) (*domain.Review, error) {
			t.Fatal("service should not be called for a malformed date")
			return nil, nil
		},
	})

	tests := []string{"15-07-2026", "2026/07/15", "yesterday", ""}
	for _, date := range tests {
		t.Run(date, func(t *testing.T) {
			payload := validReviewBody()
			payload["purchaseDate"] = date
			body, _ := json.Marshal(payload)

			req := httptest.NewRequest("POST", "/api/products/addReview", bytes.NewReader(body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			if w.Code != http.StatusBadRequest {
				t.Errorf("expected status 400 for date %q, got %d", date, w.Code)
			}
		})
	}
}

func TestAddReviewValidation(t *testing.T) {
	router := newReviewRouter(&stubReviewService{
		addReviewFn: func(ctx context.Context, input service.AddReviewInput) (*domain.Review, error) {
			t.Fatal("service should not be called for an invalid payload")
			return nil, nil
		},
	})

	tests := []struct {
		name   string
		mutate func(map[string]interface{})
	}{
		{"missing name", func(m map[string]interface{}) { delete(m, "name") }},
		{"bad email", func(m map[string]interface{}) { m["email"] = "not-an-email" }},
		{"rating too high", func(m map[string]interface{}) { m["rating"] = 6 }},
		{"rating zero", func(m map[string]interface{}) { m["rating"] = 0 }},
		{"missing review text", func(m map[string]interface{}) { delete(m, "review") }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			payload := validReviewBody()
			tt.mutate(payload)
			body, _ := json.Marshal(payload)

			req := httptest.NewRequest("POST", "/api/products/addReview", bytes.NewReader(body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			if w.Code != http.StatusBadRequest {
				t.Errorf("expected status 400, got %d", w.Code)
			}
		})
	}
}

func TestAddReviewMissingProduct(t *testing.T) {
	router := newReviewRouter(&stubReviewService{
		addReviewFn: func(ctx context.Context, input service.AddReviewInput) (*domain.Review, error) {
			return nil, repository.ErrReviewProductMissing
		},
	})

	body, _ := json.Marshal(validReviewBody())
	req := httptest.NewRequest("POST", "/api/products/addReview", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Errorf("expected status 404, got %d", w.Code)
	}
}

func TestListReviews(t *testing.T) {
	router := newReviewRouter(&stubReviewService{
		listByProductFn: func(ctx context.Context, productID string) ([]*domain.Review, error) {
			if productID != "SARAL01" {
				t.Errorf("expected product SARAL01, got %q", productID)
			}
			return []*domain.Review{
				{ID: uuid.New(), ProductID: productID, Name: "Priya Sharma", Rating: 5},
				{ID: uuid.New(), ProductID: productID, Name: "Rahul Verma", Rating: 4},
			}, nil
		},
	})

	req := httptest.NewRequest("GET", "/api/products/getReviewsByProductId/SARAL01", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}

	var resp struct {
		Message string          `json:"message"`
		Data    []domain.Review `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Message != "Reviews fetched successfully" {
		t.Errorf("unexpected message %q", resp.Message)
	}
	if len(resp.Data) != 2 {
		t.Errorf("expected 2 reviews, got %d", len(resp.Data))
	}
}

func TestListReviewsEmptyRespondsNotFound(t *testing.T) {
	router := newReviewRouter(&stubReviewService{
		listByProductFn: func(ctx context.Context, productID string) ([]*domain.Review, error) {
			return []*domain.Review{}, nil
		},
	})

	req := httptest.NewRequest("GET", "/api/products/getReviewsByProductId/SARAL99", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Fatalf("expected status 404, got %d", w.Code)
	}

	var resp middleware.ErrorResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Error.Message != "No reviews found for this product" {
		t.Errorf("unexpected error message %q", resp.Error.Message)
	}
}
