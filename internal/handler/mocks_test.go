package handler

import (
	"context"
	"net/http"

	"sweetbox/internal/model"
	"sweetbox/internal/service"
	"sweetbox/internal/view"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/mock"
)

// MockProductService is a mock implementation of ProductService.
type MockProductService struct {
	mock.Mock
}

func (m *MockProductService) List(ctx context.Context, criteria model.FilterCriteria) ([]model.Product, error) {
	args := m.Called(ctx, criteria)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Product), args.Error(1)
}

func (m *MockProductService) GetByID(ctx context.Context, id int) (*model.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Product), args.Error(1)
}

func (m *MockProductService) Related(ctx context.Context, id, n int) ([]model.Product, error) {
	args := m.Called(ctx, id, n)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Product), args.Error(1)
}

// MockCartService is a mock implementation of CartService.
type MockCartService struct {
	mock.Mock
}

func (m *MockCartService) Get(ctx context.Context, visitor string) (*service.CartResult, error) {
	args := m.Called(ctx, visitor)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.CartResult), args.Error(1)
}

func (m *MockCartService) Apply(ctx context.Context, visitor string, action view.Action, modals view.ModalState) (*service.CartResult, error) {
	args := m.Called(ctx, visitor, action, modals)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.CartResult), args.Error(1)
}

// withURLParam attaches a chi route parameter to the request.
func withURLParam(req *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
}

func testProducts() []model.Product {
	return []model.Product{
		{ID: 1, Name: "Choco Cake", Price: 450, Tags: []string{model.TagVegan}, Description: "Dark chocolate, **no eggs**."},
		{ID: 2, Name: "Plain Cookie", Price: 80},
		{ID: 3, Name: "Vegan Brownie", Price: 120, Tags: []string{model.TagVegan, model.TagSugarFree}},
	}
}
