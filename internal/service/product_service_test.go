package service

import (
	"context"
	"errors"
	"testing"

	"sweetbox/internal/model"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockCatalogStore is a mock implementation of catalog.Store.
type MockCatalogStore struct {
	mock.Mock
}

func (m *MockCatalogStore) All(ctx context.Context) ([]model.Product, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Product), args.Error(1)
}

func (m *MockCatalogStore) ByID(ctx context.Context, id int) (*model.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Product), args.Error(1)
}

func testProducts() []model.Product {
	return []model.Product{
		{ID: 1, Name: "Choco Cake", Price: 450, Tags: []string{model.TagVegan}},
		{ID: 2, Name: "Plain Cookie", Price: 80},
		{ID: 3, Name: "Vegan Brownie", Price: 120, Tags: []string{model.TagVegan, model.TagSugarFree}},
		{ID: 4, Name: "Cheesecake", Price: 300, Tags: []string{model.TagSugarFree}},
	}
}

func TestProductService_List(t *testing.T) {
	logger := zerolog.Nop()
	ctx := context.Background()

	tests := []struct {
		name          string
		criteria      model.FilterCriteria
		mockReturn    []model.Product
		mockError     error
		expectedNames []string
		expectError   bool
	}{
		{
			name:          "Identity filter returns everything",
			criteria:      model.DefaultFilterCriteria(),
			mockReturn:    testProducts(),
			expectedNames: []string{"Choco Cake", "Plain Cookie", "Vegan Brownie", "Cheesecake"},
		},
		{
			name: "Flags are combined",
			criteria: model.FilterCriteria{
				Flags:    []string{model.TagVegan, model.TagSugarFree},
				PriceMin: 0,
				PriceMax: 1000,
			},
			mockReturn:    testProducts(),
			expectedNames: []string{"Vegan Brownie"},
		},
		{
			name: "Search and price range",
			criteria: model.FilterCriteria{
				SearchText: "CAKE",
				PriceMin:   100,
				PriceMax:   400,
			},
			mockReturn:    testProducts(),
			expectedNames: []string{"Cheesecake"},
		},
		{
			name: "No match is an empty list",
			criteria: model.FilterCriteria{
				SearchText: "croissant",
				PriceMax:   1000,
			},
			mockReturn:    testProducts(),
			expectedNames: []string{},
		},
		{
			name:        "Store error",
			criteria:    model.DefaultFilterCriteria(),
			mockError:   errors.New("database error"),
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockStore := new(MockCatalogStore)
			service := NewProductService(mockStore, logger)

			mockStore.On("All", ctx).Return(tt.mockReturn, tt.mockError)

			products, err := service.List(ctx, tt.criteria)

			if tt.expectError {
				require.Error(t, err)
				assert.Contains(t, err.Error(), "failed to get products")
				assert.Nil(t, products)
			} else {
				require.NoError(t, err)
				names := make([]string, 0, len(products))
				for _, p := range products {
					names = append(names, p.Name)
				}
				assert.Equal(t, tt.expectedNames, names)
			}

			mockStore.AssertExpectations(t)
		})
	}
}

func TestProductService_GetByID(t *testing.T) {
	logger := zerolog.Nop()
	ctx := context.Background()
	product := testProducts()[0]

	tests := []struct {
		name          string
		id            int
		mockReturn    *model.Product
		mockError     error
		callsStore    bool
		expectedError error
		expectWrapped bool
	}{
		{
			name:       "Found",
			id:         1,
			mockReturn: &product,
			callsStore: true,
		},
		{
			name:          "Non-positive ID",
			id:            0,
			expectedError: model.ErrProductNotFound,
		},
		{
			name:          "Not found",
			id:            99,
			mockError:     model.ErrProductNotFound,
			callsStore:    true,
			expectedError: model.ErrProductNotFound,
		},
		{
			name:          "Store error",
			id:            2,
			mockError:     errors.New("connection reset"),
			callsStore:    true,
			expectWrapped: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockStore := new(MockCatalogStore)
			service := NewProductService(mockStore, logger)

			if tt.callsStore {
				mockStore.On("ByID", ctx, tt.id).Return(tt.mockReturn, tt.mockError)
			}

			got, err := service.GetByID(ctx, tt.id)

			switch {
			case tt.expectedError != nil:
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, got)
			case tt.expectWrapped:
				require.Error(t, err)
				assert.Contains(t, err.Error(), "failed to get product")
			default:
				require.NoError(t, err)
				assert.Equal(t, "Choco Cake", got.Name)
			}

			mockStore.AssertExpectations(t)
		})
	}
}

func TestProductService_Related(t *testing.T) {
	ctx := context.Background()
	mockStore := new(MockCatalogStore)
	service := NewProductService(mockStore, zerolog.Nop())
	products := testProducts()

	mockStore.On("ByID", ctx, 3).Return(&products[2], nil)
	mockStore.On("All", ctx).Return(products, nil)

	related, err := service.Related(ctx, 3, 2)

	require.NoError(t, err)
	require.Len(t, related, 2)
	assert.Equal(t, "Choco Cake", related[0].Name)
	assert.Equal(t, "Cheesecake", related[1].Name)
	mockStore.AssertExpectations(t)
}
