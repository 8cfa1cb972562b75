package handler

import (
	"encoding/json"
	"errors"
	"math"
	"net/http"
	"net/http/httptest"
	"testing"

	"sweetbox/internal/model"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestProductHandler_GetAll(t *testing.T) {
	logger := zerolog.Nop()

	tests := []struct {
		name           string
		queryParams    string
		expected       func(c model.FilterCriteria) bool
		mockReturn     []model.Product
		mockError      error
		expectedStatus int
		expectedCount  int
	}{
		{
			name:        "Identity filter",
			queryParams: "",
			expected: func(c model.FilterCriteria) bool {
				return c.SearchText == "" && len(c.Flags) == 0 && c.PriceMin == 0 && math.IsInf(c.PriceMax, 1)
			},
			mockReturn:     testProducts(),
			expectedStatus: http.StatusOK,
			expectedCount:  3,
		},
		{
			name:        "Filter controls in the query",
			queryParams: "?q=cake&vegan=on&price-min=100&price-max=500",
			expected: func(c model.FilterCriteria) bool {
				return c.SearchText == "cake" && c.HasFlag(model.TagVegan) && c.PriceMin == 100 && c.PriceMax == 500
			},
			mockReturn:     testProducts()[:1],
			expectedStatus: http.StatusOK,
			expectedCount:  1,
		},
		{
			name:        "No match is an empty array",
			queryParams: "?q=croissant",
			expected: func(c model.FilterCriteria) bool {
				return c.SearchText == "croissant"
			},
			mockReturn:     []model.Product{},
			expectedStatus: http.StatusOK,
			expectedCount:  0,
		},
		{
			name:           "Service error",
			queryParams:    "",
			expected:       func(model.FilterCriteria) bool { return true },
			mockError:      errors.New("database error"),
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockProductService)
			handler := NewProductHandler(mockService, logger)

			mockService.On("List", mock.Anything, mock.MatchedBy(tt.expected)).
				Return(tt.mockReturn, tt.mockError)

			req := httptest.NewRequest(http.MethodGet, "/api/products"+tt.queryParams, nil)
			w := httptest.NewRecorder()

			handler.GetAll(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedStatus == http.StatusOK {
				var products []model.Product
				require.NoError(t, json.NewDecoder(w.Body).Decode(&products))
				require.NotNil(t, products)
				assert.Len(t, products, tt.expectedCount)
			}

			mockService.AssertExpectations(t)
		})
	}
}

func TestProductHandler_GetByID(t *testing.T) {
	logger := zerolog.Nop()
	testProduct := &testProducts()[0]

	tests := []struct {
		name           string
		id             string
		mockReturn     *model.Product
		mockError      error
		expectedStatus int
		expectService  bool
		productID      int
	}{
		{
			name:           "Success",
			id:             "1",
			mockReturn:     testProduct,
			expectedStatus: http.StatusOK,
			expectService:  true,
			productID:      1,
		},
		{
			name:           "Product not found",
			id:             "999",
			mockError:      model.ErrProductNotFound,
			expectedStatus: http.StatusNotFound,
			expectService:  true,
			productID:      999,
		},
		{
			name:           "Service error",
			id:             "2",
			mockError:      errors.New("connection reset"),
			expectedStatus: http.StatusInternalServerError,
			expectService:  true,
			productID:      2,
		},
		{
			name:           "Invalid product ID",
			id:             "choco",
			expectedStatus: http.StatusBadRequest,
			expectService:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockProductService)
			handler := NewProductHandler(mockService, logger)

			if tt.expectService {
				mockService.On("GetByID", mock.Anything, tt.productID).
					Return(tt.mockReturn, tt.mockError)
			}

			req := withURLParam(httptest.NewRequest(http.MethodGet, "/api/products/"+tt.id, nil), "id", tt.id)
			w := httptest.NewRecorder()

			handler.GetByID(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedStatus == http.StatusNotFound {
				var resp ErrorResponse
				require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
				assert.Equal(t, model.ErrCodeProductNotFound, resp.Error)
			}

			mockService.AssertExpectations(t)
		})
	}
}
