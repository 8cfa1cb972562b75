package filter

import (
	"math"
	"net/url"
	"testing"

	"sweetbox/internal/model"

	"github.com/stretchr/testify/assert"
)

func catalog() []model.Product {
	return []model.Product{
		{ID: 1, Name: "Choco Cake", Price: 450, Tags: []string{model.TagVegan}},
		{ID: 2, Name: "Plain Cookie", Price: 80},
		{ID: 3, Name: "Dark CHOCOLATE Tart", Price: 250, Tags: []string{model.TagVegan, model.TagLactoseFree}},
		{ID: 4, Name: "Milk Chocolate Bar", Price: 150, Tags: []string{model.TagSugarFree}},
		{ID: 5, Name: "Choc Chip Muffin", Price: 100, Tags: []string{model.TagVegan}},
		{ID: 6, Name: "Hot Chocolate", Price: 300, Tags: []string{model.TagVegan, model.TagSugarFree}},
	}
}

func ids(products []model.Product) []int {
	out := []int{}
	for _, p := range products {
		out = append(out, p.ID)
	}
	return out
}

func TestApply(t *testing.T) {
	tests := []struct {
		name     string
		criteria model.FilterCriteria
		expected []int
	}{
		{
			name:     "identity filter keeps everything in order",
			criteria: model.DefaultFilterCriteria(),
			expected: []int{1, 2, 3, 4, 5, 6},
		},
		{
			name: "conjunction of text, flag and inclusive price bounds",
			criteria: model.FilterCriteria{
				SearchText: "choc",
				Flags:      []string{model.TagVegan},
				PriceMin:   100,
				PriceMax:   300,
			},
			expected: []int{3, 5, 6},
		},
		{
			name: "search is case-insensitive",
			criteria: model.FilterCriteria{
				SearchText: "CoOkIe",
				PriceMax:   math.Inf(1),
			},
			expected: []int{2},
		},
		{
			name: "flags are AND-combined",
			criteria: model.FilterCriteria{
				Flags:    []string{model.TagVegan, model.TagSugarFree},
				PriceMax: math.Inf(1),
			},
			expected: []int{6},
		},
		{
			name: "price bounds are inclusive",
			criteria: model.FilterCriteria{
				PriceMin: 80,
				PriceMax: 100,
			},
			expected: []int{2, 5},
		},
		{
			name: "no matches yields an empty, non-nil list",
			criteria: model.FilterCriteria{
				SearchText: "baguette",
				PriceMax:   math.Inf(1),
			},
			expected: []int{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Apply(catalog(), tt.criteria)
			assert.NotNil(t, result)
			assert.Equal(t, tt.expected, ids(result))
		})
	}
}

func TestApply_SpecExample(t *testing.T) {
	products := []model.Product{
		{ID: 1, Name: "Choco Cake", Price: 450, Tags: []string{model.TagVegan}},
		{ID: 2, Name: "Plain Cookie", Price: 80},
	}
	c := model.DefaultFilterCriteria()
	c.SearchText = "choc"

	assert.Equal(t, []int{1}, ids(Apply(products, c)))
}

func TestParseCriteria(t *testing.T) {
	tests := []struct {
		name     string
		values   url.Values
		expected model.FilterCriteria
	}{
		{
			name:     "empty form is the identity filter",
			values:   url.Values{},
			expected: model.DefaultFilterCriteria(),
		},
		{
			name: "all controls set",
			values: url.Values{
				"q":            {"choc"},
				"vegan":        {"on"},
				"lactose-free": {"true"},
				"price-min":    {"100"},
				"price-max":    {"300.5"},
			},
			expected: model.FilterCriteria{
				SearchText: "choc",
				Flags:      []string{model.TagVegan, model.TagLactoseFree},
				PriceMin:   100,
				PriceMax:   300.5,
			},
		},
		{
			name: "invalid prices fall back to open bounds",
			values: url.Values{
				"price-min": {"abc"},
				"price-max": {"NaN"},
			},
			expected: model.DefaultFilterCriteria(),
		},
		{
			name: "zero maximum means no maximum",
			values: url.Values{
				"price-max": {"0"},
			},
			expected: model.DefaultFilterCriteria(),
		},
		{
			name: "unchecked box is ignored",
			values: url.Values{
				"sugar-free": {"off"},
			},
			expected: model.DefaultFilterCriteria(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ParseCriteria(tt.values))
		})
	}
}

func TestValues(t *testing.T) {
	c := model.FilterCriteria{
		SearchText: "choc",
		Flags:      []string{model.TagVegan},
		PriceMin:   100,
		PriceMax:   300,
	}

	v := Values(c)
	assert.Equal(t, "choc", v.Get(FieldSearch))
	assert.Equal(t, "on", v.Get(model.TagVegan))
	assert.Equal(t, "100", v.Get(FieldPriceMin))
	assert.Equal(t, "300", v.Get(FieldPriceMax))
	assert.Equal(t, c, ParseCriteria(v))

	assert.Empty(t, Values(model.DefaultFilterCriteria()))
}
