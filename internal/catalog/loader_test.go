package catalog

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"sweetbox/internal/model"

	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const yamlCatalog = `
products:
  - id: 1
    name: Choco Cake
    price: 450
    image: img/choco.webp
    tags: [vegan]
    badge: New
    badgeClass: product__badge--new
    description: "Rich **dark** chocolate."
  - id: 2
    name: Plain Cookie
    price: 80
    image: img/cookie.webp
`

const jsonCatalog = `[
  {"id": 1, "name": "Choco Cake", "price": 450, "image": "img/choco.webp", "tags": ["vegan"]},
  {"id": 2, "name": "Plain Cookie", "price": 80, "image": "img/cookie.webp", "tags": []}
]`

func writeCatalogFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestDecode(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		expectCount int
		expectError bool
	}{
		{name: "yaml document", input: yamlCatalog, expectCount: 2},
		{name: "json list", input: jsonCatalog, expectCount: 2},
		{name: "empty document", input: "", expectCount: 0},
		{name: "document without products", input: "title: x\n", expectCount: 0},
		{name: "malformed", input: "products: [", expectError: true},
		{name: "scalar", input: "42", expectError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			products, err := Decode([]byte(tt.input))
			if tt.expectError {
				require.Error(t, err)
				assert.ErrorIs(t, err, model.ErrInvalidCatalog)
				return
			}
			require.NoError(t, err)
			assert.Len(t, products, tt.expectCount)
		})
	}
}

func TestDecode_Fields(t *testing.T) {
	products, err := Decode([]byte(yamlCatalog))
	require.NoError(t, err)

	p := products[0]
	assert.Equal(t, 1, p.ID)
	assert.Equal(t, "Choco Cake", p.Name)
	assert.Equal(t, 450.0, p.Price)
	assert.Equal(t, []string{"vegan"}, p.Tags)
	assert.Equal(t, "New", p.Badge)
	assert.Equal(t, "product__badge--new", p.BadgeClass)
	assert.Equal(t, "Rich **dark** chocolate.", p.Description)
}

func TestFileLoader_Load(t *testing.T) {
	ctx := context.Background()
	loader := NewFileLoader(zerolog.Nop())

	products, err := loader.Load(ctx, writeCatalogFile(t, "catalog.yaml", yamlCatalog))
	require.NoError(t, err)
	assert.Len(t, products, 2)

	products, err = loader.Load(ctx, writeCatalogFile(t, "catalog.json", jsonCatalog))
	require.NoError(t, err)
	assert.Len(t, products, 2)

	_, err = loader.Load(ctx, filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

// MockObjectGetter is a mock implementation of ObjectGetter.
type MockObjectGetter struct {
	mock.Mock
}

func (m *MockObjectGetter) GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error) {
	args := m.Called(ctx, *params.Bucket, *params.Key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*s3.GetObjectOutput), args.Error(1)
}

func objectOutput(body string) *s3.GetObjectOutput {
	return &s3.GetObjectOutput{Body: io.NopCloser(bytes.NewReader([]byte(body)))}
}

func TestS3Loader_Load(t *testing.T) {
	ctx := context.Background()

	client := new(MockObjectGetter)
	client.On("GetObject", mock.Anything, "shop", "catalog/catalog.yaml").Return(objectOutput(yamlCatalog), nil)
	client.On("GetObject", mock.Anything, "shop", "catalog/broken.yaml").Return(objectOutput("products: ["), nil)
	client.On("GetObject", mock.Anything, "shop", "catalog/missing.yaml").Return(nil, errors.New("NoSuchKey"))

	loader := NewS3LoaderWithClient(client, "shop", zerolog.Nop())

	products, err := loader.Load(ctx, "catalog/catalog.yaml")
	require.NoError(t, err)
	assert.Len(t, products, 2)

	_, err = loader.Load(ctx, "catalog/broken.yaml")
	assert.ErrorIs(t, err, model.ErrInvalidCatalog)

	_, err = loader.Load(ctx, "catalog/missing.yaml")
	assert.Error(t, err)

	client.AssertExpectations(t)
}

func TestFallbackLoader(t *testing.T) {
	ctx := context.Background()
	localPath := writeCatalogFile(t, "catalog.yaml", yamlCatalog)

	t.Run("uses S3 when available", func(t *testing.T) {
		client := new(MockObjectGetter)
		client.On("GetObject", mock.Anything, "shop", "catalog/"+localPath).Return(objectOutput(jsonCatalog), nil)

		loader := NewFallbackLoader(NewS3LoaderWithClient(client, "shop", zerolog.Nop()), NewFileLoader(zerolog.Nop()), "catalog/", zerolog.Nop())
		products, err := loader.Load(ctx, localPath)
		require.NoError(t, err)
		assert.Len(t, products, 2)
		assert.Empty(t, products[1].Tags)
		client.AssertExpectations(t)
	})

	t.Run("falls back to the local file", func(t *testing.T) {
		client := new(MockObjectGetter)
		client.On("GetObject", mock.Anything, "shop", mock.Anything).Return(nil, errors.New("access denied"))

		loader := NewFallbackLoader(NewS3LoaderWithClient(client, "shop", zerolog.Nop()), NewFileLoader(zerolog.Nop()), "catalog/", zerolog.Nop())
		products, err := loader.Load(ctx, localPath)
		require.NoError(t, err)
		assert.Equal(t, "Rich **dark** chocolate.", products[0].Description)
	})

	t.Run("file only without S3 loader", func(t *testing.T) {
		loader := NewFallbackLoader(nil, NewFileLoader(zerolog.Nop()), "catalog/", zerolog.Nop())
		products, err := loader.Load(ctx, localPath)
		require.NoError(t, err)
		assert.Len(t, products, 2)
	})
}
