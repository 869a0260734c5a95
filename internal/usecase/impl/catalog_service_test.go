package impl

import (
	"context"
	"testing"

	"agriassist/internal/domain/entity"
	domainerrors "agriassist/internal/domain/errors"
	"agriassist/internal/infra/persistence/memory"
	"agriassist/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestCatalogService() usecase.CatalogUsecase {
	store := newEmptyStore()

	return NewCatalogService(CatalogServiceParams{
		CropRepo:    memory.NewCropRepository(store),
		DiseaseRepo: memory.NewDiseaseRepository(store),
		Logger:      newDiscardLogger(),
	})
}

func TestCatalogService_Crops(t *testing.T) {
	svc := createTestCatalogService()
	ctx := context.Background()

	tomato, err := svc.CreateCrop(ctx, entity.Crop{Name: "Tomato", Category: "Vegetables"})
	require.NoError(t, err)
	_, err = svc.CreateCrop(ctx, entity.Crop{Name: "Maize", Category: "Cereals"})
	require.NoError(t, err)

	assert.Len(t, svc.ListCrops(ctx, ""), 2)

	vegetables := svc.ListCrops(ctx, "Vegetables")
	require.Len(t, vegetables, 1)
	assert.Equal(t, tomato.ID, vegetables[0].ID)
	assert.Empty(t, svc.ListCrops(ctx, "vegetables"))

	got, ok := svc.GetCrop(ctx, tomato.ID)
	require.True(t, ok)
	assert.Equal(t, tomato, got)

	_, ok = svc.GetCrop(ctx, "missing")
	assert.False(t, ok)
}

func TestCatalogService_CreateCrop_Invalid(t *testing.T) {
	svc := createTestCatalogService()

	_, err := svc.CreateCrop(context.Background(), entity.Crop{Category: "Vegetables"})

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestCatalogService_Diseases(t *testing.T) {
	svc := createTestCatalogService()
	ctx := context.Background()

	blight, err := svc.CreateDisease(ctx, entity.Disease{Name: "Late Blight", CropID: strPtr("c1")})
	require.NoError(t, err)
	_, err = svc.CreateDisease(ctx, entity.Disease{Name: "Rust", CropID: strPtr("c2")})
	require.NoError(t, err)
	_, err = svc.CreateDisease(ctx, entity.Disease{Name: "Damping Off"})
	require.NoError(t, err)

	assert.Len(t, svc.ListDiseases(ctx, ""), 3)

	forCrop := svc.ListDiseases(ctx, "c1")
	require.Len(t, forCrop, 1)
	assert.Equal(t, blight.ID, forCrop[0].ID)

	got, ok := svc.GetDisease(ctx, blight.ID)
	require.True(t, ok)
	assert.Equal(t, "Late Blight", got.Name)

	_, ok = svc.GetDisease(ctx, "missing")
	assert.False(t, ok)
}
