package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"agriassist/internal/domain/entity"
	"agriassist/internal/domain/service"
	"agriassist/internal/infra/persistence/memory"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newEmptyStore() *memory.Store {
	return memory.New(memory.WithSeed(false))
}

func strPtr(s string) *string {
	return &s
}

// mockInferenceGateway is a testify mock of service.InferenceGateway.
type mockInferenceGateway struct {
	mock.Mock
}

func newMockInferenceGateway(t *testing.T) *mockInferenceGateway {
	m := &mockInferenceGateway{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *mockInferenceGateway) DiagnoseImage(ctx context.Context, image service.ImagePayload, cropName string, symptoms []string) (*service.ImageDiagnosis, error) {
	args := m.Called(ctx, image, cropName, symptoms)
	result, _ := args.Get(0).(*service.ImageDiagnosis)

	return result, args.Error(1)
}

func (m *mockInferenceGateway) Converse(ctx context.Context, history []service.ChatTurn, userContext map[string]any) (string, error) {
	args := m.Called(ctx, history, userContext)

	return args.String(0), args.Error(1)
}

// mockPasswordHasher is a testify mock of service.PasswordHasher.
type mockPasswordHasher struct {
	mock.Mock
}

func newMockPasswordHasher(t *testing.T) *mockPasswordHasher {
	m := &mockPasswordHasher{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *mockPasswordHasher) Hash(password string) (string, error) {
	args := m.Called(password)

	return args.String(0), args.Error(1)
}

func (m *mockPasswordHasher) Check(password, hash string) bool {
	return m.Called(password, hash).Bool(0)
}

func createCrop(t *testing.T, store *memory.Store, name string) *entity.Crop {
	t.Helper()

	crop, err := memory.NewCropRepository(store).CreateCrop(context.Background(), entity.Crop{Name: name, Category: "Vegetables"})
	require.NoError(t, err)

	return crop
}
