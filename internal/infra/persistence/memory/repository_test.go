package memory

import (
	"context"
	"sync"
	"testing"
	"time"

	"agriassist/internal/domain/entity"
	domainerrors "agriassist/internal/domain/errors"
	"agriassist/internal/domain/repository"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserRepository(t *testing.T) {
	repo := NewUserRepository(New(WithSeed(false)))
	ctx := context.Background()

	user, err := repo.CreateUser(ctx, entity.User{Username: "farmer1", PasswordHash: "hash", Email: ptr("f@example.com")})
	require.NoError(t, err)
	assert.NotEmpty(t, user.ID)
	assert.False(t, user.CreatedAt.IsZero())

	byID, ok := repo.FindUserByID(ctx, user.ID)
	require.True(t, ok)
	assert.Equal(t, user, byID)

	byName, ok := repo.FindUserByUsername(ctx, "farmer1")
	require.True(t, ok)
	assert.Equal(t, user.ID, byName.ID)

	_, ok = repo.FindUserByUsername(ctx, "Farmer1")
	assert.False(t, ok)

	_, err = repo.CreateUser(ctx, entity.User{Username: "farmer1", PasswordHash: "other"})
	assert.True(t, errors.Is(err, domainerrors.ErrUsernameTaken))

	_, err = repo.CreateUser(ctx, entity.User{Username: "nopass"})
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestUserRepository_ConcurrentDuplicateUsername(t *testing.T) {
	repo := NewUserRepository(New(WithSeed(false)))
	ctx := context.Background()

	const attempts = 20
	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		succeeded int
	)
	for range attempts {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := repo.CreateUser(ctx, entity.User{Username: "same", PasswordHash: "hash"}); err == nil {
				mu.Lock()
				succeeded++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, succeeded)
}

func TestCropRepository(t *testing.T) {
	repo := NewCropRepository(New(WithSeed(false)))
	ctx := context.Background()

	_, ok := repo.FindCropByID(ctx, "missing")
	assert.False(t, ok)
	assert.NotNil(t, repo.ListCrops(ctx))
	assert.Empty(t, repo.ListCrops(ctx))

	crop, err := repo.CreateCrop(ctx, entity.Crop{Name: "Cassava", Category: "tubers"})
	require.NoError(t, err)

	got, ok := repo.FindCropByID(ctx, crop.ID)
	require.True(t, ok)
	assert.Equal(t, crop, got)

	assert.Len(t, repo.ListCropsByCategory(ctx, "tubers"), 1)
	assert.Empty(t, repo.ListCropsByCategory(ctx, "Tubers"))

	for _, invalid := range []entity.Crop{{Category: "tubers"}, {Name: "Yam"}} {
		_, err := repo.CreateCrop(ctx, invalid)
		assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
	}
}

func TestCropRepository_ReturnsCopies(t *testing.T) {
	repo := NewCropRepository(New(WithSeed(false)))
	ctx := context.Background()

	crop, err := repo.CreateCrop(ctx, entity.Crop{Name: "Cassava", Category: "tubers", Description: ptr("root crop")})
	require.NoError(t, err)

	crop.Name = "mutated"
	*crop.Description = "mutated"

	listed := repo.ListCrops(ctx)
	listed[0].Category = "mutated"

	got, ok := repo.FindCropByID(ctx, crop.ID)
	require.True(t, ok)
	assert.Equal(t, "Cassava", got.Name)
	assert.Equal(t, "root crop", *got.Description)
	assert.Equal(t, "tubers", got.Category)
}

func TestDiseaseRepository(t *testing.T) {
	repo := NewDiseaseRepository(New(WithSeed(false)))
	ctx := context.Background()

	symptoms := []string{"wilting"}
	disease, err := repo.CreateDisease(ctx, entity.Disease{Name: "Bacterial Wilt", CropID: ptr("no-such-crop"), Symptoms: symptoms})
	require.NoError(t, err)
	symptoms[0] = "mutated"

	got, ok := repo.FindDiseaseByID(ctx, disease.ID)
	require.True(t, ok)
	assert.Equal(t, "no-such-crop", *got.CropID)
	assert.Equal(t, []string{"wilting"}, got.Symptoms)

	assert.Len(t, repo.ListDiseasesByCrop(ctx, "no-such-crop"), 1)
	assert.Empty(t, repo.ListDiseasesByCrop(ctx, "other"))

	_, err = repo.CreateDisease(ctx, entity.Disease{})
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestDiagnosisRepository(t *testing.T) {
	repo := NewDiagnosisRepository(New(WithSeed(false)))
	ctx := context.Background()

	first, err := repo.CreateDiagnosis(ctx, entity.Diagnosis{UserID: ptr("u1")})
	require.NoError(t, err)
	second, err := repo.CreateDiagnosis(ctx, entity.Diagnosis{UserID: ptr("u2")})
	require.NoError(t, err)
	third, err := repo.CreateDiagnosis(ctx, entity.Diagnosis{})
	require.NoError(t, err)

	assert.True(t, second.CreatedAt.After(first.CreatedAt))
	assert.Equal(t, 3, repo.CountDiagnoses(ctx))

	all := repo.ListDiagnoses(ctx, "")
	require.Len(t, all, 3)
	assert.Equal(t, []string{first.ID, second.ID, third.ID}, []string{all[0].ID, all[1].ID, all[2].ID})

	mine := repo.ListDiagnoses(ctx, "u1")
	require.Len(t, mine, 1)
	assert.Equal(t, first.ID, mine[0].ID)

	assert.Equal(t, all, repo.ListDiagnoses(ctx, ""))
}

func TestExpertRepository_Filter(t *testing.T) {
	repo := NewExpertRepository(New(WithSeed(false)))
	ctx := context.Background()

	a, err := repo.CreateExpert(ctx, entity.Expert{Name: "A", District: ptr("Nakuru"), Specialization: []string{"cereals"}, Languages: []string{"English", "Swahili"}})
	require.NoError(t, err)
	b, err := repo.CreateExpert(ctx, entity.Expert{Name: "B", District: ptr("Nakuru"), Specialization: []string{"fruits"}, Languages: []string{"English"}})
	require.NoError(t, err)
	_, err = repo.CreateExpert(ctx, entity.Expert{Name: "C", Specialization: []string{"cereals"}, Languages: []string{"Swahili"}})
	require.NoError(t, err)

	tests := []struct {
		name   string
		filter repository.ExpertFilter
		want   []string
	}{
		{name: "district", filter: repository.ExpertFilter{District: "Nakuru"}, want: []string{a.ID, b.ID}},
		{name: "district is exact", filter: repository.ExpertFilter{District: "nakuru"}, want: []string{}},
		{name: "language", filter: repository.ExpertFilter{Language: "English"}, want: []string{a.ID, b.ID}},
		{name: "intersection", filter: repository.ExpertFilter{District: "Nakuru", Specialization: "cereals", Language: "Swahili"}, want: []string{a.ID}},
		{name: "no match", filter: repository.ExpertFilter{Specialization: "cereals", Language: "Arabic"}, want: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := []string{}
			for _, e := range repo.ListExpertsByFilter(ctx, tt.filter) {
				got = append(got, e.ID)
			}
			assert.Equal(t, tt.want, got)
		})
	}

	assert.Len(t, repo.ListExperts(ctx), 3)
}

func TestAlertRepository_PublishedAtAndExpiry(t *testing.T) {
	now := time.Date(2026, time.June, 1, 12, 0, 0, 0, time.UTC)
	repo := NewAlertRepository(New(WithSeed(false), WithClock(fixedClock(now))))
	ctx := context.Background()

	supplied := now.Add(-48 * time.Hour)
	expiresAt := now.Add(-time.Minute)
	expired, err := repo.CreateAlert(ctx, entity.Alert{Title: "Expired", Description: "d", Type: "weather", PublishedAt: supplied, ExpiresAt: &expiresAt})
	require.NoError(t, err)
	assert.Equal(t, now, expired.PublishedAt)

	expiresAt = now
	boundary, err := repo.CreateAlert(ctx, entity.Alert{Title: "Boundary", Description: "d", Type: "weather", ExpiresAt: &expiresAt})
	require.NoError(t, err)
	assert.True(t, boundary.ExpiresAt.Equal(now))

	open, err := repo.CreateAlert(ctx, entity.Alert{Title: "Open", Description: "d", Type: "pest"})
	require.NoError(t, err)

	all := repo.ListAlerts(ctx)
	require.Len(t, all, 3)
	assert.Equal(t, []string{open.ID, boundary.ID, expired.ID}, []string{all[0].ID, all[1].ID, all[2].ID})

	active := repo.ListActiveAlerts(ctx)
	require.Len(t, active, 1)
	assert.Equal(t, open.ID, active[0].ID)

	_, err = repo.CreateAlert(ctx, entity.Alert{Title: "No type", Description: "d"})
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestChatMessageRepository(t *testing.T) {
	repo := NewChatMessageRepository(New(WithSeed(false)))
	ctx := context.Background()

	metadata := map[string]any{"crop": "maize"}
	first, err := repo.CreateChatMessage(ctx, entity.ChatMessage{UserID: ptr("u1"), Role: entity.ChatRoleUser, Content: "hi", Metadata: metadata})
	require.NoError(t, err)
	metadata["crop"] = "mutated"

	_, err = repo.CreateChatMessage(ctx, entity.ChatMessage{UserID: ptr("u2"), Role: entity.ChatRoleUser, Content: "other"})
	require.NoError(t, err)
	second, err := repo.CreateChatMessage(ctx, entity.ChatMessage{UserID: ptr("u1"), Role: entity.ChatRoleAssistant, Content: "hello"})
	require.NoError(t, err)

	history := repo.ListChatMessagesByUser(ctx, "u1")
	require.Len(t, history, 2)
	assert.Equal(t, first.ID, history[0].ID)
	assert.Equal(t, second.ID, history[1].ID)
	assert.Equal(t, "maize", history[0].Metadata["crop"])
	assert.Empty(t, repo.ListChatMessagesByUser(ctx, "nobody"))

	_, err = repo.CreateChatMessage(ctx, entity.ChatMessage{Role: "system", Content: "x"})
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
	_, err = repo.CreateChatMessage(ctx, entity.ChatMessage{Role: entity.ChatRoleUser})
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestFeedbackRepository(t *testing.T) {
	repo := NewFeedbackRepository(New(WithSeed(false)))
	ctx := context.Background()

	first, err := repo.CreateFeedback(ctx, entity.Feedback{Type: "bug", Message: "broken", Status: "resolved"})
	require.NoError(t, err)
	assert.Equal(t, entity.FeedbackStatusPending, first.Status)

	second, err := repo.CreateFeedback(ctx, entity.Feedback{Type: "general", Message: "thanks"})
	require.NoError(t, err)

	listed := repo.ListFeedback(ctx)
	require.Len(t, listed, 2)
	assert.Equal(t, second.ID, listed[0].ID)
	assert.Equal(t, first.ID, listed[1].ID)

	_, err = repo.CreateFeedback(ctx, entity.Feedback{Message: "no type"})
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestChatMessageRepository_NestedMetadataIsCopied(t *testing.T) {
	repo := NewChatMessageRepository(New(WithSeed(false)))
	ctx := context.Background()

	nested := map[string]any{"crop": "tomato"}
	tags := []any{"blight"}
	created, err := repo.CreateChatMessage(ctx, entity.ChatMessage{
		UserID:   ptr("u1"),
		Role:     entity.ChatRoleUser,
		Content:  "leaves are spotted",
		Metadata: map[string]any{"ctx": nested, "tags": tags},
	})
	require.NoError(t, err)

	nested["crop"] = "changed by caller"
	tags[0] = "changed by caller"
	created.Metadata["ctx"].(map[string]any)["crop"] = "changed on returned value"

	listed := repo.ListChatMessagesByUser(ctx, "u1")
	require.Len(t, listed, 1)
	listed[0].Metadata["ctx"].(map[string]any)["crop"] = "changed on listed value"

	got, ok := repo.FindChatMessageByID(ctx, created.ID)
	require.True(t, ok)
	assert.Equal(t, "tomato", got.Metadata["ctx"].(map[string]any)["crop"])
	assert.Equal(t, []any{"blight"}, got.Metadata["tags"])
}

func TestRepositories_CreateThenFindByID(t *testing.T) {
	store := New(WithSeed(false))
	ctx := context.Background()

	t.Run("user", func(t *testing.T) {
		repo := NewUserRepository(store)
		created, err := repo.CreateUser(ctx, entity.User{Username: "grower", PasswordHash: "hash", Language: ptr("sw")})
		require.NoError(t, err)
		got, ok := repo.FindUserByID(ctx, created.ID)
		require.True(t, ok)
		assert.Equal(t, created, got)
	})

	t.Run("crop", func(t *testing.T) {
		repo := NewCropRepository(store)
		created, err := repo.CreateCrop(ctx, entity.Crop{Name: "Sorghum", Category: "cereals", ScientificName: ptr("Sorghum bicolor")})
		require.NoError(t, err)
		got, ok := repo.FindCropByID(ctx, created.ID)
		require.True(t, ok)
		assert.Equal(t, created, got)
	})

	t.Run("disease", func(t *testing.T) {
		repo := NewDiseaseRepository(store)
		created, err := repo.CreateDisease(ctx, entity.Disease{Name: "Leaf Rust", Symptoms: []string{"orange pustules"}})
		require.NoError(t, err)
		got, ok := repo.FindDiseaseByID(ctx, created.ID)
		require.True(t, ok)
		assert.Equal(t, created, got)
	})

	t.Run("diagnosis", func(t *testing.T) {
		repo := NewDiagnosisRepository(store)
		created, err := repo.CreateDiagnosis(ctx, entity.Diagnosis{UserID: ptr("u1"), Symptoms: []string{"yellowing"}})
		require.NoError(t, err)
		got, ok := repo.FindDiagnosisByID(ctx, created.ID)
		require.True(t, ok)
		assert.Equal(t, created, got)
	})

	t.Run("expert", func(t *testing.T) {
		repo := NewExpertRepository(store)
		created, err := repo.CreateExpert(ctx, entity.Expert{Name: "Dr. Otieno", Languages: []string{"English"}, Verified: ptr(true)})
		require.NoError(t, err)
		got, ok := repo.FindExpertByID(ctx, created.ID)
		require.True(t, ok)
		assert.Equal(t, created, got)

		_, ok = repo.FindExpertByID(ctx, "missing")
		assert.False(t, ok)
	})

	t.Run("alert", func(t *testing.T) {
		repo := NewAlertRepository(store)
		created, err := repo.CreateAlert(ctx, entity.Alert{Title: "Locusts", Description: "d", Type: "pest", CropIDs: []string{"c1"}})
		require.NoError(t, err)
		got, ok := repo.FindAlertByID(ctx, created.ID)
		require.True(t, ok)
		assert.Equal(t, created, got)

		_, ok = repo.FindAlertByID(ctx, "missing")
		assert.False(t, ok)
	})

	t.Run("chat message", func(t *testing.T) {
		repo := NewChatMessageRepository(store)
		created, err := repo.CreateChatMessage(ctx, entity.ChatMessage{Role: entity.ChatRoleUser, Content: "hello", Metadata: map[string]any{"region": "Rift Valley"}})
		require.NoError(t, err)
		got, ok := repo.FindChatMessageByID(ctx, created.ID)
		require.True(t, ok)
		assert.Equal(t, created, got)

		_, ok = repo.FindChatMessageByID(ctx, "missing")
		assert.False(t, ok)
	})

	t.Run("feedback", func(t *testing.T) {
		repo := NewFeedbackRepository(store)
		created, err := repo.CreateFeedback(ctx, entity.Feedback{Type: "general", Message: "useful", Name: ptr("Amina")})
		require.NoError(t, err)
		got, ok := repo.FindFeedbackByID(ctx, created.ID)
		require.True(t, ok)
		assert.Equal(t, created, got)

		_, ok = repo.FindFeedbackByID(ctx, "missing")
		assert.False(t, ok)
	})
}

func TestRepositories_ListingsAreRepeatable(t *testing.T) {
	store := New()
	ctx := context.Background()

	crops := NewCropRepository(store)
	diseases := NewDiseaseRepository(store)
	diagnoses := NewDiagnosisRepository(store)
	experts := NewExpertRepository(store)
	alerts := NewAlertRepository(store)
	chat := NewChatMessageRepository(store)
	feedback := NewFeedbackRepository(store)

	for i := range 3 {
		_, err := diseases.CreateDisease(ctx, entity.Disease{Name: "Blight", CropID: ptr("c1")})
		require.NoError(t, err)
		_, err = diagnoses.CreateDiagnosis(ctx, entity.Diagnosis{UserID: ptr("u1")})
		require.NoError(t, err)
		_, err = alerts.CreateAlert(ctx, entity.Alert{Title: "Rain", Description: "d", Type: "weather"})
		require.NoError(t, err)
		role := entity.ChatRoleUser
		if i%2 == 1 {
			role = entity.ChatRoleAssistant
		}
		_, err = chat.CreateChatMessage(ctx, entity.ChatMessage{UserID: ptr("u1"), Role: role, Content: "turn"})
		require.NoError(t, err)
		_, err = feedback.CreateFeedback(ctx, entity.Feedback{Type: "general", Message: "ok"})
		require.NoError(t, err)
	}

	tests := []struct {
		name string
		list func() []string
	}{
		{name: "crops", list: func() []string { return ids(crops.ListCrops(ctx), func(c *entity.Crop) string { return c.ID }) }},
		{name: "diseases by crop", list: func() []string {
			return ids(diseases.ListDiseasesByCrop(ctx, "c1"), func(d *entity.Disease) string { return d.ID })
		}},
		{name: "diagnoses", list: func() []string {
			return ids(diagnoses.ListDiagnoses(ctx, ""), func(d *entity.Diagnosis) string { return d.ID })
		}},
		{name: "experts", list: func() []string { return ids(experts.ListExperts(ctx), func(e *entity.Expert) string { return e.ID }) }},
		{name: "alerts", list: func() []string { return ids(alerts.ListAlerts(ctx), func(a *entity.Alert) string { return a.ID }) }},
		{name: "active alerts", list: func() []string {
			return ids(alerts.ListActiveAlerts(ctx), func(a *entity.Alert) string { return a.ID })
		}},
		{name: "chat messages", list: func() []string {
			return ids(chat.ListChatMessagesByUser(ctx, "u1"), func(m *entity.ChatMessage) string { return m.ID })
		}},
		{name: "feedback", list: func() []string {
			return ids(feedback.ListFeedback(ctx), func(f *entity.Feedback) string { return f.ID })
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			first := tt.list()
			require.NotEmpty(t, first)
			assert.Equal(t, first, tt.list())
		})
	}
}

func ids[T any](items []*T, id func(*T) string) []string {
	out := make([]string, 0, len(items))
	for _, item := range items {
		out = append(out, id(item))
	}

	return out
}
