package store

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/spec-kit/equiflow/internal/domain"
	"github.com/spec-kit/equiflow/internal/persistence"
	apperrors "github.com/spec-kit/equiflow/pkg/util"
)

func openTestStore(t *testing.T, kv persistence.KeyValue) *Store {
	t.Helper()
	st, err := Open(context.Background(), kv, "test", zap.NewNop())
	require.NoError(t, err)
	return st
}

func TestOpenSeedsEmptyBackend(t *testing.T) {
	st := openTestStore(t, persistence.NewMemory())

	assert.Equal(t, SeedUsers(), st.Users())
	assert.Equal(t, SeedItems(), st.Items())
	assert.Empty(t, st.Reservations())
	assert.Equal(t, SeedCategories(), st.Categories())
}

func TestOpenFallsBackOnUnparseableBlob(t *testing.T) {
	kv := persistence.NewMemory()
	require.NoError(t, kv.Set(context.Background(), "test_users", "{not json"))

	st := openTestStore(t, kv)
	assert.Equal(t, SeedUsers(), st.Users())
}

func TestOpenDropsMalformedRecords(t *testing.T) {
	ctx := context.Background()
	kv := persistence.NewMemory()

	users := []domain.User{
		{ID: "u1", Name: "Alice Chen", Role: domain.RoleAdmin},
		{ID: "", Name: "No ID", Role: domain.RoleEmployee},
		{ID: "u2", Name: "Bad Role", Role: "manager"},
	}
	blob, err := json.Marshal(users)
	require.NoError(t, err)
	require.NoError(t, kv.Set(ctx, "test_users", string(blob)))

	st := openTestStore(t, kv)
	loaded := st.Users()
	require.Len(t, loaded, 1)
	assert.Equal(t, "u1", loaded[0].ID)
}

func TestMutatePersistsDirtyCollections(t *testing.T) {
	ctx := context.Background()
	kv := persistence.NewMemory()
	st := openTestStore(t, kv)

	err := st.Mutate(ctx, func(state *State) (Dirty, error) {
		state.Categories = append(state.Categories, "Drones")
		return Dirty{Categories: true}, nil
	})
	require.NoError(t, err)

	blob, ok, err := kv.Get(ctx, "test_categories")
	require.NoError(t, err)
	require.True(t, ok)

	var categories []string
	require.NoError(t, json.Unmarshal([]byte(blob), &categories))
	assert.Contains(t, categories, "Drones")

	// collections not marked dirty are not written
	_, ok, err = kv.Get(ctx, "test_reservations")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestMutateErrorLeavesBackendUntouched(t *testing.T) {
	ctx := context.Background()
	kv := persistence.NewMemory()
	st := openTestStore(t, kv)

	wantErr := apperrors.NewValidationError("nope", nil)
	err := st.Mutate(ctx, func(state *State) (Dirty, error) {
		return Dirty{}, wantErr
	})
	require.ErrorIs(t, err, wantErr)

	_, ok, err := kv.Get(ctx, "test_users")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestExportImportRoundTrip(t *testing.T) {
	ctx := context.Background()
	source := openTestStore(t, persistence.NewMemory())
	require.NoError(t, source.Mutate(ctx, func(state *State) (Dirty, error) {
		state.Reservations = []domain.Reservation{{
			ID:        "r1",
			UserID:    "u1",
			UserName:  "Alice Chen",
			ItemIDs:   []string{"it1"},
			StartDate: "2024-01-10",
			EndDate:   "2024-01-12",
			Status:    domain.ReservationStatusPending,
		}}
		return Dirty{Reservations: true}, nil
	}))

	bundle, err := source.Export()
	require.NoError(t, err)

	targetKV := persistence.NewMemory()
	target := openTestStore(t, targetKV)
	require.NoError(t, target.Import(ctx, bundle))

	assert.Equal(t, source.Users(), target.Users())
	assert.Equal(t, source.Items(), target.Items())
	assert.Equal(t, source.Reservations(), target.Reservations())
	assert.Equal(t, source.Categories(), target.Categories())

	// import persists every key
	for _, key := range []string{"test_users", "test_items", "test_reservations", "test_categories"} {
		_, ok, err := targetKV.Get(ctx, key)
		require.NoError(t, err)
		assert.True(t, ok, key)
	}
}

func TestImportRejectsMalformedBundles(t *testing.T) {
	partial, err := json.Marshal(map[string]any{
		"users":      []domain.User{},
		"items":      []domain.EquipmentItem{},
		"categories": []string{},
		// reservations key missing
	})
	require.NoError(t, err)

	tests := []struct {
		name    string
		encoded string
	}{
		{name: "not base64", encoded: "%%%not-base64%%%"},
		{name: "not json", encoded: base64.StdEncoding.EncodeToString([]byte("{oops"))},
		{name: "missing collection", encoded: base64.StdEncoding.EncodeToString(partial)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			st := openTestStore(t, persistence.NewMemory())
			before := st.Users()

			err := st.Import(ctx, tt.encoded)
			require.Error(t, err)
			assert.True(t, apperrors.IsCode(err, "MALFORMED_BUNDLE"))

			// prior state untouched
			assert.Equal(t, before, st.Users())
		})
	}
}
