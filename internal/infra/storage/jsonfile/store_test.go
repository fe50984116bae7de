package jsonfile

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/barbearia/barbershop-service/internal/domain"
	clientRepo "github.com/barbearia/barbershop-service/internal/infra/storage/client"
	planRepo "github.com/barbearia/barbershop-service/internal/infra/storage/plan"
	settingsRepo "github.com/barbearia/barbershop-service/internal/infra/storage/settings"
)

func openTestStore(t *testing.T) (*Store, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "barbershop.json")
	store, err := Open(path)
	require.NoError(t, err)
	return store, path
}

func TestOpen_RoundTripPersistence(t *testing.T) {
	store, path := openTestStore(t)

	created, err := store.Clients().Create(context.Background(), &domain.Client{
		FullName: "Ana Souza",
		Email:    "ana@example.com",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), created.ID)

	reopened, err := Open(path)
	require.NoError(t, err)

	loaded, err := reopened.Clients().GetByID(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Ana Souza", loaded.FullName)
	assert.Equal(t, "ana@example.com", loaded.Email)

	// Counters survive the reload: the next id continues the sequence.
	second, err := reopened.Clients().Create(context.Background(), &domain.Client{
		FullName: "Bruno Dias",
		Email:    "bruno@example.com",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(2), second.ID)
}

func TestClients_DuplicateEmail(t *testing.T) {
	store, _ := openTestStore(t)

	_, err := store.Clients().Create(context.Background(), &domain.Client{
		FullName: "Ana Souza",
		Email:    "ana@example.com",
	})
	require.NoError(t, err)

	_, err = store.Clients().Create(context.Background(), &domain.Client{
		FullName: "Other Ana",
		Email:    "ANA@example.com",
	})
	assert.ErrorIs(t, err, clientRepo.ErrDuplicateEmail)
}

func TestClients_ListFiltersAndSorts(t *testing.T) {
	store, _ := openTestStore(t)
	ctx := context.Background()

	for _, c := range []*domain.Client{
		{FullName: "Carlos Mota", Email: "carlos@example.com"},
		{FullName: "Ana Souza", Email: "ana@example.com"},
		{FullName: "Bruno Dias", Email: "bruno@example.com"},
	} {
		_, err := store.Clients().Create(ctx, c)
		require.NoError(t, err)
	}

	all, err := store.Clients().List(ctx, "")
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "Ana Souza", all[0].FullName)
	assert.Equal(t, "Bruno Dias", all[1].FullName)

	filtered, err := store.Clients().List(ctx, "bruno")
	require.NoError(t, err)
	require.Len(t, filtered, 1)
	assert.Equal(t, "bruno@example.com", filtered[0].Email)
}

func TestPlans_DeleteInUse(t *testing.T) {
	store, _ := openTestStore(t)
	ctx := context.Background()

	client, err := store.Clients().Create(ctx, &domain.Client{FullName: "Ana Souza", Email: "ana@example.com"})
	require.NoError(t, err)

	plan, err := store.Plans().Create(ctx, &domain.Plan{
		Name:        "Basic",
		Price:       79.90,
		DayRule:     domain.DayRuleAnyDay,
		WeeklyLimit: 1,
		Active:      true,
	})
	require.NoError(t, err)

	_, err = store.Subscriptions().Create(ctx, &domain.Subscription{
		ClientID:  client.ID,
		PlanID:    plan.ID,
		StartDate: time.Date(2026, 1, 1, 0, 0, 0, 0, time.Local),
		Active:    true,
	})
	require.NoError(t, err)

	err = store.Plans().Delete(ctx, plan.ID)
	assert.ErrorIs(t, err, planRepo.ErrPlanInUse)
}

func TestSettings_GetUpsert(t *testing.T) {
	store, _ := openTestStore(t)
	ctx := context.Background()

	_, err := store.Settings().Get(ctx, domain.SettingEmailMode)
	assert.ErrorIs(t, err, settingsRepo.ErrSettingNotFound)

	require.NoError(t, store.Settings().Upsert(ctx, domain.SettingEmailMode, domain.EmailModeSMTP))
	require.NoError(t, store.Settings().Upsert(ctx, domain.SettingEmailMode, domain.EmailModeTest))

	value, err := store.Settings().Get(ctx, domain.SettingEmailMode)
	require.NoError(t, err)
	assert.Equal(t, domain.EmailModeTest, value)

	listed, err := store.Settings().List(ctx)
	require.NoError(t, err)
	assert.Len(t, listed, 1)
}

func TestDoSerializable_RollsBackOnError(t *testing.T) {
	store, path := openTestStore(t)
	ctx := context.Background()

	_, err := store.Clients().Create(ctx, &domain.Client{FullName: "Ana Souza", Email: "ana@example.com"})
	require.NoError(t, err)

	boom := errors.New("boom")
	err = store.DoSerializable(ctx, func(ctx context.Context) error {
		if _, err := store.Clients().Create(ctx, &domain.Client{FullName: "Bruno Dias", Email: "bruno@example.com"}); err != nil {
			return err
		}
		return boom
	})
	assert.ErrorIs(t, err, boom)

	all, err := store.Clients().List(ctx, "")
	require.NoError(t, err)
	assert.Len(t, all, 1)

	// The rollback also reaches the file on disk.
	reopened, err := Open(path)
	require.NoError(t, err)
	persisted, err := reopened.Clients().List(ctx, "")
	require.NoError(t, err)
	assert.Len(t, persisted, 1)
}

func TestDoSerializable_CommitsOnSuccess(t *testing.T) {
	store, _ := openTestStore(t)
	ctx := context.Background()

	err := store.DoSerializable(ctx, func(ctx context.Context) error {
		_, err := store.Clients().Create(ctx, &domain.Client{FullName: "Ana Souza", Email: "ana@example.com"})
		return err
	})
	require.NoError(t, err)

	all, err := store.Clients().List(ctx, "")
	require.NoError(t, err)
	assert.Len(t, all, 1)
}
