package settings

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/barbearia/barbershop-service/internal/domain"
	settingsRepo "github.com/barbearia/barbershop-service/internal/infra/storage/settings"
)

type memoryRepo struct {
	values map[string]string
}

func newMemoryRepo() *memoryRepo {
	return &memoryRepo{values: map[string]string{}}
}

func (r *memoryRepo) Get(ctx context.Context, key string) (string, error) {
	value, ok := r.values[key]
	if !ok {
		return "", settingsRepo.ErrSettingNotFound
	}
	return value, nil
}

func (r *memoryRepo) Upsert(ctx context.Context, key, value string) error {
	r.values[key] = value
	return nil
}

func (r *memoryRepo) List(ctx context.Context) ([]*domain.Setting, error) {
	result := make([]*domain.Setting, 0, len(r.values))
	for k, v := range r.values {
		result = append(result, &domain.Setting{Key: k, Value: v})
	}
	return result, nil
}

type noopLogger struct{}

func (noopLogger) Info(format string, v ...interface{})  {}
func (noopLogger) Warn(format string, v ...interface{})  {}
func (noopLogger) Error(format string, v ...interface{}) {}

func TestGet_FallsBackToDefaults(t *testing.T) {
	svc := NewService(newMemoryRepo(), noopLogger{})

	mode, err := svc.Get(context.Background(), domain.SettingEmailMode)
	require.NoError(t, err)
	assert.Equal(t, domain.EmailModeTest, mode)

	_, err = svc.Get(context.Background(), "unknown.key")
	assert.ErrorIs(t, err, ErrSettingNotFound)
}

func TestGet_StoredValueWinsOverDefault(t *testing.T) {
	repo := newMemoryRepo()
	svc := NewService(repo, noopLogger{})

	require.NoError(t, svc.Set(context.Background(), domain.SettingEmailMode, domain.EmailModeSMTP))

	mode, err := svc.Get(context.Background(), domain.SettingEmailMode)
	require.NoError(t, err)
	assert.Equal(t, domain.EmailModeSMTP, mode)
}

func TestSet_RejectsEmptyKey(t *testing.T) {
	svc := NewService(newMemoryRepo(), noopLogger{})
	assert.ErrorIs(t, svc.Set(context.Background(), "  ", "x"), ErrInvalidInput)
}

func TestEnsureDefaults_SeedsMissingOnly(t *testing.T) {
	repo := newMemoryRepo()
	repo.values[domain.SettingEmailFrom] = "barber@example.com"
	svc := NewService(repo, noopLogger{})

	require.NoError(t, svc.EnsureDefaults(context.Background()))

	assert.Len(t, repo.values, len(domain.DefaultSettings))
	assert.Equal(t, "barber@example.com", repo.values[domain.SettingEmailFrom])
	assert.Equal(t, domain.DefaultEstimatorTargetCm, repo.values[domain.SettingEstimatorTargetCm])
}

func TestTypedGetters(t *testing.T) {
	svc := NewService(newMemoryRepo(), noopLogger{})

	target, err := svc.EstimatorTargetCm(context.Background())
	require.NoError(t, err)
	assert.InDelta(t, 1.2, target, 1e-9)

	rate, err := svc.EstimatorBaseRate(context.Background())
	require.NoError(t, err)
	assert.InDelta(t, 0.04, rate, 1e-9)
}

func TestTypedGetters_MalformedNumber(t *testing.T) {
	repo := newMemoryRepo()
	repo.values[domain.SettingEstimatorTargetCm] = "not-a-number"
	svc := NewService(repo, noopLogger{})

	_, err := svc.EstimatorTargetCm(context.Background())
	assert.ErrorIs(t, err, ErrInvalidNumericSetting)
}

func TestList_MergesDefaults(t *testing.T) {
	repo := newMemoryRepo()
	repo.values[domain.SettingEmailMode] = domain.EmailModeSMTP
	svc := NewService(repo, noopLogger{})

	listed, err := svc.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, listed, len(domain.DefaultSettings))

	byKey := map[string]string{}
	for _, s := range listed {
		byKey[s.Key] = s.Value
	}
	assert.Equal(t, domain.EmailModeSMTP, byKey[domain.SettingEmailMode])
	assert.Equal(t, domain.DefaultEmailFrom, byKey[domain.SettingEmailFrom])
}
