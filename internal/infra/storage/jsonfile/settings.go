package jsonfile

import (
	"context"
	"sort"

	"github.com/barbearia/barbershop-service/internal/domain"
	settingsRepo "github.com/barbearia/barbershop-service/internal/infra/storage/settings"
)

// SettingStore is the settings-collection view of the JSON store.
type SettingStore struct {
	s *Store
}

// Get returns the stored value for a key.
func (st *SettingStore) Get(ctx context.Context, key string) (string, error) {
	st.s.mu.Lock()
	defer st.s.mu.Unlock()

	for _, rec := range st.s.data.Settings {
		if rec.Key == key {
			return rec.Value, nil
		}
	}
	return "", settingsRepo.ErrSettingNotFound
}

// Upsert stores the value for a key, keeping exactly one record per key.
func (st *SettingStore) Upsert(ctx context.Context, key, value string) error {
	st.s.mu.Lock()
	defer st.s.mu.Unlock()

	for i := range st.s.data.Settings {
		if st.s.data.Settings[i].Key == key {
			st.s.data.Settings[i].Value = value
			return st.s.saveLocked()
		}
	}
	st.s.data.Settings = append(st.s.data.Settings, settingRecord{Key: key, Value: value})
	return st.s.saveLocked()
}

// List returns every setting record ordered by key.
func (st *SettingStore) List(ctx context.Context) ([]*domain.Setting, error) {
	st.s.mu.Lock()
	defer st.s.mu.Unlock()

	result := make([]*domain.Setting, 0, len(st.s.data.Settings))
	for _, rec := range st.s.data.Settings {
		result = append(result, &domain.Setting{Key: rec.Key, Value: rec.Value})
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Key < result[j].Key })
	return result, nil
}
