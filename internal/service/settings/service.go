package settings

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/barbearia/barbershop-service/internal/domain"
	settingsRepo "github.com/barbearia/barbershop-service/internal/infra/storage/settings"
)

// Service reads and writes application settings, falling back to the
// built-in defaults for well-known keys that have no stored value.
type Service struct {
	repo   SettingRepository
	logger Logger
}

// NewService creates a new settings service.
func NewService(repo SettingRepository, logger Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

// Get returns the stored value for a key, or its default when the key is
// well-known and nothing is stored yet.
func (s *Service) Get(ctx context.Context, key string) (string, error) {
	value, err := s.repo.Get(ctx, key)
	if err != nil {
		if errors.Is(err, settingsRepo.ErrSettingNotFound) {
			if def, ok := domain.DefaultSettings[key]; ok {
				return def, nil
			}
			s.logger.Warn("Get: setting %q not found", key)
			return "", ErrSettingNotFound
		}
		s.logger.Error("Get: repository error for key=%q: %v", key, err)
		return "", fmt.Errorf("%w: Get - repository error: %v", ErrInternal, err)
	}
	return value, nil
}

// Set stores a value for a key, overwriting any previous value.
func (s *Service) Set(ctx context.Context, key, value string) error {
	key = strings.TrimSpace(key)
	if key == "" {
		return fmt.Errorf("%w: empty setting key", ErrInvalidInput)
	}

	if err := s.repo.Upsert(ctx, key, value); err != nil {
		s.logger.Error("Set: repository error for key=%q: %v", key, err)
		return fmt.Errorf("%w: Set - repository error: %v", ErrInternal, err)
	}
	s.logger.Info("Set: setting %q updated", key)
	return nil
}

// List returns every stored setting merged with defaults for well-known
// keys that have no stored value yet.
func (s *Service) List(ctx context.Context) ([]*domain.Setting, error) {
	stored, err := s.repo.List(ctx)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	seen := make(map[string]bool, len(stored))
	for _, st := range stored {
		seen[st.Key] = true
	}
	for key, def := range domain.DefaultSettings {
		if !seen[key] {
			stored = append(stored, &domain.Setting{Key: key, Value: def})
		}
	}
	return stored, nil
}

// EnsureDefaults writes every well-known key that is missing from storage.
// Existing values are never overwritten.
func (s *Service) EnsureDefaults(ctx context.Context) error {
	for key, def := range domain.DefaultSettings {
		_, err := s.repo.Get(ctx, key)
		if err == nil {
			continue
		}
		if !errors.Is(err, settingsRepo.ErrSettingNotFound) {
			s.logger.Error("EnsureDefaults: repository error for key=%q: %v", key, err)
			return fmt.Errorf("%w: EnsureDefaults - repository error: %v", ErrInternal, err)
		}
		if err := s.repo.Upsert(ctx, key, def); err != nil {
			s.logger.Error("EnsureDefaults: seeding key=%q failed: %v", key, err)
			return fmt.Errorf("%w: EnsureDefaults - repository error: %v", ErrInternal, err)
		}
		s.logger.Info("EnsureDefaults: seeded setting %q=%q", key, def)
	}
	return nil
}

// EmailMode returns the configured email delivery mode.
func (s *Service) EmailMode(ctx context.Context) (string, error) {
	return s.Get(ctx, domain.SettingEmailMode)
}

// EmailFrom returns the configured sender address.
func (s *Service) EmailFrom(ctx context.Context) (string, error) {
	return s.Get(ctx, domain.SettingEmailFrom)
}

// EstimatorTargetCm returns the growth target used by the return estimator.
func (s *Service) EstimatorTargetCm(ctx context.Context) (float64, error) {
	return s.getFloat(ctx, domain.SettingEstimatorTargetCm)
}

// EstimatorBaseRate returns the base growth rate in cm per day.
func (s *Service) EstimatorBaseRate(ctx context.Context) (float64, error) {
	return s.getFloat(ctx, domain.SettingEstimatorBaseRate)
}

func (s *Service) getFloat(ctx context.Context, key string) (float64, error) {
	raw, err := s.Get(ctx, key)
	if err != nil {
		return 0, err
	}
	value, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		s.logger.Error("getFloat: setting %q holds non-numeric value %q", key, raw)
		return 0, fmt.Errorf("%w: %s=%q", ErrInvalidNumericSetting, key, raw)
	}
	return value, nil
}
