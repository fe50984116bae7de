package estimate_return

import (
	"context"
	"errors"
	"fmt"

	"github.com/barbearia/barbershop-service/internal/domain"
	clientRepo "github.com/barbearia/barbershop-service/internal/infra/storage/client"
	settingsService "github.com/barbearia/barbershop-service/internal/service/settings"
)

// Metric strategy labels.
const (
	strategyHeuristic = "heuristic"
	strategyBlended   = "blended"
)

// UseCase suggests a return-visit window for a client based on their age,
// the configured growth rate and, when enough history exists, the observed
// cadence of completed visits.
type UseCase struct {
	clients      ClientRepository
	appointments AppointmentRepository
	settings     SettingsProvider
	metrics      Metrics
	logger       Logger
}

// NewUseCase creates a new return estimation use case.
func NewUseCase(
	clients ClientRepository,
	appointments AppointmentRepository,
	settings SettingsProvider,
	metrics Metrics,
	logger Logger,
) *UseCase {
	return &UseCase{
		clients:      clients,
		appointments: appointments,
		settings:     settings,
		metrics:      metrics,
		logger:       logger,
	}
}

// Execute produces the estimate for one client.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	client, err := uc.clients.GetByID(ctx, req.ClientID)
	if err != nil {
		if errors.Is(err, clientRepo.ErrClientNotFound) {
			uc.logger.Warn("EstimateReturn: client id=%d not found", req.ClientID)
			return nil, ErrClientNotFound
		}
		uc.logger.Error("EstimateReturn: failed to load client id=%d: %v", req.ClientID, err)
		return nil, fmt.Errorf("%w: failed to load client: %v", ErrInternal, err)
	}

	history, err := uc.appointments.ListByClient(ctx, req.ClientID)
	if err != nil {
		uc.logger.Error("EstimateReturn: failed to load history for client id=%d: %v", req.ClientID, err)
		return nil, fmt.Errorf("%w: failed to load history: %v", ErrInternal, err)
	}

	estimate, err := uc.EstimateForClient(ctx, client, history)
	if err != nil {
		return nil, err
	}
	return FromDomainRange(estimate), nil
}

// EstimateForClient computes the estimate from an already loaded client and
// history. The client detail flow reuses this to avoid a second history
// read.
func (uc *UseCase) EstimateForClient(ctx context.Context, client *domain.Client, history []*domain.Appointment) (domain.EstimateRange, error) {
	targetCm, err := uc.settings.EstimatorTargetCm(ctx)
	if err != nil {
		uc.logger.Error("EstimateReturn: failed to resolve target: %v", err)
		return domain.EstimateRange{}, settingsError(err)
	}
	baseRate, err := uc.settings.EstimatorBaseRate(ctx)
	if err != nil {
		uc.logger.Error("EstimateReturn: failed to resolve base rate: %v", err)
		return domain.EstimateRange{}, settingsError(err)
	}
	if targetCm <= 0 || baseRate <= 0 {
		uc.logger.Warn("EstimateReturn: non-positive settings target=%v rate=%v", targetCm, baseRate)
		return domain.EstimateRange{}, ErrInvalidSettings
	}

	baseline := baselineDays(targetCm, ageAdjustedRate(baseRate, client.Age))

	done := doneVisitsAscending(history)
	if len(done) < domain.EstimatorHistoryMinVisits {
		uc.metrics.IncEstimate(strategyHeuristic)
		estimate := heuristicRange(baseline)
		uc.logger.Info("EstimateReturn: client id=%d heuristic range [%d, %d]",
			client.ID, estimate.MinDays, estimate.MaxDays)
		return estimate, nil
	}

	estimate := blendedRange(baseline, averageGapDays(done))
	uc.metrics.IncEstimate(strategyBlended)
	uc.logger.Info("EstimateReturn: client id=%d blended range [%d, %d] from %d completed visits",
		client.ID, estimate.MinDays, estimate.MaxDays, len(done))
	return estimate, nil
}

// settingsError keeps a malformed stored value distinguishable from plain
// repository failures.
func settingsError(err error) error {
	if errors.Is(err, settingsService.ErrInvalidNumericSetting) {
		return fmt.Errorf("%w: %w", ErrInvalidSettings, err)
	}
	return fmt.Errorf("%w: failed to resolve settings: %v", ErrInternal, err)
}
