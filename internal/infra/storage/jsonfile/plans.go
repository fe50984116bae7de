package jsonfile

import (
	"context"
	"strings"
	"time"

	"github.com/barbearia/barbershop-service/internal/domain"
	planRepo "github.com/barbearia/barbershop-service/internal/infra/storage/plan"
)

// PlanStore is the plan-collection view of the JSON store.
type PlanStore struct {
	s *Store
}

// Create appends a new plan, enforcing the unique-name invariant.
func (ps *PlanStore) Create(ctx context.Context, p *domain.Plan) (*domain.Plan, error) {
	ps.s.mu.Lock()
	defer ps.s.mu.Unlock()

	for _, rec := range ps.s.data.Plans {
		if strings.EqualFold(rec.Name, p.Name) {
			return nil, planRepo.ErrDuplicateName
		}
	}

	now := time.Now()
	p.ID = ps.s.nextID("plans")
	p.CreatedAt = now
	p.UpdatedAt = now

	ps.s.data.Plans = append(ps.s.data.Plans, planToRecord(p))
	if err := ps.s.saveLocked(); err != nil {
		return nil, err
	}
	return p, nil
}

// GetByID fetches a plan by id.
func (ps *PlanStore) GetByID(ctx context.Context, id int64) (*domain.Plan, error) {
	ps.s.mu.Lock()
	defer ps.s.mu.Unlock()

	for i := range ps.s.data.Plans {
		if ps.s.data.Plans[i].ID == id {
			return planFromRecord(&ps.s.data.Plans[i]), nil
		}
	}
	return nil, planRepo.ErrPlanNotFound
}

// GetByName fetches a plan by case-insensitive name match.
func (ps *PlanStore) GetByName(ctx context.Context, name string) (*domain.Plan, error) {
	ps.s.mu.Lock()
	defer ps.s.mu.Unlock()

	for i := range ps.s.data.Plans {
		if strings.EqualFold(ps.s.data.Plans[i].Name, name) {
			return planFromRecord(&ps.s.data.Plans[i]), nil
		}
	}
	return nil, planRepo.ErrPlanNotFound
}

// List returns all plans ordered by name.
func (ps *PlanStore) List(ctx context.Context) ([]*domain.Plan, error) {
	ps.s.mu.Lock()
	defer ps.s.mu.Unlock()

	plans := make([]*domain.Plan, 0, len(ps.s.data.Plans))
	for i := range ps.s.data.Plans {
		plans = append(plans, planFromRecord(&ps.s.data.Plans[i]))
	}
	sortPlansByName(plans)
	return plans, nil
}

// Update overwrites the mutable fields of a plan.
func (ps *PlanStore) Update(ctx context.Context, p *domain.Plan) error {
	ps.s.mu.Lock()
	defer ps.s.mu.Unlock()

	for i := range ps.s.data.Plans {
		rec := &ps.s.data.Plans[i]
		if rec.ID != p.ID && strings.EqualFold(rec.Name, p.Name) {
			return planRepo.ErrDuplicateName
		}
	}

	for i := range ps.s.data.Plans {
		if ps.s.data.Plans[i].ID == p.ID {
			p.UpdatedAt = time.Now()
			updated := planToRecord(p)
			updated.CreatedAt = ps.s.data.Plans[i].CreatedAt
			ps.s.data.Plans[i] = updated
			return ps.s.saveLocked()
		}
	}
	return planRepo.ErrPlanNotFound
}

// Delete removes a plan unless subscriptions still reference it.
func (ps *PlanStore) Delete(ctx context.Context, id int64) error {
	ps.s.mu.Lock()
	defer ps.s.mu.Unlock()

	for _, sub := range ps.s.data.Subscriptions {
		if sub.PlanID == id {
			return planRepo.ErrPlanInUse
		}
	}

	for i := range ps.s.data.Plans {
		if ps.s.data.Plans[i].ID == id {
			ps.s.data.Plans = append(ps.s.data.Plans[:i], ps.s.data.Plans[i+1:]...)
			return ps.s.saveLocked()
		}
	}
	return planRepo.ErrPlanNotFound
}

// CountInactive returns the number of deactivated plans.
func (ps *PlanStore) CountInactive(ctx context.Context) (int64, error) {
	ps.s.mu.Lock()
	defer ps.s.mu.Unlock()

	var count int64
	for _, rec := range ps.s.data.Plans {
		if !rec.Active {
			count++
		}
	}
	return count, nil
}

func planToRecord(p *domain.Plan) planRecord {
	return planRecord{
		ID:                         p.ID,
		Name:                       p.Name,
		Price:                      p.Price,
		DayRule:                    string(p.DayRule),
		MinDaysBetweenAppointments: p.MinDaysBetweenAppointments,
		WeeklyLimit:                p.WeeklyLimit,
		Active:                     p.Active,
		CreatedAt:                  formatTimestamp(p.CreatedAt),
		UpdatedAt:                  formatTimestamp(p.UpdatedAt),
	}
}

func planFromRecord(rec *planRecord) *domain.Plan {
	return &domain.Plan{
		ID:                         rec.ID,
		Name:                       rec.Name,
		Price:                      rec.Price,
		DayRule:                    domain.PlanDayRule(rec.DayRule),
		MinDaysBetweenAppointments: rec.MinDaysBetweenAppointments,
		WeeklyLimit:                rec.WeeklyLimit,
		Active:                     rec.Active,
		CreatedAt:                  parseTimestamp(rec.CreatedAt),
		UpdatedAt:                  parseTimestamp(rec.UpdatedAt),
	}
}
