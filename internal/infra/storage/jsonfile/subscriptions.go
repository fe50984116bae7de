package jsonfile

import (
	"context"
	"time"

	"github.com/barbearia/barbershop-service/internal/domain"
	subscriptionRepo "github.com/barbearia/barbershop-service/internal/infra/storage/subscription"
)

// SubscriptionStore is the subscription-collection view of the JSON store.
type SubscriptionStore struct {
	s *Store
}

// Create appends a new subscription.
func (ss *SubscriptionStore) Create(ctx context.Context, sub *domain.Subscription) (*domain.Subscription, error) {
	ss.s.mu.Lock()
	defer ss.s.mu.Unlock()

	now := time.Now()
	sub.ID = ss.s.nextID("subscriptions")
	sub.CreatedAt = now
	sub.UpdatedAt = now

	ss.s.data.Subscriptions = append(ss.s.data.Subscriptions, subscriptionToRecord(sub))
	if err := ss.s.saveLocked(); err != nil {
		return nil, err
	}
	return sub, nil
}

// GetActiveByClient returns the client's single active subscription.
func (ss *SubscriptionStore) GetActiveByClient(ctx context.Context, clientID int64) (*domain.Subscription, error) {
	ss.s.mu.Lock()
	defer ss.s.mu.Unlock()

	for i := len(ss.s.data.Subscriptions) - 1; i >= 0; i-- {
		rec := &ss.s.data.Subscriptions[i]
		if rec.ClientID == clientID && rec.Active {
			return subscriptionFromRecord(rec), nil
		}
	}
	return nil, subscriptionRepo.ErrSubscriptionNotFound
}

// Deactivate clears the active flag of a subscription.
func (ss *SubscriptionStore) Deactivate(ctx context.Context, id int64) error {
	ss.s.mu.Lock()
	defer ss.s.mu.Unlock()

	for i := range ss.s.data.Subscriptions {
		if ss.s.data.Subscriptions[i].ID == id {
			ss.s.data.Subscriptions[i].Active = false
			ss.s.data.Subscriptions[i].UpdatedAt = formatTimestamp(time.Now())
			return ss.s.saveLocked()
		}
	}
	return subscriptionRepo.ErrSubscriptionNotFound
}

// CountActive returns the number of active subscriptions.
func (ss *SubscriptionStore) CountActive(ctx context.Context) (int64, error) {
	ss.s.mu.Lock()
	defer ss.s.mu.Unlock()

	var count int64
	for _, rec := range ss.s.data.Subscriptions {
		if rec.Active {
			count++
		}
	}
	return count, nil
}

func subscriptionToRecord(sub *domain.Subscription) subscriptionRecord {
	return subscriptionRecord{
		ID:        sub.ID,
		ClientID:  sub.ClientID,
		PlanID:    sub.PlanID,
		StartDate: formatDate(sub.StartDate),
		Active:    sub.Active,
		CreatedAt: formatTimestamp(sub.CreatedAt),
		UpdatedAt: formatTimestamp(sub.UpdatedAt),
	}
}

func subscriptionFromRecord(rec *subscriptionRecord) *domain.Subscription {
	return &domain.Subscription{
		ID:        rec.ID,
		ClientID:  rec.ClientID,
		PlanID:    rec.PlanID,
		StartDate: parseDate(rec.StartDate),
		Active:    rec.Active,
		CreatedAt: parseTimestamp(rec.CreatedAt),
		UpdatedAt: parseTimestamp(rec.UpdatedAt),
	}
}
