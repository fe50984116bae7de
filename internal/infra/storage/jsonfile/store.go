// Package jsonfile is the single-file record-store backend. It keeps the
// whole dataset in one JSON document (the layout the shop's previous
// tooling produced) and satisfies the same repository contracts as the
// PostgreSQL packages, returning their sentinel errors so callers are
// backend-agnostic.
package jsonfile

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// Store owns the JSON document. Individual operations are atomic under the
// store mutex; DoSerializable additionally serializes whole transactions
// against each other and rolls the document back on failure.
type Store struct {
	path string

	mu   sync.Mutex // guards data and the file
	txMu sync.Mutex // serializes DoSerializable callbacks
	data *fileData
}

type fileData struct {
	Clients       []clientRecord       `json:"clients"`
	Plans         []planRecord         `json:"plans"`
	Subscriptions []subscriptionRecord `json:"subscriptions"`
	Appointments  []appointmentRecord  `json:"appointments"`
	Settings      []settingRecord      `json:"settings"`
	Meta          metaRecord           `json:"meta"`
}

type metaRecord struct {
	Counters map[string]int64 `json:"counters"`
}

type clientRecord struct {
	ID        int64   `json:"id"`
	FullName  string  `json:"full_name"`
	Email     string  `json:"email"`
	Phone     string  `json:"phone"`
	Age       *int    `json:"age"`
	Notes     *string `json:"notes"`
	CreatedAt string  `json:"created_at,omitempty"`
	UpdatedAt string  `json:"updated_at,omitempty"`
}

type planRecord struct {
	ID                         int64   `json:"id"`
	Name                       string  `json:"name"`
	Price                      float64 `json:"price"`
	DayRule                    string  `json:"day_rule"`
	MinDaysBetweenAppointments int     `json:"min_days_between_appointments"`
	WeeklyLimit                int     `json:"weekly_limit"`
	Active                     bool    `json:"active"`
	CreatedAt                  string  `json:"created_at,omitempty"`
	UpdatedAt                  string  `json:"updated_at,omitempty"`
}

type subscriptionRecord struct {
	ID        int64  `json:"id"`
	ClientID  int64  `json:"client_id"`
	PlanID    int64  `json:"plan_id"`
	StartDate string `json:"start_date"`
	Active    bool   `json:"active"`
	CreatedAt string `json:"created_at,omitempty"`
	UpdatedAt string `json:"updated_at,omitempty"`
}

type appointmentRecord struct {
	ID                  int64  `json:"id"`
	ClientID            int64  `json:"client_id"`
	AppointmentDateTime string `json:"appointment_date_time"`
	Service             string `json:"service"`
	Status              string `json:"status"`
	CreatedAt           string `json:"created_at,omitempty"`
	UpdatedAt           string `json:"updated_at,omitempty"`
}

type settingRecord struct {
	Key   string `json:"setting_key"`
	Value string `json:"setting_value"`
}

// Open loads the store at path, creating an empty document when the file
// does not exist yet.
func Open(path string) (*Store, error) {
	s := &Store{path: path}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("jsonfile: create data directory: %w", err)
	}

	raw, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		s.data = emptyData()
		if err := s.save(); err != nil {
			return nil, err
		}
		return s, nil
	}
	if err != nil {
		return nil, fmt.Errorf("jsonfile: read %s: %w", path, err)
	}

	data := emptyData()
	if err := json.Unmarshal(raw, data); err != nil {
		return nil, fmt.Errorf("jsonfile: parse %s: %w", path, err)
	}
	if data.Meta.Counters == nil {
		data.Meta.Counters = emptyData().Meta.Counters
	}
	s.data = data
	return s, nil
}

// Clients returns the client-collection view of the store.
func (s *Store) Clients() *ClientStore { return &ClientStore{s: s} }

// Plans returns the plan-collection view of the store.
func (s *Store) Plans() *PlanStore { return &PlanStore{s: s} }

// Subscriptions returns the subscription-collection view of the store.
func (s *Store) Subscriptions() *SubscriptionStore { return &SubscriptionStore{s: s} }

// Appointments returns the appointment-collection view of the store.
func (s *Store) Appointments() *AppointmentStore { return &AppointmentStore{s: s} }

// Settings returns the settings-collection view of the store.
func (s *Store) Settings() *SettingStore { return &SettingStore{s: s} }

// DoSerializable runs fn as a transaction: callbacks never interleave, and
// when fn fails the document is restored to its pre-transaction snapshot
// (memory and file).
func (s *Store) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	s.txMu.Lock()
	defer s.txMu.Unlock()

	snapshot, err := s.snapshot()
	if err != nil {
		return err
	}

	if err := fn(ctx); err != nil {
		if rbErr := s.restore(snapshot); rbErr != nil {
			return fmt.Errorf("jsonfile: rollback after %w: %v", err, rbErr)
		}
		return err
	}
	return nil
}

func (s *Store) snapshot() ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	raw, err := json.Marshal(s.data)
	if err != nil {
		return nil, fmt.Errorf("jsonfile: snapshot: %w", err)
	}
	return raw, nil
}

func (s *Store) restore(snapshot []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data := emptyData()
	if err := json.Unmarshal(snapshot, data); err != nil {
		return fmt.Errorf("jsonfile: restore snapshot: %w", err)
	}
	s.data = data
	return s.saveLocked()
}

// save persists the document. Callers must NOT hold the mutex.
func (s *Store) save() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.saveLocked()
}

// saveLocked persists the document. Callers must hold the mutex.
func (s *Store) saveLocked() error {
	raw, err := json.MarshalIndent(s.data, "", "  ")
	if err != nil {
		return fmt.Errorf("jsonfile: serialize: %w", err)
	}
	if err := os.WriteFile(s.path, raw, 0o644); err != nil {
		return fmt.Errorf("jsonfile: write %s: %w", s.path, err)
	}
	return nil
}

// nextID increments and returns the per-collection counter. Callers must
// hold the mutex.
func (s *Store) nextID(collection string) int64 {
	s.data.Meta.Counters[collection]++
	return s.data.Meta.Counters[collection]
}

func emptyData() *fileData {
	return &fileData{
		Clients:       []clientRecord{},
		Plans:         []planRecord{},
		Subscriptions: []subscriptionRecord{},
		Appointments:  []appointmentRecord{},
		Settings:      []settingRecord{},
		Meta: metaRecord{Counters: map[string]int64{
			"clients":       0,
			"plans":         0,
			"subscriptions": 0,
			"appointments":  0,
		}},
	}
}
