package domain

import "time"

// Client represents a barbershop client.
type Client struct {
	ID       int64
	FullName string
	Email    string
	Phone    string
	Age      *int // nil when unknown; drives estimator rate adjustment only
	Notes    *string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// AgeKnown returns true when the client provided their age.
func (c *Client) AgeKnown() bool {
	return c.Age != nil
}
