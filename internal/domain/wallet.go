package domain

import "time"

// Wallet is the sole payment instrument. One wallet per user, seeded at
// registration; the balance is only ever mutated by ticket purchases and
// never goes negative.
type Wallet struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"user_id"`
	Balance   int64     `json:"balance"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
