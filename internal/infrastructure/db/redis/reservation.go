package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const reservationTTL = 30 * time.Second

// UsernameReservation places a short-lived hold on a username while its
// signup is in flight, shrinking the window between the uniqueness
// pre-check and the store write. The TTL means an abandoned signup frees
// the name on its own. Key format: signup:hold:<username>
type UsernameReservation struct {
	client *redis.Client
}

// NewUsernameReservation creates a UsernameReservation wrapping the given
// Redis client.
func NewUsernameReservation(client *redis.Client) *UsernameReservation {
	return &UsernameReservation{client: client}
}

// Reserve attempts to place a hold on username. It returns false when a
// concurrent signup already holds it.
func (u *UsernameReservation) Reserve(ctx context.Context, username string) (bool, error) {
	ok, err := u.client.SetNX(ctx, u.key(username), "1", reservationTTL).Result()
	if err != nil {
		return false, fmt.Errorf("reserve username: %w", err)
	}
	return ok, nil
}

// Release drops the hold on username. Safe to call after the hold expired.
func (u *UsernameReservation) Release(ctx context.Context, username string) error {
	return u.client.Del(ctx, u.key(username)).Err()
}

func (u *UsernameReservation) key(username string) string {
	return "signup:hold:" + username
}
