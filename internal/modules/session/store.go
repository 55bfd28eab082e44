// README: Session store for last-entered place fields backed by Redis.
package session

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// Places holds the last-entered start/end strings for one session. It is
// presentation-layer state: the trip service never reads it, handlers pass the
// resolved values on as plain parameters.
type Places struct {
	Start string
	End   string
}

type Store struct {
	redis *redis.Client
	ttl   time.Duration
}

func NewStore(client *redis.Client, ttl time.Duration) *Store {
	return &Store{redis: client, ttl: ttl}
}

func key(sessionID string) string {
	return "session:" + sessionID + ":places"
}

func (s *Store) GetPlaces(ctx context.Context, sessionID string) (Places, error) {
	fields, err := s.redis.HGetAll(ctx, key(sessionID)).Result()
	if err != nil {
		return Places{}, err
	}
	return Places{Start: fields["start"], End: fields["end"]}, nil
}

func (s *Store) SetPlaces(ctx context.Context, sessionID string, p Places) error {
	k := key(sessionID)
	if err := s.redis.HSet(ctx, k, "start", p.Start, "end", p.End).Err(); err != nil {
		return err
	}
	return s.redis.Expire(ctx, k, s.ttl).Err()
}
