package navigation

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/redis/go-redis/v9"

	"github.com/samandr77/microservices/checkout/internal/entity"
)

const keyPrefix = "checkout:flash:"

// Flash is the one-shot state handed to the order detail view.
type Flash struct {
	Route string                 `json:"route"`
	State entity.NavigationState `json:"state"`
}

// Store keeps at most one pending flash per user and order. Reading it removes it.
type Store struct {
	client *redis.Client
	ttl    time.Duration
}

func Connect(ctx context.Context, addr, password string, db int) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second) //nolint:mnd
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}

	return client, nil
}

func NewStore(client *redis.Client, ttl time.Duration) *Store {
	return &Store{
		client: client,
		ttl:    ttl,
	}
}

func key(userID uuid.UUID, orderID string) string {
	return keyPrefix + userID.String() + ":" + orderID
}

// Navigate leaves state for the order detail page of orderID. Only userID can consume it.
func (s *Store) Navigate(ctx context.Context, userID uuid.UUID, orderID string, state entity.NavigationState) error {
	data, err := json.Marshal(Flash{
		Route: entity.OrderDetailRoute(orderID),
		State: state,
	})
	if err != nil {
		return fmt.Errorf("marshal flash: %w", err)
	}

	if err := s.client.Set(ctx, key(userID, orderID), data, s.ttl).Err(); err != nil {
		return fmt.Errorf("set flash: %w", err)
	}

	return nil
}

// Consume returns the pending flash of orderID left for userID and deletes it atomically.
func (s *Store) Consume(ctx context.Context, userID uuid.UUID, orderID string) (Flash, error) {
	data, err := s.client.GetDel(ctx, key(userID, orderID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return Flash{}, entity.ErrNotFound
		}

		return Flash{}, fmt.Errorf("getdel flash: %w", err)
	}

	var f Flash
	if err := json.Unmarshal(data, &f); err != nil {
		return Flash{}, fmt.Errorf("unmarshal flash: %w", err)
	}

	return f, nil
}
