package booking

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"questbook/models"
)

// RedisStore keeps drafts as JSON values under "draft:{id}" with a TTL.
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client, ttl: DraftTTL}
}

func draftKey(id string) string {
	return "draft:" + id
}

func (s *RedisStore) Get(ctx context.Context, id string) (*models.BookingDraft, error) {
	data, err := s.client.Get(ctx, draftKey(id)).Bytes()
	if err == redis.Nil {
		return nil, ErrDraftNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("error getting draft: %w", err)
	}

	var draft models.BookingDraft
	if err := json.Unmarshal(data, &draft); err != nil {
		return nil, fmt.Errorf("error unmarshaling draft: %w", err)
	}
	return &draft, nil
}

func (s *RedisStore) Save(ctx context.Context, draft *models.BookingDraft) error {
	data, err := json.Marshal(draft)
	if err != nil {
		return fmt.Errorf("error marshaling draft: %w", err)
	}
	return s.client.Set(ctx, draftKey(draft.ID), data, s.ttl).Err()
}

func (s *RedisStore) Delete(ctx context.Context, id string) error {
	return s.client.Del(ctx, draftKey(id)).Err()
}
