package cart

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/go-redis/redis/v8"
)

const keyPrefix = "pos:cart:"

// Store is the save/load boundary for carts. Each terminal owns one slot;
// the whole serialized cart is written on every mutation so a restart or
// reload does not lose it.
type Store interface {
	Load(ctx context.Context, terminalID string) (*Cart, error)
	Save(ctx context.Context, terminalID string, c *Cart) error
}

type redisStore struct {
	client *redis.Client
}

func NewRedisStore(addr string) Store {
	return &redisStore{
		client: redis.NewClient(&redis.Options{Addr: addr}),
	}
}

func (s *redisStore) Load(ctx context.Context, terminalID string) (*Cart, error) {
	raw, err := s.client.Get(ctx, keyPrefix+terminalID).Bytes()
	if err == redis.Nil {
		return New(), nil
	}
	if err != nil {
		return nil, err
	}

	var c Cart
	if err := json.Unmarshal(raw, &c); err != nil {
		// A corrupt slot should not brick the terminal
		return New(), nil
	}
	return &c, nil
}

func (s *redisStore) Save(ctx context.Context, terminalID string, c *Cart) error {
	raw, err := json.Marshal(c)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, keyPrefix+terminalID, raw, 0).Err()
}

// memoryStore keeps serialized carts in-process. Used when no Redis address
// is configured, and in tests. Serializing keeps parity with the Redis path.
type memoryStore struct {
	mu    sync.RWMutex
	slots map[string][]byte
}

func NewMemoryStore() Store {
	return &memoryStore{slots: make(map[string][]byte)}
}

func (s *memoryStore) Load(ctx context.Context, terminalID string) (*Cart, error) {
	s.mu.RLock()
	raw, ok := s.slots[terminalID]
	s.mu.RUnlock()
	if !ok {
		return New(), nil
	}

	var c Cart
	if err := json.Unmarshal(raw, &c); err != nil {
		return New(), nil
	}
	return &c, nil
}

func (s *memoryStore) Save(ctx context.Context, terminalID string, c *Cart) error {
	raw, err := json.Marshal(c)
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.slots[terminalID] = raw
	s.mu.Unlock()
	return nil
}
