package cart

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"lumira_back_end/internal/models"
)

// TTL du panier d'une session invitée dans Redis.
const sessionTTL = 30 * 24 * time.Hour

// Store persiste les paniers de session dans Redis, en JSON sous la clé
// "cart:<session>". Seul instantané durable du panier avant le checkout.
type Store struct {
	rdb *redis.Client
}

func NewStore(rdb *redis.Client) *Store {
	return &Store{rdb: rdb}
}

// Load charge le panier d'une session. Une clé absente donne un panier vide.
func (s *Store) Load(ctx context.Context, sessionID string) (*Cart, error) {
	data, err := s.rdb.Get(ctx, "cart:"+sessionID).Result()
	if err == redis.Nil || data == "" {
		return New(nil), nil
	}
	if err != nil {
		return nil, err
	}

	var items []models.CartItem
	if err := json.Unmarshal([]byte(data), &items); err != nil {
		return nil, err
	}
	return New(items), nil
}

// Save écrit l'état courant du panier (TTL 30 jours).
func (s *Store) Save(ctx context.Context, sessionID string, c *Cart) error {
	data, err := json.Marshal(c.Items())
	if err != nil {
		return err
	}
	return s.rdb.Set(ctx, "cart:"+sessionID, data, sessionTTL).Err()
}

// Delete supprime complètement la clé du panier (après checkout ou vidage).
func (s *Store) Delete(ctx context.Context, sessionID string) error {
	return s.rdb.Del(ctx, "cart:"+sessionID).Err()
}
