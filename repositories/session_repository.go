package repositories

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/redis/go-redis/v9"

	"mkr-foods/config"
	"mkr-foods/models"
)

// Checkout handoff keys. Unlike the cart these carry a TTL: the handoff
// is scoped to one checkout session, not to the account.
const (
	checkoutAddressPrefix = "checkout:address:"
	checkoutPricingPrefix = "checkout:pricing:"
)

// SessionRepository stores the checkout handoff (selected address and
// frozen pricing snapshot). Storage failures here are real errors: the
// payment page cannot proceed without the handoff.
type SessionRepository struct{}

func NewSessionRepository() *SessionRepository {
	return &SessionRepository{}
}

func (r *SessionRepository) SaveAddress(ctx context.Context, userID string, addr *models.Address) error {
	return r.save(ctx, checkoutAddressPrefix+userID, addr)
}

// LoadAddress returns (nil, nil) when no address has been stored or it
// has expired.
func (r *SessionRepository) LoadAddress(ctx context.Context, userID string) (*models.Address, error) {
	var addr models.Address
	ok, err := r.load(ctx, checkoutAddressPrefix+userID, &addr)
	if err != nil || !ok {
		return nil, err
	}
	return &addr, nil
}

func (r *SessionRepository) SavePricing(ctx context.Context, userID string, snap *models.PricingSnapshot) error {
	return r.save(ctx, checkoutPricingPrefix+userID, snap)
}

func (r *SessionRepository) LoadPricing(ctx context.Context, userID string) (*models.PricingSnapshot, error) {
	var snap models.PricingSnapshot
	ok, err := r.load(ctx, checkoutPricingPrefix+userID, &snap)
	if err != nil || !ok {
		return nil, err
	}
	return &snap, nil
}

func (r *SessionRepository) save(ctx context.Context, key string, value interface{}) error {
	if config.RedisClient == nil {
		return errors.New("session store unavailable")
	}
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return config.RedisClient.Set(ctx, key, data, config.AppConfig.CheckoutTTL).Err()
}

func (r *SessionRepository) load(ctx context.Context, key string, out interface{}) (bool, error) {
	if config.RedisClient == nil {
		return false, errors.New("session store unavailable")
	}
	data, err := config.RedisClient.Get(ctx, key).Bytes()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if err := json.Unmarshal(data, out); err != nil {
		return false, err
	}
	return true, nil
}
