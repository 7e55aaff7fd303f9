package repositories

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"github.com/redis/go-redis/v9"

	"mkr-foods/config"
	"mkr-foods/models"
)

// Durable storage keys, one pair per user. The cart and the applied
// coupon live under independent keys so either can be dropped alone.
const (
	cartKeyPrefix   = "mkrfoods_cart:"
	couponKeyPrefix = "appliedCoupon:"
)

// cartSchemaVersion tags the serialized envelope. Snapshots with an
// unrecognized version are discarded rather than half-parsed.
const cartSchemaVersion = 1

type cartEnvelope struct {
	Version int               `json:"version"`
	Items   []models.CartLine `json:"items"`
}

// CartRepository persists carts and applied coupons to Redis. Every
// operation is best-effort: failures are logged and the in-memory state
// stays authoritative, so a mutation never fails because storage did.
type CartRepository struct{}

func NewCartRepository() *CartRepository {
	return &CartRepository{}
}

func cartKey(userID string) string {
	return cartKeyPrefix + userID
}

func couponKey(userID string) string {
	return couponKeyPrefix + userID
}

func (r *CartRepository) SaveCart(ctx context.Context, userID string, cart *models.Cart) {
	if config.RedisClient == nil {
		return
	}

	data, err := encodeCart(cart)
	if err != nil {
		log.Printf("Failed to serialize cart for %s: %v", userID, err)
		return
	}

	if err := config.RedisClient.Set(ctx, cartKey(userID), data, 0).Err(); err != nil {
		log.Printf("Failed to save cart for %s: %v", userID, err)
	}
}

// LoadCart returns the stored cart, or an empty cart when the key is
// missing or the stored value cannot be parsed. A corrupt value is
// deleted so it is not re-parsed on every hydration.
func (r *CartRepository) LoadCart(ctx context.Context, userID string) *models.Cart {
	if config.RedisClient == nil {
		return models.NewCart()
	}

	data, err := config.RedisClient.Get(ctx, cartKey(userID)).Bytes()
	if err == redis.Nil {
		return models.NewCart()
	}
	if err != nil {
		log.Printf("Failed to load cart for %s: %v", userID, err)
		return models.NewCart()
	}

	cart, err := decodeCart(data)
	if err != nil {
		log.Printf("Discarding corrupt cart for %s: %v", userID, err)
		config.RedisClient.Del(ctx, cartKey(userID))
		return models.NewCart()
	}
	return cart
}

// SaveCoupon with a nil coupon clears the stored one.
func (r *CartRepository) SaveCoupon(ctx context.Context, userID string, coupon *models.AppliedCoupon) {
	if config.RedisClient == nil {
		return
	}

	if coupon == nil {
		r.DeleteCoupon(ctx, userID)
		return
	}

	data, err := json.Marshal(coupon)
	if err != nil {
		log.Printf("Failed to serialize coupon for %s: %v", userID, err)
		return
	}

	if err := config.RedisClient.Set(ctx, couponKey(userID), data, 0).Err(); err != nil {
		log.Printf("Failed to save coupon for %s: %v", userID, err)
	}
}

func (r *CartRepository) LoadCoupon(ctx context.Context, userID string) *models.AppliedCoupon {
	if config.RedisClient == nil {
		return nil
	}

	data, err := config.RedisClient.Get(ctx, couponKey(userID)).Bytes()
	if err == redis.Nil {
		return nil
	}
	if err != nil {
		log.Printf("Failed to load coupon for %s: %v", userID, err)
		return nil
	}

	var coupon models.AppliedCoupon
	if err := json.Unmarshal(data, &coupon); err != nil {
		log.Printf("Discarding corrupt coupon for %s: %v", userID, err)
		config.RedisClient.Del(ctx, couponKey(userID))
		return nil
	}
	if coupon.Code == "" {
		return nil
	}
	return &coupon
}

func (r *CartRepository) DeleteCoupon(ctx context.Context, userID string) {
	if config.RedisClient == nil {
		return
	}
	if err := config.RedisClient.Del(ctx, couponKey(userID)).Err(); err != nil {
		log.Printf("Failed to delete coupon for %s: %v", userID, err)
	}
}

func encodeCart(cart *models.Cart) ([]byte, error) {
	return json.Marshal(cartEnvelope{
		Version: cartSchemaVersion,
		Items:   cart.Lines,
	})
}

// decodeCart parses a stored envelope and restores the cart invariants:
// zero-quantity variants and empty lines are dropped, line totals are
// recomputed instead of trusted.
func decodeCart(data []byte) (*models.Cart, error) {
	var env cartEnvelope
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, err
	}
	if env.Version != cartSchemaVersion {
		return nil, fmt.Errorf("unrecognized cart schema version %d", env.Version)
	}

	cart := models.NewCart()
	for _, line := range env.Items {
		for _, v := range line.Variants {
			if v.Quantity <= 0 {
				continue
			}
			cart.UpsertVariant(line.ProductID, line.Name, line.Image, line.MaxQuantity, v.Weight, v.Price, v.Quantity)
		}
	}
	return cart, nil
}
