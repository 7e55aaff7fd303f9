package repositories

import (
	"context"
	"strings"

	"github.com/shopspring/decimal"
	"google.golang.org/api/iterator"

	"mkr-foods/config"
	"mkr-foods/models"
)

type couponDoc struct {
	Code          string  `firestore:"code"`
	DiscountPrice float64 `firestore:"discountPrice"`
	MinimumOrder  float64 `firestore:"minimumOrder"`
}

type CouponRepository struct{}

func NewCouponRepository() *CouponRepository {
	return &CouponRepository{}
}

// GetByCode looks up a coupon by its uppercase-normalized code. No match
// is a valid outcome and returns (nil, nil); only transport failures
// return an error.
func (r *CouponRepository) GetByCode(ctx context.Context, code string) (*models.Coupon, error) {
	normalized := strings.ToUpper(strings.TrimSpace(code))

	iter := config.FirestoreClient.Collection("coupons").
		Where("code", "==", normalized).
		Limit(1).
		Documents(ctx)
	defer iter.Stop()

	snap, err := iter.Next()
	if err == iterator.Done {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var doc couponDoc
	if err := snap.DataTo(&doc); err != nil {
		return nil, err
	}

	return &models.Coupon{
		Code:          doc.Code,
		DiscountPrice: decimal.NewFromFloat(doc.DiscountPrice),
		MinimumOrder:  decimal.NewFromFloat(doc.MinimumOrder),
	}, nil
}

// Upsert writes a coupon document keyed by its normalized code.
func (r *CouponRepository) Upsert(ctx context.Context, coupon *models.Coupon) error {
	normalized := strings.ToUpper(strings.TrimSpace(coupon.Code))

	_, err := config.FirestoreClient.Collection("coupons").Doc(normalized).Set(ctx, couponDoc{
		Code:          normalized,
		DiscountPrice: coupon.DiscountPrice.InexactFloat64(),
		MinimumOrder:  coupon.MinimumOrder.InexactFloat64(),
	})
	return err
}
