package repositories

import (
	"context"

	"cloud.google.com/go/firestore"
	"github.com/shopspring/decimal"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"mkr-foods/config"
)

// DeliveryRepository reads the per-region delivery-charge table: a single
// document whose fields are whitespace-stripped state names mapped to a
// flat charge.
type DeliveryRepository struct{}

func NewDeliveryRepository() *DeliveryRepository {
	return &DeliveryRepository{}
}

func (r *DeliveryRepository) doc() *firestore.DocumentRef {
	return config.FirestoreClient.Collection("config").Doc("deliverycharges")
}

// GetTable returns the charge table. A missing document is a valid state
// and returns (nil, nil); resolution falls back to the default charge.
func (r *DeliveryRepository) GetTable(ctx context.Context) (map[string]decimal.Decimal, error) {
	snap, err := r.doc().Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, nil
		}
		return nil, err
	}

	table := make(map[string]decimal.Decimal)
	for region, value := range snap.Data() {
		switch n := value.(type) {
		case int64:
			table[region] = decimal.NewFromInt(n)
		case float64:
			table[region] = decimal.NewFromFloat(n)
		}
	}
	return table, nil
}

// SetCharge merges one region's charge into the table document.
func (r *DeliveryRepository) SetCharge(ctx context.Context, region string, charge float64) error {
	_, err := r.doc().Set(ctx, map[string]interface{}{region: charge}, firestore.MergeAll)
	return err
}
