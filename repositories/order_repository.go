package repositories

import (
	"context"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"

	"mkr-foods/config"
	"mkr-foods/models"
)

// OrderRepository reads the "payments" collection the payment collaborator
// writes to. This service never creates or mutates payment documents.
type OrderRepository struct{}

func NewOrderRepository() *OrderRepository {
	return &OrderRepository{}
}

func (r *OrderRepository) GetByUser(ctx context.Context, userID string) ([]models.PaymentRecord, error) {
	iter := config.FirestoreClient.Collection("payments").
		Where("userId", "==", userID).
		OrderBy("createdAt", firestore.Desc).
		Documents(ctx)
	defer iter.Stop()

	orders := []models.PaymentRecord{}
	for {
		snap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, err
		}

		var rec models.PaymentRecord
		if err := snap.DataTo(&rec); err != nil {
			continue
		}
		orders = append(orders, rec)
	}
	return orders, nil
}
