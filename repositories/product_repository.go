package repositories

import (
	"context"

	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"mkr-foods/config"
	"mkr-foods/models"
)

type ProductRepository struct{}

func NewProductRepository() *ProductRepository {
	return &ProductRepository{}
}

func (r *ProductRepository) GetAll(ctx context.Context) ([]models.Product, error) {
	iter := config.FirestoreClient.Collection("products").
		Where("is_active", "==", true).
		Documents(ctx)
	defer iter.Stop()

	products := []models.Product{}
	for {
		snap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, err
		}

		var p models.Product
		if err := snap.DataTo(&p); err != nil {
			continue
		}
		p.ID = snap.Ref.ID
		products = append(products, p)
	}
	return products, nil
}

// GetByID returns (nil, nil) when the product does not exist.
func (r *ProductRepository) GetByID(ctx context.Context, id string) (*models.Product, error) {
	snap, err := config.FirestoreClient.Collection("products").Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, nil
		}
		return nil, err
	}

	var p models.Product
	if err := snap.DataTo(&p); err != nil {
		return nil, err
	}
	p.ID = snap.Ref.ID
	return &p, nil
}
