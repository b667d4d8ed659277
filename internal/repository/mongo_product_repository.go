package repository

import (
	"context"
	"fmt"
	"trendx-service/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type mongoProductRepo struct {
	coll *mongo.Collection
}

func NewMongoProductRepository(db *mongo.Database) ProductRepository {
	return &mongoProductRepo{coll: db.Collection(ProductsCollection)}
}

func (r *mongoProductRepo) Create(ctx context.Context, p *models.Product) error {
	res, err := r.coll.InsertOne(ctx, newProductDocument(p))
	if err != nil {
		return storeErr("create product", err)
	}

	id, err := insertedHex(res)
	if err != nil {
		return storeErr("create product", err)
	}
	p.ID = id

	return nil
}

func (r *mongoProductRepo) GetAll(ctx context.Context) ([]models.Product, error) {
	cur, err := r.coll.Find(ctx, bson.D{})
	if err != nil {
		return nil, storeErr("get all products", err)
	}

	var docs []productDocument
	if err := cur.All(ctx, &docs); err != nil {
		return nil, storeErr("decode products", err)
	}

	products := make([]models.Product, 0, len(docs))
	for _, d := range docs {
		products = append(products, d.model())
	}

	return products, nil
}

func (r *mongoProductRepo) Delete(ctx context.Context, id string) error {
	oid, err := objectID(id)
	if err != nil {
		return storeErr("delete product", err)
	}

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return storeErr("delete product", err)
	}

	if res.DeletedCount == 0 {
		return fmt.Errorf("product %s: %w", id, ErrNotFound)
	}

	return nil
}

func (r *mongoProductRepo) Count(ctx context.Context) (int64, error) {
	n, err := r.coll.CountDocuments(ctx, bson.D{})
	if err != nil {
		return 0, storeErr("count products", err)
	}
	return n, nil
}

func (r *mongoProductRepo) DeleteAll(ctx context.Context) error {
	if _, err := r.coll.DeleteMany(ctx, bson.D{}); err != nil {
		return storeErr("clear products", err)
	}
	return nil
}
