package repository

import (
	"context"
	"fmt"
	"trendx-service/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type mongoOrderRepo struct {
	coll *mongo.Collection
}

func NewMongoOrderRepository(db *mongo.Database) OrderRepository {
	return &mongoOrderRepo{coll: db.Collection(OrdersCollection)}
}

func (r *mongoOrderRepo) Create(ctx context.Context, o *models.Order) error {
	res, err := r.coll.InsertOne(ctx, newOrderDocument(o))
	if err != nil {
		return storeErr("create order", err)
	}

	id, err := insertedHex(res)
	if err != nil {
		return storeErr("create order", err)
	}
	o.ID = id

	return nil
}

func (r *mongoOrderRepo) GetAll(ctx context.Context) ([]models.Order, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})

	cur, err := r.coll.Find(ctx, bson.D{}, opts)
	if err != nil {
		return nil, storeErr("get all orders", err)
	}

	var docs []orderDocument
	if err := cur.All(ctx, &docs); err != nil {
		return nil, storeErr("decode orders", err)
	}

	orders := make([]models.Order, 0, len(docs))
	for _, d := range docs {
		orders = append(orders, d.model())
	}

	return orders, nil
}

func (r *mongoOrderRepo) UpdateStatus(ctx context.Context, id string, status string) error {
	oid, err := objectID(id)
	if err != nil {
		return storeErr("update order status", err)
	}

	res, err := r.coll.UpdateOne(ctx,
		bson.M{"_id": oid},
		bson.M{"$set": bson.M{"status": status}},
	)
	if err != nil {
		return storeErr("update order status", err)
	}

	if res.MatchedCount == 0 {
		return fmt.Errorf("order %s: %w", id, ErrNotFound)
	}

	return nil
}

func (r *mongoOrderRepo) Count(ctx context.Context) (int64, error) {
	n, err := r.coll.CountDocuments(ctx, bson.D{})
	if err != nil {
		return 0, storeErr("count orders", err)
	}
	return n, nil
}

func (r *mongoOrderRepo) DeleteAll(ctx context.Context) error {
	if _, err := r.coll.DeleteMany(ctx, bson.D{}); err != nil {
		return storeErr("clear orders", err)
	}
	return nil
}
