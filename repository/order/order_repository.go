package order

import (
	"context"
	"errors"
	"regexp"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/mukhtarmk/ecommerce-api/model"
)

type OrderRepository interface {
	Insert(ctx context.Context, record *model.OrderRecord) (model.OrderID, error)
	ListByUser(ctx context.Context, userID string, limit, offset int64) ([]model.OrderRecord, int64, error)
}

type Mongo struct {
	col *mongo.Collection
}

func NewOrderRepository(db *mongo.Database) OrderRepository {
	return &Mongo{col: db.Collection("orders")}
}

type orderDoc struct {
	ID     primitive.ObjectID      `bson:"_id,omitempty"`
	UserID string                  `bson:"userId"`
	Items  []model.OrderItemRecord `bson:"items"`
}

func (d *orderDoc) toModel() *model.OrderRecord {
	items := d.Items
	if items == nil {
		items = []model.OrderItemRecord{}
	}
	return &model.OrderRecord{
		ID:     model.OrderID(d.ID.Hex()),
		UserID: d.UserID,
		Items:  items,
	}
}

func (m *Mongo) Insert(ctx context.Context, record *model.OrderRecord) (model.OrderID, error) {
	items := record.Items
	if items == nil {
		items = []model.OrderItemRecord{}
	}
	res, err := m.col.InsertOne(ctx, orderDoc{
		UserID: record.UserID,
		Items:  items,
	})
	if err != nil {
		return "", err
	}
	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", errors.New("unexpected inserted id type")
	}
	return model.OrderID(oid.Hex()), nil
}

// ListByUser matches the user identifier case-insensitively, anchored to the
// full string, and pages through matches in creation order.
func (m *Mongo) ListByUser(ctx context.Context, userID string, limit, offset int64) ([]model.OrderRecord, int64, error) {
	filter := bson.M{"userId": primitive.Regex{
		Pattern: "^" + regexp.QuoteMeta(userID) + "$",
		Options: "i",
	}}

	total, err := m.col.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "_id", Value: 1}}).
		SetSkip(offset).
		SetLimit(limit)

	cursor, err := m.col.Find(ctx, filter, opts)
	if err != nil {
		return nil, 0, err
	}
	defer cursor.Close(ctx)

	records := make([]model.OrderRecord, 0)
	for cursor.Next(ctx) {
		var doc orderDoc
		if err := cursor.Decode(&doc); err != nil {
			return nil, 0, err
		}
		records = append(records, *doc.toModel())
	}
	if err := cursor.Err(); err != nil {
		return nil, 0, err
	}

	return records, total, nil
}
