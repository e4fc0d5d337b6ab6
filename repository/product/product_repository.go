package product

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

// ErrNotFound is returned by GetByID when no product matches the identifier.
// Identifiers that are not valid ObjectID hex are reported the same way: the
// identifier space is opaque to clients.
var ErrNotFound = errors.New("product not found")

type ProductRepository interface {
	Insert(ctx context.Context, product *model.Product) (model.ProductID, error)
	List(ctx context.Context, params model.ProductListParams) ([]model.Product, int64, error)
	GetByID(ctx context.Context, id model.ProductID) (*model.Product, error)
}

type Mongo struct {
	col *mongo.Collection
}

func NewProductRepository(db *mongo.Database) ProductRepository {
	return &Mongo{col: db.Collection("products")}
}

type productDoc struct {
	ID    primitive.ObjectID `bson:"_id,omitempty"`
	Name  string             `bson:"name"`
	Price float64            `bson:"price"`
	Sizes []model.SizeItem   `bson:"sizes"`
}

func (d *productDoc) toModel() *model.Product {
	return &model.Product{
		ID:    model.ProductID(d.ID.Hex()),
		Name:  d.Name,
		Price: d.Price,
		Sizes: d.Sizes,
	}
}

func (m *Mongo) Insert(ctx context.Context, product *model.Product) (model.ProductID, error) {
	res, err := m.col.InsertOne(ctx, productDoc{
		Name:  product.Name,
		Price: product.Price,
		Sizes: product.Sizes,
	})
	if err != nil {
		return "", err
	}
	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", errors.New("unexpected inserted id type")
	}
	return model.ProductID(oid.Hex()), nil
}

// buildFilter translates the typed listing params into a mongo filter:
// Name as a case-insensitive substring regex, Size as an exact $elemMatch
// on the sizes array.
func buildFilter(params model.ProductListParams) bson.M {
	filter := bson.M{}
	if params.Name != "" {
		filter["name"] = primitive.Regex{Pattern: regexp.QuoteMeta(params.Name), Options: "i"}
	}
	if params.Size != "" {
		filter["sizes"] = bson.M{"$elemMatch": bson.M{"size": params.Size}}
	}
	return filter
}

func (m *Mongo) List(ctx context.Context, params model.ProductListParams) ([]model.Product, int64, error) {
	filter := buildFilter(params)

	total, err := m.col.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "_id", Value: 1}}).
		SetSkip(params.Offset).
		SetLimit(params.Limit)

	cursor, err := m.col.Find(ctx, filter, opts)
	if err != nil {
		return nil, 0, err
	}
	defer cursor.Close(ctx)

	products := make([]model.Product, 0)
	for cursor.Next(ctx) {
		var doc productDoc
		if err := cursor.Decode(&doc); err != nil {
			return nil, 0, err
		}
		products = append(products, *doc.toModel())
	}
	if err := cursor.Err(); err != nil {
		return nil, 0, err
	}

	return products, total, nil
}

func (m *Mongo) GetByID(ctx context.Context, id model.ProductID) (*model.Product, error) {
	oid, err := primitive.ObjectIDFromHex(string(id))
	if err != nil {
		return nil, ErrNotFound
	}

	var doc productDoc
	if err := m.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return doc.toModel(), nil
}
