package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/christian-constantin/commandit/internal/core/domain"
)

const ordersCollection = "orders"

// OrderRepository persists supply orders in MongoDB.
type OrderRepository struct {
	coll *mongo.Collection
}

func NewOrderRepository(db *mongo.Database) *OrderRepository {
	return &OrderRepository{coll: db.Collection(ordersCollection)}
}

type mongoOrderItem struct {
	Name        string `bson:"name"`
	Quantity    int    `bson:"quantity"`
	Unit        string `bson:"unit,omitempty"`
	Description string `bson:"description,omitempty"`
}

type mongoOrder struct {
	ID        string           `bson:"_id"`
	Type      string           `bson:"type"`
	Requester string           `bson:"requester"`
	Date      time.Time        `bson:"date"`
	Status    string           `bson:"status"`
	Items     []mongoOrderItem `bson:"items"`
	Notes     string           `bson:"notes,omitempty"`
}

func (r *OrderRepository) Create(ctx context.Context, order *domain.Order) error {
	if _, err := r.coll.InsertOne(ctx, orderFromDomain(order)); err != nil {
		return fmt.Errorf("insert order: %w", err)
	}
	return nil
}

func (r *OrderRepository) FindByID(ctx context.Context, id string) (*domain.Order, error) {
	var mo mongoOrder
	if err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&mo); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrOrderNotFound
		}
		return nil, fmt.Errorf("find order: %w", err)
	}
	return mo.toDomain(), nil
}

// List returns all orders, newest first.
func (r *OrderRepository) List(ctx context.Context) ([]*domain.Order, error) {
	cur, err := r.coll.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "date", Value: -1}}))
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	defer cur.Close(ctx)

	var out []*domain.Order
	for cur.Next(ctx) {
		var mo mongoOrder
		if err := cur.Decode(&mo); err != nil {
			return nil, fmt.Errorf("decode order: %w", err)
		}
		out = append(out, mo.toDomain())
	}
	return out, cur.Err()
}

func (r *OrderRepository) SetStatus(ctx context.Context, id string, status domain.OrderStatus) (*domain.Order, error) {
	res := r.coll.FindOneAndUpdate(ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"status": string(status)}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	)
	var mo mongoOrder
	if err := res.Decode(&mo); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrOrderNotFound
		}
		return nil, fmt.Errorf("update order status: %w", err)
	}
	return mo.toDomain(), nil
}

func orderFromDomain(o *domain.Order) mongoOrder {
	items := make([]mongoOrderItem, len(o.Items))
	for i, it := range o.Items {
		items[i] = mongoOrderItem(it)
	}
	return mongoOrder{
		ID:        o.ID,
		Type:      o.Type,
		Requester: o.Requester,
		Date:      o.Date,
		Status:    string(o.Status),
		Items:     items,
		Notes:     o.Notes,
	}
}

func (mo mongoOrder) toDomain() *domain.Order {
	items := make([]domain.OrderItem, len(mo.Items))
	for i, it := range mo.Items {
		items[i] = domain.OrderItem(it)
	}
	return &domain.Order{
		ID:        mo.ID,
		Type:      mo.Type,
		Requester: mo.Requester,
		Date:      mo.Date.UTC(),
		Status:    domain.OrderStatus(mo.Status),
		Items:     items,
		Notes:     mo.Notes,
	}
}
