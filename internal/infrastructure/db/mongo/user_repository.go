package mongo

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/christian-constantin/commandit/internal/core/domain"
	"github.com/christian-constantin/commandit/internal/core/ports"
)

const usersCollection = "users"

// UserRepository persists user accounts in MongoDB.
type UserRepository struct {
	coll *mongo.Collection
}

func NewUserRepository(db *mongo.Database) *UserRepository {
	return &UserRepository{coll: db.Collection(usersCollection)}
}

type mongoUser struct {
	ID           string `bson:"_id"`
	Email        string `bson:"email"`
	Name         string `bson:"name"`
	Department   string `bson:"department,omitempty"`
	Role         string `bson:"role"`
	Active       bool   `bson:"active"`
	LastLogin    *int64 `bson:"last_login,omitempty"`
	PasswordHash string `bson:"password_hash,omitempty"`
}

func (r *UserRepository) List(ctx context.Context, filter ports.UserFilter) ([]*domain.User, error) {
	query := bson.M{}
	if filter.Department != "" {
		query["department"] = filter.Department
	}
	if filter.Active != nil {
		query["active"] = *filter.Active
	}

	cur, err := r.coll.Find(ctx, query, options.Find().SetSort(bson.D{{Key: "email", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	defer cur.Close(ctx)

	var out []*domain.User
	for cur.Next(ctx) {
		var mu mongoUser
		if err := cur.Decode(&mu); err != nil {
			return nil, fmt.Errorf("decode user: %w", err)
		}
		out = append(out, mu.toDomain())
	}
	return out, cur.Err()
}

func (r *UserRepository) FindByID(ctx context.Context, id string) (*domain.User, error) {
	return r.findOne(ctx, bson.M{"_id": id})
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.findOne(ctx, bson.M{"email": strings.ToLower(email)})
}

func (r *UserRepository) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	if _, err := r.coll.InsertOne(ctx, fromDomain(user)); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrUserExists
		}
		return nil, fmt.Errorf("insert user: %w", err)
	}
	return r.FindByID(ctx, user.ID)
}

func (r *UserRepository) Update(ctx context.Context, user *domain.User) (*domain.User, error) {
	res, err := r.coll.ReplaceOne(ctx, bson.M{"_id": user.ID}, fromDomain(user))
	if err != nil {
		return nil, fmt.Errorf("update user: %w", err)
	}
	if res.MatchedCount == 0 {
		return nil, domain.ErrUserNotFound
	}
	return r.FindByID(ctx, user.ID)
}

func (r *UserRepository) Delete(ctx context.Context, id string) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}

func (r *UserRepository) findOne(ctx context.Context, query bson.M) (*domain.User, error) {
	var mu mongoUser
	if err := r.coll.FindOne(ctx, query).Decode(&mu); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user: %w", err)
	}
	return mu.toDomain(), nil
}

func fromDomain(u *domain.User) mongoUser {
	mu := mongoUser{
		ID:           u.ID,
		Email:        strings.ToLower(u.Email),
		Name:         u.Name,
		Department:   u.Department,
		Role:         u.Role,
		Active:       u.Active,
		PasswordHash: u.PasswordHash,
	}
	if u.LastLogin != nil {
		unix := u.LastLogin.Unix()
		mu.LastLogin = &unix
	}
	return mu
}

func (mu mongoUser) toDomain() *domain.User {
	u := &domain.User{
		ID:           mu.ID,
		Email:        mu.Email,
		Name:         mu.Name,
		Department:   mu.Department,
		Role:         mu.Role,
		Active:       mu.Active,
		PasswordHash: mu.PasswordHash,
	}
	if mu.LastLogin != nil {
		t := time.Unix(*mu.LastLogin, 0).UTC()
		u.LastLogin = &t
	}
	return u
}
