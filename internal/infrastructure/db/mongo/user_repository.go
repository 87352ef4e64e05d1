package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/utilize/marketplace-api/internal/core/domain"
)

type UserRepository struct {
	coll *mongo.Collection
}

func NewUserRepository(db *mongo.Database) *UserRepository {
	return &UserRepository{coll: db.Collection(collectionUsers)}
}

type mongoUser struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	Email     string             `bson:"email"`
	Name      string             `bson:"name,omitempty"`
	Image     string             `bson:"image,omitempty"`
	Role      string             `bson:"role,omitempty"`
	UpdatedAt time.Time          `bson:"updated_at,omitempty"`
}

func (mu mongoUser) toDomain() domain.User {
	return domain.User{
		ID:        mu.ID.Hex(),
		Email:     mu.Email,
		Name:      mu.Name,
		Image:     mu.Image,
		Role:      domain.Role(mu.Role),
		UpdatedAt: mu.UpdatedAt,
	}
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var mu mongoUser
	if err := r.coll.FindOne(ctx, bson.M{"email": email}).Decode(&mu); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user: %w", err)
	}

	u := mu.toDomain()
	return &u, nil
}

// UpsertProfile sets the non-empty profile fields. The role is only written
// when the document is created (Buyer unless p.Role says otherwise); existing
// roles change through UpsertRole alone.
func (r *UserRepository) UpsertProfile(ctx context.Context, p domain.UserProfile) (*domain.WriteResult, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.UpdateOne(ctx, bson.M{"email": p.Email}, profileUpdate(p, time.Now().UTC()), options.Update().SetUpsert(true))
	if err != nil {
		return nil, fmt.Errorf("upsert user: %w", err)
	}
	return updateResult(res), nil
}

func profileUpdate(p domain.UserProfile, now time.Time) bson.M {
	set := bson.M{"email": p.Email, "updated_at": now}
	if p.Name != "" {
		set["name"] = p.Name
	}
	if p.Image != "" {
		set["image"] = p.Image
	}

	role := domain.RoleBuyer
	if p.Role != nil {
		role = *p.Role
	}
	return bson.M{
		"$set":         set,
		"$setOnInsert": bson.M{"role": string(role)},
	}
}

func (r *UserRepository) UpsertRole(ctx context.Context, email string, role domain.Role) (*domain.WriteResult, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	update := bson.M{"$set": bson.M{
		"email":      email,
		"role":       string(role),
		"updated_at": time.Now().UTC(),
	}}

	res, err := r.coll.UpdateOne(ctx, bson.M{"email": email}, update, options.Update().SetUpsert(true))
	if err != nil {
		return nil, fmt.Errorf("upsert role: %w", err)
	}
	return updateResult(res), nil
}

func (r *UserRepository) ListByRole(ctx context.Context, role domain.Role) ([]domain.User, error) {
	docs, err := findAll[mongoUser](ctx, r.coll, bson.M{"role": string(role)})
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}

	users := make([]domain.User, len(docs))
	for i, d := range docs {
		users[i] = d.toDomain()
	}
	return users, nil
}

func (r *UserRepository) DeleteByID(ctx context.Context, id string) (*domain.WriteResult, error) {
	oid, err := parseID(id)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return nil, fmt.Errorf("delete user: %w", err)
	}
	return deleteResult(res), nil
}
