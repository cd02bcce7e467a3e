package db

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"todoboard/internal/core/domain"
	"todoboard/internal/core/ports"
)

type UserRepository struct {
	collection *mongo.Collection
}

type userDoc struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	Username  string             `bson:"username"`
	Email     string             `bson:"email"`
	CreatedAt time.Time          `bson:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt"`
}

var _ ports.UserRepository = (*UserRepository)(nil)

func NewUserRepository(database *mongo.Database) *UserRepository {
	return &UserRepository{collection: database.Collection(usersCollection)}
}

func (r *UserRepository) List(ctx context.Context) ([]domain.User, error) {
	cursor, err := r.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}

	var docs []userDoc
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}

	users := make([]domain.User, 0, len(docs))
	for _, doc := range docs {
		users = append(users, mapUserDocToDomain(doc))
	}

	return users, nil
}

func (r *UserRepository) Create(ctx context.Context, input domain.UserInput) (domain.User, error) {
	filter := bson.M{"$or": bson.A{
		bson.M{"username": input.Username},
		bson.M{"email": input.Email},
	}}

	// Courtesy pre-check for a friendly message; the unique indexes
	// are what close the check-then-insert race.
	err := r.collection.FindOne(ctx, filter).Err()
	switch {
	case err == nil:
		return domain.User{}, domain.ErrUserExists
	case !errors.Is(err, mongo.ErrNoDocuments):
		return domain.User{}, err
	}

	doc := userDoc{
		Username:  input.Username,
		Email:     input.Email,
		CreatedAt: input.CreatedAt,
		UpdatedAt: input.UpdatedAt,
	}

	result, err := r.collection.InsertOne(ctx, doc)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return domain.User{}, domain.ErrUserExists
		}
		return domain.User{}, err
	}

	doc.ID = result.InsertedID.(primitive.ObjectID)
	return mapUserDocToDomain(doc), nil
}

func mapUserDocToDomain(doc userDoc) domain.User {
	return domain.User{
		ID:        doc.ID.Hex(),
		Username:  doc.Username,
		Email:     doc.Email,
		CreatedAt: doc.CreatedAt,
		UpdatedAt: doc.UpdatedAt,
	}
}
