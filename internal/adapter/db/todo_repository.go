package db

import (
	"context"
	"errors"
	"regexp"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"todoboard/internal/core/domain"
	"todoboard/internal/core/ports"
)

type TodoRepository struct {
	collection *mongo.Collection
}

type noteDoc struct {
	ID        primitive.ObjectID `bson:"_id"`
	Content   string             `bson:"content"`
	CreatedAt time.Time          `bson:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt"`
}

type todoDoc struct {
	ID            primitive.ObjectID `bson:"_id,omitempty"`
	Title         string             `bson:"title"`
	Description   *string            `bson:"description,omitempty"`
	Priority      string             `bson:"priority"`
	Completed     bool               `bson:"completed"`
	Tags          []string           `bson:"tags"`
	AssignedUsers []string           `bson:"assignedUsers"`
	Notes         []noteDoc          `bson:"notes"`
	CreatedAt     time.Time          `bson:"createdAt"`
	UpdatedAt     time.Time          `bson:"updatedAt"`
}

var _ ports.TodoRepository = (*TodoRepository)(nil)

func NewTodoRepository(database *mongo.Database) *TodoRepository {
	return &TodoRepository{collection: database.Collection(todosCollection)}
}

func buildTodoFilter(query domain.TodoQuery) bson.M {
	filter := bson.M{}

	if query.Priority != nil {
		filter["priority"] = string(*query.Priority)
	}
	if query.Completed != nil {
		filter["completed"] = *query.Completed
	}
	if len(query.Tags) > 0 {
		filter["tags"] = bson.M{"$in": query.Tags}
	}

	// User scoping matches the assignedUsers array element-wise; the
	// assignedUsers filter intersects against any of the given names.
	if query.User != nil {
		users := bson.M{"$eq": *query.User}
		if len(query.AssignedUsers) > 0 {
			users["$in"] = query.AssignedUsers
		}
		filter["assignedUsers"] = users
	} else if len(query.AssignedUsers) > 0 {
		filter["assignedUsers"] = bson.M{"$in": query.AssignedUsers}
	}

	if query.Search != nil {
		pattern := primitive.Regex{Pattern: regexp.QuoteMeta(*query.Search), Options: "i"}
		filter["$or"] = bson.A{
			bson.M{"title": pattern},
			bson.M{"description": pattern},
		}
	}

	return filter
}

func buildTodoSort(query domain.TodoQuery) bson.D {
	if query.SortBy == "" {
		return bson.D{{Key: "createdAt", Value: -1}}
	}

	direction := 1
	if query.SortOrder == domain.SortDesc {
		direction = -1
	}
	return bson.D{{Key: query.SortBy, Value: direction}}
}

func (r *TodoRepository) List(ctx context.Context, query domain.TodoQuery) ([]domain.Todo, int64, error) {
	filter := buildTodoFilter(query)

	// Total matching count before pagination, for the pagination metadata.
	total, err := r.collection.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	page := query.PageOrDefault()
	limit := query.LimitOrDefault()
	opts := options.Find().
		SetSort(buildTodoSort(query)).
		SetSkip(int64((page - 1) * limit)).
		SetLimit(int64(limit))

	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, 0, err
	}

	var docs []todoDoc
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, 0, err
	}

	todos := make([]domain.Todo, 0, len(docs))
	for _, doc := range docs {
		todos = append(todos, mapTodoDocToDomain(doc))
	}

	return todos, total, nil
}

func (r *TodoRepository) GetByID(ctx context.Context, id string) (domain.Todo, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		// An id that cannot exist in the store is treated as absent.
		return domain.Todo{}, domain.ErrTodoNotFound
	}

	var doc todoDoc
	if err := r.collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return domain.Todo{}, domain.ErrTodoNotFound
		}
		return domain.Todo{}, err
	}

	return mapTodoDocToDomain(doc), nil
}

func (r *TodoRepository) Create(ctx context.Context, input domain.TodoInput) (domain.Todo, error) {
	doc := todoDoc{
		Title:         input.Title,
		Description:   input.Description,
		Priority:      string(input.Priority),
		Completed:     input.Completed,
		Tags:          input.Tags,
		AssignedUsers: input.AssignedUsers,
		Notes:         []noteDoc{},
		CreatedAt:     input.CreatedAt,
		UpdatedAt:     input.UpdatedAt,
	}

	result, err := r.collection.InsertOne(ctx, doc)
	if err != nil {
		return domain.Todo{}, err
	}

	doc.ID = result.InsertedID.(primitive.ObjectID)
	return mapTodoDocToDomain(doc), nil
}

func (r *TodoRepository) Update(ctx context.Context, id string, input domain.TodoInput) (domain.Todo, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.Todo{}, domain.ErrTodoNotFound
	}

	// createdAt stays untouched; only updatedAt refreshes on update.
	update := bson.M{"$set": bson.M{
		"title":         input.Title,
		"description":   input.Description,
		"priority":      string(input.Priority),
		"completed":     input.Completed,
		"tags":          input.Tags,
		"assignedUsers": input.AssignedUsers,
		"updatedAt":     input.UpdatedAt,
	}}

	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": objectID}, update)
	if err != nil {
		return domain.Todo{}, err
	}
	if result.MatchedCount == 0 {
		return domain.Todo{}, domain.ErrTodoNotFound
	}

	return r.GetByID(ctx, id)
}

func (r *TodoRepository) Delete(ctx context.Context, id string) error {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrTodoNotFound
	}

	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": objectID})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return domain.ErrTodoNotFound
	}

	return nil
}

func (r *TodoRepository) AddNote(ctx context.Context, id string, content string) (domain.Todo, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.Todo{}, domain.ErrTodoNotFound
	}

	now := time.Now().UTC()
	note := noteDoc{
		ID:        primitive.NewObjectID(),
		Content:   content,
		CreatedAt: now,
		UpdatedAt: now,
	}

	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": objectID}, bson.M{
		"$push": bson.M{"notes": note},
		"$set":  bson.M{"updatedAt": now},
	})
	if err != nil {
		return domain.Todo{}, err
	}
	if result.MatchedCount == 0 {
		return domain.Todo{}, domain.ErrTodoNotFound
	}

	return r.GetByID(ctx, id)
}

func (r *TodoRepository) Export(ctx context.Context, user *string) ([]domain.Todo, error) {
	filter := bson.M{}
	if user != nil {
		filter["assignedUsers"] = *user
	}

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}

	var docs []todoDoc
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}

	todos := make([]domain.Todo, 0, len(docs))
	for _, doc := range docs {
		todos = append(todos, mapTodoDocToDomain(doc))
	}

	return todos, nil
}

func mapTodoDocToDomain(doc todoDoc) domain.Todo {
	todo := domain.Todo{
		ID:            doc.ID.Hex(),
		Title:         doc.Title,
		Priority:      domain.Priority(doc.Priority),
		Completed:     doc.Completed,
		Tags:          doc.Tags,
		AssignedUsers: doc.AssignedUsers,
		CreatedAt:     doc.CreatedAt,
		UpdatedAt:     doc.UpdatedAt,
	}

	if doc.Description != nil {
		value := *doc.Description
		todo.Description = &value
	}

	if todo.Tags == nil {
		todo.Tags = []string{}
	}
	if todo.AssignedUsers == nil {
		todo.AssignedUsers = []string{}
	}

	notes := make([]domain.Note, 0, len(doc.Notes))
	for _, note := range doc.Notes {
		notes = append(notes, domain.Note{
			ID:        note.ID.Hex(),
			Content:   note.Content,
			CreatedAt: note.CreatedAt,
			UpdatedAt: note.UpdatedAt,
		})
	}
	todo.Notes = notes

	return todo
}
