package repo

import (
	"context"
	"errors"
	"time"

	dom "github.com/raushan0147/ToDoBackend/internal/domain"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// todoDoc is the stored document shape. ObjectID hex is the public id.
type todoDoc struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Title       string             `bson:"title"`
	Description string             `bson:"description"`
	CreatedAt   time.Time          `bson:"createdAt"`
	UpdatedAt   time.Time          `bson:"updatedAt"`
}

func (d todoDoc) toDomain() dom.Todo {
	return dom.Todo{
		ID:          d.ID.Hex(),
		Title:       d.Title,
		Description: d.Description,
		CreatedAt:   d.CreatedAt,
		UpdatedAt:   d.UpdatedAt,
	}
}

type MongoTodoRepo struct {
	col *mongo.Collection
}

func NewMongoTodoRepo(db *mongo.Database) *MongoTodoRepo {
	return &MongoTodoRepo{col: db.Collection("todos")}
}

func (r *MongoTodoRepo) Insert(ctx context.Context, title, description string) (dom.Todo, error) {
	now := time.Now().UTC()
	doc := todoDoc{
		ID:          primitive.NewObjectID(),
		Title:       title,
		Description: description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if _, err := r.col.InsertOne(ctx, doc); err != nil {
		return dom.Todo{}, err
	}
	return doc.toDomain(), nil
}

func (r *MongoTodoRepo) FindAll(ctx context.Context) ([]dom.Todo, error) {
	cur, err := r.col.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	var list []dom.Todo
	for cur.Next(ctx) {
		var d todoDoc
		if err := cur.Decode(&d); err != nil {
			return nil, err
		}
		list = append(list, d.toDomain())
	}
	return list, cur.Err()
}

func (r *MongoTodoRepo) FindByID(ctx context.Context, id string) (dom.Todo, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return dom.Todo{}, ErrNotFound
	}
	var d todoDoc
	err = r.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&d)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return dom.Todo{}, ErrNotFound
	}
	if err != nil {
		return dom.Todo{}, err
	}
	return d.toDomain(), nil
}

func (r *MongoTodoRepo) UpdateByID(ctx context.Context, id, title, description string, now time.Time) (dom.Todo, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return dom.Todo{}, ErrNotFound
	}
	update := bson.M{"$set": bson.M{
		"title":       title,
		"description": description,
		"updatedAt":   now,
	}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var d todoDoc
	err = r.col.FindOneAndUpdate(ctx, bson.M{"_id": oid}, update, opts).Decode(&d)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return dom.Todo{}, ErrNotFound
	}
	if err != nil {
		return dom.Todo{}, err
	}
	return d.toDomain(), nil
}

func (r *MongoTodoRepo) DeleteByID(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrNotFound
	}
	res, err := r.col.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
