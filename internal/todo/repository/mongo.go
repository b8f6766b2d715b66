package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/gogotex/todo-service/internal/todo"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoRepo stores todos in a MongoDB collection keyed by ObjectID _id.
type MongoRepo struct {
	col *mongo.Collection
}

func NewMongoRepo(col *mongo.Collection) *MongoRepo {
	return &MongoRepo{col: col}
}

func (m *MongoRepo) Create(ctx context.Context, f todo.Fields) (*todo.Todo, error) {
	if err := f.ValidateCreate(); err != nil {
		return nil, err
	}
	t := todo.New(todo.NewID(), f)
	if _, err := m.col.InsertOne(ctx, t); err != nil {
		return nil, fmt.Errorf("insert todo: %w", err)
	}
	return t, nil
}

func (m *MongoRepo) Find(ctx context.Context) ([]*todo.Todo, error) {
	cur, err := m.col.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	out := []*todo.Todo{}
	for cur.Next(ctx) {
		var t todo.Todo
		if err := cur.Decode(&t); err != nil {
			return nil, err
		}
		out = append(out, &t)
	}
	if err := cur.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (m *MongoRepo) FindByID(ctx context.Context, id string) (*todo.Todo, error) {
	oid, err := todo.ParseID(id)
	if err != nil {
		return nil, err
	}
	var t todo.Todo
	if err := m.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&t); err != nil {
		return nilOnNoDocuments(err)
	}
	return &t, nil
}

// FindByIDAndUpdate applies $set with the supplied attributes. With no attributes the
// current document is returned unchanged, since an empty $set is rejected by the server.
func (m *MongoRepo) FindByIDAndUpdate(ctx context.Context, id string, f todo.Fields) (*todo.Todo, error) {
	oid, err := todo.ParseID(id)
	if err != nil {
		return nil, err
	}
	if err := f.ValidateUpdate(); err != nil {
		return nil, err
	}
	if f.IsEmpty() {
		return m.FindByID(ctx, id)
	}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var t todo.Todo
	err = m.col.FindOneAndUpdate(ctx, bson.M{"_id": oid}, bson.M{"$set": f.SetDocument()}, opts).Decode(&t)
	if err != nil {
		return nilOnNoDocuments(err)
	}
	return &t, nil
}

func (m *MongoRepo) FindByIDAndDelete(ctx context.Context, id string) (*todo.Todo, error) {
	oid, err := todo.ParseID(id)
	if err != nil {
		return nil, err
	}
	var t todo.Todo
	if err := m.col.FindOneAndDelete(ctx, bson.M{"_id": oid}).Decode(&t); err != nil {
		return nilOnNoDocuments(err)
	}
	return &t, nil
}

func (m *MongoRepo) Ping(ctx context.Context) error {
	return m.col.Database().Client().Ping(ctx, nil)
}

func nilOnNoDocuments(err error) (*todo.Todo, error) {
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	return nil, err
}
