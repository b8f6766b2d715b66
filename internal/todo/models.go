package todo

import (
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Todo is the persisted todo item. ID is assigned by the store on creation and is
// rendered as "_id" so existing clients keep working.
type Todo struct {
	ID    primitive.ObjectID `json:"_id" bson:"_id,omitempty"`
	Title string             `json:"title" bson:"title"`
	Done  bool               `json:"done" bson:"done"`
}

// Fields carries the client-writable attributes of a Todo as decoded from a request
// body. A nil pointer means the attribute was absent.
type Fields struct {
	Title *string `json:"title" validate:"required,min=1"`
	Done  *bool   `json:"done" validate:"required"`
}

// IsEmpty reports whether no attribute was supplied.
func (f Fields) IsEmpty() bool {
	return f.Title == nil && f.Done == nil
}

// NewID allocates a fresh identifier. Stores call it; clients never choose ids.
func NewID() primitive.ObjectID {
	return primitive.NewObjectID()
}

// New builds a Todo from create input. The caller must have validated f.
func New(id primitive.ObjectID, f Fields) *Todo {
	t := &Todo{ID: id}
	t.Apply(f)
	return t
}

// Apply copies every supplied attribute onto t.
func (t *Todo) Apply(f Fields) {
	if f.Title != nil {
		t.Title = *f.Title
	}
	if f.Done != nil {
		t.Done = *f.Done
	}
}

// SetDocument returns the $set payload for an update holding only the supplied
// attributes.
func (f Fields) SetDocument() bson.M {
	set := bson.M{}
	if f.Title != nil {
		set["title"] = *f.Title
	}
	if f.Done != nil {
		set["done"] = *f.Done
	}
	return set
}
