package todo

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ErrUnavailable marks failures caused by a store that could not be opened at startup.
var ErrUnavailable = errors.New("todo store unavailable")

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// report json names so messages match what clients sent
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// ValidationError is returned by a store when a write would persist a Todo with a
// missing required attribute.
type ValidationError struct {
	Paths []string
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Paths))
	for _, p := range e.Paths {
		parts = append(parts, fmt.Sprintf("%s: Path `%s` is required.", p, p))
	}
	return "Todo validation failed: " + strings.Join(parts, ", ")
}

// CastError is returned when an identifier is not a well-formed ObjectID.
type CastError struct {
	Value string
}

func (e *CastError) Error() string {
	return fmt.Sprintf("Cast to ObjectId failed for value %q (type string) at path \"_id\" for model \"Todo\"", e.Value)
}

// ValidateCreate checks that every required attribute is present.
func (f Fields) ValidateCreate() error {
	err := validate.Struct(f)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	ve := &ValidationError{}
	for _, fe := range verrs {
		ve.Paths = append(ve.Paths, fe.Field())
	}
	return ve
}

// ValidateUpdate checks only the attributes that were supplied; an update may not
// blank the title.
func (f Fields) ValidateUpdate() error {
	if f.Title != nil && *f.Title == "" {
		return &ValidationError{Paths: []string{"title"}}
	}
	return nil
}

// ParseID converts a path identifier into an ObjectID.
func ParseID(s string) (primitive.ObjectID, error) {
	id, err := primitive.ObjectIDFromHex(s)
	if err != nil {
		return primitive.NilObjectID, &CastError{Value: s}
	}
	return id, nil
}
