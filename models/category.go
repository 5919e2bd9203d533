// models/category.go
package models

import (
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsontype"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ErrMalformedCategoryRef is returned when an id is neither the Other
// sentinel nor a well-formed ObjectID.
var ErrMalformedCategoryRef = errors.New("invalid category id")

// otherSentinel is the reserved _id of the Other category, distinct from
// every generated ObjectID.
const otherSentinel = "0"

// CategoryRef identifies a category as either the reserved Other category
// or a generated ObjectID. The zero value is not valid; build refs through
// OtherCategory, CategoryByID or ParseCategoryRef.
type CategoryRef struct {
	other bool
	id    primitive.ObjectID
}

// OtherCategory returns the ref of the reserved fallback category.
func OtherCategory() CategoryRef {
	return CategoryRef{other: true}
}

// CategoryByID returns a ref for a generated category id.
func CategoryByID(id primitive.ObjectID) CategoryRef {
	return CategoryRef{id: id}
}

// ParseCategoryRef distinguishes three outcomes for an id from the request
// boundary: the Other sentinel, a well-formed ObjectID, or malformed
// (ErrMalformedCategoryRef).
func ParseCategoryRef(s string) (CategoryRef, error) {
	if s == otherSentinel {
		return OtherCategory(), nil
	}
	id, err := primitive.ObjectIDFromHex(s)
	if err != nil {
		return CategoryRef{}, ErrMalformedCategoryRef
	}
	return CategoryByID(id), nil
}

// IsOther reports whether the ref points at the Other category.
func (r CategoryRef) IsOther() bool {
	return r.other
}

// ObjectID returns the generated id and true, or false for the Other ref.
func (r CategoryRef) ObjectID() (primitive.ObjectID, bool) {
	if r.other {
		return primitive.NilObjectID, false
	}
	return r.id, true
}

func (r CategoryRef) String() string {
	if r.other {
		return otherSentinel
	}
	return r.id.Hex()
}

// MarshalBSONValue stores the Other ref as the int32 sentinel 0 and
// everything else as a plain ObjectID, matching the seeded document.
func (r CategoryRef) MarshalBSONValue() (bsontype.Type, []byte, error) {
	if r.other {
		return bson.MarshalValue(int32(0))
	}
	return bson.MarshalValue(r.id)
}

func (r *CategoryRef) UnmarshalBSONValue(t bsontype.Type, data []byte) error {
	rv := bson.RawValue{Type: t, Value: data}
	switch t {
	case bsontype.Int32:
		if rv.Int32() != 0 {
			return fmt.Errorf("unexpected category id %d", rv.Int32())
		}
		*r = OtherCategory()
		return nil
	case bsontype.Int64:
		if rv.Int64() != 0 {
			return fmt.Errorf("unexpected category id %d", rv.Int64())
		}
		*r = OtherCategory()
		return nil
	case bsontype.ObjectID:
		*r = CategoryByID(rv.ObjectID())
		return nil
	default:
		return fmt.Errorf("cannot decode %s as a category id", t)
	}
}

func (r CategoryRef) MarshalJSON() ([]byte, error) {
	return []byte(`"` + r.String() + `"`), nil
}

func (r *CategoryRef) UnmarshalJSON(data []byte) error {
	s := string(data)
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		s = s[1 : len(s)-1]
	}
	parsed, err := ParseCategoryRef(s)
	if err != nil {
		return err
	}
	*r = parsed
	return nil
}

// FileRef describes one uploaded image's stored variants. FileID is globally
// unique and independent of the owning category, so a file can be located
// again after it moves.
type FileRef struct {
	ClientID     string `json:"clientId" bson:"clientId"`
	FileName     string `json:"fileName" bson:"fileName"`
	FullFileURL  string `json:"fullFileUrl" bson:"fullFileUrl"`
	SmallFileURL string `json:"smallFileUrl" bson:"smallFileUrl"`
	FullBlobKey  string `json:"fullBlobKey" bson:"fullBlobKey"`
	SmallBlobKey string `json:"smallBlobKey" bson:"smallBlobKey"`
	FileID       string `json:"fileId" bson:"fileId"`
}

// Category holds an ordered list of the file references it owns. Exactly one
// category document, the seeded Other category, carries the sentinel id.
type Category struct {
	ID    CategoryRef `json:"id" bson:"_id"`
	Name  string      `json:"name" bson:"name"`
	Items []FileRef   `json:"items" bson:"items"`
}
