// models/category_test.go
package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestParseCategoryRef(t *testing.T) {
	t.Run("other sentinel", func(t *testing.T) {
		ref, err := ParseCategoryRef("0")
		require.NoError(t, err)
		assert.True(t, ref.IsOther())
		assert.Equal(t, "0", ref.String())

		_, ok := ref.ObjectID()
		assert.False(t, ok)
	})

	t.Run("well-formed object id", func(t *testing.T) {
		id := primitive.NewObjectID()
		ref, err := ParseCategoryRef(id.Hex())
		require.NoError(t, err)
		assert.False(t, ref.IsOther())
		assert.Equal(t, id.Hex(), ref.String())

		got, ok := ref.ObjectID()
		assert.True(t, ok)
		assert.Equal(t, id, got)
	})

	t.Run("malformed", func(t *testing.T) {
		for _, s := range []string{"", "00", "jeans", "zzzzzzzzzzzzzzzzzzzzzzzz"} {
			_, err := ParseCategoryRef(s)
			assert.ErrorIs(t, err, ErrMalformedCategoryRef, s)
		}
	})
}

func TestCategoryRefBSONRoundTrip(t *testing.T) {
	t.Run("other stored as int32 zero", func(t *testing.T) {
		raw, err := bson.Marshal(Category{ID: OtherCategory(), Name: "Other", Items: []FileRef{}})
		require.NoError(t, err)

		var doc bson.M
		require.NoError(t, bson.Unmarshal(raw, &doc))
		assert.Equal(t, int32(0), doc["_id"])

		var back Category
		require.NoError(t, bson.Unmarshal(raw, &back))
		assert.True(t, back.ID.IsOther())
	})

	t.Run("object id round trip", func(t *testing.T) {
		id := primitive.NewObjectID()
		raw, err := bson.Marshal(Category{ID: CategoryByID(id), Name: "Jeans", Items: []FileRef{}})
		require.NoError(t, err)

		var back Category
		require.NoError(t, bson.Unmarshal(raw, &back))
		got, ok := back.ID.ObjectID()
		assert.True(t, ok)
		assert.Equal(t, id, got)
	})

	t.Run("rejects other bson types", func(t *testing.T) {
		raw, err := bson.Marshal(bson.M{"_id": "jeans"})
		require.NoError(t, err)

		var back Category
		assert.Error(t, bson.Unmarshal(raw, &back))
	})
}

func TestCategoryRefJSON(t *testing.T) {
	id := primitive.NewObjectID()

	data, err := json.Marshal(map[string]CategoryRef{"other": OtherCategory(), "jeans": CategoryByID(id)})
	require.NoError(t, err)
	assert.JSONEq(t, `{"other":"0","jeans":"`+id.Hex()+`"}`, string(data))

	var ref CategoryRef
	require.NoError(t, json.Unmarshal([]byte(`"0"`), &ref))
	assert.True(t, ref.IsOther())

	require.NoError(t, json.Unmarshal([]byte(`"`+id.Hex()+`"`), &ref))
	assert.Equal(t, id.Hex(), ref.String())

	assert.Error(t, json.Unmarshal([]byte(`"jeans"`), &ref))
}
