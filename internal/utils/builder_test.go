package querybuilder

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildSelect(t *testing.T) {
	t.Run("plain select with where and order", func(t *testing.T) {
		query, args := NewQueryBuilder("public").
			Select("id", "state").
			From("submissions").
			Where("language = ?", "ruby").
			And("slug = ?", "bob").
			OrderBy("created_at", false).
			Build()

		assert.Equal(t, "SELECT id, state FROM public.submissions WHERE language = ? AND slug = ? ORDER BY created_at DESC", query)
		assert.Equal(t, []interface{}{"ruby", "bob"}, args)
	})

	t.Run("join and or-condition", func(t *testing.T) {
		query, args := NewQueryBuilder("").
			Select("s.id", "u.user_name").
			From("submissions s").
			Join(JoinTypeInner, "users", "u", "u.id = s.user_id").
			Where("s.state = ?", "pending").
			Or("s.state = ?", "approved").
			Build()

		assert.Equal(t, "SELECT s.id, u.user_name FROM submissions s INNER JOIN users u ON u.id = s.user_id WHERE s.state = ? OR s.state = ?", query)
		assert.Equal(t, []interface{}{"pending", "approved"}, args)
	})

	t.Run("no schema leaves table unqualified", func(t *testing.T) {
		query, _ := NewQueryBuilder("").Select("id").From("nitpicks").Build()
		assert.Equal(t, "SELECT id FROM nitpicks", query)
	})
}

func TestBuildInsert(t *testing.T) {
	t.Run("single row", func(t *testing.T) {
		query, args := NewQueryBuilder("public").
			Insert("id", "submission_id", "comment").
			Into("nitpicks").
			Values("nit-1", "sub-1", "use each_char").
			Build()

		assert.Equal(t, "INSERT INTO public.nitpicks (id, submission_id, comment) VALUES (?, ?, ?)", query)
		assert.Equal(t, []interface{}{"nit-1", "sub-1", "use each_char"}, args)
	})

	t.Run("multiple rows", func(t *testing.T) {
		query, args := NewQueryBuilder("").
			Insert("id", "body").
			Into("arguments").
			Values("a1", "first").
			Values("a2", "second").
			Build()

		assert.Equal(t, "INSERT INTO arguments (id, body) VALUES (?, ?), (?, ?)", query)
		assert.Equal(t, []interface{}{"a1", "first", "a2", "second"}, args)
	})

	t.Run("mismatched row arity yields nothing", func(t *testing.T) {
		query, args := NewQueryBuilder("").
			Insert("id", "body").
			Into("arguments").
			Values("a1").
			Build()

		assert.Empty(t, query)
		assert.Nil(t, args)
	})
}

func TestBuildUpdate(t *testing.T) {
	query, args := NewQueryBuilder("public").
		Update("nitpicks", UpdateData{"comment": "reworded"}).
		Where("id = ?", "nit-1").
		Build()

	assert.Equal(t, "UPDATE public.nitpicks SET comment = ? WHERE id = ?", query)
	assert.Equal(t, []interface{}{"reworded", "nit-1"}, args)
}
