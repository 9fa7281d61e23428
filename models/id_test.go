package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"api/errs"
)

func TestParseID(t *testing.T) {
	id := NewID()
	parsed, err := ParseID(string(id))
	require.NoError(t, err)
	assert.Equal(t, id, parsed)

	_, err = ParseID("not-a-uuid")
	assert.True(t, errs.IsKind(err, errs.KindValidation))

	_, err = ParseID("")
	assert.True(t, errs.IsKind(err, errs.KindValidation))
}

func TestAddID_NoDuplicates(t *testing.T) {
	a, b := NewID(), NewID()

	ids := AddID(nil, a)
	ids = AddID(ids, b)
	ids = AddID(ids, a)

	assert.Equal(t, []ID{a, b}, ids)
}

func TestRemoveID_PreservesOrder(t *testing.T) {
	a, b, c := NewID(), NewID(), NewID()
	ids := []ID{a, b, c}

	assert.Equal(t, []ID{a, c}, RemoveID(ids, b))
	assert.Equal(t, []ID{a, c}, RemoveID([]ID{a, c}, NewID()))
}

func TestIntersectsIDs(t *testing.T) {
	a, b, c := NewID(), NewID(), NewID()

	assert.True(t, IntersectsIDs([]ID{a, b}, []ID{b, c}))
	assert.False(t, IntersectsIDs([]ID{a}, []ID{c}))
	assert.False(t, IntersectsIDs(nil, []ID{a}))
	assert.False(t, IntersectsIDs([]ID{a}, nil))
}
