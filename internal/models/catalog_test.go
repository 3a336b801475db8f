package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidIconType(t *testing.T) {
	assert.True(t, IsValidIconType(IconTypeAccount))
	assert.True(t, IsValidIconType(IconTypeCategory))
	assert.False(t, IsValidIconType("avatar"))
	assert.False(t, IsValidIconType(""))
}

func TestStringList_ValueAndScan(t *testing.T) {
	list := StringList{"salary", "income"}

	value, err := list.Value()
	assert.NoError(t, err)
	assert.Equal(t, `["salary","income"]`, value)

	var scanned StringList
	assert.NoError(t, scanned.Scan(value))
	assert.Equal(t, list, scanned)

	assert.NoError(t, scanned.Scan([]byte(`["a"]`)))
	assert.Equal(t, StringList{"a"}, scanned)

	assert.NoError(t, scanned.Scan(nil))
	assert.Empty(t, scanned)

	assert.Error(t, scanned.Scan(3.14))
}

func TestStringList_EmptyValues(t *testing.T) {
	value, err := StringList(nil).Value()
	assert.NoError(t, err)
	assert.Equal(t, "[]", value)

	raw, err := StringList(nil).MarshalJSON()
	assert.NoError(t, err)
	assert.Equal(t, "[]", string(raw))
}
