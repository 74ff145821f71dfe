package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTagsRoundTrip(t *testing.T) {
	cases := [][]string{
		{"one"},
		{"b", "a", "c"},
		{"with space", "x"},
		{},
	}
	for _, tags := range cases {
		joined := JoinTags(tags)
		require.NotNil(t, joined)
		assert.Equal(t, tags, SplitTags(joined))
	}
}

func TestTagsNil(t *testing.T) {
	assert.Nil(t, JoinTags(nil))
	assert.Nil(t, SplitTags(nil))
}

func TestJoinTags(t *testing.T) {
	joined := JoinTags([]string{"a", "b"})
	require.NotNil(t, joined)
	assert.Equal(t, "a,b", *joined)
}

func TestParseTagInput(t *testing.T) {
	assert.Equal(t, []string{"home", "urgent"}, ParseTagInput(" home, urgent ,"))
	assert.Nil(t, ParseTagInput(""))
	assert.Nil(t, ParseTagInput(" , "))
}

func TestTaskValidate(t *testing.T) {
	valid := Task{Name: "x", ListID: 1, Tags: []string{"a"}}
	assert.NoError(t, valid.Validate())

	assert.Error(t, Task{Name: " ", ListID: 1}.Validate())
	assert.Error(t, Task{Name: "x"}.Validate())
	assert.ErrorIs(t, Task{Name: "x", ListID: 1, Tags: []string{"a,b"}}.Validate(), ErrTagSeparator)
	assert.ErrorIs(t, Task{Name: "x", ListID: 1, Tags: []string{""}}.Validate(), ErrEmptyTag)
	assert.ErrorIs(t, Task{Name: "x", ListID: 1, Tags: []string{"a", "  "}}.Validate(), ErrEmptyTag)
	assert.NoError(t, Task{Name: "x", ListID: 1, Tags: []string{}}.Validate())
}

func TestListValidate(t *testing.T) {
	assert.NoError(t, List{Name: "Groceries"}.Validate())
	assert.Error(t, List{}.Validate())
}

func TestValidateDate(t *testing.T) {
	assert.NoError(t, ValidateDate(""))
	assert.NoError(t, ValidateDate("2024-02-29"))
	assert.Error(t, ValidateDate("2023-02-29"))
	assert.Error(t, ValidateDate("tomorrow"))
}
