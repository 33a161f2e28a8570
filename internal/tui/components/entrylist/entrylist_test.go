package entrylist

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestItem_FilterValue(t *testing.T) {
	assert.Equal(t, "Heading", Item{Heading: "Heading"}.FilterValue())
	assert.Equal(t, "heading tags", Item{Heading: "Heading", Filter: "heading tags"}.FilterValue())
}

func TestModel_Empty(t *testing.T) {
	m := New("Articles", nil, "No articles yet.", 40, 10)
	assert.Equal(t, 0, m.Len())
	assert.Contains(t, m.View(), "No articles yet.")

	_, ok := m.Selected()
	assert.False(t, ok)
}

func TestModel_SetItems(t *testing.T) {
	m := New("Articles", nil, "No articles yet.", 60, 20)
	m.SetItems([]Item{
		{Heading: "First", Detail: "one"},
		{Heading: "Second", Detail: "two"},
	})
	assert.Equal(t, 2, m.Len())
	assert.False(t, m.Filtering())

	it, ok := m.Selected()
	assert.True(t, ok)
	assert.Equal(t, "First", it.Heading)
	assert.Contains(t, m.View(), "Second")
}
