package model

import (
	"testing"

	"crmctl/internal/api"

	"github.com/stretchr/testify/assert"
)

func rows(ids ...string) []api.CustomerSummary {
	out := make([]api.CustomerSummary, 0, len(ids))
	for _, id := range ids {
		out = append(out, api.CustomerSummary{ID: api.ID(id)})
	}
	return out
}

func TestListState_GenerationDropsStaleResults(t *testing.T) {
	var l ListState

	filtered := l.Begin("ann")
	unfiltered := l.Begin("")
	assert.Equal(t, "", l.Term)
	assert.True(t, l.Loading)

	// The unfiltered fetch completes first, then the stale filtered one.
	assert.True(t, l.Apply(unfiltered, rows("1", "2", "3")))
	assert.False(t, l.Apply(filtered, rows("2")))

	assert.Len(t, l.Rows, 3)
	assert.False(t, l.Loading)
	assert.True(t, l.Loaded)
}

func TestListState_FailKeepsRows(t *testing.T) {
	var l ListState
	gen := l.Begin("")
	l.Apply(gen, rows("1"))

	gen = l.Begin("x")
	assert.True(t, l.Fail(gen))
	assert.False(t, l.Loading)
	assert.True(t, l.Failed)
	assert.Len(t, l.Rows, 1)
	assert.False(t, l.Fail(gen-1))

	gen = l.Begin("")
	assert.False(t, l.Failed)
	l.Apply(gen, rows("1", "2"))
	assert.False(t, l.Failed)
}

func TestListState_FirstFetchFails(t *testing.T) {
	var l ListState
	gen := l.Begin("")
	assert.True(t, l.Fail(gen))

	assert.False(t, l.Loaded)
	assert.False(t, l.Loading)
	assert.True(t, l.Failed)
	assert.Empty(t, l.Rows)
}

func TestListState_Selection(t *testing.T) {
	var l ListState
	gen := l.Begin("")
	l.Apply(gen, rows("1", "2", "3"))

	l.Move(1)
	row, ok := l.SelectedRow()
	assert.True(t, ok)
	assert.Equal(t, api.ID("2"), row.ID)

	l.Move(10)
	assert.Equal(t, 2, l.Selected)
	l.Move(-10)
	assert.Equal(t, 0, l.Selected)

	l.Move(2)
	gen = l.Begin("")
	l.Apply(gen, rows("1"))
	assert.Equal(t, 0, l.Selected, "selection is clamped when rows shrink")

	gen = l.Begin("")
	l.Apply(gen, nil)
	_, ok = l.SelectedRow()
	assert.False(t, ok)
}

func TestDetailState(t *testing.T) {
	var d DetailState
	assert.True(t, d.ActiveID().IsZero())

	first := d.Begin()
	second := d.Begin()
	assert.False(t, d.Apply(first, &api.Customer{ID: "1"}))
	assert.Nil(t, d.Customer)

	c := &api.Customer{ID: "2", Addresses: []api.Address{{ID: "10"}, {ID: "11"}}}
	assert.True(t, d.Apply(second, c))
	assert.Equal(t, api.ID("2"), d.ActiveID())

	d.Move(1)
	a, ok := d.SelectedAddress()
	assert.True(t, ok)
	assert.Equal(t, api.ID("11"), a.ID)

	// Re-applying the same customer keeps the selection
	gen := d.Begin()
	d.Apply(gen, &api.Customer{ID: "2", Addresses: []api.Address{{ID: "10"}, {ID: "11"}}})
	assert.Equal(t, 1, d.Selected)

	// A failed refresh keeps the active customer
	gen = d.Begin()
	assert.True(t, d.Fail(gen))
	assert.Equal(t, api.ID("2"), d.ActiveID())

	pending := d.Begin()
	d.Clear()
	assert.Nil(t, d.Customer)
	assert.False(t, d.Apply(pending, c), "clearing invalidates in-flight fetches")
}
