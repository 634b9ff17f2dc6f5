package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ashleyjkell/craftidad-landing/internal/models"
)

func linkIDsInOrder(links []models.Link) []string {
	sorted := make([]models.Link, len(links))
	copy(sorted, links)
	sortByOrder(sorted)
	ids := make([]string, len(sorted))
	for i, l := range sorted {
		ids[i] = l.ID
	}
	return ids
}

func TestNextOrder(t *testing.T) {
	assert.Equal(t, 0, nextOrder(nil))
	assert.Equal(t, 0, nextOrder([]models.Link{}))

	assert.Equal(t, 1, nextOrder([]models.Link{{ID: "a", Order: 0}}))

	// Gaps from deletions do not get reused.
	assert.Equal(t, 8, nextOrder([]models.Link{
		{ID: "a", Order: 0},
		{ID: "b", Order: 7},
		{ID: "c", Order: 3},
	}))
}

func TestApplyReorderPartial(t *testing.T) {
	links := []models.Link{
		{ID: "A", Order: 0},
		{ID: "B", Order: 1},
		{ID: "C", Order: 2},
	}

	result, err := applyReorder(links, []string{"C", "A"})
	require.NoError(t, err)

	byID := map[string]int{}
	for _, l := range result {
		byID[l.ID] = l.Order
	}
	assert.Equal(t, 0, byID["C"])
	assert.Equal(t, 1, byID["A"])
	assert.Equal(t, 2, byID["B"])
}

func TestApplyReorderFull(t *testing.T) {
	links := []models.Link{
		{ID: "A", Order: 0},
		{ID: "B", Order: 1},
		{ID: "C", Order: 2},
	}

	result, err := applyReorder(links, []string{"B", "C", "A"})
	require.NoError(t, err)
	assert.Equal(t, []string{"B", "C", "A"}, linkIDsInOrder(result))
}

func TestApplyReorderRemainderKeepsRelativeOrder(t *testing.T) {
	// Order values have gaps and the slice is deliberately shuffled; the
	// remainder must follow the order field, not the slice sequence.
	links := []models.Link{
		{ID: "D", Order: 9},
		{ID: "A", Order: 0},
		{ID: "C", Order: 5},
		{ID: "B", Order: 2},
	}

	result, err := applyReorder(links, []string{"C"})
	require.NoError(t, err)
	assert.Equal(t, []string{"C", "A", "B", "D"}, linkIDsInOrder(result))

	// Resulting orders are the compact sequence 0..N-1.
	sortByOrder(result)
	for i, l := range result {
		assert.Equal(t, i, l.Order)
	}
}

func TestApplyReorderEmptyPayloadCompacts(t *testing.T) {
	links := []models.Link{
		{ID: "B", Order: 4},
		{ID: "A", Order: 1},
	}

	result, err := applyReorder(links, []string{})
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B"}, linkIDsInOrder(result))
}

func TestApplyReorderUnknownID(t *testing.T) {
	links := []models.Link{{ID: "A", Order: 0}}

	_, err := applyReorder(links, []string{"A", "Z"})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrLinkNotFound)
	assert.Contains(t, err.Error(), "Z")

	// The input slice is untouched on failure.
	assert.Equal(t, 0, links[0].Order)
}

func TestApplyReorderDuplicateID(t *testing.T) {
	links := []models.Link{
		{ID: "A", Order: 0},
		{ID: "B", Order: 1},
	}

	_, err := applyReorder(links, []string{"A", "A"})
	assert.ErrorIs(t, err, ErrDuplicateLink)
}
