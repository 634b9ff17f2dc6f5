package store

import (
	"fmt"
	"sort"

	"github.com/ashleyjkell/craftidad-landing/internal/models"
)

// sortByOrder sorts links ascending by their order field. The stable variant
// keeps file order for ties, which only occur when someone hand-edits
// links.json into duplicate order values.
func sortByOrder(links []models.Link) {
	sort.SliceStable(links, func(i, j int) bool {
		return links[i].Order < links[j].Order
	})
}

// nextOrder returns the order value for a link appended to the collection:
// one past the highest existing value, or 0 when the collection is empty.
// Gaps left by deletions are never reused.
func nextOrder(links []models.Link) int {
	next := 0
	for _, l := range links {
		if l.Order >= next {
			next = l.Order + 1
		}
	}
	return next
}

// applyReorder assigns each id named in linkIDs the order equal to its
// position in the payload, then appends every unnamed link after them at
// consecutive values, preserving the unnamed links' previous relative order.
// Unknown or duplicate ids reject the whole reorder; links is not modified.
func applyReorder(links []models.Link, linkIDs []string) ([]models.Link, error) {
	byID := make(map[string]models.Link, len(links))
	for _, l := range links {
		byID[l.ID] = l
	}

	named := make(map[string]bool, len(linkIDs))
	for _, id := range linkIDs {
		if _, ok := byID[id]; !ok {
			return nil, fmt.Errorf("%w: %s", ErrLinkNotFound, id)
		}
		if named[id] {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateLink, id)
		}
		named[id] = true
	}

	// The remainder's relative order comes from the order field, not from
	// whatever sequence the file happens to hold.
	prior := make([]models.Link, len(links))
	copy(prior, links)
	sortByOrder(prior)

	result := make([]models.Link, 0, len(links))
	for i, id := range linkIDs {
		l := byID[id]
		l.Order = i
		result = append(result, l)
	}
	next := len(linkIDs)
	for _, l := range prior {
		if named[l.ID] {
			continue
		}
		l.Order = next
		next++
		result = append(result, l)
	}
	return result, nil
}
