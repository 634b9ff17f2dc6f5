package store

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/ashleyjkell/craftidad-landing/internal/models"
)

// GetLinks returns every link, active or not, sorted by order ascending.
func (s *fileStore) GetLinks(ctx context.Context) ([]models.Link, error) {
	var links []models.Link
	if err := s.readDoc(linksFile, &links); err != nil {
		return nil, err
	}
	sortByOrder(links)
	return links, nil
}

// AddLink appends a new link to the end of the collection.
func (s *fileStore) AddLink(ctx context.Context, req models.CreateLinkRequest) (models.Link, error) {
	s.linksMu.Lock()
	defer s.linksMu.Unlock()

	var links []models.Link
	if err := s.readDoc(linksFile, &links); err != nil {
		return models.Link{}, err
	}

	visualType := req.VisualType
	if visualType == "" {
		visualType = models.VisualNone
	}
	active := true
	if req.Active != nil {
		active = *req.Active
	}

	link := models.Link{
		ID:         uuid.NewString(),
		Label:      req.Label,
		URL:        req.URL,
		VisualType: visualType,
		ImageURL:   req.ImageURL,
		IconID:     req.IconID,
		IconURL:    req.IconURL,
		Order:      nextOrder(links),
		Active:     active,
	}

	links = append(links, link)
	if err := s.writeDoc(linksFile, links); err != nil {
		return models.Link{}, err
	}
	return link, nil
}

// UpdateLink applies the supplied fields to the link with the given id. The
// order field is never touched here.
func (s *fileStore) UpdateLink(ctx context.Context, id string, req models.UpdateLinkRequest) (models.Link, error) {
	s.linksMu.Lock()
	defer s.linksMu.Unlock()

	var links []models.Link
	if err := s.readDoc(linksFile, &links); err != nil {
		return models.Link{}, err
	}

	idx := -1
	for i := range links {
		if links[i].ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return models.Link{}, fmt.Errorf("%w: %s", ErrLinkNotFound, id)
	}

	l := &links[idx]
	if req.Label != nil {
		l.Label = *req.Label
	}
	if req.URL != nil {
		l.URL = *req.URL
	}
	if req.VisualType != nil {
		l.VisualType = *req.VisualType
	}
	if req.ImageURL != nil {
		l.ImageURL = *req.ImageURL
	}
	if req.IconID != nil {
		l.IconID = *req.IconID
	}
	if req.IconURL != nil {
		l.IconURL = *req.IconURL
	}
	if req.Active != nil {
		l.Active = *req.Active
	}

	if err := s.writeDoc(linksFile, links); err != nil {
		return models.Link{}, err
	}
	return *l, nil
}

// DeleteLink removes the link with the given id. Remaining links keep their
// order values; gaps are fine because display only ever sorts.
func (s *fileStore) DeleteLink(ctx context.Context, id string) error {
	s.linksMu.Lock()
	defer s.linksMu.Unlock()

	var links []models.Link
	if err := s.readDoc(linksFile, &links); err != nil {
		return err
	}

	kept := links[:0]
	found := false
	for _, l := range links {
		if l.ID == id {
			found = true
			continue
		}
		kept = append(kept, l)
	}
	if !found {
		return fmt.Errorf("%w: %s", ErrLinkNotFound, id)
	}

	return s.writeDoc(linksFile, kept)
}

// ReorderLinks applies a full or partial ordering. The write is
// all-or-nothing: an unknown or duplicate id leaves the file untouched.
func (s *fileStore) ReorderLinks(ctx context.Context, linkIDs []string) ([]models.Link, error) {
	s.linksMu.Lock()
	defer s.linksMu.Unlock()

	var links []models.Link
	if err := s.readDoc(linksFile, &links); err != nil {
		return nil, err
	}

	reordered, err := applyReorder(links, linkIDs)
	if err != nil {
		return nil, err
	}

	if err := s.writeDoc(linksFile, reordered); err != nil {
		return nil, err
	}
	return reordered, nil
}
