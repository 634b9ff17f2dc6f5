package server

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/ashleyjkell/craftidad-landing/internal/icons"
	"github.com/ashleyjkell/craftidad-landing/internal/models"
	"github.com/ashleyjkell/craftidad-landing/internal/store"
	"github.com/ashleyjkell/craftidad-landing/internal/validate"
)

// HandleAdminListLinks returns every link, inactive ones included, sorted by
// order.
func (s *Server) HandleAdminListLinks(w http.ResponseWriter, r *http.Request) {
	links, err := s.store.GetLinks(r.Context())
	if err != nil {
		writeStorageError(w, "load links", err)
		return
	}
	writeJSON(w, http.StatusOK, links)
}

func (s *Server) HandleAdminCreateLink(w http.ResponseWriter, r *http.Request) {
	var req models.CreateLinkRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", CodeInvalidInput)
		return
	}

	req.Label = strings.TrimSpace(req.Label)
	if req.Label == "" {
		writeError(w, http.StatusBadRequest, "Label is required", CodeInvalidInput)
		return
	}
	if !validate.IsValidURL(req.URL) {
		writeError(w, http.StatusBadRequest, "URL must be an absolute http or https URL", CodeInvalidInput)
		return
	}
	if req.VisualType != "" && !validate.IsValidVisualType(req.VisualType) {
		writeError(w, http.StatusBadRequest, "Visual type must be none, image or icon", CodeInvalidInput)
		return
	}
	if req.ImageURL != "" && !validate.IsValidURL(req.ImageURL) {
		writeError(w, http.StatusBadRequest, "Image URL must be an absolute http or https URL", CodeInvalidInput)
		return
	}
	if req.IconURL != "" && !validate.IsValidURL(req.IconURL) {
		writeError(w, http.StatusBadRequest, "Icon URL must be an absolute http or https URL", CodeInvalidInput)
		return
	}

	link, err := s.store.AddLink(r.Context(), req)
	if err != nil {
		writeStorageError(w, "add link", err)
		return
	}
	writeJSON(w, http.StatusCreated, link)
}

func (s *Server) HandleAdminUpdateLink(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req models.UpdateLinkRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", CodeInvalidInput)
		return
	}

	if req.Label != nil {
		trimmed := strings.TrimSpace(*req.Label)
		if trimmed == "" {
			writeError(w, http.StatusBadRequest, "Label cannot be empty", CodeInvalidInput)
			return
		}
		req.Label = &trimmed
	}
	if req.URL != nil && !validate.IsValidURL(*req.URL) {
		writeError(w, http.StatusBadRequest, "URL must be an absolute http or https URL", CodeInvalidInput)
		return
	}
	if req.VisualType != nil && !validate.IsValidVisualType(*req.VisualType) {
		writeError(w, http.StatusBadRequest, "Visual type must be none, image or icon", CodeInvalidInput)
		return
	}
	if req.ImageURL != nil && *req.ImageURL != "" && !validate.IsValidURL(*req.ImageURL) {
		writeError(w, http.StatusBadRequest, "Image URL must be an absolute http or https URL", CodeInvalidInput)
		return
	}
	if req.IconURL != nil && *req.IconURL != "" && !validate.IsValidURL(*req.IconURL) {
		writeError(w, http.StatusBadRequest, "Icon URL must be an absolute http or https URL", CodeInvalidInput)
		return
	}

	link, err := s.store.UpdateLink(r.Context(), id, req)
	if errors.Is(err, store.ErrLinkNotFound) {
		writeError(w, http.StatusNotFound, "Link not found", CodeNotFound)
		return
	}
	if err != nil {
		writeStorageError(w, "update link", err)
		return
	}
	writeJSON(w, http.StatusOK, link)
}

func (s *Server) HandleAdminDeleteLink(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	err := s.store.DeleteLink(r.Context(), id)
	if errors.Is(err, store.ErrLinkNotFound) {
		writeError(w, http.StatusNotFound, "Link not found", CodeNotFound)
		return
	}
	if err != nil {
		writeStorageError(w, "delete link", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}

// HandleAdminReorderLinks applies a full or partial reordering. The store
// rejects the whole payload on any unknown or duplicate id, so a failed
// reorder leaves every order value untouched.
func (s *Server) HandleAdminReorderLinks(w http.ResponseWriter, r *http.Request) {
	var req models.ReorderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", CodeInvalidInput)
		return
	}
	if req.LinkIDs == nil {
		writeError(w, http.StatusBadRequest, "linkIds must be a list of link ids", CodeInvalidInput)
		return
	}

	links, err := s.store.ReorderLinks(r.Context(), req.LinkIDs)
	if errors.Is(err, store.ErrLinkNotFound) || errors.Is(err, store.ErrDuplicateLink) {
		writeError(w, http.StatusBadRequest, "Unknown or duplicate link id in reorder payload", CodeInvalidInput)
		return
	}
	if err != nil {
		writeStorageError(w, "reorder links", err)
		return
	}
	writeJSON(w, http.StatusOK, links)
}

func (s *Server) HandleAdminGetTheme(w http.ResponseWriter, r *http.Request) {
	theme, err := s.store.GetTheme(r.Context())
	if err != nil {
		writeStorageError(w, "load theme", err)
		return
	}
	writeJSON(w, http.StatusOK, theme)
}

func (s *Server) HandleAdminUpdateTheme(w http.ResponseWriter, r *http.Request) {
	var req models.ThemeUpdate
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", CodeInvalidInput)
		return
	}

	for _, color := range []*string{req.BackgroundColor, req.TextColor, req.ButtonColor, req.ButtonTextColor} {
		if color != nil && !validate.IsValidHexColor(*color) {
			writeError(w, http.StatusBadRequest, "Colors must be # followed by 6 hex digits", CodeInvalidInput)
			return
		}
	}
	// An empty background image URL clears the image.
	if req.BackgroundImageURL != nil && *req.BackgroundImageURL != "" && !validate.IsValidURL(*req.BackgroundImageURL) {
		writeError(w, http.StatusBadRequest, "Background image URL must be an absolute http or https URL", CodeInvalidInput)
		return
	}

	theme, err := s.store.UpdateTheme(r.Context(), req)
	if err != nil {
		writeStorageError(w, "update theme", err)
		return
	}
	writeJSON(w, http.StatusOK, theme)
}

func (s *Server) HandleAdminGetProfile(w http.ResponseWriter, r *http.Request) {
	profile, err := s.store.GetProfile(r.Context())
	if err != nil {
		writeStorageError(w, "load profile", err)
		return
	}
	writeJSON(w, http.StatusOK, profile)
}

func (s *Server) HandleAdminUpdateProfile(w http.ResponseWriter, r *http.Request) {
	var req models.ProfileUpdate
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", CodeInvalidInput)
		return
	}

	if req.PhotoURL != nil && *req.PhotoURL != "" && !validate.IsValidURL(*req.PhotoURL) {
		writeError(w, http.StatusBadRequest, "Photo URL must be an absolute http or https URL", CodeInvalidInput)
		return
	}
	if req.Bio != nil {
		trimmed := strings.TrimSpace(*req.Bio)
		if !validate.IsValidBio(trimmed) {
			writeError(w, http.StatusBadRequest, "Bio must be 500 characters or fewer", CodeInvalidInput)
			return
		}
		req.Bio = &trimmed
	}

	profile, err := s.store.UpdateProfile(r.Context(), req)
	if err != nil {
		writeStorageError(w, "update profile", err)
		return
	}
	writeJSON(w, http.StatusOK, profile)
}

func (s *Server) HandleAdminGetConfig(w http.ResponseWriter, r *http.Request) {
	cfg, err := s.store.GetConfig(r.Context())
	if err != nil {
		writeStorageError(w, "load config", err)
		return
	}
	writeJSON(w, http.StatusOK, cfg)
}

func (s *Server) HandleAdminUpdateConfig(w http.ResponseWriter, r *http.Request) {
	var req models.ConfigUpdate
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", CodeInvalidInput)
		return
	}

	cfg, err := s.store.UpdateConfig(r.Context(), req)
	if err != nil {
		writeStorageError(w, "update config", err)
		return
	}
	writeJSON(w, http.StatusOK, cfg)
}

func (s *Server) HandleAdminSearchIcons(w http.ResponseWriter, r *http.Request) {
	query := strings.TrimSpace(r.URL.Query().Get("query"))
	if query == "" {
		writeError(w, http.StatusBadRequest, "Query is required", CodeInvalidInput)
		return
	}

	cfg, err := s.store.GetConfig(r.Context())
	if err != nil {
		writeStorageError(w, "load config", err)
		return
	}

	results, err := s.icons.Search(r.Context(), cfg.NounProjectAPIKey, cfg.NounProjectAPISecret, query)
	if errors.Is(err, icons.ErrNotConfigured) {
		writeError(w, http.StatusBadRequest, "Icon search is not configured", CodeNotConfigured)
		return
	}
	var upstream *icons.UpstreamError
	if errors.As(err, &upstream) {
		slog.Error("Icon search upstream failure", "status", upstream.Status, "body", upstream.Body)
		writeError(w, http.StatusBadGateway, "Icon search is currently unavailable", CodeUpstreamError)
		return
	}
	if err != nil {
		slog.Error("Icon search failed", "error", err)
		writeError(w, http.StatusBadGateway, "Icon search is currently unavailable", CodeUpstreamError)
		return
	}

	writeJSON(w, http.StatusOK, results)
}
