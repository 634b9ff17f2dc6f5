package store

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ashleyjkell/craftidad-landing/internal/models"
)

func newTestStore(t *testing.T) Store {
	t.Helper()
	s, err := New(t.TempDir())
	require.NoError(t, err)
	require.NoError(t, s.EnsureDefaults(context.Background()))
	return s
}

func strPtr(s string) *string { return &s }
func boolPtr(b bool) *bool    { return &b }

func TestEnsureDefaults(t *testing.T) {
	dir := t.TempDir()
	s, err := New(dir)
	require.NoError(t, err)

	ctx := context.Background()
	require.NoError(t, s.EnsureDefaults(ctx))

	links, err := s.GetLinks(ctx)
	require.NoError(t, err)
	assert.Empty(t, links)

	theme, err := s.GetTheme(ctx)
	require.NoError(t, err)
	assert.Equal(t, models.DefaultTheme(), theme)

	profile, err := s.GetProfile(ctx)
	require.NoError(t, err)
	assert.Equal(t, models.Profile{}, profile)

	cfg, err := s.GetConfig(ctx)
	require.NoError(t, err)
	assert.Equal(t, models.Config{}, cfg)

	// Auth is never seeded.
	_, err = s.GetAuth(ctx)
	assert.ErrorIs(t, err, ErrNotFound)

	// Running again does not clobber existing content.
	_, err = s.UpdateTheme(ctx, models.ThemeUpdate{TextColor: strPtr("#000000")})
	require.NoError(t, err)
	require.NoError(t, s.EnsureDefaults(ctx))
	theme, err = s.GetTheme(ctx)
	require.NoError(t, err)
	assert.Equal(t, "#000000", theme.TextColor)
}

func TestReadMissingAndCorrupt(t *testing.T) {
	dir := t.TempDir()
	s, err := New(dir)
	require.NoError(t, err)
	ctx := context.Background()

	_, err = s.GetTheme(ctx)
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "theme.json"), []byte("{not json"), 0o644))
	_, err = s.GetTheme(ctx)
	assert.ErrorIs(t, err, ErrCorrupt)
}

func TestAddLinkAssignsOrder(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	first, err := s.AddLink(ctx, models.CreateLinkRequest{Label: "Blog", URL: "https://example.com/blog"})
	require.NoError(t, err)
	assert.Equal(t, 0, first.Order)
	assert.NotEmpty(t, first.ID)
	assert.Equal(t, models.VisualNone, first.VisualType)
	assert.True(t, first.Active)

	second, err := s.AddLink(ctx, models.CreateLinkRequest{Label: "Shop", URL: "https://example.com/shop"})
	require.NoError(t, err)
	assert.Equal(t, 1, second.Order)
	assert.NotEqual(t, first.ID, second.ID)

	// Delete the first, then add another: the gap is not reused.
	require.NoError(t, s.DeleteLink(ctx, first.ID))
	third, err := s.AddLink(ctx, models.CreateLinkRequest{Label: "About", URL: "https://example.com/about"})
	require.NoError(t, err)
	assert.Equal(t, 2, third.Order)
}

func TestAddLinkHonorsExplicitFields(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	link, err := s.AddLink(ctx, models.CreateLinkRequest{
		Label:      "Gallery",
		URL:        "https://example.com/gallery",
		VisualType: models.VisualImage,
		ImageURL:   "https://example.com/g.png",
		Active:     boolPtr(false),
	})
	require.NoError(t, err)
	assert.Equal(t, models.VisualImage, link.VisualType)
	assert.Equal(t, "https://example.com/g.png", link.ImageURL)
	assert.False(t, link.Active)
}

func TestUpdateLinkPartial(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	link, err := s.AddLink(ctx, models.CreateLinkRequest{Label: "Blog", URL: "https://example.com/blog"})
	require.NoError(t, err)

	updated, err := s.UpdateLink(ctx, link.ID, models.UpdateLinkRequest{
		Label:  strPtr("Journal"),
		Active: boolPtr(false),
	})
	require.NoError(t, err)
	assert.Equal(t, "Journal", updated.Label)
	assert.Equal(t, "https://example.com/blog", updated.URL)
	assert.False(t, updated.Active)
	assert.Equal(t, link.Order, updated.Order)

	_, err = s.UpdateLink(ctx, "no-such-id", models.UpdateLinkRequest{Label: strPtr("x")})
	assert.ErrorIs(t, err, ErrLinkNotFound)
}

func TestDeleteLinkKeepsRelativeOrder(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	a, _ := s.AddLink(ctx, models.CreateLinkRequest{Label: "A", URL: "https://example.com/a"})
	b, _ := s.AddLink(ctx, models.CreateLinkRequest{Label: "B", URL: "https://example.com/b"})
	c, _ := s.AddLink(ctx, models.CreateLinkRequest{Label: "C", URL: "https://example.com/c"})

	require.NoError(t, s.DeleteLink(ctx, b.ID))

	links, err := s.GetLinks(ctx)
	require.NoError(t, err)
	require.Len(t, links, 2)
	assert.Equal(t, a.ID, links[0].ID)
	assert.Equal(t, c.ID, links[1].ID)
	// Orders keep their old values; gaps are fine.
	assert.Equal(t, 0, links[0].Order)
	assert.Equal(t, 2, links[1].Order)

	assert.ErrorIs(t, s.DeleteLink(ctx, b.ID), ErrLinkNotFound)
}

func TestReorderLinksAtomic(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	a, _ := s.AddLink(ctx, models.CreateLinkRequest{Label: "A", URL: "https://example.com/a"})
	b, _ := s.AddLink(ctx, models.CreateLinkRequest{Label: "B", URL: "https://example.com/b"})
	c, _ := s.AddLink(ctx, models.CreateLinkRequest{Label: "C", URL: "https://example.com/c"})

	// Partial payload: named first, remainder after.
	links, err := s.ReorderLinks(ctx, []string{c.ID, a.ID})
	require.NoError(t, err)
	require.Len(t, links, 3)
	assert.Equal(t, []string{c.ID, a.ID, b.ID}, []string{links[0].ID, links[1].ID, links[2].ID})
	assert.Equal(t, []int{0, 1, 2}, []int{links[0].Order, links[1].Order, links[2].Order})

	// Unknown id rejects the whole payload and leaves the file untouched.
	_, err = s.ReorderLinks(ctx, []string{b.ID, "ghost"})
	assert.ErrorIs(t, err, ErrLinkNotFound)

	after, err := s.GetLinks(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{c.ID, a.ID, b.ID}, []string{after[0].ID, after[1].ID, after[2].ID})
}

func TestThemeRoundTrip(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	want, err := s.UpdateTheme(ctx, models.ThemeUpdate{
		BackgroundColor:    strPtr("#123456"),
		BackgroundImageURL: strPtr("https://example.com/bg.png"),
	})
	require.NoError(t, err)

	got, err := s.GetTheme(ctx)
	require.NoError(t, err)
	assert.Equal(t, want, got)
	// Untouched fields keep their defaults.
	assert.Equal(t, models.DefaultTheme().TextColor, got.TextColor)
}

func TestProfileRoundTrip(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	_, err := s.UpdateProfile(ctx, models.ProfileUpdate{
		PhotoURL: strPtr("https://example.com/me.jpg"),
		Bio:      strPtr("Maker of things."),
	})
	require.NoError(t, err)

	got, err := s.GetProfile(ctx)
	require.NoError(t, err)
	assert.Equal(t, models.Profile{
		PhotoURL: "https://example.com/me.jpg",
		Bio:      "Maker of things.",
	}, got)
}

func TestConfigRoundTrip(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	_, err := s.UpdateConfig(ctx, models.ConfigUpdate{NounProjectAPIKey: strPtr("key-1")})
	require.NoError(t, err)
	// Second partial update leaves the first field alone.
	_, err = s.UpdateConfig(ctx, models.ConfigUpdate{NounProjectAPISecret: strPtr("secret-1")})
	require.NoError(t, err)

	got, err := s.GetConfig(ctx)
	require.NoError(t, err)
	assert.Equal(t, models.Config{NounProjectAPIKey: "key-1", NounProjectAPISecret: "secret-1"}, got)
}

func TestAuthRoundTrip(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.SetCredentials(ctx, "admin", "$2a$10$hash"))

	got, err := s.GetAuth(ctx)
	require.NoError(t, err)
	assert.Equal(t, models.AuthRecord{Username: "admin", PasswordHash: "$2a$10$hash"}, got)
}

func TestLinksSurviveHandEditedGaps(t *testing.T) {
	// Humans edit these files; a shuffled array with gapped orders must
	// still list sorted and reorder correctly.
	dir := t.TempDir()
	s, err := New(dir)
	require.NoError(t, err)

	raw := `[
  {"id": "b", "label": "B", "url": "https://example.com/b", "visualType": "none", "imageUrl": "", "iconId": "", "iconUrl": "", "order": 10, "active": true},
  {"id": "a", "label": "A", "url": "https://example.com/a", "visualType": "none", "imageUrl": "", "iconId": "", "iconUrl": "", "order": 3, "active": false}
]`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "links.json"), []byte(raw), 0o644))

	ctx := context.Background()
	links, err := s.GetLinks(ctx)
	require.NoError(t, err)
	assert.Equal(t, "a", links[0].ID)
	assert.Equal(t, "b", links[1].ID)

	added, err := s.AddLink(ctx, models.CreateLinkRequest{Label: "C", URL: "https://example.com/c"})
	require.NoError(t, err)
	assert.Equal(t, 11, added.Order)
}
