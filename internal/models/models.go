package models

// Visual types a link can render with on the public page.
const (
	VisualNone  = "none"
	VisualImage = "image"
	VisualIcon  = "icon"
)

// Link is one entry in the public link list. Order defines the display
// sequence; values are unique per collection but gaps are allowed.
type Link struct {
	ID         string `json:"id"`
	Label      string `json:"label"`
	URL        string `json:"url"`
	VisualType string `json:"visualType"`
	ImageURL   string `json:"imageUrl"`
	IconID     string `json:"iconId"`
	IconURL    string `json:"iconUrl"`
	Order      int    `json:"order"`
	Active     bool   `json:"active"`
}

type Theme struct {
	BackgroundColor    string `json:"backgroundColor"`
	BackgroundImageURL string `json:"backgroundImageUrl"`
	TextColor          string `json:"textColor"`
	ButtonColor        string `json:"buttonColor"`
	ButtonTextColor    string `json:"buttonTextColor"`
}

// DefaultTheme is what a fresh install serves before the admin customizes
// anything.
func DefaultTheme() Theme {
	return Theme{
		BackgroundColor: "#FAFAFA",
		TextColor:       "#111827",
		ButtonColor:     "#2563EB",
		ButtonTextColor: "#FFFFFF",
	}
}

type Profile struct {
	PhotoURL string `json:"photoUrl"`
	Bio      string `json:"bio"`
}

// AuthRecord holds the single admin identity. It is written at setup time
// only and never exposed through a route.
type AuthRecord struct {
	Username     string `json:"username"`
	PasswordHash string `json:"passwordHash"`
}

// Config holds third-party icon search credentials. Empty fields mean icon
// search is disabled.
type Config struct {
	NounProjectAPIKey    string `json:"nounProjectApiKey"`
	NounProjectAPISecret string `json:"nounProjectApiSecret"`
}

// CreateLinkRequest is the POST /api/admin/links payload. Active defaults to
// true and VisualType to "none" when omitted.
type CreateLinkRequest struct {
	Label      string `json:"label"`
	URL        string `json:"url"`
	VisualType string `json:"visualType"`
	ImageURL   string `json:"imageUrl"`
	IconID     string `json:"iconId"`
	IconURL    string `json:"iconUrl"`
	Active     *bool  `json:"active"`
}

// UpdateLinkRequest carries a partial link update: nil means "leave the field
// alone". There is no Order field; plain edits never touch ordering.
type UpdateLinkRequest struct {
	Label      *string `json:"label"`
	URL        *string `json:"url"`
	VisualType *string `json:"visualType"`
	ImageURL   *string `json:"imageUrl"`
	IconID     *string `json:"iconId"`
	IconURL    *string `json:"iconUrl"`
	Active     *bool   `json:"active"`
}

// ReorderRequest names links in their new display order. The list may be a
// subset; unnamed links keep their relative order after the named ones.
type ReorderRequest struct {
	LinkIDs []string `json:"linkIds"`
}

type ThemeUpdate struct {
	BackgroundColor    *string `json:"backgroundColor"`
	BackgroundImageURL *string `json:"backgroundImageUrl"`
	TextColor          *string `json:"textColor"`
	ButtonColor        *string `json:"buttonColor"`
	ButtonTextColor    *string `json:"buttonTextColor"`
}

type ProfileUpdate struct {
	PhotoURL *string `json:"photoUrl"`
	Bio      *string `json:"bio"`
}

type ConfigUpdate struct {
	NounProjectAPIKey    *string `json:"nounProjectApiKey"`
	NounProjectAPISecret *string `json:"nounProjectApiSecret"`
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}
