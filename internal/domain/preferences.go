package domain

import (
	"context"
	"fmt"
)

// Preference store keys.
const (
	FavoritesKey = "travelink_favorites"
	ThemeKey     = "travelink_theme"
)

// PreferenceStore is a small string key-value persistence mechanism.
type PreferenceStore interface {
	// Get returns the value for key; ok is false when the key is absent.
	Get(ctx context.Context, key string) (value string, ok bool, err error)

	// Set stores value under key, replacing any previous value.
	Set(ctx context.Context, key, value string) error
}

// Theme is the two-valued UI theme preference.
type Theme string

// Available themes.
const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

// IsValid checks if the theme is light or dark.
func (t Theme) IsValid() bool {
	return t == ThemeLight || t == ThemeDark
}

// Toggled returns the opposite theme.
func (t Theme) Toggled() Theme {
	if t == ThemeDark {
		return ThemeLight
	}
	return ThemeDark
}

// ParseTheme converts a string to a Theme.
func ParseTheme(s string) (Theme, error) {
	t := Theme(s)
	if !t.IsValid() {
		return "", fmt.Errorf("%w: theme must be one of: light, dark; got %q", ErrInvalidRequest, s)
	}
	return t, nil
}

// FavoritesSet is an insertion-ordered set of listing identifiers.
type FavoritesSet struct {
	ids []ListingID
}

// NewFavoritesSet builds a set from ids, dropping empty and duplicate entries.
func NewFavoritesSet(ids []ListingID) *FavoritesSet {
	s := &FavoritesSet{ids: make([]ListingID, 0, len(ids))}
	for _, id := range ids {
		if id == "" || s.Contains(id) {
			continue
		}
		s.ids = append(s.ids, id)
	}
	return s
}

// Contains reports whether id is a favorite.
func (s *FavoritesSet) Contains(id ListingID) bool {
	for _, fav := range s.ids {
		if fav == id {
			return true
		}
	}
	return false
}

// Toggle appends id if absent or removes it if present.
// It returns true when id is a favorite after the call.
func (s *FavoritesSet) Toggle(id ListingID) bool {
	for i, fav := range s.ids {
		if fav == id {
			s.ids = append(s.ids[:i:i], s.ids[i+1:]...)
			return false
		}
	}
	s.ids = append(s.ids, id)
	return true
}

// IDs returns a copy of the identifiers in insertion order.
func (s *FavoritesSet) IDs() []ListingID {
	out := make([]ListingID, len(s.ids))
	copy(out, s.ids)
	return out
}

// Len returns the number of favorites.
func (s *FavoritesSet) Len() int {
	return len(s.ids)
}

// NotificationType is the severity of a user-facing message.
type NotificationType string

// Notification types.
const (
	NotificationSuccess NotificationType = "success"
	NotificationInfo    NotificationType = "info"
	NotificationWarning NotificationType = "warning"
	NotificationError   NotificationType = "error"
)

// Notification is a user-facing confirmation or warning message.
type Notification struct {
	Type    NotificationType `json:"type"`
	Message string           `json:"message"`
}

// User-facing messages.
const (
	MsgFavoriteAdded      = "Ajouté aux favoris"
	MsgFavoriteRemoved    = "Retiré des favoris"
	MsgDestinationMissing = "Veuillez entrer une destination"
)

// ToggleResult is the outcome of a favorite toggle.
type ToggleResult struct {
	// ID is the toggled listing identifier
	ID ListingID `json:"id"`

	// Favorite is true when the listing is a favorite after the toggle
	Favorite bool `json:"favorite"`

	// Notification is the confirmation to show the user
	Notification Notification `json:"notification"`

	// Favorites is the updated set, in insertion order
	Favorites []ListingID `json:"favorites"`
}
