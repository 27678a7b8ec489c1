package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/travelink/hotel-search/internal/domain"
	"github.com/travelink/hotel-search/internal/infrastructure/logger"
)

// FavoritesService toggles listings in and out of the persisted favorites.
// Favorite status never influences filtering or ordering.
type FavoritesService struct {
	prefs *PreferenceService
	log   *logger.Logger
}

func NewFavoritesService(prefs *PreferenceService, log *logger.Logger) *FavoritesService {
	if log == nil {
		log = logger.Nop()
	}
	return &FavoritesService{prefs: prefs, log: log}
}

// Toggle adds id when absent (at the end) and removes it when present,
// persisting the new set before returning.
func (s *FavoritesService) Toggle(ctx context.Context, id domain.ListingID) (domain.ToggleResult, error) {
	id = domain.ListingID(strings.TrimSpace(id.String()))
	if id == "" {
		return domain.ToggleResult{}, fmt.Errorf("%w: listing id is required", domain.ErrInvalidRequest)
	}

	var added bool
	ids, err := s.prefs.UpdateFavorites(ctx, func(set *domain.FavoritesSet) {
		added = set.Toggle(id)
	})
	if err != nil {
		return domain.ToggleResult{}, fmt.Errorf("toggle favorite %s: %w", id, err)
	}

	notification := domain.Notification{Type: domain.NotificationInfo, Message: domain.MsgFavoriteRemoved}
	if added {
		notification = domain.Notification{Type: domain.NotificationSuccess, Message: domain.MsgFavoriteAdded}
	}

	s.log.Debug().
		Str("listing_id", id.String()).
		Bool("favorite", added).
		Int("favorites", len(ids)).
		Msg("favorite toggled")

	return domain.ToggleResult{
		ID:           id,
		Favorite:     added,
		Notification: notification,
		Favorites:    ids,
	}, nil
}

// List returns the favorite ids in insertion order.
func (s *FavoritesService) List() []domain.ListingID {
	return s.prefs.FavoriteIDs()
}

func (s *FavoritesService) IsFavorite(id domain.ListingID) bool {
	return s.prefs.IsFavorite(id)
}
