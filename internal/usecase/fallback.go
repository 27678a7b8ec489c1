package usecase

import (
	"fmt"

	"github.com/travelink/hotel-search/internal/domain"
)

const fallbackImageURL = "https://images.unsplash.com/%s?w=800"

type fallbackTemplate struct {
	name        string
	location    string
	price       float64
	rating      float64
	reviewCount int
	photo       string
	amenities   []string
	category    domain.Category
	distance    string
}

// fallbackTemplates use %s for the destination.
var fallbackTemplates = []fallbackTemplate{
	{"Grand Hôtel %s", "Centre-ville, %s", 120, 4.5, 856, "photo-1566073771259-6a8506099945",
		[]string{"WiFi gratuit", "Piscine", "Spa", "Restaurant"}, domain.CategoryHotel, "0.5"},
	{"%s Plaza Suites", "Quartier affaires, %s", 95, 4.3, 642, "photo-1551882547-ff40c63fe5fa",
		[]string{"WiFi gratuit", "Petit-déjeuner", "Parking", "Salle de sport"}, domain.CategoryHotel, "1.2"},
	{"Appartements %s Downtown", "Centre, %s", 75, 4.6, 423, "photo-1522708323590-d24dbb6b0267",
		[]string{"WiFi gratuit", "Cuisine équipée", "Balcon", "Vue panoramique"}, domain.CategoryApartment, "0.8"},
	{"%s Beach Resort", "Bord de mer, %s", 180, 4.8, 1205, "photo-1520250497591-112f2f40a3f4",
		[]string{"Plage privée", "Piscine", "Spa", "Restaurant gastronomique"}, domain.CategoryResort, "3.5"},
	{"Villa %s Luxury", "Quartier résidentiel, %s", 250, 4.9, 287, "photo-1613490493576-7fde63acd811",
		[]string{"Piscine privée", "Jardin", "Concierge", "Chef privé"}, domain.CategoryVilla, "2.1"},
	{"Boutique Hôtel %s", "Vieille ville, %s", 110, 4.7, 534, "photo-1542314831-068cd1dbfeeb",
		[]string{"WiFi gratuit", "Petit-déjeuner", "Bar", "Terrasse"}, domain.CategoryHotel, "0.3"},
	{"%s City Apartments", "Centre commercial, %s", 65, 4.2, 398, "photo-1560448204-e02f11c3d0e2",
		[]string{"WiFi gratuit", "Cuisine", "Parking", "Près des transports"}, domain.CategoryApartment, "1.5"},
	{"Luxury Resort & Spa %s", "Zone exclusive, %s", 320, 5.0, 967, "photo-1571896349842-33c89424de2d",
		[]string{"Tout inclus", "Spa de luxe", "Golf", "5 restaurants"}, domain.CategoryResort, "4.2"},
}

// FallbackCatalog returns the fixed eight-listing catalog for a destination.
// The output depends only on destination and is freshly allocated on every call.
func FallbackCatalog(destination string) []domain.Listing {
	listings := make([]domain.Listing, len(fallbackTemplates))
	for i, t := range fallbackTemplates {
		amenities := make([]string, len(t.amenities))
		copy(amenities, t.amenities)

		listings[i] = domain.Listing{
			ID:          domain.ListingID(fmt.Sprint(i + 1)),
			Name:        fmt.Sprintf(t.name, destination),
			Location:    fmt.Sprintf(t.location, destination),
			Price:       t.price,
			Currency:    "EUR",
			Rating:      t.rating,
			ReviewCount: t.reviewCount,
			Image:       fmt.Sprintf(fallbackImageURL, t.photo),
			Amenities:   amenities,
			Category:    t.category,
			Distance:    t.distance,
		}
	}
	return listings
}
