package domain

// PopularDestination is a suggested destination shown on the landing page.
type PopularDestination struct {
	Name       string `json:"name"`
	Country    string `json:"country"`
	Image      string `json:"image"`
	HotelCount int    `json:"hotelCount"`
}

// PopularDestinations returns the fixed list of suggested destinations.
func PopularDestinations() []PopularDestination {
	return []PopularDestination{
		{Name: "Paris", Country: "France", Image: "https://images.unsplash.com/photo-1502602898657-3e91760cbb34?w=800", HotelCount: 5234},
		{Name: "New York", Country: "États-Unis", Image: "https://images.unsplash.com/photo-1496442226666-8d4d0e62e6e9?w=800", HotelCount: 3892},
		{Name: "Tokyo", Country: "Japon", Image: "https://images.unsplash.com/photo-1540959733332-eab4deabeeaf?w=800", HotelCount: 4567},
		{Name: "Londres", Country: "Royaume-Uni", Image: "https://images.unsplash.com/photo-1513635269975-59663e0ac1ad?w=800", HotelCount: 4123},
		{Name: "Dubaï", Country: "Émirats Arabes Unis", Image: "https://images.unsplash.com/photo-1512453979798-5ea266f8880c?w=800", HotelCount: 2876},
		{Name: "Barcelone", Country: "Espagne", Image: "https://images.unsplash.com/photo-1562883676-8c7feb83f09b?w=800", HotelCount: 3421},
		{Name: "Rome", Country: "Italie", Image: "https://images.unsplash.com/photo-1552832230-c0197dd311b5?w=800", HotelCount: 2987},
		{Name: "Bali", Country: "Indonésie", Image: "https://images.unsplash.com/photo-1537996194471-e657df975ab4?w=800", HotelCount: 1876},
	}
}
