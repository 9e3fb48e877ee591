package model

// SearchRequest is the body of POST /api/v1/search
type SearchRequest struct {
	City string `json:"city"`
}

// FavoriteRequest is the body of POST /api/v1/favorites
type FavoriteRequest struct {
	Name string `json:"name"`
}

// InputRequest is the body of PUT /api/v1/input
type InputRequest struct {
	Text string `json:"text"`
}

// FavoritesResponse lists the stored favorites
type FavoritesResponse struct {
	Favorites []string `json:"favorites"`
	Count     int      `json:"count"`
}

// Notice is a user-visible message that is not a fault
type Notice struct {
	Message string `json:"message"`
}
