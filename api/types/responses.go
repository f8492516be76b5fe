package types

// Status constants for API responses
const (
	StatusOK      = "ok"
	StatusError   = "error"
	StatusQueued  = "queued"
	StatusLoading = "loading"
)

// BaseResponse contains fields common to all API responses
type BaseResponse struct {
	Status  string `json:"status"`  // One of the Status constants above
	Message string `json:"message"` // Human-readable message
}

// Podcast is a list entry together with the route that opens it
type Podcast struct {
	ID          string `json:"id" example:"4d3fe717742d4963a85562e9f84d8c79"`
	Title       string `json:"title" example:"Star Wars 7x7"`
	Publisher   string `json:"publisher" example:"Allen Voivod"`
	Image       string `json:"image" example:"https://cdn-images-1.listennotes.com/podcasts/star-wars-7x7.jpg"`
	Description string `json:"description"`
	Token       string `json:"token"` // Route token for the details endpoint
	Route       string `json:"route" example:"podcasts/details/v1.eyJ2IjoxfQ"`
}

// PodcastsResponse for the podcast list
type PodcastsResponse struct {
	BaseResponse
	Podcasts []Podcast `json:"podcasts"`
	Count    int       `json:"count"`           // Number of results in this response
	Total    int       `json:"total"`           // Size of the unfiltered list
	Query    string    `json:"query,omitempty"` // Filter applied, if any
	Loading  bool      `json:"loading"`
}

// SinglePodcastResponse for a decoded details route
type SinglePodcastResponse struct {
	BaseResponse
	Podcast *Podcast `json:"podcast"`
}

// RefreshResponse for refresh requests
type RefreshResponse struct {
	BaseResponse
	Scheduled bool `json:"scheduled"`
}

// CatalogStatus describes the list state
type CatalogStatus struct {
	Loaded    bool   `json:"loaded"`
	Loading   bool   `json:"loading"`
	Count     int    `json:"count"`
	Watchers  int    `json:"watchers"` // Live subscriptions, such as open streams
	LastError string `json:"last_error,omitempty"`
	ErrorCode string `json:"error_code,omitempty"`
}

// HealthResponse for health check endpoint
type HealthResponse struct {
	BaseResponse
	Timestamp string         `json:"timestamp"`
	Catalog   *CatalogStatus `json:"catalog,omitempty"`
}

// VersionResponse for the service root
type VersionResponse struct {
	Name        string `json:"name"`
	Version     string `json:"version"`
	Description string `json:"description"`
	Status      string `json:"status"`
}

// ErrorResponse for detailed error information
type ErrorResponse struct {
	Status  string      `json:"status"`
	Message string      `json:"message"`
	Error   string      `json:"error,omitempty"`   // Error code/type
	Details interface{} `json:"details,omitempty"` // Additional error details
}
