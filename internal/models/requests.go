package models

// RegisterMedalRequest is the payload for placing a new medal. Accuracy is the
// GPS fix accuracy in meters as reported by the device; Force lets the client
// register anyway after the poor-accuracy confirmation prompt.
type RegisterMedalRequest struct {
	Latitude  float64 `json:"latitude" validate:"gte=-90,lte=90"`
	Longitude float64 `json:"longitude" validate:"gte=-180,lte=180"`
	Accuracy  float64 `json:"accuracy" validate:"gte=0"`
	Force     bool    `json:"force"`
}

// SearchMedalsRequest holds the radius-search query parameters.
type SearchMedalsRequest struct {
	Latitude  float64 `query:"lat" validate:"gte=-90,lte=90"`
	Longitude float64 `query:"lon" validate:"gte=-180,lte=180"`
	RadiusKm  float64 `query:"radius_km" validate:"gte=0,lte=100"`
}

// SignUpPrecheck mirrors the client-side sign-up form validation so the
// mobile app can fail fast before calling the identity provider.
type SignUpPrecheck struct {
	Email           string `json:"email" validate:"required,email"`
	Password        string `json:"password" validate:"required,min=4"`
	PasswordConfirm string `json:"password_confirm" validate:"required,eqfield=Password"`
	AgreedToTerms   bool   `json:"agreed_to_terms" validate:"eq=true"`
}

// Preferences is the per-user app state persisted between sessions: the last
// used mode and the last map viewport.
type Preferences struct {
	AppMode  string       `json:"app_mode" validate:"omitempty,oneof=registration exploration"`
	Viewport *MapViewport `json:"viewport"`
}

// MapViewport is the last map region the user was looking at.
type MapViewport struct {
	Latitude       float64 `json:"latitude" validate:"gte=-90,lte=90"`
	Longitude      float64 `json:"longitude" validate:"gte=-180,lte=180"`
	LatitudeDelta  float64 `json:"latitude_delta" validate:"gt=0"`
	LongitudeDelta float64 `json:"longitude_delta" validate:"gt=0"`
}
