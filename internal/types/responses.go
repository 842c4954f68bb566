package types

import "time"

type UserResponse struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// AuthResponse is a UserResponse plus the freshly issued bearer token.
type AuthResponse struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Token string `json:"token"`
}

type ProductResponse struct {
	ID          uint    `json:"id"`
	ProjectID   uint    `json:"project_id"`
	Name        string  `json:"name"`
	Lat         float64 `json:"lat"`
	Lon         float64 `json:"lon"`
	Tilt        float64 `json:"tilt"`
	Orientation string  `json:"orientation"`
	Area        float64 `json:"area"`
	IsClosed    bool    `json:"is_closed"`
}

type ProjectResponse struct {
	ID        uint              `json:"id"`
	Name      string            `json:"name"`
	IsClosed  bool              `json:"is_closed"`
	CreatedAt time.Time         `json:"created_at"`
	ClosedAt  time.Time         `json:"closed_at"`
	Products  []ProductResponse `json:"products,omitempty"`
}
