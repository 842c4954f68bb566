package types

import (
	"os"
	"strings"
)

// ContextUserKey is the gin context key the auth middleware stores the
// authenticated user under.
const ContextUserKey = "user"

// AllowedOrigins lists the origins the CORS layer and the websocket upgrader
// accept. Local dev frontends are always included; CLIENT_URL adds the
// deployed dashboard and ALLOWED_ORIGINS a comma-separated extra set.
var AllowedOrigins = allowedOrigins()

func allowedOrigins() []string {
	origins := []string{
		"http://localhost:3000",
		"http://localhost:5173",
	}

	if client := os.Getenv("CLIENT_URL"); client != "" {
		origins = append(origins, client)
	}

	for _, origin := range strings.Split(os.Getenv("ALLOWED_ORIGINS"), ",") {
		if trimmed := strings.TrimSpace(origin); trimmed != "" {
			origins = append(origins, trimmed)
		}
	}

	return origins
}
