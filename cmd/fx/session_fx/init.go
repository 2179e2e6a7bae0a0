package session_fx

import (
	"os"
	"strconv"
	"time"

	"go.uber.org/fx"

	"roamio/internal/services"
	mem "roamio/pkg/memcache"
)

var Module = fx.Provide(
	NewSessionStore,
	NewSessionService,
	NewPresentationService,
)

func NewSessionStore() mem.TripSessionStore {
	return mem.NewTripSessions()
}

func NewSessionService(
	store mem.TripSessionStore,
	suggest services.SuggestServiceInterface,
	guide services.GuideServiceInterface,
) services.SessionServiceInterface {
	return services.NewSessionService(store, suggest, guide, sessionTTL())
}

func NewPresentationService(store mem.TripSessionStore) services.PresentationServiceInterface {
	return services.NewPresentationService(store)
}

func sessionTTL() time.Duration {
	if raw := os.Getenv("SESSION_TTL_MINUTES"); raw != "" {
		if minutes, err := strconv.Atoi(raw); err == nil && minutes > 0 {
			return time.Duration(minutes) * time.Minute
		}
	}
	return 30 * time.Minute
}
