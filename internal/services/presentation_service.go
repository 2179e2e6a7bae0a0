package services

import (
	"context"

	"roamio/internal/models/domain_models"
	"roamio/internal/models/response_models"
	mem "roamio/pkg/memcache"
	"roamio/pkg/utils"
)

type PresentationServiceInterface interface {
	SelectTab(ctx context.Context, id string, tab string) (*domain_models.TripSession, error)
	ToggleMapStyle(ctx context.Context, id string) (*domain_models.TripSession, error)

	// JumpToAttraction switches to the map tab and targets the coordinates.
	// If the map surface has not reported ready yet the jump is parked on the
	// session and delivered by MapSurfaceReady; a surface that never mounts
	// leaves the jump parked until reset drops it.
	JumpToAttraction(ctx context.Context, id string, c response_models.Coordinates) (*domain_models.TripSession, error)

	// MapSurfaceReady is the readiness signal from the presentational layer:
	// the map container is mounted and addressable.
	MapSurfaceReady(ctx context.Context, id string) (*domain_models.TripSession, error)

	// Reset drops the guide and returns the session to the empty form.
	// Rejected while a generation is in flight.
	Reset(ctx context.Context, id string) (*domain_models.TripSession, error)

	// TileLayer returns the tile source configuration for a map style.
	TileLayer(style string) (response_models.TileLayerConfig, error)
}

type PresentationService struct {
	store mem.TripSessionStore
}

func NewPresentationService(store mem.TripSessionStore) PresentationServiceInterface {
	return &PresentationService{store: store}
}

func (p *PresentationService) SelectTab(ctx context.Context, id string, tab string) (*domain_models.TripSession, error) {
	t := domain_models.Tab(tab)
	if !t.Valid() {
		return nil, utils.ErrUnknownTab
	}
	return p.update(id, func(session *domain_models.TripSession) error {
		session.ActiveTab = t
		return nil
	})
}

func (p *PresentationService) ToggleMapStyle(ctx context.Context, id string) (*domain_models.TripSession, error) {
	return p.update(id, func(session *domain_models.TripSession) error {
		if session.MapStyle == domain_models.StyleStreet {
			session.MapStyle = domain_models.StyleSatellite
		} else {
			session.MapStyle = domain_models.StyleStreet
		}
		return nil
	})
}

func (p *PresentationService) JumpToAttraction(ctx context.Context, id string, c response_models.Coordinates) (*domain_models.TripSession, error) {
	return p.update(id, func(session *domain_models.TripSession) error {
		session.ActiveTab = domain_models.TabMap
		target := c
		if session.MapReady {
			session.MapCenter = &target
		} else {
			session.PendingJump = &target
		}
		return nil
	})
}

func (p *PresentationService) MapSurfaceReady(ctx context.Context, id string) (*domain_models.TripSession, error) {
	return p.update(id, func(session *domain_models.TripSession) error {
		session.MapReady = true
		if session.PendingJump != nil {
			session.MapCenter = session.PendingJump
			session.PendingJump = nil
		}
		return nil
	})
}

func (p *PresentationService) Reset(ctx context.Context, id string) (*domain_models.TripSession, error) {
	return p.update(id, func(session *domain_models.TripSession) error {
		if session.Status == domain_models.StatusGenerating {
			return utils.ErrGenerationInFlight
		}
		session.ResetToForm()
		return nil
	})
}

// Tile sources for the two supported styles. Attribution text is required
// by both providers.
var tileLayers = map[domain_models.MapStyle]response_models.TileLayerConfig{
	domain_models.StyleStreet: {
		Style:       string(domain_models.StyleStreet),
		URLTemplate: "https://{s}.basemaps.cartocdn.com/rastertiles/voyager/{z}/{x}/{y}{r}.png",
		Attribution: "&copy; OpenStreetMap contributors &copy; CARTO",
		MaxZoom:     20,
		DefaultZoom: 12,
	},
	domain_models.StyleSatellite: {
		Style:       string(domain_models.StyleSatellite),
		URLTemplate: "https://server.arcgisonline.com/ArcGIS/rest/services/World_Imagery/MapServer/tile/{z}/{y}/{x}",
		Attribution: "Tiles &copy; Esri &mdash; Source: Esri, Maxar, Earthstar Geographics",
		MaxZoom:     19,
		DefaultZoom: 12,
	},
}

func (p *PresentationService) TileLayer(style string) (response_models.TileLayerConfig, error) {
	cfg, ok := tileLayers[domain_models.MapStyle(style)]
	if !ok {
		return response_models.TileLayerConfig{}, utils.ErrUnknownMapStyle
	}
	return cfg, nil
}

func (p *PresentationService) update(id string, fn func(*domain_models.TripSession) error) (*domain_models.TripSession, error) {
	ok, err := p.store.Update(id, fn)
	if !ok {
		return nil, utils.ErrSessionNotFound
	}
	if err != nil {
		return nil, err
	}
	session := p.store.Get(id)
	if session == nil {
		return nil, utils.ErrSessionNotFound
	}
	return session, nil
}
