package services

import (
	"context"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"

	"roamio/internal/models/domain_models"
	"roamio/internal/models/request_models"
	mem "roamio/pkg/memcache"
	"roamio/pkg/utils"
)

type SessionServiceInterface interface {
	CreateSession(ctx context.Context) (*domain_models.TripSession, error)
	GetSession(ctx context.Context, id string) (*domain_models.TripSession, error)

	// ApplyFormEvent runs one state-machine transition: edit, focus, blur or
	// pointer-down-outside. Returns the updated session snapshot.
	ApplyFormEvent(ctx context.Context, id string, event request_models.FormEventRequest) (*domain_models.TripSession, error)

	// SelectSuggestion applies a picked suggestion. A pick with a city sets
	// both fields atomically and closes both dropdowns; a country-only pick
	// sets the country and closes its dropdown.
	SelectSuggestion(ctx context.Context, id string, sel request_models.SelectSuggestionRequest) (*domain_models.TripSession, error)

	// Submit validates the form and launches the guide generation off the
	// request goroutine. The session stays "generating" until all calls
	// settle; a second submit in that window is rejected.
	Submit(ctx context.Context, id string) (*domain_models.TripSession, error)
}

type SessionService struct {
	store          mem.TripSessionStore
	suggestService SuggestServiceInterface
	guideService   GuideServiceInterface
	sessionTTL     time.Duration
	generateBudget time.Duration
}

func NewSessionService(
	store mem.TripSessionStore,
	suggestService SuggestServiceInterface,
	guideService GuideServiceInterface,
	sessionTTL time.Duration,
) SessionServiceInterface {
	return &SessionService{
		store:          store,
		suggestService: suggestService,
		guideService:   guideService,
		sessionTTL:     sessionTTL,
		generateBudget: 2 * time.Minute,
	}
}

func (s *SessionService) CreateSession(ctx context.Context) (*domain_models.TripSession, error) {
	session := domain_models.NewTripSession(uuid.New().String())
	s.store.Put(session, s.sessionTTL)
	return session, nil
}

func (s *SessionService) GetSession(ctx context.Context, id string) (*domain_models.TripSession, error) {
	session := s.store.Get(id)
	if session == nil {
		return nil, utils.ErrSessionNotFound
	}
	return session, nil
}

func (s *SessionService) ApplyFormEvent(ctx context.Context, id string, event request_models.FormEventRequest) (*domain_models.TripSession, error) {
	field := domain_models.FormField(event.Field)

	switch event.Type {
	case request_models.FormEventEdit:
		if !field.Valid() {
			return nil, utils.ErrInvalidInput
		}
		return s.update(ctx, id, func(session *domain_models.TripSession) error {
			return s.editField(ctx, session, field, event.Value)
		})

	case request_models.FormEventFocus:
		if !field.Valid() {
			return nil, utils.ErrInvalidInput
		}
		return s.update(ctx, id, func(session *domain_models.TripSession) error {
			return s.focusField(ctx, session, field)
		})

	case request_models.FormEventBlur:
		return s.update(ctx, id, func(session *domain_models.TripSession) error {
			// Dropdown close is the outside event's job, not blur's: the
			// pointer-down on a suggestion must land before its list goes away.
			session.ActiveField = ""
			return nil
		})

	case request_models.FormEventOutside:
		if field != domain_models.FieldCity && field != domain_models.FieldCountry {
			return nil, utils.ErrInvalidInput
		}
		return s.update(ctx, id, func(session *domain_models.TripSession) error {
			closeDropdown(session, field)
			return nil
		})
	}

	return nil, utils.ErrInvalidInput
}

func (s *SessionService) editField(ctx context.Context, session *domain_models.TripSession, field domain_models.FormField, value string) error {
	switch field {
	case domain_models.FieldCity:
		session.Form.City = value
		cities, err := s.suggestService.MatchCities(ctx, value, session.Form.Country)
		if err != nil {
			return err
		}
		session.CitySuggestions = cities
		session.CityDropdownOpen = len(cities) > 0

	case domain_models.FieldCountry:
		session.Form.Country = value
		countries, err := s.suggestService.MatchCountries(ctx, value)
		if err != nil {
			return err
		}
		session.CountrySuggestions = countries
		session.CountryDropdown = len(countries) > 0

	case domain_models.FieldDuration:
		session.Form.Duration = value
	}
	return nil
}

func (s *SessionService) focusField(ctx context.Context, session *domain_models.TripSession, field domain_models.FormField) error {
	session.ActiveField = field

	// City focus while empty with a chosen country shows every city of that
	// country without the user typing.
	if field == domain_models.FieldCity &&
		strings.TrimSpace(session.Form.City) == "" &&
		strings.TrimSpace(session.Form.Country) != "" {
		cities, err := s.suggestService.MatchCitiesForCountry(ctx, session.Form.Country)
		if err != nil {
			return err
		}
		session.CitySuggestions = cities
		session.CityDropdownOpen = len(cities) > 0
	}
	return nil
}

func closeDropdown(session *domain_models.TripSession, field domain_models.FormField) {
	if field == domain_models.FieldCity {
		session.CityDropdownOpen = false
		session.CitySuggestions = []domain_models.Location{}
	} else {
		session.CountryDropdown = false
		session.CountrySuggestions = []string{}
	}
}

func (s *SessionService) SelectSuggestion(ctx context.Context, id string, sel request_models.SelectSuggestionRequest) (*domain_models.TripSession, error) {
	if strings.TrimSpace(sel.Country) == "" {
		return nil, utils.ErrInvalidInput
	}
	return s.update(ctx, id, func(session *domain_models.TripSession) error {
		if strings.TrimSpace(sel.City) != "" {
			// City pick fills both halves of the directory pair.
			session.Form.City = sel.City
			session.Form.Country = sel.Country
			closeDropdown(session, domain_models.FieldCity)
			closeDropdown(session, domain_models.FieldCountry)
			return nil
		}
		session.Form.Country = sel.Country
		closeDropdown(session, domain_models.FieldCountry)
		return nil
	})
}

func (s *SessionService) Submit(ctx context.Context, id string) (*domain_models.TripSession, error) {
	session, err := s.update(ctx, id, func(session *domain_models.TripSession) error {
		if session.Status == domain_models.StatusGenerating {
			return utils.ErrGenerationInFlight
		}
		if strings.TrimSpace(session.Form.City) == "" ||
			strings.TrimSpace(session.Form.Country) == "" ||
			!utils.ValidTripDuration(session.Form.Duration) {
			return utils.ErrInvalidInput
		}

		closeDropdown(session, domain_models.FieldCity)
		closeDropdown(session, domain_models.FieldCountry)
		session.ActiveField = ""
		session.Status = domain_models.StatusGenerating
		session.Guide = nil
		session.ErrorMessage = ""
		return nil
	})
	if err != nil {
		return nil, err
	}

	go s.generate(id, session.Form)

	return session, nil
}

// generate runs off the request goroutine; there is no cancellation once a
// submission is in flight, only the overall budget.
func (s *SessionService) generate(id string, form domain_models.FormState) {
	ctx, cancel := context.WithTimeout(context.Background(), s.generateBudget)
	defer cancel()

	guide, err := s.guideService.GenerateGuide(ctx, form.City, form.Country, form.Duration)

	ok, updateErr := s.store.Update(id, func(session *domain_models.TripSession) error {
		if err != nil {
			session.Status = domain_models.StatusFailed
			session.ErrorMessage = "Failed to generate travel guide. Please try again."
			return nil
		}
		session.Status = domain_models.StatusReady
		session.Guide = guide
		session.ActiveTab = domain_models.TabOverview
		return nil
	})
	if !ok {
		log.Printf("session %s expired before generation settled", id)
	}
	if updateErr != nil {
		log.Printf("session %s: storing generation result: %v", id, updateErr)
	}
}

func (s *SessionService) update(ctx context.Context, id string, fn func(*domain_models.TripSession) error) (*domain_models.TripSession, error) {
	ok, err := s.store.Update(id, fn)
	if !ok {
		return nil, utils.ErrSessionNotFound
	}
	if err != nil {
		return nil, err
	}
	session := s.store.Get(id)
	if session == nil {
		return nil, utils.ErrSessionNotFound
	}
	return session, nil
}
