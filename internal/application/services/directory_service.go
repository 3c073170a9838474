package services

import (
	"context"
	"sync"

	"github.com/rs/zerolog/log"

	"github.com/medloop/doctor-directory/internal/adapters/urlstate"
	"github.com/medloop/doctor-directory/internal/domain/entities"
	"github.com/medloop/doctor-directory/internal/domain/providers"
	"github.com/medloop/doctor-directory/internal/infrastructure/clients/doctorapi"
	apperrors "github.com/medloop/doctor-directory/pkg/errors"
)

// State is the lifecycle state of a directory session.
type State string

const (
	StateLoading State = "loading"
	StateError   State = "error"
	StateReady   State = "ready"
)

// ChangeEvent signals that filters were mutated and results re-derived.
type ChangeEvent struct {
	Filters entities.Filters
	Total   int
}

// DirectoryService orchestrates a directory session: the single startup
// fetch, the filter lifecycle, result derivation and two-way sync with the
// navigator. The record set is immutable once loaded; filters and results
// are the only mutable state, guarded by the mutex.
type DirectoryService struct {
	source     doctorapi.Client
	nav        providers.Navigator
	normalizer *NormalizerService
	engine     *FilterService
	suggester  *SuggestionService

	mu      sync.RWMutex
	state   State
	errMsg  string
	records []entities.Doctor
	current entities.Filters
	results []entities.Doctor

	subscribers []chan ChangeEvent
}

// NewDirectoryService creates a directory session in the Loading state.
// The navigator may be nil for consumers that manage address state
// themselves (e.g. the HTTP surface).
func NewDirectoryService(source doctorapi.Client, nav providers.Navigator) *DirectoryService {
	return &DirectoryService{
		source:     source,
		nav:        nav,
		normalizer: NewNormalizerService(),
		engine:     NewFilterService(),
		suggester:  NewSuggestionService(),
		state:      StateLoading,
		current:    entities.DefaultFilters(),
	}
}

// Load performs the single startup fetch and moves the session out of
// Loading. A transport failure is not surfaced: the built-in fallback
// record keeps the directory usable offline. A successful fetch that
// normalizes to zero records is a real error state until Load is called
// again. Initial filters are the decoded current address merged over
// defaults.
func (s *DirectoryService) Load(ctx context.Context) error {
	s.mu.Lock()
	s.state = StateLoading
	s.mu.Unlock()

	var doctors []entities.Doctor
	raw, err := s.source.FetchRecords(ctx)
	if err != nil {
		fetchErr := apperrors.NewExternalError("failed to fetch practitioner records", err)
		log.Warn().Err(fetchErr).Msg("record fetch failed, serving fallback record")
		doctors = entities.FallbackDoctors()
	} else {
		doctors = s.normalizer.Normalize(raw)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if len(doctors) == 0 {
		s.state = StateError
		s.errMsg = "No doctors available. Please try again later."
		s.records = nil
		s.results = nil
		return apperrors.NewValidationError("record feed returned no records")
	}

	s.records = doctors
	s.state = StateReady
	s.errMsg = ""

	s.current = entities.DefaultFilters()
	if s.nav != nil {
		if q, err := s.nav.Current(); err == nil {
			s.current = urlstate.Decode(q).MergeInto(s.current)
		}
	}
	s.deriveLocked()
	return nil
}

// Run consumes navigation events until ctx is done. Each event overlays the
// decoded address on the current filters without pushing back, so a back or
// forward move never grows the history.
func (s *DirectoryService) Run(ctx context.Context) {
	if s.nav == nil {
		return
	}
	events := s.nav.Events()
	for {
		select {
		case <-ctx.Done():
			return
		case ev, ok := <-events:
			if !ok {
				return
			}
			s.handleNavigation(ev)
		}
	}
}

// SetSearchTerm updates the free-text search term.
func (s *DirectoryService) SetSearchTerm(term string) {
	s.updateFilters(func(f *entities.Filters) { f.SearchTerm = term })
}

// SetConsultationType updates the consultation-mode facet. An empty value
// removes the constraint.
func (s *DirectoryService) SetConsultationType(mode string) {
	s.updateFilters(func(f *entities.Filters) { f.ConsultationType = mode })
}

// SetSortBy updates the sort order. An empty value restores source order.
func (s *DirectoryService) SetSortBy(sortBy string) {
	s.updateFilters(func(f *entities.Filters) { f.SortBy = sortBy })
}

// ToggleSpecialty adds the specialty to the facet selection, or removes it
// when already selected.
func (s *DirectoryService) ToggleSpecialty(specialty string) {
	s.updateFilters(func(f *entities.Filters) {
		for i, sp := range f.Specialties {
			if sp == specialty {
				f.Specialties = append(f.Specialties[:i], f.Specialties[i+1:]...)
				return
			}
		}
		f.Specialties = append(f.Specialties, specialty)
	})
}

// ClearFilters resets all filters to their defaults.
func (s *DirectoryService) ClearFilters() {
	s.updateFilters(func(f *entities.Filters) { *f = entities.DefaultFilters() })
}

// SelectSuggestion applies a suggestion selection to the filter state.
func (s *DirectoryService) SelectSuggestion(sel entities.Suggestion) {
	s.updateFilters(func(f *entities.Filters) { *f = s.suggester.ApplyToFilters(*f, sel) })
}

// SetFilters replaces the whole filter state.
func (s *DirectoryService) SetFilters(f entities.Filters) {
	s.updateFilters(func(cur *entities.Filters) { *cur = f })
}

// Suggest returns autocomplete suggestions for a partial query against the
// loaded record set.
func (s *DirectoryService) Suggest(query string) []entities.Suggestion {
	s.mu.RLock()
	records := s.records
	s.mu.RUnlock()
	return s.suggester.Suggest(records, query)
}

// Derive applies arbitrary filters to the loaded record set without
// touching session state. This is the stateless read used by the HTTP
// surface, where the request query string carries the filter state.
func (s *DirectoryService) Derive(f entities.Filters) []entities.Doctor {
	s.mu.RLock()
	records := s.records
	s.mu.RUnlock()
	return s.engine.Apply(records, f)
}

// State returns the session lifecycle state.
func (s *DirectoryService) State() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// ErrorMessage returns the user-facing message for the Error state.
func (s *DirectoryService) ErrorMessage() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.errMsg
}

// Filters returns a copy of the current filter state.
func (s *DirectoryService) Filters() entities.Filters {
	s.mu.RLock()
	defer s.mu.RUnlock()
	f := s.current
	f.Specialties = make([]string, len(s.current.Specialties))
	copy(f.Specialties, s.current.Specialties)
	return f
}

// Records returns the normalized record set.
func (s *DirectoryService) Records() []entities.Doctor {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]entities.Doctor(nil), s.records...)
}

// Results returns the currently derived result set.
func (s *DirectoryService) Results() []entities.Doctor {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]entities.Doctor(nil), s.results...)
}

// Subscribe registers a change listener. Channels are buffered; an event is
// dropped rather than blocking the mutating caller.
func (s *DirectoryService) Subscribe() <-chan ChangeEvent {
	ch := make(chan ChangeEvent, 16)
	s.mu.Lock()
	s.subscribers = append(s.subscribers, ch)
	s.mu.Unlock()
	return ch
}

// updateFilters applies a mutation while Ready, re-derives the result set,
// pushes the encoded state to the navigator and notifies subscribers.
func (s *DirectoryService) updateFilters(mutate func(*entities.Filters)) {
	s.mu.Lock()
	if s.state != StateReady {
		s.mu.Unlock()
		return
	}
	mutate(&s.current)
	if s.current.Specialties == nil {
		s.current.Specialties = []string{}
	}
	s.deriveLocked()
	filters := s.current
	total := len(s.results)
	s.mu.Unlock()

	if s.nav != nil {
		if err := s.nav.Push(urlstate.Encode(filters)); err != nil {
			// fail soft: the session state stays authoritative
			log.Warn().Err(err).Msg("failed to push address state")
		}
	}
	s.notify(ChangeEvent{Filters: filters, Total: total})
}

func (s *DirectoryService) handleNavigation(ev entities.NavigationEvent) {
	s.mu.Lock()
	if s.state != StateReady {
		s.mu.Unlock()
		return
	}
	s.current = urlstate.Decode(ev.Query).MergeInto(s.current)
	s.deriveLocked()
	filters := s.current
	total := len(s.results)
	s.mu.Unlock()

	s.notify(ChangeEvent{Filters: filters, Total: total})
}

func (s *DirectoryService) deriveLocked() {
	s.results = s.engine.Apply(s.records, s.current)
}

func (s *DirectoryService) notify(ev ChangeEvent) {
	s.mu.RLock()
	subs := append([]chan ChangeEvent(nil), s.subscribers...)
	s.mu.RUnlock()
	for _, ch := range subs {
		select {
		case ch <- ev:
		default:
		}
	}
}
