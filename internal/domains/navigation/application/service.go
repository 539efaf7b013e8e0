package application

import (
	"context"
	"sync"

	"github.com/Apurer/go-storefront/internal/domains/navigation/domain"
)

// EnterHook runs after the navigator switches to a section.
type EnterHook func(ctx context.Context)

// State is a read-only view of the navigator for renderers.
type State struct {
	Current domain.Section
	Active  domain.Section
	Entries []domain.Entry
}

// Service wraps the navigator with per-section enter hooks.
type Service struct {
	mu        sync.RWMutex
	navigator *domain.Navigator
	hooks     map[domain.Section][]EnterHook
}

func NewService(navigator *domain.Navigator) *Service {
	if navigator == nil {
		navigator = domain.NewNavigator(domain.DefaultEntries())
	}
	return &Service{navigator: navigator, hooks: map[domain.Section][]EnterHook{}}
}

// OnEnter registers a hook fired every time section becomes visible.
func (s *Service) OnEnter(section domain.Section, hook EnterHook) {
	if hook == nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.hooks[section] = append(s.hooks[section], hook)
}

// Go switches the visible section and fires its enter hooks.
func (s *Service) Go(ctx context.Context, section domain.Section) error {
	s.mu.Lock()
	if err := s.navigator.Go(section); err != nil {
		s.mu.Unlock()
		return err
	}
	hooks := append([]EnterHook(nil), s.hooks[section]...)
	s.mu.Unlock()

	for _, hook := range hooks {
		hook(ctx)
	}
	return nil
}

// State snapshots the current section and active entry.
func (s *Service) State() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	state := State{
		Current: s.navigator.Current(),
		Entries: s.navigator.Entries(),
	}
	if active, ok := s.navigator.Active(); ok {
		state.Active = active.Section
	}
	return state
}
