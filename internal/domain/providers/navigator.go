package providers

import (
	"github.com/medloop/doctor-directory/internal/domain/entities"
)

// Navigator is the port for the navigable address the directory state is
// synchronized with. The controller writes through Push after every filter
// mutation and subscribes to Events for moves it did not initiate.
type Navigator interface {
	// Current returns the query string at the current history position.
	Current() (string, error)

	// Push records a new query string as the current address.
	Push(query string) error

	// Events delivers navigation events (back/forward moves).
	Events() <-chan entities.NavigationEvent
}
