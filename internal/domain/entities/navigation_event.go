package entities

import "time"

// NavigationEvent signals that the navigable address changed outside the
// controller, e.g. a back or forward move through the history.
type NavigationEvent struct {
	ID    string    `json:"id"`
	Query string    `json:"query"`
	At    time.Time `json:"at"`
}
