package models

import (
	"fmt"
	"time"
)

// Pick represents one sampled color and how it was produced.
type Pick struct {
	ID       int64     `json:"id"` // Database ID
	Hex      string    `json:"hex"`
	Name     string    `json:"name,omitempty"`
	Adjusted bool      `json:"adjusted"`
	PickedAt time.Time `json:"picked_at"`
	Hostname string    `json:"hostname"`
	User     string    `json:"user"`
}

// Display returns the string emitted to the output destinations: the hex
// value, annotated with the looked-up name when one is known.
func (p Pick) Display() string {
	if p.Name != "" {
		return fmt.Sprintf("%s (%s)", p.Hex, p.Name)
	}
	return p.Hex
}
