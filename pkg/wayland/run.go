// Package wayland wraps the external desktop tools the picker drives:
// slurp (region selection), grim (screenshot), a GraphicsMagick/ImageMagick
// pixel converter, zenity (color dialog), wl-copy and notify-send.
package wayland

// Status tags the result of an external tool invocation.
type Status int

const (
	StatusOK Status = iota
	// StatusCancelled means the user dismissed the tool. Never an error;
	// callers are expected to exit 0 without output.
	StatusCancelled
	StatusFailed
)

// Outcome is the result envelope for an interactive tool invocation.
type Outcome struct {
	Status Status
	Output string
	Err    error
}
