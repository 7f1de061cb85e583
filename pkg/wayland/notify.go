package wayland

import "os/exec"

// Notify sends a desktop notification. Callers treat failure as best-effort.
func Notify(title, body string) error {
	return exec.Command("notify-send", "-a", "wl-color-picker", title, body).Run()
}
