package wayland

import (
	"fmt"
	"os/exec"
	"strings"
)

// CopyToClipboard pipes text into wl-copy without a trailing newline.
func CopyToClipboard(text string) error {
	cmd := exec.Command("wl-copy", "--trim-newline")
	cmd.Stdin = strings.NewReader(text)
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("wl-copy failed: %w", err)
	}
	return nil
}
