package wayland

import (
	"errors"
	"fmt"
	"os/exec"
	"strings"
)

// SelectPoint runs slurp in point mode with a fully transparent overlay and
// returns the chosen geometry (e.g. "1204,312 1x1"). A non-zero exit or
// empty output both mean the user cancelled the selection; failing to run
// slurp at all is a real failure.
func SelectPoint() Outcome {
	out, err := exec.Command("slurp", "-p", "-b", "00000000").Output()
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return Outcome{Status: StatusCancelled}
		}
		return Outcome{Status: StatusFailed, Err: fmt.Errorf("failed to run slurp: %w", err)}
	}

	geometry := strings.TrimSpace(string(out))
	if geometry == "" {
		return Outcome{Status: StatusCancelled}
	}
	return Outcome{Status: StatusOK, Output: geometry}
}
