package wayland

import (
	"fmt"
	"os/exec"
	"time"
)

// CapturePixel grabs the selected 1x1 region with grim and pipes the PNG
// straight into the converter, returning the extracted hex color.
//
// The sleep lets the slurp overlay disappear before the frame is grabbed.
// The compositor redraws asynchronously, so this is a best-effort settle
// delay rather than a real synchronization barrier.
func CapturePixel(geometry string, delay time.Duration, conv *Converter) (string, error) {
	time.Sleep(delay)

	grim := exec.Command("grim", "-g", geometry, "-t", "png", "-")
	convert := exec.Command(conv.Path, conv.Args...)

	pipe, err := grim.StdoutPipe()
	if err != nil {
		return "", fmt.Errorf("failed to create capture pipe: %w", err)
	}
	convert.Stdin = pipe

	if err := grim.Start(); err != nil {
		return "", fmt.Errorf("failed to start grim: %w", err)
	}
	out, convErr := convert.Output()
	if err := grim.Wait(); err != nil {
		return "", fmt.Errorf("grim failed: %w", err)
	}
	if convErr != nil {
		return "", fmt.Errorf("%s failed: %w", conv.Name, convErr)
	}

	return conv.ExtractPixel(string(out)), nil
}
