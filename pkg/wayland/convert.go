package wayland

import (
	"fmt"
	"os"
	"os/exec"
	"strings"
)

// gmPath is where a GraphicsMagick install lands on the target distros.
// GraphicsMagick is preferred because it is noticeably faster to start.
var gmPath = "/usr/bin/gm"

// Converter describes one installed pixel-format converter: how to invoke it
// on a PNG stream and which column of its txt output carries the pixel value.
// The three variants print the same "X11-style" per-pixel descriptor but with
// different column layouts, so the extraction rule travels with the binary.
type Converter struct {
	Name string
	Path string
	Args []string

	// Field is the 1-based whitespace-separated field holding the pixel
	// color on the last output line. 0 means the trailing field.
	Field int
}

// DetectConverter picks the first available converter, in preference order:
// GraphicsMagick at its fixed path, the unified ImageMagick v7 binary, then
// the legacy ImageMagick convert binary.
func DetectConverter() (*Converter, error) {
	if fi, err := os.Stat(gmPath); err == nil && !fi.IsDir() {
		return &Converter{
			Name:  "gm",
			Path:  gmPath,
			Args:  []string{"convert", "-", "-format", "%[pixel:p{0,0}]", "txt:-"},
			Field: 0,
		}, nil
	}
	// ImageMagick pads its txt output with double spaces
	// ("0,0: (18,52,86)  #123456  srgb(...)"), so with runs of whitespace
	// merged the hex value is the third field.
	if path, err := exec.LookPath("magick"); err == nil {
		return &Converter{
			Name:  "magick",
			Path:  path,
			Args:  []string{"-", "-format", "%[pixel:p{0,0}]", "txt:-"},
			Field: 3,
		}, nil
	}
	if path, err := exec.LookPath("convert"); err == nil {
		return &Converter{
			Name:  "convert",
			Path:  path,
			Args:  []string{"-", "-format", "%[pixel:p{0,0}]", "txt:-"},
			Field: 3,
		}, nil
	}
	return nil, fmt.Errorf("no pixel converter found: install GraphicsMagick or ImageMagick")
}

// ExtractPixel pulls the pixel color field out of the converter's txt output.
// Only the last line matters; earlier lines are header noise. Malformed
// output yields an empty string, never an error.
func (c *Converter) ExtractPixel(out string) string {
	trimmed := strings.TrimRight(out, "\n\r \t")
	if trimmed == "" {
		return ""
	}
	lines := strings.Split(trimmed, "\n")
	fields := strings.Fields(lines[len(lines)-1])
	if len(fields) == 0 {
		return ""
	}
	if c.Field == 0 {
		return fields[len(fields)-1]
	}
	if len(fields) < c.Field {
		return ""
	}
	return fields[c.Field-1]
}
