package wayland

import (
	"os/exec"
	"regexp"
	"strconv"
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"
)

var digitRuns = regexp.MustCompile(`[0-9]+`)

// AdjustColor opens the zenity color dialog seeded with the sampled color.
// A non-zero exit is user cancellation. A zero exit with empty output keeps
// the sampled color (the outcome carries an empty Output); otherwise Output
// holds the adjusted color as lowercase #rrggbb.
func AdjustColor(hex string) Outcome {
	out, err := exec.Command(
		"zenity",
		"--color-selection",
		"--title=Adjust color",
		"--color="+hex,
	).Output()
	if err != nil {
		return Outcome{Status: StatusCancelled}
	}

	text := strings.TrimSpace(string(out))
	if text == "" {
		return Outcome{Status: StatusOK}
	}
	adjusted, ok := rgbTextToHex(text)
	if !ok {
		return Outcome{Status: StatusOK}
	}
	return Outcome{Status: StatusOK, Output: adjusted}
}

// rgbTextToHex parses zenity's "rgb(18,52,86)" style output: the first three
// decimal digit runs, in order, are the R, G and B channels.
func rgbTextToHex(text string) (string, bool) {
	runs := digitRuns.FindAllString(text, 3)
	if len(runs) < 3 {
		return "", false
	}

	var ch [3]float64
	for i, run := range runs {
		n, err := strconv.Atoi(run)
		if err != nil || n > 255 {
			n = 255
		}
		ch[i] = float64(n) / 255.0
	}
	c := colorful.Color{R: ch[0], G: ch[1], B: ch[2]}
	return c.Hex(), true
}
