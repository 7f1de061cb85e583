package cli

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"os/user"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/jmpaz/wl-color-picker/internal/db"
	"github.com/jmpaz/wl-color-picker/internal/naming"
	"github.com/jmpaz/wl-color-picker/pkg/models"
	"github.com/jmpaz/wl-color-picker/pkg/wayland"
)

var (
	destCSV    string
	copyBoth   bool
	usePicker  bool
	sendNotify bool
	noNotify   bool
	delayArg   string
	noSave     bool
)

func init() {
	rootCmd.Flags().StringVar(&destCSV, "dest", "stdout", "Comma-separated output destinations (stdout, clipboard)")
	rootCmd.Flags().BoolVarP(&copyBoth, "copy", "c", false, "Print and copy (same as --dest stdout,clipboard)")
	rootCmd.Flags().BoolVar(&usePicker, "picker", false, "Open a color dialog to adjust the sampled color")
	rootCmd.Flags().BoolVar(&sendNotify, "notify", false, "Send a desktop notification with the result")
	rootCmd.Flags().BoolVar(&noNotify, "no-notify", false, "Disable the desktop notification")
	rootCmd.Flags().StringVar(&delayArg, "delay", "1", "Seconds to wait before capture so the selection overlay can vanish")
	rootCmd.Flags().BoolVar(&noSave, "no-save", false, "Do not record the pick in history")
}

// config is built once from the flags and threaded through the pick.
type config struct {
	dests  []string
	picker bool
	notify bool
	delay  time.Duration
	save   bool
}

// Digits with at most one decimal point, e.g. "1", "0.25", ".5".
var delayPattern = regexp.MustCompile(`^[0-9]*\.?[0-9]+$`)

func parseDelay(s string) (time.Duration, error) {
	if !delayPattern.MatchString(s) {
		return 0, fmt.Errorf("invalid --delay value %q: expected seconds, e.g. 0.5", s)
	}
	secs, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid --delay value %q: %w", s, err)
	}
	return time.Duration(secs * float64(time.Second)), nil
}

// resolveDests applies the flag precedence: -c expands to both destinations,
// and the legacy bare "clipboard" argument forces clipboard-only.
func resolveDests(destFlag string, copyBoth bool, args []string) []string {
	dest := destFlag
	if copyBoth {
		dest = "stdout,clipboard"
	}
	for _, a := range args {
		if a == "clipboard" {
			dest = "clipboard"
		}
	}
	return strings.Split(dest, ",")
}

func buildConfig(args []string) (config, error) {
	cfg := config{
		dests:  resolveDests(destCSV, copyBoth, args),
		picker: usePicker,
		notify: sendNotify && !noNotify,
		save:   !noSave,
	}
	delay, err := parseDelay(delayArg)
	if err != nil {
		return cfg, err
	}
	cfg.delay = delay
	return cfg, nil
}

func runPick(cmd *cobra.Command, args []string) {
	cfg, err := buildConfig(args)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if os.Getenv("WAYLAND_DISPLAY") == "" {
		fatalEnv(cfg, "no Wayland session (WAYLAND_DISPLAY is not set)")
	}
	for _, tool := range []string{"slurp", "grim"} {
		if _, err := exec.LookPath(tool); err != nil {
			fatalEnv(cfg, fmt.Sprintf("required tool %q not found in PATH", tool))
		}
	}
	conv, err := wayland.DetectConverter()
	if err != nil {
		fatalEnv(cfg, err.Error())
	}

	sel := wayland.SelectPoint()
	switch sel.Status {
	case wayland.StatusCancelled:
		return // not an error
	case wayland.StatusFailed:
		fmt.Fprintf(os.Stderr, "Error selecting region: %v\n", sel.Err)
		os.Exit(1)
	}

	hex, err := wayland.CapturePixel(sel.Output, cfg.delay, conv)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error capturing pixel: %v\n", err)
		os.Exit(1)
	}

	adjusted := false
	if cfg.picker {
		adj := wayland.AdjustColor(hex)
		if adj.Status == wayland.StatusCancelled {
			return
		}
		// Empty output on a clean exit means "no change", keep the sample.
		if adj.Output != "" {
			hex = adj.Output
			adjusted = true
		}
	}

	pick := models.Pick{
		Hex:      hex,
		Adjusted: adjusted,
		PickedAt: time.Now(),
	}
	if os.Getenv("WL_COLOR_PICKER_NAMES") != "" {
		pick.Name = naming.Lookup(hex)
	}

	final := pick.Display()
	if err := dispatch(os.Stdout, wayland.CopyToClipboard, cfg.dests, final); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if cfg.notify {
		_ = wayland.Notify(final, notifyBody(cfg.dests))
	}

	if cfg.save {
		savePick(&pick)
	}
}

// dispatch writes the final color to each destination in the order given.
// An unrecognized destination is fatal even if earlier entries already wrote.
func dispatch(w io.Writer, copyFn func(string) error, dests []string, text string) error {
	for _, d := range dests {
		switch d {
		case "stdout":
			fmt.Fprintln(w, text)
		case "clipboard":
			if err := copyFn(text); err != nil {
				return err
			}
		default:
			return fmt.Errorf("unknown destination %q", d)
		}
	}
	return nil
}

func notifyBody(dests []string) string {
	for _, d := range dests {
		if d == "clipboard" {
			return "Copied to clipboard"
		}
	}
	return "Color picked"
}

// fatalEnv reports an environment precondition failure. When notifications
// are on, the failure is also surfaced on the desktop.
func fatalEnv(cfg config, msg string) {
	fmt.Fprintf(os.Stderr, "Error: %s\n", msg)
	if cfg.notify {
		_ = wayland.Notify("wl-color-picker", msg)
	}
	os.Exit(1)
}

func storePath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home dir: %w", err)
	}
	return filepath.Join(homeDir, ".local/share/wl-color-picker/picks.db"), nil
}

// savePick records the pick in history. Failures warn but never change the
// pick's output or exit code.
func savePick(p *models.Pick) {
	p.Hostname, _ = os.Hostname()
	if u, err := user.Current(); err == nil {
		p.User = u.Username
	}

	path, err := storePath()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: not saving pick: %v\n", err)
		return
	}
	store, err := db.New(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: not saving pick: %v\n", err)
		return
	}
	defer store.Close()

	if err := store.Save(p); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to save pick: %v\n", err)
	}
}
