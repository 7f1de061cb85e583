package cli

import (
	"bytes"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDelay(t *testing.T) {
	tests := []struct {
		in   string
		want time.Duration
	}{
		{"1", time.Second},
		{"0", 0},
		{"0.25", 250 * time.Millisecond},
		{".5", 500 * time.Millisecond},
		{"2.0", 2 * time.Second},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := parseDelay(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseDelay_Invalid(t *testing.T) {
	for _, in := range []string{"abc", "", "1.2.3", "1s", "-1", "."} {
		t.Run(in, func(t *testing.T) {
			_, err := parseDelay(in)
			require.Error(t, err)
		})
	}
}

func TestResolveDests(t *testing.T) {
	tests := []struct {
		name     string
		destFlag string
		copyBoth bool
		args     []string
		want     []string
	}{
		{"default", "stdout", false, nil, []string{"stdout"}},
		{"explicit list keeps order", "clipboard,stdout", false, nil, []string{"clipboard", "stdout"}},
		{"copy shorthand", "stdout", true, nil, []string{"stdout", "clipboard"}},
		{"legacy clipboard token", "stdout", false, []string{"clipboard"}, []string{"clipboard"}},
		{"legacy token beats copy", "stdout", true, []string{"clipboard"}, []string{"clipboard"}},
		{"other args ignored", "stdout", false, []string{"whatever"}, []string{"stdout"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, resolveDests(tt.destFlag, tt.copyBoth, tt.args))
		})
	}
}

func TestDispatch_WritesInOrder(t *testing.T) {
	var out bytes.Buffer
	var order []string

	copyFn := func(text string) error {
		order = append(order, "clipboard:"+text)
		return nil
	}

	err := dispatch(&out, copyFn, []string{"clipboard", "stdout"}, "#123456")
	require.NoError(t, err)
	assert.Equal(t, []string{"clipboard:#123456"}, order)
	assert.Equal(t, "#123456\n", out.String())
}

func TestDispatch_UnknownDestination(t *testing.T) {
	var out bytes.Buffer

	err := dispatch(&out, func(string) error { return nil }, []string{"stdout", "bogus"}, "#abcdef")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"bogus"`)
	// The stdout entry before the bad token already wrote.
	assert.Equal(t, "#abcdef\n", out.String())
}

func TestDispatch_ClipboardFailure(t *testing.T) {
	var out bytes.Buffer
	boom := errors.New("wl-copy failed")

	err := dispatch(&out, func(string) error { return boom }, []string{"clipboard", "stdout"}, "#abcdef")
	require.ErrorIs(t, err, boom)
	// Later destinations are not reached after a failure.
	assert.Empty(t, out.String())
}

func TestNotifyBody(t *testing.T) {
	assert.Equal(t, "Copied to clipboard", notifyBody([]string{"stdout", "clipboard"}))
	assert.Equal(t, "Copied to clipboard", notifyBody([]string{"clipboard"}))
	assert.Equal(t, "Color picked", notifyBody([]string{"stdout"}))
}
