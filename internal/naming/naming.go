// Package naming resolves a hex color to a human-readable name via the
// color.pizza API. Lookups are strictly best-effort: any failure leaves the
// color unannotated and never aborts a pick.
package naming

import (
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const endpoint = "https://api.color.pizza/v1/"

var client = &http.Client{Timeout: 3 * time.Second}

type response struct {
	Colors []struct {
		Name string `json:"name"`
	} `json:"colors"`
}

// Lookup returns the name for a #rrggbb color, or "" when the service is
// unreachable, responds badly, or has no usable name.
func Lookup(hex string) string {
	return lookup(client, endpoint, hex)
}

func lookup(c *http.Client, base, hex string) string {
	hex = strings.TrimPrefix(hex, "#")
	if hex == "" {
		return ""
	}

	resp, err := c.Get(base + url.PathEscape(hex))
	if err != nil {
		return ""
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return ""
	}

	var r response
	if err := json.NewDecoder(io.LimitReader(resp.Body, 1<<20)).Decode(&r); err != nil {
		return ""
	}
	if len(r.Colors) == 0 {
		return ""
	}

	name := strings.TrimSpace(r.Colors[0].Name)
	if name == "" || name == "null" {
		return ""
	}
	return name
}
