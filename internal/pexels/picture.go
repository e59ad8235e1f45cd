// Package pexels talks to the Pexels photo search API.
package pexels

import "fmt"

// LandscapeVariant is the src entry downloaded as a header candidate.
const LandscapeVariant = "landscape"

// Picture is a photo descriptor as returned by the search endpoint. It is
// also stored as a TOML sidecar next to each downloaded image.
type Picture struct {
	ID              int64             `json:"id" toml:"id,omitempty"`
	Width           int               `json:"width" toml:"width"`
	Height          int               `json:"height" toml:"height"`
	URL             string            `json:"url" toml:"url"`
	Photographer    string            `json:"photographer" toml:"photographer"`
	PhotographerURL string            `json:"photographer_url" toml:"photographer_url"`
	Src             map[string]string `json:"src" toml:"src"`
	Alt             string            `json:"alt,omitempty" toml:"alt,omitempty"`
}

// Landscape returns the landscape variant URL.
func (p Picture) Landscape() (string, bool) {
	u, ok := p.Src[LandscapeVariant]
	return u, ok && u != ""
}

func (p Picture) String() string {
	return fmt.Sprintf("Picture by %s - %s `%s`", p.Photographer, p.URL, p.Alt)
}
