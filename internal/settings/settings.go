// Package settings resolves per-document configuration pulled from the
// client, falling back to a single global value when the client cannot serve
// scoped configuration requests.
package settings

import (
	"github.com/tidwall/gjson"
)

// Section is the configuration section this server owns on the client side.
const Section = "languageServerExample"

// Settings is the configuration shape for one document.
type Settings struct {
	MaxNumberOfProblems int
}

// Default returns the settings in effect before the client supplies any.
func Default() Settings {
	return Settings{MaxNumberOfProblems: 1000}
}

// FromSection decodes a pulled configuration payload, i.e. the section
// object itself as returned by a scoped workspace/configuration request.
func FromSection(raw []byte) Settings {
	return fromValue(gjson.GetBytes(raw, "maxNumberOfProblems"))
}

// FromPush decodes a pushed didChangeConfiguration payload, which nests the
// section object under its section name.
func FromPush(raw []byte) Settings {
	return fromValue(gjson.GetBytes(raw, Section+".maxNumberOfProblems"))
}

func fromValue(v gjson.Result) Settings {
	s := Default()
	if v.Exists() {
		s.MaxNumberOfProblems = int(v.Int())
	}
	return s
}
