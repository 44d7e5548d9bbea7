// Package i18n provides the display labels used in tool results.
//
// Labels are looked up by dotted key ("unit.degree", "filter.sobel") in a
// golang.org/x/text catalog. English is the fallback language; keys with no
// entry translate to themselves.
package i18n

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
)

// Label keys.
const (
	UnitDegree      = "unit.degree"
	UnitMillimetre  = "unit.mm"
	UnitPixel       = "unit.pixel"
	FilterThreshold = "filter.threshold"
	FilterSharpen   = "filter.sharpen"
	FilterSobel     = "filter.sobel"
)

var supported = []language.Tag{language.English, language.French, language.German}

var messages = map[language.Tag]map[string]string{
	language.English: {
		UnitDegree:      "°",
		UnitMillimetre:  "mm",
		UnitPixel:       "px",
		FilterThreshold: "Threshold",
		FilterSharpen:   "Sharpen",
		FilterSobel:     "Sobel",
	},
	language.French: {
		UnitDegree:      "°",
		UnitMillimetre:  "mm",
		UnitPixel:       "px",
		FilterThreshold: "Seuillage",
		FilterSharpen:   "Netteté",
		FilterSobel:     "Sobel",
	},
	language.German: {
		UnitDegree:      "°",
		UnitMillimetre:  "mm",
		UnitPixel:       "px",
		FilterThreshold: "Schwellenwert",
		FilterSharpen:   "Schärfen",
		FilterSobel:     "Sobel",
	},
}

var (
	builder = newBuilder()
	matcher = language.NewMatcher(supported)
)

func newBuilder() *catalog.Builder {
	b := catalog.NewBuilder(catalog.Fallback(language.English))
	for tag, entries := range messages {
		for key, msg := range entries {
			// SetString only fails for malformed messages; these are plain strings.
			_ = b.SetString(tag, key, msg)
		}
	}
	return b
}

// Catalog translates label keys for one language.
type Catalog struct {
	tag     language.Tag
	printer *message.Printer
}

// New returns a catalog for the closest supported match of lang, a BCP 47
// tag such as "fr" or "de-CH". Unknown or empty tags select English.
func New(lang string) *Catalog {
	tag := language.English
	if lang != "" {
		if requested, err := language.Parse(lang); err == nil {
			_, idx, conf := matcher.Match(requested)
			if conf != language.No {
				tag = supported[idx]
			}
		}
	}
	return &Catalog{
		tag:     tag,
		printer: message.NewPrinter(tag, message.Catalog(builder)),
	}
}

// Language returns the language the catalog resolved to.
func (c *Catalog) Language() string { return c.tag.String() }

// Translate returns the label for key, or key itself if there is none.
func (c *Catalog) Translate(key string) string {
	return c.printer.Sprintf(key)
}

// FilterKey returns the label key for a filter name such as "Sobel".
func FilterKey(name string) string {
	switch name {
	case "Threshold":
		return FilterThreshold
	case "Sharpen":
		return FilterSharpen
	case "Sobel":
		return FilterSobel
	default:
		return "filter." + name
	}
}
