// Package esi provides access to the EU/EA Economic Sentiment Indicator
// data set: importing the source workbook into per-entity tables, caching
// them as CSV files, and deriving monthly cross-country rankings and
// per-component history series.
package esi

// EntityCodes lists the tracked countries and aggregates, in the order
// used by the source workbook. This order is also the tie-break order of
// rankings and the iteration order of history series.
var EntityCodes = []string{
	"eu",
	"ea",
	"at",
	"be",
	"dk",
	"de",
	"el",
	"es",
	"fr",
	"it",
	"nl",
	"pl",
	"pt",
	"fi",
	"se",
	"uk",
}

// EntityNames maps entity codes to display names.
var EntityNames = map[string]string{
	"eu": "Europe",
	"ea": "Euro Area",
	"at": "Austria",
	"be": "Belgium",
	"dk": "Denmark",
	"de": "Germany",
	"el": "Greece",
	"es": "Spain",
	"fr": "France",
	"it": "Italy",
	"nl": "Netherlands",
	"pl": "Poland",
	"pt": "Portugal",
	"fi": "Finland",
	"se": "Sweden",
	"uk": "United Kingdom",
}

// EntityColumns maps entity codes to the workbook columns holding that
// entity's data: the shared date column plus the entity's six-column
// component block.
var EntityColumns = map[string]string{
	"eu": "A,C:H",
	"ea": "A,K:P",
	"at": "A,FO:FT",
	"be": "A,S:X",
	"dk": "A,AQ:AV",
	"de": "A,AY:BD",
	"el": "A,BW:CB",
	"es": "A,CE:CJ",
	"fr": "A,CM:CR",
	"it": "A,DC:DH",
	"nl": "A,FG:FL",
	"pl": "A,FW:GB",
	"pt": "A,GE:GJ",
	"fi": "A,HK:HP",
	"se": "A,HS:HX",
	"uk": "A,IA:IF",
}

// Component suffixes as used in the workbook column headers
// (<entity code, uppercased> + suffix).
const (
	SuffixIndustrial   = ".INDU"
	SuffixServices     = ".SERV"
	SuffixConsumer     = ".CONS"
	SuffixRetail       = ".RETA"
	SuffixConstruction = ".BUIL"
	SuffixComposite    = ".ESI"
)

// ComponentSuffixes lists the six component suffixes in workbook column
// order within each entity's block. This order is a structural contract
// with the source workbook.
var ComponentSuffixes = []string{
	SuffixIndustrial,
	SuffixServices,
	SuffixConsumer,
	SuffixRetail,
	SuffixConstruction,
	SuffixComposite,
}

// Ranking keys, one per component.
const (
	KeyESI          = "esi"
	KeyIndustrial   = "industrial_confidence"
	KeyServices     = "services_confidence"
	KeyConsumer     = "consumer_confidence"
	KeyRetail       = "retail_confidence"
	KeyConstruction = "construction_confidence"
)

// RankingKeys lists the ranking keys in display order (composite first).
var RankingKeys = []string{
	KeyESI,
	KeyIndustrial,
	KeyServices,
	KeyConsumer,
	KeyRetail,
	KeyConstruction,
}

// ComponentTitles maps component suffixes to human-readable titles used
// by chart rendering.
var ComponentTitles = map[string]string{
	SuffixIndustrial:   "Industrial Confidence",
	SuffixServices:     "Services Confidence",
	SuffixConsumer:     "Consumer Confidence",
	SuffixRetail:       "Retail Trade Confidence",
	SuffixConstruction: "Construction Confidence",
	SuffixComposite:    "ESI",
}

// Components is the named schema of one entity's six-column block, in
// workbook column order. All component access goes through this type
// rather than bare positional indexing.
type Components struct {
	// Industrial is the industrial confidence indicator (40% weight).
	Industrial float64
	// Services is the services confidence indicator (30% weight).
	Services float64
	// Consumer is the consumer confidence indicator (20% weight).
	Consumer float64
	// Retail is the retail trade confidence indicator (5% weight).
	Retail float64
	// Construction is the construction confidence indicator (5% weight).
	Construction float64
	// Composite is the economic sentiment indicator itself.
	Composite float64
}

// componentsFromRow maps a table row onto the named schema. The row must
// hold exactly the six component columns.
func componentsFromRow(row []float64) (Components, error) {
	if len(row) != len(ComponentSuffixes) {
		return Components{}, &SchemaError{Want: len(ComponentSuffixes), Got: len(row)}
	}
	return Components{
		Industrial:   row[0],
		Services:     row[1],
		Consumer:     row[2],
		Retail:       row[3],
		Construction: row[4],
		Composite:    row[5],
	}, nil
}

// byKey returns the component value selected by a ranking key. Keys
// outside RankingKeys are a programmer error.
func (c Components) byKey(key string) float64 {
	switch key {
	case KeyESI:
		return c.Composite
	case KeyIndustrial:
		return c.Industrial
	case KeyServices:
		return c.Services
	case KeyConsumer:
		return c.Consumer
	case KeyRetail:
		return c.Retail
	case KeyConstruction:
		return c.Construction
	}
	panic("esi: unknown ranking key " + key)
}

// isComponentSuffix reports whether s is one of the six recognized
// component suffixes.
func isComponentSuffix(s string) bool {
	for _, c := range ComponentSuffixes {
		if c == s {
			return true
		}
	}
	return false
}
