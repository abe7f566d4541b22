// Package geo resolves ZIP codes to map coordinates using a static
// reference table. A geocoding API would be the production-grade answer;
// the covered regions are small enough that a table keeps lookups local
// and deterministic.
package geo

import (
	"github.com/paulmach/orb"

	"heatmap/config"
	"heatmap/internal/domain/service"
)

// zipCoordinates maps 5-digit ZIP codes to orb.Point values (longitude, latitude).
var zipCoordinates = map[string]orb.Point{
	// Atlantic Iowa region
	"50022": {-94.7633, 41.5914}, // Anita, IA
	"50025": {-95.0139, 41.4036}, // Atlantic, IA
	"51520": {-95.8608, 41.2619}, // Council Bluffs, IA
	"51601": {-95.3769, 40.7658}, // Shenandoah, IA
	"50002": {-93.6160, 41.0261}, // Adair, IA
	"50020": {-94.3427, 41.6011}, // Adel, IA
	"50042": {-94.6841, 41.4583}, // Bagley, IA
	"50048": {-94.9894, 41.3269}, // Brayton, IA

	// Northwest Iowa
	"51010": {-96.4003, 42.4974}, // Akron, IA
	"51040": {-96.2606, 42.7586}, // Hawarden, IA
	"51060": {-95.8761, 42.4969}, // Orange City, IA

	// St. Joseph Missouri region
	"64501": {-94.8467, 39.7684}, // Saint Joseph, MO
	"64503": {-94.8163, 39.7447}, // Saint Joseph, MO (North)
	"64504": {-94.7961, 39.7905}, // Saint Joseph, MO (East)
	"64505": {-94.8769, 39.7275}, // Saint Joseph, MO (South)

	// Leavenworth Kansas region
	"66027": {-94.9225, 39.3111}, // Leavenworth, KS
	"66048": {-94.9858, 39.3697}, // Leavenworth, KS (North)
	"66002": {-95.1218, 39.5631}, // Atchison, KS
	"66012": {-94.8669, 39.0214}, // Bonner Springs, KS

	// Kansas City metro
	"64101": {-94.5786, 39.0997}, // Kansas City, MO (Downtown)
	"64102": {-94.5822, 39.1008}, // Kansas City, MO (Crown Center)
	"64105": {-94.5828, 39.0931}, // Kansas City, MO (Crossroads)
	"64106": {-94.5744, 39.1139}, // Kansas City, MO (River Market)
	"64108": {-94.5847, 39.0486}, // Kansas City, MO (Midtown)
	"64109": {-94.5853, 39.0361}, // Kansas City, MO (Plaza)
	"64110": {-94.5689, 39.0158}, // Kansas City, MO (South)
	"64111": {-94.5953, 39.0508}, // Kansas City, MO (Westport)
	"64112": {-94.5919, 39.0399}, // Kansas City, MO (Country Club Plaza)
	"64113": {-94.5936, 39.0031}, // Kansas City, MO (Waldo)
	"64114": {-94.5761, 38.9647}, // Kansas City, MO (South KC)
	"64030": {-94.5333, 38.8861}, // Grandview, MO

	// Kansas side of the metro
	"66207": {-94.6708, 38.9822}, // Overland Park, KS
	"66204": {-94.6689, 39.0267}, // Overland Park, KS (North)
	"66062": {-94.7269, 39.1136}, // Shawnee, KS
	"66103": {-94.6744, 39.1142}, // Kansas City, KS
}

// regionCenters gives the map center point for each covered region.
var regionCenters = map[string]orb.Point{
	"atlantic_iowa":  {-95.0139, 41.4036}, // Atlantic, IA
	"st_joseph_mo":   {-94.8467, 39.7684}, // St. Joseph, MO
	"leavenworth_ks": {-94.9225, 39.3111}, // Leavenworth, KS
	"kansas_city":    {-94.5786, 39.0997}, // Kansas City Metro
}

const defaultRegion = "kansas_city"

// zipLocator implements service.ZipLocator over the static table.
type zipLocator struct {
	defaultPoint orb.Point
}

// NewZipLocator builds a locator whose fallback point comes from configuration.
func NewZipLocator(cfg *config.Config) service.ZipLocator {
	defaultPoint := regionCenters[defaultRegion]
	if cfg != nil && cfg.Geo != nil {
		defaultPoint = orb.Point{cfg.Geo.DefaultLongitude, cfg.Geo.DefaultLatitude}
	}

	return &zipLocator{defaultPoint: defaultPoint}
}

// Lookup returns the reference coordinate for a ZIP code, or ok=false when
// the table has no entry for it.
func (l *zipLocator) Lookup(zipCode string) (orb.Point, bool) {
	point, ok := zipCoordinates[zipCode]

	return point, ok
}

// LookupWithDefault returns the reference coordinate for a ZIP code, falling
// back to the configured default point when unknown.
func (l *zipLocator) LookupWithDefault(zipCode string) orb.Point {
	if point, ok := zipCoordinates[zipCode]; ok {
		return point
	}

	return l.defaultPoint
}

// RegionCenter returns the map center for a named region, defaulting to the
// Kansas City metro for unknown names.
func RegionCenter(name string) orb.Point {
	if point, ok := regionCenters[name]; ok {
		return point
	}

	return regionCenters[defaultRegion]
}
