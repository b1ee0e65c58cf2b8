package geoinfo

import (
	"context"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"
	"googlemaps.github.io/maps"

	"github.com/neighborly/neighborly-api/schema"
)

const (
	logPrefix      = "geoinfo"
	defaultTimeout = 5 * time.Second
)

//go:generate mockgen -destination=../mocks/geoinfo.go -package=mocks github.com/neighborly/neighborly-api/external/geoinfo GeoInfo

// GeoInfo - reverse geocoding of help request locations
type GeoInfo interface {
	Get(ctx context.Context, loc schema.Location) ([]maps.GeocodingResult, error)
}

type geoInfo struct {
	client *maps.Client
}

func (g geoInfo) Get(ctx context.Context, loc schema.Location) ([]maps.GeocodingResult, error) {
	log.WithFields(log.Fields{
		"prefix": logPrefix,
		"lat":    loc.Latitude,
		"lng":    loc.Longitude,
	}).Debug("query geo info")

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	return g.client.Geocode(ctx, &maps.GeocodingRequest{LatLng: &maps.LatLng{
		Lat: loc.Latitude,
		Lng: loc.Longitude,
	}})
}

// Locality picks the most specific neighborhood name out of geocoding results.
// It returns an empty string when none of the results carries one.
func Locality(results []maps.GeocodingResult) string {
	levels := []string{"neighborhood", "sublocality", "locality", "administrative_area_level_2"}
	for _, level := range levels {
		for _, r := range results {
			for _, c := range r.AddressComponents {
				for _, t := range c.Types {
					if t == level && strings.TrimSpace(c.LongName) != "" {
						return c.LongName
					}
				}
			}
		}
	}
	return ""
}

// New - new GeoInfo interface
func New(apiKey string) (GeoInfo, error) {
	client, err := maps.NewClient(maps.WithAPIKey(apiKey))
	if err != nil {
		log.WithFields(log.Fields{
			"prefix": logPrefix,
			"error":  err,
		}).Error("new map client")

		return nil, err
	}

	return &geoInfo{
		client: client,
	}, nil
}
