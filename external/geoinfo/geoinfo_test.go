package geoinfo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"googlemaps.github.io/maps"
)

func TestLocality(t *testing.T) {
	results := []maps.GeocodingResult{
		{AddressComponents: []maps.AddressComponent{
			{LongName: "Taipei City", Types: []string{"administrative_area_level_2", "political"}},
			{LongName: "Da'an District", Types: []string{"sublocality", "political"}},
		}},
		{AddressComponents: []maps.AddressComponent{
			{LongName: "Taiwan", Types: []string{"country", "political"}},
		}},
	}
	assert.Equal(t, "Da'an District", Locality(results))

	results = append(results, maps.GeocodingResult{AddressComponents: []maps.AddressComponent{
		{LongName: "Yongkang", Types: []string{"neighborhood"}},
	}})
	assert.Equal(t, "Yongkang", Locality(results))

	assert.Equal(t, "", Locality(nil))
}
