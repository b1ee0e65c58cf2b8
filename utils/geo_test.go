package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/neighborly/neighborly-api/schema"
)

func TestDistanceKM(t *testing.T) {
	taipei101 := schema.Location{Latitude: 25.033964, Longitude: 121.564468}
	taipeiMain := schema.Location{Latitude: 25.047924, Longitude: 121.517081}

	assert.InDelta(t, 5.0, DistanceKM(taipei101, taipeiMain), 0.2)
	assert.Equal(t, 0.0, DistanceKM(taipei101, taipei101))
	assert.InDelta(t, DistanceKM(taipei101, taipeiMain), DistanceKM(taipeiMain, taipei101), 1e-9)

	equator := schema.Location{Latitude: 0, Longitude: 0}
	oneDegree := schema.Location{Latitude: 0, Longitude: 1}
	assert.InDelta(t, 111.19, DistanceKM(equator, oneDegree), 0.01)
}
