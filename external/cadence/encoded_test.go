package cadence

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type sweepResult struct {
	Community string
	Count     int
	At        time.Time
}

func TestMsgPackDataConverterMultipleValues(t *testing.T) {
	c := NewMsgPackDataConverter()
	at := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)

	data, err := c.ToData(10*time.Minute, "c1", sweepResult{Community: "c1", Count: 3, At: at})
	assert.NoError(t, err)

	var interval time.Duration
	var id string
	var result sweepResult
	assert.NoError(t, c.FromData(data, &interval, &id, &result))

	assert.Equal(t, 10*time.Minute, interval)
	assert.Equal(t, "c1", id)
	assert.Equal(t, 3, result.Count)
	assert.True(t, at.Equal(result.At))
}

func TestMsgPackDataConverterShortInput(t *testing.T) {
	c := NewMsgPackDataConverter()

	data, err := c.ToData("only-one")
	assert.NoError(t, err)

	var a, b string
	assert.Error(t, c.FromData(data, &a, &b))
	assert.Equal(t, "only-one", a)
}

func TestMsgPackDataConverterUsesJSONNames(t *testing.T) {
	type tagged struct {
		Expired int `json:"expired"`
	}

	c := NewMsgPackDataConverter()
	data, err := c.ToData(tagged{Expired: 2})
	assert.NoError(t, err)

	var decoded map[string]interface{}
	assert.NoError(t, c.FromData(data, &decoded))
	assert.Contains(t, decoded, "expired")
}
