package cadence

import (
	"bytes"
	"fmt"

	"github.com/vmihailenco/msgpack/v4"
	"go.uber.org/cadence/encoded"
)

var _ encoded.DataConverter = (*MsgPackDataConverter)(nil)

// MsgPackDataConverter carries workflow and activity values as one msgpack stream.
// Struct fields are keyed by their json tag, the same names the records use on the API.
type MsgPackDataConverter struct{}

func NewMsgPackDataConverter() *MsgPackDataConverter {
	return &MsgPackDataConverter{}
}

func (c *MsgPackDataConverter) ToData(values ...interface{}) ([]byte, error) {
	var buf bytes.Buffer
	enc := msgpack.NewEncoder(&buf).UseJSONTag(true)
	for i := range values {
		if err := enc.Encode(values[i]); err != nil {
			return nil, fmt.Errorf("msgpack encode value %d (%T): %w", i, values[i], err)
		}
	}
	return buf.Bytes(), nil
}

// FromData decodes the stream into valuePtrs in order. Input shorter than valuePtrs fails
// at the first missing value.
func (c *MsgPackDataConverter) FromData(input []byte, valuePtrs ...interface{}) error {
	dec := msgpack.NewDecoder(bytes.NewReader(input)).UseJSONTag(true)
	for i := range valuePtrs {
		if err := dec.Decode(valuePtrs[i]); err != nil {
			return fmt.Errorf("msgpack decode value %d (%T): %w", i, valuePtrs[i], err)
		}
	}
	return nil
}
