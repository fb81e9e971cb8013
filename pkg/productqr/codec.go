package productqr

import (
	"bytes"
	"encoding/json"
	"time"
)

// Codec converts ProductQRData to and from the payload string.
// The zero value is not usable; use NewCodec.
type Codec struct {
	now func() time.Time
}

// CodecOption configures a Codec.
type CodecOption func(*Codec)

// WithClock replaces time.Now as the timestamp source.
func WithClock(now func() time.Time) CodecOption {
	return func(c *Codec) {
		if now != nil {
			c.now = now
		}
	}
}

// NewCodec returns a codec stamping payloads with the current time.
func NewCodec(opts ...CodecOption) *Codec {
	c := &Codec{now: time.Now}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

var defaultCodec = NewCodec()

// EncodePayload encodes data with the default codec.
func EncodePayload(data ProductQRData) string {
	return defaultCodec.Encode(data)
}

// DecodePayload decodes raw with the default codec.
func DecodePayload(raw string) (ProductQRData, bool) {
	return defaultCodec.Decode(raw)
}

// ParsePayload decodes raw with the default codec, keeping the timestamp.
func ParsePayload(raw string) (Payload, bool) {
	return defaultCodec.Parse(raw)
}

// Encode builds the payload for data, stamps it and serializes it as compact
// JSON. Non-ASCII text is written as-is. Encode does not validate; see
// ProductQRData.Validate.
func (c *Codec) Encode(data ProductQRData) string {
	p := newPayload(data, c.now().UTC().Format(TimestampLayout))

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	// A struct of strings always encodes.
	_ = enc.Encode(p)

	return string(bytes.TrimRight(buf.Bytes(), "\n"))
}

// Decode returns the product fields of raw. The second result is false when
// raw is not a payload of this package: malformed JSON, a missing or different
// type, or mistyped fields.
func (c *Codec) Decode(raw string) (ProductQRData, bool) {
	p, ok := c.Parse(raw)
	if !ok {
		return ProductQRData{}, false
	}
	return p.Data(), true
}

// Parse is Decode returning the full payload. Keys are matched exactly, so
// differently cased duplicates of a field are ignored.
func (c *Codec) Parse(raw string) (Payload, bool) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal([]byte(raw), &fields); err != nil || fields == nil {
		return Payload{}, false
	}
	var typ string
	if err := json.Unmarshal(fields["type"], &typ); err != nil || typ != PayloadType {
		return Payload{}, false
	}

	p := Payload{Type: PayloadType}
	for key, dst := range map[string]*string{
		"id":          &p.ID,
		"variety":     &p.Variety,
		"producer":    &p.Producer,
		"location":    &p.Location,
		"grade":       &p.Grade,
		"harvestDate": &p.HarvestDate,
		"url":         &p.URL,
		"timestamp":   &p.Timestamp,
	} {
		v, ok := fields[key]
		if !ok {
			continue
		}
		if err := json.Unmarshal(v, dst); err != nil {
			return Payload{}, false
		}
	}
	return p, true
}
