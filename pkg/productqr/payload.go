package productqr

import (
	"fmt"
	"unicode/utf8"
)

// PayloadType marks payloads produced by this package. Decoding rejects
// anything that does not carry it.
const PayloadType = "saudi-dates-product"

// TimestampLayout is the UTC millisecond layout of Payload.Timestamp.
const TimestampLayout = "2006-01-02T15:04:05.000Z"

// ProductQRData identifies a product and its producer.
type ProductQRData struct {
	ProductID   string `json:"productId"`
	Variety     string `json:"variety"`
	Producer    string `json:"producer"`
	Location    string `json:"location"`
	Grade       string `json:"grade"`
	HarvestDate string `json:"harvestDate,omitempty"`
	URL         string `json:"url"`
}

// Validate reports the first missing required field. HarvestDate is optional.
// Every field must be valid UTF-8 so that it survives a JSON round trip.
func (d ProductQRData) Validate() error {
	required := []struct {
		name  string
		value string
	}{
		{"productId", d.ProductID},
		{"variety", d.Variety},
		{"producer", d.Producer},
		{"location", d.Location},
		{"grade", d.Grade},
		{"url", d.URL},
	}
	for _, f := range required {
		if f.value == "" {
			return fmt.Errorf("%w: %s", ErrMissingField, f.name)
		}
		if !utf8.ValidString(f.value) {
			return fmt.Errorf("%w: %s", ErrInvalidText, f.name)
		}
	}
	if !utf8.ValidString(d.HarvestDate) {
		return fmt.Errorf("%w: harvestDate", ErrInvalidText)
	}
	return nil
}

// Payload is the wire form encoded into the QR symbol.
type Payload struct {
	Type        string `json:"type"`
	ID          string `json:"id"`
	Variety     string `json:"variety"`
	Producer    string `json:"producer"`
	Location    string `json:"location"`
	Grade       string `json:"grade"`
	HarvestDate string `json:"harvestDate,omitempty"`
	URL         string `json:"url"`
	Timestamp   string `json:"timestamp"`
}

// Data returns the product fields of the payload.
func (p Payload) Data() ProductQRData {
	return ProductQRData{
		ProductID:   p.ID,
		Variety:     p.Variety,
		Producer:    p.Producer,
		Location:    p.Location,
		Grade:       p.Grade,
		HarvestDate: p.HarvestDate,
		URL:         p.URL,
	}
}

func newPayload(d ProductQRData, timestamp string) Payload {
	return Payload{
		Type:        PayloadType,
		ID:          d.ProductID,
		Variety:     d.Variety,
		Producer:    d.Producer,
		Location:    d.Location,
		Grade:       d.Grade,
		HarvestDate: d.HarvestDate,
		URL:         d.URL,
		Timestamp:   timestamp,
	}
}
