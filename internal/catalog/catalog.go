// Package catalog holds the bilingual product fixtures served by datesqr.
package catalog

import (
	"errors"
	"slices"
	"strings"
	"time"

	"github.com/nakhla/datesqr/pkg/productqr"
)

// ErrProductNotFound is returned by Find for unknown ids.
var ErrProductNotFound = errors.New("product not found")

// Text is a string in English and Arabic.
type Text struct {
	EN string
	AR string
}

// In returns the Arabic text for "ar" and English otherwise.
func (t Text) In(lang string) string {
	if lang == "ar" && t.AR != "" {
		return t.AR
	}
	return t.EN
}

type Producer struct {
	Name     Text
	Location Text
	Company  Text
	Phone    string
}

type Product struct {
	ID             string
	Variety        Text
	Producer       Producer
	Grade          string
	Size           string
	Color          Text
	Packaging      Text
	Certificates   []Text
	WeightGrams    int
	RetailPrice    int
	WholesalePrice int
	HarvestDate    time.Time
	ShelfLifeDays  int
	Code           string
}

var products = []Product{
	{
		ID:      "1",
		Variety: Text{EN: "Medjool Dates", AR: "تمر المجهول"},
		Producer: Producer{
			Name:     Text{EN: "Golden Oasis Farm", AR: "مزرعة الواحة الذهبية"},
			Location: Text{EN: "Al-Ahsa", AR: "الأحساء"},
			Company:  Text{EN: "Al-Ahsa Farms", AR: "مزارع الأحساء"},
			Phone:    "+966-50-123-4567",
		},
		Grade:          "premium",
		Size:           "jumbo",
		Color:          Text{EN: "Dark Brown", AR: "بني داكن"},
		Packaging:      Text{EN: "Premium Box", AR: "علبة فاخرة"},
		Certificates:   []Text{{EN: "Organic", AR: "عضوي"}, {EN: "Halal", AR: "حلال"}},
		WeightGrams:    500,
		RetailPrice:    45,
		WholesalePrice: 35,
		HarvestDate:    time.Date(2024, time.January, 15, 0, 0, 0, 0, time.UTC),
		ShelfLifeDays:  365,
		Code:           "QR001-SA-1234567890",
	},
	{
		ID:      "2",
		Variety: Text{EN: "Sukkari Dates", AR: "تمر الصقعي"},
		Producer: Producer{
			Name:     Text{EN: "Royal Palm Farm", AR: "مزرعة النخيل الملكية"},
			Location: Text{EN: "Al-Qassim", AR: "القصيم"},
			Company:  Text{EN: "Royal Qassim Farms", AR: "مزارع القصيم الملكية"},
			Phone:    "+966-55-987-6543",
		},
		Grade:          "premium",
		Size:           "large",
		Color:          Text{EN: "Golden", AR: "ذهبي"},
		Packaging:      Text{EN: "Vacuum Sealed Bag", AR: "كيس مفرغ من الهواء"},
		Certificates:   []Text{{EN: "Organic", AR: "عضوي"}, {EN: "ISO 22000", AR: "ISO 22000"}},
		WeightGrams:    1000,
		RetailPrice:    85,
		WholesalePrice: 70,
		HarvestDate:    time.Date(2024, time.February, 10, 0, 0, 0, 0, time.UTC),
		ShelfLifeDays:  300,
		Code:           "QR002-SA-2345678901",
	},
	{
		ID:      "3",
		Variety: Text{EN: "Ajwa Dates", AR: "تمر العجوة"},
		Producer: Producer{
			Name:     Text{EN: "Blessed Medina Farm", AR: "مزرعة المدينة المباركة"},
			Location: Text{EN: "Medina", AR: "المدينة المنورة"},
			Company:  Text{EN: "Medina Farms", AR: "مزارع المدينة المنورة"},
			Phone:    "+966-54-555-7890",
		},
		Grade:          "premium",
		Size:           "medium",
		Color:          Text{EN: "Black", AR: "أسود"},
		Packaging:      Text{EN: "Wooden Box", AR: "صندوق خشبي"},
		Certificates:   []Text{{EN: "Organic", AR: "عضوي"}, {EN: "Halal", AR: "حلال"}, {EN: "Heritage", AR: "تراثي"}},
		WeightGrams:    250,
		RetailPrice:    120,
		WholesalePrice: 95,
		HarvestDate:    time.Date(2024, time.January, 20, 0, 0, 0, 0, time.UTC),
		ShelfLifeDays:  400,
		Code:           "QR003-SA-3456789012",
	},
}

// All returns a copy of every product, ordered by id.
func All() []Product {
	return slices.Clone(products)
}

func Find(id string) (Product, error) {
	for _, p := range products {
		if p.ID == id {
			return p, nil
		}
	}
	return Product{}, ErrProductNotFound
}

// QRData builds the code content for p in lang. The url points at
// <baseURL>/product/<id>.
func QRData(p Product, lang, baseURL string) productqr.ProductQRData {
	data := productqr.ProductQRData{
		ProductID: p.ID,
		Variety:   p.Variety.In(lang),
		Producer:  p.Producer.Name.In(lang),
		Location:  p.Producer.Location.In(lang),
		Grade:     p.Grade,
		URL:       strings.TrimSuffix(baseURL, "/") + "/product/" + p.ID,
	}
	if !p.HarvestDate.IsZero() {
		data.HarvestDate = p.HarvestDate.UTC().Format(productqr.TimestampLayout)
	}
	return data
}

// Entry is the localized listing form of a product.
type Entry struct {
	ID             string   `json:"id"`
	Variety        string   `json:"variety"`
	Producer       string   `json:"producer"`
	Location       string   `json:"location"`
	Company        string   `json:"company"`
	Grade          string   `json:"grade"`
	Size           string   `json:"size"`
	Color          string   `json:"color"`
	Packaging      string   `json:"packaging"`
	Certificates   []string `json:"certificates"`
	WeightGrams    int      `json:"weightGrams"`
	RetailPrice    int      `json:"retailPrice"`
	WholesalePrice int      `json:"wholesalePrice"`
	HarvestDate    string   `json:"harvestDate,omitempty"`
}

func (p Product) Entry(lang string) Entry {
	certs := make([]string, 0, len(p.Certificates))
	for _, c := range p.Certificates {
		certs = append(certs, c.In(lang))
	}
	e := Entry{
		ID:             p.ID,
		Variety:        p.Variety.In(lang),
		Producer:       p.Producer.Name.In(lang),
		Location:       p.Producer.Location.In(lang),
		Company:        p.Producer.Company.In(lang),
		Grade:          p.Grade,
		Size:           p.Size,
		Color:          p.Color.In(lang),
		Packaging:      p.Packaging.In(lang),
		Certificates:   certs,
		WeightGrams:    p.WeightGrams,
		RetailPrice:    p.RetailPrice,
		WholesalePrice: p.WholesalePrice,
	}
	if !p.HarvestDate.IsZero() {
		e.HarvestDate = p.HarvestDate.Format(time.DateOnly)
	}
	return e
}
