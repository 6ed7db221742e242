package model

// Product represents one item of the Cats Fresh product line.
type Product struct {
	ID          string        `json:"id"`
	IDNumber    int           `json:"idNumber,omitempty"`
	Name        LocalizedText `json:"name"`
	Description LocalizedText `json:"description"`
	Price       PriceSchedule `json:"price"`
}

// Catalog is the on-disk envelope of the product file. The storefront API
// exposes the same shape.
type Catalog struct {
	Products []Product `json:"products"`
}
