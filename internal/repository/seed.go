package repository

import "cats-shop/internal/model"

// DefaultCatalog is the catalog the file store seeds when the product file
// does not exist yet. Kept identical to the original launch data: one
// product with the legacy two-tier price schedule.
func DefaultCatalog() model.Catalog {
	wholesale := 250.0
	return model.Catalog{
		Products: []model.Product{
			{
				ID:       "cats-fresh",
				IDNumber: 1,
				Name: model.LocalizedText{
					UK: "Cats Fresh - Комкуючий наповнювач з тофу",
					RU: "Cats Fresh - Комкующий наполнитель из тофу",
				},
				Description: model.LocalizedText{
					UK: "Екологічний наповнювач з тофу для котячого туалету",
					RU: "Экологический наполнитель из тофу для кошачьего туалета",
				},
				Price: model.PriceSchedule{
					Single: 280,
					From6:  &wholesale,
				},
			},
		},
	}
}
