package main

import (
	"dabeli/internal/infra/persistence/model"

	"gorm.io/gen"
)

// Regenerates internal/infra/persistence/postgres/query for the customer-side
// tables. The order, menu and catering repositories work on JSON columns and
// stay on plain GORM.
func main() {
	models := []any{
		model.CustomerModel{},
		model.AddressModel{},
		model.ResetTokenModel{},
		model.CustomerDeviceModel{},
	}

	gen := gen.NewGenerator(gen.Config{
		OutPath: "./internal/infra/persistence/postgres/query",
	})

	gen.ApplyBasic(models...)

	gen.Execute()
}
