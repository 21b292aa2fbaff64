package main

import (
	"pushcart/internal/infra/persistence/model"

	"gorm.io/gen"
)

func main() {
	models := []any{
		model.VendorModel{},
		model.VendorLocationModel{},
		model.CustomerModel{},
		model.ProductModel{},
		model.FeedbackModel{},
	}

	gen := gen.NewGenerator(gen.Config{
		OutPath: "./internal/infra/persistence/postgres/query",
	})

	gen.ApplyBasic(models...)

	gen.Execute()
}
