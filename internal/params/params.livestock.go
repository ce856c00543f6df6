package params

import "github.com/itsatony/agrisynth/internal/models"

// AnimalParams are the physiology baselines of a livestock species
type AnimalParams struct {
	BodyTemperature float64 // degrees Celsius
	FoodIntake      float64 // kg/day
	WaterIntake     float64 // litres/day
	MinWeight       float64 // kg
	MaxWeight       float64 // kg
	MinAge          int     // years
	MaxAge          int     // years
	Breeds          []string
	Names           []string
}

var animals = map[models.AnimalType]AnimalParams{
	models.AnimalCattle: {
		BodyTemperature: 38.5, FoodIntake: 12, WaterIntake: 50,
		MinWeight: 250, MaxWeight: 600, MinAge: 1, MaxAge: 12,
		Breeds: []string{"Angoni", "Tonga", "Barotse", "Boran", "Brahman", "Friesian"},
		Names:  []string{"Bella", "Daisy", "Chipo", "Mutinta", "Namwinga", "Bupe"},
	},
	models.AnimalSheep: {
		BodyTemperature: 39.0, FoodIntake: 2, WaterIntake: 5,
		MinWeight: 30, MaxWeight: 80, MinAge: 1, MaxAge: 8,
		Breeds: []string{"Dorper", "Merino", "Blackhead Persian", "Damara"},
		Names:  []string{"Snowy", "Woolly", "Lulu", "Mwiza"},
	},
	models.AnimalGoat: {
		BodyTemperature: 39.2, FoodIntake: 2, WaterIntake: 4,
		MinWeight: 25, MaxWeight: 70, MinAge: 1, MaxAge: 10,
		Breeds: []string{"Boer", "Kalahari Red", "Gwembe", "Saanen"},
		Names:  []string{"Billy", "Nanny", "Kapesa", "Tiko"},
	},
	models.AnimalPig: {
		BodyTemperature: 39.0, FoodIntake: 3, WaterIntake: 10,
		MinWeight: 60, MaxWeight: 250, MinAge: 1, MaxAge: 6,
		Breeds: []string{"Large White", "Landrace", "Duroc", "Hampshire"},
		Names:  []string{"Porky", "Chuma", "Bacon", "Nkumba"},
	},
	models.AnimalChicken: {
		BodyTemperature: 41.5, FoodIntake: 0.12, WaterIntake: 0.25,
		MinWeight: 1.5, MaxWeight: 4.5, MinAge: 1, MaxAge: 3,
		Breeds: []string{"Boschveld", "Rhode Island Red", "Black Australorp", "Zambian Village"},
		Names:  []string{"Henny", "Kuku", "Pepe", "Nkhuku"},
	},
}

// LivestockNotes are the observation phrases of daily health records
var LivestockNotes = []string{
	"Normal behaviour",
	"Eating well",
	"Active and alert",
	"Grazing normally",
	"Slightly lethargic",
	"Drinking more than usual",
	"Reduced appetite",
	"Minor limp observed",
}
