package params

import "github.com/itsatony/agrisynth/internal/models"

// CategoryParams are the product names and price band (ZMW) of a category
type CategoryParams struct {
	Names    []string
	MinPrice float64
	MaxPrice float64
}

var categories = map[models.ProductCategory]CategoryParams{
	models.CategorySeeds: {
		Names:    []string{"Hybrid Maize Seed SC513 (10kg)", "Soybean Seed (25kg)", "Groundnut Seed Chalimbana (20kg)", "Sunflower Seed (5kg)", "Bean Seed Lyambai (10kg)", "Sorghum Seed (10kg)"},
		MinPrice: 50, MaxPrice: 500,
	},
	models.CategoryFertilizers: {
		Names:    []string{"D-Compound (50kg)", "Urea (50kg)", "Ammonium Nitrate (50kg)", "Agricultural Lime (50kg)", "Organic Compost (25kg)"},
		MinPrice: 300, MaxPrice: 1200,
	},
	models.CategoryPesticides: {
		Names:    []string{"Cypermethrin 200EC (1L)", "Emamectin Benzoate (500g)", "Glyphosate 480SL (5L)", "Mancozeb 80WP (1kg)", "Chlorpyrifos 48EC (1L)"},
		MinPrice: 80, MaxPrice: 600,
	},
	models.CategoryEquipment: {
		Names:    []string{"Knapsack Sprayer (16L)", "Treadle Pump", "Ox-Drawn Plough", "Solar Water Pump", "Drip Irrigation Kit", "Maize Sheller"},
		MinPrice: 500, MaxPrice: 25000,
	},
	models.CategoryFeed: {
		Names:    []string{"Broiler Starter (50kg)", "Layers Mash (50kg)", "Dairy Meal (50kg)", "Pig Grower Pellets (50kg)", "Cattle Lick Block (20kg)"},
		MinPrice: 150, MaxPrice: 900,
	},
	models.CategoryProduce: {
		Names:    []string{"Fresh Tomatoes (crate)", "Maize Grain (50kg)", "Shelled Groundnuts (10kg)", "Sweet Potatoes (bag)", "Fresh Rape (bundle)", "Onions (10kg)"},
		MinPrice: 20, MaxPrice: 400,
	},
}

// DefaultPestRecommendation is returned for pests without dedicated advice
const DefaultPestRecommendation = "Consult your camp extension officer for an integrated pest management plan."

var pestRecommendations = map[models.Pest]string{
	models.PestFallArmyworm: "Scout twice a week and apply emamectin benzoate into the funnels once more than 20% of plants show fresh damage.",
	models.PestAphids:       "Spray a soap solution or a systemic insecticide and protect ladybird populations.",
	models.PestStalkBorer:   "Apply granular insecticide into maize funnels and destroy crop residues after harvest.",
	models.PestCutworm:      "Keep fields weed-free before planting and place bait around seedlings in the evening.",
	models.PestWhitefly:     "Set up yellow sticky traps and rotate insecticides with different modes of action.",
	models.PestLocust:       "Report swarms to the district agricultural office immediately and coordinate ground spraying.",
}
