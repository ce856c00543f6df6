package params

import "github.com/itsatony/agrisynth/internal/models"

// CropParams are the soil baselines of a crop
type CropParams struct {
	SoilMoisture float64 // percent
	PH           float64
	Nitrogen     float64 // mg/kg
	Phosphorus   float64 // mg/kg
	Potassium    float64 // mg/kg
}

var crops = map[models.Crop]CropParams{
	models.CropMaize:         {SoilMoisture: 45, PH: 6.0, Nitrogen: 120, Phosphorus: 40, Potassium: 150},
	models.CropCassava:       {SoilMoisture: 35, PH: 5.8, Nitrogen: 80, Phosphorus: 30, Potassium: 180},
	models.CropRice:          {SoilMoisture: 60, PH: 6.0, Nitrogen: 100, Phosphorus: 35, Potassium: 120},
	models.CropWheat:         {SoilMoisture: 40, PH: 6.5, Nitrogen: 130, Phosphorus: 45, Potassium: 140},
	models.CropSoybeans:      {SoilMoisture: 45, PH: 6.3, Nitrogen: 60, Phosphorus: 50, Potassium: 160},
	models.CropGroundnuts:    {SoilMoisture: 38, PH: 6.0, Nitrogen: 50, Phosphorus: 45, Potassium: 130},
	models.CropSunflower:     {SoilMoisture: 35, PH: 6.5, Nitrogen: 90, Phosphorus: 40, Potassium: 150},
	models.CropCotton:        {SoilMoisture: 40, PH: 6.2, Nitrogen: 110, Phosphorus: 40, Potassium: 170},
	models.CropTobacco:       {SoilMoisture: 42, PH: 5.8, Nitrogen: 100, Phosphorus: 35, Potassium: 190},
	models.CropSorghum:       {SoilMoisture: 32, PH: 6.5, Nitrogen: 90, Phosphorus: 30, Potassium: 120},
	models.CropMillet:        {SoilMoisture: 30, PH: 6.2, Nitrogen: 70, Phosphorus: 25, Potassium: 110},
	models.CropSweetPotatoes: {SoilMoisture: 40, PH: 5.8, Nitrogen: 70, Phosphorus: 35, Potassium: 200},
	models.CropBeans:         {SoilMoisture: 45, PH: 6.4, Nitrogen: 55, Phosphorus: 45, Potassium: 140},
	models.CropCoffee:        {SoilMoisture: 55, PH: 5.5, Nitrogen: 140, Phosphorus: 40, Potassium: 180},
}
