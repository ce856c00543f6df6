package envmodel

import (
	"math"

	"github.com/itsatony/agrisynth/internal/models"
	"github.com/itsatony/agrisynth/internal/params"
)

// Noise half widths
const (
	SoilMoistureNoise      = 5.0
	TemperatureNoise       = 3.0
	HumidityNoise          = 8.0
	PHNoise                = 0.3
	NitrogenNoise          = 15.0
	PhosphorusNoise        = 8.0
	PotassiumNoise         = 20.0
	AnimalTemperatureNoise = 0.5
	IntakeNoiseShare       = 0.2 // of the species baseline
)

var (
	percent   = Band{Min: 0, Max: 100}
	nonNeg    = Band{Min: 0, Max: math.Inf(1)}
	phDomain  = Band{Min: 0, Max: 14}
	airDomain = Band{Min: -10, Max: 50}
	vitals    = Band{Min: 30, Max: 45}
)

type seasonal map[models.Season]float64

var (
	soilMoistureOffsets = seasonal{models.SeasonRainy: 15, models.SeasonCoolDry: 0, models.SeasonHotDry: -10}
	temperatureOffsets  = seasonal{models.SeasonRainy: 2, models.SeasonCoolDry: -5, models.SeasonHotDry: 6}
	humidityOffsets     = seasonal{models.SeasonRainy: 20, models.SeasonCoolDry: -5, models.SeasonHotDry: -15}
	phOffsets           = seasonal{models.SeasonRainy: -0.2}
	nitrogenOffsets     = seasonal{models.SeasonRainy: -10, models.SeasonHotDry: 5}
	phosphorusOffsets   = seasonal{models.SeasonRainy: -4, models.SeasonHotDry: 2}
	potassiumOffsets    = seasonal{models.SeasonRainy: -10}

	// shares of the species baseline
	foodIntakeShares  = seasonal{models.SeasonRainy: 0.1, models.SeasonHotDry: -0.1}
	waterIntakeShares = seasonal{models.SeasonRainy: -0.1, models.SeasonHotDry: 0.25}

	feverOffsets = map[models.HealthStatus]float64{models.HealthSick: 1.5, models.HealthRecovering: 0.5}
)

// SoilMoisture is wetter in the rainy season and driest in the hot-dry season
func SoilMoisture(c models.Crop, s models.Season) Metric {
	return Metric{
		Name: "soilMoisture", Baseline: params.CropProfile(c).SoilMoisture, Offset: soilMoistureOffsets[s],
		Noise: SoilMoistureNoise, Domain: percent, Precision: 1,
	}
}

// Temperature follows the province baseline, coolest in the cool-dry season
func Temperature(p models.Province, s models.Season) Metric {
	return Metric{
		Name: "temperature", Baseline: params.ProvinceProfile(p).Temperature, Offset: temperatureOffsets[s],
		Noise: TemperatureNoise, Domain: airDomain, Precision: 1,
	}
}

// Humidity follows the province baseline and the rains
func Humidity(p models.Province, s models.Season) Metric {
	return Metric{
		Name: "humidity", Baseline: params.ProvinceProfile(p).Humidity, Offset: humidityOffsets[s],
		Noise: HumidityNoise, Domain: percent, Precision: 1,
	}
}

// PH drops slightly in the rainy season from leaching
func PH(c models.Crop, s models.Season) Metric {
	return Metric{
		Name: "phLevel", Baseline: params.CropProfile(c).PH, Offset: phOffsets[s],
		Noise: PHNoise, Domain: phDomain, Precision: 2,
	}
}

// Nitrogen is leached by the rains and concentrates in the hot-dry season
func Nitrogen(c models.Crop, s models.Season) Metric {
	return Metric{
		Name: "nitrogen", Baseline: params.CropProfile(c).Nitrogen, Offset: nitrogenOffsets[s],
		Noise: NitrogenNoise, Domain: nonNeg, Precision: 1,
	}
}

// Phosphorus dips slightly while crops take it up in the rainy season
func Phosphorus(c models.Crop, s models.Season) Metric {
	return Metric{
		Name: "phosphorus", Baseline: params.CropProfile(c).Phosphorus, Offset: phosphorusOffsets[s],
		Noise: PhosphorusNoise, Domain: nonNeg, Precision: 1,
	}
}

// Potassium is leached by the rains
func Potassium(c models.Crop, s models.Season) Metric {
	return Metric{
		Name: "potassium", Baseline: params.CropProfile(c).Potassium, Offset: potassiumOffsets[s],
		Noise: PotassiumNoise, Domain: nonNeg, Precision: 1,
	}
}

// AnimalTemperature raises the species body temperature for sick and recovering animals
func AnimalTemperature(a models.AnimalType, h models.HealthStatus) Metric {
	return Metric{
		Name: "temperature", Baseline: params.AnimalProfile(a).BodyTemperature, Offset: feverOffsets[h],
		Noise: AnimalTemperatureNoise, Domain: vitals, Precision: 1,
	}
}

// ActivityLevel stays within 60-100 percent for every health status
func ActivityLevel(h models.HealthStatus) Metric {
	m := Metric{Name: "activityLevel", Baseline: 80, Noise: 20, Domain: Band{Min: 60, Max: 100}, Precision: 0}
	switch h {
	case models.HealthSick:
		m.Baseline, m.Noise = 70, 10
	case models.HealthRecovering:
		m.Baseline, m.Noise = 75, 15
	}
	return m
}

// FoodIntake rises with fresh grazing in the rainy season
func FoodIntake(a models.AnimalType, s models.Season) Metric {
	base := params.AnimalProfile(a).FoodIntake
	return Metric{
		Name: "foodIntake", Baseline: base, Offset: base * foodIntakeShares[s],
		Noise: base * IntakeNoiseShare, Domain: nonNeg, Precision: 3,
	}
}

// WaterIntake rises in the hot-dry season
func WaterIntake(a models.AnimalType, s models.Season) Metric {
	base := params.AnimalProfile(a).WaterIntake
	return Metric{
		Name: "waterIntake", Baseline: base, Offset: base * waterIntakeShares[s],
		Noise: base * IntakeNoiseShare, Domain: nonNeg, Precision: 3,
	}
}
