// Package params holds the static lookup tables that keep generated values
// plausible for a Zambian agricultural context. All tables are read-only;
// lookups never fail and fall back to the documented defaults.
package params

import "github.com/itsatony/agrisynth/internal/models"

// Fallback keys used when a lookup key is not part of a table
const (
	DefaultCrop     = models.CropMaize
	DefaultProvince = models.ProvinceLusaka
	DefaultAnimal   = models.AnimalCattle
	DefaultCategory = models.CategorySeeds
)

// CropProfile returns the soil baselines of a crop, or the DefaultCrop profile
func CropProfile(c models.Crop) CropParams {
	if p, ok := crops[c]; ok {
		return p
	}
	return crops[DefaultCrop]
}

// CropProfileByName looks a crop up by its display name
func CropProfileByName(name string) CropParams {
	return CropProfile(models.Crop(name))
}

// ProvinceProfile returns the climate baselines of a province, or the DefaultProvince profile
func ProvinceProfile(p models.Province) ProvinceParams {
	if pp, ok := provinces[p]; ok {
		return pp
	}
	return provinces[DefaultProvince]
}

// ProvinceProfileByName looks a province up by its display name
func ProvinceProfileByName(name string) ProvinceParams {
	return ProvinceProfile(models.Province(name))
}

// AnimalProfile returns the physiology baselines of a species, or the DefaultAnimal profile
func AnimalProfile(a models.AnimalType) AnimalParams {
	if p, ok := animals[a]; ok {
		return p
	}
	return animals[DefaultAnimal]
}

// AnimalProfileByName looks a species up by name
func AnimalProfileByName(name string) AnimalParams {
	return AnimalProfile(models.AnimalType(name))
}

// CategoryProfile returns the product names and price band of a category, or the DefaultCategory profile
func CategoryProfile(c models.ProductCategory) CategoryParams {
	if p, ok := categories[c]; ok {
		return p
	}
	return categories[DefaultCategory]
}

// PestRecommendation returns the advice text for a pest, or DefaultPestRecommendation
func PestRecommendation(p models.Pest) string {
	if r, ok := pestRecommendations[p]; ok {
		return r
	}
	return DefaultPestRecommendation
}
