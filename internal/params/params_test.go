package params_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/itsatony/agrisynth/internal/models"
	"github.com/itsatony/agrisynth/internal/params"
)

func TestTablesCoverVocabularies(t *testing.T) {
	for _, c := range models.Crops {
		p := params.CropProfile(c)
		assert.Greater(t, p.SoilMoisture, 0.0, string(c))
		assert.Greater(t, p.PH, 0.0, string(c))
	}
	for _, p := range models.Provinces {
		assert.NotEmpty(t, params.ProvinceProfile(p).Cities, string(p))
	}
	for _, a := range models.AnimalTypes {
		ap := params.AnimalProfile(a)
		assert.NotEmpty(t, ap.Breeds, string(a))
		assert.NotEmpty(t, ap.Names, string(a))
		assert.Less(t, ap.MinWeight, ap.MaxWeight, string(a))
		assert.LessOrEqual(t, ap.MinAge, ap.MaxAge, string(a))
	}
	for _, c := range models.ProductCategories {
		cp := params.CategoryProfile(c)
		assert.NotEmpty(t, cp.Names, string(c))
		assert.Less(t, cp.MinPrice, cp.MaxPrice, string(c))
	}
	for _, p := range models.Pests {
		assert.NotEqual(t, params.DefaultPestRecommendation, params.PestRecommendation(p), string(p))
	}
}

func TestRiceBaseline(t *testing.T) {
	assert.Equal(t, 60.0, params.CropProfile(models.CropRice).SoilMoisture)
	assert.Equal(t, 60.0, params.CropProfileByName("Rice").SoilMoisture)
}

func TestFallbacks(t *testing.T) {
	assert.Equal(t, params.CropProfile(params.DefaultCrop), params.CropProfileByName("Quinoa"))
	assert.Equal(t, params.ProvinceProfile(params.DefaultProvince), params.ProvinceProfileByName("Atlantis"))
	assert.Equal(t, params.AnimalProfile(params.DefaultAnimal), params.AnimalProfileByName("llama"))
	assert.Equal(t, params.CategoryProfile(params.DefaultCategory), params.CategoryProfile("Toys"))
	assert.Equal(t, params.DefaultPestRecommendation, params.PestRecommendation("Dragon"))
}
