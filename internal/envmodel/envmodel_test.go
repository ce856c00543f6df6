package envmodel_test

import (
	"math/rand/v2"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/itsatony/agrisynth/internal/envmodel"
	"github.com/itsatony/agrisynth/internal/models"
)

type fixedRand float64

func (f fixedRand) Float64() float64 { return float64(f) }

func TestSeasonFor(t *testing.T) {
	cases := map[time.Month]models.Season{
		time.January:   models.SeasonRainy,
		time.April:     models.SeasonRainy,
		time.May:       models.SeasonCoolDry,
		time.August:    models.SeasonCoolDry,
		time.September: models.SeasonHotDry,
		time.October:   models.SeasonHotDry,
		time.November:  models.SeasonRainy,
		time.December:  models.SeasonRainy,
	}
	for month, want := range cases {
		got := envmodel.SeasonFor(time.Date(2024, month, 15, 0, 0, 0, 0, time.UTC))
		assert.Equal(t, want, got, month.String())
	}
}

func TestValueFor(t *testing.T) {
	assert.InDelta(t, 55.0, envmodel.ValueFor(fixedRand(0.5), 50, 5, 10), 1e-9)
	assert.InDelta(t, 45.0, envmodel.ValueFor(fixedRand(0), 50, 5, 10), 1e-9)
	assert.InDelta(t, 64.0, envmodel.ValueFor(fixedRand(0.95), 50, 5, 10), 1e-9)
}

func TestMetricsStayInBand(t *testing.T) {
	r := rand.New(rand.NewPCG(7, 7))
	for _, clamp := range []bool{true, false} {
		m := envmodel.Model{Clamp: clamp}
		for _, s := range models.Seasons {
			var metrics []envmodel.Metric
			for _, c := range models.Crops {
				metrics = append(metrics,
					envmodel.SoilMoisture(c, s), envmodel.PH(c, s),
					envmodel.Nitrogen(c, s), envmodel.Phosphorus(c, s), envmodel.Potassium(c, s))
			}
			for _, p := range models.Provinces {
				metrics = append(metrics, envmodel.Temperature(p, s), envmodel.Humidity(p, s))
			}
			for _, a := range models.AnimalTypes {
				metrics = append(metrics, envmodel.FoodIntake(a, s), envmodel.WaterIntake(a, s))
				for _, h := range models.HealthStatuses {
					metrics = append(metrics, envmodel.AnimalTemperature(a, h))
				}
			}
			for _, metric := range metrics {
				band := m.Band(metric)
				for i := 0; i < 50; i++ {
					v := m.Value(r, metric)
					require.Truef(t, band.Contains(v), "%s=%v outside %+v", metric.Name, v, band)
				}
			}
		}
	}
}

func TestActivityLevelRange(t *testing.T) {
	r := rand.New(rand.NewPCG(1, 2))
	m := envmodel.NewModel()
	for _, h := range models.HealthStatuses {
		for i := 0; i < 200; i++ {
			v := m.Value(r, envmodel.ActivityLevel(h))
			assert.GreaterOrEqual(t, v, 60.0)
			assert.LessOrEqual(t, v, 100.0)
		}
	}
}

func TestClampToDomain(t *testing.T) {
	metric := envmodel.Metric{Name: "x", Baseline: 98, Offset: 5, Noise: 5, Domain: envmodel.Band{Min: 0, Max: 100}, Precision: 1}

	clamped := envmodel.Model{Clamp: true}
	assert.Equal(t, 100.0, clamped.Value(fixedRand(0.99), metric))
	assert.Equal(t, 100.0, clamped.Band(metric).Max)

	raw := envmodel.Model{Clamp: false}
	assert.Greater(t, raw.Value(fixedRand(0.99), metric), 100.0)
}

func TestSeasonalOffsets(t *testing.T) {
	rainy := envmodel.SoilMoisture(models.CropRice, models.SeasonRainy)
	hot := envmodel.SoilMoisture(models.CropRice, models.SeasonHotDry)
	assert.Equal(t, 60.0, rainy.Baseline)
	assert.Greater(t, rainy.Offset, hot.Offset)

	sick := envmodel.AnimalTemperature(models.AnimalCattle, models.HealthSick)
	healthy := envmodel.AnimalTemperature(models.AnimalCattle, models.HealthHealthy)
	assert.Greater(t, sick.Offset, healthy.Offset)

	assert.Less(t, envmodel.Phosphorus(models.CropMaize, models.SeasonRainy).Offset,
		envmodel.Phosphorus(models.CropMaize, models.SeasonHotDry).Offset)
}

func TestUnknownKeysFallBack(t *testing.T) {
	unknown := envmodel.SoilMoisture(models.Crop("Quinoa"), models.SeasonCoolDry)
	maize := envmodel.SoilMoisture(models.CropMaize, models.SeasonCoolDry)
	assert.Equal(t, maize.Baseline, unknown.Baseline)

	assert.Equal(t,
		envmodel.Temperature(models.ProvinceLusaka, models.SeasonRainy).Baseline,
		envmodel.Temperature(models.Province("Atlantis"), models.SeasonRainy).Baseline)
}
