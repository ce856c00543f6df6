package generator

import (
	"net/url"
	"strings"
	"time"

	"github.com/itsatony/agrisynth/internal/envmodel"
	"github.com/itsatony/agrisynth/internal/models"
	"github.com/itsatony/agrisynth/internal/params"
)

// Farm size bounds in hectares
const (
	MinFarmSize = 0.5
	MaxFarmSize = 50.0
)

// GenerateFarms returns count farms, each owned by a farmer drawn with replacement
func (g *Generator) GenerateFarms(farmers []models.User, count int) ([]models.Farm, error) {
	if err := validateCount("count", count); err != nil {
		return nil, err
	}
	if err := requireParents("farmers", len(farmers), count); err != nil {
		return nil, err
	}

	now := g.now()
	farms := make([]models.Farm, 0, count)
	for i := 0; i < count; i++ {
		owner := pick(g, farmers)
		crop := pick(g, models.Crops)
		created := g.since(owner.CreatedAt, now)

		farms = append(farms, models.Farm{
			ID:        g.ids.NewID(PrefixFarm),
			Name:      lastName(owner.Name) + " " + string(crop) + " Farm",
			Location:  owner.City + ", " + string(owner.Province),
			Size:      round(g.floatBetween(MinFarmSize, MaxFarmSize), 1),
			CropType:  crop,
			OwnerID:   owner.ID,
			Province:  owner.Province,
			CreatedAt: created,
			UpdatedAt: created,
		})
	}
	return farms, nil
}

// GenerateSensorData returns days+1 daily readings per farm, oldest first
func (g *Generator) GenerateSensorData(farms []models.Farm, days int) ([]models.SensorReading, error) {
	if err := validateCount("days", days); err != nil {
		return nil, err
	}

	now := g.now().UTC().Truncate(time.Second)
	readings := make([]models.SensorReading, 0, len(farms)*(days+1))
	for _, farm := range farms {
		for d := days; d >= 0; d-- {
			ts := now.AddDate(0, 0, -d)
			readings = append(readings, g.sensorReading(farm, ts))
		}
	}
	return readings, nil
}

func (g *Generator) sensorReading(farm models.Farm, ts time.Time) models.SensorReading {
	season := envmodel.SeasonFor(ts)
	crop, province := farm.CropType, farm.Province
	return models.SensorReading{
		ID:           g.ids.NewID(PrefixSensorReading),
		FarmID:       farm.ID,
		SoilMoisture: g.model.Value(g.rng, envmodel.SoilMoisture(crop, season)),
		Temperature:  g.model.Value(g.rng, envmodel.Temperature(province, season)),
		Humidity:     g.model.Value(g.rng, envmodel.Humidity(province, season)),
		PhLevel:      g.model.Value(g.rng, envmodel.PH(crop, season)),
		Nitrogen:     g.model.Value(g.rng, envmodel.Nitrogen(crop, season)),
		Phosphorus:   g.model.Value(g.rng, envmodel.Phosphorus(crop, season)),
		Potassium:    g.model.Value(g.rng, envmodel.Potassium(crop, season)),
		Timestamp:    ts,
	}
}

// Pest confidence bounds in percent
const (
	MinPestConfidence = 60.0
	MaxPestConfidence = 100.0
)

func (g *Generator) GeneratePestDetections(farms []models.Farm, count int) ([]models.PestDetection, error) {
	if err := validateCount("count", count); err != nil {
		return nil, err
	}
	if err := requireParents("farms", len(farms), count); err != nil {
		return nil, err
	}

	now := g.now()
	detections := make([]models.PestDetection, 0, count)
	for i := 0; i < count; i++ {
		farm := pick(g, farms)
		pest := pick(g, models.Pests)
		detections = append(detections, models.PestDetection{
			ID:             g.ids.NewID(PrefixPestDetection),
			FarmID:         farm.ID,
			ImageURL:       placeholderImage(string(pest)),
			DetectedPest:   pest,
			Confidence:     round(g.floatBetween(MinPestConfidence, MaxPestConfidence), 1),
			Recommendation: params.PestRecommendation(pest),
			Timestamp:      g.since(farm.CreatedAt, now),
		})
	}
	return detections, nil
}

func placeholderImage(text string) string {
	return "https://placehold.co/600x400?text=" + url.QueryEscape(text)
}

func lastName(name string) string {
	parts := strings.Fields(name)
	if len(parts) == 0 {
		return "Unnamed"
	}
	return parts[len(parts)-1]
}
