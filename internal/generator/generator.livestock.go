package generator

import (
	"time"

	"github.com/itsatony/agrisynth/internal/envmodel"
	"github.com/itsatony/agrisynth/internal/models"
	"github.com/itsatony/agrisynth/internal/params"
)

// healthWeights skews livestock toward healthy, in percent
var healthWeights = []struct {
	status models.HealthStatus
	weight int
}{
	{models.HealthHealthy, 80},
	{models.HealthSick, 10},
	{models.HealthRecovering, 10},
}

func (g *Generator) healthStatus() models.HealthStatus {
	n := g.rng.IntN(100)
	for _, hw := range healthWeights {
		if n < hw.weight {
			return hw.status
		}
		n -= hw.weight
	}
	return models.HealthHealthy
}

// GenerateLivestock returns count animals spread over the given farms
func (g *Generator) GenerateLivestock(farms []models.Farm, count int) ([]models.Livestock, error) {
	if err := validateCount("count", count); err != nil {
		return nil, err
	}
	if err := requireParents("farms", len(farms), count); err != nil {
		return nil, err
	}

	now := g.now()
	animals := make([]models.Livestock, 0, count)
	for i := 0; i < count; i++ {
		farm := pick(g, farms)
		kind := pick(g, models.AnimalTypes)
		profile := params.AnimalProfile(kind)
		created := g.since(farm.CreatedAt, now)

		animals = append(animals, models.Livestock{
			ID:              g.ids.NewID(PrefixLivestock),
			FarmID:          farm.ID,
			Name:            pick(g, profile.Names),
			Type:            kind,
			Breed:           pick(g, profile.Breeds),
			Age:             g.intBetween(profile.MinAge, profile.MaxAge),
			Weight:          round(g.floatBetween(profile.MinWeight, profile.MaxWeight), 1),
			HealthStatus:    g.healthStatus(),
			LastHealthCheck: now.AddDate(0, 0, -g.rng.IntN(30)).UTC().Truncate(time.Second),
			NextVaccination: now.AddDate(0, 0, g.intBetween(1, 90)).UTC().Truncate(time.Second),
			CreatedAt:       created,
			UpdatedAt:       created,
		})
	}
	return animals, nil
}

// GenerateLivestockHealth returns days+1 daily health records per animal, oldest first
func (g *Generator) GenerateLivestockHealth(livestock []models.Livestock, days int) ([]models.LivestockHealthRecord, error) {
	if err := validateCount("days", days); err != nil {
		return nil, err
	}

	now := g.now().UTC().Truncate(time.Second)
	records := make([]models.LivestockHealthRecord, 0, len(livestock)*(days+1))
	for _, animal := range livestock {
		for d := days; d >= 0; d-- {
			ts := now.AddDate(0, 0, -d)
			season := envmodel.SeasonFor(ts)
			records = append(records, models.LivestockHealthRecord{
				ID:            g.ids.NewID(PrefixLivestockHealth),
				AnimalID:      animal.ID,
				Temperature:   g.model.Value(g.rng, envmodel.AnimalTemperature(animal.Type, animal.HealthStatus)),
				ActivityLevel: g.model.Value(g.rng, envmodel.ActivityLevel(animal.HealthStatus)),
				FoodIntake:    g.model.Value(g.rng, envmodel.FoodIntake(animal.Type, season)),
				WaterIntake:   g.model.Value(g.rng, envmodel.WaterIntake(animal.Type, season)),
				Notes:         pick(g, params.LivestockNotes),
				Timestamp:     ts,
			})
		}
	}
	return records, nil
}
