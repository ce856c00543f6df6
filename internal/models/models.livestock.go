// FilePath: internal/models/models.livestock.go
package models

import "time"

type Livestock struct {
	ID              string       `json:"id" db:"id"`
	FarmID          string       `json:"farmId" db:"farm_id"`
	Name            string       `json:"name" db:"name"`
	Type            AnimalType   `json:"type" db:"type"`
	Breed           string       `json:"breed" db:"breed"`
	Age             int          `json:"age" db:"age"`       // years
	Weight          float64      `json:"weight" db:"weight"` // kg
	HealthStatus    HealthStatus `json:"healthStatus" db:"health_status"`
	LastHealthCheck time.Time    `json:"lastHealthCheck" db:"last_health_check"`
	NextVaccination time.Time    `json:"nextVaccination" db:"next_vaccination"`
	CreatedAt       time.Time    `json:"createdAt" db:"created_at"`
	UpdatedAt       time.Time    `json:"updatedAt" db:"updated_at"`
}

// LivestockHealthRecord is one daily vitals entry of an animal
type LivestockHealthRecord struct {
	ID            string    `json:"id" db:"id"`
	AnimalID      string    `json:"animalId" db:"animal_id"`
	Temperature   float64   `json:"temperature" db:"temperature"`      // degrees Celsius
	ActivityLevel float64   `json:"activityLevel" db:"activity_level"` // percent, 60-100
	FoodIntake    float64   `json:"foodIntake" db:"food_intake"`       // kg/day
	WaterIntake   float64   `json:"waterIntake" db:"water_intake"`     // litres/day
	Notes         string    `json:"notes" db:"notes"`
	Timestamp     time.Time `json:"timestamp" db:"timestamp"`
}
