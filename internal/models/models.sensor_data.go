// FilePath: internal/models/models.sensor_data.go
package models

import "time"

// SensorReading represents one daily soil and climate measurement of a farm
type SensorReading struct {
	ID           string    `json:"id" db:"id"`
	FarmID       string    `json:"farmId" db:"farm_id"`
	SoilMoisture float64   `json:"soilMoisture" db:"soil_moisture"` // percent
	Temperature  float64   `json:"temperature" db:"temperature"`    // degrees Celsius
	Humidity     float64   `json:"humidity" db:"humidity"`          // percent
	PhLevel      float64   `json:"phLevel" db:"ph_level"`
	Nitrogen     float64   `json:"nitrogen" db:"nitrogen"`     // mg/kg
	Phosphorus   float64   `json:"phosphorus" db:"phosphorus"` // mg/kg
	Potassium    float64   `json:"potassium" db:"potassium"`   // mg/kg
	Timestamp    time.Time `json:"timestamp" db:"timestamp"`
}

// MetricAggregate represents aggregated values of one metric
type MetricAggregate struct {
	Metric string  `json:"metric"`
	Min    float64 `json:"min"`
	Max    float64 `json:"max"`
	Avg    float64 `json:"avg"`
	Count  int     `json:"count"`
}

// Add folds a value into the aggregate
func (a *MetricAggregate) Add(v float64) {
	if a.Count == 0 || v < a.Min {
		a.Min = v
	}
	if a.Count == 0 || v > a.Max {
		a.Max = v
	}
	a.Avg = (a.Avg*float64(a.Count) + v) / float64(a.Count+1)
	a.Count++
}
