// FilePath: internal/models/models.composite.go
package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Dataset bundles every collection produced by one generation run
type Dataset struct {
	ID              string                  `json:"id"`
	Seed            uint64                  `json:"seed"`
	GeneratedAt     time.Time               `json:"generatedAt"`
	ExpiresAt       time.Time               `json:"expiresAt,omitempty"`
	Users           []User                  `json:"users"`
	Farms           []Farm                  `json:"farms"`
	SensorReadings  []SensorReading         `json:"sensorReadings"`
	PestDetections  []PestDetection         `json:"pestDetections"`
	Livestock       []Livestock             `json:"livestock"`
	LivestockHealth []LivestockHealthRecord `json:"livestockHealth"`
	Products        []Product               `json:"products"`
	Orders          []Order                 `json:"orders"`
}

// DatasetInfo is the lightweight listing view of a stored dataset
type DatasetInfo struct {
	ID          string         `json:"id"`
	Seed        uint64         `json:"seed"`
	GeneratedAt time.Time      `json:"generatedAt"`
	ExpiresAt   time.Time      `json:"expiresAt,omitempty"`
	Counts      map[string]int `json:"counts"`
}

// DatasetSummary holds the headline figures of the demo dashboards
type DatasetSummary struct {
	Counts          map[string]int             `json:"counts"`
	UsersByRole     map[Role]int               `json:"usersByRole"`
	FarmsByProvince map[Province]int           `json:"farmsByProvince"`
	HectaresByCrop  map[Crop]float64           `json:"hectaresByCrop"`
	SensorMetrics   map[string]MetricAggregate `json:"sensorMetrics"`
	LivestockHealth map[HealthStatus]int       `json:"livestockHealth"`
	RevenueByStatus map[OrderStatus]string     `json:"revenueByStatus"`
	TotalRevenue    decimal.Decimal            `json:"totalRevenue"`
	Currency        string                     `json:"currency"`
	PestAlerts      int                        `json:"pestAlerts"` // detections with confidence >= 85
}

// Counts returns the number of records per collection
func (d *Dataset) Counts() map[string]int {
	return map[string]int{
		"users":           len(d.Users),
		"farms":           len(d.Farms),
		"sensorReadings":  len(d.SensorReadings),
		"pestDetections":  len(d.PestDetections),
		"livestock":       len(d.Livestock),
		"livestockHealth": len(d.LivestockHealth),
		"products":        len(d.Products),
		"orders":          len(d.Orders),
	}
}

// Info returns the listing view of the dataset
func (d *Dataset) Info() DatasetInfo {
	return DatasetInfo{
		ID:          d.ID,
		Seed:        d.Seed,
		GeneratedAt: d.GeneratedAt,
		ExpiresAt:   d.ExpiresAt,
		Counts:      d.Counts(),
	}
}

// Summary computes the dashboard headline figures
func (d *Dataset) Summary() DatasetSummary {
	s := DatasetSummary{
		Counts:          d.Counts(),
		UsersByRole:     make(map[Role]int),
		FarmsByProvince: make(map[Province]int),
		HectaresByCrop:  make(map[Crop]float64),
		SensorMetrics:   make(map[string]MetricAggregate),
		LivestockHealth: make(map[HealthStatus]int),
		RevenueByStatus: make(map[OrderStatus]string),
		Currency:        CurrencyCode,
	}

	for _, u := range d.Users {
		s.UsersByRole[u.Role]++
	}
	for _, f := range d.Farms {
		s.FarmsByProvince[f.Province]++
		s.HectaresByCrop[f.CropType] += f.Size
	}

	metrics := map[string]*MetricAggregate{}
	add := func(name string, v float64) {
		m, ok := metrics[name]
		if !ok {
			m = &MetricAggregate{Metric: name}
			metrics[name] = m
		}
		m.Add(v)
	}
	for _, r := range d.SensorReadings {
		add("soilMoisture", r.SoilMoisture)
		add("temperature", r.Temperature)
		add("humidity", r.Humidity)
		add("phLevel", r.PhLevel)
		add("nitrogen", r.Nitrogen)
		add("phosphorus", r.Phosphorus)
		add("potassium", r.Potassium)
	}
	for name, m := range metrics {
		s.SensorMetrics[name] = *m
	}

	for _, l := range d.Livestock {
		s.LivestockHealth[l.HealthStatus]++
	}
	for _, p := range d.PestDetections {
		if p.Confidence >= 85 {
			s.PestAlerts++
		}
	}

	byStatus := make(map[OrderStatus]decimal.Decimal)
	total := decimal.Zero
	for _, o := range d.Orders {
		byStatus[o.Status] = byStatus[o.Status].Add(o.TotalPrice)
		total = total.Add(o.TotalPrice)
	}
	for status, amount := range byStatus {
		s.RevenueByStatus[status] = FormatPrice(amount)
	}
	s.TotalRevenue = total
	return s
}
