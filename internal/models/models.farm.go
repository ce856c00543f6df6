// FilePath: internal/models/models.farm.go
package models

import "time"

type Farm struct {
	ID        string    `json:"id" db:"id"`
	Name      string    `json:"name" db:"name"`
	Location  string    `json:"location" db:"location"`
	Size      float64   `json:"size" db:"size"` // hectares
	CropType  Crop      `json:"cropType" db:"crop_type"`
	OwnerID   string    `json:"ownerId" db:"owner_id"`
	Province  Province  `json:"province" db:"province"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at"`
}

// PestDetection is a simulated result of scanning a crop photo
type PestDetection struct {
	ID             string    `json:"id" db:"id"`
	FarmID         string    `json:"farmId" db:"farm_id"`
	ImageURL       string    `json:"imageUrl" db:"image_url"`
	DetectedPest   Pest      `json:"detectedPest" db:"detected_pest"`
	Confidence     float64   `json:"confidence" db:"confidence"` // percent, 60-100
	Recommendation string    `json:"recommendation" db:"recommendation"`
	Timestamp      time.Time `json:"timestamp" db:"timestamp"`
}
