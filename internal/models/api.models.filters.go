package models

// GenerateParams defines the query options of the generate endpoints.
// Nil fields fall back to the service defaults.
type GenerateParams struct {
	Count   *int    `schema:"count" json:"count,omitempty"`
	Days    *int    `schema:"days" json:"days,omitempty"`
	Parents *int    `schema:"parents" json:"parents,omitempty"` // size of the parent pool generated on the fly
	Seed    *uint64 `schema:"seed" json:"seed,omitempty"`
	As      Role    `schema:"as" json:"as,omitempty"`
}

// DatasetParams defines the body of a dataset snapshot request.
// Nil sizes fall back to the configured dataset sizes.
type DatasetParams struct {
	Users               *int    `json:"users,omitempty"`
	Farms               *int    `json:"farms,omitempty"`
	SensorDays          *int    `json:"sensorDays,omitempty"`
	PestDetections      *int    `json:"pestDetections,omitempty"`
	Livestock           *int    `json:"livestock,omitempty"`
	LivestockHealthDays *int    `json:"livestockHealthDays,omitempty"`
	Products            *int    `json:"products,omitempty"`
	Orders              *int    `json:"orders,omitempty"`
	Seed                *uint64 `json:"seed,omitempty"`
}

// ViewParams defines the query options when reading a stored dataset
type ViewParams struct {
	As     Role `schema:"as" json:"as,omitempty"`
	Offset int  `schema:"offset" json:"offset"`
	Limit  int  `schema:"limit" json:"limit"`
}
