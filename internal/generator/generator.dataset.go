package generator

import (
	"github.com/itsatony/agrisynth/internal/models"
)

// DatasetConfig sets the size of every collection of a dataset
type DatasetConfig struct {
	Users               int `json:"users"`
	Farms               int `json:"farms"`
	SensorDays          int `json:"sensorDays"`
	PestDetections      int `json:"pestDetections"`
	Livestock           int `json:"livestock"`
	LivestockHealthDays int `json:"livestockHealthDays"`
	Products            int `json:"products"`
	Orders              int `json:"orders"`
}

// DefaultDatasetConfig returns the sizes used to seed the demo dashboards
func DefaultDatasetConfig() DatasetConfig {
	return DatasetConfig{
		Users:               50,
		Farms:               30,
		SensorDays:          30,
		PestDetections:      20,
		Livestock:           40,
		LivestockHealthDays: 7,
		Products:            40,
		Orders:              60,
	}
}

// Validate rejects negative sizes
func (c DatasetConfig) Validate() error {
	checks := []struct {
		name string
		n    int
	}{
		{"users", c.Users},
		{"farms", c.Farms},
		{"sensorDays", c.SensorDays},
		{"pestDetections", c.PestDetections},
		{"livestock", c.Livestock},
		{"livestockHealthDays", c.LivestockHealthDays},
		{"products", c.Products},
		{"orders", c.Orders},
	}
	for _, chk := range checks {
		if err := validateCount(chk.name, chk.n); err != nil {
			return err
		}
	}
	return nil
}

// GenerateDataset runs the full seeding pass:
// users, farms, then sensor data, pests, livestock and products, then health records and orders.
// Missing farmers, vendors or buyers are topped up, and a farm or product is added
// when dependents are requested without one, so parents are never empty.
func (g *Generator) GenerateDataset(cfg DatasetConfig) (*models.Dataset, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if cfg.Farms == 0 && (cfg.PestDetections > 0 || cfg.Livestock > 0) {
		cfg.Farms = 1
	}
	if cfg.Products == 0 && cfg.Orders > 0 {
		cfg.Products = 1
	}

	users, err := g.GenerateUsers(cfg.Users)
	if err != nil {
		return nil, err
	}
	farmers, err := g.topUp(&users, models.RoleFarmer, cfg.Farms)
	if err != nil {
		return nil, err
	}
	vendors, err := g.topUp(&users, models.RoleVendor, cfg.Products)
	if err != nil {
		return nil, err
	}
	buyers, err := g.topUp(&users, models.RoleBuyer, cfg.Orders)
	if err != nil {
		return nil, err
	}

	ds := &models.Dataset{
		ID:          g.ids.NewID(PrefixDataset),
		Seed:        g.seed,
		GeneratedAt: g.now().UTC(),
		Users:       users,
	}
	if ds.Farms, err = g.GenerateFarms(farmers, cfg.Farms); err != nil {
		return nil, err
	}
	if ds.SensorReadings, err = g.GenerateSensorData(ds.Farms, cfg.SensorDays); err != nil {
		return nil, err
	}
	if ds.PestDetections, err = g.GeneratePestDetections(ds.Farms, cfg.PestDetections); err != nil {
		return nil, err
	}
	if ds.Livestock, err = g.GenerateLivestock(ds.Farms, cfg.Livestock); err != nil {
		return nil, err
	}
	if ds.LivestockHealth, err = g.GenerateLivestockHealth(ds.Livestock, cfg.LivestockHealthDays); err != nil {
		return nil, err
	}
	if ds.Products, err = g.GenerateProducts(vendors, cfg.Products); err != nil {
		return nil, err
	}
	if ds.Orders, err = g.GenerateOrders(buyers, ds.Products, cfg.Orders); err != nil {
		return nil, err
	}
	return ds, nil
}

// topUp returns the users of role, appending one generated user when dependents
// are requested and none exist
func (g *Generator) topUp(users *[]models.User, role models.Role, dependents int) ([]models.User, error) {
	matching := models.FilterByRole(*users, role)
	if dependents == 0 || len(matching) > 0 {
		return matching, nil
	}
	extra, err := g.GenerateUsersWithRole(role, 1)
	if err != nil {
		return nil, err
	}
	*users = append(*users, extra...)
	return extra, nil
}
