package service

import (
	"context"
	"fmt"
	"strconv"

	"github.com/itsatony/agrisynth/internal/errors"
	"github.com/itsatony/agrisynth/internal/generator"
	"github.com/itsatony/agrisynth/internal/models"
	nuts "github.com/vaudience/go-nuts"
)

// Collection names one generated record collection, as used in request paths
type Collection string

const (
	CollectionUsers           Collection = "users"
	CollectionFarms           Collection = "farms"
	CollectionSensorData      Collection = "sensor-data"
	CollectionPestDetections  Collection = "pest-detections"
	CollectionLivestock       Collection = "livestock"
	CollectionLivestockHealth Collection = "livestock-health"
	CollectionProducts        Collection = "products"
	CollectionOrders          Collection = "orders"
)

// Collections lists every collection in generation order
var Collections = []Collection{
	CollectionUsers,
	CollectionFarms,
	CollectionSensorData,
	CollectionPestDetections,
	CollectionLivestock,
	CollectionLivestockHealth,
	CollectionProducts,
	CollectionOrders,
}

// ParseCollection validates a collection name
func ParseCollection(s string) (Collection, error) {
	for _, c := range Collections {
		if string(c) == s {
			return c, nil
		}
	}
	return "", errors.NewNotFoundError(fmt.Sprintf("unknown collection %q", s), nil)
}

// GenerateResult is one generated collection
type GenerateResult struct {
	Collection Collection  `json:"collection"`
	Seed       *uint64     `json:"seed,omitempty"`
	Count      int         `json:"count"`
	Items      interface{} `json:"items"`
}

// generateRequest is GenerateParams with defaults applied
type generateRequest struct {
	count   int
	days    int
	parents int
}

// records is the number of records a request for collection produces
func (r generateRequest) records(collection Collection) int {
	switch collection {
	case CollectionSensorData, CollectionLivestockHealth:
		return r.count * (r.days + 1)
	}
	return r.count
}

func (s *Service) resolveParams(collection Collection, p models.GenerateParams) (generateRequest, error) {
	req := generateRequest{
		count:   intOr(p.Count, DefaultCount),
		days:    intOr(p.Days, DefaultDays),
		parents: intOr(p.Parents, DefaultParents),
	}
	if req.count < 0 || req.days < 0 || req.parents < 0 {
		return req, errors.NewValidationError("count, days and parents must not be negative", nil)
	}
	if req.count > s.opts.MaxCount || req.parents > s.opts.MaxCount {
		return req, errors.NewValidationError(fmt.Sprintf("count and parents must not exceed %d", s.opts.MaxCount), nil)
	}
	if req.days > s.opts.MaxDays {
		return req, errors.NewValidationError(fmt.Sprintf("days must not exceed %d", s.opts.MaxDays), nil)
	}
	if n := req.records(collection); n > s.opts.MaxRecords {
		return req, errors.NewValidationError(fmt.Sprintf("request would produce %d records, limit is %d", n, s.opts.MaxRecords), nil)
	}
	if p.As != "" && !p.As.Valid() {
		return req, errors.NewValidationError(fmt.Sprintf("unknown role %q", p.As), nil)
	}
	return req, nil
}

// Generate produces one collection. Parent records are generated on the fly
// from the same generator and are not part of the result. For sensor-data the
// count is the number of farms, each carrying days+1 daily readings; for
// livestock-health it is the number of animals, each carrying days+1 records.
func (s *Service) Generate(ctx context.Context, collection Collection, p models.GenerateParams) (*GenerateResult, error) {
	req, err := s.resolveParams(collection, p)
	if err != nil {
		return nil, err
	}

	g := s.newGenerator(p.Seed)
	items, n, err := s.generate(g, collection, req)
	if err != nil {
		return nil, generatorError(err)
	}

	if collection == CollectionUsers {
		roles := GetViewerRoles(ctx)
		if p.As != "" {
			roles = []string{string(p.As)}
		}
		users, err := ViewUsers(items.([]models.User), roles)
		if err != nil {
			return nil, err
		}
		items = users
	}

	result := &GenerateResult{Collection: collection, Count: n, Items: items}
	labels := map[string]string{"collection": string(collection), "count": strconv.Itoa(n)}
	if g.Seeded() {
		seed := g.Seed()
		result.Seed = &seed
		labels["seed"] = strconv.FormatUint(seed, 10)
	}
	s.record(EventGenerated, labels)
	nuts.L.Infof("[Service] Generated %d %s", n, collection)
	return result, nil
}

func (s *Service) generate(g *generator.Generator, collection Collection, req generateRequest) (interface{}, int, error) {
	switch collection {
	case CollectionUsers:
		users, err := g.GenerateUsers(req.count)
		return users, len(users), err

	case CollectionFarms:
		farms, err := farmsWithOwners(g, req.parents, req.count)
		return farms, len(farms), err

	case CollectionSensorData:
		farms, err := farmsWithOwners(g, req.parents, req.count)
		if err != nil {
			return nil, 0, err
		}
		readings, err := g.GenerateSensorData(farms, req.days)
		return readings, len(readings), err

	case CollectionPestDetections:
		farms, err := farmsWithOwners(g, req.parents, req.parents)
		if err != nil {
			return nil, 0, err
		}
		pests, err := g.GeneratePestDetections(farms, req.count)
		return pests, len(pests), err

	case CollectionLivestock:
		farms, err := farmsWithOwners(g, req.parents, req.parents)
		if err != nil {
			return nil, 0, err
		}
		animals, err := g.GenerateLivestock(farms, req.count)
		return animals, len(animals), err

	case CollectionLivestockHealth:
		farms, err := farmsWithOwners(g, req.parents, req.parents)
		if err != nil {
			return nil, 0, err
		}
		animals, err := g.GenerateLivestock(farms, req.count)
		if err != nil {
			return nil, 0, err
		}
		records, err := g.GenerateLivestockHealth(animals, req.days)
		return records, len(records), err

	case CollectionProducts:
		vendors, err := g.GenerateUsersWithRole(models.RoleVendor, req.parents)
		if err != nil {
			return nil, 0, err
		}
		products, err := g.GenerateProducts(vendors, req.count)
		return products, len(products), err

	case CollectionOrders:
		vendors, err := g.GenerateUsersWithRole(models.RoleVendor, req.parents)
		if err != nil {
			return nil, 0, err
		}
		products, err := g.GenerateProducts(vendors, req.parents)
		if err != nil {
			return nil, 0, err
		}
		buyers, err := g.GenerateUsersWithRole(models.RoleBuyer, req.parents)
		if err != nil {
			return nil, 0, err
		}
		orders, err := g.GenerateOrders(buyers, products, req.count)
		return orders, len(orders), err
	}
	return nil, 0, errors.NewNotFoundError(fmt.Sprintf("unknown collection %q", collection), nil)
}

func farmsWithOwners(g *generator.Generator, owners, count int) ([]models.Farm, error) {
	farmers, err := g.GenerateUsersWithRole(models.RoleFarmer, owners)
	if err != nil {
		return nil, err
	}
	return g.GenerateFarms(farmers, count)
}
