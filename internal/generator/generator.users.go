package generator

import (
	"fmt"
	"strings"

	"github.com/itsatony/agrisynth/internal/models"
	"github.com/itsatony/agrisynth/internal/params"
)

// GenerateUsers returns count users with uniformly drawn roles
func (g *Generator) GenerateUsers(count int) ([]models.User, error) {
	if err := validateCount("count", count); err != nil {
		return nil, err
	}
	users := make([]models.User, 0, count)
	for i := 0; i < count; i++ {
		users = append(users, g.newUser(pick(g, models.Roles)))
	}
	return users, nil
}

// GenerateUsersWithRole returns count users of one role
func (g *Generator) GenerateUsersWithRole(role models.Role, count int) ([]models.User, error) {
	if err := validateCount("count", count); err != nil {
		return nil, err
	}
	if !role.Valid() {
		return nil, fmt.Errorf("%w: unknown role %q", ErrInvalidArgument, role)
	}
	users := make([]models.User, 0, count)
	for i := 0; i < count; i++ {
		users = append(users, g.newUser(role))
	}
	return users, nil
}

func (g *Generator) newUser(role models.Role) models.User {
	first := pick(g, params.FirstNames)
	last := pick(g, params.LastNames)
	province := pick(g, models.Provinces)
	city := pick(g, params.ProvinceProfile(province).Cities)
	created := g.createdAt(g.now())

	return models.User{
		ID:        g.ids.NewID(PrefixUser),
		Email:     fmt.Sprintf("%s.%s%d@%s", strings.ToLower(first), strings.ToLower(last), g.rng.IntN(100), pick(g, params.EmailDomains)),
		Name:      first + " " + last,
		Role:      role,
		Phone:     fmt.Sprintf("+260 9%d %03d %04d", g.intBetween(5, 7), g.rng.IntN(1000), g.rng.IntN(10000)),
		Address:   fmt.Sprintf("Plot %d, %s", g.intBetween(100, 9999), pick(g, params.StreetNames)),
		Province:  province,
		City:      city,
		CreatedAt: created,
		UpdatedAt: created,
	}
}
