package service

import (
	"github.com/itsatony/struccy"
	nuts "github.com/vaudience/go-nuts"

	"github.com/itsatony/agrisynth/internal/errors"
	"github.com/itsatony/agrisynth/internal/models"
)

// ViewUsers renders users for the given viewer roles. Fields tagged with
// readxs are blanked unless one of the roles may read them.
func ViewUsers(users []models.User, roles []string) ([]models.User, error) {
	out := make([]models.User, 0, len(users))
	for i := range users {
		filtered, err := viewUser(&users[i], roles)
		if err != nil {
			return nil, err
		}
		out = append(out, *filtered)
	}
	return out, nil
}

func viewUser(user *models.User, roles []string) (*models.User, error) {
	fields, err := struccy.StructToMapFieldsWithReadXS(user, roles)
	if err != nil {
		nuts.L.Warnf("[Service] Failed to filter user %s: %v", user.ID, err)
		return nil, errors.NewInternalError("failed to filter user fields", err)
	}

	filtered := &models.User{}
	if _, err := struccy.MergeMapStringFieldsToStruct(filtered, fields, roles); err != nil {
		return nil, errors.NewInternalError("failed to build filtered user", err)
	}
	return filtered, nil
}
