package postgres

import (
	"openshop/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// Migrate creates or alters every table and makes sure the seed roles exist.
func Migrate(db *gorm.DB, seedRoles []string) error {
	if err := db.AutoMigrate(model.All()...); err != nil {
		return errors.Wrap(err, "auto migrate")
	}

	for _, name := range seedRoles {
		role := model.RoleModel{Name: name}
		if err := db.Where(model.RoleModel{Name: name}).FirstOrCreate(&role).Error; err != nil {
			return errors.Wrapf(err, "seed role %s", name)
		}
	}

	return nil
}
