package postgres

import (
	"context"

	"openshop/internal/domain/entity"
	domainerrors "openshop/internal/domain/errors"
	"openshop/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

func orderImages(db *gorm.DB) *gorm.DB {
	return db.Order("created_at ASC, id ASC")
}

// replaceImages swaps the full image set of an owner.
func replaceImages(ctx context.Context, db *gorm.DB, ownerID uuid.UUID, ownerType string, images []*entity.Image) error {
	if err := deleteImages(ctx, db, ownerID, ownerType); err != nil {
		return err
	}
	if len(images) == 0 {
		return nil
	}

	imageMs := fromImagesDomain(images)
	for _, imageM := range imageMs {
		imageM.ID = uuid.Nil
		imageM.OwnerID = ownerID
		imageM.OwnerType = ownerType
	}
	if err := db.WithContext(ctx).Create(&imageMs).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to save images")
	}
	copyImageIDs(images, imageMs)

	return nil
}

func deleteImages(ctx context.Context, db *gorm.DB, ownerID uuid.UUID, ownerType string) error {
	err := db.WithContext(ctx).
		Where("owner_id = ? AND owner_type = ?", ownerID, ownerType).
		Delete(&model.ImageModel{}).Error
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete images")
	}

	return nil
}

func copyImageIDs(images []*entity.Image, imageMs []*model.ImageModel) {
	for i := range images {
		if i < len(imageMs) {
			images[i].ID = imageMs[i].ID
		}
	}
}

func toImagesDomain(data []*model.ImageModel) []*entity.Image {
	images := make([]*entity.Image, 0, len(data))
	for _, imageM := range data {
		images = append(images, &entity.Image{ID: imageM.ID, URL: imageM.URL})
	}

	return images
}

func fromImagesDomain(data []*entity.Image) []*model.ImageModel {
	imageMs := make([]*model.ImageModel, 0, len(data))
	for _, image := range data {
		imageMs = append(imageMs, &model.ImageModel{ID: image.ID, URL: image.URL})
	}

	return imageMs
}
