package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amlds-dept/activity-reporter/internal/models"
	appErrors "github.com/amlds-dept/activity-reporter/pkg/errors"
)

type photoStoreStub struct {
	replacedID   int64
	replacedRows []models.ActivityPhoto
}

func (s *photoStoreStub) Replace(ctx context.Context, activityID int64, photos []models.ActivityPhoto) error {
	s.replacedID = activityID
	s.replacedRows = photos
	return nil
}

func (s *photoStoreStub) ListByActivity(ctx context.Context, activityID int64) ([]models.ActivityPhoto, error) {
	return s.replacedRows, nil
}

func TestPhotoServiceSaveAcceptsFewerThanMinimum(t *testing.T) {
	store := &photoStoreStub{}
	svc := NewPhotoService(store, nil, 0, nil)

	// A single photo saves fine; the two-photo floor only gates export.
	err := svc.Save(context.Background(), 6, []models.ActivityPhoto{{PhotoPath: "activities/6/a.jpg"}})
	require.NoError(t, err)
	assert.Len(t, store.replacedRows, 1)
}

func TestPhotoServiceSaveCapsRows(t *testing.T) {
	svc := NewPhotoService(&photoStoreStub{}, nil, 0, nil)

	photos := make([]models.ActivityPhoto, models.MaxPhotos+1)
	for i := range photos {
		photos[i] = models.ActivityPhoto{PhotoPath: "a.jpg"}
	}
	err := svc.Save(context.Background(), 6, photos)
	assert.True(t, appErrors.IsKind(err, appErrors.KindValidation))
}

func TestPhotoServiceSaveRowValidation(t *testing.T) {
	svc := NewPhotoService(&photoStoreStub{}, nil, 0, nil)

	err := svc.Save(context.Background(), 6, []models.ActivityPhoto{{}})
	require.Error(t, err)

	var appErr *appErrors.Error
	require.ErrorAs(t, err, &appErr)
	assert.Contains(t, appErr.Details, "Photo 1: Photo path is required")
}

func TestPhotoServiceAttachPhoto(t *testing.T) {
	importer := &importerStub{}
	svc := NewPhotoService(&photoStoreStub{}, importer, 0, nil)

	photo, err := svc.AttachPhoto(6, "/tmp/event.jpg", "", "Inauguration")
	require.NoError(t, err)
	assert.Equal(t, int64(6), photo.ActivityID)
	assert.Equal(t, models.PhotoActivity, photo.PhotoType)
	assert.Equal(t, "Inauguration", photo.Caption)
	assert.NotEmpty(t, photo.PhotoPath)
}
