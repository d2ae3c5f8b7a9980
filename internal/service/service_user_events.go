package service

import (
	"context"
	"time"

	"github.com/MKhiriev/go-profile-editor/internal/events"
	"github.com/MKhiriev/go-profile-editor/internal/logger"
	"github.com/MKhiriev/go-profile-editor/models"
)

// UserEventsService publishes one [models.ProfileEvent] per successful write.
// A failed publish is logged; the write itself has already happened.
type UserEventsService struct {
	inner     UserService
	publisher events.Publisher
	now       func() time.Time
}

func NewUserEventsService(publisher events.Publisher) UserServiceWrapper {
	return &UserEventsService{
		publisher: publisher,
		now:       time.Now,
	}
}

func (e *UserEventsService) GetProfile(ctx context.Context, userID string) (models.Profile, error) {
	return e.inner.GetProfile(ctx, userID)
}

func (e *UserEventsService) GetPlatforms(ctx context.Context, userID string) ([]models.Platform, error) {
	return e.inner.GetPlatforms(ctx, userID)
}

func (e *UserEventsService) GetProfilePicture(ctx context.Context, userID string) (string, error) {
	return e.inner.GetProfilePicture(ctx, userID)
}

func (e *UserEventsService) UpdateProfile(ctx context.Context, userID string, update models.ProfileUpdate) error {
	if err := e.inner.UpdateProfile(ctx, userID, update); err != nil {
		return err
	}
	e.publish(ctx, models.ProfileEvent{
		Type:   models.ProfileUpdated,
		UserID: userID,
		Fields: update.Fields(),
	})
	return nil
}

func (e *UserEventsService) ReplacePlatforms(ctx context.Context, userID string, req models.PlatformsRequest) error {
	if err := e.inner.ReplacePlatforms(ctx, userID, req); err != nil {
		return err
	}
	e.publish(ctx, models.ProfileEvent{
		Type:      models.PlatformsUpdated,
		UserID:    userID,
		Platforms: req.Platforms,
	})
	return nil
}

func (e *UserEventsService) SaveProfile(ctx context.Context, userID string, req models.ProfileSaveRequest) error {
	if err := e.inner.SaveProfile(ctx, userID, req); err != nil {
		return err
	}
	e.publish(ctx, models.ProfileEvent{
		Type:      models.ProfileSaved,
		UserID:    userID,
		Fields:    req.Fields(),
		Platforms: req.Platforms,
	})
	return nil
}

func (e *UserEventsService) UploadPicture(ctx context.Context, userID string, picture models.PictureUpload) (string, error) {
	reference, err := e.inner.UploadPicture(ctx, userID, picture)
	if err != nil {
		return "", err
	}
	e.publish(ctx, models.ProfileEvent{
		Type:           models.PictureUploaded,
		UserID:         userID,
		Fields:         []string{"profile_picture"},
		ProfilePicture: reference,
	})
	return reference, nil
}

func (e *UserEventsService) Wrap(wrapper UserService) UserService {
	e.inner = wrapper
	return e
}

func (e *UserEventsService) publish(ctx context.Context, event models.ProfileEvent) {
	event.OccurredAt = e.now().UTC()

	if err := e.publisher.Publish(ctx, event); err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "*UserEventsService.publish").
			Str("user_id", event.UserID).
			Str("type", string(event.Type)).
			Msg("profile event was not published")
	}
}
