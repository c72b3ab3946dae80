package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/scene-keeper/internal/cache"
	"github.com/MKhiriev/scene-keeper/internal/validators"
	"github.com/MKhiriev/scene-keeper/models"
)

// SceneServiceWrapper defines middleware composition for SceneService.
// Implementations wrap an existing SceneService to add behavior such as
// validation.
type SceneServiceWrapper interface {
	Wrap(SceneService) SceneService
}

// SceneValidationService rejects malformed requests before they reach the
// wrapped SceneService.
type SceneValidationService struct {
	inner     SceneService
	validator validators.Validator
}

func NewSceneValidationService() SceneServiceWrapper {
	return &SceneValidationService{
		validator: validators.NewSceneValidator(),
	}
}

func (v *SceneValidationService) Save(
	ctx context.Context,
	room models.RoomIdentity,
	connID models.ConnectionID,
	elements models.Elements,
	mctx models.MergeContext,
) (models.SaveResult, error) {
	// a missing room is a valid no-op save, only a present id is checked
	if room.RoomID != "" {
		if err := v.validator.Validate(ctx, room, validators.FieldRoomID); err != nil {
			return models.SaveResult{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
		}
	}
	if err := v.validator.Validate(ctx, models.SaveSceneRequest{Elements: elements}); err != nil {
		return models.SaveResult{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.Save(ctx, room, connID, elements, mctx)
}

func (v *SceneValidationService) Load(ctx context.Context, room models.RoomIdentity, connID models.ConnectionID) (models.Elements, error) {
	if err := v.validator.Validate(ctx, room); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.Load(ctx, room, connID)
}

func (v *SceneValidationService) IsSaved(portal cache.Portal, elements models.Elements) bool {
	return v.inner.IsSaved(portal, elements)
}

func (v *SceneValidationService) ForgetConnection(connID models.ConnectionID) {
	v.inner.ForgetConnection(connID)
}

func (v *SceneValidationService) Wrap(wrapped SceneService) SceneService {
	v.inner = wrapped
	return v
}
