package validators

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/scene-keeper/models"
)

func TestSceneValidator_Room(t *testing.T) {
	v := NewSceneValidator()
	ctx := context.Background()

	tests := []struct {
		name    string
		room    models.RoomIdentity
		fields  []string
		wantErr error
	}{
		{name: "valid", room: models.RoomIdentity{RoomID: "abc123", RoomKey: "k"}},
		{name: "empty id", room: models.RoomIdentity{RoomKey: "k"}, wantErr: ErrInvalidRoomID},
		{name: "slash in id", room: models.RoomIdentity{RoomID: "a/b", RoomKey: "k"}, wantErr: ErrInvalidRoomID},
		{name: "long id", room: models.RoomIdentity{RoomID: strings.Repeat("a", MaxRoomIDLength+1), RoomKey: "k"}, wantErr: ErrInvalidRoomID},
		{name: "no key", room: models.RoomIdentity{RoomID: "abc"}, wantErr: ErrEmptyRoomKey},
		{name: "id only", room: models.RoomIdentity{RoomID: "abc"}, fields: []string{FieldRoomID}},
		{name: "unknown field", room: models.RoomIdentity{RoomID: "abc"}, fields: []string{"nope"}, wantErr: ErrUnknownField},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(ctx, tt.room, tt.fields...)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}

	assert.NoError(t, v.Validate(ctx, &models.RoomIdentity{RoomID: "abc", RoomKey: "k"}))
}

func TestSceneValidator_SaveScene(t *testing.T) {
	v := NewSceneValidator()
	ctx := context.Background()

	assert.NoError(t, v.Validate(ctx, models.SaveSceneRequest{}))
	assert.NoError(t, v.Validate(ctx, &models.SaveSceneRequest{Elements: models.Elements{{ID: "a"}}}))

	err := v.Validate(ctx, models.SaveSceneRequest{Elements: models.Elements{{ID: "a"}, {}}})
	require.ErrorIs(t, err, ErrInvalidElementID)
	assert.Contains(t, err.Error(), "index 1")
}

func TestSceneValidator_SaveFiles(t *testing.T) {
	v := NewSceneValidator()
	ctx := context.Background()
	valid := models.SaveFilesRequest{
		Prefix: "files/rooms/abc",
		Files:  []models.FileUpload{{ID: "f1", Data: []byte{1}}},
	}

	assert.NoError(t, v.Validate(ctx, valid))
	assert.NoError(t, v.Validate(ctx, &valid))

	tests := []struct {
		name    string
		mutate  func(r *models.SaveFilesRequest)
		wantErr error
	}{
		{name: "empty prefix", mutate: func(r *models.SaveFilesRequest) { r.Prefix = "" }, wantErr: ErrInvalidPrefix},
		{name: "trailing slash", mutate: func(r *models.SaveFilesRequest) { r.Prefix = "files/" }, wantErr: ErrInvalidPrefix},
		{name: "dot dot", mutate: func(r *models.SaveFilesRequest) { r.Prefix = "files/../x" }, wantErr: ErrInvalidPrefix},
		{name: "no files", mutate: func(r *models.SaveFilesRequest) { r.Files = nil }, wantErr: ErrEmptyFiles},
		{name: "empty id", mutate: func(r *models.SaveFilesRequest) { r.Files[0].ID = "" }, wantErr: ErrInvalidFileID},
		{name: "empty data", mutate: func(r *models.SaveFilesRequest) { r.Files[0].Data = nil }, wantErr: ErrEmptyFileData},
		{name: "too large", mutate: func(r *models.SaveFilesRequest) { r.Files[0].Data = make([]byte, MaxFileSize+1) }, wantErr: ErrFileTooLarge},
		{
			name: "too many",
			mutate: func(r *models.SaveFilesRequest) {
				r.Files = make([]models.FileUpload, MaxFilesPerBatch+1)
			},
			wantErr: ErrTooManyFiles,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := models.SaveFilesRequest{
				Prefix: valid.Prefix,
				Files:  []models.FileUpload{{ID: "f1", Data: []byte{1}}},
			}
			tt.mutate(&r)
			assert.ErrorIs(t, v.Validate(ctx, r), tt.wantErr)
		})
	}
}

func TestSceneValidator_LoadFiles(t *testing.T) {
	v := NewSceneValidator()
	ctx := context.Background()

	assert.NoError(t, v.Validate(ctx, models.LoadFilesRequest{Prefix: "p", IDs: []models.FileID{"a", "a"}}))
	assert.ErrorIs(t, v.Validate(ctx, models.LoadFilesRequest{Prefix: "p"}), ErrEmptyIDs)
	assert.ErrorIs(t, v.Validate(ctx, models.LoadFilesRequest{Prefix: "p", IDs: []models.FileID{"a b"}}), ErrInvalidFileID)
	assert.NoError(t, v.Validate(ctx, &models.LoadFilesRequest{IDs: []models.FileID{"a"}}, FieldIDs))
}

func TestSceneValidator_UnsupportedType(t *testing.T) {
	assert.ErrorIs(t, NewSceneValidator().Validate(context.Background(), 42), ErrUnsupportedType)
}
