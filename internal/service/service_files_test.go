package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/scene-keeper/internal/codec"
	"github.com/MKhiriev/scene-keeper/internal/crypto"
	"github.com/MKhiriev/scene-keeper/internal/logger"
	"github.com/MKhiriev/scene-keeper/internal/mock"
	"github.com/MKhiriev/scene-keeper/internal/store"
	"github.com/MKhiriev/scene-keeper/models"
)

const testPrefix = "files/rooms/room-1"

func newTestFileService(provider store.Provider) (*fileService, *codec.BlobCodec) {
	blobs := codec.NewBlobCodec(crypto.NewCipher())
	svc := NewFileService(provider, blobs, logger.Nop()).(*fileService)
	svc.now = func() time.Time { return time.UnixMilli(1_700_000_000_000) }
	return svc, blobs
}

func compressed(t *testing.T, blobs *codec.BlobCodec, dataURL string, meta models.FileMetadata) []byte {
	t.Helper()
	payload, err := blobs.Compress([]byte(dataURL), meta, testRoomKey)
	require.NoError(t, err)
	return payload
}

func TestFileService_SaveAndLoad(t *testing.T) {
	ctx := context.Background()
	storage := store.NewMemoryStorage(time.Second)
	svc, blobs := newTestFileService(staticProvider{storage: storage})

	files := []models.FileUpload{
		{ID: "f1", Data: compressed(t, blobs, "data:image/png;base64,AAAA", models.FileMetadata{MimeType: "image/png", Created: 42})},
		{ID: "f2", Data: compressed(t, blobs, "data:,hello", models.FileMetadata{})},
	}

	saved := svc.SaveFiles(ctx, testPrefix, files)
	assert.Equal(t, []models.FileID{"f1", "f2"}, saved.Saved.Sorted())
	assert.Empty(t, saved.Errored)

	loaded := svc.LoadFiles(ctx, testPrefix, testRoomKey, []models.FileID{"f1", "f2"})
	require.Len(t, loaded.Loaded, 2)
	assert.Empty(t, loaded.Errored)

	byID := map[models.FileID]models.FileRecord{}
	for _, r := range loaded.Loaded {
		byID[r.ID] = r
	}
	assert.Equal(t, models.FileRecord{ID: "f1", MimeType: "image/png", DataURL: "data:image/png;base64,AAAA", Created: 42}, byID["f1"])
	assert.Equal(t, models.FileRecord{ID: "f2", MimeType: models.MimeTypeBinary, DataURL: "data:,hello", Created: 1_700_000_000_000}, byID["f2"])
}

func TestFileService_LoadFiles_OneCorruptBlob(t *testing.T) {
	ctx := context.Background()
	storage := store.NewMemoryStorage(time.Second)
	svc, blobs := newTestFileService(staticProvider{storage: storage})

	ids := []models.FileID{"a", "b", "c", "d"}
	for _, id := range ids {
		require.NoError(t, storage.SaveFile(ctx, testPrefix+"/"+string(id), compressed(t, blobs, "data:,"+string(id), models.FileMetadata{})))
	}
	require.NoError(t, storage.SaveFile(ctx, testPrefix+"/c", []byte("not a payload")))

	result := svc.LoadFiles(ctx, testPrefix, testRoomKey, ids)
	assert.Len(t, result.Loaded, 3)
	assert.Equal(t, []models.FileID{"c"}, result.Errored.Sorted())
}

func TestFileService_LoadFiles_DecryptFailureIsolated(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	cipher := mock.NewMockCipher(ctrl)
	storage := store.NewMemoryStorage(time.Second)

	sealer := codec.NewBlobCodec(crypto.NewCipher())
	for _, id := range []string{"a", "b", "c"} {
		require.NoError(t, storage.SaveFile(ctx, testPrefix+"/"+id, compressed(t, sealer, "data:,"+id, models.FileMetadata{})))
	}

	plain := crypto.NewCipher()
	calls := 0
	cipher.EXPECT().Decrypt(gomock.Any(), gomock.Any(), testRoomKey).
		DoAndReturn(func(iv, ciphertext []byte, key string) ([]byte, error) {
			return plain.Decrypt(iv, ciphertext, key)
		}).Times(2)
	cipher.EXPECT().Decrypt(gomock.Any(), gomock.Any(), testRoomKey).
		DoAndReturn(func([]byte, []byte, string) ([]byte, error) {
			calls++
			return nil, crypto.ErrDecryption
		}).Times(1)

	svc := NewFileService(staticProvider{storage: storage}, codec.NewBlobCodec(cipher), logger.Nop())
	svc.(*fileService).concurrency = 1

	result := svc.LoadFiles(ctx, testPrefix, testRoomKey, []models.FileID{"a", "b", "c"})
	assert.Len(t, result.Loaded, 2)
	assert.Len(t, result.Errored, 1)
	assert.Equal(t, 1, calls)
}

func TestFileService_LoadFiles_DeduplicatesIDs(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	storage := mock.NewMockStorage(ctrl)
	svc, blobs := newTestFileService(staticProvider{storage: storage})

	payload := compressed(t, blobs, "data:,x", models.FileMetadata{})
	storage.EXPECT().LoadFile(gomock.Any(), testPrefix+"/x").Return(payload, nil).Times(1)
	storage.EXPECT().LoadFile(gomock.Any(), testPrefix+"/missing").Return(nil, store.ErrFileNotFound).Times(1)

	result := svc.LoadFiles(ctx, testPrefix, testRoomKey, []models.FileID{"x", "missing", "x", "missing"})
	require.Len(t, result.Loaded, 1)
	assert.Equal(t, models.FileID("x"), result.Loaded[0].ID)
	assert.Equal(t, []models.FileID{"missing"}, result.Errored.Sorted())
}

func TestFileService_SaveFiles_PartialFailure(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	storage := mock.NewMockStorage(ctrl)
	svc, _ := newTestFileService(staticProvider{storage: storage})

	storage.EXPECT().SaveFile(gomock.Any(), testPrefix+"/ok", []byte{1}).Return(nil)
	storage.EXPECT().SaveFile(gomock.Any(), testPrefix+"/bad", []byte{2}).Return(errors.New("write conflict"))

	result := svc.SaveFiles(ctx, testPrefix, []models.FileUpload{
		{ID: "ok", Data: []byte{1}},
		{ID: "bad", Data: []byte{2}},
	})
	assert.Equal(t, []models.FileID{"ok"}, result.Saved.Sorted())
	assert.Equal(t, []models.FileID{"bad"}, result.Errored.Sorted())
}

func TestFileService_StoreUnavailable(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestFileService(staticProvider{err: store.ErrConnecting})

	saved := svc.SaveFiles(ctx, testPrefix, []models.FileUpload{{ID: "a", Data: []byte{1}}, {ID: "b", Data: []byte{1}}})
	assert.Empty(t, saved.Saved)
	assert.Equal(t, []models.FileID{"a", "b"}, saved.Errored.Sorted())

	loaded := svc.LoadFiles(ctx, testPrefix, testRoomKey, []models.FileID{"a", "a"})
	assert.Empty(t, loaded.Loaded)
	assert.Equal(t, []models.FileID{"a"}, loaded.Errored.Sorted())
}

func TestFileService_NullStore(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestFileService(staticProvider{storage: store.NewNullStorage(logger.Nop())})

	saved := svc.SaveFiles(ctx, testPrefix, []models.FileUpload{{ID: "a", Data: []byte{1}}})
	assert.Equal(t, []models.FileID{"a"}, saved.Errored.Sorted())

	loaded := svc.LoadFiles(ctx, testPrefix, testRoomKey, []models.FileID{"a"})
	assert.Equal(t, []models.FileID{"a"}, loaded.Errored.Sorted())
}
