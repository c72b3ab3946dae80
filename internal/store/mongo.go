// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/MKhiriev/scene-keeper/internal/logger"
	"github.com/MKhiriev/scene-keeper/models"
)

const (
	scenesCollection = "scenes"
	filesCollection  = "files"
)

// sceneDocument is one room's scene in the scenes collection.
type sceneDocument struct {
	Room string                     `bson:"room"`
	Data models.StoredSceneEnvelope `bson:"data"`
}

// fileDocument is one attachment payload in the files collection.
type fileDocument struct {
	Ref  string `bson:"ref"`
	Data []byte `bson:"data"`
}

// mongoStorage is the MongoDB implementation of [Storage].
//
// Scene transactions run in a client session. Only the commit is bounded by
// the commit budget, matching the server-side maxCommitTimeMS semantics.
type mongoStorage struct {
	client        *mongo.Client
	scenes        *mongo.Collection
	files         *mongo.Collection
	commitTimeout time.Duration
	classifier    ErrorClassificator
	logger        *logger.Logger
}

// NewMongoStorage connects to MongoDB, pings it and makes sure the unique
// indexes on scenes.room and files.ref exist.
func NewMongoStorage(ctx context.Context, settings Settings, log *logger.Logger) (Storage, error) {
	client, err := mongo.Connect(options.Client().ApplyURI(settings.DSN))
	if err != nil {
		log.Err(err).Str("func", "NewMongoStorage").Msg("failed to create mongo client")
		return nil, fmt.Errorf("%w: %w", ErrConnecting, err)
	}

	if err = client.Ping(ctx, nil); err != nil {
		log.Err(err).Str("func", "NewMongoStorage").Str("uri", redact(settings.DSN)).Msg("failed to ping mongo")
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("%w: %w", ErrConnecting, err)
	}

	db := client.Database(settings.Database)
	s := &mongoStorage{
		client:        client,
		scenes:        db.Collection(scenesCollection),
		files:         db.Collection(filesCollection),
		commitTimeout: settings.CommitTimeout,
		classifier:    NewMongoErrorClassifier(),
		logger:        log,
	}

	if err = s.ensureIndexes(ctx); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("%w: %w", ErrConnecting, err)
	}

	log.Info().
		Str("func", "NewMongoStorage").
		Str("database", settings.Database).
		Msg("connected to mongo successfully")

	return s, nil
}

func (s *mongoStorage) ensureIndexes(ctx context.Context) error {
	indexes := map[*mongo.Collection]string{
		s.scenes: "room",
		s.files:  "ref",
	}

	for coll, key := range indexes {
		_, err := coll.Indexes().CreateOne(ctx, mongo.IndexModel{
			Keys:    bson.D{{Key: key, Value: 1}},
			Options: options.Index().SetUnique(true),
		})
		if err != nil {
			s.logger.Err(err).
				Str("func", "mongoStorage.ensureIndexes").
				Str("collection", coll.Name()).
				Msg("failed to create index")
			return err
		}
	}

	return nil
}

func (s *mongoStorage) Backend() string {
	return string(BackendMongo)
}

func (s *mongoStorage) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}

// GetScene implements [SceneRepository].
func (s *mongoStorage) GetScene(ctx context.Context, roomID string) (models.StoredSceneEnvelope, error) {
	return findScene(ctx, s.scenes, roomID)
}

// WithinTx implements [SceneRepository].
func (s *mongoStorage) WithinTx(ctx context.Context, fn func(ctx context.Context, tx SceneTx) error) error {
	log := logger.FromContext(ctx)

	session, err := s.client.StartSession()
	if err != nil {
		log.Err(err).Str("func", "mongoStorage.WithinTx").Msg("failed to start session")
		return fmt.Errorf("%w: %w: %w", ErrTransactionAborted, ErrBeginningTransaction, err)
	}
	defer session.EndSession(context.WithoutCancel(ctx))

	if err = session.StartTransaction(); err != nil {
		log.Err(err).Str("func", "mongoStorage.WithinTx").Msg("failed to start transaction")
		return fmt.Errorf("%w: %w: %w", ErrTransactionAborted, ErrBeginningTransaction, err)
	}

	sessCtx := mongo.NewSessionContext(ctx, session)

	if err = fn(sessCtx, &mongoSceneTx{scenes: s.scenes, classifier: s.classifier}); err != nil {
		s.abort(ctx, session)
		return fmt.Errorf("%w: %w", ErrTransactionAborted, err)
	}

	commitCtx, cancel := context.WithTimeout(sessCtx, s.commitTimeout)
	defer cancel()

	if err = session.CommitTransaction(commitCtx); err != nil {
		log.Err(err).
			Str("func", "mongoStorage.WithinTx").
			Dur("commit_timeout", s.commitTimeout).
			Bool("retryable", s.classifier.Classify(err) == Retryable).
			Msg("failed to commit transaction")
		s.abort(ctx, session)
		return fmt.Errorf("%w: %w: %w", ErrTransactionAborted, ErrCommittingTransaction, err)
	}

	return nil
}

// abort rolls back the session's transaction. It runs detached from ctx so
// that a cancelled caller still releases server-side locks.
func (s *mongoStorage) abort(ctx context.Context, session *mongo.Session) {
	if err := session.AbortTransaction(context.WithoutCancel(ctx)); err != nil {
		logger.FromContext(ctx).Warn().Err(err).
			Str("func", "mongoStorage.abort").
			Msg("failed to abort transaction")
	}
}

// SaveFile implements [FileRepository].
func (s *mongoStorage) SaveFile(ctx context.Context, ref string, data []byte) error {
	_, err := s.files.ReplaceOne(ctx,
		refFilter(ref),
		fileDocument{Ref: ref, Data: data},
		options.Replace().SetUpsert(true),
	)
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "mongoStorage.SaveFile").
			Str("ref", ref).
			Msg("failed to save file")
		return err
	}
	return nil
}

// LoadFile implements [FileRepository].
func (s *mongoStorage) LoadFile(ctx context.Context, ref string) ([]byte, error) {
	var doc fileDocument
	if err := s.files.FindOne(ctx, refFilter(ref)).Decode(&doc); err != nil {
		return nil, mongoReadError(err, ErrFileNotFound)
	}
	return doc.Data, nil
}

// mongoSceneTx implements [SceneTx]. The session travels in ctx.
type mongoSceneTx struct {
	scenes     *mongo.Collection
	classifier ErrorClassificator
}

func (t *mongoSceneTx) GetScene(ctx context.Context, roomID string) (models.StoredSceneEnvelope, error) {
	return findScene(ctx, t.scenes, roomID)
}

func (t *mongoSceneTx) InsertScene(ctx context.Context, roomID string, envelope models.StoredSceneEnvelope) error {
	_, err := t.scenes.InsertOne(ctx, sceneDocument{Room: roomID, Data: envelope})
	return mongoInsertError(t.classifier, err)
}

func (t *mongoSceneTx) UpdateScene(ctx context.Context, roomID string, envelope models.StoredSceneEnvelope) error {
	result, err := t.scenes.UpdateOne(ctx, roomFilter(roomID), sceneUpdate(envelope))
	return mongoUpdateError(result, err)
}

func findScene(ctx context.Context, scenes *mongo.Collection, roomID string) (models.StoredSceneEnvelope, error) {
	var doc sceneDocument
	if err := scenes.FindOne(ctx, roomFilter(roomID)).Decode(&doc); err != nil {
		err = mongoReadError(err, ErrSceneNotFound)
		if errors.Is(err, ErrSceneNotFound) {
			return models.StoredSceneEnvelope{}, err
		}
		logger.FromContext(ctx).Err(err).
			Str("func", "findScene").
			Str("room_id", roomID).
			Msg("failed to read scene")
		return models.StoredSceneEnvelope{}, err
	}
	return doc.Data, nil
}
