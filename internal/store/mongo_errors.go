// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/MKhiriev/scene-keeper/models"
)

// Server error labels marking a transaction that may succeed when retried.
const (
	labelTransientTransaction = "TransientTransactionError"
	labelUnknownCommitResult  = "UnknownTransactionCommitResult"
)

// MongoErrorClassifier implements [ErrorClassificator] for the MongoDB
// driver.
type MongoErrorClassifier struct{}

// NewMongoErrorClassifier constructs a [MongoErrorClassifier].
func NewMongoErrorClassifier() *MongoErrorClassifier {
	return &MongoErrorClassifier{}
}

// Classify implements [ErrorClassificator].
func (c *MongoErrorClassifier) Classify(err error) ErrorClassification {
	switch {
	case err == nil:
		return NonRetryable
	case mongo.IsDuplicateKeyError(err):
		return Duplicate
	case mongo.IsNetworkError(err),
		mongo.IsTimeout(err),
		hasErrorLabel(err, labelTransientTransaction),
		hasErrorLabel(err, labelUnknownCommitResult):
		return Retryable
	default:
		return NonRetryable
	}
}

func hasErrorLabel(err error, label string) bool {
	var labeled mongo.LabeledError
	return errors.As(err, &labeled) && labeled.HasErrorLabel(label)
}

// mongoReadError maps a FindOne failure. A missing document becomes
// notFound; any other error is returned unchanged.
func mongoReadError(err, notFound error) error {
	if errors.Is(err, mongo.ErrNoDocuments) {
		return notFound
	}
	return err
}

// mongoInsertError maps an insert failure. A unique index violation means a
// concurrent writer created the room first.
func mongoInsertError(classifier ErrorClassificator, err error) error {
	if err == nil {
		return nil
	}
	if classifier.Classify(err) == Duplicate {
		return fmt.Errorf("%w: %w", ErrSceneConflict, err)
	}
	return err
}

// mongoUpdateError maps the outcome of an UpdateOne on the scenes
// collection.
func mongoUpdateError(result *mongo.UpdateResult, err error) error {
	if err != nil {
		return err
	}
	if result == nil || result.MatchedCount == 0 {
		return ErrSceneNotFound
	}
	return nil
}

func roomFilter(roomID string) bson.D {
	return bson.D{{Key: "room", Value: roomID}}
}

func refFilter(ref string) bson.D {
	return bson.D{{Key: "ref", Value: ref}}
}

func sceneUpdate(envelope models.StoredSceneEnvelope) bson.D {
	return bson.D{{Key: "$set", Value: bson.D{{Key: "data", Value: envelope}}}}
}
