package requestRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"fixify/models"
	"fixify/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// withTransaction runs fn inside a single mongo transaction, aborting on any
// error so no partial writes become visible.
func (r *MongoRequestRepo) withTransaction(ctx context.Context, fn func(sc mongo.SessionContext) error) error {
	client := r.requestColl.Database().Client()
	sess, err := client.StartSession()
	if err != nil {
		return fmt.Errorf("could not start mongo session: %w", err)
	}
	defer sess.EndSession(ctx)

	return mongo.WithSession(ctx, sess, func(sc mongo.SessionContext) error {
		if err := sc.StartTransaction(); err != nil {
			return err
		}
		if err := fn(sc); err != nil {
			_ = sc.AbortTransaction(sc)
			return err
		}
		return sc.CommitTransaction(sc)
	})
}

// AcceptTransactionally applies the acceptance transition as one unit:
//  1. status ACCEPTED + technician snapshot on the request,
//  2. the new conversation document,
//  3. its initial greeting message.
//
// A request that is no longer pending, or absent, aborts the whole unit.
func (r *MongoRequestRepo) AcceptTransactionally(
	ctx context.Context,
	requestID string,
	snap models.TechnicianSnapshot,
	conv *models.Conversation,
	msg *models.Message,
) error {
	ctx, cancel := newContext(ctx, 15*time.Second)
	defer cancel()

	err := r.withTransaction(ctx, func(sc mongo.SessionContext) error {
		res, err := r.requestColl.UpdateOne(sc,
			bson.M{"id": requestID, "status": models.StatusPending},
			bson.M{"$set": bson.M{
				"status":     models.StatusAccepted,
				"technician": snap,
				"updatedAt":  time.Now(),
			}},
		)
		if err != nil {
			return fmt.Errorf("accept request update failed: %w", err)
		}
		if res.MatchedCount == 0 {
			return fmt.Errorf("pending request %s: %w", requestID, utils.ErrNotFound)
		}

		if _, err := r.conversationColl.InsertOne(sc, conv); err != nil {
			return fmt.Errorf("insert conversation failed: %w", err)
		}
		if _, err := r.messageColl.InsertOne(sc, msg); err != nil {
			return fmt.Errorf("insert greeting message failed: %w", err)
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return err
		}
		return fmt.Errorf("acceptance transaction failed: %w", err)
	}
	return nil
}

// RecordRatingTransactionally writes the rating onto the request's
// role-specific field and folds it into the rated profile's running average.
// The profile read and write happen inside the same transaction so
// concurrent ratings for the same party cannot lose an update.
func (r *MongoRequestRepo) RecordRatingTransactionally(
	ctx context.Context,
	requestID string,
	role models.RaterRole,
	rating models.Rating,
	ratedUserID string,
) error {
	ctx, cancel := newContext(ctx, 15*time.Second)
	defer cancel()

	field := "technicianRating"
	if role == models.RaterCustomer {
		field = "customerRating"
	}

	err := r.withTransaction(ctx, func(sc mongo.SessionContext) error {
		res, err := r.requestColl.UpdateOne(sc,
			bson.M{"id": requestID},
			bson.M{"$set": bson.M{field: rating, "updatedAt": time.Now()}},
		)
		if err != nil {
			return fmt.Errorf("rating request update failed: %w", err)
		}
		if res.MatchedCount == 0 {
			return fmt.Errorf("request %s: %w", requestID, utils.ErrNotFound)
		}

		var rated models.UserProfile
		if err := r.userColl.FindOne(sc, bson.M{"id": ratedUserID}).Decode(&rated); err != nil {
			if errors.Is(err, mongo.ErrNoDocuments) {
				return fmt.Errorf("rated profile %s: %w", ratedUserID, utils.ErrNotFound)
			}
			return fmt.Errorf("read rated profile failed: %w", err)
		}

		agg := rated.Rating.Fold(rating.Stars)
		if _, err := r.userColl.UpdateOne(sc,
			bson.M{"id": ratedUserID},
			bson.M{"$set": bson.M{"rating": agg, "updatedAt": time.Now()}},
		); err != nil {
			return fmt.Errorf("write rating aggregate failed: %w", err)
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return err
		}
		return fmt.Errorf("rating transaction failed: %w", err)
	}
	return nil
}
