package bookingRepo

import (
	"fmt"

	"salonbook/models"
	"salonbook/services/availability"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// CreateWithConflictCheck inserts a booking inside a mongo transaction
// that re-reads the staff member's blocking bookings for the date and
// re-applies the overlap predicate before committing. This is the
// serializing step that keeps two concurrent requests from double-
// booking the same staff and window: whoever commits second sees the
// other's row and aborts with ErrSlotTaken.
func (repo *MongoBookingRepo) CreateWithConflictCheck(b *models.Booking, conflictStart, conflictEnd int) error {
	ctx, cancel := opCtx()
	defer cancel()

	client := repo.bookingColl.Database().Client()
	sess, err := client.StartSession()
	if err != nil {
		return fmt.Errorf("could not start mongo session: %w", err)
	}
	defer sess.EndSession(ctx)

	txnFn := func(sc mongo.SessionContext) error {
		filter := bson.M{
			"staff_id": b.StaffID,
			"date":     b.Date,
			"status":   bson.M{"$in": bson.A{models.StatusPending, models.StatusConfirmed}},
		}
		cursor, err := repo.bookingColl.Find(sc, filter)
		if err != nil {
			return fmt.Errorf("conflict re-check failed: %w", err)
		}
		var existing []models.Booking
		if err := cursor.All(sc, &existing); err != nil {
			return fmt.Errorf("conflict re-check decode failed: %w", err)
		}
		for _, e := range existing {
			if availability.Overlaps(conflictStart, conflictEnd, e.Start, e.End) {
				return ErrSlotTaken
			}
		}

		if _, err := repo.bookingColl.InsertOne(sc, b); err != nil {
			return fmt.Errorf("insert booking failed: %w", err)
		}
		return nil
	}

	if err := mongo.WithSession(ctx, sess, func(sc mongo.SessionContext) error {
		if err := sc.StartTransaction(); err != nil {
			return err
		}
		if err := txnFn(sc); err != nil {
			_ = sc.AbortTransaction(sc)
			return err
		}
		return sc.CommitTransaction(sc)
	}); err != nil {
		return err
	}
	return nil
}
