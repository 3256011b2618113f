package bookingRepo

import (
	"context"
	"fmt"
	"time"

	"salonbook/database"
	"salonbook/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoBookingRepo implements BookingRepository using MongoDB.
type MongoBookingRepo struct {
	bookingColl *mongo.Collection
}

// NewMongoBookingRepo constructs a new instance of MongoBookingRepo.
func NewMongoBookingRepo() BookingRepository {
	db := database.DB()
	return &MongoBookingRepo{
		bookingColl: db.Collection("bookings"),
	}
}

func opCtx() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), 5*time.Second)
}

func (repo *MongoBookingRepo) GetByID(id string) (*models.Booking, error) {
	ctx, cancel := opCtx()
	defer cancel()

	var b models.Booking
	if err := repo.bookingColl.FindOne(ctx, bson.M{"id": id}).Decode(&b); err != nil {
		return nil, fmt.Errorf("error fetching booking %s: %w", id, err)
	}
	return &b, nil
}

func (repo *MongoBookingRepo) ListForDate(companyID, date string) ([]models.Booking, error) {
	ctx, cancel := opCtx()
	defer cancel()

	filter := bson.M{"company_id": companyID, "date": date}
	opts := options.Find().SetSort(bson.D{{Key: "start", Value: 1}})
	cursor, err := repo.bookingColl.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("error fetching bookings for %s on %s: %w", companyID, date, err)
	}
	var bookings []models.Booking
	if err := cursor.All(ctx, &bookings); err != nil {
		return nil, fmt.Errorf("error decoding bookings: %w", err)
	}
	return bookings, nil
}

func (repo *MongoBookingRepo) ListRange(companyID, from, to string) ([]models.Booking, error) {
	ctx, cancel := opCtx()
	defer cancel()

	filter := bson.M{
		"company_id": companyID,
		"date":       bson.M{"$gte": from, "$lte": to},
	}
	opts := options.Find().SetSort(bson.D{{Key: "date", Value: 1}, {Key: "start", Value: 1}})
	cursor, err := repo.bookingColl.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("error fetching bookings for %s in [%s, %s]: %w", companyID, from, to, err)
	}
	var bookings []models.Booking
	if err := cursor.All(ctx, &bookings); err != nil {
		return nil, fmt.Errorf("error decoding bookings: %w", err)
	}
	return bookings, nil
}

func (repo *MongoBookingRepo) UpdateStatus(id, status string) error {
	ctx, cancel := opCtx()
	defer cancel()

	update := bson.M{"$set": bson.M{"status": status}}
	res, err := repo.bookingColl.UpdateOne(ctx, bson.M{"id": id}, update)
	if err != nil {
		return fmt.Errorf("failed to update booking %s status: %w", id, err)
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("booking %s not found: %w", id, mongo.ErrNoDocuments)
	}
	return nil
}

func (repo *MongoBookingRepo) ConfirmPreBooked(id string, end, duration int, price float64, confirmedAt time.Time) error {
	ctx, cancel := opCtx()
	defer cancel()

	filter := bson.M{"id": id, "status": models.StatusPreBooked}
	update := bson.M{"$set": bson.M{
		"status":           models.StatusConfirmed,
		"end":              end,
		"duration_minutes": duration,
		"price":            price,
		"confirmed_at":     confirmedAt,
	}}
	res, err := repo.bookingColl.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("failed to confirm booking %s: %w", id, err)
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("prebooked booking %s not found: %w", id, mongo.ErrNoDocuments)
	}
	return nil
}

func (repo *MongoBookingRepo) MarkReminderSent(id string) error {
	ctx, cancel := opCtx()
	defer cancel()

	update := bson.M{"$set": bson.M{"reminder_sent": true}}
	if _, err := repo.bookingColl.UpdateOne(ctx, bson.M{"id": id}, update); err != nil {
		return fmt.Errorf("failed to mark reminder sent for booking %s: %w", id, err)
	}
	return nil
}

func (repo *MongoBookingRepo) CancelStalePreBooked(cutoff time.Time) (int64, error) {
	ctx, cancel := opCtx()
	defer cancel()

	filter := bson.M{
		"status":     models.StatusPreBooked,
		"created_at": bson.M{"$lt": cutoff},
	}
	update := bson.M{"$set": bson.M{"status": models.StatusCancelled}}
	res, err := repo.bookingColl.UpdateMany(ctx, filter, update)
	if err != nil {
		return 0, fmt.Errorf("failed to cancel stale prebooked bookings: %w", err)
	}
	return res.ModifiedCount, nil
}
