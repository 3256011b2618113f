package companyRepo

import (
	"fmt"

	"salonbook/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func (repo *MongoCompanyRepo) ListStaff(companyID string) ([]models.Staff, error) {
	ctx, cancel := opCtx()
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "id", Value: 1}})
	cursor, err := repo.staffColl.Find(ctx, bson.M{"company_id": companyID}, opts)
	if err != nil {
		return nil, fmt.Errorf("error fetching staff for company %s: %w", companyID, err)
	}
	var staff []models.Staff
	if err := cursor.All(ctx, &staff); err != nil {
		return nil, fmt.Errorf("error decoding staff: %w", err)
	}
	return staff, nil
}

func (repo *MongoCompanyRepo) GetStaffByID(companyID, staffID string) (*models.Staff, error) {
	ctx, cancel := opCtx()
	defer cancel()

	var st models.Staff
	filter := bson.M{"id": staffID, "company_id": companyID}
	if err := repo.staffColl.FindOne(ctx, filter).Decode(&st); err != nil {
		return nil, fmt.Errorf("error fetching staff %s: %w", staffID, err)
	}
	return &st, nil
}

func (repo *MongoCompanyRepo) CreateStaff(st *models.Staff) error {
	ctx, cancel := opCtx()
	defer cancel()

	if _, err := repo.staffColl.InsertOne(ctx, st); err != nil {
		return fmt.Errorf("failed to insert staff: %w", err)
	}
	return nil
}

func (repo *MongoCompanyRepo) UpdateStaff(st *models.Staff) error {
	ctx, cancel := opCtx()
	defer cancel()

	filter := bson.M{"id": st.ID, "company_id": st.CompanyID}
	res, err := repo.staffColl.ReplaceOne(ctx, filter, st)
	if err != nil {
		return fmt.Errorf("failed to update staff %s: %w", st.ID, err)
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("staff %s not found: %w", st.ID, mongo.ErrNoDocuments)
	}
	return nil
}

func (repo *MongoCompanyRepo) DeleteStaff(companyID, staffID string) error {
	ctx, cancel := opCtx()
	defer cancel()

	res, err := repo.staffColl.DeleteOne(ctx, bson.M{"id": staffID, "company_id": companyID})
	if err != nil {
		return fmt.Errorf("failed to delete staff %s: %w", staffID, err)
	}
	if res.DeletedCount == 0 {
		return fmt.Errorf("staff %s not found: %w", staffID, mongo.ErrNoDocuments)
	}
	return nil
}
