package companyRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"salonbook/database"
	"salonbook/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// MongoCompanyRepo implements CompanyRepository using MongoDB.
type MongoCompanyRepo struct {
	companyColl *mongo.Collection
	hoursColl   *mongo.Collection
	staffColl   *mongo.Collection
	serviceColl *mongo.Collection
}

// NewMongoCompanyRepo constructs a new instance of MongoCompanyRepo.
func NewMongoCompanyRepo() CompanyRepository {
	db := database.DB()
	return &MongoCompanyRepo{
		companyColl: db.Collection("companies"),
		hoursColl:   db.Collection("working_hours"),
		staffColl:   db.Collection("staff"),
		serviceColl: db.Collection("services"),
	}
}

func opCtx() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), 5*time.Second)
}

func (repo *MongoCompanyRepo) CreateCompany(c *models.Company) error {
	ctx, cancel := opCtx()
	defer cancel()

	if _, err := repo.companyColl.InsertOne(ctx, c); err != nil {
		return fmt.Errorf("failed to insert company: %w", err)
	}
	return nil
}

func (repo *MongoCompanyRepo) GetCompanyByID(id string) (*models.Company, error) {
	ctx, cancel := opCtx()
	defer cancel()

	var company models.Company
	if err := repo.companyColl.FindOne(ctx, bson.M{"id": id}).Decode(&company); err != nil {
		return nil, fmt.Errorf("error fetching company with id %s: %w", id, err)
	}
	return &company, nil
}

func (repo *MongoCompanyRepo) UpdateCompany(c *models.Company) error {
	ctx, cancel := opCtx()
	defer cancel()

	res, err := repo.companyColl.ReplaceOne(ctx, bson.M{"id": c.ID}, c)
	if err != nil {
		return fmt.Errorf("failed to update company %s: %w", c.ID, err)
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("company %s not found: %w", c.ID, mongo.ErrNoDocuments)
	}
	return nil
}

func (repo *MongoCompanyRepo) GetWorkingInterval(companyID string, dayOfWeek int) (*models.WorkingInterval, error) {
	ctx, cancel := opCtx()
	defer cancel()

	var interval models.WorkingInterval
	filter := bson.M{"company_id": companyID, "day_of_week": dayOfWeek}
	if err := repo.hoursColl.FindOne(ctx, filter).Decode(&interval); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("error fetching working interval for company %s day %d: %w", companyID, dayOfWeek, err)
	}
	return &interval, nil
}

func (repo *MongoCompanyRepo) GetWorkingHours(companyID string) ([]models.WorkingInterval, error) {
	ctx, cancel := opCtx()
	defer cancel()

	cursor, err := repo.hoursColl.Find(ctx, bson.M{"company_id": companyID})
	if err != nil {
		return nil, fmt.Errorf("error fetching working hours for company %s: %w", companyID, err)
	}
	var intervals []models.WorkingInterval
	if err := cursor.All(ctx, &intervals); err != nil {
		return nil, fmt.Errorf("error decoding working hours: %w", err)
	}
	return intervals, nil
}

// ReplaceWorkingHours swaps the company's whole weekly schedule in one
// transaction so readers never observe a half-replaced week.
func (repo *MongoCompanyRepo) ReplaceWorkingHours(companyID string, intervals []models.WorkingInterval) error {
	ctx, cancel := opCtx()
	defer cancel()

	client := repo.hoursColl.Database().Client()
	sess, err := client.StartSession()
	if err != nil {
		return fmt.Errorf("could not start mongo session: %w", err)
	}
	defer sess.EndSession(ctx)

	txnFn := func(sc mongo.SessionContext) error {
		if _, err := repo.hoursColl.DeleteMany(sc, bson.M{"company_id": companyID}); err != nil {
			return fmt.Errorf("delete old working hours failed: %w", err)
		}
		if len(intervals) == 0 {
			return nil
		}
		docs := make([]interface{}, 0, len(intervals))
		for i := range intervals {
			intervals[i].CompanyID = companyID
			docs = append(docs, intervals[i])
		}
		if _, err := repo.hoursColl.InsertMany(sc, docs); err != nil {
			return fmt.Errorf("insert working hours failed: %w", err)
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
		return fmt.Errorf("working hours replace transaction failed: %w", err)
	}
	return nil
}
