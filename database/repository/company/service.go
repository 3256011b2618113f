package companyRepo

import (
	"fmt"

	"salonbook/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func (repo *MongoCompanyRepo) ListServices(companyID string) ([]models.Service, error) {
	ctx, cancel := opCtx()
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "name", Value: 1}})
	cursor, err := repo.serviceColl.Find(ctx, bson.M{"company_id": companyID}, opts)
	if err != nil {
		return nil, fmt.Errorf("error fetching services for company %s: %w", companyID, err)
	}
	var services []models.Service
	if err := cursor.All(ctx, &services); err != nil {
		return nil, fmt.Errorf("error decoding services: %w", err)
	}
	return services, nil
}

func (repo *MongoCompanyRepo) GetServiceByID(companyID, serviceID string) (*models.Service, error) {
	ctx, cancel := opCtx()
	defer cancel()

	var svc models.Service
	filter := bson.M{"id": serviceID, "company_id": companyID}
	if err := repo.serviceColl.FindOne(ctx, filter).Decode(&svc); err != nil {
		return nil, fmt.Errorf("error fetching service %s: %w", serviceID, err)
	}
	return &svc, nil
}

func (repo *MongoCompanyRepo) CreateService(svc *models.Service) error {
	ctx, cancel := opCtx()
	defer cancel()

	if _, err := repo.serviceColl.InsertOne(ctx, svc); err != nil {
		return fmt.Errorf("failed to insert service: %w", err)
	}
	return nil
}

func (repo *MongoCompanyRepo) UpdateService(svc *models.Service) error {
	ctx, cancel := opCtx()
	defer cancel()

	filter := bson.M{"id": svc.ID, "company_id": svc.CompanyID}
	res, err := repo.serviceColl.ReplaceOne(ctx, filter, svc)
	if err != nil {
		return fmt.Errorf("failed to update service %s: %w", svc.ID, err)
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("service %s not found: %w", svc.ID, mongo.ErrNoDocuments)
	}
	return nil
}

func (repo *MongoCompanyRepo) DeleteService(companyID, serviceID string) error {
	ctx, cancel := opCtx()
	defer cancel()

	res, err := repo.serviceColl.DeleteOne(ctx, bson.M{"id": serviceID, "company_id": companyID})
	if err != nil {
		return fmt.Errorf("failed to delete service %s: %w", serviceID, err)
	}
	if res.DeletedCount == 0 {
		return fmt.Errorf("service %s not found: %w", serviceID, mongo.ErrNoDocuments)
	}
	return nil
}
