package repository

import (
	"context"
	"time"

	"tracking-backend/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type DriverRepository struct {
	collection *mongo.Collection
}

func NewDriverRepository(db *mongo.Database) *DriverRepository {
	return &DriverRepository{
		collection: db.Collection("drivers"),
	}
}

func (r *DriverRepository) Create(driver *models.Driver) (*models.Driver, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	result, err := r.collection.InsertOne(ctx, driver)
	if err != nil {
		return nil, err
	}

	driver.ID = result.InsertedID.(primitive.ObjectID)
	return driver, nil
}

func (r *DriverRepository) FindByID(id string) (*models.Driver, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, models.ErrDriverNotFound
	}

	var driver models.Driver
	err = r.collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&driver)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, models.ErrDriverNotFound
		}
		return nil, err
	}

	return &driver, nil
}

func (r *DriverRepository) FindAll() ([]*models.Driver, error) {
	return r.find(bson.M{})
}

func (r *DriverRepository) FindByVehicleType(vehicleType string) ([]*models.Driver, error) {
	return r.find(bson.M{"vehicle_type": vehicleType})
}

func (r *DriverRepository) find(filter bson.M) ([]*models.Driver, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	cursor, err := r.collection.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	// non-nil so an empty result serializes as [] rather than a missing field
	drivers := []*models.Driver{}
	for cursor.Next(ctx) {
		var driver models.Driver
		if err := cursor.Decode(&driver); err != nil {
			return nil, err
		}
		drivers = append(drivers, &driver)
	}

	return drivers, cursor.Err()
}

// Update replaces the mutable scalar fields and, for each supplied document
// kind, that document reference. Unsupplied references are left untouched.
// Everything goes out as one $set so the write fully applies or fully fails.
func (r *DriverRepository) Update(id string, driver *models.Driver, documents map[string]string) (*models.Driver, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, models.ErrDriverNotFound
	}

	set := bson.M{
		"name":           driver.Name,
		"vehicle_number": driver.VehicleNumber,
		"phone":          driver.Phone,
		"status":         driver.Status,
		"vehicle_type":   driver.VehicleType,
		"updated_at":     time.Now(),
	}
	for kind, ref := range documents {
		set["documents."+kind] = ref
	}

	result := r.collection.FindOneAndUpdate(
		ctx,
		bson.M{"_id": objectID},
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	)

	var updated models.Driver
	if err := result.Decode(&updated); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, models.ErrDriverNotFound
		}
		return nil, err
	}

	return &updated, nil
}

// UpdatePosition overwrites the embedded position in a single document
// update. Mongo's per-document atomicity makes concurrent reports for the
// same driver last-writer-wins with no field mixing.
func (r *DriverRepository) UpdatePosition(id string, position *models.Position) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return models.ErrDriverNotFound
	}

	update := bson.M{
		"$set": bson.M{
			"location":   position,
			"updated_at": time.Now(),
		},
	}

	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": objectID}, update)
	if err != nil {
		return err
	}

	if result.MatchedCount == 0 {
		return models.ErrDriverNotFound
	}

	return nil
}

func (r *DriverRepository) FindPosition(id string) (*models.Position, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, models.ErrDriverNotFound
	}

	opts := options.FindOne().SetProjection(bson.M{"location": 1})

	var driver models.Driver
	err = r.collection.FindOne(ctx, bson.M{"_id": objectID}, opts).Decode(&driver)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, models.ErrDriverNotFound
		}
		return nil, err
	}

	if driver.Location == nil {
		return nil, models.ErrLocationNotReported
	}

	return driver.Location, nil
}

func (r *DriverRepository) Delete(id string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return models.ErrDriverNotFound
	}

	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": objectID})
	if err != nil {
		return err
	}

	if result.DeletedCount == 0 {
		return models.ErrDriverNotFound
	}

	return nil
}
