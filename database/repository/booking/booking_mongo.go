package bookingRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"huduma/config"
	"huduma/database"
	"huduma/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoBookingRepo implements BookingRepository using MongoDB.
type MongoBookingRepo struct {
	coll *mongo.Collection
}

// NewMongoBookingRepo creates a new instance of BookingRepository using MongoDB.
func NewMongoBookingRepo() BookingRepository {
	coll := database.MongoClient.Database(config.AppConfig.DatabaseName).Collection("bookings")
	return &MongoBookingRepo{coll: coll}
}

func (r *MongoBookingRepo) Create(ctx context.Context, booking *models.Booking) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if _, err := r.coll.InsertOne(ctx, booking); err != nil {
		return fmt.Errorf("error creating booking: %w", err)
	}
	return nil
}

// CreateAll inserts every booking inside one mongo transaction so a
// multi-line checkout is all-or-nothing.
func (r *MongoBookingRepo) CreateAll(ctx context.Context, bookings []*models.Booking) error {
	if len(bookings) == 0 {
		return nil
	}
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	client := r.coll.Database().Client()
	sess, err := client.StartSession()
	if err != nil {
		return fmt.Errorf("could not start mongo session: %w", err)
	}
	defer sess.EndSession(ctx)

	txnFn := func(sc mongo.SessionContext) error {
		docs := make([]interface{}, 0, len(bookings))
		for _, b := range bookings {
			docs = append(docs, b)
		}
		if _, err := r.coll.InsertMany(sc, docs); err != nil {
			return fmt.Errorf("insert bookings failed: %w", err)
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
		return fmt.Errorf("booking creation transaction failed: %w", err)
	}

	return nil
}

func (r *MongoBookingRepo) GetByID(ctx context.Context, id string) (*models.Booking, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var booking models.Booking
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&booking); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to fetch booking %s: %w", id, err)
	}
	return &booking, nil
}

func (r *MongoBookingRepo) List(ctx context.Context, filter ListFilter) ([]models.Booking, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	query := bson.M{}
	if filter.CustomerID != "" {
		query["customer_id"] = filter.CustomerID
	}
	if filter.ProviderID != "" {
		query["provider_id"] = filter.ProviderID
	}
	if filter.ServiceID != "" {
		query["service_id"] = filter.ServiceID
	}
	if filter.Status != "" {
		query["status"] = filter.Status
	}
	if filter.UnassignedOnly {
		query["provider_id"] = bson.M{"$in": bson.A{nil, ""}}
	}

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.coll.Find(ctx, query, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list bookings: %w", err)
	}
	defer cursor.Close(ctx)

	var bookings []models.Booking
	for cursor.Next(ctx) {
		var b models.Booking
		if err := cursor.Decode(&b); err != nil {
			return nil, fmt.Errorf("failed to decode booking: %w", err)
		}
		bookings = append(bookings, b)
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("cursor error: %w", err)
	}
	return bookings, nil
}

// UpdateStatus performs a guarded transition. The filter pins the current
// status and version, so a writer acting on a stale read matches nothing
// and the state machine is never corrupted by a lost update.
func (r *MongoBookingRepo) UpdateStatus(ctx context.Context, id, expectedStatus string, expectedVersion int64, update StatusUpdate) (*models.Booking, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{
		"id":      id,
		"status":  expectedStatus,
		"version": expectedVersion,
	}
	set := bson.M{"status": update.Status}
	if update.ProviderID != "" {
		set["provider_id"] = update.ProviderID
		set["provider_name"] = update.ProviderName
	}
	change := bson.M{
		"$set": set,
		"$inc": bson.M{"version": 1},
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var updated models.Booking
	err := r.coll.FindOneAndUpdate(ctx, filter, change, opts).Decode(&updated)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotMatched
		}
		return nil, fmt.Errorf("failed to update booking %s: %w", id, err)
	}
	return &updated, nil
}
