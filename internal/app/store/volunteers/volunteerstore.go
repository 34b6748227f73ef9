// internal/app/store/volunteers/volunteerstore.go
package volunteerstore

import (
	"context"
	"errors"
	"strings"
	"time"

	wafflemongo "github.com/dalemusser/waffle/pantry/mongo"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/newleaforg/newleaf/internal/app/store/storeutil"
	"github.com/newleaforg/newleaf/internal/app/system/normalize"
	"github.com/newleaforg/newleaf/internal/domain/models"
)

var (
	// ErrNotFound is returned when no volunteer matches the lookup.
	ErrNotFound = errors.New("volunteer not found")
	// ErrDuplicateEmail is returned when an application with the email exists.
	ErrDuplicateEmail = errors.New("a volunteer application with this email already exists")
	// ErrDuplicatePhone is returned when an application with the phone exists.
	ErrDuplicatePhone = errors.New("a volunteer application with this phone number already exists")
	errBadStatus      = errors.New(`status must be "pending"|"approved"|"rejected"`)
)

type Store struct {
	c *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("volunteers")}
}

// GetByID loads a volunteer by ObjectID.
func (s *Store) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Volunteer, error) {
	var v models.Volunteer
	if err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&v); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &v, nil
}

// Create inserts a new volunteer application after normalizing its contact
// fields. Email and phone are each globally unique; the violated index tells
// us which conflict to report.
func (s *Store) Create(ctx context.Context, v models.Volunteer) (models.Volunteer, error) {
	v.ID = primitive.NewObjectID()
	v.Email = normalize.Email(v.Email)
	v.Phone = normalize.Phone(v.Phone)

	if v.Status == "" {
		v.Status = models.VolunteerPending
	}
	if !models.IsValidVolunteerStatus(v.Status) {
		return models.Volunteer{}, errBadStatus
	}
	if v.TimeCommitment == nil {
		v.TimeCommitment = []string{}
	}

	now := time.Now()
	v.CreatedAt = now
	v.UpdatedAt = now

	if _, err := s.c.InsertOne(ctx, v); err != nil {
		if wafflemongo.IsDup(err) {
			return models.Volunteer{}, dupErr(err)
		}
		return models.Volunteer{}, err
	}
	return v, nil
}

// dupErr maps a duplicate-key error to the field-specific sentinel by
// looking at which unique index was violated.
func dupErr(err error) error {
	if strings.Contains(err.Error(), "uniq_volunteers_phone") {
		return ErrDuplicatePhone
	}
	return ErrDuplicateEmail
}

// SetStatus moves a volunteer application to the given review state.
func (s *Store) SetStatus(ctx context.Context, id primitive.ObjectID, status models.VolunteerStatus) (*models.Volunteer, error) {
	if !models.IsValidVolunteerStatus(status) {
		return nil, errBadStatus
	}

	res, err := s.c.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": bson.M{
		"status":     status,
		"updated_at": time.Now(),
	}})
	if err != nil {
		return nil, err
	}
	if res.MatchedCount == 0 {
		return nil, ErrNotFound
	}
	return s.GetByID(ctx, id)
}

// Delete removes a volunteer application by ID.
func (s *Store) Delete(ctx context.Context, id primitive.ObjectID) error {
	res, err := s.c.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// ListAll returns volunteer applications, newest first, optionally filtered
// by status.
func (s *Store) ListAll(ctx context.Context, status models.VolunteerStatus) ([]models.Volunteer, error) {
	filter := bson.M{}
	if status != "" {
		filter["status"] = status
	}

	cur, err := s.c.Find(ctx, filter, storeutil.NewestFirst())
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	volunteers := []models.Volunteer{}
	if err := cur.All(ctx, &volunteers); err != nil {
		return nil, err
	}
	return volunteers, nil
}
