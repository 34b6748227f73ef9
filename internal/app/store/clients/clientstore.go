// internal/app/store/clients/clientstore.go
package clientstore

// Terminology: Client Identifiers
//   - ID / _id: The MongoDB ObjectID that uniquely identifies the record
//   - ClientID / client_id: The human-assigned business key, unique across clients

import (
	"context"
	"errors"
	"time"

	wafflemongo "github.com/dalemusser/waffle/pantry/mongo"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/newleaforg/newleaf/internal/app/store/storeutil"
	"github.com/newleaforg/newleaf/internal/domain/models"
)

var (
	// ErrNotFound is returned when no client matches the lookup.
	ErrNotFound = errors.New("client not found")
	// ErrDuplicateClientID is returned when the business key is already taken.
	ErrDuplicateClientID = errors.New("a client with this client ID already exists")
	errBadStatus         = errors.New(`status must be "New"|"Under Recovery"|"Recovered"`)
)

type Store struct {
	c *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("clients")}
}

// GetByID loads a client by ObjectID.
func (s *Store) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Client, error) {
	var cl models.Client
	if err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&cl); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &cl, nil
}

// Create inserts a new client after validating its status.
func (s *Store) Create(ctx context.Context, cl models.Client) (models.Client, error) {
	cl.ID = primitive.NewObjectID()

	if cl.Status == "" {
		cl.Status = models.ClientNew
	}
	if !models.IsValidClientStatus(cl.Status) {
		return models.Client{}, errBadStatus
	}

	now := time.Now()
	cl.CreatedAt = now
	cl.UpdatedAt = now

	if _, err := s.c.InsertOne(ctx, cl); err != nil {
		if wafflemongo.IsDup(err) {
			return models.Client{}, ErrDuplicateClientID
		}
		return models.Client{}, err
	}
	return cl, nil
}

// Update holds the replaceable fields of a client record.
type Update struct {
	ClientID string
	Name     string
	Contact  string
	JoinDate time.Time
	Status   models.ClientStatus
	Program  string
	Notes    string
	Address  string
}

// Update overwrites a client's editable fields. Changing the business key to
// one held by another client fails with ErrDuplicateClientID.
func (s *Store) Update(ctx context.Context, id primitive.ObjectID, upd Update) (*models.Client, error) {
	if !models.IsValidClientStatus(upd.Status) {
		return nil, errBadStatus
	}

	set := bson.M{
		"client_id":  upd.ClientID,
		"name":       upd.Name,
		"contact":    upd.Contact,
		"join_date":  upd.JoinDate,
		"status":     upd.Status,
		"program":    upd.Program,
		"notes":      upd.Notes,
		"address":    upd.Address,
		"updated_at": time.Now(),
	}
	res, err := s.c.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": set})
	if err != nil {
		if wafflemongo.IsDup(err) {
			return nil, ErrDuplicateClientID
		}
		return nil, err
	}
	if res.MatchedCount == 0 {
		return nil, ErrNotFound
	}
	return s.GetByID(ctx, id)
}

// Delete removes a client by ID.
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

// ListAll returns clients, newest first, optionally filtered by status.
func (s *Store) ListAll(ctx context.Context, status models.ClientStatus) ([]models.Client, error) {
	filter := bson.M{}
	if status != "" {
		filter["status"] = status
	}

	cur, err := s.c.Find(ctx, filter, storeutil.NewestFirst())
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	clients := []models.Client{}
	if err := cur.All(ctx, &clients); err != nil {
		return nil, err
	}
	return clients, nil
}
