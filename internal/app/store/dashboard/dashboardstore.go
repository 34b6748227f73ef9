// internal/app/store/dashboard/dashboardstore.go
package dashboardstore

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/newleaforg/newleaf/internal/domain/models"
)

// Counts holds the headline totals shown on the admin dashboard.
type Counts struct {
	Blogs           int64 `json:"blogs"`
	Stories         int64 `json:"stories"`
	Albums          int64 `json:"albums"`
	Clients         int64 `json:"clients"`
	ConsultRequests int64 `json:"consult_requests"`
	PendingConsults int64 `json:"pending_consults"`
	Contacts        int64 `json:"contacts"`
	Volunteers      int64 `json:"volunteers"`

	ApprovedVolunteers int64 `json:"approved_volunteers"`
	RecoveredClients   int64 `json:"recovered_clients"`
}

// MonthBucket is one month's document count, keyed "YYYY-MM".
type MonthBucket struct {
	Month string `bson:"_id" json:"month"`
	Count int64  `bson:"count" json:"count"`
}

// Series holds the month-bucketed activity series for the dashboard charts.
type Series struct {
	Blogs           []MonthBucket `json:"blogs"`
	ConsultRequests []MonthBucket `json:"consult_requests"`
	Contacts        []MonthBucket `json:"contacts"`
	Volunteers      []MonthBucket `json:"volunteers"`
}

// Store reads aggregate numbers across the content and inbox collections.
// It owns no collection of its own.
type Store struct {
	db *mongo.Database
}

func New(db *mongo.Database) *Store {
	return &Store{db: db}
}

// GetCounts returns the per-collection totals.
func (s *Store) GetCounts(ctx context.Context) (*Counts, error) {
	var (
		c   Counts
		err error
	)

	if c.Blogs, err = s.count(ctx, "blogs", bson.M{}); err != nil {
		return nil, err
	}
	if c.Stories, err = s.count(ctx, "stories", bson.M{}); err != nil {
		return nil, err
	}
	if c.Albums, err = s.count(ctx, "gallery", bson.M{}); err != nil {
		return nil, err
	}
	if c.Clients, err = s.count(ctx, "clients", bson.M{}); err != nil {
		return nil, err
	}
	if c.ConsultRequests, err = s.count(ctx, "consult_requests", bson.M{}); err != nil {
		return nil, err
	}
	if c.PendingConsults, err = s.count(ctx, "consult_requests", bson.M{"status": models.ConsultPending}); err != nil {
		return nil, err
	}
	if c.Contacts, err = s.count(ctx, "contacts", bson.M{}); err != nil {
		return nil, err
	}
	if c.Volunteers, err = s.count(ctx, "volunteers", bson.M{}); err != nil {
		return nil, err
	}
	if c.ApprovedVolunteers, err = s.count(ctx, "volunteers", bson.M{"status": models.VolunteerApproved}); err != nil {
		return nil, err
	}
	if c.RecoveredClients, err = s.count(ctx, "clients", bson.M{"status": models.ClientRecovered}); err != nil {
		return nil, err
	}

	return &c, nil
}

// GetSeries returns the month-bucketed creation series for the last `months`
// months, one series per charted collection.
func (s *Store) GetSeries(ctx context.Context, months int) (*Series, error) {
	if months <= 0 {
		months = 12
	}
	since := time.Now().UTC().AddDate(0, -months, 0)

	var (
		sr  Series
		err error
	)

	// The blog chart tracks published output, not drafts in progress.
	if sr.Blogs, err = s.monthBuckets(ctx, "blogs", since, bson.M{"status": models.BlogPublished}); err != nil {
		return nil, err
	}
	if sr.ConsultRequests, err = s.monthBuckets(ctx, "consult_requests", since, nil); err != nil {
		return nil, err
	}
	if sr.Contacts, err = s.monthBuckets(ctx, "contacts", since, nil); err != nil {
		return nil, err
	}
	if sr.Volunteers, err = s.monthBuckets(ctx, "volunteers", since, nil); err != nil {
		return nil, err
	}

	return &sr, nil
}

func (s *Store) count(ctx context.Context, coll string, filter bson.M) (int64, error) {
	return s.db.Collection(coll).CountDocuments(ctx, filter)
}

// monthBuckets groups a collection's documents by creation month, optionally
// narrowed by an extra filter. Months with no documents produce no bucket;
// the chart fills the gaps.
func (s *Store) monthBuckets(ctx context.Context, coll string, since time.Time, extra bson.M) ([]MonthBucket, error) {
	match := bson.M{"created_at": bson.M{"$gte": since}}
	for k, v := range extra {
		match[k] = v
	}
	pipeline := []bson.M{
		{"$match": match},
		{"$group": bson.M{
			"_id": bson.M{"$dateToString": bson.M{
				"format": "%Y-%m",
				"date":   "$created_at",
			}},
			"count": bson.M{"$sum": 1},
		}},
		{"$sort": bson.M{"_id": 1}},
	}

	cur, err := s.db.Collection(coll).Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	buckets := []MonthBucket{}
	if err := cur.All(ctx, &buckets); err != nil {
		return nil, err
	}
	return buckets, nil
}
