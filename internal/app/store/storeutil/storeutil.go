// internal/app/store/storeutil/storeutil.go
package storeutil

import (
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// NewestFirst returns *options.FindOptions sorting by created_at descending.
// Every public and admin listing in the API uses this order.
func NewestFirst() *options.FindOptions {
	return options.Find().SetSort(bson.M{"created_at": -1})
}

// Paginate returns *options.FindOptions with skip/limit given a 1-based page,
// sorted newest first.
func Paginate(limit, page int64) *options.FindOptions {
	if limit <= 0 {
		limit = 20
	}
	if page <= 0 {
		page = 1
	}
	sk := (page - 1) * limit
	return NewestFirst().SetLimit(limit).SetSkip(sk)
}
