package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Query is one tracked AI-platform query as stored in the queries collection.
// Historical documents may miss fields; decoding leaves them at their zero
// value instead of failing (missing platform -> "", missing carbon -> 0.0,
// missing timestamp -> zero time).
type Query struct {
	ID          primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	UserID      primitive.ObjectID `json:"-" bson:"user_id"`
	Platform    string             `json:"platform" bson:"platform"`
	CarbonGrams float64            `json:"carbon_grams" bson:"carbon_grams"`
	Timestamp   time.Time          `json:"timestamp" bson:"timestamp"`
}

// SubmitQueryRequest is the payload recorded by the browser extension.
// CarbonGrams may be omitted; the platform catalog estimate is used then.
type SubmitQueryRequest struct {
	Platform    string  `json:"platform" binding:"required"`
	CarbonGrams float64 `json:"carbon_grams"`
}

type SubmitQueryResponse struct {
	ID      string `json:"id"`
	Message string `json:"message"`
}
