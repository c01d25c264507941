package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Document kinds accepted as driver attachments. Each kind maps to at most
// one stored reference.
const (
	DocumentKindIdentity = "identityDocument"
	DocumentKindLicense  = "licenseDocument"
)

// DocumentKinds lists every attachment field a create/update request may carry.
var DocumentKinds = []string{DocumentKindIdentity, DocumentKindLicense}

type Driver struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name          string             `bson:"name" json:"name" validate:"required"`
	VehicleNumber string             `bson:"vehicle_number" json:"vehicleNumber" validate:"required"`
	Phone         string             `bson:"phone" json:"phone" validate:"required"`
	Status        string             `bson:"status" json:"status" validate:"required"`
	VehicleType   string             `bson:"vehicle_type,omitempty" json:"vehicleType,omitempty"`
	Documents     map[string]string  `bson:"documents,omitempty" json:"documents,omitempty"`
	Location      *Position          `bson:"location,omitempty" json:"location,omitempty"`
	CreatedAt     time.Time          `bson:"created_at" json:"createdAt"`
	UpdatedAt     time.Time          `bson:"updated_at" json:"updatedAt"`
}

// Position is the single most recent report for a driver. Timestamp is the
// caller-supplied observation time and is stored as-is.
type Position struct {
	Latitude  float64 `bson:"latitude" json:"latitude"`
	Longitude float64 `bson:"longitude" json:"longitude"`
	Timestamp string  `bson:"timestamp" json:"timestamp"`
}
