package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Days the event runs on. Day values outside this set are rejected at intake.
var Days = []string{"30", "31"}

// GeoPoint is a GeoJSON point. Coordinates are [lon, lat], the order the
// 2dsphere index expects.
type GeoPoint struct {
	Type        string    `json:"type" bson:"type"`
	Coordinates []float64 `json:"coordinates" bson:"coordinates"`
}

func NewGeoPoint(lat, lon float64) *GeoPoint {
	return &GeoPoint{
		Type:        "Point",
		Coordinates: []float64{lon, lat},
	}
}

func (g *GeoPoint) Latitude() float64 {
	if len(g.Coordinates) >= 2 {
		return g.Coordinates[1]
	}
	return 0
}

func (g *GeoPoint) Longitude() float64 {
	if len(g.Coordinates) >= 1 {
		return g.Coordinates[0]
	}
	return 0
}

type StartPoint struct {
	Address string    `json:"address" bson:"address"`
	Lat     float64   `json:"lat" bson:"lat"`
	Lon     float64   `json:"lon" bson:"lon"`
	Geo     *GeoPoint `json:"geo,omitempty" bson:"geo,omitempty"`
}

// RideRequest is the canonical persisted record. It is produced only by the
// validator; ID, CreatedAt and StartPoint.Geo are stamped on the insert path.
// CreatedAt is kept as an RFC 3339 string so that records written by earlier
// deployments decode without a schema migration.
type RideRequest struct {
	ID           primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Name         string             `json:"name" bson:"name"`
	Phone        string             `json:"phone" bson:"phone"`
	Telegram     string             `json:"tg" bson:"tg"`
	Day          string             `json:"day" bson:"day"`
	EarliestTime string             `json:"earliest_time" bson:"earliest_time"`
	People       int                `json:"people" bson:"people"`
	StartPoint   StartPoint         `json:"start_point" bson:"start_point"`
	CreatedAt    string             `json:"created_at" bson:"created_at"`
}

// StartPointInput is the raw inbound start point. Lat/Lon are pointers so a
// missing coordinate is distinguishable from a legitimate zero.
type StartPointInput struct {
	Address string   `json:"address" validate:"required,min=2,max=200"`
	Lat     *float64 `json:"lat" validate:"required,gte=-90,lte=90"`
	Lon     *float64 `json:"lon" validate:"required,gte=-180,lte=180"`
}

// RideRequestInput is the public submission schema, pre-normalization.
type RideRequestInput struct {
	Name         string           `json:"name" validate:"required,max=100"`
	Phone        string           `json:"phone" validate:"required,min=5,max=32"`
	Telegram     string           `json:"tg" validate:"omitempty,max=64"`
	Day          string           `json:"day" validate:"required,ride_day"`
	EarliestTime string           `json:"earliest_time" validate:"required,clock_time"`
	People       *int             `json:"people" validate:"omitempty,gte=1,lte=10"`
	StartPoint   *StartPointInput `json:"start_point" validate:"required"`
}
