package models

import "time"

// Service is a read-only catalog entry. The booking engine treats the
// catalog as a pricing oracle at checkout time.
type Service struct {
	ID              string    `bson:"id" json:"id"`
	NameEn          string    `bson:"name_en" json:"name_en"`
	NameSw          string    `bson:"name_sw" json:"name_sw"`
	DescriptionEn   string    `bson:"description_en" json:"description_en"`
	DescriptionSw   string    `bson:"description_sw" json:"description_sw"`
	BasePrice       float64   `bson:"base_price" json:"base_price"`
	DurationMinutes int       `bson:"duration_minutes" json:"duration_minutes"`
	Rating          float64   `bson:"rating" json:"rating"`
	ImageURL        string    `bson:"image_url" json:"image_url"`
	CategoryEn      string    `bson:"category_en" json:"category_en"`
	CategorySw      string    `bson:"category_sw" json:"category_sw"`
	CreatedAt       time.Time `bson:"created_at" json:"created_at"`
}
