package models

import "time"

// Package is a bookable service package from the catalog.
type Package struct {
	ID        string    `bson:"id" json:"id"`
	Title     string    `bson:"title" json:"title"`
	Price     float64   `bson:"price" json:"price"`
	PriceText string    `bson:"price_text,omitempty" json:"priceText,omitempty"` // Display form, e.g. "$150"
	CreatedAt time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt time.Time `bson:"updated_at" json:"updatedAt"`
}

// UpgradeLink maps a slug to a target package for a named upgrade path.
type UpgradeLink struct {
	Slug         string    `bson:"slug" json:"slug"`
	PackageTitle string    `bson:"package_title" json:"packageTitle"`
	Headline     string    `bson:"headline,omitempty" json:"headline,omitempty"`
	Description  string    `bson:"description,omitempty" json:"description,omitempty"`
	CreatedAt    time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt    time.Time `bson:"updated_at" json:"updatedAt"`
}
