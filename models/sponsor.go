// file: models/sponsor.go
package models

import (
	"time"
)

type SponsorTier string

const (
	TierPlatinum SponsorTier = "platinum"
	TierGold     SponsorTier = "gold"
	TierSilver   SponsorTier = "silver"
	TierBronze   SponsorTier = "bronze"
)

type Showcase struct {
	YoutubeURL  string    `bson:"youtubeUrl" json:"youtubeUrl"`
	VideoID     string    `bson:"videoId" json:"videoId"`
	Title       string    `bson:"title" json:"title"`
	Description string    `bson:"description,omitempty" json:"description,omitempty"`
	UploadedAt  time.Time `bson:"uploadedAt" json:"uploadedAt"`
	IsActive    bool      `bson:"isActive" json:"isActive"`
}

// Sponsor is keyed case-insensitively by Name within one hackathon.
type Sponsor struct {
	Name     string      `bson:"name" json:"name"`
	Tier     SponsorTier `bson:"tier,omitempty" json:"tier,omitempty"`
	Logo     string      `bson:"logo,omitempty" json:"logo,omitempty"`
	Website  string      `bson:"website,omitempty" json:"website,omitempty"`
	Showcase *Showcase   `bson:"showcase,omitempty" json:"showcase,omitempty"`
}
