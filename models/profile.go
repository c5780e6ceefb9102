// file: models/profile.go
package models

import (
	"time"
)

// RegistrationRef is one (hackathon, team) membership pair. A profile
// holds at most one entry per hack code.
type RegistrationRef struct {
	HackCode string `bson:"hackCode" json:"hackCode"`
	TeamID   string `bson:"teamId" json:"teamId"`
}

// Profile is the per-user reverse index, keyed by lowercase email and
// created lazily on first registration. It only answers "is this user
// already registered" and "which team is this user in"; the hackathon
// document stays authoritative for everything else.
type Profile struct {
	Email                string            `bson:"_id" json:"email"`
	HackathonsRegistered []RegistrationRef `bson:"hackathonsRegistered" json:"hackathonsRegistered"`
	HackathonsCreated    []string          `bson:"hackathonsCreated" json:"hackathonsCreated"`
	CreatedAt            time.Time         `bson:"createdAt" json:"createdAt"`
}

// RegistrationFor returns the membership entry for hackCode, or nil.
func (p *Profile) RegistrationFor(hackCode string) *RegistrationRef {
	for i := range p.HackathonsRegistered {
		if p.HackathonsRegistered[i].HackCode == hackCode {
			return &p.HackathonsRegistered[i]
		}
	}
	return nil
}
