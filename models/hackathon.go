// file: models/hackathon.go
package models

import (
	"time"
)

type Organiser struct {
	Name  string `bson:"name" json:"name"`
	Email string `bson:"email,omitempty" json:"email,omitempty"`
}

// Hackathon is the aggregate document: the single source of truth for
// one event's configuration, admins, registrations, announcements,
// sponsors and published results. Keyed by the generated hack code.
// Version guards the whole-document read-modify-write cycle (see
// database.MutateHackathon).
type Hackathon struct {
	HackCode         string                 `bson:"_id" json:"hackCode"`
	EventName        string                 `bson:"eventName,omitempty" json:"eventName,omitempty"`
	EventDescription string                 `bson:"eventDescription,omitempty" json:"eventDescription,omitempty"`
	EventStartDate   string                 `bson:"eventStartDate,omitempty" json:"eventStartDate,omitempty"`
	EventEndDate     string                 `bson:"eventEndDate,omitempty" json:"eventEndDate,omitempty"`
	Organisers       []Organiser            `bson:"organisers,omitempty" json:"organisers,omitempty"`
	Admins           []string               `bson:"admins" json:"admins"`
	Registrations    []Team                 `bson:"registrations,omitempty" json:"registrations,omitempty"`
	Announcements    []Announcement         `bson:"announcements,omitempty" json:"announcements,omitempty"`
	Sponsors         []Sponsor              `bson:"sponsors,omitempty" json:"sponsors,omitempty"`
	Results          *Results               `bson:"results,omitempty" json:"results,omitempty"`
	Metadata         map[string]interface{} `bson:"metadata,omitempty" json:"metadata,omitempty"`
	Version          int64                  `bson:"version" json:"-"`
	CreatedAt        time.Time              `bson:"createdAt" json:"createdAt"`
}

// IsAdmin reports whether the given email may manage this hackathon.
func (h *Hackathon) IsAdmin(email string) bool {
	for _, a := range h.Admins {
		if a == email {
			return true
		}
	}
	return false
}

// FindTeam returns a pointer into Registrations, or nil.
func (h *Hackathon) FindTeam(teamID string) *Team {
	for i := range h.Registrations {
		if h.Registrations[i].TeamID == teamID {
			return &h.Registrations[i]
		}
	}
	return nil
}

type LeaderboardEntry struct {
	TeamID      string      `bson:"teamId" json:"teamId"`
	TeamName    string      `bson:"teamName" json:"teamName"`
	MemberCount int         `bson:"memberCount,omitempty" json:"memberCount,omitempty"`
	PhaseScores interface{} `bson:"phaseScores,omitempty" json:"phaseScores,omitempty"`
	TotalScore  float64     `bson:"totalScore" json:"totalScore"`
	Rank        int         `bson:"rank" json:"rank"`
}

// Results is absent until an admin publishes; re-publishing replaces it.
type Results struct {
	EventName   string             `bson:"eventName" json:"eventName"`
	HackCode    string             `bson:"hackCode" json:"hackCode"`
	Leaderboard []LeaderboardEntry `bson:"leaderboard" json:"leaderboard"`
	TotalTeams  int                `bson:"totalTeams" json:"totalTeams"`
	PublishedAt string             `bson:"publishedAt" json:"publishedAt"`
	PublishedBy string             `bson:"publishedBy" json:"publishedBy"`
}
