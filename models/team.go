// file: models/team.go
package models

type TeamStatus string

const (
	TeamStatusActive   TeamStatus = "active"
	TeamStatusInactive TeamStatus = "inactive"
)

// Member identifies one participant inside a team.
type Member struct {
	Email       string `bson:"email" json:"email"`
	Name        string `bson:"name,omitempty" json:"name,omitempty"`
	Phone       string `bson:"phone,omitempty" json:"phone,omitempty"`
	Institution string `bson:"institution,omitempty" json:"institution,omitempty"`
}

// Submission holds the content (and, once graded, the score) a team
// handed in for one phase. One entry per (team, phase); a re-submit
// replaces the content in place.
type Submission struct {
	PhaseID int         `bson:"phaseId" json:"phaseId"`
	Content interface{} `bson:"submissions" json:"submissions"`
	Score   *float64    `bson:"score,omitempty" json:"score,omitempty"`
}

// Team lives inside the hackathon document's registrations array.
// TeamLeader is never nil while the team exists; a team with no leader
// and no members is removed from registrations entirely.
type Team struct {
	TeamID         string                 `bson:"teamId" json:"teamId"`
	TeamName       string                 `bson:"teamName" json:"teamName"`
	TeamLeader     *Member                `bson:"teamLeader" json:"teamLeader"`
	TeamMembers    []Member               `bson:"teamMembers" json:"teamMembers"`
	PaymentDetails map[string]interface{} `bson:"paymentDetails,omitempty" json:"paymentDetails,omitempty"`
	Submissions    []Submission           `bson:"submissions,omitempty" json:"submissions,omitempty"`
	Status         TeamStatus             `bson:"status,omitempty" json:"status,omitempty"`
}
