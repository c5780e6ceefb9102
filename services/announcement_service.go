// file: services/announcement_service.go
package services

import (
	"time"

	"hatch/models"
)

// FilterActiveAnnouncements drops expired entries from the view.
// Expired announcements stay in the document; they are only filtered
// on read.
func FilterActiveAnnouncements(announcements []models.Announcement, now time.Time) []models.Announcement {
	active := []models.Announcement{}
	for _, a := range announcements {
		if a.ExpiryDate.After(now) {
			active = append(active, a)
		}
	}
	return active
}
