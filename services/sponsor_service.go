// file: services/sponsor_service.go
package services

import (
	"errors"
	"strings"

	"hatch/models"
)

var ErrSponsorNotFound = errors.New("sponsor or their showcase not found")

const (
	ShowcaseActionRemove     = "remove"
	ShowcaseActionDeactivate = "deactivate"
)

func sponsorIndex(sponsors []models.Sponsor, name string) int {
	for i := range sponsors {
		if strings.EqualFold(sponsors[i].Name, name) {
			return i
		}
	}
	return -1
}

// UpsertShowcase attaches a showcase video to the sponsor matched
// case-insensitively by name, creating the sponsor entry when absent.
// Tier, logo and website only overwrite when non-empty.
func UpsertShowcase(h *models.Hackathon, name string, tier models.SponsorTier, logo, website string, showcase models.Showcase) {
	if i := sponsorIndex(h.Sponsors, name); i >= 0 {
		sponsor := &h.Sponsors[i]
		sponsor.Showcase = &showcase
		if tier != "" {
			sponsor.Tier = tier
		}
		if logo != "" {
			sponsor.Logo = logo
		}
		if website != "" {
			sponsor.Website = website
		}
		return
	}
	h.Sponsors = append(h.Sponsors, models.Sponsor{
		Name:     name,
		Tier:     tier,
		Logo:     logo,
		Website:  website,
		Showcase: &showcase,
	})
}

// RemoveShowcase deletes or deactivates a sponsor's showcase.
func RemoveShowcase(h *models.Hackathon, name, action string) error {
	i := sponsorIndex(h.Sponsors, name)
	if i < 0 || h.Sponsors[i].Showcase == nil {
		return ErrSponsorNotFound
	}
	switch action {
	case ShowcaseActionRemove:
		h.Sponsors[i].Showcase = nil
	case ShowcaseActionDeactivate:
		h.Sponsors[i].Showcase.IsActive = false
	}
	return nil
}

// ListShowcases returns sponsors that have a showcase attached,
// optionally restricted to active ones.
func ListShowcases(h *models.Hackathon, activeOnly bool) []models.Sponsor {
	showcases := []models.Sponsor{}
	for _, s := range h.Sponsors {
		if s.Showcase == nil {
			continue
		}
		if activeOnly && !s.Showcase.IsActive {
			continue
		}
		showcases = append(showcases, s)
	}
	return showcases
}

// ReorderSponsors rewrites the sponsors array in the requested display
// order. Sponsors missing from the order list keep their relative
// position at the end.
func ReorderSponsors(h *models.Hackathon, order []string) []string {
	reordered := make([]models.Sponsor, 0, len(h.Sponsors))
	for _, name := range order {
		if i := sponsorIndex(h.Sponsors, name); i >= 0 {
			if sponsorIndex(reordered, h.Sponsors[i].Name) < 0 {
				reordered = append(reordered, h.Sponsors[i])
			}
		}
	}
	for _, s := range h.Sponsors {
		if sponsorIndex(reordered, s.Name) < 0 {
			reordered = append(reordered, s)
		}
	}
	h.Sponsors = reordered

	names := make([]string, len(reordered))
	for i, s := range reordered {
		names[i] = s.Name
	}
	return names
}
