// file: services/sponsor_service_test.go
package services

import (
	"testing"

	"hatch/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func showcaseOf(videoID string) models.Showcase {
	return models.Showcase{
		YoutubeURL: "https://www.youtube.com/watch?v=" + videoID,
		VideoID:    videoID,
		Title:      "demo " + videoID,
		IsActive:   true,
	}
}

func TestUpsertShowcaseCreatesSponsor(t *testing.T) {
	h := testHackathon()

	UpsertShowcase(h, "Acme", models.TierGold, "logo.png", "https://acme.io", showcaseOf("abc123def45"))

	require.Len(t, h.Sponsors, 1)
	assert.Equal(t, "Acme", h.Sponsors[0].Name)
	assert.Equal(t, models.TierGold, h.Sponsors[0].Tier)
	require.NotNil(t, h.Sponsors[0].Showcase)
	assert.Equal(t, "abc123def45", h.Sponsors[0].Showcase.VideoID)
}

func TestUpsertShowcaseMatchesCaseInsensitively(t *testing.T) {
	h := testHackathon()
	UpsertShowcase(h, "Acme", models.TierGold, "logo.png", "https://acme.io", showcaseOf("old12345678"))

	UpsertShowcase(h, "ACME", "", "", "", showcaseOf("new12345678"))

	require.Len(t, h.Sponsors, 1)
	assert.Equal(t, "new12345678", h.Sponsors[0].Showcase.VideoID)
	// Empty tier, logo and website never clobber existing values.
	assert.Equal(t, models.TierGold, h.Sponsors[0].Tier)
	assert.Equal(t, "logo.png", h.Sponsors[0].Logo)
	assert.Equal(t, "https://acme.io", h.Sponsors[0].Website)
}

func TestRemoveShowcaseActions(t *testing.T) {
	h := testHackathon()
	UpsertShowcase(h, "Acme", models.TierBronze, "", "", showcaseOf("abc123def45"))
	UpsertShowcase(h, "Globex", models.TierSilver, "", "", showcaseOf("def456abc12"))

	require.NoError(t, RemoveShowcase(h, "acme", ShowcaseActionDeactivate))
	require.NotNil(t, h.Sponsors[0].Showcase)
	assert.False(t, h.Sponsors[0].Showcase.IsActive)

	require.NoError(t, RemoveShowcase(h, "Globex", ShowcaseActionRemove))
	assert.Nil(t, h.Sponsors[1].Showcase)
	// The sponsor record itself survives a showcase removal.
	assert.Equal(t, "Globex", h.Sponsors[1].Name)

	assert.ErrorIs(t, RemoveShowcase(h, "Globex", ShowcaseActionRemove), ErrSponsorNotFound)
	assert.ErrorIs(t, RemoveShowcase(h, "nobody", ShowcaseActionDeactivate), ErrSponsorNotFound)
}

func TestListShowcasesActiveOnly(t *testing.T) {
	h := testHackathon()
	UpsertShowcase(h, "Acme", models.TierBronze, "", "", showcaseOf("abc123def45"))
	UpsertShowcase(h, "Globex", models.TierSilver, "", "", showcaseOf("def456abc12"))
	h.Sponsors = append(h.Sponsors, models.Sponsor{Name: "NoVideo", Tier: models.TierGold})
	require.NoError(t, RemoveShowcase(h, "Globex", ShowcaseActionDeactivate))

	all := ListShowcases(h, false)
	active := ListShowcases(h, true)

	assert.Len(t, all, 2)
	require.Len(t, active, 1)
	assert.Equal(t, "Acme", active[0].Name)
}

func TestReorderSponsors(t *testing.T) {
	h := testHackathon()
	for _, name := range []string{"A", "B", "C", "D"} {
		h.Sponsors = append(h.Sponsors, models.Sponsor{Name: name})
	}

	names := ReorderSponsors(h, []string{"c", "A", "c", "unknown"})

	// Named sponsors lead in request order, the rest keep their
	// relative position at the end. Duplicates and unknown names are
	// ignored.
	assert.Equal(t, []string{"C", "A", "B", "D"}, names)
	require.Len(t, h.Sponsors, 4)
	assert.Equal(t, "C", h.Sponsors[0].Name)
}
