package announcement

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/absedu/campus/core/sheet"
	"github.com/absedu/campus/tests"
)

func TestFromRecord(t *testing.T) {
	rec := sheet.NewRecord(3,
		[]string{"Title", "Message", "Date", "More Details", "Audience"},
		[]string{"Exam", "Tomorrow", "2024-05-01", "Venue: Hall", "NEET"},
	)
	ann := FromRecord(rec)

	assert.Equal(t, "3", ann.ID, "id falls back to the row")
	assert.Equal(t, "Exam", ann.Title)
	assert.Equal(t, "Venue: Hall", ann.MoreDetails)
	assert.Equal(t, "", ann.Image)
	assert.Equal(t, map[string]string{"Audience": "NEET"}, ann.Extra)
	assert.Equal(t, "Hall", ann.Details().Location)

	rec = sheet.NewRecord(0, []string{"id", "moredetails", "video"}, []string{"a9", "x", "https://youtu.be/dQw4w9WgXcQ"})
	ann = FromRecord(rec)
	assert.Equal(t, "a9", ann.ID)
	assert.Equal(t, "x", ann.MoreDetails)
	assert.Equal(t, "dQw4w9WgXcQ", ann.VideoID())
	assert.Nil(t, ann.Extra)
}

func TestAnnouncement_Personalize(t *testing.T) {
	ann := Announcement{Title: "Hi {name}", Message: "Due {pendingFees}", MoreDetails: "By: {faculty}", Date: "{name}"}
	got := ann.Personalize(map[string]string{"name": "Sam", "pendingFees": "10"})

	assert.Equal(t, "Hi Sam", got.Title)
	assert.Equal(t, "Due 10", got.Message)
	assert.Equal(t, "By: {faculty}", got.MoreDetails)
	assert.Equal(t, "{name}", got.Date, "dates are not templated")
	assert.Equal(t, "Hi {name}", ann.Title)
}

func TestAnnouncement_Personalize_media(t *testing.T) {
	ann := Announcement{Image: "https://cdn/{batch}.png", Video: "https://youtu.be/{vid}"}
	got := ann.Personalize(map[string]string{"batch": "B1", "vid": "dQw4w9WgXcQ"})

	assert.Equal(t, "https://cdn/B1.png", got.Image)
	assert.Equal(t, "https://youtu.be/dQw4w9WgXcQ", got.Video)
	assert.Equal(t, "dQw4w9WgXcQ", got.VideoID())
}

func TestService_List(t *testing.T) {
	src := testutil.NewSource(map[string]sheet.Grid{testutil.RangeAnnouncements: testutil.AnnouncementsGrid()})
	svc := NewService(src, testutil.RangeAnnouncements)

	anns, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, anns, 3)

	assert.Equal(t, []string{"a2", "a1", "a3"}, []string{anns[0].ID, anns[1].ID, anns[2].ID})
	assert.Equal(t, map[string]string{"audience": "all"}, anns[1].Extra)
	assert.Equal(t, "High", anns[1].Details().Priority)
}

func TestService_List_stableOnEqualDates(t *testing.T) {
	src := testutil.NewSource(map[string]sheet.Grid{testutil.RangeAnnouncements: {
		{"title", "date"},
		{"a", "2024-01-01"},
		{"b", ""},
		{"c", "2024-01-01"},
		{"d", "2024-02-01"},
	}})
	anns, err := NewService(src, testutil.RangeAnnouncements).List(context.Background())
	require.NoError(t, err)

	var titles []string
	for _, a := range anns {
		titles = append(titles, a.Title)
	}
	assert.Equal(t, []string{"d", "a", "c", "b"}, titles)
}
