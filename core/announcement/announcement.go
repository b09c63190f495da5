package announcement

import (
	"context"
	"sort"
	"strconv"

	"github.com/pkg/errors"

	"github.com/absedu/campus/core/sheet"
)

// column names as they appear in the announcements sheet
var (
	colID          = "id"
	colTitle       = "title"
	colMessage     = "message"
	colDate        = "date"
	colImage       = "image"
	colVideo       = "video"
	colMoreDetails = []string{"more details", "moredetails", "more_details"}
)

type Announcement struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Message     string `json:"message"`
	Date        string `json:"date"`
	Image       string `json:"image"`
	Video       string `json:"video"`
	MoreDetails string `json:"moreDetails"`

	// Extra holds every other column, keyed by its original header.
	Extra map[string]string `json:"extra,omitempty"`
}

// FromRecord maps an announcement row; the id falls back to the row position.
func FromRecord(rec sheet.Record) Announcement {
	ann := Announcement{
		ID:          rec.Value(colID),
		Title:       rec.Value(colTitle),
		Message:     rec.Value(colMessage),
		Date:        rec.Value(colDate),
		Image:       rec.Value(colImage),
		Video:       rec.Value(colVideo),
		MoreDetails: rec.First(colMoreDetails...),
	}
	if ann.ID == "" {
		ann.ID = strconv.Itoa(rec.Row)
	}

	known := map[string]bool{colID: true, colTitle: true, colMessage: true, colDate: true, colImage: true, colVideo: true}
	for _, col := range colMoreDetails {
		known[col] = true
	}
	for header, val := range rec.Original() {
		if known[sheet.NormalizeHeader(header)] {
			continue
		}
		if ann.Extra == nil {
			ann.Extra = make(map[string]string)
		}
		ann.Extra[header] = val
	}
	return ann
}

// Details parses the More details block.
func (a Announcement) Details() Details {
	return ParseDetails(a.MoreDetails)
}

// VideoID is the YouTube id of the video column, "" when there is none.
func (a Announcement) VideoID() string {
	return VideoID(a.Video)
}

// Personalize substitutes vals into the title, message, image and video URLs and the More details block.
func (a Announcement) Personalize(vals map[string]string) Announcement {
	a.Title = Personalize(a.Title, vals)
	a.Message = Personalize(a.Message, vals)
	a.Image = Personalize(a.Image, vals)
	a.Video = Personalize(a.Video, vals)
	a.MoreDetails = Personalize(a.MoreDetails, vals)
	return a
}

type Service struct {
	src sheet.Source
	rng string
}

func NewService(src sheet.Source, rng string) *Service {
	return &Service{src: src, rng: rng}
}

// List returns announcements newest first; rows sharing a date keep their sheet order.
func (svc *Service) List(ctx context.Context) ([]Announcement, error) {
	records, err := sheet.Fetch(ctx, svc.src, svc.rng)
	if err != nil {
		return nil, errors.Wrap(err, "fetching announcements")
	}
	anns := make([]Announcement, 0, len(records))
	for _, rec := range records {
		anns = append(anns, FromRecord(rec))
	}
	sort.SliceStable(anns, func(i, j int) bool {
		return anns[i].Date > anns[j].Date
	})
	return anns, nil
}
