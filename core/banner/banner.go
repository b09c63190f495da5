package banner

import (
	"context"
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/absedu/campus/core/sheet"
)

// UnorderedKey sorts banners without a numeric order after every ordered one.
const UnorderedKey = 999

type Banner struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	ImageURL string `json:"imageUrl"`
	Link     string `json:"link"`
	Order    string `json:"order"`
	IsActive string `json:"isActive"`
}

// FromRecord reads the banner columns by position: id, title, imageUrl, link, order, isActive.
func FromRecord(rec sheet.Record) Banner {
	return Banner{
		ID:       rec.At(0),
		Title:    rec.At(1),
		ImageURL: rec.At(2),
		Link:     rec.At(3),
		Order:    rec.At(4),
		IsActive: sheet.ActiveFlag(rec.At(5)),
	}
}

// SortKey is the numeric order, UnorderedKey when absent, not a number, NaN or infinite.
func (b Banner) SortKey() float64 {
	key, err := strconv.ParseFloat(strings.TrimSpace(b.Order), 64)
	if err != nil || math.IsNaN(key) || math.IsInf(key, 0) {
		return UnorderedKey
	}
	return key
}

func (b Banner) Active() bool {
	return b.IsActive == "TRUE"
}

// Sort orders banners by SortKey, keeping the sheet order among equal keys.
func Sort(banners []Banner) {
	sort.SliceStable(banners, func(i, j int) bool {
		return banners[i].SortKey() < banners[j].SortKey()
	})
}

type Service struct {
	src sheet.Source
	rng string
}

func NewService(src sheet.Source, rng string) *Service {
	return &Service{src: src, rng: rng}
}

// List returns the active banners in display order.
func (svc *Service) List(ctx context.Context) ([]Banner, error) {
	records, err := sheet.Fetch(ctx, svc.src, svc.rng)
	if err != nil {
		return nil, errors.Wrap(err, "fetching banners")
	}
	banners := make([]Banner, 0, len(records))
	for _, rec := range records {
		if bnr := FromRecord(rec); bnr.Active() {
			banners = append(banners, bnr)
		}
	}
	Sort(banners)
	return banners, nil
}
