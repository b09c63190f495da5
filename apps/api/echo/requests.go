package echoapi

import (
	"github.com/go-playground/validator/v10"

	"github.com/absedu/campus/core"
	"github.com/absedu/campus/core/announcement"
	"github.com/absedu/campus/core/user"
)

const (
	windowMonth   = "month"
	windowRolling = "rolling"

	defaultRollingDays = 30
)

type (
	LoginRequest struct {
		Number   string `json:"number" validate:"required"`
		Password string `json:"password" validate:"required"`
	}

	LoginResponse struct {
		Token string    `json:"token"`
		User  user.User `json:"user"`
	}

	StudentScheduleQuery struct {
		Date string `query:"date" validate:"omitempty,isodate"`
	}

	TeacherScheduleQuery struct {
		Faculty string `query:"faculty"`
	}

	BranchScheduleQuery struct {
		Branch string `query:"branch"`
		Window string `query:"window" validate:"omitempty,oneof=month rolling"`
		Days   int    `query:"days" validate:"omitempty,min=1,max=366"`
	}

	SuccessResponse struct {
		Success string `json:"success"`
	}

	// AnnouncementResponse is an announcement rendered for the signed-in user.
	AnnouncementResponse struct {
		announcement.Announcement
		Details announcement.Details `json:"details"`
		VideoID string               `json:"videoId,omitempty"`
	}
)

func (lr *LoginRequest) Validate(validate *validator.Validate) error {
	lr.Number = core.CleanString(lr.Number)
	return validate.Struct(lr)
}

func (q *StudentScheduleQuery) Validate(validate *validator.Validate) error {
	q.Date = core.CleanString(q.Date)
	return validate.Struct(q)
}

func (q *BranchScheduleQuery) Validate(validate *validator.Validate) error {
	q.Branch = core.CleanString(q.Branch)
	q.Window = core.CleanString(q.Window, true /* lower */)
	if q.Window == "" {
		q.Window = windowMonth
	}
	if q.Days == 0 {
		q.Days = defaultRollingDays
	}
	return validate.Struct(q)
}

func newAnnouncementResponse(ann announcement.Announcement, vals map[string]string) AnnouncementResponse {
	// details are parsed before substitution so values cannot add fields
	personalized := ann.Personalize(vals)
	return AnnouncementResponse{
		Announcement: personalized,
		Details:      ann.Details().Personalize(vals),
		VideoID:      personalized.VideoID(),
	}
}
