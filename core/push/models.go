package push

type NewToken struct {
	Token string `json:"token" validate:"required,max=255"`
}
