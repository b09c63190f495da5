package push

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/absedu/campus/core"
)

var (
	// errors
	ErrNotFound = errors.New("push token not found")

	NowFunc = time.Now // mockable
)

type (
	// Token is a device push token registered by a signed-in user.
	Token struct {
		ID        string    `json:"id" db:"id"`
		Token     string    `json:"token" db:"token"`
		Number    string    `json:"number" db:"number"`
		CreatedAt time.Time `json:"createdAt" db:"created_at"`
		UpdatedAt time.Time `json:"updatedAt" db:"updated_at"`
	}

	Repository interface {
		// SaveToken inserts the token, or moves an existing one to tkn.Number.
		SaveToken(ctx context.Context, tkn Token) (Token, error)
		GetToken(ctx context.Context, token string) (Token, error)
		TokensByNumber(ctx context.Context, number string) ([]Token, error)
		DeleteToken(ctx context.Context, token string) error
	}

	// Notifier forwards a registered token to the delivery backend.
	Notifier interface {
		Notify(ctx context.Context, token string) error
	}

	Service struct {
		repo     Repository
		notifier Notifier
		logger   core.Logger
		timeout  time.Duration

		wg sync.WaitGroup
	}
)

func NewService(repo Repository, notifier Notifier, logger core.Logger, timeout time.Duration) *Service {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Service{repo: repo, notifier: notifier, logger: logger, timeout: timeout}
}

// Register stores the token for the user and forwards it in the background.
// Forwarding failures are logged, never returned.
func (svc *Service) Register(ctx context.Context, number string, nt NewToken) (Token, error) {
	number = core.CleanString(number)
	token := core.CleanString(nt.Token)
	if token == "" {
		return Token{}, core.NewValidationError(nil, core.FieldError{Field: "token", Error: "this field is required"})
	}

	now := NowFunc().UTC()
	tkn, err := svc.repo.SaveToken(ctx, Token{
		ID:        uuid.New().String(),
		Token:     token,
		Number:    number,
		CreatedAt: now,
		UpdatedAt: now,
	})
	if err != nil {
		return Token{}, err
	}

	if svc.notifier != nil {
		svc.wg.Add(1)
		go svc.forward(token)
	}
	return tkn, nil
}

func (svc *Service) forward(token string) {
	defer svc.wg.Done()
	ctx, cancel := context.WithTimeout(context.Background(), svc.timeout)
	defer cancel()
	if err := svc.notifier.Notify(ctx, token); err != nil {
		svc.logger.Warn("forwarding push token", err)
	}
}

// Wait blocks until every background forward has finished.
func (svc *Service) Wait() {
	svc.wg.Wait()
}

func (svc *Service) TokensOf(ctx context.Context, number string) ([]Token, error) {
	return svc.repo.TokensByNumber(ctx, core.CleanString(number))
}

// Unregister removes the token when it belongs to number.
func (svc *Service) Unregister(ctx context.Context, number, token string) error {
	tkn, err := svc.repo.GetToken(ctx, core.CleanString(token))
	if err != nil {
		return err
	}
	if tkn.Number != core.CleanString(number) {
		return ErrNotFound
	}
	return svc.repo.DeleteToken(ctx, tkn.Token)
}
