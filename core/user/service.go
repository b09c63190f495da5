package user

import (
	"context"
	"errors"
	"sync"

	pkgerrors "github.com/pkg/errors"

	"github.com/absedu/campus/core"
	"github.com/absedu/campus/core/sheet"
)

var (
	// errors
	ErrNotFound = errors.New("user not found")
)

type (
	// TableCache memoizes the identity table. Implementations must be safe for concurrent use.
	TableCache interface {
		// Get returns ok=false on a miss.
		Get(ctx context.Context) (grid sheet.Grid, ok bool, err error)
		Set(ctx context.Context, grid sheet.Grid) error
		Invalidate(ctx context.Context) error
	}

	Service struct {
		src     sheet.Source
		rng     string
		cache   TableCache
		checker CredentialChecker
		logger  core.Logger

		mu sync.Mutex // serializes table loads
	}
)

func NewService(src sheet.Source, rng string, cache TableCache, checker CredentialChecker, logger core.Logger) *Service {
	return &Service{
		src:     src,
		rng:     rng,
		cache:   cache,
		checker: checker,
		logger:  logger,
	}
}

// Table returns the identity table, fetching it only when the cache is empty.
func (svc *Service) Table(ctx context.Context) ([]User, error) {
	grid, err := svc.grid(ctx)
	if err != nil {
		return nil, err
	}
	records, err := sheet.Materialize(grid)
	if err != nil {
		return nil, err
	}
	users := make([]User, 0, len(records))
	for _, rec := range records {
		users = append(users, FromRecord(rec))
	}
	return users, nil
}

func (svc *Service) grid(ctx context.Context) (sheet.Grid, error) {
	svc.mu.Lock()
	defer svc.mu.Unlock()

	grid, ok, err := svc.cache.Get(ctx)
	if err != nil {
		svc.logger.Warn("reading users cache", err)
	} else if ok {
		return grid, nil
	}

	grid, err = svc.src.Values(ctx, svc.rng)
	if err != nil {
		return nil, pkgerrors.Wrap(err, "fetching users")
	}
	if len(grid) == 0 {
		return nil, &sheet.EmptyGridError{Range: svc.rng}
	}
	if err = svc.cache.Set(ctx, grid); err != nil {
		svc.logger.Warn("writing users cache", err)
	}
	return grid, nil
}

// Authenticate returns the first user whose number and password match, or ErrNotFound.
func (svc *Service) Authenticate(ctx context.Context, number, password string) (User, error) {
	users, err := svc.Table(ctx)
	if err != nil {
		return User{}, err
	}
	number = core.CleanString(number)
	password = core.CleanString(password)
	for _, usr := range users {
		if core.CleanString(usr.Number) == number && svc.checker.Check(usr.Password, password) {
			return usr, nil
		}
	}
	return User{}, ErrNotFound
}

// GetByNumber returns the first user with the given phone number.
func (svc *Service) GetByNumber(ctx context.Context, number string) (User, error) {
	users, err := svc.Table(ctx)
	if err != nil {
		return User{}, err
	}
	number = core.CleanString(number)
	for _, usr := range users {
		if core.CleanString(usr.Number) == number {
			return usr, nil
		}
	}
	return User{}, ErrNotFound
}

// Invalidate drops the cached table; the next lookup fetches it again.
func (svc *Service) Invalidate(ctx context.Context) error {
	svc.mu.Lock()
	defer svc.mu.Unlock()
	return svc.cache.Invalidate(ctx)
}
