package inmemdb

import (
	"context"
	"sort"

	"github.com/absedu/campus/core/push"
)

type pushTokenRepository struct {
	db *pushTable
}

var _ push.Repository = (*pushTokenRepository)(nil) // interface compliance check

func NewPushTokenRepository(db *DB) *pushTokenRepository {
	return &pushTokenRepository{db: db.push}
}

func (repo *pushTokenRepository) SaveToken(_ context.Context, tkn push.Token) (push.Token, error) {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()

	// an existing token moves to the new number and keeps its id
	if orig, ok := repo.db.t[tkn.Token]; ok {
		orig.Number = tkn.Number
		orig.UpdatedAt = tkn.UpdatedAt
		return *orig, nil
	}
	repo.db.t[tkn.Token] = &tkn
	return tkn, nil
}

func (repo *pushTokenRepository) GetToken(_ context.Context, token string) (push.Token, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()

	if tkn, ok := repo.db.t[token]; ok {
		return *tkn, nil
	}
	return push.Token{}, push.ErrNotFound
}

func (repo *pushTokenRepository) TokensByNumber(_ context.Context, number string) ([]push.Token, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()

	tokens := make([]push.Token, 0)
	for _, tkn := range repo.db.t {
		if tkn.Number == number {
			tokens = append(tokens, *tkn)
		}
	}
	sort.Slice(tokens, func(i, j int) bool {
		if tokens[i].CreatedAt.Equal(tokens[j].CreatedAt) {
			return tokens[i].ID < tokens[j].ID
		}
		return tokens[i].CreatedAt.Before(tokens[j].CreatedAt)
	})
	return tokens, nil
}

func (repo *pushTokenRepository) DeleteToken(_ context.Context, token string) error {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()

	if _, ok := repo.db.t[token]; !ok {
		return push.ErrNotFound
	}
	delete(repo.db.t, token)
	return nil
}
