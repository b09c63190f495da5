package inmemdb

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/absedu/campus/core/push"
)

func TestPushTokenRepository(t *testing.T) {
	repo := NewPushTokenRepository(Open())
	ctx := context.Background()

	created := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	tkn, err := repo.SaveToken(ctx, push.Token{ID: "id-1", Token: "tkn-1", Number: "1", CreatedAt: created, UpdatedAt: created})
	require.NoError(t, err)
	assert.Equal(t, "id-1", tkn.ID)

	moved := created.Add(time.Hour)
	tkn2, err := repo.SaveToken(ctx, push.Token{ID: "id-2", Token: "tkn-1", Number: "2", CreatedAt: moved, UpdatedAt: moved})
	require.NoError(t, err)
	assert.Equal(t, push.Token{ID: "id-1", Token: "tkn-1", Number: "2", CreatedAt: created, UpdatedAt: moved}, tkn2)

	_, err = repo.SaveToken(ctx, push.Token{ID: "id-3", Token: "tkn-2", Number: "2", CreatedAt: moved, UpdatedAt: moved})
	require.NoError(t, err)

	tokens, err := repo.TokensByNumber(ctx, "2")
	require.NoError(t, err)
	require.Len(t, tokens, 2)
	assert.Equal(t, "tkn-1", tokens[0].Token)
	assert.Equal(t, "tkn-2", tokens[1].Token)

	tokens, err = repo.TokensByNumber(ctx, "1")
	require.NoError(t, err)
	assert.Empty(t, tokens)

	require.NoError(t, repo.DeleteToken(ctx, "tkn-1"))
	assert.Equal(t, push.ErrNotFound, repo.DeleteToken(ctx, "tkn-1"))
	_, err = repo.GetToken(ctx, "tkn-1")
	assert.Equal(t, push.ErrNotFound, err)
}

func TestPushTokenRepository_copies(t *testing.T) {
	repo := NewPushTokenRepository(Open())
	ctx := context.Background()

	tkn, err := repo.SaveToken(ctx, push.Token{ID: "id-1", Token: "tkn-1", Number: "1"})
	require.NoError(t, err)
	tkn.Number = "changed"

	got, err := repo.GetToken(ctx, "tkn-1")
	require.NoError(t, err)
	assert.Equal(t, "1", got.Number)
}
