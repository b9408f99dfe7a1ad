package repository

import (
	"testing"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
)

func TestNewUserRepository(t *testing.T) {
	pool := &pgxpool.Pool{}
	repo := NewUserRepository(pool)
	assert.NotNil(t, repo)
}

func TestNewWalletRepository(t *testing.T) {
	pool := &pgxpool.Pool{}
	repo := NewWalletRepository(pool)
	assert.NotNil(t, repo)
}
