package main

import (
	"context"
	"testing"

	mr "github.com/alicebob/miniredis/v2"
	"github.com/gogotex/todo-service/internal/config"
	"github.com/gogotex/todo-service/internal/todo"
	"github.com/gogotex/todo-service/internal/todo/repository"
	"github.com/stretchr/testify/require"
)

func loadTestConfig(t *testing.T, env map[string]string) *config.Config {
	t.Helper()
	t.Setenv("ENV_FILE", t.TempDir()+"/missing.env")
	t.Setenv("DB_CONN", "")
	t.Setenv("MONGODB_URI", "")
	t.Setenv("MONGODB_TIMEOUT", "1")
	for k, v := range env {
		t.Setenv(k, v)
	}
	cfg, err := config.LoadConfig()
	require.NoError(t, err)
	return cfg
}

func TestOpenRepository_UnusableConnectionString(t *testing.T) {
	cases := map[string]string{
		"empty":   "",
		"invalid": "not-a-uri",
	}
	for name, uri := range cases {
		t.Run(name, func(t *testing.T) {
			cfg := loadTestConfig(t, map[string]string{"STORE_BACKEND": "mongo", "DB_CONN": uri})
			ctx := context.Background()

			repo, closeStore := openRepository(ctx, cfg)
			defer closeStore()
			require.IsType(t, &repository.UnavailableRepo{}, repo)

			_, err := repo.Find(ctx)
			require.ErrorIs(t, err, todo.ErrUnavailable)
			_, err = repo.Create(ctx, todo.Fields{})
			require.ErrorIs(t, err, todo.ErrUnavailable)
		})
	}
}

func TestOpenRepository_Memory(t *testing.T) {
	cfg := loadTestConfig(t, map[string]string{"STORE_BACKEND": "memory"})
	repo, closeStore := openRepository(context.Background(), cfg)
	defer closeStore()
	require.IsType(t, &repository.MemoryRepo{}, repo)
}

func TestOpenRepository_Redis(t *testing.T) {
	m, err := mr.Run()
	require.NoError(t, err)
	defer m.Close()

	cfg := loadTestConfig(t, map[string]string{
		"STORE_BACKEND": "redis",
		"REDIS_HOST":    m.Host(),
		"REDIS_PORT":    m.Port(),
	})
	ctx := context.Background()
	repo, closeStore := openRepository(ctx, cfg)
	defer closeStore()
	require.IsType(t, &repository.RedisRepo{}, repo)

	list, err := repo.Find(ctx)
	require.NoError(t, err)
	require.Empty(t, list)
}
