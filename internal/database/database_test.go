package database

import (
	"context"
	"testing"
	"time"

	mr "github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/require"
)

func TestConnectMongo_InvalidURI(t *testing.T) {
	client, err := ConnectMongo(context.Background(), "not-a-mongo-uri", time.Second)
	require.Error(t, err)
	require.Nil(t, client)
	require.Contains(t, err.Error(), "mongo connect")
}

func TestConnectMongo_EmptyURI(t *testing.T) {
	client, err := ConnectMongo(context.Background(), "", time.Second)
	require.Error(t, err)
	require.Nil(t, client)
}

func TestConnectMongo_UnreachableServerKeepsClient(t *testing.T) {
	client, err := ConnectMongo(context.Background(), "mongodb://127.0.0.1:1/?connectTimeoutMS=100", 300*time.Millisecond)
	require.Error(t, err)
	require.Contains(t, err.Error(), "mongo ping")
	require.NotNil(t, client)
	require.NoError(t, client.Disconnect(context.Background()))
}

func TestConnectRedis(t *testing.T) {
	m, err := mr.Run()
	require.NoError(t, err)
	defer m.Close()

	client, err := ConnectRedis(context.Background(), m.Addr(), "", 0, time.Second)
	require.NoError(t, err)
	require.NotNil(t, client)
	require.NoError(t, client.Close())
}

func TestConnectRedis_Unreachable(t *testing.T) {
	m, err := mr.Run()
	require.NoError(t, err)
	addr := m.Addr()
	m.Close()

	client, err := ConnectRedis(context.Background(), addr, "", 0, 500*time.Millisecond)
	require.Error(t, err)
	require.NotNil(t, client)
	_ = client.Close()
}
