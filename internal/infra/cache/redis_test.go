package cache

import (
	"context"
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewClient_Unreachable(t *testing.T) {
	// Свободный порт, на котором никто не слушает
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := ln.Addr().String()
	require.NoError(t, ln.Close())

	client, err := NewClient(context.Background(), addr, "", 0, 200*time.Millisecond)
	assert.ErrorIs(t, err, ErrStore)
	assert.Nil(t, client)
}
