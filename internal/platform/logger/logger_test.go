package logger

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestWithRedactsSecretKeys(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	log := NewWithCore(core).With("service", "PostgresService")

	log.Info("connecting", "dsn", "postgres://u:p@host/db", "host", "localhost")

	entries := logs.All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	require.Equal(t, "[REDACTED]", fields["dsn"])
	require.Equal(t, "localhost", fields["host"])
	require.Equal(t, "PostgresService", fields["service"])
}

func TestHashedKeysAreStable(t *testing.T) {
	a := sanitizeValue("client_ip", "10.0.0.1")
	b := sanitizeValue("client_ip", "10.0.0.1")
	require.Equal(t, a, b)
	require.Contains(t, a, "hash:")
}

func TestOddKeyValueCountKeepsTrailingValue(t *testing.T) {
	out := sanitizeKVs([]interface{}{"a", 1, "dangling"})
	require.Equal(t, []interface{}{"a", 1, "dangling"}, out)
}
