package service

import (
	"io"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"

	"vacaybot/internal/store"
)

func newTestCollections(t *testing.T) (*Collections, *logrus.Logger) {
	t.Helper()

	s, err := store.Open(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })

	collections, err := NewCollections(s)
	require.NoError(t, err)

	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return collections, logger
}
