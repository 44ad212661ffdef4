package db

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kj-requests/kj-requests/internal/config"
	"github.com/kj-requests/kj-requests/internal/db/models"
)

func TestConnectorReusesConnection(t *testing.T) {
	c := NewConnector(&config.DB{GormEngine: config.EngineSQLite})
	t.Cleanup(func() {
		_ = c.Close()
	})

	first, err := c.DB()
	require.NoError(t, err)

	second, err := c.DB()
	require.NoError(t, err)

	assert.Same(t, first, second)
	assert.True(t, first.Migrator().HasTable(&models.SongRequest{}))
	assert.True(t, first.Migrator().HasTable(&models.RequestStatus{}))
}

func TestConnectorCloseAllowsReopen(t *testing.T) {
	c := NewConnector(&config.DB{GormEngine: config.EngineSQLite})

	first, err := c.DB()
	require.NoError(t, err)
	require.NoError(t, c.Close())

	second, err := c.DB()
	require.NoError(t, err)
	assert.NotSame(t, first, second)
	require.NoError(t, c.Close())

	// closing twice is harmless
	require.NoError(t, c.Close())
}

func TestOpenErrors(t *testing.T) {
	_, err := Open(nil)
	require.ErrorIs(t, err, ErrConfigNil)

	_, err = Open(&config.DB{GormEngine: "mongodb"})
	require.ErrorIs(t, err, config.ErrUnknownGormEngine)
}

func TestConnectorDoesNotCacheFailure(t *testing.T) {
	cfg := &config.DB{GormEngine: "mongodb"}
	c := NewConnector(cfg)

	_, err := c.DB()
	require.Error(t, err)

	cfg.GormEngine = config.EngineSQLite

	db, err := c.DB()
	require.NoError(t, err)
	assert.NotNil(t, db)
	require.NoError(t, c.Close())
}
