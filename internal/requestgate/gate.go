// Package requestgate decides whether song requests are currently open.
//
// The value lives in the database and is mirrored in memory. When the
// database can not be reached the mirror answers instead and the result
// carries a warning, so the toggle keeps working until the process exits.
package requestgate

import (
	"context"
	"errors"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/kj-requests/kj-requests/internal/db/controller/requeststatus"
	"github.com/kj-requests/kj-requests/internal/metrics"
)

// FallbackWarning is attached to results served from memory.
const FallbackWarning = "Using in-memory fallback: request status could not be persisted"

// State is the answer of a read or write.
type State struct {
	Open    bool   `json:"open"`
	Warning string `json:"warning,omitempty"`
}

// Gate owns the open flag and its in-memory fallback.
type Gate struct {
	db       *gorm.DB
	fallback atomic.Bool
	now      func() time.Time
}

// New creates a Gate whose fallback starts at initial.
func New(db *gorm.DB, initial bool) *Gate {
	g := &Gate{db: db, now: time.Now}
	g.fallback.Store(initial)

	return g
}

// Fallback returns the in-memory value.
func (g *Gate) Fallback() bool {
	return g.fallback.Load()
}

// Read returns the stored flag and reseeds the fallback with it. Without a
// stored flag the fallback is returned as is.
func (g *Gate) Read(ctx context.Context) State {
	status, err := requeststatus.Latest(ctx, g.db)

	switch {
	case err == nil:
		g.fallback.Store(status.Open)

		return State{Open: status.Open}
	case errors.Is(err, requeststatus.ErrStatusNotFound):
		return State{Open: g.fallback.Load()}
	default:
		metrics.GateFallbacks.WithLabelValues("read").Inc()
		log.Warn().Err(err).Msg("reading request status failed, serving in-memory fallback")

		return State{Open: g.fallback.Load(), Warning: FallbackWarning}
	}
}

// Write stores the flag. The fallback is updated even when storing fails.
func (g *Gate) Write(ctx context.Context, open bool) State {
	g.fallback.Store(open)

	if _, err := requeststatus.SetLatest(ctx, g.db, open, g.now()); err != nil {
		metrics.GateFallbacks.WithLabelValues("write").Inc()
		log.Warn().Err(err).Bool("open", open).Msg("storing request status failed, kept in memory only")

		return State{Open: open, Warning: FallbackWarning}
	}

	log.Info().Bool("open", open).Msg("request status changed")

	return State{Open: open}
}
