// Package checkpoint persists a running engine's lattice and pulse state
// to PostgreSQL via pgx. SPEC_FULL.md §10 notes the
// source has no analog for this — checkpointing was the surrounding
// SPPARKS framework's job — so this is host plumbing for crash recovery
// of the cmd/kmcengine process, not a core engine responsibility.
package checkpoint

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/openlattice/ald-kmc/pkg/kmctypes"
)

const schema = `
CREATE TABLE IF NOT EXISTS engine_checkpoints (
	engine_id    TEXT PRIMARY KEY,
	chemistry    TEXT NOT NULL,
	species      JSONB NOT NULL,
	coord        JSONB NOT NULL,
	pulse_mode   INT NOT NULL,
	pulse_cycle  DOUBLE PRECISION NOT NULL,
	sim_time     DOUBLE PRECISION NOT NULL,
	saved_at     TIMESTAMPTZ NOT NULL DEFAULT NOW()
);
`

// Store wraps a pgx connection pool, mirroring PostgresStore's
// Connect/Close/InitSchema shape.
type Store struct {
	pool *pgxpool.Pool
}

// Connect opens a pooled connection and verifies it with a ping.
func Connect(ctx context.Context, connStr string) (*Store, error) {
	pool, err := pgxpool.New(ctx, connStr)
	if err != nil {
		return nil, fmt.Errorf("checkpoint: unable to connect to database: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		return nil, fmt.Errorf("checkpoint: ping failed: %w", err)
	}
	log.Println("checkpoint: connected to PostgreSQL")
	return &Store{pool: pool}, nil
}

func (s *Store) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}

// InitSchema creates the checkpoint table if it does not already exist.
func (s *Store) InitSchema(ctx context.Context) error {
	if _, err := s.pool.Exec(ctx, schema); err != nil {
		return fmt.Errorf("checkpoint: failed to apply schema: %w", err)
	}
	return nil
}

// Snapshot is the minimal state a crash-recovered engine needs to
// resume: species and coord arrays plus the pulse scheduler's phase.
type Snapshot struct {
	EngineID   string
	Chemistry  string
	Species    []kmctypes.Species
	Coord      []int
	PulseMode  kmctypes.PulseMode
	PulseCycle float64
	SimTime    float64
}

// Save upserts engineID's current state, overwriting any prior
// checkpoint for the same id.
func (s *Store) Save(ctx context.Context, snap Snapshot) error {
	speciesJSON, err := json.Marshal(snap.Species)
	if err != nil {
		return fmt.Errorf("checkpoint: marshal species: %w", err)
	}
	coordJSON, err := json.Marshal(snap.Coord)
	if err != nil {
		return fmt.Errorf("checkpoint: marshal coord: %w", err)
	}

	const upsert = `
		INSERT INTO engine_checkpoints (engine_id, chemistry, species, coord, pulse_mode, pulse_cycle, sim_time)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (engine_id) DO UPDATE SET
			chemistry = EXCLUDED.chemistry,
			species = EXCLUDED.species,
			coord = EXCLUDED.coord,
			pulse_mode = EXCLUDED.pulse_mode,
			pulse_cycle = EXCLUDED.pulse_cycle,
			sim_time = EXCLUDED.sim_time,
			saved_at = NOW();
	`
	_, err = s.pool.Exec(ctx, upsert, snap.EngineID, snap.Chemistry, speciesJSON, coordJSON,
		int(snap.PulseMode), snap.PulseCycle, snap.SimTime)
	if err != nil {
		return fmt.Errorf("checkpoint: failed to save snapshot for %q: %w", snap.EngineID, err)
	}
	return nil
}

// Load fetches the most recent checkpoint for engineID. Returns
// (Snapshot{}, false, nil) if none exists.
func (s *Store) Load(ctx context.Context, engineID string) (Snapshot, bool, error) {
	const query = `
		SELECT chemistry, species, coord, pulse_mode, pulse_cycle, sim_time
		FROM engine_checkpoints WHERE engine_id = $1;
	`
	var snap Snapshot
	snap.EngineID = engineID
	var speciesJSON, coordJSON []byte
	var pulseMode int

	row := s.pool.QueryRow(ctx, query, engineID)
	err := row.Scan(&snap.Chemistry, &speciesJSON, &coordJSON, &pulseMode, &snap.PulseCycle, &snap.SimTime)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Snapshot{}, false, nil
		}
		return Snapshot{}, false, fmt.Errorf("checkpoint: failed to load snapshot for %q: %w", engineID, err)
	}
	snap.PulseMode = kmctypes.PulseMode(pulseMode)

	if err := json.Unmarshal(speciesJSON, &snap.Species); err != nil {
		return Snapshot{}, false, fmt.Errorf("checkpoint: unmarshal species: %w", err)
	}
	if err := json.Unmarshal(coordJSON, &snap.Coord); err != nil {
		return Snapshot{}, false, fmt.Errorf("checkpoint: unmarshal coord: %w", err)
	}
	return snap, true, nil
}
