package main

import (
	"bufio"
	"context"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/openlattice/ald-kmc/internal/api"
	"github.com/openlattice/ald-kmc/internal/catalog"
	"github.com/openlattice/ald-kmc/internal/checkpoint"
	"github.com/openlattice/ald-kmc/internal/chemistry"
	_ "github.com/openlattice/ald-kmc/internal/chemistry/hfo2"
	_ "github.com/openlattice/ald-kmc/internal/chemistry/zno"
	"github.com/openlattice/ald-kmc/internal/config"
	"github.com/openlattice/ald-kmc/internal/engine"
	"github.com/openlattice/ald-kmc/internal/eventpool"
	"github.com/openlattice/ald-kmc/internal/pulse"
	"github.com/openlattice/ald-kmc/internal/rng"
	"github.com/openlattice/ald-kmc/internal/sampler"
	"github.com/openlattice/ald-kmc/pkg/kmctypes"
)

func main() {
	log.Println("Starting ALD lattice KMC engine...")

	chemNames := strings.Split(getEnvOrDefault("CHEMISTRIES", "hfo2,zno"), ",")
	latticeSize := atoiOrDefault(getEnvOrDefault("LATTICE_SIZE", "8"), 8)
	temperature := atofOrDefault(getEnvOrDefault("TEMPERATURE", "600"), 600)
	seed := int64(atoiOrDefault(getEnvOrDefault("RNG_SEED", "1"), 1))

	var store *checkpoint.Store
	if dbURL := os.Getenv("DATABASE_URL"); dbURL != "" {
		s, err := checkpoint.Connect(context.Background(), dbURL)
		if err != nil {
			log.Printf("Warning: checkpoint store unavailable, continuing without crash recovery: %v", err)
		} else {
			defer s.Close()
			if err := s.InitSchema(context.Background()); err != nil {
				log.Printf("Warning: checkpoint schema init failed: %v", err)
			} else {
				store = s
			}
		}
	} else {
		log.Println("DATABASE_URL not set, running without checkpoint persistence")
	}

	wsHub := api.NewHub()
	go wsHub.Run()

	registry := api.NewRegistry()

	for idx, name := range chemNames {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		e, err := buildEngine(name, latticeSize, temperature, seed+int64(idx)*2)
		if err != nil {
			log.Fatalf("FATAL: failed to build engine %q: %v", name, err)
		}
		registry.Add(name, e)
		log.Printf("Engine %q online: %d sites, temperature=%g", name, e.Lat.NLocal, temperature)

		go runLoop(name, e, wsHub, rng.NewMathRand(seed+int64(idx)*2+100))

		if store != nil {
			go checkpointLoop(store, name, e)
		}
	}

	r := api.SetupRouter(registry, wsHub)

	port := getEnvOrDefault("PORT", "5340")
	log.Printf("ALD KMC engine listening on :%s", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

// buildEngine wires one chemistry's catalog, pulse scheduler, lattice,
// event pool, sampler, and RNG into a ready-to-run Engine, seeded from
// that chemistry's default demo command script (or a file named by
// <CHEMISTRY>_CONFIG_FILE, e.g. HFO2_CONFIG_FILE, if set).
func buildEngine(chemName string, latticeSize int, temperature float64, seed int64) (*engine.Engine, error) {
	chem, err := chemistry.Lookup(chemName)
	if err != nil {
		return nil, err
	}

	cat := catalog.New()
	sched := pulse.New(0, 0, 0, 0)

	if err := loadConfig(chemName, cat, sched, chem); err != nil {
		return nil, err
	}
	if err := cat.Precompute(temperature); err != nil {
		return nil, err
	}

	lat, err := buildDemoLattice(latticeSize, chem.NumSpecies())
	if err != nil {
		return nil, err
	}

	pool := eventpool.New(lat.NumSites())
	samp := sampler.New(rng.NewMathRand(seed).Uniform)
	src := rng.NewMathRand(seed + 1)

	e := engine.New(lat, pool, cat, chem, sched, samp, src, lat.NumSites())
	if err := e.Bootstrap(); err != nil {
		return nil, err
	}
	return e, nil
}

// loadConfig reads line-oriented config commands from the file named by
// <CHEMISTRY>_CONFIG_FILE (the upper-cased chemistry name, if set) or the
// chemistry's embedded default
// script, dispatching each line through internal/config.Parse.
func loadConfig(chemName string, cat *catalog.Catalog, sched *pulse.Scheduler, chem chemistry.Chemistry) error {
	var scanner *bufio.Scanner

	if path := os.Getenv(strings.ToUpper(chemName) + "_CONFIG_FILE"); path != "" {
		f, err := os.Open(path)
		if err != nil {
			return err
		}
		defer f.Close()
		scanner = bufio.NewScanner(f)
	} else {
		script, ok := defaultConfig[chemName]
		if !ok {
			log.Printf("config: no default script for chemistry %q, starting with an empty catalog", chemName)
			return nil
		}
		scanner = bufio.NewScanner(strings.NewReader(script))
	}

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)
		if err := config.Parse(fields[0], fields[1:], cat, sched, chem); err != nil {
			return fmt.Errorf("line %d: %w", lineNo, err)
		}
	}
	return scanner.Err()
}

// checkpointLoop periodically snapshots a running engine's state. The
// engine's own run loop never calls this; it is purely host-side
// crash-recovery plumbing, guarded by Engine.Mu like every other
// observability read.
func checkpointLoop(store *checkpoint.Store, engineID string, e *engine.Engine) {
	ticker := time.NewTicker(30 * time.Second)
	defer ticker.Stop()

	for range ticker.C {
		e.Mu.Lock()
		snap := checkpoint.Snapshot{
			EngineID:   engineID,
			Chemistry:  e.Chem.Name(),
			Species:    append([]kmctypes.Species(nil), e.Lat.Species...),
			Coord:      append([]int(nil), e.Lat.Coord...),
			PulseMode:  e.Sched.Mode,
			PulseCycle: e.Sched.Cycle,
		}
		e.Mu.Unlock()

		if err := store.Save(context.Background(), snap); err != nil {
			log.Printf("checkpoint: save failed for %q: %v", engineID, err)
		}
	}
}

func getEnvOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func atoiOrDefault(s string, fallback int) int {
	v, err := strconv.Atoi(s)
	if err != nil {
		return fallback
	}
	return v
}

func atofOrDefault(s string, fallback float64) float64 {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return fallback
	}
	return v
}
