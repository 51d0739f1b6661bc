// Package api exposes the read-only observability layer SPEC_FULL.md
// §6 adds on top of the core: per-engine state and site lookups over
// HTTP, and a websocket stream carrying one message per fired event
// (engine id, site, sim time). It is never a control plane — the engine's own run loop is the
// only writer to lattice/pool/sampler state; this package only reads,
// guarded by Engine.Mu.
package api

import (
	"net/http"
	"os"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/openlattice/ald-kmc/internal/engine"
)

// Registry maps an engine id to its running Engine. SPEC_FULL.md §10's
// multi-engine host process keeps one Registry per cmd/kmcengine
// process; the host registers engines as it starts them.
type Registry struct {
	engines map[string]*engine.Engine
}

func NewRegistry() *Registry {
	return &Registry{engines: make(map[string]*engine.Engine)}
}

func (r *Registry) Add(id string, e *engine.Engine) {
	r.engines[id] = e
}

func (r *Registry) Get(id string) (*engine.Engine, bool) {
	e, ok := r.engines[id]
	return e, ok
}

type Handler struct {
	registry *Registry
	hub      *Hub
}

// SetupRouter wires the state, site and counts endpoints behind
// bearer-token auth and a rate limiter keyed on client IP plus engine id;
// the health and stream endpoints are public and not rate limited.
func SetupRouter(registry *Registry, hub *Hub) *gin.Engine {
	r := gin.Default()
	h := &Handler{registry: registry, hub: hub}

	pub := r.Group("/api/v1")
	{
		pub.GET("/health", h.handleHealth)
		pub.GET("/engines/:id/stream", hub.Subscribe)
	}

	protected := r.Group("/api/v1")
	protected.Use(AuthMiddleware())
	protected.Use(NewRateLimiter(envIntOrDefault("API_RATE_LIMIT_PER_MIN", 60), envIntOrDefault("API_RATE_LIMIT_BURST", 10)).Middleware())
	{
		protected.GET("/engines/:id/state", h.handleEngineState)
		protected.GET("/engines/:id/sites/:site", h.handleSiteState)
		protected.GET("/engines/:id/counts", h.handleEngineCounts)
	}

	return r
}

func envIntOrDefault(key string, fallback int) int {
	v, err := strconv.Atoi(os.Getenv(key))
	if err != nil {
		return fallback
	}
	return v
}

func (h *Handler) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "operational", "engines": len(h.registry.engines)})
}

func (h *Handler) engineOrNotFound(c *gin.Context) (*engine.Engine, bool) {
	e, ok := h.registry.Get(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "unknown engine id"})
	}
	return e, ok
}

func (h *Handler) handleEngineState(c *gin.Context) {
	e, ok := h.engineOrNotFound(c)
	if !ok {
		return
	}
	e.Mu.Lock()
	sites := e.Snapshot()
	e.Mu.Unlock()
	c.JSON(http.StatusOK, gin.H{"sites": sites})
}

func (h *Handler) handleSiteState(c *gin.Context) {
	e, ok := h.engineOrNotFound(c)
	if !ok {
		return
	}
	site, err := strconv.Atoi(c.Param("site"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "site id must be an integer"})
		return
	}
	e.Mu.Lock()
	snap, ok := e.SiteState(site)
	e.Mu.Unlock()
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "site id out of range"})
		return
	}
	c.JSON(http.StatusOK, snap)
}

func (h *Handler) handleEngineCounts(c *gin.Context) {
	e, ok := h.engineOrNotFound(c)
	if !ok {
		return
	}
	e.Mu.Lock()
	counts := e.Counts()
	e.Mu.Unlock()
	c.JSON(http.StatusOK, counts)
}
