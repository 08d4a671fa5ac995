package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// FormRoute is the one page the service exposes.
const FormRoute = "/simulation"

type RouterConfig struct {
	FormHandler   *FormHandler
	HealthHandler *HealthHandler
	AllowOrigins  []string
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(CORS(cfg.AllowOrigins))

	if cfg.HealthHandler != nil {
		r.GET("/healthcheck", cfg.HealthHandler.HealthCheck)
	}

	if h := cfg.FormHandler; h != nil {
		sim := r.Group(FormRoute)
		{
			sim.GET("", h.GetForm)
			sim.PATCH("/fields", h.SetField)
			sim.POST("/slot-types/:type/toggle", h.ToggleSlotType)
			sim.POST("/slots", h.AddSlot)
			sim.DELETE("/slots/:index", h.RemoveSlot)
			sim.GET("/presets", h.ListPresets)
			sim.POST("/presets/:name", h.LoadPreset)
			sim.POST("/submit", h.Submit)
		}
	}

	// empty and unknown paths land on the form
	r.GET("/", redirectToForm)
	r.NoRoute(redirectToForm)
	return r
}

func redirectToForm(c *gin.Context) {
	c.Redirect(http.StatusFound, FormRoute)
}

type Server struct {
	Engine *gin.Engine
}

func NewServer(cfg RouterConfig) *Server {
	return &Server{Engine: NewRouter(cfg)}
}

// Run serves on address until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context, address string) error {
	srv := &http.Server{Addr: address, Handler: s.Engine, ReadHeaderTimeout: 10 * time.Second}

	errCh := make(chan error, 1)
	go func() { errCh <- srv.ListenAndServe() }()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}
