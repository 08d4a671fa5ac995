package server

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/xtding233/packsim/internal/logger"
	"github.com/xtding233/packsim/internal/preset"
	"github.com/xtding233/packsim/internal/product"
	"github.com/xtding233/packsim/internal/submit"
)

// FormView is the full read model of the form: the payload plus everything
// derived from it.
type FormView struct {
	Config    product.Config           `json:"config"`
	Footprint product.CaseFootprint    `json:"footprint"`
	Readiness []product.ReadinessCheck `json:"readiness"`
	Errors    []product.FieldError     `json:"errors"` // touched fields only
	Invalid   bool                     `json:"invalid"`
}

type mutationResp struct {
	Changed bool `json:"changed"`
	FormView
}

type addSlotResp struct {
	Index int `json:"index"`
	FormView
}

type submitResp struct {
	submit.Outcome
	Form FormView `json:"form"`
}

type presetSummary struct {
	Name    string `json:"name"`
	Summary string `json:"summary"`
}

// FormHandler owns the single form of this process. Every request runs under
// one lock, so the form sees one operation at a time.
type FormHandler struct {
	mu      sync.Mutex
	form    *product.Form
	presets *preset.Store
	gate    *submit.Gate
	log     *logger.Logger
}

func NewFormHandler(initial product.Config, presets *preset.Store, gate *submit.Gate, log *logger.Logger) *FormHandler {
	if log == nil {
		log = logger.Nop()
	}
	return &FormHandler{
		form:    product.NewForm(initial),
		presets: presets,
		gate:    gate,
		log:     log,
	}
}

// view must be called with h.mu held.
func (h *FormHandler) view() FormView {
	errs := h.form.VisibleErrors()
	if errs == nil {
		errs = []product.FieldError{}
	}
	return FormView{
		Config:    h.form.Snapshot(),
		Footprint: h.form.Footprint(),
		Readiness: h.form.Readiness(),
		Errors:    errs,
		Invalid:   h.form.Validate().Invalid,
	}
}

func (h *FormHandler) GetForm(c *gin.Context) {
	h.mu.Lock()
	defer h.mu.Unlock()
	RespondOK(c, h.view())
}

type setFieldReq struct {
	Field string          `json:"field" binding:"required"`
	Value json.RawMessage `json:"value"`
}

func (h *FormHandler) SetField(c *gin.Context) {
	var req setFieldReq
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "bad_request", err)
		return
	}
	if len(req.Value) == 0 {
		RespondError(c, http.StatusBadRequest, "bad_request", errors.New("value is required"))
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	if err := h.form.SetField(req.Field, req.Value); err != nil {
		switch {
		case errors.Is(err, product.ErrUnknownField), errors.Is(err, product.ErrCollectionField):
			RespondError(c, http.StatusBadRequest, "unknown_field", err)
		default:
			RespondError(c, http.StatusBadRequest, "invalid_value", err)
		}
		return
	}
	h.log.Debug("field set", "field", req.Field)
	RespondOK(c, mutationResp{Changed: true, FormView: h.view()})
}

func (h *FormHandler) ToggleSlotType(c *gin.Context) {
	t := product.SlotType(c.Param("type"))
	if !t.Valid() {
		RespondError(c, http.StatusBadRequest, "invalid_slot_type", product.ErrInvalidSlotType)
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	changed := h.form.ToggleSlotType(t)
	h.log.Debug("slot type toggled", "type", t, "changed", changed)
	RespondOK(c, mutationResp{Changed: changed, FormView: h.view()})
}

type addSlotReq struct {
	Type product.SlotType `json:"type"`
}

func (h *FormHandler) AddSlot(c *gin.Context) {
	var req addSlotReq
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		RespondError(c, http.StatusBadRequest, "bad_request", err)
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	idx, err := h.form.AddSlot(req.Type)
	if err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_slot_type", err)
		return
	}
	h.log.Debug("slot added", "index", idx, "type", req.Type)
	c.JSON(http.StatusCreated, addSlotResp{Index: idx, FormView: h.view()})
}

func (h *FormHandler) RemoveSlot(c *gin.Context) {
	idx, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "bad_request", errors.New("index must be an integer"))
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	changed := h.form.RemoveSlot(idx)
	h.log.Debug("slot removed", "index", idx, "changed", changed)
	RespondOK(c, mutationResp{Changed: changed, FormView: h.view()})
}

func (h *FormHandler) ListPresets(c *gin.Context) {
	all := h.presets.Catalog().All()
	out := make([]presetSummary, len(all))
	for i, p := range all {
		out[i] = presetSummary{Name: p.Name, Summary: p.Summary}
	}
	RespondOK(c, gin.H{"presets": out})
}

func (h *FormHandler) LoadPreset(c *gin.Context) {
	p, err := h.presets.Catalog().Lookup(c.Param("name"))
	if err != nil {
		RespondError(c, http.StatusNotFound, "unknown_preset", err)
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	h.form.LoadPreset(p)
	h.log.Info("preset loaded", "preset", p.Name)
	RespondOK(c, mutationResp{Changed: true, FormView: h.view()})
}

func (h *FormHandler) Submit(c *gin.Context) {
	h.mu.Lock()
	defer h.mu.Unlock()
	out := h.gate.Submit(c.Request.Context(), h.form)
	status := http.StatusOK
	if !out.Accepted {
		status = http.StatusUnprocessableEntity
	}
	c.JSON(status, submitResp{Outcome: out, Form: h.view()})
}

type HealthHandler struct{}

func NewHealthHandler() *HealthHandler { return &HealthHandler{} }

func (h *HealthHandler) HealthCheck(c *gin.Context) {
	c.String(http.StatusOK, "ok")
}
