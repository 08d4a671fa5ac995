package submit

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/xtding233/packsim/internal/logger"
	"github.com/xtding233/packsim/internal/product"
)

var ErrNoSink = errors.New("submission gate has no sink")

// Submission is the immutable snapshot handed to the simulation engine.
type Submission struct {
	ID          string         `json:"id"`
	SubmittedAt time.Time      `json:"submittedAt"`
	Config      product.Config `json:"config"`
}

// Sink receives accepted submissions. What it does with them is its own
// business; the gate expects no reply.
type Sink interface {
	Emit(ctx context.Context, s Submission)
}

// SinkFunc adapts a function to Sink.
type SinkFunc func(ctx context.Context, s Submission)

func (f SinkFunc) Emit(ctx context.Context, s Submission) { f(ctx, s) }

// Outcome reports what Submit did.
type Outcome struct {
	Accepted   bool                 `json:"accepted"`
	Submission *Submission          `json:"submission,omitempty"`
	Errors     []product.FieldError `json:"errors,omitempty"`
}

// Gate validates a form and only emits valid snapshots.
type Gate struct {
	sink Sink
	log  *logger.Logger
	now  func() time.Time
	id   func() string
}

func NewGate(sink Sink, log *logger.Logger) (*Gate, error) {
	if sink == nil {
		return nil, ErrNoSink
	}
	if log == nil {
		log = logger.Nop()
	}
	return &Gate{
		sink: sink,
		log:  log,
		now:  time.Now,
		id:   func() string { return uuid.NewString() },
	}, nil
}

// Submit validates form. When invalid, every field is marked touched so all
// violations show at once, and nothing is emitted. When valid, a deep copy of
// the model is emitted to the sink.
func (g *Gate) Submit(ctx context.Context, form *product.Form) Outcome {
	res := form.Validate()
	if res.Invalid {
		form.MarkAllTouched()
		g.log.Debug("submission rejected", "violations", len(res.Errors), "summary", res.Summary())
		return Outcome{Accepted: false, Errors: res.Errors}
	}

	sub := Submission{
		ID:          g.id(),
		SubmittedAt: g.now().UTC(),
		Config:      form.Snapshot(),
	}
	g.sink.Emit(ctx, sub)
	g.log.Info("submission accepted", "id", sub.ID, "product", sub.Config.ProductName)

	// the sink gets its own copy
	out := sub
	out.Config = sub.Config.Clone()
	return Outcome{Accepted: true, Submission: &out}
}
