package submit

import (
	"context"
	"sync"

	"github.com/xtding233/packsim/internal/logger"
)

// LogSink writes each accepted payload as one structured log entry. It stands
// in for the simulation engine until one exists.
type LogSink struct {
	log *logger.Logger
}

func NewLogSink(log *logger.Logger) *LogSink {
	if log == nil {
		log = logger.Nop()
	}
	return &LogSink{log: log}
}

func (s *LogSink) Emit(_ context.Context, sub Submission) {
	s.log.Info("simulation request payload",
		"id", sub.ID,
		"submittedAt", sub.SubmittedAt,
		"payload", sub.Config,
	)
}

// Recorder keeps every submission in memory.
type Recorder struct {
	mu   sync.Mutex
	subs []Submission
}

func (r *Recorder) Emit(_ context.Context, sub Submission) {
	r.mu.Lock()
	defer r.mu.Unlock()
	sub.Config = sub.Config.Clone()
	r.subs = append(r.subs, sub)
}

// Submissions returns what has been recorded so far.
func (r *Recorder) Submissions() []Submission {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Submission(nil), r.subs...)
}
