// Package activity records the outcome of every feature submission on the
// bus and keeps an in-memory tally for the health endpoint.
package activity

import (
	"context"
	"log/slog"
	"sort"
	"sync"

	"github.com/kanoonai/kanoon-web/internal/pubsub"
)

type Outcome string

const (
	Succeeded Outcome = "succeeded"
	Failed    Outcome = "failed"
	Rejected  Outcome = "rejected"
)

// Submission is published once per handled feature submission.
type Submission struct {
	Feature string  `json:"feature"`
	Outcome Outcome `json:"outcome"`
}

// SubmissionCompleted carries Submission events.
var SubmissionCompleted = pubsub.NewEvent[Submission]("submission.completed", "A feature submission finished")

// Recorder publishes submission outcomes. A nil Recorder records nothing.
type Recorder struct {
	pub pubsub.Publisher
}

func NewRecorder(pub pubsub.Publisher) *Recorder {
	return &Recorder{pub: pub}
}

// Record publishes the outcome. Failures are logged, never returned, so a
// broken bus cannot fail a page.
func (r *Recorder) Record(ctx context.Context, visitorID, feature string, outcome Outcome) {
	if r == nil || r.pub == nil {
		return
	}
	err := pubsub.Publish(ctx, r.pub, SubmissionCompleted, visitorID, Submission{Feature: feature, Outcome: outcome})
	if err != nil {
		slog.WarnContext(ctx, "Failed to record submission", "feature", feature, "outcome", outcome, "error", err)
	}
}

// Counts is the per-feature tally.
type Counts struct {
	Succeeded int `json:"succeeded"`
	Failed    int `json:"failed"`
	Rejected  int `json:"rejected"`
}

// Tally counts submission outcomes per feature.
type Tally struct {
	mu     sync.RWMutex
	counts map[string]Counts
}

func NewTally() *Tally {
	return &Tally{counts: make(map[string]Counts)}
}

// Subscribe starts consuming SubmissionCompleted events until ctx ends.
func (t *Tally) Subscribe(ctx context.Context, sub pubsub.Subscriber) error {
	return pubsub.Subscribe(ctx, sub, SubmissionCompleted, func(ctx context.Context, visitorID string, s Submission) error {
		t.Add(s)
		return nil
	})
}

func (t *Tally) Add(s Submission) {
	t.mu.Lock()
	defer t.mu.Unlock()

	c := t.counts[s.Feature]
	switch s.Outcome {
	case Succeeded:
		c.Succeeded++
	case Failed:
		c.Failed++
	case Rejected:
		c.Rejected++
	default:
		return
	}
	t.counts[s.Feature] = c
}

// Snapshot returns a copy of the current tally.
func (t *Tally) Snapshot() map[string]Counts {
	t.mu.RLock()
	defer t.mu.RUnlock()

	out := make(map[string]Counts, len(t.counts))
	for k, v := range t.counts {
		out[k] = v
	}
	return out
}

// Features lists the features with at least one recorded outcome, sorted.
func (t *Tally) Features() []string {
	t.mu.RLock()
	defer t.mu.RUnlock()

	names := make([]string, 0, len(t.counts))
	for k := range t.counts {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}
