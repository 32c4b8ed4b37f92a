package domain

import "time"

// OutcomeStatus is the terminal state of one spec within a run.
type OutcomeStatus string

const (
	OutcomeSkipped   OutcomeStatus = "skipped"
	OutcomeGenerated OutcomeStatus = "generated"
	OutcomeFailed    OutcomeStatus = "failed"
	OutcomePlanned   OutcomeStatus = "planned"
)

// Outcome records what happened to a single AssetSpec.
type Outcome struct {
	Group         string
	OutputPath    string
	Status        OutcomeStatus
	Bytes         int64
	Reason        string
	Attempts      int
	PostProcessed bool
}

// RunSummary aggregates outcomes in catalog order.
type RunSummary struct {
	RunID       string
	StartedAt   time.Time
	FinishedAt  time.Time
	Outcomes    []Outcome
	Interrupted bool
}

func (s *RunSummary) count(status OutcomeStatus) int {
	if s == nil {
		return 0
	}
	n := 0
	for _, o := range s.Outcomes {
		if o.Status == status {
			n++
		}
	}
	return n
}

func (s *RunSummary) Generated() int { return s.count(OutcomeGenerated) }
func (s *RunSummary) Skipped() int   { return s.count(OutcomeSkipped) }
func (s *RunSummary) Failed() int    { return s.count(OutcomeFailed) }
func (s *RunSummary) Planned() int   { return s.count(OutcomePlanned) }

// Total returns the number of recorded outcomes.
func (s *RunSummary) Total() int {
	if s == nil {
		return 0
	}
	return len(s.Outcomes)
}

// PlannedPaths returns the output paths a dry run would generate.
func (s *RunSummary) PlannedPaths() []string {
	if s == nil {
		return nil
	}
	var out []string
	for _, o := range s.Outcomes {
		if o.Status == OutcomePlanned {
			out = append(out, o.OutputPath)
		}
	}
	return out
}
