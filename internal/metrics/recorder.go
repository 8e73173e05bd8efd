package metrics

import "time"

// ResultLabel enumerates stage result categories for counters.
type ResultLabel string

const (
	ResultSuccess  ResultLabel = "success"
	ResultFailed   ResultLabel = "failed"
	ResultCanceled ResultLabel = "canceled"
)

// Stage names used across the generation pipeline.
const (
	StageScan    = "scan"
	StageTree    = "tree"
	StageNav     = "nav"
	StageSidebar = "sidebar"
)

// Recorder defines observability hooks for a generation run.
type Recorder interface {
	ObserveStageDuration(stage string, d time.Duration)
	ObserveRunDuration(d time.Duration)
	IncStageResult(stage string, result ResultLabel)
	IncRunOutcome(result ResultLabel)
	SetFilesScanned(n int)
	SetNavItems(n int)
	SetSidebarSections(n int)
	AddExtractions(extracted, cacheHits, failures int)
}

// NoopRecorder is a Recorder that does nothing (default when metrics not configured).
type NoopRecorder struct{}

func (NoopRecorder) ObserveStageDuration(string, time.Duration) {}
func (NoopRecorder) ObserveRunDuration(time.Duration)           {}
func (NoopRecorder) IncStageResult(string, ResultLabel)         {}
func (NoopRecorder) IncRunOutcome(ResultLabel)                  {}
func (NoopRecorder) SetFilesScanned(int)                        {}
func (NoopRecorder) SetNavItems(int)                            {}
func (NoopRecorder) SetSidebarSections(int)                     {}
func (NoopRecorder) AddExtractions(int, int, int)               {}
