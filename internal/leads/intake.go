package leads

import (
	"context"
	"sync"
	"time"

	"github.com/hmktraders999-droid/AivoraHospitality/internal/observability/metrics"
	"github.com/hmktraders999-droid/AivoraHospitality/pkg/logging"
)

const defaultSinkTimeout = 10 * time.Second

// Sink receives a best-effort copy of a lead after the primary write succeeded.
// Mirrors and notifiers implement it.
type Sink interface {
	Name() string
	Write(ctx context.Context, lead *Lead) error
}

// IntakeConfig wires the intake flow.
type IntakeConfig struct {
	Repo    Repository
	Sinks   []Sink
	Metrics *metrics.IntakeMetrics
	Logger  *logging.Logger
	// SinkTimeout bounds each sink write. Defaults to 10s.
	SinkTimeout time.Duration
}

// Intake validates submissions, writes them to the store of record and then
// fans out to the optional sinks in the background.
type Intake struct {
	repo        Repository
	sinks       []Sink
	sinkTimeout time.Duration
	metrics     *metrics.IntakeMetrics
	logger      *logging.Logger
	wg          sync.WaitGroup
}

// NewIntake builds the intake flow. A repository is required.
func NewIntake(cfg IntakeConfig) *Intake {
	if cfg.Repo == nil {
		panic("leads: repository required")
	}
	logger := cfg.Logger
	if logger == nil {
		logger = logging.Default()
	}
	timeout := cfg.SinkTimeout
	if timeout <= 0 {
		timeout = defaultSinkTimeout
	}
	sinks := make([]Sink, 0, len(cfg.Sinks))
	for _, s := range cfg.Sinks {
		if s != nil {
			sinks = append(sinks, s)
		}
	}
	return &Intake{
		repo:        cfg.Repo,
		sinks:       sinks,
		sinkTimeout: timeout,
		metrics:     cfg.Metrics,
		logger:      logger,
	}
}

// Submit stores one lead. It returns ErrValidation for missing required fields
// and *StorageError when the primary write fails. Sinks run after Submit
// returns; their outcome never reaches the caller.
func (s *Intake) Submit(ctx context.Context, in CreateLeadInput) (*Lead, error) {
	start := time.Now()
	defer func() { s.metrics.ObserveSubmitLatency(time.Since(start).Seconds()) }()

	if err := in.Validate(); err != nil {
		s.metrics.ObserveSubmission(metrics.OutcomeInvalid)
		return nil, err
	}

	lead, err := s.repo.Create(ctx, in)
	if err != nil {
		s.metrics.ObserveSubmission(metrics.OutcomeStorageError)
		return nil, &StorageError{Err: err}
	}
	s.metrics.ObserveSubmission(metrics.OutcomeAccepted)

	if len(s.sinks) > 0 {
		copied := *lead
		s.wg.Add(1)
		go func() {
			defer s.wg.Done()
			s.fanOut(context.WithoutCancel(ctx), &copied)
		}()
	}
	return lead, nil
}

// Drain waits for in-flight sink writes, or until ctx is done.
func (s *Intake) Drain(ctx context.Context) error {
	done := make(chan struct{})
	go func() {
		s.wg.Wait()
		close(done)
	}()
	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (s *Intake) fanOut(ctx context.Context, lead *Lead) {
	for _, sink := range s.sinks {
		err := s.writeSink(ctx, sink, lead)
		s.metrics.ObserveSinkWrite(sink.Name(), err)
		if err != nil {
			s.logger.Warn("lead mirror write failed",
				"sink", sink.Name(),
				"lead_id", lead.ID,
				"error", &MirrorWriteError{Sink: sink.Name(), Err: err},
			)
		}
	}
}

func (s *Intake) writeSink(ctx context.Context, sink Sink, lead *Lead) error {
	sinkCtx, cancel := context.WithTimeout(ctx, s.sinkTimeout)
	defer cancel()
	return sink.Write(sinkCtx, lead)
}
