package sorter

import (
	"time"
)

// Logger receives debug lines about planning and renaming. *log.Log from
// pkg/log satisfies it.
type Logger interface {
	Debug(format string, args ...any)
}

type nopLogger struct{}

func (nopLogger) Debug(string, ...any) {}

// Sorter runs one configuration. It is not safe to run two sorters over
// overlapping trees at the same time; callers have to serialize them.
type Sorter struct {
	cfg           Config
	filter        *Filter
	builder       *Builder
	loc           *time.Location
	logger        Logger
	avoidExisting bool
}

type Option func(*Sorter)

// WithLocation renders timestamps in loc instead of time.Local.
func WithLocation(loc *time.Location) Option {
	return func(s *Sorter) { s.loc = loc }
}

func WithLogger(l Logger) Option {
	return func(s *Sorter) { s.logger = l }
}

// WithAvoidExisting makes the planner treat destinations that already exist
// on disk like ones claimed earlier in the same plan.
func WithAvoidExisting(avoid bool) Option {
	return func(s *Sorter) { s.avoidExisting = avoid }
}

func New(cfg Config, opts ...Option) (*Sorter, error) {
	if _, err := ParseDateKind(string(cfg.DateKind)); err != nil {
		return nil, err
	}
	b, err := NewBuilder(cfg.TargetRoot, cfg.DateFormat, cfg.PreserveName)
	if err != nil {
		return nil, err
	}
	s := &Sorter{
		cfg:     cfg,
		filter:  NewFilter(cfg.ExcludeExtensions, cfg.OnlyExtensions),
		builder: b,
		loc:     time.Local,
		logger:  nopLogger{},
	}
	for _, o := range opts {
		o(s)
	}
	return s, nil
}

func (s *Sorter) Config() Config {
	return s.cfg
}

func (s *Sorter) Filter() *Filter {
	return s.filter
}

// Sort plans the run and executes it. With dryRun nothing on disk changes and
// the result lists what would have been renamed. progress may be nil.
func (s *Sorter) Sort(dryRun bool, progress ProgressFunc) (*Result, error) {
	plan, err := s.Plan()
	if err != nil {
		return nil, err
	}
	return s.Execute(plan, dryRun, progress)
}
