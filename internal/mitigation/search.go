package mitigation

import (
    "context"
    "errors"
    "fmt"
    "math"
    "runtime"
    "strconv"
    "strings"

    "go.uber.org/multierr"
    "go.uber.org/zap"
    "golang.org/x/sync/errgroup"

    "fairgrid/internal/data"
)

var ErrInvalidConfiguration = errors.New("invalid configuration")

//go:generate mockgen -destination=mocks/learner.go -package=mocks fairgrid/internal/mitigation Learner

// Learner is the model boundary of the search. Fit must accept per-example
// weights.
type Learner interface {
    Fit(X [][]float64, y []int, sampleWeight []float64) error
    Predict(X [][]float64) []int
}

// LearnerFactory returns a fresh, untrained learner on every call.
type LearnerFactory func() Learner

// Multiplier is the Lagrange multiplier on the disparity between Group and
// the reference group within Event.
type Multiplier struct {
    Event string  `json:"event"`
    Group string  `json:"group"`
    Value float64 `json:"value"`
}

// CandidateModel is one fitted grid point. It is not modified after Run.
type CandidateModel struct {
    Index       int
    Multipliers []Multiplier
    Model       Learner
}

func (c CandidateModel) ID() string { return fmt.Sprintf("candidate_%02d", c.Index) }

// Key renders the multiplier vector, distinct for every candidate of a run.
func (c CandidateModel) Key() string {
    parts := make([]string, len(c.Multipliers))
    for i, m := range c.Multipliers {
        parts[i] = m.Event + "/" + m.Group + "=" + strconv.FormatFloat(m.Value, 'g', -1, 64)
    }
    return strings.Join(parts, ",")
}

// FitFailure records a grid point whose learner failed to fit.
type FitFailure struct {
    Index       int
    Multipliers []Multiplier
    Err         error
}

func (f *FitFailure) Error() string { return fmt.Sprintf("grid point %d: %v", f.Index, f.Err) }
func (f *FitFailure) Unwrap() error { return f.Err }

// SearchResult holds the candidates in grid order. Dominated candidates are
// kept; choosing a trade-off is left to the caller.
type SearchResult struct {
    Constraint Constraint
    Reference  string
    Groups     []string
    Candidates []CandidateModel
    Failures   []*FitFailure
}

// Err combines every recorded fit failure, nil when all fits succeeded.
func (r *SearchResult) Err() error {
    var err error
    for _, f := range r.Failures { err = multierr.Append(err, f) }
    return err
}

// Predict runs every candidate over X, keyed by candidate ID.
func (r *SearchResult) Predict(X [][]float64) map[string][]int {
    out := make(map[string][]int, len(r.Candidates))
    for _, c := range r.Candidates { out[c.ID()] = c.Model.Predict(X) }
    return out
}

type Search struct {
    // GridLimit bounds the L1 norm of the multiplier vectors.
    GridLimit float64
    // ConstraintWeight balances the error objective (0) against the
    // constraint term (1).
    ConstraintWeight float64
    Workers          int
    Logger           *zap.Logger
}

type Option func(*Search)

func WithGridLimit(v float64) Option        { return func(s *Search) { s.GridLimit = v } }
func WithConstraintWeight(v float64) Option { return func(s *Search) { s.ConstraintWeight = v } }
func WithWorkers(n int) Option              { return func(s *Search) { s.Workers = n } }
func WithLogger(l *zap.Logger) Option       { return func(s *Search) { s.Logger = l } }

func NewSearch(opts ...Option) *Search {
    s := &Search{GridLimit: 2.0, ConstraintWeight: 0.5, Workers: runtime.GOMAXPROCS(0)}
    for _, o := range opts { o(s) }
    if s.Logger == nil { s.Logger = zap.NewNop() }
    if s.Workers <= 0 { s.Workers = 1 }
    return s
}

// problem holds the per-run counts the re-weighting needs.
type problem struct {
    constraint Constraint
    events     []string
    groups     []string
    eventCount map[string]float64
    cellCount  map[string]map[string]float64
    n          float64
}

func invalid(format string, args ...any) error {
    return fmt.Errorf("%w: %s", ErrInvalidConfiguration, fmt.Sprintf(format, args...))
}

func (s *Search) validate(factory LearnerFactory, constraint Constraint, gridSize int, X [][]float64, y []int, sensitive []string) (*problem, error) {
    if factory == nil { return nil, invalid("nil learner factory") }
    if gridSize <= 0 { return nil, invalid("grid size must be positive, got %d", gridSize) }
    if s.GridLimit <= 0 { return nil, invalid("grid limit must be positive, got %v", s.GridLimit) }
    if s.ConstraintWeight < 0 || s.ConstraintWeight > 1 { return nil, invalid("constraint weight %v out of [0,1]", s.ConstraintWeight) }
    events, err := constraint.events()
    if err != nil { return nil, err }
    if len(X) != len(y) || len(y) != len(sensitive) {
        return nil, invalid("misaligned inputs: X=%d y=%d sensitive=%d", len(X), len(y), len(sensitive))
    }
    for i, v := range y {
        if v != 0 && v != 1 { return nil, invalid("label at row %d is %d, want 0 or 1", i, v) }
    }
    groups := data.DistinctSorted(sensitive)
    if len(groups) < 2 { return nil, invalid("need at least two sensitive groups, got %d", len(groups)) }

    p := &problem{
        constraint: constraint,
        events:     events,
        groups:     groups,
        eventCount: map[string]float64{},
        cellCount:  map[string]map[string]float64{},
        n:          float64(len(y)),
    }
    for _, e := range events { p.cellCount[e] = map[string]float64{} }
    for i := range y {
        e, ok := constraint.eventOf(y[i])
        if !ok { continue }
        p.eventCount[e]++
        p.cellCount[e][sensitive[i]]++
    }
    for _, e := range events {
        for _, g := range groups {
            if p.cellCount[e][g] == 0 { return nil, invalid("group %q has no examples for event %s", g, e) }
        }
    }
    return p, nil
}

// multipliers expands a grid point into one multiplier per event and
// non-reference group. The reference group (first in sorted order) is fixed
// at zero.
func (p *problem) multipliers(point []float64) []Multiplier {
    out := make([]Multiplier, 0, len(point))
    k := 0
    for _, e := range p.events {
        for _, g := range p.groups[1:] {
            out = append(out, Multiplier{Event: e, Group: g, Value: point[k]})
            k++
        }
    }
    return out
}

// reweight applies the grid-search reduction to cost-sensitive
// classification. Predicting 1 on example i is favoured by the signed weight
//
//   s_i = (1-c)(2y_i-1)/n + c(Σ_a λ[e_i][a]/N(e_i) - λ[e_i][a_i]/N(e_i,a_i))
//
// where N counts examples per event and per (event, group). The learner is
// fit on labels 1[s_i > 0] with weights |s_i|.
func (p *problem) reweight(mults []Multiplier, c float64, y []int, sensitive []string) ([]int, []float64) {
    lambda := map[string]map[string]float64{}
    lambdaSum := map[string]float64{}
    for _, m := range mults {
        if lambda[m.Event] == nil { lambda[m.Event] = map[string]float64{} }
        lambda[m.Event][m.Group] = m.Value
        lambdaSum[m.Event] += m.Value
    }
    labels := make([]int, len(y))
    weights := make([]float64, len(y))
    for i := range y {
        s := (1 - c) * float64(2*y[i]-1) / p.n
        if e, ok := p.constraint.eventOf(y[i]); ok {
            s += c * (lambdaSum[e]/p.eventCount[e] - lambda[e][sensitive[i]]/p.cellCount[e][sensitive[i]])
        }
        if s > 0 { labels[i] = 1 }
        weights[i] = math.Abs(s)
    }
    return labels, weights
}

// Run fits one learner per grid point. Configuration errors are returned
// before any learner is built. A failing fit is recorded in
// SearchResult.Failures and the remaining points still run.
func (s *Search) Run(ctx context.Context, factory LearnerFactory, constraint Constraint, gridSize int, X [][]float64, y []int, sensitive []string) (*SearchResult, error) {
    p, err := s.validate(factory, constraint, gridSize, X, y, sensitive)
    if err != nil { return nil, err }

    logger := s.Logger
    if logger == nil { logger = zap.NewNop() }
    workers := s.Workers
    if workers <= 0 { workers = 1 }

    dim := len(p.events) * (len(p.groups) - 1)
    grid := latticeGrid(gridSize, dim, s.GridLimit)
    logger.Info("Grid search started",
        zap.String("constraint", string(constraint)),
        zap.Int("grid_size", gridSize),
        zap.Int("dimension", dim),
        zap.Strings("groups", p.groups),
        zap.Int("workers", workers),
    )

    candidates := make([]*CandidateModel, gridSize)
    failures := make([]*FitFailure, gridSize)

    g, gctx := errgroup.WithContext(ctx)
    g.SetLimit(workers)
    for i := range grid {
        i := i
        g.Go(func() error {
            if err := gctx.Err(); err != nil { return err }
            mults := p.multipliers(grid[i])
            labels, weights := p.reweight(mults, s.ConstraintWeight, y, sensitive)
            if err := fitOne(factory, X, labels, weights, func(m Learner) {
                candidates[i] = &CandidateModel{Index: i, Multipliers: mults, Model: m}
            }); err != nil {
                failures[i] = &FitFailure{Index: i, Multipliers: mults, Err: err}
                logger.Warn("Grid point skipped", zap.Int("index", i), zap.Error(err))
            }
            return nil
        })
    }
    if err := g.Wait(); err != nil { return nil, err }
    if err := ctx.Err(); err != nil { return nil, err }

    res := &SearchResult{Constraint: constraint, Reference: p.groups[0], Groups: p.groups}
    for i := range grid {
        if candidates[i] != nil { res.Candidates = append(res.Candidates, *candidates[i]) }
        if failures[i] != nil { res.Failures = append(res.Failures, failures[i]) }
    }
    logger.Info("Grid search finished",
        zap.Int("candidates", len(res.Candidates)),
        zap.Int("failures", len(res.Failures)),
    )
    return res, nil
}

func fitOne(factory LearnerFactory, X [][]float64, y []int, w []float64, keep func(Learner)) (err error) {
    defer func() {
        if r := recover(); r != nil { err = fmt.Errorf("learner panicked: %v", r) }
    }()
    m := factory()
    if m == nil { return errors.New("factory returned nil learner") }
    if err := m.Fit(X, y, w); err != nil { return err }
    keep(m)
    return nil
}
