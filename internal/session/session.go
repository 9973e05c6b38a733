// Package session holds the most recent calculation result of one user
// session, along with its rendered chart, and exports it on request.
//
// A Session moves from Empty to Populated on every successful calculation
// and back to Empty on any failure, so an export after a failed
// recalculation never writes stale figures.
package session

import (
	"errors"

	"github.com/iwvelando/interest-calculator/internal/calculator"
	"github.com/iwvelando/interest-calculator/internal/chart"
	"github.com/iwvelando/interest-calculator/internal/report"
	"go.uber.org/zap"
)

// ErrNoResult is returned by Export when nothing has been calculated yet.
// It is a warning for the user rather than a failure.
var ErrNoResult = errors.New("Calculate something first.")

// ChartRenderer produces the breakdown image for a result.
type ChartRenderer interface {
	Render(principal, interest float64) ([]byte, error)
}

// Exporter writes a result document to a path.
type Exporter interface {
	Write(path string, res calculator.Result, chartPNG []byte) error
}

// Session is a single-caller result holder. It is not safe for concurrent use.
type Session struct {
	logger          *zap.Logger
	charts          ChartRenderer
	exporter        Exporter
	defaultCurrency string

	result *calculator.Result
	chart  []byte
}

// Option configures a Session.
type Option func(*Session)

// WithChartRenderer overrides the default chart renderer.
func WithChartRenderer(r ChartRenderer) Option {
	return func(s *Session) {
		s.charts = r
	}
}

// WithExporter overrides the default PDF writer.
func WithExporter(e Exporter) Option {
	return func(s *Session) {
		s.exporter = e
	}
}

// WithDefaultCurrency sets the symbol used when a form leaves currency empty.
func WithDefaultCurrency(symbol string) Option {
	return func(s *Session) {
		s.defaultCurrency = symbol
	}
}

// New returns an empty Session.
func New(logger *zap.Logger, opts ...Option) *Session {
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &Session{
		logger:   logger,
		charts:   chart.NewRenderer(),
		exporter: report.NewWriter(logger, report.Options{}),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Restore returns a Session populated with a previously computed result. The
// chart is re-rendered from the result.
func Restore(logger *zap.Logger, res calculator.Result, opts ...Option) *Session {
	s := New(logger, opts...)
	if res.Empty() {
		return s
	}
	s.populate(res)
	return s
}

// Calculate parses the form and replaces the held result. On any failure the
// held result is cleared and the error is returned.
func (s *Session) Calculate(form calculator.Form) (calculator.Result, error) {
	if form.Currency == "" {
		form.Currency = s.defaultCurrency
	}

	input, err := calculator.ParseInput(form)
	if err != nil {
		s.fail(err)
		return calculator.Result{}, err
	}
	res, err := calculator.Calculate(input)
	if err != nil {
		s.fail(err)
		return calculator.Result{}, err
	}

	s.populate(res)
	s.logger.Debug("calculation complete",
		zap.String("op", "session.Calculate"),
		zap.String("kind", string(res.Kind)),
	)
	return res, nil
}

// Result returns the held result, if any.
func (s *Session) Result() (calculator.Result, bool) {
	if s.result == nil {
		return calculator.Result{}, false
	}
	return *s.result, true
}

// Chart returns the PNG of the held result, or nil.
func (s *Session) Chart() []byte {
	return s.chart
}

// Clear drops the held result and chart.
func (s *Session) Clear() {
	s.result = nil
	s.chart = nil
}

// Export writes the held result to path. Without a held result it returns
// ErrNoResult and writes nothing.
func (s *Session) Export(path string) error {
	if s.result == nil {
		s.logger.Warn("export requested without a calculation",
			zap.String("op", "session.Export"),
		)
		return ErrNoResult
	}
	if err := s.exporter.Write(path, *s.result, s.chart); err != nil {
		s.logger.Error("export failed",
			zap.String("op", "session.Export"),
			zap.String("path", path),
			zap.Error(err),
		)
		return err
	}
	return nil
}

func (s *Session) populate(res calculator.Result) {
	s.result = &res
	s.chart = nil

	chartPNG, err := s.charts.Render(res.Breakdown())
	if err != nil {
		// The figures stay valid and exportable without the image.
		s.logger.Warn("failed to render breakdown chart",
			zap.String("op", "session.populate"),
			zap.Error(err),
		)
		return
	}
	s.chart = chartPNG
}

func (s *Session) fail(err error) {
	s.Clear()
	s.logger.Info("calculation rejected",
		zap.String("op", "session.Calculate"),
		zap.Error(err),
	)
}
