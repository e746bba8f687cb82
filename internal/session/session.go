// Package session owns the single mutable resource of the application: the
// active snapshot plus the transaction-list filter. Only a completed,
// successful ingestion replaces the snapshot, and replacement is wholesale,
// so readers never observe a partially updated snapshot. There is no
// concurrent writer, so no locking is needed.
package session

import (
	"io"
	"time"

	"opus/dashboard/internal/demo"
	"opus/dashboard/internal/derive"
	"opus/dashboard/internal/ingest"
	"opus/dashboard/internal/logging"
	"opus/dashboard/internal/models"
)

// Session is the explicit state container handed to the derivation layer
// and the rendering collaborator.
type Session struct {
	logger     logging.Logger
	normalizer *ingest.Normalizer
	clock      func() time.Time

	snapshot *models.Snapshot
	filter   derive.Filter
}

// Option configures a Session.
type Option func(*Session)

// WithClock overrides the session clock, used for demo loading and goal
// projections.
func WithClock(clock func() time.Time) Option {
	return func(s *Session) { s.clock = clock }
}

// WithNormalizer overrides the ingestion normalizer.
func WithNormalizer(n *ingest.Normalizer) Option {
	return func(s *Session) { s.normalizer = n }
}

// New creates an empty session. If logger is nil, a default logger is used.
func New(logger logging.Logger, opts ...Option) *Session {
	if logger == nil {
		logger = logging.NewLogrusAdapter("info", "text")
	}
	s := &Session{
		logger: logger,
		clock:  time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.normalizer == nil {
		s.normalizer = ingest.NewNormalizer(logger, ingest.WithClock(s.clock))
	}
	return s
}

// HasData reports whether a snapshot is installed.
func (s *Session) HasData() bool {
	return s.snapshot != nil
}

// Snapshot returns the active snapshot, or nil before the first successful
// load.
func (s *Session) Snapshot() *models.Snapshot {
	return s.snapshot
}

// Now returns the session's current time.
func (s *Session) Now() time.Time {
	return s.clock()
}

// LoadWorkbook ingests workbook bytes and, on success, replaces the active
// snapshot wholesale. On any error the previously installed snapshot is left
// untouched.
func (s *Session) LoadWorkbook(r io.Reader) error {
	snap, err := s.normalizer.FromReader(r)
	if err != nil {
		s.logger.WithError(err).Warn("Upload rejected, keeping current snapshot")
		return err
	}
	s.snapshot = snap
	s.logger.WithField(logging.FieldSnapshot, snap.ID).Info("Snapshot replaced")
	return nil
}

// LoadDemo installs the fixed demo snapshot.
func (s *Session) LoadDemo() {
	s.snapshot = demo.Snapshot(s.clock())
	s.logger.WithField(logging.FieldSnapshot, s.snapshot.ID).Info("Demo snapshot loaded")
}

// SetFilter replaces the active transaction-list filter.
func (s *Session) SetFilter(f derive.Filter) {
	s.filter = f
	s.logger.Debug("Filter updated",
		logging.Field{Key: logging.FieldAccount, Value: f.Account},
		logging.Field{Key: logging.FieldTag, Value: string(f.Tag)},
	)
}

// Filter returns the active transaction-list filter.
func (s *Session) Filter() derive.Filter {
	return s.filter
}

// FilteredTransactions applies the active filter to the snapshot's
// transaction list. Before the first load it returns nil.
func (s *Session) FilteredTransactions() []models.Transaction {
	if s.snapshot == nil {
		return nil
	}
	return derive.FilterTransactions(s.snapshot.Transactions, s.filter)
}
