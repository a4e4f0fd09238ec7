package spanner

import (
	"github.com/dagspan/dagspan/automaton"
	"github.com/dagspan/dagspan/jumpindex"
)

// Spanner binds a compiled automaton to a text and, once preprocessed,
// to the jumpindex.Index built over their product-DAG.
type Spanner struct {
	aut   *automaton.Automaton
	text  string
	runes []rune
	cfg   *Config

	idx          *jumpindex.Index
	times        jumpindex.BuildTimes
	preprocessed bool
}

// New returns a Spanner over aut and text, configured by opts. Preprocess
// must be called before Iter, Times, or MemoryUsage.
func New(aut *automaton.Automaton, text string, opts ...Option) *Spanner {
	return &Spanner{
		aut:   aut,
		text:  text,
		runes: []rune(text),
		cfg:   DefaultConfig(opts...),
	}
}

// Preprocess builds the jump index over the automaton and text: a forward
// pass, the configured trimming policy, and (when trimming ran) a reindex
// pass. Returns ErrAlreadyPreprocessed if called twice.
func (s *Spanner) Preprocess() error {
	if s.preprocessed {
		return ErrAlreadyPreprocessed
	}

	s.idx = jumpindex.New(s.aut, s.runes, s.cfg.JumpDistance)
	times, err := s.idx.Build(s.cfg.Trimming)
	if err != nil {
		return err
	}
	s.times = times
	s.preprocessed = true

	if s.cfg.Progress && s.cfg.ProgressFunc != nil {
		s.cfg.ProgressFunc("construction", times.Construction)
		s.cfg.ProgressFunc("trim", times.Trim)
		s.cfg.ProgressFunc("reindex", times.Reindex)
	}
	return nil
}

// Times returns the per-phase durations recorded by the most recent
// Preprocess call. Zero value before Preprocess runs.
func (s *Spanner) Times() jumpindex.BuildTimes {
	return s.times
}

// Disconnected reports whether the product-DAG has no accepting path at
// all, meaning the automaton never matches the text. False before
// Preprocess runs.
func (s *Spanner) Disconnected() bool {
	return s.preprocessed && s.idx.Disconnected()
}

// MemoryUsage reports level, vertex, and materialized-reach-matrix counts
// for the built index. Returns ErrNotPreprocessed before Preprocess runs.
func (s *Spanner) MemoryUsage() (jumpindex.Stats, error) {
	if !s.preprocessed {
		return jumpindex.Stats{}, ErrNotPreprocessed
	}
	return s.idx.MemoryUsage(), nil
}

// Iter returns a fresh Iterator over every mapping the automaton admits
// over the text. Returns ErrNotPreprocessed before Preprocess runs.
func (s *Spanner) Iter() (*Iterator, error) {
	if !s.preprocessed {
		return nil, ErrNotPreprocessed
	}
	return newIterator(s), nil
}
