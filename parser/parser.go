package parser

import (
	"errors"
	"fmt"

	"github.com/emirpasic/gods/stacks/arraystack"
	"github.com/npillmayer/schuko/tracing"

	"github.com/mhoeller/charta"
	"github.com/mhoeller/charta/chart"
	"github.com/mhoeller/charta/feat"
	"github.com/mhoeller/charta/forest"
	"github.com/mhoeller/charta/grammar"

	lru "github.com/hashicorp/golang-lru/v2"
)

// Budget limits the resources of one parse. Zero values mean "unlimited".
// A round is the processing of one agenda entry.
type Budget struct {
	MaxEdges  int
	MaxRounds int
}

// PartialParseError reports that a parse was aborted because its budget was
// exceeded. It carries the chart as built so far, so that a caller may
// inspect or extract from the partial result. It is distinct from "no parse
// exists", which is a normal empty extraction, not an error.
type PartialParseError struct {
	Chart  *chart.Chart
	Edges  int
	Rounds int
}

func (e *PartialParseError) Error() string {
	return fmt.Sprintf("parse aborted after %d edges, %d rounds: budget exceeded", e.Edges, e.Rounds)
}

// ErrInvalidInput signals a terminal sequence whose spans are not the
// contiguous, increasing token-index ranges the engine requires.
var ErrInvalidInput = errors.New("terminal spans must be contiguous token-index ranges")

// Parser drives chart parses over one immutable grammar. A parser is safe for
// concurrent use: every parse owns its chart exclusively and the grammar is
// read-only.
type Parser struct {
	g        *grammar.Grammar
	strategy Strategy
	budget   Budget
	trace    int
	cache    *lru.Cache[string, *chart.Chart]
}

// Option configures a Parser.
type Option func(*Parser) error

// WithStrategy selects the rule set. Default is BottomUp.
func WithStrategy(s Strategy) Option {
	return func(p *Parser) error {
		if len(s) == 0 {
			return errors.New("empty strategy")
		}
		p.strategy = s
		return nil
	}
}

// WithBudget limits edge count and agenda rounds of every parse.
func WithBudget(b Budget) Option {
	return func(p *Parser) error {
		p.budget = b
		return nil
	}
}

// WithTrace sets the diagnostic verbosity: 0 is quiet, 1 logs a parse
// summary, 2 and above log every edge. Purely observational.
func WithTrace(level int) Option {
	return func(p *Parser) error {
		p.trace = level
		return nil
	}
}

// WithChartCache retains the charts of the most recent parses, keyed by input
// symbols, so that reparsing an identical sequence is free.
func WithChartCache(size int) Option {
	return func(p *Parser) (err error) {
		p.cache, err = lru.New[string, *chart.Chart](size)
		return err
	}
}

// New creates a parser for a grammar. The grammar must be well-formed; a nil
// grammar or one without a start category is rejected with a grammar error.
func New(g *grammar.Grammar, opts ...Option) (*Parser, error) {
	if g == nil {
		return nil, &grammar.Error{Grammar: "<nil>", Reason: "no grammar given"}
	}
	if g.Start() == nil {
		return nil, &grammar.Error{Grammar: g.Name, Reason: "grammar without start category"}
	}
	p := &Parser{
		g:        g,
		strategy: BottomUp(),
	}
	for _, opt := range opts {
		if err := opt(p); err != nil {
			return nil, err
		}
	}
	return p, nil
}

// Grammar returns the parser's grammar.
func (p *Parser) Grammar() *grammar.Grammar {
	return p.g
}

// Chart runs the rule-application engine to its fixpoint over the given
// terminal sequence and returns the resulting chart. If the parse's budget is
// exceeded, the returned error is a *PartialParseError carrying the chart as
// built so far.
func (p *Parser) Chart(terminals []charta.Token) (*chart.Chart, error) {
	if err := validateTerminals(terminals); err != nil {
		return nil, err
	}
	if p.trace >= 2 {
		restore := tracing.Select("charta.chart").GetTraceLevel()
		tracing.Select("charta.chart").SetTraceLevel(tracing.LevelDebug)
		defer tracing.Select("charta.chart").SetTraceLevel(restore)
	}
	key := ""
	if p.cache != nil {
		key = inputKey(terminals, p.strategy)
		if ch, ok := p.cache.Get(key); ok {
			tracer().Debugf("chart cache hit for %d terminals", len(terminals))
			return ch, nil
		}
	}
	ch := chart.New(uint64(len(terminals)))
	agenda := arraystack.New()
	for _, r := range p.strategy {
		seeder, ok := r.(Seeder)
		if !ok {
			continue
		}
		for _, e := range seeder.Seed(ch, p.g, terminals) {
			agenda.Push(e)
		}
	}
	rounds := 0
	for !agenda.Empty() {
		if p.exceeded(ch, rounds) {
			tracer().Infof("budget exceeded: %d edges, %d rounds", ch.Size(), rounds)
			return ch, &PartialParseError{Chart: ch, Edges: ch.Size(), Rounds: rounds}
		}
		x, _ := agenda.Pop()
		e := x.(*chart.Edge)
		rounds++
		for _, r := range p.strategy {
			for _, ne := range r.Apply(ch, p.g, e) {
				agenda.Push(ne)
			}
		}
	}
	if p.trace >= 1 {
		tracer().Infof("fixpoint after %d rounds, %d edges over %d terminals",
			rounds, ch.Size(), len(terminals))
	}
	if p.cache != nil {
		p.cache.Add(key, ch)
	}
	return ch, nil
}

// Parse parses a terminal sequence and returns the lazy sequence of parse
// trees. "No parse exists" is an empty sequence, not an error. A budget
// violation is returned as *PartialParseError; its chart may still be handed
// to forest.Extract explicitly if a partial reading is wanted.
func (p *Parser) Parse(terminals []charta.Token) (*forest.Sequence, error) {
	ch, err := p.Chart(terminals)
	if err != nil {
		return nil, err
	}
	return forest.Extract(ch, p.g), nil
}

func (p *Parser) exceeded(ch *chart.Chart, rounds int) bool {
	if p.budget.MaxEdges > 0 && ch.Size() > p.budget.MaxEdges {
		return true
	}
	if p.budget.MaxRounds > 0 && rounds >= p.budget.MaxRounds {
		return true
	}
	return false
}

// validateTerminals checks the tokenizer contract: span k covers (k…k+1).
func validateTerminals(terminals []charta.Token) error {
	for i, t := range terminals {
		s := t.Span()
		if s.From() != uint64(i) || s.To() != uint64(i)+1 {
			return fmt.Errorf("%w: terminal %d has span %s", ErrInvalidInput, i, s)
		}
	}
	return nil
}

func inputKey(terminals []charta.Token, s Strategy) string {
	sig := struct {
		Symbols []string
		Rules   []string
	}{}
	for _, t := range terminals {
		sig.Symbols = append(sig.Symbols, t.Lexeme())
	}
	for _, r := range s {
		sig.Rules = append(sig.Rules, r.Name())
	}
	return feat.Hash(sig)
}
