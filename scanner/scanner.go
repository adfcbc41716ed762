/*
Package scanner provides tokenizers producing the terminal sequences consumed
by the chart parser.

The parser treats tokenization as an external concern: it consumes an ordered
list of terminals whose spans are contiguous, increasing token-index ranges
(k…k+1). A default implementation is provided as a thin wrapper over the Go
std lib 'text/scanner', and an adapter for lexmachine lives in sub-package
`lexmach`.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2023–2026 Martin Höller <martin@hoeller.dev>

*/
package scanner

import (
	"io"
	"strings"
	"text/scanner"

	"github.com/npillmayer/schuko/tracing"

	"github.com/mhoeller/charta"
)

// tracer traces with key 'charta.scanner'.
func tracer() tracing.Trace {
	return tracing.Select("charta.scanner")
}

// EOF is identical to text/scanner.EOF.
// Token types are replicated here for practical reasons.
const (
	EOF    = scanner.EOF
	Ident  = scanner.Ident
	Int    = scanner.Int
	Float  = scanner.Float
	String = scanner.String
)

// Tokenizer is a scanner interface.
type Tokenizer interface {
	NextToken() charta.Token
	SetErrorHandler(func(error))
}

// Terminal is one input terminal at a token index. Its span is the half-open
// index range (pos…pos+1).
type Terminal struct {
	typ    charta.TokType
	lexeme string
	pos    uint64
}

var _ charta.Token = Terminal{}

// MakeTerminal creates a terminal for symbol sym at token index i.
func MakeTerminal(sym string, i uint64) Terminal {
	return Terminal{typ: charta.TokType(Ident), lexeme: sym, pos: i}
}

// MakeTyped creates a terminal with an explicit token type, for tokenizers
// with their own token categories.
func MakeTyped(typ charta.TokType, sym string, i uint64) Terminal {
	return Terminal{typ: typ, lexeme: sym, pos: i}
}

// MakeEOF creates the end-of-input marker terminal at token index i.
func MakeEOF(i uint64) Terminal {
	return Terminal{typ: charta.TokType(EOF), pos: i}
}

// TokType is part of the Token interface.
func (t Terminal) TokType() charta.TokType {
	return t.typ
}

// Lexeme is part of the Token interface.
func (t Terminal) Lexeme() string {
	return t.lexeme
}

// Value is part of the Token interface.
func (t Terminal) Value() interface{} {
	return t.lexeme
}

// Span is part of the Token interface. It is a token-index span.
func (t Terminal) Span() charta.Span {
	return charta.Span{t.pos, t.pos + 1}
}

func (t Terminal) String() string {
	return t.lexeme
}

// --- Default tokenizer ------------------------------------------------------

// WordTokenizer is a default Tokenizer implementation, backed by
// text/scanner. Create one with GoTokenizer.
type WordTokenizer struct {
	scanner.Scanner
	Error func(error) // error handler
	index uint64      // next token index
}

var _ Tokenizer = (*WordTokenizer)(nil)

// Default error reporting function for scanners
func logError(e error) {
	tracer().Errorf("scanner error: " + e.Error())
}

// GoTokenizer creates a tokenizer accepting tokens similar to the Go
// language, numbering them with consecutive token indices.
func GoTokenizer(sourceID string, input io.Reader) *WordTokenizer {
	t := &WordTokenizer{}
	t.Error = logError
	t.Init(input)
	t.Filename = sourceID
	return t
}

// SetErrorHandler sets an error handler for the scanner.
func (t *WordTokenizer) SetErrorHandler(h func(error)) {
	if h == nil {
		t.Error = logError
		return
	}
	t.Error = h
}

// NextToken is part of the Tokenizer interface. At the end of the input it
// returns a terminal with token type EOF.
func (t *WordTokenizer) NextToken() charta.Token {
	r := t.Scan()
	if r == scanner.EOF {
		tracer().Debugf("WordTokenizer reached end of input")
		return Terminal{typ: charta.TokType(EOF), pos: t.index}
	}
	term := Terminal{
		typ:    charta.TokType(r),
		lexeme: t.TokenText(),
		pos:    t.index,
	}
	t.index++
	return term
}

// Drain collects all tokens of a tokenizer up to EOF.
func Drain(tz Tokenizer) []charta.Token {
	var out []charta.Token
	for {
		tok := tz.NextToken()
		if tok.TokType() == charta.TokType(EOF) {
			return out
		}
		out = append(out, tok)
	}
}

// Words tokenizes an input string into terminals, as a convenience for the
// common parse-a-sentence case.
func Words(input string) []charta.Token {
	return Drain(GoTokenizer("input", strings.NewReader(input)))
}
