package slic

import (
	"strings"

	"github.com/dzonerzy/go-slic/internal/fuzzy"
	slicio "github.com/dzonerzy/go-slic/io"
)

const defaultMaxSuggestionDistance = 2

// Parser scans one argument vector into a result record of type S.
// A Parser is not safe for concurrent use.
type Parser[S any] struct {
	decls   *Declarations[S]
	argv    []string
	program string
	result  S

	io          *slicio.IOManager
	log         *slicio.Logger
	suggest     bool
	maxDistance int
}

// NewParser binds decls to argv. argv[0] is the program invocation; the
// program name is the part after its last '/'.
func NewParser[S any](decls *Declarations[S], argv []string) *Parser[S] {
	p := &Parser[S]{
		decls:       decls,
		argv:        argv,
		io:          slicio.New(),
		maxDistance: defaultMaxSuggestionDistance,
	}
	if len(argv) > 0 {
		p.program = argv[0][strings.LastIndexByte(argv[0], '/')+1:]
	}
	return p
}

// WithIO sets the IOManager used by PrintHelp and PrintError.
func (p *Parser[S]) WithIO(m *slicio.IOManager) *Parser[S] {
	if m != nil {
		p.io = m
	}
	return p
}

// WithLogger enables debug tracing of parse decisions.
func (p *Parser[S]) WithLogger(l *slicio.Logger) *Parser[S] {
	p.log = l
	return p
}

// SuggestOptions controls whether unknown options carry a close match.
func (p *Parser[S]) SuggestOptions(enabled bool) *Parser[S] {
	p.suggest = enabled
	return p
}

// MaxSuggestionDistance sets the largest edit distance a suggestion may have.
func (p *Parser[S]) MaxSuggestionDistance(d int) *Parser[S] {
	p.maxDistance = d
	return p
}

// Result returns the record the parser writes into.
func (p *Parser[S]) Result() *S { return &p.result }

// ProgramName returns the basename of argv[0].
func (p *Parser[S]) ProgramName() string { return p.program }

// Declarations returns the declaration list the parser was built with.
func (p *Parser[S]) Declarations() *Declarations[S] { return p.decls }

// IO returns the parser's IOManager.
func (p *Parser[S]) IO() *slicio.IOManager { return p.io }

// Parse scans argv once from index 1 and fills the result record. It stops
// at the first failure and returns a *ParseError; fields assigned before
// the failure keep their values. Calling Parse again scans into the same
// record without resetting it.
func (p *Parser[S]) Parse() error {
	filled := 0
	varArgsStart := -1

scan:
	for i := 1; i < len(p.argv); i++ {
		token := p.argv[i]

		switch {
		case token == "--":
			if i+1 < len(p.argv) {
				varArgsStart = i + 1
			}
			if p.tracing() {
				p.log.Debug("separator at %d", i)
			}
			break scan

		case strings.HasPrefix(token, "-"):
			next, err := p.parseOption(token, i)
			if err != nil {
				return p.fail(err)
			}
			i = next

		default:
			if filled < len(p.decls.args) {
				slot := p.decls.args[filled]
				if !slot.assign(&p.result, token) {
					return p.fail(newParseError(ErrorTypeInvalidValue, token))
				}
				if p.tracing() {
					p.log.Debug("argument %s = %q", slot.name, token)
				}
				filled++
				continue
			}
			if p.decls.varArgs == nil {
				return p.fail(newParseError(ErrorTypeTooManyArgs, token))
			}
			varArgsStart = i
			break scan
		}
	}

	if varArgsStart >= 0 && p.decls.varArgs != nil {
		span := ArgSpan{args: p.argv[varArgsStart:]}
		*p.decls.varArgs.field(&p.result) = span
		if p.tracing() {
			p.log.Debug("varargs = %s", span)
		}
	}

	for idx, slot := range p.decls.args {
		if !slot.optional && filled <= idx {
			return p.fail(newParseError(ErrorTypeMissingRequiredArg, slot.name))
		}
	}
	return nil
}

// parseOption handles one dash-prefixed token at index i and returns the
// index of the last token it consumed.
func (p *Parser[S]) parseOption(token string, i int) (int, *ParseError) {
	name, value, hasValue := strings.Cut(token, "=")

	opt, ok := p.decls.FindOption(name)
	if !ok {
		err := newParseError(ErrorTypeUnknownOption, name)
		if p.suggest {
			err.Suggestion = fuzzy.FindBestOption(name, p.decls.optionNames(), p.maxDistance)
		}
		return i, err
	}

	if !opt.needsValue {
		if !hasValue {
			value = "true"
		}
		if !opt.assign(&p.result, value) {
			return i, newParseError(ErrorTypeInvalidValue, token)
		}
		if p.tracing() {
			p.log.Debug("option %s = %s", opt.name, value)
		}
		return i, nil
	}

	if !hasValue {
		if i+1 >= len(p.argv) {
			return i, newParseError(ErrorTypeMissingValue, name)
		}
		i++
		value = p.argv[i]
	}
	if !opt.assign(&p.result, value) {
		return i, newParseError(ErrorTypeInvalidValue, token)
	}
	if p.tracing() {
		p.log.Debug("option %s = %q", opt.name, value)
	}
	return i, nil
}

func (p *Parser[S]) fail(err *ParseError) error {
	if p.tracing() {
		p.log.Debug("parse failed: %v", err)
	}
	return err
}

// tracing reports whether parse decisions are logged. Debug calls sit
// behind it so their arguments are only boxed when they will be printed.
func (p *Parser[S]) tracing() bool {
	return p.log.Enabled(slicio.LevelDebug)
}

// PrintError writes the formatted error to the IOManager's error stream.
func (p *Parser[S]) PrintError(err error) {
	WriteError(p.io.Err(), err)
}

// Parse is a shorthand for NewParser(decls, argv).Parse(). It returns the
// result record even when parsing fails.
func Parse[S any](decls *Declarations[S], argv []string) (*S, error) {
	p := NewParser(decls, argv)
	err := p.Parse()
	return p.Result(), err
}
