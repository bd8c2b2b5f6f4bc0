package filter

import (
	"fmt"
	"log/slog"
	"regexp"
	"time"

	"github.com/dlclark/regexp2"
)

// Engine names a regular expression dialect
type Engine string

const (
	// EngineRE2 is Go's linear-time RE2 syntax
	EngineRE2 Engine = "re2"
	// EngineECMAScript is the ECMAScript dialect with backreferences and lookaround
	EngineECMAScript Engine = "ecmascript"
)

// matchTimeout bounds a single backtracking match so one pathological line
// cannot stall the session
const matchTimeout = 100 * time.Millisecond

// Matcher reports whether a line contains a match
type Matcher interface {
	MatchString(s string) bool
}

// Compiler turns a query into a Matcher
type Compiler func(pattern string) (Matcher, error)

// Engines lists the supported dialects
func Engines() []Engine {
	return []Engine{EngineRE2, EngineECMAScript}
}

// CompilerFor returns the compiler for an engine
func CompilerFor(engine Engine) (Compiler, error) {
	switch engine {
	case EngineRE2, "":
		return compileRE2, nil
	case EngineECMAScript:
		return compileECMAScript, nil
	default:
		return nil, fmt.Errorf("unknown regex engine %q", engine)
	}
}

func compileRE2(pattern string) (Matcher, error) {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, err
	}
	return re, nil
}

type ecmaMatcher struct {
	re *regexp2.Regexp
}

func compileECMAScript(pattern string) (Matcher, error) {
	re, err := regexp2.Compile(pattern, regexp2.ECMAScript)
	if err != nil {
		return nil, err
	}
	re.MatchTimeout = matchTimeout
	return ecmaMatcher{re: re}, nil
}

// MatchString treats a match that times out as no match
func (m ecmaMatcher) MatchString(s string) bool {
	ok, err := m.re.MatchString(s)
	if err != nil {
		slog.Debug("match aborted", "pattern", m.re.String(), "error", err)
		return false
	}
	return ok
}
