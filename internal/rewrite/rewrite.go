package rewrite

import (
	"fmt"
	"regexp"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const (
	DefaultCall  = "with"
	DefaultStrip = "Items"
	DefaultMacro = "cost"
)

// Options selects the call to extract, the literal to strip from its body,
// and the macro the result is wrapped in.
type Options struct {
	Call  string
	Strip string
	Macro string
}

// DefaultOptions returns the `with(...)` → `cost!(...)` settings.
func DefaultOptions() Options {
	return Options{
		Call:  DefaultCall,
		Strip: DefaultStrip,
		Macro: DefaultMacro,
	}
}

// Result holds every stage of a single transform.
type Result struct {
	Input     string `json:"-"`
	Body      string `json:"body"`
	Output    string `json:"output"`
	Formatted string `json:"formatted"`
	Pairs     int    `json:"pairs"`
}

// Rewriter applies one set of Options. It is safe for concurrent use.
type Rewriter struct {
	opts    Options
	pattern *regexp.Regexp
}

// New compiles the extraction pattern for opts. Empty fields fall back to
// the defaults.
func New(opts Options) (*Rewriter, error) {
	def := DefaultOptions()
	if opts.Call == "" {
		opts.Call = def.Call
	}
	if opts.Macro == "" {
		opts.Macro = def.Macro
	}
	// Strip may legitimately be empty: nothing is removed then.

	pattern, err := regexp.Compile(regexp.QuoteMeta(opts.Call) + `\((.+)\)\);`)
	if err != nil {
		return nil, fmt.Errorf("compiling pattern for %q: %w", opts.Call, err)
	}
	return &Rewriter{opts: opts, pattern: pattern}, nil
}

var defaultRewriter = mustNew(DefaultOptions())

func mustNew(opts Options) *Rewriter {
	r, err := New(opts)
	if err != nil {
		panic(err)
	}
	return r
}

// Options returns the effective options.
func (r *Rewriter) Options() Options {
	return r.opts
}

// Extract returns the body of the first `<call>(...));` in raw with the strip
// literal removed. The capture is greedy, so it runs to the last `));` on the
// line where the match starts.
func (r *Rewriter) Extract(raw string) (string, error) {
	m := r.pattern.FindStringSubmatch(raw)
	if m == nil {
		return "", fmt.Errorf("%w: no %s(...)); in input", ErrPatternNotFound, r.opts.Call)
	}
	return StripLiteral(m[1], r.opts.Strip), nil
}

// Transform extracts, rewrites and formats raw. On error the Result is zero.
func (r *Rewriter) Transform(raw string) (Result, error) {
	body, err := r.Extract(raw)
	if err != nil {
		return Result{}, err
	}
	out, pairs, err := rewrite(body)
	if err != nil {
		return Result{}, err
	}
	return Result{
		Input:     raw,
		Body:      body,
		Output:    out,
		Formatted: Format(r.opts.Macro, out),
		Pairs:     pairs,
	}, nil
}

// Extract runs the default extraction (`with(...));`, strip "Items").
func Extract(raw string) (string, error) {
	return defaultRewriter.Extract(raw)
}

// Transform runs the default transform.
func Transform(raw string) (Result, error) {
	return defaultRewriter.Transform(raw)
}

// StripLiteral deletes every occurrence of lit from s. It does not look at
// word boundaries, so "fooItemsbar" becomes "foobar". Removal repeats until
// no occurrence is left, so "IteItemsms" becomes "" and a second call never
// changes the result.
func StripLiteral(s, lit string) string {
	if lit == "" {
		return s
	}
	for strings.Contains(s, lit) {
		s = strings.ReplaceAll(s, lit, "")
	}
	return s
}

// Rewrite converts a dotted, comma separated body into key:value form.
//
// A `.` is dropped and the rune after it is uppercased with full case
// mapping ("ß" becomes "SS"); that rune is never treated as a separator. Of the remaining commas the 1st, 3rd, 5th... become
// `:` and the others are kept.
func Rewrite(body string) (string, error) {
	out, _, err := rewrite(body)
	return out, err
}

// rewrite also returns how many commas became `:`.
func rewrite(body string) (string, int, error) {
	runes := []rune(body)

	var b strings.Builder
	b.Grow(len(body))

	// A Caser is not safe for concurrent use.
	upper := cases.Upper(language.Und)

	commas := 0
	for i := 0; i < len(runes); i++ {
		switch runes[i] {
		case '.':
			if i+1 >= len(runes) {
				return "", 0, &EndOfInputError{Offset: i}
			}
			i++
			b.WriteString(upper.String(string(runes[i])))
		case ',':
			commas++
			if commas%2 == 1 {
				b.WriteByte(':')
			} else {
				b.WriteByte(',')
			}
		default:
			b.WriteRune(runes[i])
		}
	}
	return b.String(), (commas + 1) / 2, nil
}

// Format wraps body as `<macro>!(<body>)`.
func Format(macro, body string) string {
	return macro + "!(" + body + ")"
}
