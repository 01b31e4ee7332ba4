package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"
	"syscall"
	"time"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"github.com/tidwall/pretty"

	"github.com/jsongrep/jsongrep/internal/diagnostic"
	"github.com/jsongrep/jsongrep/internal/lexer"
	"github.com/jsongrep/jsongrep/internal/parser"
	"github.com/jsongrep/jsongrep/internal/pathfmt"
	"github.com/jsongrep/jsongrep/pkg/ast"
	"github.com/jsongrep/jsongrep/pkg/pathrx"
)

func runQuery(_ *cobra.Command, args []string) error {
	queryText, fileArgs, err := resolveQueryText(args)
	if err != nil {
		return asArgError(err)
	}

	start := time.Now()
	query, err := compileQuery(queryText)
	if err != nil {
		printCompileError(err, queryText)
		return asArgError(fmt.Errorf("failed to compile query"))
	}
	program := pathrx.CompileQuery(query)
	compileTime := time.Since(start)

	if flagStats {
		fmt.Fprintf(os.Stderr, "nfa states: %d, dfa states: %d, compile time: %s\n",
			program.NFAStates(), program.DFAStates(), compileTime)
	}
	if verbose {
		fmt.Fprintf(os.Stderr, "compiled query %q in %s\n", queryText, compileTime)
	}

	data, err := readInput(fileArgs)
	if err != nil {
		return asIOError(err)
	}
	if verbose {
		fmt.Fprintf(os.Stderr, "read %d byte(s) of input\n", len(data))
	}

	doc, err := pathrx.ParseJSON(data)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return asIOError(err)
	}

	if flagDepth {
		fmt.Fprintln(os.Stdout, doc.Depth())
	}

	evalStart := time.Now()
	var matches []pathrx.Match
	if flagMaxDepth > 0 {
		matches = program.EvalWithMaxDepth(doc, flagMaxDepth)
	} else {
		matches = program.Eval(doc)
	}
	if verbose {
		fmt.Fprintf(os.Stderr, "evaluated %d match(es) in %s\n", len(matches), time.Since(evalStart))
	}

	out := newOutput(os.Stdout)
	if !flagNoDisplay {
		for _, m := range matches {
			if !out.writeMatch(m) {
				break
			}
		}
	}

	if flagCount {
		out.writeCount(len(matches))
	}

	return nil
}

// resolveQueryText applies spec.md §6's positional-argument rules: when
// --query-file is set, every positional argument names an input file;
// otherwise the first positional argument is the query and the second (if
// any) is the input file.
func resolveQueryText(args []string) (query string, fileArgs []string, err error) {
	if flagQueryFile != "" {
		data, err := os.ReadFile(flagQueryFile)
		if err != nil {
			return "", nil, fmt.Errorf("reading query file: %w", err)
		}
		return string(data), args, nil
	}
	if len(args) == 0 {
		return "", nil, nil
	}
	return args[0], args[1:], nil
}

func compileQuery(queryText string) (*ast.Query, error) {
	if flagFixedString {
		return pathrx.FixedString(queryText), nil
	}
	return parser.Parse(queryText)
}

func readInput(fileArgs []string) ([]byte, error) {
	if len(fileArgs) == 0 {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(fileArgs[0])
}

func printCompileError(err error, queryText string) {
	var lexErr *lexer.LexError
	var parseErr *parser.ParseError
	switch {
	case errors.As(err, &lexErr):
		se := diagnostic.New(lexErr.Pos, lexErr.Message, queryText)
		fmt.Fprintln(os.Stderr, se.Format(isColorTerminal()))
	case errors.As(err, &parseErr):
		se := diagnostic.New(parseErr.Pos, parseErr.Error(), queryText)
		fmt.Fprintln(os.Stderr, se.Format(isColorTerminal()))
	default:
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
	}
}

func isColorTerminal() bool {
	return isatty.IsTerminal(os.Stdout.Fd())
}

// output writes matches to w, silently stopping once w refuses further
// writes with a broken pipe (e.g. the downstream end of `| head` closed);
// per spec.md §6 that is not an error.
type output struct {
	w        io.Writer
	showPath bool
	color    bool
	broken   bool
}

func newOutput(w io.Writer) *output {
	term := isatty.IsTerminal(os.Stdout.Fd())
	showPath := term
	if flagWithPath {
		showPath = true
	}
	if flagNoPath {
		showPath = false
	}
	return &output{w: w, showPath: showPath, color: term}
}

var (
	headerColor = color.New(color.FgCyan, color.Bold)
	countColor  = color.New(color.FgGreen, color.Bold)
)

func (o *output) writeMatch(m pathrx.Match) bool {
	if o.broken {
		return false
	}
	if o.showPath {
		if line, ok := pathfmt.Header(m.Path); ok {
			if o.color {
				line = headerColor.Sprint(line)
			}
			if !o.write(line + "\n") {
				return false
			}
		}
	}
	body := renderValue(m.Value.Raw(), o.color)
	return o.write(body + "\n")
}


// writeCount prints the "Found matches: N" summary line, colorized (in its
// own color, like the path header) when writing to a terminal.
func (o *output) writeCount(n int) {
	line := fmt.Sprintf("Found matches: %d", n)
	if o.color {
		line = countColor.Sprint(line)
	}
	o.write(line + "\n")
}

func renderValue(raw string, colorize bool) string {
	var formatted []byte
	if flagCompact {
		formatted = pretty.Ugly([]byte(raw))
	} else {
		formatted = pretty.Pretty([]byte(raw))
	}
	if colorize {
		formatted = pretty.Color(formatted, nil)
	}
	for len(formatted) > 0 && formatted[len(formatted)-1] == '\n' {
		formatted = formatted[:len(formatted)-1]
	}
	return string(formatted)
}

func (o *output) write(s string) bool {
	_, err := io.WriteString(o.w, s)
	if err != nil {
		if errors.Is(err, syscall.EPIPE) {
			o.broken = true
			return false
		}
	}
	return true
}
