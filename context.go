package yamlschema

import (
	"strconv"
	"strings"
)

// ValidationError is one reported violation: the document path it occurred
// at, the input node it was raised against (for line/col), and a message.
type ValidationError struct {
	Path    string
	Node    *Node
	Message string
}

func (e *ValidationError) Error() string {
	return e.String()
}

// String renders a ValidationError the way the CLI prints it:
// "[<line>:<col>] .<path>: <message>" when position is known, otherwise
// ".<path>: <message>".
func (e *ValidationError) String() string {
	path := e.Path
	if path == "" {
		path = "."
	} else if !strings.HasPrefix(path, ".") {
		path = "." + path
	}
	line, col := e.Node.position()
	if line > 0 {
		return sprintfPos(line, col, path, e.Message)
	}
	return path + ": " + e.Message
}

func sprintfPos(line, col int, path, message string) string {
	return "[" + strconv.Itoa(line) + ":" + strconv.Itoa(col) + "] " + path + ": " + message
}

// Context accumulates errors during a single Validate/Evaluate walk. It
// tracks the current document path and, when FailFast is set, short-circuits
// the walk as soon as the first error is recorded.
type Context struct {
	path     []string
	errors   *[]*ValidationError
	failFast bool
}

// NewContext builds a root Context for one Evaluate call.
func NewContext(failFast bool) *Context {
	errs := make([]*ValidationError, 0)
	return &Context{errors: &errs, failFast: failFast}
}

// Path renders the current path as dot-joined segments, e.g. "foo.bar.0".
func (c *Context) Path() string {
	return strings.Join(c.path, ".")
}

// WithPath returns a child Context appending segment to the path. It shares
// the parent's error slice and fail-fast flag — errors recorded through the
// child are visible to the parent.
func (c *Context) WithPath(segment string) *Context {
	child := &Context{errors: c.errors, failFast: c.failFast}
	child.path = append(append([]string{}, c.path...), segment)
	return child
}

// Fork returns a sibling Context at the same path with a fresh, independent
// error slice — used by anyOf/oneOf/not/contains to try an alternative
// without adding its errors to the parent's.
func (c *Context) Fork() *Context {
	errs := make([]*ValidationError, 0)
	return &Context{path: append([]string{}, c.path...), errors: &errs, failFast: c.failFast}
}

// HasErrors reports whether any error has been recorded on this Context's
// error slice (shared with ancestors via WithPath, independent after Fork).
func (c *Context) HasErrors() bool {
	return len(*c.errors) > 0
}

// Errors returns the accumulated errors in recording order.
func (c *Context) Errors() []*ValidationError {
	return *c.errors
}

// AddError records a violation at node, under the current path, and returns
// errFailFast if FailFast is set so the caller can unwind immediately.
func (c *Context) AddError(node *Node, message string) error {
	*c.errors = append(*c.errors, &ValidationError{Path: c.Path(), Node: node, Message: message})
	if c.failFast {
		return errFailFast
	}
	return nil
}

// AddDocError records a document-level violation with no associated node,
// such as an empty input document.
func (c *Context) AddDocError(message string) error {
	return c.AddError(nil, message)
}

// Merge appends another Context's errors onto this one, for surfacing a
// forked sub-context's failures wholesale.
func (c *Context) Merge(other *Context) {
	*c.errors = append(*c.errors, other.Errors()...)
}
