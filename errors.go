package yamlschema

import "fmt"

// LoaderErrorKind enumerates the typed loader/engine error kinds.
// NotYetImplemented/IOError/FileNotFound belong to the CLI layer (file
// access), not the loader itself, but the kind is kept here so callers share
// one taxonomy end to end.
type LoaderErrorKind int

const (
	ErrNotYetImplemented LoaderErrorKind = iota
	ErrIOError
	ErrFileNotFound
	ErrYamlParsingError
	ErrFloatParsingError
	ErrRegexParsingError
	ErrUnsupportedType
	ErrGenericError
	errFailFastKind // internal only, never returned to a caller
)

func (k LoaderErrorKind) String() string {
	switch k {
	case ErrNotYetImplemented:
		return "NotYetImplemented"
	case ErrIOError:
		return "IOError"
	case ErrFileNotFound:
		return "FileNotFound"
	case ErrYamlParsingError:
		return "YamlParsingError"
	case ErrFloatParsingError:
		return "FloatParsingError"
	case ErrRegexParsingError:
		return "RegexParsingError"
	case ErrUnsupportedType:
		return "UnsupportedType"
	case ErrGenericError:
		return "GenericError"
	default:
		return "FailFast"
	}
}

// LoaderError is a typed loader or engine error. Loader errors abort schema
// construction; engine errors abort evaluation. Both return to the caller
// rather than being added to a Context.
type LoaderError struct {
	Kind    LoaderErrorKind
	Message string
	Line    int // 0 when no position is available
	Col     int
}

func (e *LoaderError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("%s: %s (line %d, col %d)", e.Kind, e.Message, e.Line, e.Col)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// errFailFast is the internal distinguished signal a validator returns to
// unwind a branch immediately once fail-fast is active and an error has been
// recorded. The engine recognizes it and converts it into a normal return of
// the accumulated Context — it is never surfaced to a caller of Evaluate.
var errFailFast = &LoaderError{Kind: errFailFastKind, Message: "fail-fast short-circuit"}

// isFailFast reports whether err is the internal fail-fast signal.
func isFailFast(err error) bool {
	le, ok := err.(*LoaderError)
	return ok && le == errFailFast
}
