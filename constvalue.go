package yamlschema

// ConstValueKind tags the variant held by a ConstValue.
type ConstValueKind int

const (
	ConstNull ConstValueKind = iota
	ConstBool
	ConstNumber
	ConstString
)

// ConstValue is the canonical, comparable form of a YAML scalar used for
// const/enum matching. Both schema literals (loaded from the schema
// document) and input values are converted through this type so that
// equality never compares raw tree nodes directly.
type ConstValue struct {
	Kind   ConstValueKind
	Bool   bool
	Num    Number
	String string
}

// ConstValueFromNode derives a ConstValue from an input document Node. It
// returns ok=false for array/hash nodes, which have no const/enum identity.
func ConstValueFromNode(n *Node) (ConstValue, bool) {
	switch n.Kind {
	case KindNull:
		return ConstValue{Kind: ConstNull}, true
	case KindBool:
		return ConstValue{Kind: ConstBool, Bool: n.Bool}, true
	case KindInt:
		return ConstValue{Kind: ConstNumber, Num: IntNumber(n.Int)}, true
	case KindReal:
		return ConstValue{Kind: ConstNumber, Num: FloatNumber(n.Float())}, true
	case KindString:
		return ConstValue{Kind: ConstString, String: n.String}, true
	default:
		return ConstValue{}, false
	}
}

// Equal reports whether two ConstValues represent the same literal. Types
// must match exactly: an integer is never equal to a float of identical
// magnitude unless both parse to the same ConstValue variant.
func (c ConstValue) Equal(other ConstValue) bool {
	if c.Kind != other.Kind {
		return false
	}
	switch c.Kind {
	case ConstNull:
		return true
	case ConstBool:
		return c.Bool == other.Bool
	case ConstNumber:
		return c.Num.IsFloat() == other.Num.IsFloat() && c.Num.Cmp(other.Num) == 0
	case ConstString:
		return c.String == other.String
	default:
		return false
	}
}

// String renders the ConstValue for error messages.
func (c ConstValue) String() string {
	switch c.Kind {
	case ConstNull:
		return "null"
	case ConstBool:
		if c.Bool {
			return "true"
		}
		return "false"
	case ConstNumber:
		return c.Num.String()
	case ConstString:
		return c.String
	default:
		return ""
	}
}

// describeNode renders an input Node's type and value for error messages,
// e.g. "Integer(42)".
func describeNode(n *Node) string {
	switch n.Kind {
	case KindNull:
		return "Null"
	case KindBool:
		if n.Bool {
			return "Boolean(true)"
		}
		return "Boolean(false)"
	case KindInt:
		return "Integer(" + IntNumber(n.Int).String() + ")"
	case KindReal:
		return "Real(" + n.Real + ")"
	case KindString:
		return "String(" + n.String + ")"
	case KindArray:
		return "Array"
	case KindHash:
		return "Hash"
	default:
		return ""
	}
}
