package yamlschema

import (
	"strconv"

	"github.com/goccy/go-yaml/ast"
)

// NodeKind tags the variant held by a Node.
type NodeKind int

const (
	KindNull NodeKind = iota
	KindBool
	KindInt
	KindReal
	KindString
	KindArray
	KindHash
)

// Entry is one key/value pair of a Hash node. Hash preserves the entries in
// the order they appeared in the source document, since it is built directly
// from goccy/go-yaml's ast.MappingNode, whose Values slice is already
// insertion-ordered.
type Entry struct {
	Key   string
	Value *Node
}

// Node is the location-annotated representation of a parsed YAML value.
// Every Node is built once from an ast.Node and is immutable afterwards; it
// lives only for the duration of a single Evaluate call.
type Node struct {
	Kind NodeKind

	Bool   bool
	Int    int64
	Real   string // lexical form, preserved until a float is actually needed
	String string
	Array  []*Node
	Hash   []Entry

	Line int
	Col  int
}

func (n *Node) position() (int, int) {
	if n == nil {
		return 0, 0
	}
	return n.Line, n.Col
}

// Float returns the Real node's value as a float64.
func (n *Node) Float() float64 {
	f, _ := strconv.ParseFloat(n.Real, 64)
	return f
}

// Get returns the value for key in a Hash node, and whether it was present.
func (n *Node) Get(key string) (*Node, bool) {
	for _, e := range n.Hash {
		if e.Key == key {
			return e.Value, true
		}
	}
	return nil, false
}

// nodePos extracts a (line, column) pair from an ast.Node, defaulting to
// (0, 0) when no token/position information is available.
func nodePos(n ast.Node) (int, int) {
	if n == nil {
		return 0, 0
	}
	tok := n.GetToken()
	if tok == nil || tok.Position == nil {
		return 0, 0
	}
	return tok.Position.Line, tok.Position.Column
}

// FromAST converts a goccy/go-yaml AST node into a location-annotated Node.
func FromAST(n ast.Node) (*Node, error) {
	if n == nil {
		return &Node{Kind: KindNull}, nil
	}

	line, col := nodePos(n)

	switch v := n.(type) {
	case *ast.NullNode:
		return &Node{Kind: KindNull, Line: line, Col: col}, nil
	case *ast.BoolNode:
		return &Node{Kind: KindBool, Bool: v.Value, Line: line, Col: col}, nil
	case *ast.IntegerNode:
		i, err := coerceInt64(v.Value)
		if err != nil {
			return nil, &LoaderError{Kind: ErrYamlParsingError, Message: "invalid integer literal", Line: line, Col: col}
		}
		return &Node{Kind: KindInt, Int: i, Line: line, Col: col}, nil
	case *ast.FloatNode:
		lex := v.GetToken().Value
		return &Node{Kind: KindReal, Real: lex, Line: line, Col: col}, nil
	case *ast.InfinityNode, *ast.NanNode:
		return &Node{Kind: KindReal, Real: n.GetToken().Value, Line: line, Col: col}, nil
	case *ast.StringNode:
		return &Node{Kind: KindString, String: v.Value, Line: line, Col: col}, nil
	case *ast.LiteralNode:
		return &Node{Kind: KindString, String: v.Value.Value, Line: line, Col: col}, nil
	case *ast.SequenceNode:
		items := make([]*Node, 0, len(v.Values))
		for _, item := range v.Values {
			child, err := FromAST(item)
			if err != nil {
				return nil, err
			}
			items = append(items, child)
		}
		return &Node{Kind: KindArray, Array: items, Line: line, Col: col}, nil
	case *ast.MappingNode:
		entries := make([]Entry, 0, len(v.Values))
		for _, mv := range v.Values {
			key, err := mappingKey(mv.Key)
			if err != nil {
				return nil, err
			}
			val, err := FromAST(mv.Value)
			if err != nil {
				return nil, err
			}
			entries = append(entries, Entry{Key: key, Value: val})
		}
		return &Node{Kind: KindHash, Hash: entries, Line: line, Col: col}, nil
	case *ast.MappingValueNode:
		key, err := mappingKey(v.Key)
		if err != nil {
			return nil, err
		}
		val, err := FromAST(v.Value)
		if err != nil {
			return nil, err
		}
		return &Node{Kind: KindHash, Hash: []Entry{{Key: key, Value: val}}, Line: line, Col: col}, nil
	case *ast.TagNode:
		return FromAST(v.Value)
	case *ast.AnchorNode:
		return FromAST(v.Value)
	case *ast.AliasNode:
		return FromAST(v.Value)
	default:
		return &Node{Kind: KindNull, Line: line, Col: col}, nil
	}
}

func mappingKey(n ast.Node) (string, error) {
	switch v := n.(type) {
	case *ast.StringNode:
		return v.Value, nil
	default:
		node, err := FromAST(n)
		if err != nil {
			return "", err
		}
		return scalarKeyString(node), nil
	}
}

// scalarKeyString renders a non-string scalar mapping key (e.g. a bare `42:`)
// as the string the rest of the validator treats property names as.
func scalarKeyString(n *Node) string {
	switch n.Kind {
	case KindInt:
		return strconv.FormatInt(n.Int, 10)
	case KindReal:
		return n.Real
	case KindBool:
		return strconv.FormatBool(n.Bool)
	case KindNull:
		return "null"
	default:
		return n.String
	}
}

func coerceInt64(v interface{}) (int64, error) {
	switch x := v.(type) {
	case int64:
		return x, nil
	case int:
		return int64(x), nil
	case uint64:
		return int64(x), nil
	case uint:
		return int64(x), nil
	default:
		return 0, &LoaderError{Kind: ErrYamlParsingError, Message: "unrepresentable integer literal"}
	}
}
