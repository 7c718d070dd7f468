package yamlschema

import (
	"fmt"
	"regexp"
	"strings"
)

// Load parses source as a YAML schema document and builds a RootSchema from
// it. A missing or empty document loads as an Empty schema, mirroring the
// engine's own empty-document tolerance.
func Load(source string) (*RootSchema, error) {
	node, present, err := parseDocument(source)
	if err != nil {
		return nil, err
	}
	if !present {
		return &RootSchema{Schema: &Schema{Kind: KindEmpty}}, nil
	}
	return loadRoot(node)
}

func loadRoot(n *Node) (*RootSchema, error) {
	schema, err := loadSchemaValue(n)
	if err != nil {
		return nil, err
	}
	root := &RootSchema{Schema: schema}
	if n.Kind != KindHash {
		return root, nil
	}
	if schema.Metadata != nil {
		root.ID = schema.Metadata["$id"]
		root.MetaSchema = schema.Metadata["$schema"]
		root.Title = schema.Metadata["title"]
		root.Description = schema.Metadata["description"]
	}
	defsNode, ok := n.Get("$defs")
	if !ok || defsNode.Kind != KindHash {
		return root, nil
	}
	root.Defs = make(map[string]*Schema, len(defsNode.Hash))
	for _, e := range defsNode.Hash {
		def, err := loadSchemaValue(e.Value)
		if err != nil {
			return nil, err
		}
		root.Defs[e.Key] = def
	}
	return root, nil
}

// loadSchemaValue loads a single schema node — the root schema document, or
// any nested schema reference (a properties entry, an items schema, a
// branch of anyOf, ...). Every such node shares the same shape.
func loadSchemaValue(n *Node) (*Schema, error) {
	switch n.Kind {
	case KindNull:
		return &Schema{Kind: KindEmpty}, nil
	case KindBool:
		return &Schema{Kind: KindBoolLiteral, Bool: n.Bool}, nil
	case KindString:
		switch n.String {
		case "true":
			return &Schema{Kind: KindBoolLiteral, Bool: true}, nil
		case "false":
			return &Schema{Kind: KindBoolLiteral, Bool: false}, nil
		default:
			return nil, loaderErrorAt(n, ErrUnsupportedType, "schema must be null, a boolean, or a mapping")
		}
	case KindHash:
		return buildSchemaFromEntries(n.Hash, n)
	default:
		return nil, loaderErrorAt(n, ErrUnsupportedType, "schema must be null, a boolean, or a mapping")
	}
}

func loaderErrorAt(n *Node, kind LoaderErrorKind, message string) *LoaderError {
	line, col := n.position()
	return &LoaderError{Kind: kind, Message: message, Line: line, Col: col}
}

// buildSchemaFromEntries strips metadata keys ($id/$schema/title/description
// and any other "$"-prefixed key; $defs is handled only at the true root and
// is otherwise silently ignored) and then selects a sub-schema kind from the
// remaining keywords in a fixed priority order: type, enum, const, anyOf,
// oneOf, not, else Empty.
func buildSchemaFromEntries(entries []Entry, node *Node) (*Schema, error) {
	metadata := map[string]string{}
	keywords := map[string]*Node{}
	for _, e := range entries {
		if strings.HasPrefix(e.Key, "$") || e.Key == "title" || e.Key == "description" {
			if e.Key != "$defs" {
				metadata[e.Key] = scalarKeyString(e.Value)
			}
			continue
		}
		keywords[e.Key] = e.Value
	}

	var (
		schema *Schema
		err    error
	)
	switch {
	case keywords["type"] != nil:
		schema, err = buildTypedSchema(keywords)
	case keywords["enum"] != nil:
		schema, err = buildEnumSchema(keywords["enum"])
	case keywords["const"] != nil:
		schema, err = buildConstSchema(keywords["const"])
	case keywords["anyOf"] != nil:
		schema, err = buildAnyOfSchema(keywords["anyOf"])
	case keywords["oneOf"] != nil:
		schema, err = buildOneOfSchema(keywords["oneOf"])
	case keywords["not"] != nil:
		var inner *Schema
		inner, err = loadSchemaValue(keywords["not"])
		if err == nil {
			schema = &Schema{Kind: KindNot, Not: inner}
		}
	default:
		schema = &Schema{Kind: KindEmpty}
	}
	if err != nil {
		return nil, err
	}
	if len(metadata) > 0 {
		schema.Metadata = metadata
	}
	return schema, nil
}

func buildTypedSchema(keywords map[string]*Node) (*Schema, error) {
	typeNode := keywords["type"]
	var typeStr string
	switch typeNode.Kind {
	case KindNull:
		typeStr = "null"
	case KindString:
		typeStr = typeNode.String
	default:
		return nil, loaderErrorAt(typeNode, ErrUnsupportedType, "type must be a string or null")
	}

	switch typeStr {
	case "array":
		return buildArraySchema(keywords)
	case "object":
		return buildObjectSchema(keywords)
	case "integer":
		return buildIntegerSchema(keywords)
	case "number":
		return buildNumberSchema(keywords)
	case "string":
		return buildStringSchema(keywords)
	case "boolean":
		return &Schema{Kind: KindBooleanSchema}, nil
	case "null":
		return &Schema{Kind: KindTypeNull}, nil
	default:
		return nil, loaderErrorAt(typeNode, ErrUnsupportedType, fmt.Sprintf("unsupported type: %s", typeStr))
	}
}

func loadBoolOrSchema(n *Node) (*BoolOrSchema, error) {
	if n == nil {
		return nil, nil
	}
	if n.Kind == KindBool {
		return &BoolOrSchema{IsBoolean: true, Boolean: n.Bool}, nil
	}
	schema, err := loadSchemaValue(n)
	if err != nil {
		return nil, err
	}
	return &BoolOrSchema{Schema: schema}, nil
}

func buildArraySchema(keywords map[string]*Node) (*Schema, error) {
	arr := &ArraySchema{}

	if items, err := loadBoolOrSchema(keywords["items"]); err != nil {
		return nil, err
	} else {
		arr.Items = items
	}

	if prefix := keywords["prefixItems"]; prefix != nil {
		if prefix.Kind != KindArray {
			return nil, loaderErrorAt(prefix, ErrUnsupportedType, "prefixItems must be a sequence")
		}
		arr.PrefixItems = make([]*Schema, 0, len(prefix.Array))
		for _, item := range prefix.Array {
			s, err := loadSchemaValue(item)
			if err != nil {
				return nil, err
			}
			arr.PrefixItems = append(arr.PrefixItems, s)
		}
	}

	if contains := keywords["contains"]; contains != nil {
		s, err := loadSchemaValue(contains)
		if err != nil {
			return nil, err
		}
		arr.Contains = s
	}

	return &Schema{Kind: KindArraySchema, Array: arr}, nil
}

func buildObjectSchema(keywords map[string]*Node) (*Schema, error) {
	obj := &ObjectSchema{Required: map[string]struct{}{}}

	if propsNode := keywords["properties"]; propsNode != nil {
		if propsNode.Kind != KindHash {
			return nil, loaderErrorAt(propsNode, ErrUnsupportedType, "properties must be a mapping")
		}
		obj.Properties = make(map[string]*Schema, len(propsNode.Hash))
		obj.PropertyOrder = make([]string, 0, len(propsNode.Hash))
		for _, e := range propsNode.Hash {
			s, err := loadSchemaValue(e.Value)
			if err != nil {
				return nil, err
			}
			obj.Properties[e.Key] = s
			obj.PropertyOrder = append(obj.PropertyOrder, e.Key)
		}
	}

	if reqNode := keywords["required"]; reqNode != nil {
		if reqNode.Kind != KindArray {
			return nil, loaderErrorAt(reqNode, ErrUnsupportedType, "required must be a sequence of strings")
		}
		for _, item := range reqNode.Array {
			if item.Kind != KindString {
				return nil, loaderErrorAt(item, ErrUnsupportedType, "required entries must be strings")
			}
			if _, dup := obj.Required[item.String]; !dup {
				obj.RequiredOrder = append(obj.RequiredOrder, item.String)
			}
			obj.Required[item.String] = struct{}{}
		}
	}

	if ap, err := loadBoolOrSchema(keywords["additionalProperties"]); err != nil {
		return nil, err
	} else {
		obj.AdditionalProperties = ap
	}

	if ppNode := keywords["patternProperties"]; ppNode != nil {
		if ppNode.Kind != KindHash {
			return nil, loaderErrorAt(ppNode, ErrUnsupportedType, "patternProperties must be a mapping")
		}
		obj.PatternProperties = make([]PatternSchema, 0, len(ppNode.Hash))
		for _, e := range ppNode.Hash {
			re, err := regexp.Compile(e.Key)
			if err != nil {
				return nil, loaderErrorAt(ppNode, ErrRegexParsingError, fmt.Sprintf("invalid patternProperties pattern %q: %v", e.Key, err))
			}
			s, err := loadSchemaValue(e.Value)
			if err != nil {
				return nil, err
			}
			obj.PatternProperties = append(obj.PatternProperties, PatternSchema{Pattern: re, Source: e.Key, Schema: s})
		}
	}

	if pnNode := keywords["propertyNames"]; pnNode != nil {
		if pnNode.Kind != KindHash {
			return nil, loaderErrorAt(pnNode, ErrUnsupportedType, "propertyNames must be a mapping with a pattern")
		}
		patNode, ok := pnNode.Get("pattern")
		if !ok || patNode.Kind != KindString {
			return nil, loaderErrorAt(pnNode, ErrUnsupportedType, "propertyNames must carry a string pattern")
		}
		re, err := regexp.Compile(patNode.String)
		if err != nil {
			return nil, loaderErrorAt(patNode, ErrRegexParsingError, fmt.Sprintf("invalid propertyNames pattern %q: %v", patNode.String, err))
		}
		obj.PropertyNames = re
	}

	if v, err := parseOptionalNonNegInt(keywords["minProperties"]); err != nil {
		return nil, err
	} else {
		obj.MinProperties = v
	}
	if v, err := parseOptionalNonNegInt(keywords["maxProperties"]); err != nil {
		return nil, err
	} else {
		obj.MaxProperties = v
	}

	return &Schema{Kind: KindObjectSchema, Object: obj}, nil
}

func buildIntegerSchema(keywords map[string]*Node) (*Schema, error) {
	s, err := buildNumericBounds(keywords)
	if err != nil {
		return nil, err
	}
	return &Schema{Kind: KindIntegerSchema, Integer: (*IntegerSchema)(s)}, nil
}

func buildNumberSchema(keywords map[string]*Node) (*Schema, error) {
	s, err := buildNumericBounds(keywords)
	if err != nil {
		return nil, err
	}
	return &Schema{Kind: KindNumberSchema, Number: (*NumberSchema)(s)}, nil
}

// numericBounds is structurally identical to IntegerSchema/NumberSchema;
// buildNumericBounds fills one and the caller casts it into whichever
// variant it is building.
type numericBounds struct {
	Minimum          *Number
	Maximum          *Number
	ExclusiveMinimum *Number
	ExclusiveMaximum *Number
	MultipleOf       *Number
}

func buildNumericBounds(keywords map[string]*Node) (*numericBounds, error) {
	b := &numericBounds{}
	var err error
	if b.Minimum, err = parseOptionalNumber(keywords["minimum"]); err != nil {
		return nil, err
	}
	if b.Maximum, err = parseOptionalNumber(keywords["maximum"]); err != nil {
		return nil, err
	}
	if b.ExclusiveMinimum, err = parseOptionalNumber(keywords["exclusiveMinimum"]); err != nil {
		return nil, err
	}
	if b.ExclusiveMaximum, err = parseOptionalNumber(keywords["exclusiveMaximum"]); err != nil {
		return nil, err
	}
	if b.MultipleOf, err = parseOptionalNumber(keywords["multipleOf"]); err != nil {
		return nil, err
	}
	return b, nil
}

func parseOptionalNumber(n *Node) (*Number, error) {
	if n == nil {
		return nil, nil
	}
	switch n.Kind {
	case KindInt:
		v := IntNumber(n.Int)
		return &v, nil
	case KindReal:
		v := FloatNumber(n.Float())
		return &v, nil
	default:
		return nil, loaderErrorAt(n, ErrGenericError, "expected a number")
	}
}

func parseOptionalNonNegInt(n *Node) (*int, error) {
	if n == nil {
		return nil, nil
	}
	if n.Kind != KindInt || n.Int < 0 {
		return nil, loaderErrorAt(n, ErrUnsupportedType, "expected a non-negative integer")
	}
	v := int(n.Int)
	return &v, nil
}

func buildStringSchema(keywords map[string]*Node) (*Schema, error) {
	s := &StringSchema{}
	var err error
	if s.MinLength, err = parseOptionalNonNegInt(keywords["minLength"]); err != nil {
		return nil, err
	}
	if s.MaxLength, err = parseOptionalNonNegInt(keywords["maxLength"]); err != nil {
		return nil, err
	}
	if patNode := keywords["pattern"]; patNode != nil {
		if patNode.Kind != KindString {
			return nil, loaderErrorAt(patNode, ErrUnsupportedType, "pattern must be a string")
		}
		re, rerr := regexp.Compile(patNode.String)
		if rerr != nil {
			return nil, loaderErrorAt(patNode, ErrRegexParsingError, fmt.Sprintf("invalid pattern %q: %v", patNode.String, rerr))
		}
		s.Pattern = re
	}
	return &Schema{Kind: KindStringSchema, String: s}, nil
}

func buildEnumSchema(n *Node) (*Schema, error) {
	if n.Kind != KindArray {
		return nil, loaderErrorAt(n, ErrUnsupportedType, "enum must be a sequence")
	}
	values := make([]ConstValue, 0, len(n.Array))
	for _, item := range n.Array {
		cv, ok := ConstValueFromNode(item)
		if !ok {
			return nil, loaderErrorAt(item, ErrUnsupportedType, "enum values must be scalars")
		}
		values = append(values, cv)
	}
	return &Schema{Kind: KindEnum, Enum: values}, nil
}

func buildConstSchema(n *Node) (*Schema, error) {
	cv, ok := ConstValueFromNode(n)
	if !ok {
		return nil, loaderErrorAt(n, ErrUnsupportedType, "const value must be a scalar")
	}
	return &Schema{Kind: KindConst, Const: cv}, nil
}

func buildAnyOfSchema(n *Node) (*Schema, error) {
	branches, err := loadSchemaList(n, "anyOf")
	if err != nil {
		return nil, err
	}
	return &Schema{Kind: KindAnyOf, AnyOf: branches}, nil
}

func buildOneOfSchema(n *Node) (*Schema, error) {
	branches, err := loadSchemaList(n, "oneOf")
	if err != nil {
		return nil, err
	}
	return &Schema{Kind: KindOneOf, OneOf: branches}, nil
}

func loadSchemaList(n *Node, keyword string) ([]*Schema, error) {
	if n.Kind != KindArray {
		return nil, loaderErrorAt(n, ErrUnsupportedType, fmt.Sprintf("%s must be a sequence", keyword))
	}
	out := make([]*Schema, 0, len(n.Array))
	for _, item := range n.Array {
		s, err := loadSchemaValue(item)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, nil
}
