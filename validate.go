package yamlschema

import "fmt"

// Validate walks schema against input under ctx, appending any violations.
// It returns errFailFast when ctx.failFast is set and an error was just
// recorded, letting callers unwind the branch immediately.
func Validate(schema *Schema, input *Node, ctx *Context) error {
	switch schema.Kind {
	case KindEmpty:
		return nil
	case KindBoolLiteral:
		if schema.Bool {
			return nil
		}
		return ctx.AddError(input, "Schema is false")
	case KindTypeNull:
		if input.Kind != KindNull {
			return ctx.AddError(input, fmt.Sprintf("Expected null, but got: %s", describeNode(input)))
		}
		return nil
	case KindBooleanSchema:
		if input.Kind != KindBool {
			return ctx.AddError(input, fmt.Sprintf("Expected a boolean, but got: %s", describeNode(input)))
		}
		return nil
	case KindIntegerSchema:
		return validateInteger(schema.Integer, input, ctx)
	case KindNumberSchema:
		return validateNumber(schema.Number, input, ctx)
	case KindStringSchema:
		return validateString(schema.String, input, ctx)
	case KindArraySchema:
		return validateArray(schema.Array, input, ctx)
	case KindObjectSchema:
		return validateObject(schema.Object, input, ctx)
	case KindConst:
		return validateConst(schema.Const, input, ctx)
	case KindEnum:
		return validateEnum(schema.Enum, input, ctx)
	case KindAnyOf:
		return validateAnyOf(schema.AnyOf, input, ctx)
	case KindOneOf:
		return validateOneOf(schema.OneOf, input, ctx)
	case KindNot:
		return validateNot(schema.Not, input, ctx)
	default:
		return nil
	}
}

// tryBranch validates input against schema in a fresh fork of ctx, used by
// anyOf/oneOf/not/contains to probe an alternative without polluting the
// caller's error list unless the caller decides to merge it in.
func tryBranch(schema *Schema, input *Node, parent *Context) *Context {
	sub := parent.Fork()
	sub.failFast = true
	_ = Validate(schema, input, sub)
	return sub
}
