package yamlschema

import "fmt"

// validateInteger accepts an input that is an integer, or a real whose
// fractional part is exactly 0, then applies the shared bound checks in the
// integer domain.
func validateInteger(s *IntegerSchema, input *Node, ctx *Context) error {
	value, ok := integralValue(input)
	if !ok {
		return ctx.AddError(input, fmt.Sprintf("Expected an integer, but got: %s", describeNode(input)))
	}
	return checkNumericBounds(value, s.Minimum, s.Maximum, s.ExclusiveMinimum, s.ExclusiveMaximum, s.MultipleOf, input, ctx)
}

// validateNumber accepts any integer or real input and applies the shared
// bound checks, comparing in the float domain whenever either side of a
// comparison is a float.
func validateNumber(s *NumberSchema, input *Node, ctx *Context) error {
	value, ok := numericValue(input)
	if !ok {
		return ctx.AddError(input, fmt.Sprintf("Expected a number, but got: %s", describeNode(input)))
	}
	return checkNumericBounds(value, s.Minimum, s.Maximum, s.ExclusiveMinimum, s.ExclusiveMaximum, s.MultipleOf, input, ctx)
}

func integralValue(input *Node) (Number, bool) {
	switch input.Kind {
	case KindInt:
		return IntNumber(input.Int), true
	case KindReal:
		f := input.Float()
		if f != float64(int64(f)) {
			return Number{}, false
		}
		return IntNumber(int64(f)), true
	default:
		return Number{}, false
	}
}

func numericValue(input *Node) (Number, bool) {
	switch input.Kind {
	case KindInt:
		return IntNumber(input.Int), true
	case KindReal:
		return FloatNumber(input.Float()), true
	default:
		return Number{}, false
	}
}

func checkNumericBounds(value Number, minimum, maximum, exclusiveMinimum, exclusiveMaximum, multipleOf *Number, input *Node, ctx *Context) error {
	if minimum != nil && value.Cmp(*minimum) < 0 {
		if err := ctx.AddError(input, fmt.Sprintf("%s is less than the minimum of %s", value, *minimum)); err != nil {
			return err
		}
	}
	if maximum != nil && value.Cmp(*maximum) > 0 {
		if err := ctx.AddError(input, fmt.Sprintf("%s is greater than the maximum of %s", value, *maximum)); err != nil {
			return err
		}
	}
	if exclusiveMinimum != nil && value.Cmp(*exclusiveMinimum) <= 0 {
		if err := ctx.AddError(input, fmt.Sprintf("%s is not greater than the exclusive minimum of %s", value, *exclusiveMinimum)); err != nil {
			return err
		}
	}
	if exclusiveMaximum != nil && value.Cmp(*exclusiveMaximum) >= 0 {
		if err := ctx.AddError(input, fmt.Sprintf("%s is not less than the exclusive maximum of %s", value, *exclusiveMaximum)); err != nil {
			return err
		}
	}
	if multipleOf != nil && !value.DivisibleBy(*multipleOf) {
		if err := ctx.AddError(input, fmt.Sprintf("%s is not a multiple of %s", value, *multipleOf)); err != nil {
			return err
		}
	}
	return nil
}
