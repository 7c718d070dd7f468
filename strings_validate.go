package yamlschema

import "fmt"

// validateString enforces length and pattern constraints on a string input.
// Length is measured in bytes of the UTF-8 encoded form.
func validateString(s *StringSchema, input *Node, ctx *Context) error {
	if input.Kind != KindString {
		return ctx.AddError(input, fmt.Sprintf("Expected a string, but got: %s", describeNode(input)))
	}
	length := len(input.String)
	if s.MinLength != nil && length < *s.MinLength {
		if err := ctx.AddError(input, fmt.Sprintf("String is too short! (min length: %d)", *s.MinLength)); err != nil {
			return err
		}
	}
	if s.MaxLength != nil && length > *s.MaxLength {
		if err := ctx.AddError(input, fmt.Sprintf("String is too long! (max length: %d)", *s.MaxLength)); err != nil {
			return err
		}
	}
	if s.Pattern != nil && !s.Pattern.MatchString(input.String) {
		if err := ctx.AddError(input, fmt.Sprintf("String does not match pattern: %s", s.Pattern.String())); err != nil {
			return err
		}
	}
	return nil
}
