package yamlschema

import (
	"fmt"
	"strings"
)

// validateConst compares the canonical form of input against the stored
// ConstValue; types must match exactly.
func validateConst(expected ConstValue, input *Node, ctx *Context) error {
	actual, ok := ConstValueFromNode(input)
	if ok && actual.Equal(expected) {
		return nil
	}
	return ctx.AddError(input, fmt.Sprintf("Value does not match const: %s", expected))
}

// validateEnum reports an error unless input's canonical value is present in
// the enum list.
func validateEnum(values []ConstValue, input *Node, ctx *Context) error {
	actual, ok := ConstValueFromNode(input)
	if ok {
		for _, v := range values {
			if actual.Equal(v) {
				return nil
			}
		}
	}
	rendered := make([]string, len(values))
	for i, v := range values {
		rendered[i] = v.String()
	}
	return ctx.AddError(input, fmt.Sprintf("Value must be one of: %s", strings.Join(rendered, ", ")))
}
