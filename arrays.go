package yamlschema

import (
	"fmt"
	"strconv"
)

// validateArray checks an array input against items/prefixItems/contains:
// contains is probed first (on a fresh sub-context, reporting only overall
// failure), then prefixItems positionally, then items for the remainder.
func validateArray(s *ArraySchema, input *Node, ctx *Context) error {
	if input.Kind != KindArray {
		return ctx.AddError(input, fmt.Sprintf("Expected an array, but got: %s", describeNode(input)))
	}

	if s.Contains != nil {
		found := false
		for _, item := range input.Array {
			probe := tryBranch(s.Contains, item, ctx)
			if !probe.HasErrors() {
				found = true
				break
			}
		}
		if !found {
			if err := ctx.AddError(input, "Contains validation failed"); err != nil {
				return err
			}
		}
	}

	prefixLen := len(s.PrefixItems)
	for i, item := range input.Array {
		child := ctx.WithPath(strconv.Itoa(i))
		if i < prefixLen {
			if err := Validate(s.PrefixItems[i], item, child); err != nil {
				return err
			}
			continue
		}
		if s.Items == nil {
			continue
		}
		if s.Items.IsBoolean {
			if !s.Items.Boolean {
				if err := child.AddError(item, "Additional item not allowed"); err != nil {
					return err
				}
			}
			continue
		}
		if err := Validate(s.Items.Schema, item, child); err != nil {
			return err
		}
	}
	return nil
}
