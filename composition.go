package yamlschema

// validateAnyOf accepts as soon as one branch validates with no errors.
func validateAnyOf(branches []*Schema, input *Node, ctx *Context) error {
	for _, branch := range branches {
		probe := tryBranch(branch, input, ctx)
		if !probe.HasErrors() {
			return nil
		}
	}
	return ctx.AddError(input, "None of the schemas in anyOf matched")
}

// validateOneOf requires exactly one branch to validate with no errors.
func validateOneOf(branches []*Schema, input *Node, ctx *Context) error {
	successes := 0
	for _, branch := range branches {
		probe := tryBranch(branch, input, ctx)
		if !probe.HasErrors() {
			successes++
			if successes > 1 && ctx.failFast {
				break
			}
		}
	}
	switch {
	case successes == 0:
		return ctx.AddError(input, "None of the schemas in oneOf matched")
	case successes == 1:
		return nil
	default:
		return ctx.AddError(input, "Value matched multiple schemas in oneOf")
	}
}

// validateNot accepts iff the inner schema rejects the input.
func validateNot(inner *Schema, input *Node, ctx *Context) error {
	probe := tryBranch(inner, input, ctx)
	if !probe.HasErrors() {
		return ctx.AddError(input, "Value matches schema in not")
	}
	return nil
}
