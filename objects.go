package yamlschema

import "fmt"

// validateObject checks an object input against properties/patternProperties/
// additionalProperties/propertyNames/required/min-maxProperties. Entries are
// walked in input (document) order, so errors for declared properties appear
// in the same order the properties were written in the document, not in
// schema declaration order.
func validateObject(s *ObjectSchema, input *Node, ctx *Context) error {
	if input.Kind != KindHash {
		return ctx.AddError(input, fmt.Sprintf("Expected an object, but got: %s", describeNode(input)))
	}

	seen := make(map[string]struct{}, len(input.Hash))
	for _, entry := range input.Hash {
		seen[entry.Key] = struct{}{}

		if propSchema, ok := s.Properties[entry.Key]; ok {
			child := ctx.WithPath(entry.Key)
			if err := Validate(propSchema, entry.Value, child); err != nil {
				return err
			}
		} else if s.AdditionalProperties != nil {
			child := ctx.WithPath(entry.Key)
			if s.AdditionalProperties.IsBoolean {
				if !s.AdditionalProperties.Boolean {
					if err := child.AddError(entry.Value, "Additional property not allowed"); err != nil {
						return err
					}
				}
			} else if err := Validate(s.AdditionalProperties.Schema, entry.Value, child); err != nil {
				return err
			}
		}

		for _, pp := range s.PatternProperties {
			if !pp.Pattern.MatchString(entry.Key) {
				continue
			}
			child := ctx.WithPath(entry.Key)
			if err := Validate(pp.Schema, entry.Value, child); err != nil {
				return err
			}
		}

		if s.PropertyNames != nil && !s.PropertyNames.MatchString(entry.Key) {
			if err := ctx.AddError(entry.Value, fmt.Sprintf("Property name %q does not match pattern", entry.Key)); err != nil {
				return err
			}
		}
	}

	for _, name := range s.RequiredOrder {
		if _, ok := seen[name]; !ok {
			if err := ctx.AddError(input, fmt.Sprintf("Required property missing: %s", name)); err != nil {
				return err
			}
		}
	}

	count := len(input.Hash)
	if s.MinProperties != nil && count < *s.MinProperties {
		if err := ctx.AddError(input, fmt.Sprintf("Object has too few properties (min: %d)", *s.MinProperties)); err != nil {
			return err
		}
	}
	if s.MaxProperties != nil && count > *s.MaxProperties {
		if err := ctx.AddError(input, fmt.Sprintf("Object has too many properties (max: %d)", *s.MaxProperties)); err != nil {
			return err
		}
	}
	return nil
}
