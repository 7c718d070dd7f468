package yamlschema

import (
	"github.com/goccy/go-yaml/parser"
)

// parseDocument parses source as YAML and returns the first document's root
// Node. present is false when source contains no document at all (an empty
// or all-comments input).
func parseDocument(source string) (node *Node, present bool, err error) {
	file, perr := parser.ParseBytes([]byte(source), parser.ParseComments)
	if perr != nil {
		return nil, false, &LoaderError{Kind: ErrYamlParsingError, Message: perr.Error()}
	}
	if len(file.Docs) == 0 || file.Docs[0] == nil || file.Docs[0].Body == nil {
		return nil, false, nil
	}
	n, ferr := FromAST(file.Docs[0].Body)
	if ferr != nil {
		return nil, false, ferr
	}
	return n, true, nil
}
