package report

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/kievzenit/blockc/internal/ast"
	"github.com/kievzenit/blockc/internal/compiler"
)

type document struct {
	Unit       string         `yaml:"unit"`
	Tokens     []tokenDoc     `yaml:"tokens"`
	Warnings   []string       `yaml:"warnings,omitempty"`
	Validation *validationDoc `yaml:"validation,omitempty"`
	Tree       *nodeDoc       `yaml:"tree,omitempty"`
	Symbols    []symbolDoc    `yaml:"symbols"`
	Errors     []string       `yaml:"errors"`
}

type tokenDoc struct {
	Kind  string `yaml:"kind"`
	Value string `yaml:"value"`
	Line  int    `yaml:"line"`
}

type validationDoc struct {
	Valid bool   `yaml:"valid"`
	Error string `yaml:"error,omitempty"`
}

type nodeDoc struct {
	Kind     string     `yaml:"kind"`
	Value    string     `yaml:"value,omitempty"`
	Children []*nodeDoc `yaml:"children,omitempty"`
}

type symbolDoc struct {
	Name  string `yaml:"name"`
	Type  string `yaml:"type"`
	Scope int    `yaml:"scope"`
	Line  int    `yaml:"line"`
}

// WriteYAML exports the whole unit as one YAML document.
func WriteYAML(w io.Writer, result *compiler.Result) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)

	if err := enc.Encode(newDocument(result)); err != nil {
		return fmt.Errorf("failed to encode report: %w", err)
	}
	return enc.Close()
}

func newDocument(result *compiler.Result) document {
	doc := document{
		Unit:     result.UnitID.String(),
		Tokens:   make([]tokenDoc, 0, len(result.Tokens)),
		Warnings: result.LexWarnings,
		Symbols:  make([]symbolDoc, 0),
		Errors:   result.Diagnostics(),
	}

	for _, token := range result.Tokens {
		doc.Tokens = append(doc.Tokens, tokenDoc{
			Kind:  token.Kind.String(),
			Value: token.Value,
			Line:  token.Line,
		})
	}

	if result.Validated {
		doc.Validation = &validationDoc{
			Valid: result.Valid,
			Error: result.ValidationError,
		}
	}

	doc.Tree = newNodeDoc(result.Program)

	if result.Symbols != nil {
		for _, entry := range result.Symbols.Entries() {
			doc.Symbols = append(doc.Symbols, symbolDoc{
				Name:  entry.Name,
				Type:  entry.Type.Type(),
				Scope: entry.Scope,
				Line:  entry.Line,
			})
		}
	}

	return doc
}

func newNodeDoc(node *ast.Node) *nodeDoc {
	if node == nil {
		return nil
	}

	doc := &nodeDoc{
		Kind:  node.Kind.String(),
		Value: node.Value,
	}
	for _, child := range node.Children {
		doc.Children = append(doc.Children, newNodeDoc(child))
	}
	return doc
}
