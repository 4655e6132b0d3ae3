package bank

import (
	"fmt"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

const schemaURL = "schema://first_aid_questions.json"

// questionFileSchema describes the shape of a question file. Semantic
// checks the schema cannot express (duplicate ids) run afterwards in
// validateQuestions.
const questionFileSchema = `{
	"$schema": "https://json-schema.org/draft/2020-12/schema",
	"type": "object",
	"required": ["first_aid_questions"],
	"properties": {
		"first_aid_questions": {
			"type": "array",
			"minItems": 1,
			"items": {
				"type": "object",
				"required": ["id", "question", "options", "correct_answer", "difficulty"],
				"properties": {
					"id": {"type": "integer", "minimum": 1},
					"question": {"type": "string", "minLength": 1},
					"options": {
						"type": "array",
						"items": {"type": "string", "minLength": 1},
						"minItems": 4,
						"maxItems": 4
					},
					"correct_answer": {"type": "integer", "minimum": 0, "maximum": 3},
					"explanation": {"type": "string"},
					"category": {"type": "string"},
					"difficulty": {"enum": ["easy", "medium", "hard"]}
				}
			}
		}
	}
}`

var (
	schemaOnce sync.Once
	schema     *jsonschema.Schema
	schemaErr  error
)

// fileSchema returns the compiled question file schema, compiling it on
// first use.
func fileSchema() (*jsonschema.Schema, error) {
	schemaOnce.Do(func() {
		doc, err := jsonschema.UnmarshalJSON(strings.NewReader(questionFileSchema))
		if err != nil {
			schemaErr = fmt.Errorf("parse schema: %w", err)
			return
		}

		c := jsonschema.NewCompiler()
		if err := c.AddResource(schemaURL, doc); err != nil {
			schemaErr = fmt.Errorf("add resource: %w", err)
			return
		}

		schema, schemaErr = c.Compile(schemaURL)
	})
	return schema, schemaErr
}
