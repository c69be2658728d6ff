package ingest

import (
	"fmt"
	"strings"
	"sync"

	"github.com/xeipuuv/gojsonschema"
)

const vacancySchema = `{
	"type": "object",
	"properties": {
		"id": { "type": "integer" },
		"title": { "type": ["string", "null"] },
		"municipality_id": { "type": ["integer", "string"] },
		"description": { "type": ["string", "null"] },
		"function_category": { "type": ["string", "null"] },
		"education_level": { "type": ["string", "null"] }
	},
	"required": ["id", "municipality_id"]
}`

const municipalitySchema = `{
	"type": "object",
	"properties": {
		"id": { "type": ["integer", "string"] },
		"name": { "type": "string" },
		"latitude": { "type": ["number", "null"] },
		"longitude": { "type": ["number", "null"] }
	},
	"required": ["id", "name"]
}`

const boundariesSchema = `{
	"type": "object",
	"properties": {
		"type": { "const": "FeatureCollection" },
		"features": {
			"type": "array",
			"items": {
				"type": "object",
				"properties": {
					"properties": {
						"type": "object",
						"properties": {
							"statcode": { "type": ["string", "integer"] },
							"statnaam": { "type": "string" }
						},
						"required": ["statcode"]
					},
					"geometry": { "type": ["object", "null"] }
				},
				"required": ["properties"]
			}
		}
	},
	"required": ["type", "features"]
}`

var (
	compileOnce sync.Once
	compiled    map[string]*gojsonschema.Schema
	compileErr  error
)

func schemaFor(name string) (*gojsonschema.Schema, error) {
	compileOnce.Do(func() {
		compiled = make(map[string]*gojsonschema.Schema, 3)
		for n, src := range map[string]string{
			"vacancy":      vacancySchema,
			"municipality": municipalitySchema,
			"boundaries":   boundariesSchema,
		} {
			s, err := gojsonschema.NewSchema(gojsonschema.NewStringLoader(src))
			if err != nil {
				compileErr = fmt.Errorf("ingest: compile %s schema: %w", n, err)
				return
			}
			compiled[n] = s
		}
	})
	if compileErr != nil {
		return nil, compileErr
	}
	return compiled[name], nil
}

// validate checks one JSON document against a named schema
func validate(name string, doc []byte) error {
	schema, err := schemaFor(name)
	if err != nil {
		return err
	}

	res, err := schema.Validate(gojsonschema.NewBytesLoader(doc))
	if err != nil {
		return err
	}
	if res.Valid() {
		return nil
	}

	msgs := make([]string, 0, len(res.Errors()))
	for _, e := range res.Errors() {
		msgs = append(msgs, e.String())
	}
	return fmt.Errorf("schema validation failed: %s", strings.Join(msgs, "; "))
}
