package schemas

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xeipuuv/gojsonschema"
)

var schemaFiles = []string{
	"search_semantic_request.schema.json",
	"search_structured_request.schema.json",
	"search_hybrid_request.schema.json",
}

func TestAllSchemaFiles_ValidJSON(t *testing.T) {
	for _, schemaFile := range schemaFiles {
		t.Run(schemaFile, func(t *testing.T) {
			data, err := os.ReadFile(filepath.Join(".", schemaFile))
			require.NoError(t, err, "should be able to read schema file")

			var v interface{}
			err = json.Unmarshal(data, &v)
			assert.NoError(t, err, "schema file should be valid JSON: %s", schemaFile)
		})
	}
}

func TestSchemaFiles_DeclareDraft07(t *testing.T) {
	for _, schemaFile := range schemaFiles {
		t.Run(schemaFile, func(t *testing.T) {
			data, err := os.ReadFile(filepath.Join(".", schemaFile))
			require.NoError(t, err)

			var schemaObj map[string]interface{}
			require.NoError(t, json.Unmarshal(data, &schemaObj))

			assert.Equal(t, "http://json-schema.org/draft-07/schema#", schemaObj["$schema"])
			assert.Equal(t, "object", schemaObj["type"])
			_, hasProps := schemaObj["properties"]
			assert.True(t, hasProps, "schema should declare properties")
		})
	}
}

func validateFile(t *testing.T, schemaFile, document string) *gojsonschema.Result {
	t.Helper()
	abs, err := filepath.Abs(schemaFile)
	require.NoError(t, err)

	result, err := gojsonschema.Validate(
		gojsonschema.NewReferenceLoader("file://"+abs),
		gojsonschema.NewStringLoader(document))
	require.NoError(t, err)
	return result
}

func TestSemanticRequestSchema(t *testing.T) {
	schema := "search_semantic_request.schema.json"

	valid := `{
		"query": "backend engineer",
		"limit": 10,
		"min_score": 0.3,
		"max_matches_per_result": 5,
		"filters": {
			"skills": ["Go"],
			"locations": [{"country": "Germany", "cities": ["Berlin"]}],
			"languages": [{"language": "English", "min_proficiency": "B2"}]
		}
	}`
	assert.True(t, validateFile(t, schema, valid).Valid())

	t.Run("query required", func(t *testing.T) {
		doc := `{"limit": 10, "min_score": 0.3, "max_matches_per_result": 5, "filters": {}}`
		assert.False(t, validateFile(t, schema, doc).Valid())
	})

	t.Run("empty skill list rejected", func(t *testing.T) {
		doc := `{"query": "x", "limit": 10, "min_score": 0.3, "max_matches_per_result": 5,
			"filters": {"skills": []}}`
		assert.False(t, validateFile(t, schema, doc).Valid())
	})

	t.Run("limit out of range", func(t *testing.T) {
		doc := `{"query": "x", "limit": 51, "min_score": 0.3, "max_matches_per_result": 5, "filters": {}}`
		assert.False(t, validateFile(t, schema, doc).Valid())
	})

	t.Run("proficiency outside ladder rejected", func(t *testing.T) {
		doc := `{"query": "x", "limit": 10, "min_score": 0.3, "max_matches_per_result": 5,
			"filters": {"languages": [{"language": "English", "min_proficiency": "native"}]}}`
		assert.False(t, validateFile(t, schema, doc).Valid())
	})
}

func TestStructuredRequestSchema(t *testing.T) {
	schema := "search_structured_request.schema.json"

	t.Run("query optional", func(t *testing.T) {
		doc := `{"filters": {"skills": ["Go"]}, "limit": 10}`
		assert.True(t, validateFile(t, schema, doc).Valid())
	})

	t.Run("filters required", func(t *testing.T) {
		doc := `{"limit": 10}`
		assert.False(t, validateFile(t, schema, doc).Valid())
	})

	t.Run("empty cities list rejected", func(t *testing.T) {
		doc := `{"filters": {"locations": [{"country": "Germany", "cities": []}]}, "limit": 10}`
		assert.False(t, validateFile(t, schema, doc).Valid())
	})

	t.Run("wildcard omits cities", func(t *testing.T) {
		doc := `{"filters": {"locations": [{"country": "Germany"}]}, "limit": 10}`
		assert.True(t, validateFile(t, schema, doc).Valid())
	})
}

func TestHybridRequestSchema(t *testing.T) {
	schema := "search_hybrid_request.schema.json"

	valid := `{
		"query": "backend engineer",
		"filters": {},
		"vector_weight": 0.7,
		"graph_weight": 0.3,
		"limit": 10,
		"max_matches_per_result": 5
	}`
	assert.True(t, validateFile(t, schema, valid).Valid())

	t.Run("weights required", func(t *testing.T) {
		doc := `{"query": "x", "filters": {}, "limit": 10, "max_matches_per_result": 5}`
		assert.False(t, validateFile(t, schema, doc).Valid())
	})

	t.Run("weight above one rejected", func(t *testing.T) {
		doc := `{"query": "x", "filters": {}, "vector_weight": 1.2, "graph_weight": 0.3,
			"limit": 10, "max_matches_per_result": 5}`
		assert.False(t, validateFile(t, schema, doc).Valid())
	})
}
