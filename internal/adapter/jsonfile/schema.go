package jsonfile

import (
	"bytes"
	"embed"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

//go:embed schemas/*.json
var schemaFS embed.FS

// ErrInvalidDocument is returned when a data file is not a JSON array of
// objects.
var ErrInvalidDocument = errors.New("invalid ad records document")

var (
	documentSchema = mustCompile("schemas/document.json")
	recordSchema   = mustCompile("schemas/record.json")
)

func mustCompile(path string) *jsonschema.Schema {
	raw, err := schemaFS.ReadFile(path)
	if err != nil {
		panic(err)
	}
	compiler := jsonschema.NewCompiler()
	if err = compiler.AddResource(path, bytes.NewReader(raw)); err != nil {
		panic(fmt.Sprintf("add schema %s: %v", path, err))
	}
	return compiler.MustCompile(path)
}

// RecordIssue describes one element of a document that does not match the
// record schema. Such records are still loaded; most of them are simply not
// display-eligible.
type RecordIssue struct {
	Index      int    `json:"index"`
	CreativeID string `json:"creativeId,omitempty"`
	Message    string `json:"message"`
}

// ValidateRecords checks data against the document schema and every
// element against the record schema.
func ValidateRecords(data []byte) ([]RecordIssue, error) {
	var elems []any
	if err := validateDocument(data, &elems); err != nil {
		return nil, err
	}

	var issues []RecordIssue
	for i, elem := range elems {
		err := recordSchema.Validate(elem)
		if err == nil {
			continue
		}
		issue := RecordIssue{Index: i, Message: err.Error()}
		var verr *jsonschema.ValidationError
		if errors.As(err, &verr) {
			issue.Message = leafMessage(verr)
		}
		if obj, ok := elem.(map[string]any); ok {
			if api, ok := obj["apiData"].(map[string]any); ok {
				issue.CreativeID, _ = api["creativeId"].(string)
			}
		}
		issues = append(issues, issue)
	}
	return issues, nil
}

// validateDocument decodes data into out and checks the document schema.
func validateDocument(data []byte, out *[]any) error {
	var doc any
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	if err := dec.Decode(&doc); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidDocument, err)
	}
	if err := documentSchema.Validate(doc); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidDocument, err)
	}
	if out != nil {
		*out, _ = doc.([]any)
	}
	return nil
}

func leafMessage(verr *jsonschema.ValidationError) string {
	for len(verr.Causes) > 0 {
		verr = verr.Causes[0]
	}
	if verr.InstanceLocation == "" {
		return verr.Message
	}
	return verr.InstanceLocation + ": " + verr.Message
}
