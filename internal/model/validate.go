package model

import (
	"embed"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

//go:embed schema/*.schema.json
var schemaFS embed.FS

// ValidateSubmissions checks raw JSON against submissions.schema.json and
// decodes it. Used for imports and restores coming from outside the editor.
func ValidateSubmissions(raw []byte) ([]ResumeData, error) {
	if err := validate("schema/submissions.schema.json", raw); err != nil {
		return nil, err
	}
	var out []ResumeData
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, fmt.Errorf("decode submissions: %w", err)
	}
	for i := range out {
		out[i].Normalize()
	}
	return out, nil
}

// ValidateResume checks a single draft document and decodes it.
func ValidateResume(raw []byte) (ResumeData, error) {
	if err := validate("schema/resume.schema.json", raw); err != nil {
		return ResumeData{}, err
	}
	var out ResumeData
	if err := json.Unmarshal(raw, &out); err != nil {
		return ResumeData{}, fmt.Errorf("decode resume: %w", err)
	}
	out.Normalize()
	return out, nil
}

func validate(name string, raw []byte) error {
	schema, err := schemaFS.ReadFile(name)
	if err != nil {
		return err
	}
	res, err := gojsonschema.Validate(gojsonschema.NewBytesLoader(schema), gojsonschema.NewBytesLoader(raw))
	if err != nil {
		return fmt.Errorf("schema validation failed: %w", err)
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
