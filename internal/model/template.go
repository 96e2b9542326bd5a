package model

import "strings"

// TemplateKind selects one of the fixed resume layouts.
type TemplateKind string

const (
	TemplateStandard   TemplateKind = "Standard"
	TemplateTechnology TemplateKind = "Technology"
	TemplateBusiness   TemplateKind = "Business"
	TemplateCreative   TemplateKind = "Creative"
)

// TemplateKinds lists every layout in display order.
var TemplateKinds = []TemplateKind{TemplateStandard, TemplateTechnology, TemplateBusiness, TemplateCreative}

// ParseTemplateKind matches s case-insensitively. Unknown or empty values
// resolve to TemplateStandard.
func ParseTemplateKind(s string) TemplateKind {
	for _, k := range TemplateKinds {
		if strings.EqualFold(strings.TrimSpace(s), string(k)) {
			return k
		}
	}
	return TemplateStandard
}
