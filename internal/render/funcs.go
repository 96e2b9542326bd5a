package render

import (
	"html/template"
	"strings"

	"resume-builder/internal/model"
)

func funcMap() template.FuncMap {
	return template.FuncMap{
		"bullets":     Bullets,
		"chips":       Chips,
		"contactLine": ContactLine,
		"firstName":   firstName,
		"restName":    restName,
	}
}

// Bullets splits free text into list items: one per non-blank line, with a
// single leading •, - or * marker and the whitespace after it removed.
func Bullets(text string) []string {
	var out []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		for _, marker := range []string{"•", "-", "*"} {
			if strings.HasPrefix(line, marker) {
				line = strings.TrimSpace(strings.TrimPrefix(line, marker))
				break
			}
		}
		if line == "" {
			continue
		}
		out = append(out, line)
	}
	return out
}

// Chips splits a comma separated skills string.
func Chips(skills string) []string {
	var out []string
	for _, s := range strings.Split(skills, ",") {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}

// ContactLine returns the non-empty header contact fields in display order.
func ContactLine(r model.ResumeData) []string {
	var out []string
	for _, v := range []string{r.Email, r.Phone, r.Location, r.LinkedIn} {
		if v != "" {
			out = append(out, v)
		}
	}
	return out
}

func firstName(full string) string {
	parts := strings.Fields(full)
	if len(parts) == 0 {
		return ""
	}
	return parts[0]
}

func restName(full string) string {
	parts := strings.Fields(full)
	if len(parts) < 2 {
		return ""
	}
	return strings.Join(parts[1:], " ")
}
