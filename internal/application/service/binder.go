package service

import (
	"fmt"
	"strings"

	"debate-crew/internal/domain/entity"
)

// BindError reports template placeholders with no runtime input bound. All
// unresolved names are collected before reporting, in order of first
// occurrence.
type BindError struct {
	Missing []string
}

func (e *BindError) Error() string {
	return fmt.Sprintf("unresolved placeholders: %s", strings.Join(e.Missing, ", "))
}

// Bind replaces every {name} token in template with inputs[name]. Doubled
// braces escape to literal braces. Brace pairs whose content is not a plain
// identifier (JSON snippets, prose) pass through untouched. A template with no
// placeholders comes back unchanged.
func Bind(template string, inputs entity.RuntimeInputs) (string, error) {
	var b strings.Builder
	b.Grow(len(template))

	var missing []string
	seen := make(map[string]bool)

	for i := 0; i < len(template); {
		c := template[i]
		switch {
		case c == '{' && i+1 < len(template) && template[i+1] == '{':
			b.WriteByte('{')
			i += 2
		case c == '}' && i+1 < len(template) && template[i+1] == '}':
			b.WriteByte('}')
			i += 2
		case c == '{':
			end := strings.IndexByte(template[i:], '}')
			if end < 0 {
				b.WriteByte(c)
				i++
				continue
			}
			name := template[i+1 : i+end]
			if !isPlaceholderName(name) {
				b.WriteString(template[i : i+end+1])
				i += end + 1
				continue
			}
			if val, ok := inputs[name]; ok {
				b.WriteString(val)
			} else if !seen[name] {
				seen[name] = true
				missing = append(missing, name)
			}
			i += end + 1
		default:
			b.WriteByte(c)
			i++
		}
	}

	if len(missing) > 0 {
		return "", &BindError{Missing: missing}
	}
	return b.String(), nil
}

func isPlaceholderName(name string) bool {
	if name == "" {
		return false
	}
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z':
		case r >= 'A' && r <= 'Z':
		case r >= '0' && r <= '9':
		case r == '_':
		default:
			return false
		}
	}
	return true
}
