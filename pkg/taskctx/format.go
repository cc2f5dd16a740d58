// SPDX-License-Identifier: MPL-2.0

package taskctx

import (
	"fmt"
	"strings"
	"unicode"
)

// Format replaces every {NAME} placeholder of template with the value of
// NAME in ctx, rendered with fmt.Sprint. "{{" and "}}" produce literal
// braces.
//
// A placeholder absent from ctx yields a FormatError wrapping ErrMissingKey.
// Unbalanced braces and fields that are not plain identifiers yield a
// FormatError wrapping ErrMalformedTemplate.
func Format(template string, ctx *Context) (string, error) {
	if ctx == nil {
		ctx = NewContext()
	}

	var b strings.Builder
	b.Grow(len(template))
	for i := 0; i < len(template); i++ {
		switch c := template[i]; c {
		case '{':
			if i+1 < len(template) && template[i+1] == '{' {
				b.WriteByte('{')
				i++
				continue
			}
			end := strings.IndexByte(template[i+1:], '}')
			if end < 0 {
				return "", &FormatError{Template: template, Offset: i, Kind: ErrMalformedTemplate}
			}
			field := template[i+1 : i+1+end]
			if !isIdentifier(field) {
				return "", &FormatError{Template: template, Field: field, Offset: i, Kind: ErrMalformedTemplate}
			}
			value, ok := ctx.Get(field)
			if !ok {
				return "", &FormatError{Template: template, Field: field, Offset: i, Kind: ErrMissingKey}
			}
			b.WriteString(fmt.Sprint(value))
			i += end + 1
		case '}':
			if i+1 < len(template) && template[i+1] == '}' {
				b.WriteByte('}')
				i++
				continue
			}
			return "", &FormatError{Template: template, Offset: i, Kind: ErrMalformedTemplate}
		default:
			b.WriteByte(c)
		}
	}
	return b.String(), nil
}

func isIdentifier(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		if r == '_' || unicode.IsLetter(r) || (i > 0 && unicode.IsDigit(r)) {
			continue
		}
		return false
	}
	return true
}
