// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package route parses URL path templates that use the `:param` placeholder
// syntax (for example "/products/:id") and resolves them against concrete
// parameter values.
//
// A placeholder may sit anywhere inside a path segment ("/products/p-:id",
// "/blog/:year-:slug"). Its name is the longest run of letters, digits and
// underscores after the colon, and must not start with a digit. Everything
// else is literal text.
package route

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"
)

const paramPrefix = ':'

var paramNamePattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*`)

type token struct {
	value   string
	isParam bool
}

// Template is a parsed route template. The zero value is not usable; obtain
// one through [Parse] or [MustParse].
type Template struct {
	raw    string
	tokens []token
	params []string
}

// Parse parses raw into a [Template].
func Parse(raw string) (Template, error) {
	if raw == "" {
		return Template{}, ErrEmptyTemplate
	}
	if !strings.HasPrefix(raw, "/") {
		return Template{}, fmt.Errorf("%w: %q", ErrNoLeadingSlash, raw)
	}

	tmpl := Template{raw: raw}
	seen := make(map[string]struct{})

	rest := raw
	for rest != "" {
		i := strings.IndexByte(rest, paramPrefix)
		if i < 0 {
			tmpl.tokens = append(tmpl.tokens, token{value: rest})
			break
		}
		if i > 0 {
			tmpl.tokens = append(tmpl.tokens, token{value: rest[:i]})
		}

		name := paramNamePattern.FindString(rest[i+1:])
		if name == "" {
			return Template{}, fmt.Errorf("%w: at offset %d in %q", ErrInvalidParamName, len(raw)-len(rest)+i, raw)
		}
		if _, dup := seen[name]; dup {
			return Template{}, fmt.Errorf("%w: %q in %q", ErrDuplicateParam, name, raw)
		}
		seen[name] = struct{}{}

		tmpl.tokens = append(tmpl.tokens, token{value: name, isParam: true})
		tmpl.params = append(tmpl.params, name)
		rest = rest[i+1+len(name):]
	}

	return tmpl, nil
}

// MustParse is like [Parse] but panics on error.
func MustParse(raw string) Template {
	tmpl, err := Parse(raw)
	if err != nil {
		panic(err)
	}
	return tmpl
}

// String returns the template text as it was parsed.
func (t Template) String() string {
	return t.raw
}

// Params returns the placeholder names in the order they appear.
func (t Template) Params() []string {
	out := make([]string, len(t.params))
	copy(out, t.params)
	return out
}

// HasParams reports whether the template contains at least one placeholder.
func (t Template) HasParams() bool {
	return len(t.params) > 0
}

// Resolve substitutes every placeholder with its path-escaped value.
// Values for names the template does not declare are ignored.
func (t Template) Resolve(values map[string]string) (string, error) {
	var b strings.Builder
	for _, tok := range t.tokens {
		if !tok.isParam {
			b.WriteString(tok.value)
			continue
		}

		v := values[tok.value]
		if v == "" {
			return "", fmt.Errorf("%w: %q", ErrMissingParam, tok.value)
		}
		b.WriteString(url.PathEscape(v))
	}

	return b.String(), nil
}
