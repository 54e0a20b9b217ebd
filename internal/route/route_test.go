// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package route

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name       string
		raw        string
		wantParams []string
		wantErr    error
	}{
		{name: "single param", raw: "/products/:id", wantParams: []string{"id"}},
		{name: "several params", raw: "/blog/:year/:month/:slug", wantParams: []string{"year", "month", "slug"}},
		{name: "underscore name", raw: "/c/:_cat_2", wantParams: []string{"_cat_2"}},
		{name: "no params", raw: "/about", wantParams: []string{}},
		{name: "root", raw: "/", wantParams: []string{}},
		{name: "empty", raw: "", wantErr: ErrEmptyTemplate},
		{name: "relative", raw: "products/:id", wantErr: ErrNoLeadingSlash},
		{name: "bare colon", raw: "/products/:", wantErr: ErrInvalidParamName},
		{name: "digit first", raw: "/products/:1id", wantErr: ErrInvalidParamName},
		{name: "name stops at dash", raw: "/products/:product-id", wantParams: []string{"product"}},
		{name: "literal prefix", raw: "/products/p-:id", wantParams: []string{"id"}},
		{name: "literal suffix", raw: "/products/:id.html", wantParams: []string{"id"}},
		{name: "two params in one segment", raw: "/blog/:year-:slug", wantParams: []string{"year", "slug"}},
		{name: "adjacent params", raw: "/x/:a:b", wantParams: []string{"a", "b"}},
		{name: "colon before dot", raw: "/products/p-:.html", wantErr: ErrInvalidParamName},
		{name: "duplicate in one segment", raw: "/x/:id-:id", wantErr: ErrDuplicateParam},
		{name: "duplicate", raw: "/:id/x/:id", wantErr: ErrDuplicateParam},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tmpl, err := Parse(tt.raw)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.raw, tmpl.String())
			assert.Equal(t, tt.wantParams, tmpl.Params())
			assert.Equal(t, len(tt.wantParams) > 0, tmpl.HasParams())
		})
	}
}

func TestMustParse_Panics(t *testing.T) {
	assert.Panics(t, func() { MustParse("no-slash") })
	assert.NotPanics(t, func() { MustParse("/products/:id") })
}

func TestTemplate_Resolve(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		values  map[string]string
		want    string
		wantErr error
	}{
		{
			name:   "product",
			raw:    "/products/:id",
			values: map[string]string{"id": "prod_NqKE50BR4wdgBL"},
			want:   "/products/prod_NqKE50BR4wdgBL",
		},
		{
			name:   "escapes value",
			raw:    "/products/:id",
			values: map[string]string{"id": "a b/c"},
			want:   "/products/a%20b%2Fc",
		},
		{
			name:   "extra values ignored",
			raw:    "/blog/:year/:slug",
			values: map[string]string{"year": "2024", "slug": "hello", "other": "x"},
			want:   "/blog/2024/hello",
		},
		{
			name:   "trailing slash kept",
			raw:    "/products/:id/",
			values: map[string]string{"id": "1"},
			want:   "/products/1/",
		},
		{
			name:   "literal prefix",
			raw:    "/products/p-:id",
			values: map[string]string{"id": "42"},
			want:   "/products/p-42",
		},
		{
			name:   "literal suffix",
			raw:    "/products/:id.html",
			values: map[string]string{"id": "42"},
			want:   "/products/42.html",
		},
		{
			name:   "two params in one segment",
			raw:    "/blog/:year-:slug",
			values: map[string]string{"year": "2024", "slug": "hello world"},
			want:   "/blog/2024-hello%20world",
		},
		{
			name: "root",
			raw:  "/",
			want: "/",
		},
		{
			name:    "missing second param in segment",
			raw:     "/blog/:year-:slug",
			values:  map[string]string{"year": "2024"},
			wantErr: ErrMissingParam,
		},
		{
			name: "static",
			raw:  "/about",
			want: "/about",
		},
		{
			name:    "missing value",
			raw:     "/products/:id",
			values:  map[string]string{},
			wantErr: ErrMissingParam,
		},
		{
			name:    "empty value",
			raw:     "/products/:id",
			values:  map[string]string{"id": ""},
			wantErr: ErrMissingParam,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := MustParse(tt.raw).Resolve(tt.values)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.Empty(t, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTemplate_ParamsIsCopy(t *testing.T) {
	tmpl := MustParse("/products/:id")
	params := tmpl.Params()
	params[0] = "changed"

	assert.Equal(t, []string{"id"}, tmpl.Params())
}
