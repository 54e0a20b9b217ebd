// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNetAddress_Set(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{name: "localhost", input: "localhost:8080", want: "localhost:8080"},
		{name: "ipv4", input: "127.0.0.1:9000", want: "127.0.0.1:9000"},
		{name: "all interfaces", input: ":8080", want: ":8080"},
		{name: "ipv6", input: "[::1]:8080", want: "[::1]:8080"},
		{name: "hostname", input: "example.com:80", wantErr: true},
		{name: "no port", input: "localhost", wantErr: true},
		{name: "port not a number", input: "localhost:http", wantErr: true},
		{name: "port zero", input: "localhost:0", wantErr: true},
		{name: "port too big", input: "localhost:70000", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var target string
			a := newAddressValue(&target)

			err := a.Set(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.Empty(t, target)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, a.String())
			assert.Equal(t, tt.want, target)
		})
	}
}

func TestNetAddress_StringEmpty(t *testing.T) {
	assert.Equal(t, "", (&NetAddress{}).String())
	assert.Equal(t, "host:port", (&NetAddress{}).Type())
}
