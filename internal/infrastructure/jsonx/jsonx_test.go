package jsonx

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecode_CleanJSON(t *testing.T) {
	var out map[string]interface{}
	err := Decode([]byte(`{"ac":[{"hex":"800ABC"}]}`), &out)

	require.NoError(t, err)
	assert.Contains(t, out, "ac")
}

func TestDecode_JSONEmbeddedInHTML(t *testing.T) {
	body := []byte(`<html><body>rate limited, raw data: {"ac":[],"total":0} try later</body></html>`)

	var out map[string]interface{}
	err := Decode(body, &out)

	require.NoError(t, err)
	assert.Equal(t, float64(0), out["total"])
}

func TestDecode_NoJSONAtAll(t *testing.T) {
	var out map[string]interface{}
	err := Decode([]byte("Service Temporarily Unavailable"), &out)

	assert.ErrorIs(t, err, ErrNoJSON)
}

func TestExtract(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		want    string
		wantErr bool
	}{
		{
			name: "object with surrounding text",
			body: `prefix {"a":1} suffix`,
			want: `{"a":1}`,
		},
		{
			name: "nested object spans outermost braces",
			body: `x {"a":{"b":2}} y`,
			want: `{"a":{"b":2}}`,
		},
		{
			name:    "braces but invalid json",
			body:    `{not json}`,
			wantErr: true,
		},
		{
			name:    "only opening brace",
			body:    `{"a":1`,
			wantErr: true,
		},
		{
			name:    "empty body",
			body:    "",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Extract([]byte(tt.body))
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrNoJSON)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, string(got))
		})
	}
}
