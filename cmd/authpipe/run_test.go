package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
)

func TestBuildBody(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		data    string
		sets    []string
		want    string
		wantNil bool
		wantErr bool
	}{
		{
			name:    "no input yields nil body",
			wantNil: true,
		},
		{
			name: "raw data passthrough",
			data: `{"email":"a@b.c"}`,
			want: `{"email":"a@b.c"}`,
		},
		{
			name: "sets alone start from empty object",
			sets: []string{"email=a@b.c", "password=secret"},
			want: `{"email":"a@b.c","password":"secret"}`,
		},
		{
			name: "sets layer over data",
			data: `{"email":"a@b.c"}`,
			sets: []string{"password=secret"},
			want: `{"email":"a@b.c","password":"secret"}`,
		},
		{
			name: "value may contain equals sign",
			sets: []string{"password=p=q"},
			want: `{"password":"p=q"}`,
		},
		{
			name:    "invalid data rejected",
			data:    `{not json`,
			wantErr: true,
		},
		{
			name:    "set without equals rejected",
			sets:    []string{"email"},
			wantErr: true,
		},
		{
			name:    "set with empty key rejected",
			sets:    []string{"=value"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := buildBody(tt.data, tt.sets)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)

			if tt.wantNil {
				assert.Nil(t, got)
				return
			}
			assert.JSONEq(t, tt.want, string(got))
		})
	}
}

func TestBuildBodyNestedKeys(t *testing.T) {
	t.Parallel()

	body, err := buildBody("", []string{"user.email=a@b.c"})
	require.NoError(t, err)
	assert.Equal(t, "a@b.c", gjson.GetBytes(body, "user.email").String())
}
