package discord

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestThreadIDFromURL(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    string
		wantErr bool
	}{
		{
			name: "full thread url",
			in:   "https://discord.com/channels/111/222/333",
			want: "333",
		},
		{
			name: "channel url",
			in:   "https://discord.com/channels/111/222",
			want: "222",
		},
		{
			name: "bare id",
			in:   "123456789",
			want: "123456789",
		},
		{
			name: "surrounding whitespace",
			in:   "  987654321  ",
			want: "987654321",
		},
		{
			name:    "trailing slash",
			in:      "https://discord.com/channels/111/222/",
			wantErr: true,
		},
		{
			name:    "no id",
			in:      "https://discord.com/channels/abc",
			wantErr: true,
		},
		{
			name:    "empty",
			in:      "",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ThreadIDFromURL(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
