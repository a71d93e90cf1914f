package tui

import (
	"testing"

	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
)

func TestForcedProfile(t *testing.T) {
	tests := []struct {
		name    string
		env     map[string]string
		want    termenv.Profile
		wantSet bool
	}{
		{"nothing forced", nil, termenv.Ascii, false},
		{"clicolor force", map[string]string{"CLICOLOR_FORCE": "1"}, termenv.TrueColor, true},
		{"truecolor", map[string]string{"COLORTERM": "truecolor"}, termenv.TrueColor, true},
		{"no color wins", map[string]string{"NO_COLOR": "1", "CLICOLOR_FORCE": "1"}, termenv.Ascii, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, k := range []string{"NO_COLOR", "CLICOLOR_FORCE", "COLORTERM"} {
				t.Setenv(k, tt.env[k])
			}
			got, ok := forcedProfile()
			assert.Equal(t, tt.wantSet, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}
