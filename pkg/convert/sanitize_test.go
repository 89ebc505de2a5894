// pkg/convert/sanitize_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: None
// PURPOSE: Test name sanitization rules

package convert

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeName(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain name unchanged", "element", "element"},
		{"empty", "", ""},
		{"all three characters", "a-b:c.d", "a_dash_b_colon_c_dot_d"},
		{"namespace prefix", "xml:lang", "xml_colon_lang"},
		{"repeated characters", "a--b..c", "a_dash__dash_b_dot__dot_c"},
		{"leading and trailing", "-x.", "_dash_x_dot_"},
		{"underscores untouched", "a_dash_b", "a_dash_b"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SanitizeName(tt.in))
		})
	}
}
