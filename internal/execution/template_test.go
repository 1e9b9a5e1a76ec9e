package execution

import (
	"strings"
	"testing"

	"github.com/kballard/go-shellquote"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wct/internal/domain"
)

func TestParseTemplate(t *testing.T) {
	tests := []struct {
		name    string
		tokens  []string
		wantErr bool
	}{
		{name: "placeholder token", tokens: []string{"WexprTool", "-c", "validate", "-i", "{}"}},
		{name: "placeholder inside token", tokens: []string{"validator", "--input={}"}},
		{name: "no command", tokens: nil, wantErr: true},
		{name: "no placeholder", tokens: []string{"WexprTool", "-c", "validate"}, wantErr: true},
		{name: "two placeholders", tokens: []string{"cp", "{}", "{}"}, wantErr: true},
		{name: "two placeholders in one token", tokens: []string{"echo", "{}{}"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tmpl, err := ParseTemplate(tt.tokens)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, domain.IsConfigurationError(err), "expected ConfigurationError, got %T", err)
				assert.Nil(t, tmpl)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.tokens, tmpl.Tokens())
		})
	}
}

func TestTemplate_Expand(t *testing.T) {
	tmpl, err := ParseTemplate([]string{"WexprTool", "-c", "validate", "-i", "{}"})
	require.NoError(t, err)

	assert.Equal(t,
		[]string{"WexprTool", "-c", "validate", "-i", "/fixtures/success/a b.wexpr"},
		tmpl.Expand("/fixtures/success/a b.wexpr"))

	// Expanding must not mutate the template
	assert.Equal(t, "{}", tmpl.Tokens()[4])

	inline, err := ParseTemplate([]string{"validator", "--input={}"})
	require.NoError(t, err)
	assert.Equal(t, []string{"validator", "--input=x.wexpr"}, inline.Expand("x.wexpr"))
}

func TestTemplate_String(t *testing.T) {
	tmpl, err := ParseTemplate([]string{"node", "Wexpr Validate.js", "--out=it's", "{}"})
	require.NoError(t, err)

	// The quoted form splits back into the original tokens
	words, err := shellquote.Split(tmpl.String())
	require.NoError(t, err)
	assert.Equal(t, tmpl.Tokens(), words)
	assert.True(t, strings.HasPrefix(tmpl.String(), "node 'Wexpr Validate.js' "), tmpl.String())
}

func TestParseTemplate_CopiesInput(t *testing.T) {
	tokens := []string{"validate", "{}"}
	tmpl, err := ParseTemplate(tokens)
	require.NoError(t, err)

	tokens[0] = "changed"
	assert.Equal(t, "validate", tmpl.Tokens()[0])
}
