package execution

import (
	"strconv"
	"strings"

	"github.com/kballard/go-shellquote"

	"wct/internal/config"
	"wct/internal/domain"
)

// Template is a command line with one placeholder for the fixture path
type Template struct {
	tokens []string
	index  int // token holding the placeholder
}

// ParseTemplate builds a Template from command tokens. The placeholder must
// appear exactly once, either as a whole token or inside one (--input={}).
func ParseTemplate(tokens []string) (*Template, error) {
	if len(tokens) == 0 {
		return nil, &domain.ConfigurationError{Reason: "no command supplied"}
	}

	index := -1
	count := 0
	for i, tok := range tokens {
		if n := strings.Count(tok, config.Placeholder); n > 0 {
			count += n
			index = i
		}
	}

	switch {
	case count == 0:
		return nil, &domain.ConfigurationError{Reason: "command has no " + config.Placeholder + " placeholder for the fixture path"}
	case count > 1:
		return nil, &domain.ConfigurationError{Reason: "command has " + strconv.Itoa(count) + " " + config.Placeholder + " placeholders, expected exactly one"}
	}

	t := &Template{tokens: make([]string, len(tokens)), index: index}
	copy(t.tokens, tokens)
	return t, nil
}

// Expand returns the command with path substituted for the placeholder
func (t *Template) Expand(path string) []string {
	argv := make([]string, len(t.tokens))
	copy(argv, t.tokens)
	argv[t.index] = strings.Replace(argv[t.index], config.Placeholder, path, 1)
	return argv
}

// Tokens returns a copy of the unexpanded command
func (t *Template) Tokens() []string {
	out := make([]string, len(t.tokens))
	copy(out, t.tokens)
	return out
}

// String quotes the tokens so the command can be pasted into a shell
func (t *Template) String() string {
	return shellquote.Join(t.tokens...)
}
