package ops

import (
	"github.com/roach88/formatkit/strutil"
)

func stringOps() []Operation {
	return []Operation{
		textOp("string.kebabCase", "Convert to kebab-case", strutil.KebabCase),
		textOp("string.snakeCase", "Convert to snake_case", strutil.SnakeCase),
		textOp("string.camelCase", "Convert to camelCase", strutil.CamelCase),
		{
			Name:    "string.uuid",
			Summary: "Random RFC 4122 version 4 UUID",
			Params:  []Param{},
			Call: func(env Env, _ Args) (any, error) {
				return strutil.UUIDFromReader(env.Random)
			},
		},
		{
			Name:    "string.emails",
			Summary: "Extract email addresses, optionally restricted to domains",
			Params:  []Param{required("text", "text to scan"), optional("domains", "exact domains to keep")},
			Call: func(_ Env, a Args) (any, error) {
				text, err := a.String("text")
				if err != nil {
					return nil, err
				}
				domains, err := a.Strings("domains")
				if err != nil {
					return nil, err
				}
				return strutil.GetEmails(text, domains...), nil
			},
		},
	}
}

func textOp(name, summary string, fn func(string) string) Operation {
	return Operation{
		Name:    name,
		Summary: summary,
		Params:  []Param{required("text", "input text")},
		Call: func(_ Env, a Args) (any, error) {
			s, err := a.String("text")
			if err != nil {
				return nil, err
			}
			return fn(s), nil
		},
	}
}
