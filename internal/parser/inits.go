package parser

import (
	"regexp"
	"strings"

	"github.com/alecthomas/participle/v2/lexer"

	"github.com/kettlegym/zenithgen/internal/models"
)

var publicInitPattern = regexp.MustCompile(`public\s+init\s*\(`)

// paramLexer tokenizes a single initializer parameter such as
// `_ title: String = "OK"` or `action: @escaping () -> Void`
var paramLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "String", Pattern: `"(\\.|[^"\\])*"`},
	{Name: "Arrow", Pattern: `->`},
	{Name: "Ident", Pattern: `@?[A-Za-z_][A-Za-z0-9_]*`},
	{Name: "Number", Pattern: `[0-9]+(\.[0-9]+)?`},
	{Name: "Punct", Pattern: `[^\sA-Za-z0-9_"]`},
	{Name: "Whitespace", Pattern: `\s+`},
})

var (
	identToken      = paramLexer.Symbols()["Ident"]
	punctToken      = paramLexer.Symbols()["Punct"]
	whitespaceToken = paramLexer.Symbols()["Whitespace"]
)

// ExtractInitParams returns the parameters of the last public initializer
// declared in content
func ExtractInitParams(content string) []models.InitParam {
	matches := publicInitPattern.FindAllStringIndex(content, -1)
	if len(matches) == 0 {
		return nil
	}

	last := matches[len(matches)-1]
	body, ok := BlockBody(content, last[1]-1, '(', ')')
	if !ok {
		return nil
	}

	var params []models.InitParam
	for _, raw := range SplitParameters(body.Text(content)) {
		if param, ok := ParseParameter(raw); ok {
			params = append(params, param)
		}
	}

	return params
}

// SplitParameters splits a parameter list on top-level commas
func SplitParameters(list string) []string {
	return SplitTopLevel(list)
}

// ParseParameter parses `[@attribute] [label] name : type [= default]`. The type and
// default keep their original spelling.
func ParseParameter(raw string) (models.InitParam, bool) {
	tokens, err := lexParameter(raw)
	if err != nil || len(tokens) == 0 {
		return models.InitParam{}, false
	}

	var names []string
	colon := -1
	for i, tok := range tokens {
		if tok.Type == punctToken && tok.Value == ":" {
			colon = i
			break
		}
		if tok.Type != identToken {
			return models.InitParam{}, false
		}
		// Attributes such as @ViewBuilder are not part of the name
		if strings.HasPrefix(tok.Value, "@") {
			continue
		}
		names = append(names, tok.Value)
	}

	if colon < 0 || colon+1 >= len(tokens) || len(names) == 0 || len(names) > 2 {
		return models.InitParam{}, false
	}

	typeStart := tokens[colon+1].Pos.Offset
	typeEnd := len(raw)
	defaultExpr := ""
	for _, tok := range tokens[colon+1:] {
		if tok.Type == punctToken && tok.Value == "=" {
			typeEnd = tok.Pos.Offset
			defaultExpr = strings.TrimSpace(raw[tok.Pos.Offset+1:])
			break
		}
	}

	param := models.InitParam{
		Name:    names[len(names)-1],
		Type:    strings.TrimSpace(raw[typeStart:typeEnd]),
		Default: defaultExpr,
	}
	if len(names) == 2 {
		param.Label = names[0]
	}
	if param.Type == "" {
		return models.InitParam{}, false
	}
	param.IsAction = strings.Contains(param.Type, "->")

	return param, true
}

// lexParameter returns the significant tokens of raw
func lexParameter(raw string) ([]lexer.Token, error) {
	lex, err := paramLexer.Lex("", strings.NewReader(raw))
	if err != nil {
		return nil, err
	}

	all, err := lexer.ConsumeAll(lex)
	if err != nil {
		return nil, err
	}

	tokens := make([]lexer.Token, 0, len(all))
	for _, tok := range all {
		if tok.EOF() || tok.Type == whitespaceToken {
			continue
		}
		tokens = append(tokens, tok)
	}
	return tokens, nil
}
