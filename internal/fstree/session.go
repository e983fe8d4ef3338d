package fstree

import (
	"fmt"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

// The session transcript is line-oriented, so the lexer keeps newlines
// as EOL tokens instead of eliding them. Names must start with a letter;
// `..` and `/` are path atoms of their own.
var sessionLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Prompt", Pattern: `\$`},
	{Name: "Number", Pattern: `\d+`},
	{Name: "Path", Pattern: `[a-zA-Z][a-zA-Z0-9._-]*|\.\.|/`},
	{Name: "EOL", Pattern: `\n`},
	{Name: "whitespace", Pattern: `[ \t]+`},
})

type session struct {
	Commands []*command `parser:"@@*"`
}

type command struct {
	Cd *cdCommand `parser:"Prompt 'cd' @@ EOL"`
	Ls *lsCommand `parser:"| Prompt 'ls' EOL @@"`
}

type cdCommand struct {
	Target string `parser:"@Path"`
}

// An ls command owns every listing line up to the next prompt.
type lsCommand struct {
	Entries []*listing `parser:"@@*"`
}

type listing struct {
	Dir  *dirListing  `parser:"@@"`
	File *fileListing `parser:"| @@"`
}

type dirListing struct {
	Name string `parser:"'dir' @Path EOL"`
}

type fileListing struct {
	Size int    `parser:"@Number"`
	Name string `parser:"@Path EOL"`
}

// Both command forms start with a prompt token, so branch selection
// needs to see the word after it.
var sessionParser = participle.MustBuild[session](
	participle.Lexer(sessionLexer),
	participle.UseLookahead(2),
)

func parseSession(input string) (*session, error) {
	if input != "" && !strings.HasSuffix(input, "\n") {
		input += "\n"
	}
	sess, err := sessionParser.ParseString("", input)
	if err != nil {
		return nil, fmt.Errorf("parse session: %w", err)
	}
	return sess, nil
}
