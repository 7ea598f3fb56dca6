package domain

import (
	"strings"
	"unicode"
)

type Verb string

const (
	VerbHelp    Verb = "help"
	VerbOpen    Verb = "open"
	VerbList    Verb = "list"
	VerbReset   Verb = "reset"
	VerbExit    Verb = "exit"
	VerbTime    Verb = "time"
	VerbBattery Verb = "battery"
)

var verbAliases = map[string]Verb{
	"help":    VerbHelp,
	"?":       VerbHelp,
	"open":    VerbOpen,
	"launch":  VerbOpen,
	"list":    VerbList,
	"ls":      VerbList,
	"reset":   VerbReset,
	"clear":   VerbReset,
	"exit":    VerbExit,
	"quit":    VerbExit,
	"time":    VerbTime,
	"battery": VerbBattery,
	"bat":     VerbBattery,
}

// LookupVerb maps an already lower-cased token to its canonical verb.
func LookupVerb(token string) (Verb, bool) {
	verb, ok := verbAliases[token]
	return verb, ok
}

// Command is one parsed input line. Verb is the lower-cased first token as
// typed, before alias resolution.
type Command struct {
	Verb     string
	Argument string
}

// ParseCommand splits a line into its verb and the trimmed remainder.
// Blank lines report false.
func ParseCommand(line string) (Command, bool) {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" {
		return Command{}, false
	}
	verb, rest := trimmed, ""
	if idx := strings.IndexFunc(trimmed, unicode.IsSpace); idx >= 0 {
		verb, rest = trimmed[:idx], trimmed[idx:]
	}
	return Command{
		Verb:     strings.ToLower(verb),
		Argument: strings.TrimSpace(rest),
	}, true
}
