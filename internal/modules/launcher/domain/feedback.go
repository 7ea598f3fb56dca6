package domain

import (
	"fmt"
	"strings"
)

type FeedbackKind string

const (
	FeedbackInfo    FeedbackKind = "info"
	FeedbackError   FeedbackKind = "error"
	FeedbackListing FeedbackKind = "listing"
	FeedbackHelp    FeedbackKind = "help"
)

// ListLimit caps how many names the list verb prints.
const ListLimit = 10

const HelpText = "Available commands:\n\n" +
	"help, ?          - Show this help\n" +
	"open <app>       - Launch an app\n" +
	"list, ls         - List all apps\n" +
	"reset, clear     - Reset launcher\n" +
	"exit, quit       - Exit launcher\n" +
	"time             - Show current time\n" +
	"battery, bat     - Show battery info"

const (
	MsgOpenUsage    = "Usage: open <app>"
	MsgLaunchFailed = "Failed to launch app"
	MsgReset        = "Launcher reset"
)

// Feedback is the result of one submitted line.
type Feedback struct {
	Verb            Verb
	Message         string
	Kind            FeedbackKind
	Dispatched      bool
	Launched        *Application
	RegistryRebuilt bool
	Dismiss         bool
}

func Info(verb Verb, msg string) Feedback {
	return Feedback{Verb: verb, Message: msg, Kind: FeedbackInfo, Dispatched: true}
}

func Failure(verb Verb, msg string) Feedback {
	return Feedback{Verb: verb, Message: msg, Kind: FeedbackError, Dispatched: true}
}

func NotFoundMessage(query string) string {
	return "App not found: " + strings.ToLower(query)
}

func LaunchedMessage(name string) string {
	return "Launched " + name
}

func UnknownCommandMessage(verb string) string {
	return fmt.Sprintf("Unknown command: %s\nType 'help' for commands", verb)
}

// FormatListing renders up to ListLimit names followed by a count of the rest.
func FormatListing(apps []Application) string {
	var b strings.Builder
	b.WriteString("Installed apps:\n\n")
	for i, app := range apps {
		if i == ListLimit {
			break
		}
		b.WriteString("• ")
		b.WriteString(app.Name)
		b.WriteString("\n")
	}
	if rest := len(apps) - ListLimit; rest > 0 {
		fmt.Fprintf(&b, "\n... and %d more", rest)
	}
	return b.String()
}
