package tui

import "context"

// Prompter collects answers from the user. Every method returns io.EOF
// when the input is exhausted and ctx.Err() once ctx is cancelled, both of
// which end the session.
type Prompter interface {
	// Ask reads a line of text suggesting def. The user can keep def,
	// replace it or clear it to an empty string.
	Ask(ctx context.Context, label, def string) (string, error)

	// AskSecret reads a line of text without echoing it. An empty answer
	// yields def.
	AskSecret(ctx context.Context, label, def string) (string, error)

	// Confirm asks a yes/no question. An empty answer yields def.
	Confirm(ctx context.Context, question string, def bool) (bool, error)

	// Choose asks until the answer is one of choices. An empty answer
	// yields def.
	Choose(ctx context.Context, label string, choices []string, def string) (string, error)
}

// Reporter shows outcome messages to the user.
type Reporter interface {
	Info(msg string)
	Success(msg string)
	Warn(msg string)
	Error(msg string)
}

// Clipboard receives copied secrets.
type Clipboard interface {
	WriteAll(text string) error
}
