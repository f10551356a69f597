package models

// Prompt is the structured message a dialogue turn produces. The
// transport owns serialization; the core only decides content.
type Prompt struct {
	Text string

	// Options are single-select reply buttons; sending one of them
	// back verbatim is the expected next input.
	Options []string

	// Actions are per-item buttons whose Data is fed back as the
	// input token (e.g. "take:14").
	Actions []Action

	// Notice is prepended when the previous input was not understood.
	Notice string
}

// Action is a labelled button carrying an input token.
type Action struct {
	Label string
	Data  string
}
