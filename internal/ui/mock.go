package ui

// Recorder is a test double for all four ports. It records every interaction
// and answers dialogs with canned responses.
type Recorder struct {
	Notices []string

	ConfirmAnswer bool
	ConfirmMsgs   []string

	PromptAnswer    string
	PromptCancelled bool
	PromptMsgs      []string

	ClipboardText string
	ClipboardErr  error
}

// NewRecorder returns a Recorder that approves confirmations and answers
// prompts with the given value.
func NewRecorder(promptAnswer string) *Recorder {
	return &Recorder{ConfirmAnswer: true, PromptAnswer: promptAnswer}
}

func (r *Recorder) Notify(msg string) {
	r.Notices = append(r.Notices, msg)
}

func (r *Recorder) Confirm(msg string) bool {
	r.ConfirmMsgs = append(r.ConfirmMsgs, msg)
	return r.ConfirmAnswer
}

func (r *Recorder) Prompt(msg, placeholder string) (string, bool) {
	r.PromptMsgs = append(r.PromptMsgs, msg)
	if r.PromptCancelled {
		return "", false
	}
	if r.PromptAnswer == "" {
		return placeholder, true
	}
	return r.PromptAnswer, true
}

func (r *Recorder) WriteText(text string) error {
	if r.ClipboardErr != nil {
		return r.ClipboardErr
	}
	r.ClipboardText = text
	return nil
}

// Ports bundles the recorder into a Ports value.
func (r *Recorder) Ports() Ports {
	return Ports{Notifier: r, Confirmer: r, Prompter: r, Clipboard: r}
}
