// Package ui defines the side-effect ports the letter session and the
// signature pipeline call through instead of touching ambient browser state
// (alerts, confirm/prompt dialogs, the system clipboard). Tests substitute
// the Recorder fake; a real frontend supplies its own implementations.
package ui

// Notifier shows a blocking user-visible notification.
type Notifier interface {
	Notify(msg string)
}

// Confirmer asks the user to approve a destructive action.
type Confirmer interface {
	Confirm(msg string) bool
}

// Prompter asks the user for a short text input. ok is false when the user
// cancels the dialog.
type Prompter interface {
	Prompt(msg, placeholder string) (value string, ok bool)
}

// Clipboard writes text to the system clipboard.
type Clipboard interface {
	WriteText(text string) error
}

// Ports bundles the four side-effect channels.
type Ports struct {
	Notifier  Notifier
	Confirmer Confirmer
	Prompter  Prompter
	Clipboard Clipboard
}

// Notify forwards to the Notifier, tolerating a nil port.
func (p Ports) Notify(msg string) {
	if p.Notifier != nil {
		p.Notifier.Notify(msg)
	}
}

// Confirm forwards to the Confirmer. Without one, destructive actions are
// refused rather than silently approved.
func (p Ports) Confirm(msg string) bool {
	if p.Confirmer == nil {
		return false
	}
	return p.Confirmer.Confirm(msg)
}

// Prompt forwards to the Prompter; without one the dialog counts as
// cancelled.
func (p Ports) Prompt(msg, placeholder string) (string, bool) {
	if p.Prompter == nil {
		return "", false
	}
	return p.Prompter.Prompt(msg, placeholder)
}

// CopyText forwards to the Clipboard.
func (p Ports) CopyText(text string) error {
	if p.Clipboard == nil {
		return nil
	}
	return p.Clipboard.WriteText(text)
}
