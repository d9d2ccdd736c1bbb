package letter

// EditMode reports whether clicking letter text opens the edit dialog.
func (s *Service) EditMode() bool {
	return s.editMode
}

// SetEditMode toggles the session-wide edit gate. It has exactly two states
// and no other transitions.
func (s *Service) SetEditMode(on bool) {
	s.editMode = on
}

// EditSession is one open inline-edit dialog: pending text plus the setter it
// commits through. Confirm writes and closes; Cancel discards and closes.
type EditSession struct {
	Label string
	Text  string

	commit func(string)
	done   bool
}

// OpenFieldEdit opens an edit dialog for a letter field. Returns nil when
// edit mode is off, matching the click being inert.
func (s *Service) OpenFieldEdit(label, current string, commit func(string)) *EditSession {
	if !s.editMode {
		return nil
	}
	return &EditSession{Label: label, Text: current, commit: commit}
}

// SetText updates the pending text.
func (e *EditSession) SetText(text string) {
	if e.done {
		return
	}
	e.Text = text
}

// Confirm writes the pending text through the bound setter and closes the
// dialog.
func (e *EditSession) Confirm() {
	if e.done {
		return
	}
	e.done = true
	if e.commit != nil {
		e.commit(e.Text)
	}
}

// Cancel discards the pending text and closes the dialog.
func (e *EditSession) Cancel() {
	e.done = true
}

// Open reports whether the dialog is still accepting input.
func (e *EditSession) Open() bool {
	return !e.done
}
