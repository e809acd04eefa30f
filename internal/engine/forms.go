package engine

import "regexp"

var bpmPattern = regexp.MustCompile(`\d+`)

// SetCurrentForm makes the referenced transformation the active form and
// derives the BPM gauge from the first integer in the form's range text,
// keeping the previous gauge when the text has none. No-op when the form
// does not exist. Returns whether a form was selected.
func (s *Store) SetCurrentForm(formID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	var form *Transformation
	for i := range s.state.Transformations {
		if s.state.Transformations[i].ID == formID {
			form = &s.state.Transformations[i]
			break
		}
	}
	if form == nil {
		return false
	}

	s.state.Character.ActiveFormID = form.ID
	if bpm, ok := firstInt(form.RangeText); ok {
		s.state.Character.CurrentBPM = bpm
	}
	s.persist()
	return true
}

// firstInt extracts the first run of digits from text.
func firstInt(text string) (int, bool) {
	m := bpmPattern.FindString(text)
	if m == "" {
		return 0, false
	}
	n := 0
	for _, r := range m {
		n = n*10 + int(r-'0')
	}
	return n, true
}
