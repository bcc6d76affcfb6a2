package pipeline

// DragSession tracks the single card being dragged, if any.
// Starting a new drag overwrites the previous one.
type DragSession struct {
	cardID string
	active bool
}

// Begin records cardID as the active drag
func (d *DragSession) Begin(cardID string) {
	d.cardID = cardID
	d.active = true
}

// End clears the active drag regardless of outcome
func (d *DragSession) End() {
	d.cardID = ""
	d.active = false
}

// Active returns the dragged card id
func (d *DragSession) Active() (string, bool) {
	return d.cardID, d.active
}
