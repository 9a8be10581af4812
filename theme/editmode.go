package theme

// EditMode is the two-state toggle screens use to switch between reading
// and changing what they show.
type EditMode uint8

const (
	Viewing EditMode = iota
	Editing
)

func (e EditMode) String() string {
	if e == Editing {
		return "editing"
	}
	return "viewing"
}

// Toggle flips between Viewing and Editing.
func (e EditMode) Toggle() EditMode {
	if e == Editing {
		return Viewing
	}
	return Editing
}
