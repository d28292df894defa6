package dismiss

// BackdropHit reports whether the pointer coordinate lies outside the
// dialog's current rendered content box. The rect is read at click time, not
// at attach time, because layout may have shifted while the dialog was open.
//
// A zero-size or off-screen content box still participates: every coordinate
// is then outside the box, so every dialog-targeted click is a backdrop
// click. Callers must ensure the click's original target was the dialog
// itself before consulting the hit-test; clicks on descendants are not
// backdrop-eligible regardless of coordinates.
func BackdropHit(d Dialog, x, y int) bool {
	return !d.ContentRect().Contains(x, y)
}
