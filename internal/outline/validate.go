package outline

import "strings"

// ValidateEntry checks an outline entry for serializability: a known
// level, non-blank text and a 1-based page. Returns true if valid.
func ValidateEntry(e *Entry) bool {
	if e == nil {
		return false
	}
	if strings.TrimSpace(e.Text) == "" {
		return false
	}
	switch e.Level {
	case H1, H2, H3:
	default:
		return false
	}
	if e.Page < 1 {
		return false
	}
	return true
}

// Sanitize drops invalid entries in place and normalizes a nil entry
// slice to an empty one, so an empty outline serializes as [] rather
// than null. Returns the number of entries dropped.
func Sanitize(o *Outline) int {
	if o.Outline == nil {
		o.Outline = []Entry{}
		return 0
	}
	kept := o.Outline[:0]
	dropped := 0
	for i := range o.Outline {
		if ValidateEntry(&o.Outline[i]) {
			kept = append(kept, o.Outline[i])
		} else {
			dropped++
		}
	}
	o.Outline = kept
	return dropped
}
