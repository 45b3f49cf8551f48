// Package obfuscate implements the fixed character-shift codec applied to
// credentials before they are persisted.
//
// This is NOT cryptographic protection: the transform is unkeyed and
// trivially invertible. It exists only for compatibility with data already
// written in this format. A real deployment should store a salted password
// hash instead; switching would orphan existing credential records.
package obfuscate

// shift is the fixed offset applied to every rune.
const shift = 7

// Shift returns s with every rune moved forward by the fixed offset.
func Shift(s string) string {
	out := make([]rune, 0, len(s))
	for _, r := range s {
		out = append(out, r+shift)
	}
	return string(out)
}

// Unshift reverses Shift.
func Unshift(s string) string {
	out := make([]rune, 0, len(s))
	for _, r := range s {
		out = append(out, r-shift)
	}
	return string(out)
}
