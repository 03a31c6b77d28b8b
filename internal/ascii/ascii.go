// Package ascii provides the text normalization shared by prematcher
// generation and automaton scanning.
//
// Prematchers are compared case-insensitively and only over the ASCII
// subset of the input: both needles and haystacks are lowercased and
// stripped of non-ASCII bytes before any comparison. Stripping
// concatenates the surviving bytes; a dropped byte does not act as a
// separator.
package ascii

// ToLowerASCII lowercases s and drops every non-ASCII byte.
//
// The result contains exactly the ASCII bytes of s, in order, with
// 'A'-'Z' mapped to 'a'-'z'. Multi-byte UTF-8 sequences consist solely
// of bytes >= 0x80 and are therefore removed in full.
//
// Example:
//
//	ascii.ToLowerASCII("Gemäß Richtlinie") // "gem richtlinie"
func ToLowerASCII(s string) string {
	// Fast path: already lowercase ASCII, return s unchanged.
	clean := true
	for i := 0; i < len(s); i++ {
		b := s[i]
		if b >= 0x80 || (b >= 'A' && b <= 'Z') {
			clean = false
			break
		}
	}
	if clean {
		return s
	}

	out := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		b := s[i]
		if b >= 0x80 {
			continue
		}
		if b >= 'A' && b <= 'Z' {
			b += 'a' - 'A'
		}
		out = append(out, b)
	}
	return string(out)
}

// IsLowerASCII reports whether s consists only of ASCII bytes with no
// uppercase letters. The empty string is lower ASCII.
func IsLowerASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		b := s[i]
		if b >= 0x80 || (b >= 'A' && b <= 'Z') {
			return false
		}
	}
	return true
}
