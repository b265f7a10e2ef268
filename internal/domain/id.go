package domain

// IsValidID reports whether s is a well-formed entity id:
// exactly 24 lowercase hexadecimal characters. Ids in any other shape are
// rejected at the boundary before any store access.
func IsValidID(s string) bool {
	if len(s) != 24 {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		if (c < '0' || c > '9') && (c < 'a' || c > 'f') {
			return false
		}
	}
	return true
}
