package domain

// ValidateOwnership is the ownership guard applied before every account and
// transaction operation. Identity comparison is id-based everywhere; callers
// must check existence first so an absent resource reports ErrRecordNotFound
// rather than ErrAccessDenied.
func ValidateOwnership(resourceOwnerID, requestingUserID string) error {
	if resourceOwnerID == "" || resourceOwnerID != requestingUserID {
		return ErrAccessDenied
	}

	return nil
}
