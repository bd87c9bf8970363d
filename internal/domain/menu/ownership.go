package menu

// CheckOwnership reports ErrForbidden unless callerID owns the resource.
func CheckOwnership(resourceOwnerID, callerID string) error {
	if callerID == "" || resourceOwnerID != callerID {
		return ErrForbidden
	}
	return nil
}
