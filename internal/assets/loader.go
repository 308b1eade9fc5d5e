package assets

// StyleLoader defines the contract for loading CSS themes.
// Implementations may load from embedded assets or the filesystem.
type StyleLoader interface {
	// LoadStyle loads a CSS theme by name (without .css extension).
	// Returns ErrStyleNotFound if the theme doesn't exist.
	// Returns ErrInvalidAssetName if the name contains invalid characters.
	LoadStyle(name string) (string, error)
}
