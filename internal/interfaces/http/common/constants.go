package common

const (
	// MaxRequestBody limits JSON request bodies.
	MaxRequestBody = 1 << 20
	// MaxMenuItemImages is the number of photos a menu item may carry.
	MaxMenuItemImages = 10
)
