package styles

// Nerd Font icons (requires a Nerd Font to display correctly)
const (
	IconCheck   = "\uf00c" // check
	IconX       = "\uf00d" // x
	IconWarning = "\uf071" // warning

	IconPane     = "\uf0db" // columns
	IconKeyboard = "\uf11c" // keyboard
	IconMaximize = "\uf065" // expand
	IconClock    = "\uf017" // clock
	IconPlay     = "\uf04b" // play (live)
	IconStop     = "\uf04d" // stop (destroyed)
	IconDatabase = "\uf1c0" // database
	IconConfig   = "\ue615" // config
)
