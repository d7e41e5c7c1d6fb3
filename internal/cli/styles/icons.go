package styles

// Nerd Font icons (requires a Nerd Font to display correctly)
const (
	IconGlobe     = "\uf0ac" // browser/web
	IconVersion   = "\uf02b" // tag
	IconGitBranch = "\ue725" // git branch
	IconCalendar  = "\uf073" // calendar
	IconGithub    = "\uf09b" // github
	IconHeart     = "\uf004" // heart
	IconGo        = "\ue627" // go gopher

	// Diagnostics
	IconCheck   = "\uf00c" // check
	IconX       = "\uf00d" // x
	IconWarning = "\uf071" // warning

	// Filesystem
	IconFolder   = "\uf07b" // folder
	IconConfig   = "\ue615" // config
	IconTerminal = "\uf120" // terminal

	// Sessions
	IconSession = "\uf2d2" // window
	IconTab     = "\uf0ce" // table
	IconPane    = "\uf0db" // columns
	IconSplitH  = "\uf0db" // columns
	IconSplitV  = "\uf0c9" // bars
)
