package diagfmt

// PathMode specifies how file paths are displayed.
type PathMode uint8

const (
	// PathModeAuto chooses relative or absolute path automatically.
	PathModeAuto PathMode = iota
	// PathModeAbsolute always uses absolute paths.
	PathModeAbsolute
	PathModeRelative
	PathModeBasename
)

func (m PathMode) key() string {
	switch m {
	case PathModeAbsolute:
		return "absolute"
	case PathModeRelative:
		return "relative"
	case PathModeBasename:
		return "basename"
	default:
		return "auto"
	}
}

// PrettyOpts configures pretty-printing of diagnostics.
type PrettyOpts struct {
	Color    bool
	PathMode PathMode
	BaseDir  string
	Width    int // max rendered width of context lines, 0 = unlimited
}

// JSONOpts configures JSON output of diagnostics.
type JSONOpts struct {
	PathMode PathMode
	BaseDir  string
	Indent   bool
}

// SarifRunMeta provides metadata for SARIF output.
type SarifRunMeta struct {
	ToolName       string
	ToolVersion    string
	InvocationArgs []string
}
