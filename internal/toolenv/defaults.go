package toolenv

// =================================
// Environment variable names
// =================================
const (
	EnvResourcesPath          = "RESOURCES_PATH"
	EnvWorkspaceHome          = "WORKSPACE_HOME"
	EnvHome                   = "HOME"
	EnvAuthenticateViaJupyter = "AUTHENTICATE_VIA_JUPYTER"
	EnvJPYAPIToken            = "JPY_API_TOKEN"
)

// =================================
// Derived output names
// =================================
const (
	VarDesktopPath    = "DESKTOP_PATH"
	VarTokenParameter = "TOKEN_PARAMETER"
)

// =================================
// Defaults
// =================================
const (
	DefaultResourcesPath = "/resources"
	DefaultWorkspaceHome = "/workspace"
	DefaultHome          = "/root"
	DefaultAuthenticate  = "false"

	desktopSuffix    = "/Desktop"
	tokenQueryPrefix = "?token="
	redacted         = "***"
)
