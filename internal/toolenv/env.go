// Package toolenv derives the runtime paths and authentication token
// parameter used when launching the workspace tools.
package toolenv

import (
	"github.com/sethvargo/go-envconfig"
)

// Environment holds the raw variables read from the environment.
// Unset variables take the tagged default.
type Environment struct {
	ResourcesPath          string `env:"RESOURCES_PATH, default=/resources"`
	WorkspaceHome          string `env:"WORKSPACE_HOME, default=/workspace"`
	Home                   string `env:"HOME, default=/root"`
	AuthenticateViaJupyter string `env:"AUTHENTICATE_VIA_JUPYTER, default=false"`
	JPYAPIToken            string `env:"JPY_API_TOKEN"`
}

// OSLookuper reads from the process environment.
func OSLookuper() envconfig.Lookuper {
	return envconfig.OsLookuper()
}

// MapLookuper reads from m instead of the process environment.
func MapLookuper(m map[string]string) envconfig.Lookuper {
	return envconfig.MapLookuper(m)
}
