package toolenv

import (
	"context"
	"fmt"
	"strings"

	"github.com/hashicorp/go-hclog"
	"github.com/sethvargo/go-envconfig"
)

// Config is the resolved set of values handed to the tool launch step.
type Config struct {
	ResourcesPath          string
	WorkspaceHome          string
	Home                   string
	DesktopPath            string
	AuthenticateViaJupyter string
	JPYAPIToken            string
	TokenParameter         string
	Auth                   Auth
}

// Var is a single named output value.
type Var struct {
	Name  string
	Value string
}

// Resolve reads the environment through l and derives the tool configuration.
// A nil logger discards log output.
func Resolve(ctx context.Context, l envconfig.Lookuper, logger hclog.Logger) (Config, error) {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}

	var env Environment
	if err := envconfig.ProcessWith(ctx, &envconfig.Config{
		Target:   &env,
		Lookuper: l,
	}); err != nil {
		return Config{}, fmt.Errorf("failed to read environment: %w", err)
	}

	auth := ParseAuth(env.AuthenticateViaJupyter)
	cfg := Config{
		ResourcesPath:          env.ResourcesPath,
		WorkspaceHome:          env.WorkspaceHome,
		Home:                   env.Home,
		DesktopPath:            env.Home + desktopSuffix,
		AuthenticateViaJupyter: env.AuthenticateViaJupyter,
		JPYAPIToken:            env.JPYAPIToken,
		TokenParameter:         auth.TokenParameter(env.JPYAPIToken),
		Auth:                   auth,
	}

	if cfg.Auth.Mode == AuthExternalToken && cfg.TokenParameter == "" {
		logger.Info("🔓 Jupyter authentication requested but no token is available, continuing without one",
			"flag", EnvAuthenticateViaJupyter, "unset", EnvJPYAPIToken)
	}

	r := cfg.Redacted()
	logger.Info("🧰 Resolved tool environment",
		"resources", r.ResourcesPath,
		"workspace", r.WorkspaceHome,
		"desktop", r.DesktopPath,
		"auth", r.Auth.Mode.String(),
		"token_parameter", r.TokenParameter)

	return cfg, nil
}

// Redacted returns a copy safe for logging, with all token material masked.
func (c Config) Redacted() Config {
	if c.JPYAPIToken != "" {
		c.JPYAPIToken = redacted
	}
	if c.Auth.Mode == AuthInlineToken {
		c.AuthenticateViaJupyter = redacted
		c.Auth.Token = redacted
	}
	if c.TokenParameter != "" {
		c.TokenParameter = tokenQueryPrefix + redacted
	}
	return c
}

// Vars returns the outputs in a stable order.
func (c Config) Vars() []Var {
	return []Var{
		{Name: EnvResourcesPath, Value: c.ResourcesPath},
		{Name: EnvWorkspaceHome, Value: c.WorkspaceHome},
		{Name: EnvHome, Value: c.Home},
		{Name: VarDesktopPath, Value: c.DesktopPath},
		{Name: VarTokenParameter, Value: c.TokenParameter},
	}
}

// ToolURL appends the token parameter to base. When base already carries a
// query the parameter is joined with '&'.
func (c Config) ToolURL(base string) string {
	if c.TokenParameter == "" {
		return base
	}
	param := strings.TrimPrefix(c.TokenParameter, "?")
	switch {
	case strings.HasSuffix(base, "?"), strings.HasSuffix(base, "&"):
		return base + param
	case strings.Contains(base, "?"):
		return base + "&" + param
	}
	return base + c.TokenParameter
}
