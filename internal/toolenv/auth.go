package toolenv

import "strings"

// AuthMode describes how the web tool expects to be authenticated.
type AuthMode int

const (
	// AuthDisabled means no token is appended.
	AuthDisabled AuthMode = iota
	// AuthExternalToken takes the token from JPY_API_TOKEN, as set by a JupyterHub spawner.
	AuthExternalToken
	// AuthInlineToken uses the AUTHENTICATE_VIA_JUPYTER value itself as the token.
	AuthInlineToken
)

func (m AuthMode) String() string {
	switch m {
	case AuthDisabled:
		return "disabled"
	case AuthExternalToken:
		return "external"
	case AuthInlineToken:
		return "inline"
	default:
		return "unknown"
	}
}

// Auth is the classified AUTHENTICATE_VIA_JUPYTER setting.
// Token is only set for AuthInlineToken.
type Auth struct {
	Mode  AuthMode
	Token string
}

// ParseAuth classifies a raw AUTHENTICATE_VIA_JUPYTER value.
// "true" (any case) selects the external token, "false" (any case) or an
// empty value disables authentication and anything else is an inline token
// kept in its original case.
func ParseAuth(flag string) Auth {
	switch lower := strings.ToLower(flag); {
	case lower == "true":
		return Auth{Mode: AuthExternalToken}
	case flag == "" || lower == "false":
		return Auth{Mode: AuthDisabled}
	default:
		return Auth{Mode: AuthInlineToken, Token: flag}
	}
}

// TokenParameter returns the query fragment for this mode. jpyToken is only
// consulted in external mode; an empty value there yields no parameter.
func (a Auth) TokenParameter(jpyToken string) string {
	switch a.Mode {
	case AuthExternalToken:
		if jpyToken == "" {
			return ""
		}
		return tokenQueryPrefix + jpyToken
	case AuthInlineToken:
		return tokenQueryPrefix + a.Token
	default:
		return ""
	}
}
