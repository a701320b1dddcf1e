package render

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/google/shlex"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/dsalfran/ml-workspace/internal/toolenv"
)

func testConfig(token string) toolenv.Config {
	return toolenv.Config{
		ResourcesPath:  "/resources",
		WorkspaceHome:  "/work space",
		Home:           "/root",
		DesktopPath:    "/root/Desktop",
		TokenParameter: token,
	}
}

func TestParseFormat(t *testing.T) {
	t.Parallel()

	for _, s := range []string{"text", "env", "json", "yaml", "JSON", " yaml "} {
		f, err := ParseFormat(s)
		require.NoError(t, err, s)
		assert.Equal(t, Format(strings.ToLower(strings.TrimSpace(s))), f)
	}

	_, err := ParseFormat("toml")
	require.Error(t, err)
	assert.Equal(t, ErrUnknownFormat, errors.Cause(err))
	assert.Contains(t, err.Error(), `"toml"`)
}

func TestFormat_MachineReadable(t *testing.T) {
	t.Parallel()

	assert.False(t, FormatText.MachineReadable())
	assert.True(t, FormatEnv.MachineReadable())
	assert.True(t, FormatJSON.MachineReadable())
	assert.True(t, FormatYAML.MachineReadable())
}

func TestWrite_Text(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, testConfig("?token=abc"), FormatText))

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 5)
	assert.Equal(t, "RESOURCES_PATH   /resources", lines[0])
	assert.Equal(t, "TOKEN_PARAMETER  ?token=abc", lines[4])
}

func TestWrite_EnvRoundTrip(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		token string
	}{
		{name: "no token", token: ""},
		{name: "plain token", token: "?token=abc123"},
		{name: "token with quotes", token: `?token=it's"odd"`},
		{name: "token with shell metacharacters", token: "?token=$(rm -rf /);`x`"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := testConfig(tt.token)
			var buf bytes.Buffer
			require.NoError(t, Write(&buf, cfg, FormatEnv))

			got := map[string]string{}
			for _, line := range strings.Split(strings.TrimRight(buf.String(), "\n"), "\n") {
				words, err := shlex.Split(line)
				require.NoError(t, err, line)
				require.Len(t, words, 2, line)
				assert.Equal(t, "export", words[0])
				name, value, ok := strings.Cut(words[1], "=")
				require.True(t, ok, line)
				got[name] = value
			}

			assert.Equal(t, toMap(cfg.Vars()), got)
		})
	}
}

func TestWrite_JSON(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, testConfig("?token=a&b"), FormatJSON))

	var got map[string]string
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, "?token=a&b", got["TOKEN_PARAMETER"])
	assert.Equal(t, "/work space", got["WORKSPACE_HOME"])
	assert.Len(t, got, 5)
}

func TestWrite_YAML(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, testConfig(""), FormatYAML))

	var got map[string]string
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, toMap(testConfig("").Vars()), got)
	assert.True(t, strings.HasPrefix(buf.String(), "RESOURCES_PATH: "), buf.String())
}

func TestWrite_UnknownFormat(t *testing.T) {
	t.Parallel()

	err := Write(&bytes.Buffer{}, testConfig(""), Format("xml"))
	require.Error(t, err)
	assert.Equal(t, ErrUnknownFormat, errors.Cause(err))
}
