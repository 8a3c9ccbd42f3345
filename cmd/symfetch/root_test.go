package symfetch

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/symmetrysyndicate/symfetch/internal/version"
	"github.com/symmetrysyndicate/symfetch/pkg/config"
	"github.com/symmetrysyndicate/symfetch/pkg/testutil"
)

func execute(t *testing.T, args ...string) (stdout, stderr string, code int) {
	t.Helper()
	var out, errOut bytes.Buffer
	code = Execute(append(args, "--color", "never"), &out, &errOut)
	return out.String(), errOut.String(), code
}

func setup(t *testing.T, cfg string) string {
	t.Helper()
	configHome, _ := testutil.IsolateXDG(t)
	t.Setenv("SHELL", "/bin/zsh")
	testutil.WriteTempFile(t, configHome, "logo.txt", "ab\nabc\n")
	return testutil.WriteTempFile(t, configHome, "symfetch.toml", cfg)
}

func TestRootFetch(t *testing.T) {
	path := setup(t, "[ascii]\npath = \"logo.txt\"\n[info]\nfields = [\"shell\"]\n")

	tests := []struct {
		name string
		args []string
	}{
		{"explicit config", []string{"--config", path}},
		{"short flag", []string{"-c", path}},
		{"default location", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, errOut, code := execute(t, tt.args...)
			require.Equal(t, 0, code, errOut)
			assert.Equal(t, "ab  | Shell: zsh\nabc | \n", out)
		})
	}
}

func TestRootBackendFlag(t *testing.T) {
	path := setup(t, "[image]\npath = \"logo.txt\"\n[info]\nfields = [\"shell\"]\n")

	out, errOut, code := execute(t, "-c", path, "--backend", "ansi", "--backend", "ascii")
	require.Equal(t, 0, code, errOut)
	assert.Equal(t, "Shell: zsh\n", out, "undecodable image leaves the info column alone")

	_, errOut, code = execute(t, "-c", path, "--backend", "sixel")
	assert.Equal(t, 1, code)
	assert.Contains(t, errOut, "Error: ")
	assert.Contains(t, errOut, "sixel")
}

func TestRootErrors(t *testing.T) {
	configHome, _ := testutil.IsolateXDG(t)

	t.Run("missing config", func(t *testing.T) {
		out, errOut, code := execute(t, "-c", filepath.Join(configHome, "none.toml"))
		assert.Equal(t, 1, code)
		assert.Empty(t, out)
		assert.Contains(t, errOut, "config file not found")
	})

	t.Run("invalid config", func(t *testing.T) {
		path := testutil.WriteTempFile(t, configHome, "bad.toml", "[ascii]\npath = \"a\"\n[image]\npath = \"b\"\n")
		_, errOut, code := execute(t, "-c", path)
		assert.Equal(t, 1, code)
		assert.Contains(t, errOut, "only one must be specified")
	})

	t.Run("bad color", func(t *testing.T) {
		var out, errOut bytes.Buffer
		code := Execute([]string{"--color", "sometimes"}, &out, &errOut)
		assert.Equal(t, 1, code)
		assert.Contains(t, errOut.String(), "unknown color mode")
	})

	t.Run("unexpected argument", func(t *testing.T) {
		_, _, code := execute(t, "extra")
		assert.Equal(t, 1, code)
	})
}

func TestVersionCmd(t *testing.T) {
	testutil.IsolateXDG(t)
	out, _, code := execute(t, "version")
	assert.Equal(t, 0, code)
	assert.Equal(t, version.Detailed(), out)
}

func TestCompletionCmd(t *testing.T) {
	testutil.IsolateXDG(t)
	for _, shell := range []string{"bash", "zsh", "fish", "powershell"} {
		t.Run(shell, func(t *testing.T) {
			out, errOut, code := execute(t, "completion", shell)
			require.Equal(t, 0, code, errOut)
			assert.Contains(t, out, "symfetch")
		})
	}

	_, _, code := execute(t, "completion", "tcsh")
	assert.Equal(t, 1, code)
}

func TestConfigExampleCmd(t *testing.T) {
	testutil.IsolateXDG(t)
	out, _, code := execute(t, "config", "example")
	assert.Equal(t, 0, code)
	assert.Equal(t, config.ExampleConfig(), out)
}

func TestConfigCheckCmd(t *testing.T) {
	path := setup(t, "[ascii]\npath = \"logo.txt\"\n")

	out, errOut, code := execute(t, "config", "check", "-c", path)
	require.Equal(t, 0, code, errOut)
	assert.Contains(t, out, path)
	assert.Contains(t, out, filepath.Join(filepath.Dir(path), "logo.txt"))
	assert.Contains(t, out, "Configuration is valid")

	imagePath := testutil.WriteTempFile(t, filepath.Dir(path), "img.toml", "[image]\npath = \"gone.png\"\n[render]\nbackends = []\n")
	out, errOut, code = execute(t, "config", "check", "-c", imagePath)
	require.Equal(t, 0, code, errOut)
	assert.Contains(t, out, "does not exist")
	assert.Contains(t, out, "No backends configured")

	_, errOut, code = execute(t, "config", "check", "-c", filepath.Join(filepath.Dir(path), "absent.toml"))
	assert.Equal(t, 1, code)
	assert.Contains(t, errOut, "absent.toml")
}

func TestConfigDocCmd(t *testing.T) {
	testutil.IsolateXDG(t)
	out, _, code := execute(t, "config", "doc")
	assert.Equal(t, 0, code)
	assert.Equal(t, MsgConfigDoc, out, "no styling without colour")

	out, _, code = execute(t, "config", "doc", "--plain")
	assert.Equal(t, 0, code)
	assert.True(t, strings.HasPrefix(out, "# symfetch configuration"))
}

func TestHelpMentionsFlags(t *testing.T) {
	testutil.IsolateXDG(t)
	out, _, code := execute(t, "--help")
	assert.Equal(t, 0, code)
	for _, flag := range []string{"--config", "--backend", "--color", "--verbose"} {
		assert.Contains(t, out, flag)
	}
}
