package config_test

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	. "src.autocli.sh/pkg/config"
	"src.autocli.sh/pkg/must"
	"src.autocli.sh/pkg/ui"
)

func TestLoad_NoFile(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load -> error %v", err)
	}
	if diff := cmp.Diff(Default(), cfg); diff != "" {
		t.Errorf("config (-want +got):\n%s", diff)
	}
}

func TestDefault(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config is invalid: %v", err)
	}
	wantNames := []string{"hello", "display", "foo", "bar", "baz", "barbaz", "exit", "x"}
	if diff := cmp.Diff(wantNames, cfg.Catalog().MatchNames("")); diff != "" {
		t.Errorf("catalog names (-want +got):\n%s", diff)
	}
	if cfg.Prompt != "auto_cli:$" {
		t.Errorf("prompt is %q", cfg.Prompt)
	}
	if k := cfg.QuitKey(); k != ui.K('x') {
		t.Errorf("quit key is %v, want x", k)
	}
}

var loadTests = []struct {
	name    string
	content string
	want    func(*Config)
}{
	{
		name:    "empty file",
		content: "",
		want:    func(*Config) {},
	},
	{
		name:    "prompt only",
		content: "prompt: 'router#'\n",
		want:    func(cfg *Config) { cfg.Prompt = "router#" },
	},
	{
		name: "commands replace the defaults",
		content: `
display-quit: Ctrl-D
commands:
  - name: show
    help: Show things
  - name: deploy
    say: Deploying
`,
		want: func(cfg *Config) {
			cfg.DisplayQuit = "Ctrl-D"
			cfg.Commands = []Command{
				{Name: "show", Help: "Show things"},
				{Name: "deploy", Say: "Deploying"},
			}
		},
	},
	{
		name:    "display chars",
		content: "display-chars: 'abc '\ncommands: [{name: ab}, {name: c}]\n",
		want: func(cfg *Config) {
			cfg.DisplayChars = "abc "
			cfg.Commands = []Command{{Name: "ab"}, {Name: "c"}}
		},
	},
}

func TestLoad(t *testing.T) {
	for _, test := range loadTests {
		t.Run(test.name, func(t *testing.T) {
			fname := writeConfig(t, test.content)
			want := Default()
			test.want(want)

			cfg, err := Load(fname)

			if err != nil {
				t.Fatalf("Load -> error %v", err)
			}
			if diff := cmp.Diff(want, cfg); diff != "" {
				t.Errorf("config (-want +got):\n%s", diff)
			}
		})
	}
}

var loadErrorTests = []struct {
	name     string
	content  string
	wantMsgs []string
}{
	{
		name:     "unknown field",
		content:  "promtp: x\n",
		wantMsgs: []string{"field promtp not found"},
	},
	{
		name:     "bad YAML",
		content:  "commands: [\n",
		wantMsgs: []string{"failed to parse config file"},
	},
	{
		name:     "no commands",
		content:  "commands: []\n",
		wantMsgs: []string{"no command defined"},
	},
	{
		name: "bad commands",
		content: `
commands:
  - name: ""
  - name: a b
  - name: ok
  - name: ok
  - name: "a!"
`,
		wantMsgs: []string{
			"commands[0]: empty name",
			`commands[1]: name "a b" contains whitespace`,
			`commands[3]: duplicate name "ok"`,
			`commands[4]: name "a!" cannot be typed`,
		},
	},
	{
		name:     "bad display chars",
		content:  "display-chars: \"ab\\t\"\n",
		wantMsgs: []string{`display-chars: '\t' is not a printable ASCII character`},
	},
	{
		name:     "bad quit key",
		content:  "display-quit: Hyper-x\n",
		wantMsgs: []string{"display-quit: bad modifier"},
	},
}

func TestLoad_Errors(t *testing.T) {
	for _, test := range loadErrorTests {
		t.Run(test.name, func(t *testing.T) {
			fname := writeConfig(t, test.content)

			cfg, err := Load(fname)

			if err == nil {
				t.Fatalf("Load -> %v, want error", cfg)
			}
			for _, msg := range test.wantMsgs {
				if !strings.Contains(err.Error(), msg) {
					t.Errorf("error %q doesn't contain %q", err, msg)
				}
			}
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nonexistent.yaml"))
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Load -> %v, want error wrapping os.ErrNotExist", err)
	}
}

func TestQuitKey(t *testing.T) {
	cfg := Default()
	cfg.DisplayQuit = "Ctrl-d"
	if k := cfg.QuitKey(); k != ui.K('D', ui.Ctrl) {
		t.Errorf("quit key is %v, want Ctrl-D", k)
	}
}

func TestCatalogAndCommand(t *testing.T) {
	cfg := Default()
	cfg.Commands = []Command{{Name: "a", Help: "first"}, {Name: "b", Say: "B"}}

	want := []string{"a", "b"}
	if diff := cmp.Diff(want, cfg.Catalog().MatchNames("")); diff != "" {
		t.Errorf("catalog names (-want +got):\n%s", diff)
	}
	if cmd, ok := cfg.Command("b"); !ok || cmd.Say != "B" {
		t.Errorf("Command(b) -> %v, %v", cmd, ok)
	}
	if _, ok := cfg.Command("c"); ok {
		t.Errorf("Command(c) found a command")
	}
}

func writeConfig(t *testing.T, content string) string {
	fname := filepath.Join(t.TempDir(), "config.yaml")
	must.WriteFile(fname, content)
	return fname
}
