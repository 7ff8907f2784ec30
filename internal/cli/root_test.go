package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/matzehuels/kintree/pkg/pedigree"
)

const familyTOML = `
[[individuals]]
id = "gm"
sex = "female"

[[individuals]]
id = "gf"
sex = "male"

[[individuals]]
id = "x"
sex = "male"
mother = "gm"
father = "gf"

[[individuals]]
id = "w1"
sex = "female"

[[individuals]]
id = "w2"
sex = "female"

[[individuals]]
id = "c1"
sex = "female"
mother = "w1"
father = "x"

[[individuals]]
id = "c2"
sex = "male"
mother = "w2"
father = "x"
`

// run executes the CLI with args in an isolated XDG environment.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	home := t.TempDir()
	t.Setenv("XDG_CACHE_HOME", filepath.Join(home, "cache"))
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(home, "config"))

	var out, logs bytes.Buffer
	c := New(&logs, LogInfo)
	root := c.RootCommand()
	root.SetOut(&out)
	root.SetErr(&logs)
	root.SetArgs(args)
	err := root.ExecuteContext(context.Background())
	return out.String(), err
}

func writeFamily(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "family.toml")
	if err := os.WriteFile(path, []byte(familyTOML), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestRootCommands(t *testing.T) {
	root := New(&bytes.Buffer{}, LogInfo).RootCommand()
	want := []string{"hint", "layout", "graph", "cache", "completion"}
	for _, name := range want {
		cmd, _, err := root.Find([]string{name})
		if err != nil || cmd.Name() != name {
			t.Errorf("command %q not registered", name)
		}
	}
	if root.PersistentFlags().Lookup("config") == nil {
		t.Error("missing --config flag")
	}
}

func TestHintPrintsJSON(t *testing.T) {
	out, err := run(t, "hint", writeFamily(t))
	if err != nil {
		t.Fatalf("hint: %v", err)
	}
	h, err := pedigree.UnmarshalHints([]byte(out))
	if err != nil {
		t.Fatalf("output is not hints JSON: %v\n%s", err, out)
	}
	if len(h.Order) != 7 {
		t.Errorf("Order has %d entries, want 7", len(h.Order))
	}
}

func TestHintWritesPedigree(t *testing.T) {
	input := writeFamily(t)
	output := filepath.Join(t.TempDir(), "hinted.json")

	out, err := run(t, "hint", input, "-o", output, "--no-cache")
	if err != nil {
		t.Fatalf("hint: %v", err)
	}
	if !strings.Contains(out, output) {
		t.Errorf("output %q does not name the file", out)
	}

	p, err := pedigree.ReadFile(output)
	if err != nil {
		t.Fatal(err)
	}
	if p.Hints == nil {
		t.Fatal("written pedigree carries no hints")
	}
}

func TestLayoutJSON(t *testing.T) {
	out, err := run(t, "layout", writeFamily(t), "--json")
	if err != nil {
		t.Fatalf("layout: %v", err)
	}
	if !strings.Contains(out, `"nid"`) {
		t.Errorf("not a layout table: %s", out)
	}
}

func TestLayoutTable(t *testing.T) {
	out, err := run(t, "layout", writeFamily(t))
	if err != nil {
		t.Fatalf("layout: %v", err)
	}
	for _, want := range []string{"Individual", "w2", "3 levels"} {
		if !strings.Contains(out, want) {
			t.Errorf("table output lacks %q:\n%s", want, out)
		}
	}
}

func TestGraphDOT(t *testing.T) {
	output := filepath.Join(t.TempDir(), "family.dot")
	if _, err := run(t, "graph", writeFamily(t), "-o", output, "--hints"); err != nil {
		t.Fatalf("graph: %v", err)
	}
	data, err := os.ReadFile(output)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "rank=same") {
		t.Errorf("hinted graph lacks rank constraints:\n%s", data)
	}
}

func TestGraphRejectsFormat(t *testing.T) {
	output := filepath.Join(t.TempDir(), "family.png")
	if _, err := run(t, "graph", writeFamily(t), "-o", output); err == nil {
		t.Error("png output should be rejected")
	}
}

func TestBadConfig(t *testing.T) {
	cfg := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(cfg, []byte("engin = \"basic\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := run(t, "hint", writeFamily(t), "--config", cfg); err == nil {
		t.Error("unknown config key should fail")
	}
}

func TestCacheClear(t *testing.T) {
	home := t.TempDir()
	t.Setenv("XDG_CACHE_HOME", filepath.Join(home, "cache"))
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(home, "config"))
	input := writeFamily(t)

	exec := func(args ...string) string {
		var out bytes.Buffer
		root := New(&bytes.Buffer{}, LogInfo).RootCommand()
		root.SetOut(&out)
		root.SetErr(&bytes.Buffer{})
		root.SetArgs(args)
		if err := root.ExecuteContext(context.Background()); err != nil {
			t.Fatalf("%v: %v", args, err)
		}
		return out.String()
	}

	exec("hint", input)
	if out := exec("cache", "path"); strings.TrimSpace(out) != filepath.Join(home, "cache", appName) {
		t.Errorf("cache path = %q", out)
	}
	if out := exec("cache", "clear"); !strings.Contains(out, "Cleared 1 cached entries") {
		t.Errorf("cache clear = %q", out)
	}
}
