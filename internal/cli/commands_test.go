package cli

import (
	"bytes"
	"context"
	stderrors "errors"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"github.com/matzehuels/autgroup/pkg/cache"
	"github.com/matzehuels/autgroup/pkg/errors"
	pkgio "github.com/matzehuels/autgroup/pkg/io"
)

// runCLI executes the root command with args in an isolated config and
// cache home, returning what the command wrote as its result.
func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	return runCLIContext(t, context.Background(), args...)
}

func runCLIContext(t *testing.T, ctx context.Context, args ...string) (string, error) {
	t.Helper()
	c := New(io.Discard, LogInfo)
	var out bytes.Buffer
	c.SetOutput(&out)

	root := c.RootCommand()
	root.SetArgs(args)
	root.SetOut(io.Discard)
	root.SetErr(io.Discard)
	err := root.ExecuteContext(ctx)
	return out.String(), err
}

func isolate(t *testing.T) string {
	t.Helper()
	cacheHome := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("XDG_CACHE_HOME", cacheHome)
	return filepath.Join(cacheHome, appName)
}

func writeGraph(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "graph.json")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestComputeFamily(t *testing.T) {
	isolate(t)

	out, err := runCLI(t, "compute", "--family", "petersen", "--no-cache")
	if err != nil {
		t.Fatalf("compute: %v", err)
	}
	r, err := pkgio.ReadResultJSON(strings.NewReader(out))
	if err != nil {
		t.Fatalf("decode result: %v\n%s", err, out)
	}
	if r.Order.Int64() != 120 {
		t.Errorf("order = %s, want 120", r.Order)
	}
	if len(r.Orbits) != 1 {
		t.Errorf("orbits = %v, want one orbit", r.Orbits)
	}
	if r.Degraded {
		t.Error("result marked degraded")
	}
}

func TestComputeYAML(t *testing.T) {
	isolate(t)

	out, err := runCLI(t, "compute", "--family", "cycle:5", "--format", "yaml", "--no-cache")
	if err != nil {
		t.Fatalf("compute: %v", err)
	}
	if !strings.Contains(out, `order: "10"`) {
		t.Errorf("yaml output missing order 10:\n%s", out)
	}
}

func TestComputeCachesResults(t *testing.T) {
	dir := isolate(t)
	path := writeGraph(t, `{"n": 4, "edges": [[0,1],[1,2],[2,3],[3,0]]}`)

	first, err := runCLI(t, "compute", path)
	if err != nil {
		t.Fatalf("first compute: %v", err)
	}
	second, err := runCLI(t, "compute", path)
	if err != nil {
		t.Fatalf("second compute: %v", err)
	}
	if first != second {
		t.Errorf("cached output differs:\n%s\nvs\n%s", first, second)
	}

	fc, err := cache.NewFileCache(dir)
	if err != nil {
		t.Fatal(err)
	}
	if n, err := fc.Len(); err != nil || n != 1 {
		t.Fatalf("cache entries = %d, %v; want 1", n, err)
	}

	out, err := runCLI(t, "cache", "path")
	if err != nil {
		t.Fatalf("cache path: %v", err)
	}
	if strings.TrimSpace(out) != dir {
		t.Errorf("cache path = %q, want %q", strings.TrimSpace(out), dir)
	}

	if _, err := runCLI(t, "cache", "clear"); err != nil {
		t.Fatalf("cache clear: %v", err)
	}
	if n, err := fc.Len(); err != nil || n != 0 {
		t.Errorf("cache entries after clear = %d, %v; want 0", n, err)
	}
}

func TestComputeOutputFile(t *testing.T) {
	isolate(t)
	target := filepath.Join(t.TempDir(), "group.json")

	out, err := runCLI(t, "compute", "--family", "star:4", "--no-cache", "-o", target)
	if err != nil {
		t.Fatalf("compute: %v", err)
	}
	if out != "" {
		t.Errorf("stdout should be empty with -o, got %q", out)
	}
	f, err := os.Open(target)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	r, err := pkgio.ReadResultJSON(f)
	if err != nil {
		t.Fatal(err)
	}
	if r.Order.Int64() != 6 {
		t.Errorf("order = %s, want 6", r.Order)
	}
}

func TestCommandErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		code errors.Code
	}{
		{"bad format", []string{"compute", "--family", "petersen", "--format", "xml"}, errors.ErrCodeInvalidFormat},
		{"no input", []string{"compute"}, errors.ErrCodeInvalidInput},
		{"unknown family", []string{"compute", "--family", "moebius:8"}, errors.ErrCodeInvalidInput},
		{"negative workers", []string{"compute", "--family", "petersen", "--no-cache", "--workers", "-1"}, errors.ErrCodeInvalidInput},
		{"render bad format", []string{"render", "--family", "petersen", "--format", "png"}, errors.ErrCodeInvalidFormat},
		{"render bad layout", []string{"render", "--family", "petersen", "--layout", "spiral"}, errors.ErrCodeInvalidInput},
		{"render generator out of range", []string{"render", "--family", "petersen", "--no-cache", "--format", "dot", "--generator", "99"}, errors.ErrCodeInvalidInput},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			isolate(t)
			_, err := runCLI(t, tt.args...)
			if !errors.Is(err, tt.code) {
				t.Errorf("error = %v, want code %s", err, tt.code)
			}
		})
	}
}

func TestRenderDOT(t *testing.T) {
	isolate(t)

	out, err := runCLI(t, "render", "--family", "cycle:5", "--no-cache", "--format", "dot", "--generator", "0")
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	for _, want := range []string{"graph G {", "0 -- 1", "penwidth", "|Aut| = 10"} {
		if !strings.Contains(out, want) {
			t.Errorf("dot output missing %q:\n%s", want, out)
		}
	}
}

func TestRenderDerivesOutputPath(t *testing.T) {
	isolate(t)
	path := writeGraph(t, `{"n": 3, "edges": [[0,1],[1,2]]}`)

	out, err := runCLI(t, "render", path, "--no-cache", "--format", "dot")
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if out != "" {
		t.Errorf("stdout should be empty when writing next to the input, got %q", out)
	}
	data, err := os.ReadFile(strings.TrimSuffix(path, ".json") + ".dot")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "graph G {") {
		t.Errorf("unexpected drawing:\n%s", data)
	}
}

func TestCompletion(t *testing.T) {
	isolate(t)

	out, err := runCLI(t, "completion", "bash")
	if err != nil {
		t.Fatalf("completion: %v", err)
	}
	if !strings.Contains(out, appName) {
		t.Error("bash completion does not mention the command")
	}
}

func TestFamilyCompletions(t *testing.T) {
	tests := []struct {
		prefix string
		want   []string
	}{
		{"", []string{"petersen", "complete:", "empty:", "path:", "cycle:", "star:", "hypercube:"}},
		{"p", []string{"petersen", "path:"}},
		{"hyper", []string{"hypercube:"}},
		{"x", nil},
	}
	for _, tt := range tests {
		t.Run(tt.prefix, func(t *testing.T) {
			got, _ := familyCompletions(nil, nil, tt.prefix)
			if !slices.Equal(got, tt.want) {
				t.Errorf("familyCompletions(%q) = %v, want %v", tt.prefix, got, tt.want)
			}
		})
	}
}

func TestExplicitConfigMissing(t *testing.T) {
	isolate(t)

	_, err := runCLI(t, "--config", filepath.Join(t.TempDir(), "missing.toml"), "compute", "--family", "petersen")
	if err == nil {
		t.Fatal("expected error for missing --config file")
	}
}

func TestConfigFileApplies(t *testing.T) {
	isolate(t)
	cfg := writeConfig(t, "[cache]\nbackend = \"none\"\n")

	if _, err := runCLI(t, "--config", cfg, "compute", "--family", "complete:4"); err != nil {
		t.Fatalf("compute: %v", err)
	}
	if _, err := runCLI(t, "--config", cfg, "cache", "clear"); !errors.Is(err, errors.ErrCodeUnsupported) {
		t.Errorf("clearing a disabled cache: error = %v, want UNSUPPORTED", err)
	}
}

func TestComputeInterrupted(t *testing.T) {
	isolate(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := runCLIContext(t, ctx, "compute", "--family", "petersen", "--no-cache")
	if !stderrors.Is(err, context.Canceled) {
		t.Errorf("err = %v, want context.Canceled", err)
	}
}
