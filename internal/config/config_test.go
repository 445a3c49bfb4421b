package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
)

// isolate points the config search paths at an empty temp dir and resets viper
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("HOME", dir)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(dir, ".config"))
	viper.Reset()
	t.Cleanup(viper.Reset)
	return dir
}

func TestIsValidOutput(t *testing.T) {
	for _, f := range OutputFormats() {
		if !IsValidOutput(f) {
			t.Errorf("expected format %q to be valid", f)
		}
	}
	for _, f := range []string{"", "xml", "JSON"} {
		if IsValidOutput(f) {
			t.Errorf("unexpectedly accepted format %q", f)
		}
	}
}

func TestEnvVarFor(t *testing.T) {
	cases := map[string]string{
		"output":         "ALPSINFO_OUTPUT",
		"env.apid":       "ALPSINFO_ENV_APID",
		"env.node_count": "ALPSINFO_ENV_NODE_COUNT",
		"env.node_file":  "ALPSINFO_ENV_NODE_FILE",
	}
	for key, want := range cases {
		if got := EnvVarFor(key); got != want {
			t.Errorf("EnvVarFor(%q) = %q; want %q", key, got, want)
		}
	}
}

func TestLoadDefaults(t *testing.T) {
	LoadDefaults()
	if Global.Output != OutputText {
		t.Errorf("default output = %q", Global.Output)
	}
	if Global.ApidVar != "ALPS_APP_ID" || Global.NodeFileVar != "PBS_NODEFILE" {
		t.Errorf("unexpected default variables: %+v", Global)
	}
	if Global.Version != VERSION {
		t.Errorf("version = %q; want %q", Global.Version, VERSION)
	}
}

func TestInitViperDefaults(t *testing.T) {
	isolate(t)

	if err := InitViper(); err != nil {
		t.Fatalf("InitViper failed without a config file: %v", err)
	}
	LoadDefaults()
	LoadFromViper()

	if Global.Output != OutputText || Global.WidthVar != "PBS_NP" || Global.NodeCountVar != "PBS_NUM_NODES" {
		t.Errorf("unexpected config: %+v", Global)
	}
}

func TestInitViperConfigFile(t *testing.T) {
	dir := isolate(t)
	configDir := filepath.Join(dir, ".alpsinfo")
	if err := os.MkdirAll(configDir, 0755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	content := "output: yaml\nenv:\n  apid: MY_APID\n  node_file: MY_NODEFILE\n"
	if err := os.WriteFile(filepath.Join(configDir, "config.yaml"), []byte(content), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	if err := InitViper(); err != nil {
		t.Fatalf("InitViper: %v", err)
	}
	LoadDefaults()
	LoadFromViper()

	if Global.Output != OutputYAML {
		t.Errorf("output = %q; want yaml", Global.Output)
	}
	if Global.ApidVar != "MY_APID" || Global.NodeFileVar != "MY_NODEFILE" {
		t.Errorf("variables not read from config file: %+v", Global)
	}
	if Global.WidthVar != "PBS_NP" {
		t.Errorf("unset key lost its default: %q", Global.WidthVar)
	}

	var inUse int
	for _, sp := range GetConfigSearchPaths() {
		if sp.InUse {
			inUse++
			if sp.Type != "home" || !sp.Exists {
				t.Errorf("unexpected active search path: %+v", sp)
			}
		}
	}
	if inUse != 1 {
		t.Errorf("expected exactly one config file in use, got %d", inUse)
	}
}

func TestInitViperEnvOverride(t *testing.T) {
	isolate(t)
	t.Setenv("ALPSINFO_OUTPUT", "json")
	t.Setenv("ALPSINFO_ENV_NODE_COUNT", "NODES")

	if err := InitViper(); err != nil {
		t.Fatalf("InitViper: %v", err)
	}
	LoadDefaults()
	LoadFromViper()

	if Global.Output != OutputJSON {
		t.Errorf("output = %q; want json", Global.Output)
	}
	if Global.NodeCountVar != "NODES" {
		t.Errorf("node count variable = %q; want NODES", Global.NodeCountVar)
	}
}

func TestInitViperBadConfigFile(t *testing.T) {
	dir := isolate(t)
	configDir := filepath.Join(dir, ".alpsinfo")
	if err := os.MkdirAll(configDir, 0755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(configDir, "config.yaml"), []byte("output: [json\n"), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	if err := InitViper(); err == nil {
		t.Errorf("expected an error for malformed config")
	}
}
