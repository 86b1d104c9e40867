package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"cifmt/internal/config"
	"cifmt/internal/flags"
)

// resetFormatState clears flag and config state between executions; cobra
// keeps parsed flag values and Changed markers across Execute calls.
func resetFormatState(t *testing.T) {
	t.Helper()
	for _, name := range []string{
		flags.FlagPlatform, flags.FlagOut, flags.FlagNoConsole,
		flags.FlagColor, flags.FlagConfig,
	} {
		fl := formatCmd.Flags().Lookup(name)
		if fl == nil {
			t.Fatalf("flag %q is not registered", name)
		}
		fl.Changed = false
		if err := fl.Value.Set(fl.DefValue); err != nil {
			t.Fatalf("reset flag %q: %v", name, err)
		}
	}
	if fl := formatCmd.Flags().Lookup(flags.FlagEmit); fl != nil {
		fl.Changed = false
	}
	*cfg = *config.New()
	configPath = ""
	platformsListQuiet = false
	t.Cleanup(func() { rootCmd.SetArgs(nil) })
}

func runCLI(t *testing.T, stdin string, args ...string) (stdout, stderr string, err error) {
	t.Helper()

	var out, errBuf bytes.Buffer
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errBuf)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetIn(nil)
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
	})

	err = rootCmd.Execute()
	return out.String(), errBuf.String(), err
}

func TestFormatCommand_GitHub(t *testing.T) {
	resetFormatState(t)

	stdin := `{"kind":"group_start","title":"Build"}
{"kind":"error","text":"missing semicolon","file":"src/main.rs","line":10,"column":5}
{"kind":"group_end"}
`
	stdout, stderr, err := runCLI(t, stdin, "format", "--platform", "github")
	if err != nil {
		t.Fatalf("execute: %v", err)
	}

	want := `::group::Build
::error file=src/main.rs,line=10,col=5::missing semicolon
::endgroup::
`
	if stdout != want {
		t.Errorf("stdout = %q, want %q", stdout, want)
	}
	if stderr != "" {
		t.Errorf("stderr = %q, want empty", stderr)
	}
}

func TestFormatCommand_MalformedLinesDoNotFailTheRun(t *testing.T) {
	resetFormatState(t)

	stdin := `{"kind":"bogus"}
{"kind":"notice","text":"ok"}
`
	stdout, stderr, err := runCLI(t, stdin, "format", "--platform", "github")
	if err != nil {
		t.Fatalf("malformed input aborted the run: %v", err)
	}
	if !strings.Contains(stdout, "::notice ::ok") {
		t.Errorf("stdout = %q, missing formatted notice", stdout)
	}
	if !strings.Contains(stderr, "line 1") {
		t.Errorf("stderr = %q, missing diagnostic for line 1", stderr)
	}
}

func TestFormatCommand_RejectsUnknownPlatform(t *testing.T) {
	resetFormatState(t)

	if _, _, err := runCLI(t, "", "format", "--platform", "teamcity"); err == nil {
		t.Error("unknown platform did not fail")
	}
}

func TestFormatCommand_OutDuplicatesStream(t *testing.T) {
	resetFormatState(t)
	outPath := filepath.Join(t.TempDir(), "build.log")

	stdin := `{"kind":"raw","text":"hello"}
`
	stdout, _, err := runCLI(t, stdin, "format", "--platform", "github", "--out", outPath)
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	if stdout != "hello\n" {
		t.Errorf("stdout = %q", stdout)
	}
	data, err := os.ReadFile(outPath)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "hello\n" {
		t.Errorf("file content = %q", string(data))
	}
}

func TestFormatCommand_ConfigFileDefaults(t *testing.T) {
	resetFormatState(t)

	dir := t.TempDir()
	cfgFile := filepath.Join(dir, "cifmt.toml")
	if err := os.WriteFile(cfgFile, []byte("platform = \"gitlab\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	stdin := `{"kind":"group_start","title":"Build"}
`
	stdout, _, err := runCLI(t, stdin, "format", "--config", cfgFile)
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	if !strings.Contains(stdout, "section_start:sec1:Build") {
		t.Errorf("stdout = %q, config file platform was not applied", stdout)
	}
}

func TestFormatCommand_FlagWinsOverConfigFile(t *testing.T) {
	resetFormatState(t)

	dir := t.TempDir()
	cfgFile := filepath.Join(dir, "cifmt.toml")
	if err := os.WriteFile(cfgFile, []byte("platform = \"gitlab\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	stdin := `{"kind":"group_start","title":"Build"}
{"kind":"group_end"}
`
	stdout, _, err := runCLI(t, stdin, "format", "--config", cfgFile, "--platform", "github")
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	if !strings.Contains(stdout, "::group::Build") {
		t.Errorf("stdout = %q, --platform flag did not win over config file", stdout)
	}
}
