package scheduler

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wct/internal/execution"
)

func TestMain(m *testing.M) {
	color.NoColor = true
	os.Exit(m.Run())
}

// fakeRunner records command lines and fails the first one containing failOn
type fakeRunner struct {
	lines     []string
	failOn    string
	buildPath string
}

func (f *fakeRunner) Run(ctx context.Context, line string) execution.Outcome {
	f.lines = append(f.lines, line)
	if f.failOn != "" && strings.Contains(line, f.failOn) {
		return execution.Outcome{ExitCode: 2, Output: []byte("boom")}
	}
	if strings.Contains(line, "source:buildPath") {
		return execution.Outcome{Output: []byte(f.buildPath + "\n")}
	}
	return execution.Outcome{}
}

func testConfig() Config {
	return Config{
		Job:         JobBuildDocset,
		HGuild:      "hguild",
		Profile:     "Linux-X86_64@Clang@@",
		BuildType:   "Debug",
		ProjectName: "libWexpr",
		SourceName:  "Wolf@CI",
		RootDir:     "/src",
		Identifier:  DefaultIdentifier,
		CMakeTarget: DefaultCMakeTarget,
		UploadURL:   "http://example.invalid/upload.rb",
		Now:         time.Date(2026, 10, 15, 8, 30, 5, 0, time.UTC),
	}
}

func TestDispatch_BuildDocset(t *testing.T) {
	runner := &fakeRunner{buildPath: "/build"}
	var out bytes.Buffer

	err := Dispatch(context.Background(), testConfig(), runner, &out)
	require.NoError(t, err)

	html := "/build/Documentation/Doxygen/html"
	want := []string{
		"hguild source:buildPath --buildType Debug --profile Linux-X86_64@Clang@@ --customSourceDir=/src Wolf@CI",
		"cmake --build /build --target doxygen",
		"make -C " + html + " docset > /dev/null",
		"cd " + html + " && tar --exclude=.DS_Store -cvzf com.hackerguild.libwexpr.2026-10-15_08-30-05.docset.tgz com.hackerguild.libwexpr.docset",
		"curl -fsSL http://example.invalid/upload.rb | ruby -- - libWexpr 2026-10-15_08-30-05 com.hackerguild.libwexpr.docset " + html + "/com.hackerguild.libwexpr.2026-10-15_08-30-05.docset.tgz",
		"rm -Rf " + html + " && mkdir " + html,
	}
	assert.Equal(t, want, runner.lines)

	assert.Contains(t, out.String(), "> -------- cmake --build /build --target doxygen\n")
	assert.Contains(t, out.String(), "< -------- cmake --build /build --target doxygen\n")
}

func TestDispatch_BuildDocsetWithLogo(t *testing.T) {
	cfg := testConfig()
	cfg.Logo = "/src/logo.png"
	runner := &fakeRunner{buildPath: "/build"}

	require.NoError(t, Dispatch(context.Background(), cfg, runner, &bytes.Buffer{}))

	require.Len(t, runner.lines, 8)
	assert.Equal(t, "convert /src/logo.png -resize 16x16 /build/Documentation/Doxygen/html/com.hackerguild.libwexpr.docset/icon.png", runner.lines[3])
	assert.Equal(t, "convert /src/logo.png -resize 32x32 /build/Documentation/Doxygen/html/com.hackerguild.libwexpr.docset/icon@2x.png", runner.lines[4])
}

func TestDispatch_AbortsOnFirstFailure(t *testing.T) {
	tests := []struct {
		failOn  string
		message string
		ran     int
	}{
		{failOn: "source:buildPath", message: "Unable to resolve build path", ran: 1},
		{failOn: "cmake", message: "Unable to run cmake build", ran: 2},
		{failOn: "make -C", message: "Unable to make docset", ran: 3},
		{failOn: "tar --exclude", message: "Failed to package docset", ran: 4},
		{failOn: "curl", message: "Failed to upload", ran: 5},
		{failOn: "rm -Rf", message: "Failed to cleanup", ran: 6},
	}

	for _, tt := range tests {
		t.Run(tt.message, func(t *testing.T) {
			runner := &fakeRunner{buildPath: "/build", failOn: tt.failOn}

			err := Dispatch(context.Background(), testConfig(), runner, &bytes.Buffer{})

			var stepErr *StepError
			require.True(t, errors.As(err, &stepErr), "expected StepError, got %v", err)
			assert.Equal(t, tt.message, stepErr.Message)
			assert.Equal(t, 2, stepErr.Outcome.ExitCode)
			assert.Contains(t, err.Error(), "(exit 2)")
			assert.Len(t, runner.lines, tt.ran)
		})
	}
}

func TestDispatch_UnknownJob(t *testing.T) {
	for _, job := range []JobName{"", "deploy"} {
		cfg := testConfig()
		cfg.Job = job
		runner := &fakeRunner{}

		err := Dispatch(context.Background(), cfg, runner, &bytes.Buffer{})

		assert.ErrorContains(t, err, "unknown scheduler job")
		assert.Empty(t, runner.lines)
	}
}

func TestConfigFromEnv(t *testing.T) {
	env := map[string]string{
		EnvJob:         "build_docset",
		EnvHGuild:      "/opt/hguild",
		EnvProfile:     "macOS-ARM64@Clang@@",
		EnvBuildType:   "RelWithDebInfo",
		EnvProjectName: "libWexpr",
		EnvSourceName:  "Wolf@CI",
	}
	now := time.Now()

	t.Run("without logo", func(t *testing.T) {
		root := t.TempDir()
		cfg := ConfigFromEnv(func(k string) string { return env[k] }, root, now)

		assert.Equal(t, JobBuildDocset, cfg.Job)
		assert.Equal(t, "/opt/hguild", cfg.HGuild)
		assert.Equal(t, "RelWithDebInfo", cfg.BuildType)
		assert.Equal(t, root, cfg.RootDir)
		assert.Equal(t, DefaultIdentifier, cfg.Identifier)
		assert.Equal(t, DefaultCMakeTarget, cfg.CMakeTarget)
		assert.Empty(t, cfg.Logo)
		assert.Equal(t, now, cfg.Now)
	})

	t.Run("with logo", func(t *testing.T) {
		root := t.TempDir()
		logo := filepath.Join(root, "logo.png")
		require.NoError(t, os.WriteFile(logo, []byte("png"), 0644))

		cfg := ConfigFromEnv(func(k string) string { return env[k] }, root, now)
		assert.Equal(t, logo, cfg.Logo)
	})
}

func TestStepError_AbnormalTermination(t *testing.T) {
	err := &StepError{Message: "Failed to upload", Outcome: execution.Outcome{ExitCode: -1, Err: errors.New("signal: killed")}}
	assert.Equal(t, "Failed to upload: signal: killed", err.Error())
}
