package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
)

func writeYAML(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "lemon.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))
	return path
}

func TestFromYAMLDefaultsTargetTripleWhenFieldsAreAbsent(t *testing.T) {
	path := writeYAML(t, "src: main.ln\nthreads: 4\n")

	opt, err := FromYAML(path)
	require.NoError(t, err)
	require.Equal(t, "main.ln", opt.Src)
	require.Equal(t, 4, opt.Threads)
	require.Equal(t, Aarch64, opt.TargetArch)
	require.Equal(t, Linux, opt.TargetOS)
	require.Equal(t, UnknownVendor, opt.TargetVendor)
}

func TestFromYAMLResolvesNamedTargetTriple(t *testing.T) {
	path := writeYAML(t, "src: main.ln\ntargetArch: x86_64\ntargetOS: windows\ntargetVendor: pc\n")

	opt, err := FromYAML(path)
	require.NoError(t, err)
	require.Equal(t, X86_64, opt.TargetArch)
	require.Equal(t, Windows, opt.TargetOS)
	require.Equal(t, PC, opt.TargetVendor)
}

func TestFromYAMLUnknownTargetArchFails(t *testing.T) {
	path := writeYAML(t, "src: main.ln\ntargetArch: sparc\n")

	_, err := FromYAML(path)
	require.Error(t, err)
}

func TestFromYAMLMissingFileFails(t *testing.T) {
	_, err := FromYAML(filepath.Join(t.TempDir(), "does-not-exist.yaml"))
	require.Error(t, err)
}

func TestFromYAMLRejectsThreadCountOutOfRange(t *testing.T) {
	path := writeYAML(t, "src: main.ln\nthreads: 65\n")

	_, err := FromYAML(path)
	require.Error(t, err)
}

func TestValidateAcceptsZeroThreads(t *testing.T) {
	require.NoError(t, Options{Threads: 0}.Validate())
}

func TestLoggerHonorsVerbose(t *testing.T) {
	require.Equal(t, logrus.InfoLevel, Options{Verbose: false}.Logger().GetLevel())
	require.Equal(t, logrus.DebugLevel, Options{Verbose: true}.Logger().GetLevel())
}
