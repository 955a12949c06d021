// Package config holds the compiler's Options struct: target-triple and
// verbosity fields, generalized with YAML project-file loading. Flag
// parsing itself stays out of this package, which only loads and
// validates an already-assembled Options; the thin cmd-level wiring is
// responsible for turning os.Args into one.
package config

import (
	"fmt"
	"os"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

// Target machine architectures a build can be configured for.
const (
	UnknownArch = iota
	X86_64
	X86_32
	Aarch64
	Riscv64
	Riscv32
)

const (
	UnknownOS = iota
	Linux
	Windows
	MAC
)

const (
	UnknownVendor = iota
	Apple
	PC
	IBM
)

const maxThreads = 64

// Options is the compiler's flat configuration surface.
type Options struct {
	Src          string `yaml:"src"`
	Out          string `yaml:"out"`
	Threads      int    `yaml:"threads"`
	Verbose      bool   `yaml:"verbose"`
	TargetArch   int    `yaml:"-"`
	TargetVendor int    `yaml:"-"`
	TargetCPU    int    `yaml:"-"`
	TargetOS     int    `yaml:"-"`
	TargetArchName   string `yaml:"targetArch"`
	TargetVendorName string `yaml:"targetVendor"`
	TargetOSName     string `yaml:"targetOS"`
}

// FromYAML loads Options from a project file (conventionally lemon.yaml),
// resolving the textual target-triple fields into their numeric
// counterparts.
func FromYAML(path string) (Options, error) {
	var opt Options
	data, err := os.ReadFile(path)
	if err != nil {
		return opt, errors.Wrapf(err, "config: reading %s", path)
	}
	if err := yaml.Unmarshal(data, &opt); err != nil {
		return opt, errors.Wrapf(err, "config: parsing %s", path)
	}
	if err := opt.resolveTargets(); err != nil {
		return opt, err
	}
	if err := opt.Validate(); err != nil {
		return opt, err
	}
	return opt, nil
}

func (o *Options) resolveTargets() error {
	switch o.TargetArchName {
	case "", "aarch64":
		o.TargetArch = Aarch64
	case "riscv64":
		o.TargetArch = Riscv64
	case "riscv32":
		o.TargetArch = Riscv32
	case "x86_64":
		o.TargetArch = X86_64
	case "x86_32":
		o.TargetArch = X86_32
	default:
		return fmt.Errorf("config: unknown targetArch %q", o.TargetArchName)
	}
	switch o.TargetOSName {
	case "", "linux":
		o.TargetOS = Linux
	case "windows":
		o.TargetOS = Windows
	case "mac":
		o.TargetOS = MAC
	default:
		return fmt.Errorf("config: unknown targetOS %q", o.TargetOSName)
	}
	switch o.TargetVendorName {
	case "":
		o.TargetVendor = UnknownVendor
	case "pc":
		o.TargetVendor = PC
	case "apple":
		o.TargetVendor = Apple
	case "ibm":
		o.TargetVendor = IBM
	default:
		return fmt.Errorf("config: unknown targetVendor %q", o.TargetVendorName)
	}
	return nil
}

// Validate checks field ranges; called automatically by FromYAML but
// exposed for options assembled by hand (e.g. from flags).
func (o Options) Validate() error {
	if o.Threads < 0 || o.Threads > maxThreads {
		return fmt.Errorf("config: thread count must be in range [0, %d], got %d", maxThreads, o.Threads)
	}
	return nil
}

// Logger returns a logger honoring Verbose: debug level when set, info
// otherwise. check.New and irbuild.New do not use it: given a nil logger
// they fall back to logrus.StandardLogger().
func (o Options) Logger() *logrus.Logger {
	l := logrus.New()
	if o.Verbose {
		l.SetLevel(logrus.DebugLevel)
	} else {
		l.SetLevel(logrus.InfoLevel)
	}
	return l
}
