// Package command assembles the cargo invocation and its environment for a build request.
package command

import (
	"fmt"
	"os"
	"strings"

	"go.trai.ch/weld/internal/core/domain"
	"go.trai.ch/weld/internal/core/ports"
)

// Environment variables baked into release builds.
const (
	AssetRootEnv = "WELD_ASSET_ROOT"
	AppTitleEnv  = "WELD_APP_TITLE"
)

const (
	cargoProgram  = "cargo"
	messageFormat = "json-diagnostic-rendered-ansi"
	wasmTriple    = "wasm32-unknown-unknown"
	iosTriple     = "aarch64-apple-ios"
	iosSimTriple  = "aarch64-apple-ios-sim"
)

// Assembler turns a build request into the cargo command line and environment.
type Assembler struct {
	android ports.AndroidToolchain
	logger  ports.Logger
	linkers LinkerTable
	getenv  func(string) string
}

// NewAssembler creates an Assembler using the default linker table.
func NewAssembler(android ports.AndroidToolchain, logger ports.Logger) *Assembler {
	return &Assembler{
		android: android,
		logger:  logger,
		linkers: DefaultLinkerTable(),
		getenv:  os.Getenv,
	}
}

// WithLinkers replaces the linker table.
func (a *Assembler) WithLinkers(t LinkerTable) *Assembler {
	a.linkers = t
	return a
}

// WithGetenv replaces the lookup used for inherited variables such as RUSTFLAGS.
func (a *Assembler) WithGetenv(fn func(string) string) *Assembler {
	a.getenv = fn
	return a
}

// Assemble returns the full `cargo rustc` command for req, run in the crate directory.
func (a *Assembler) Assemble(req *domain.BuildRequest) (domain.Command, error) {
	env, err := a.EnvVars(req)
	if err != nil {
		return domain.Command{}, err
	}

	args := append([]string{"rustc", "--message-format", messageFormat}, a.BuildArguments(req)...)

	return domain.Command{
		Program: cargoProgram,
		Args:    args,
		Env:     env,
		Dir:     req.Crate.Dir(),
	}, nil
}

// TargetTriple returns the --target value for req, or "" when cargo should use the host.
// The platform's own triple wins over a configured override.
func TargetTriple(req *domain.BuildRequest) string {
	ta := req.Args.TargetArgs
	switch req.Platform() {
	case domain.PlatformServer:
		return ""
	case domain.PlatformWeb:
		return wasmTriple
	case domain.PlatformIOS:
		if ta.Device {
			return iosTriple
		}
		return iosSimTriple
	case domain.PlatformAndroid:
		return ta.Arch.AndroidTriple()
	default:
		return ta.Target
	}
}

// BuildArguments returns the ordered cargo arguments shared by the build and the unit graph query.
func (a *Assembler) BuildArguments(req *domain.BuildRequest) []string {
	var args []string
	build := req.Args
	ta := build.TargetArgs

	if req.Platform() == domain.PlatformServer {
		profile := build.ServerProfile
		if profile == "" {
			profile = domain.DefaultServerProfile
		}
		if build.Release {
			profile = "release"
		}
		args = append(args, "--profile", profile)
	} else {
		if build.Release {
			args = append(args, "--profile", "release")
		} else if build.Profile != "" {
			args = append(args, "--profile", build.Profile)
		}
		if triple := TargetTriple(req); triple != "" {
			args = append(args, "--target", triple)
		}
	}

	args = append(args, "--verbose")

	if ta.NoDefaultFeatures {
		args = append(args, "--no-default-features")
	}

	if features := AllFeatures(req); len(features) > 0 {
		args = append(args, "--features", strings.Join(features, " "))
	}

	if ta.Package != "" {
		args = append(args, "-p", ta.Package)
	}

	args = append(args, build.CargoArgs...)

	switch req.Crate.Kind {
	case domain.TargetKindBin:
		args = append(args, "--bin")
	case domain.TargetKindLib:
		args = append(args, "--lib")
	case domain.TargetKindExample:
		args = append(args, "--example")
	}
	args = append(args, req.Crate.ExecutableName())

	args = append(args, "--")

	if req.Platform() == domain.PlatformWeb && build.ExperimentalWasmSplit {
		args = append(args, "-Clink-args=--emit-relocs")
	}

	if req.Mode.UsesSelfLinker() {
		args = append(args, "-Clinker="+req.LinkerPath)
	}

	return args
}

// EnvVars returns the environment cargo runs with. Later entries win over earlier ones.
func (a *Assembler) EnvVars(req *domain.BuildRequest) ([]domain.EnvVar, error) {
	var env []domain.EnvVar

	if req.Config != nil {
		for _, key := range req.Config.EnvKeys {
			env = append(env, domain.EnvVar{Key: key, Value: req.Config.Env[key]})
		}
	}

	var ndk *domain.AndroidNDK
	if req.Platform() == domain.PlatformAndroid {
		var err error
		ndk, err = a.locateNDK()
		if err != nil {
			return nil, err
		}
		env = append(env, a.androidEnv(req, ndk)...)
	}

	linker, err := a.intentLinker(req, ndk)
	if err != nil {
		return nil, err
	}

	intent, err := domain.NewLinkIntent(req.Mode, req.Platform(), linker, req.Layout().IncrementalCacheDir())
	if err != nil {
		return nil, err
	}
	payload, err := intent.Encode()
	if err != nil {
		return nil, err
	}
	env = append(env, domain.EnvVar{Key: domain.LinkActionEnv, Value: payload})

	if req.Args.TargetDir != "" {
		env = append(env, domain.EnvVar{Key: "CARGO_TARGET_DIR", Value: req.Args.TargetDir})
	}

	if req.Args.Release && req.Config != nil {
		if req.Config.WebBasePath != "" {
			env = append(env, domain.EnvVar{Key: AssetRootEnv, Value: req.Config.WebBasePath})
		}
		env = append(env, domain.EnvVar{Key: AppTitleEnv, Value: req.Config.ResolvedAppTitle(req.Executable())})
	}

	return env, nil
}

func (a *Assembler) locateNDK() (*domain.AndroidNDK, error) {
	if a.android == nil {
		return nil, domain.ErrAndroidNDKNotFound
	}
	ndk, err := a.android.Locate()
	if err != nil {
		return nil, err
	}
	if ndk == nil {
		return nil, domain.ErrAndroidNDKNotFound
	}
	return ndk, nil
}

func (a *Assembler) intentLinker(req *domain.BuildRequest, ndk *domain.AndroidNDK) (string, error) {
	if req.Config != nil {
		if override, ok := req.Config.Linkers[req.Platform().String()]; ok && override != "" {
			return override, nil
		}
	}
	if ndk != nil {
		return ndk.Linker(req.Args.TargetArgs.Arch, domain.AndroidMinSDKVersion), nil
	}
	return a.linkers.Lookup(req.Platform())
}

func (a *Assembler) androidEnv(req *domain.BuildRequest, ndk *domain.AndroidNDK) []domain.EnvVar {
	arch := req.Args.TargetArgs.Arch
	api := domain.AndroidMinSDKVersion

	if a.logger != nil {
		a.logger.Debug(fmt.Sprintf(
			"using android ndk %s: linker=%s ar=%s java_home=%q",
			ndk.Root, ndk.Linker(arch, api), ndk.AR(), ndk.JavaHome,
		))
	}

	env := []domain.EnvVar{
		{Key: "ANDROID_NATIVE_API_LEVEL", Value: fmt.Sprint(api)},
		{Key: "TARGET_AR", Value: ndk.AR()},
		{Key: "TARGET_CC", Value: ndk.CC(arch, api)},
		{Key: "TARGET_CXX", Value: ndk.CXX(arch, api)},
		{Key: "ANDROID_NDK_ROOT", Value: ndk.Root},
	}
	if ndk.JavaHome != "" {
		env = append(env, domain.EnvVar{Key: "JAVA_HOME", Value: ndk.JavaHome})
	}
	env = append(env,
		domain.EnvVar{Key: "WRY_ANDROID_PACKAGE", Value: domain.AndroidPackage},
		domain.EnvVar{Key: "WRY_ANDROID_LIBRARY", Value: domain.AndroidLibraryName},
		domain.EnvVar{Key: "WRY_ANDROID_KOTLIN_FILES_OUT_DIR", Value: req.Layout().AndroidKotlinOutDir()},
		domain.EnvVar{Key: "RUSTFLAGS", Value: a.androidRustFlags(req)},
	)
	return env
}

func (a *Assembler) androidRustFlags(req *domain.BuildRequest) string {
	flags := []string{}
	if inherited := strings.TrimSpace(a.getenv("RUSTFLAGS")); inherited != "" {
		flags = append(flags, inherited)
	}
	flags = append(flags,
		"-Clinker="+req.LinkerPath,
		"-Clink-arg=-landroid",
		"-Clink-arg=-llog",
		"-Clink-arg=-lOpenSLES",
		"-Clink-arg=-Wl,--export-dynamic",
	)
	return strings.Join(flags, " ")
}

// UnitGraphCommand returns the nightly cargo query listing every unit the build would compile.
func (a *Assembler) UnitGraphCommand(req *domain.BuildRequest, build domain.Command) domain.Command {
	args := append([]string{"+nightly", "build", "--unit-graph", "-Z", "unstable-options"}, a.BuildArguments(req)...)
	return domain.Command{
		Program: cargoProgram,
		Args:    args,
		Env:     build.Env,
		Dir:     build.Dir,
	}
}

