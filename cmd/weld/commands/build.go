package commands

import (
	"runtime"
	"strconv"

	"github.com/spf13/cobra"
	"go.trai.ch/weld/internal/app"
	"go.trai.ch/weld/internal/core/domain"
	"go.trai.ch/zerr"
)

var (
	errFatAndPatch         = zerr.New("--fat and --patch cannot be combined")
	errUnexpectedArgs      = zerr.New("unexpected arguments, pass cargo arguments after --")
	errPatchFlagsNeedPatch = zerr.New("--patch-target and --main-ptr require --patch")
)

func (c *CLI) newBuildCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "build [flags] [-- cargo args...]",
		Short: "Build the app for a platform",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := buildOptions(cmd, args)
			if err != nil {
				return err
			}
			_, err = c.app.Build(cmd.Context(), opts)
			return err
		},
	}

	f := cmd.Flags()
	f.StringP("platform", "p", "", "Target platform: web, macos, windows, linux, ios, android, server, liveview (default: host)")
	f.BoolP("release", "r", false, "Build in release mode")
	f.String("profile", "", "Custom cargo profile")
	f.String("server-profile", "", "Cargo profile for debug server builds")
	f.Bool("fullstack", false, "Also build the server")
	f.Bool("sequential", false, "Build the app and the server one after the other")
	f.String("target", "", "Target triple for platforms without their own")
	f.Bool("device", false, "Build for a physical iOS device instead of the simulator")
	f.String("arch", "", "Mobile architecture: arm64, arm, x86, x86_64")
	f.String("package", "", "Workspace member to build")
	f.String("bin", "", "Binary target to build")
	f.String("example", "", "Example target to build")
	f.StringSlice("features", nil, "Features enabled on every platform")
	f.StringSlice("client-features", nil, "Features enabled on every platform except the server")
	f.StringSlice("server-features", nil, "Features enabled only on the server")
	f.Bool("no-default-features", false, "Disable the package's default features")
	f.Bool("experimental-wasm-split", false, "Keep relocations for the wasm bundle splitter")
	f.String("target-dir", "", "Cargo target directory")
	f.Bool("fat", false, "Keep symbols and record compiler invocations for later patches")
	f.Bool("patch", false, "Build a patch against the last fat build")
	f.String("patch-target", "", "Binary to patch (default: recorded executable)")
	f.String("main-ptr", "", "Address of main in the patch target, decimal or 0x hex")
	f.BoolP("verbose", "v", false, "Show debug output")
	f.Bool("json", false, "Emit logs as JSON")
	f.StringP("output", "o", "auto", "Output mode: auto, progress, or linear")
	f.Bool("ci", false, "Use linear output (shorthand for --output=linear)")

	return cmd
}

func buildOptions(cmd *cobra.Command, args []string) (app.BuildOptions, error) {
	f := cmd.Flags()

	dash := cmd.ArgsLenAtDash()
	if (dash == -1 && len(args) > 0) || dash > 0 {
		return app.BuildOptions{}, errUnexpectedArgs
	}
	var cargoArgs []string
	if dash == 0 {
		cargoArgs = args
	}

	platformName, _ := f.GetString("platform")
	platform := domain.HostPlatform(runtime.GOOS)
	if platformName != "" {
		p, err := domain.ParsePlatform(platformName)
		if err != nil {
			return app.BuildOptions{}, err
		}
		platform = p
	}

	archName, _ := f.GetString("arch")
	arch, err := domain.ParseArch(archName)
	if err != nil {
		return app.BuildOptions{}, err
	}

	fat, _ := f.GetBool("fat")
	patch, _ := f.GetBool("patch")
	if fat && patch {
		return app.BuildOptions{}, errFatAndPatch
	}

	patchTarget, _ := f.GetString("patch-target")
	mainPtrText, _ := f.GetString("main-ptr")
	if !patch && (patchTarget != "" || mainPtrText != "") {
		return app.BuildOptions{}, errPatchFlagsNeedPatch
	}
	var mainPtr uint64
	if mainPtrText != "" {
		mainPtr, err = strconv.ParseUint(mainPtrText, 0, 64)
		if err != nil {
			return app.BuildOptions{}, zerr.With(zerr.Wrap(err, "invalid --main-ptr"), "value", mainPtrText)
		}
	}

	release, _ := f.GetBool("release")
	profile, _ := f.GetString("profile")
	serverProfile, _ := f.GetString("server-profile")
	fullstack, _ := f.GetBool("fullstack")
	sequential, _ := f.GetBool("sequential")
	wasmSplit, _ := f.GetBool("experimental-wasm-split")
	targetDir, _ := f.GetString("target-dir")

	target, _ := f.GetString("target")
	device, _ := f.GetBool("device")
	pkg, _ := f.GetString("package")
	bin, _ := f.GetString("bin")
	example, _ := f.GetString("example")
	features, _ := f.GetStringSlice("features")
	clientFeatures, _ := f.GetStringSlice("client-features")
	serverFeatures, _ := f.GetStringSlice("server-features")
	noDefault, _ := f.GetBool("no-default-features")

	verbose, _ := f.GetBool("verbose")
	jsonLogs, _ := f.GetBool("json")
	outputMode, _ := f.GetString("output")
	ci, _ := f.GetBool("ci")

	// If --ci is set, override output mode to "linear"
	if ci {
		outputMode = "linear"
	}

	return app.BuildOptions{
		Args: domain.BuildArgs{
			Platform:              platform,
			Release:               release,
			Profile:               profile,
			ServerProfile:         serverProfile,
			Fullstack:             fullstack,
			Sequential:            sequential,
			CargoArgs:             cargoArgs,
			ExperimentalWasmSplit: wasmSplit,
			TargetDir:             targetDir,
			TargetArgs: domain.TargetArgs{
				Target:            target,
				Device:            device,
				Arch:              arch,
				Package:           pkg,
				Bin:               bin,
				Example:           example,
				Features:          features,
				ClientFeatures:    clientFeatures,
				ServerFeatures:    serverFeatures,
				NoDefaultFeatures: noDefault,
			},
		},
		Fat:         fat,
		Patch:       patch,
		PatchTarget: patchTarget,
		MainPtr:     mainPtr,
		Verbose:     verbose,
		JSON:        jsonLogs,
		OutputMode:  outputMode,
	}, nil
}
