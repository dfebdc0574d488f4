package domain

import "go.trai.ch/zerr"

var (
	// ErrUnknownPlatform is returned when a platform name is not recognised.
	ErrUnknownPlatform = zerr.New("unknown platform")

	// ErrUnknownArch is returned when an architecture name is not recognised.
	ErrUnknownArch = zerr.New("unknown architecture")

	// ErrNoWebExecutable is returned when asking for a native executable name on the web platform.
	ErrNoWebExecutable = zerr.New("web builds do not produce a native executable")

	// ErrThinWithoutInvocations is returned when a thin build has no captured compiler invocations.
	ErrThinWithoutInvocations = zerr.New("thin build requires compiler invocations captured by a fat build")

	// ErrPatchTargetRequired is returned when a thin build has no binary to patch.
	ErrPatchTargetRequired = zerr.New("thin build requires a patch target binary")

	// ErrMainPtrRequired is returned when a thin build has no entry point address.
	ErrMainPtrRequired = zerr.New("thin build requires the address of main in the patch target")

	// ErrUnknownLinkAction is returned when a link intent payload names an unknown action.
	ErrUnknownLinkAction = zerr.New("unknown link action")

	// ErrLinkIntentDecodeFailed is returned when a link intent payload cannot be decoded.
	ErrLinkIntentDecodeFailed = zerr.New("failed to decode link intent")

	// ErrLinkIntentEncodeFailed is returned when a link intent cannot be encoded.
	ErrLinkIntentEncodeFailed = zerr.New("failed to encode link intent")

	// ErrLinkerNotConfigured is returned when no linker is known for a platform.
	ErrLinkerNotConfigured = zerr.New("no linker configured for platform")

	// ErrThinLinkUnsupported is returned when a thin link request reaches a linker that cannot patch.
	ErrThinLinkUnsupported = zerr.New("thin linking is not supported by this linker")

	// ErrLinkFailed is returned when the delegated linker exits with an error.
	ErrLinkFailed = zerr.New("linker failed")

	// ErrToolchainSpawnFailed is returned when the toolchain process cannot be started.
	ErrToolchainSpawnFailed = zerr.New("failed to start toolchain")

	// ErrToolchainFailed is returned when the toolchain reports an unsuccessful build.
	ErrToolchainFailed = zerr.New("cargo build failed, run with --verbose for more information")

	// ErrNoExecutable is returned when the toolchain finished without producing an executable.
	ErrNoExecutable = zerr.New("build completed without producing an executable")

	// ErrAndroidNDKNotFound is returned when an Android build cannot locate the NDK.
	ErrAndroidNDKNotFound = zerr.New("android NDK not found, set ANDROID_NDK_HOME")

	// ErrBuildDirInitFailed is returned when the platform build directories cannot be prepared.
	ErrBuildDirInitFailed = zerr.New("failed to initialize build directory")

	// ErrMetadataFailed is returned when cargo metadata cannot be read.
	ErrMetadataFailed = zerr.New("failed to read cargo metadata")

	// ErrPackageNotFound is returned when the selected package is not a workspace member.
	ErrPackageNotFound = zerr.New("package not found in workspace")

	// ErrAmbiguousPackage is returned when no package is selected in a workspace with several members.
	ErrAmbiguousPackage = zerr.New("workspace has several members, select one with --package")

	// ErrTargetNotFound is returned when no buildable target matches the selection.
	ErrTargetNotFound = zerr.New("no matching target found in package")

	// ErrConfigReadFailed is returned when the config file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the config file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrEnvFileFailed is returned when the project env file cannot be parsed.
	ErrEnvFileFailed = zerr.New("failed to read env file")

	// ErrStoreCreateFailed is returned when the invocation store directory cannot be created.
	ErrStoreCreateFailed = zerr.New("failed to create invocation store directory")

	// ErrStoreReadFailed is returned when an invocation record cannot be read.
	ErrStoreReadFailed = zerr.New("failed to read invocation record")

	// ErrStoreUnmarshalFailed is returned when an invocation record cannot be unmarshaled.
	ErrStoreUnmarshalFailed = zerr.New("failed to unmarshal invocation record")

	// ErrStoreMarshalFailed is returned when an invocation record cannot be marshaled.
	ErrStoreMarshalFailed = zerr.New("failed to marshal invocation record")

	// ErrStoreWriteFailed is returned when an invocation record cannot be written.
	ErrStoreWriteFailed = zerr.New("failed to write invocation record")

	// ErrNoInvocationRecord is returned when a patch build finds no prior fat build.
	ErrNoInvocationRecord = zerr.New("no fat build recorded for this target, run a fat build first")

	// ErrBuildExecutionFailed is returned when the build execution fails.
	ErrBuildExecutionFailed = zerr.New("build execution failed")
)
