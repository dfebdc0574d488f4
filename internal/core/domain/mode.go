package domain

// ModeKind enumerates the build strategies.
type ModeKind int

const (
	// ModeBase is a regular build linked by the platform linker.
	ModeBase ModeKind = iota
	// ModeFat is a build without dead-code stripping, linked through weld so it can be patched later.
	ModeFat
	// ModeThin recompiles only the final unit and patches an existing fat binary.
	ModeThin
)

// String returns the mode name.
func (k ModeKind) String() string {
	switch k {
	case ModeFat:
		return "fat"
	case ModeThin:
		return "thin"
	default:
		return "base"
	}
}

// PatchTarget describes the previously built binary a thin build patches.
type PatchTarget struct {
	// Binary is the path of the fat executable being patched.
	Binary string `json:"binary"`
	// MainPtr is the address of the entry point inside Binary.
	MainPtr uint64 `json:"main_ptr"`
}

// BuildMode selects how the toolchain is invoked and linked.
// The zero value is a base build.
type BuildMode struct {
	Kind ModeKind
	// DirectRustc holds the raw compiler invocations captured by a fat build. Thin only.
	DirectRustc [][]string
	// Patch is the binary being patched. Thin only.
	Patch *PatchTarget
}

// BaseMode returns a regular build mode.
func BaseMode() BuildMode {
	return BuildMode{Kind: ModeBase}
}

// FatMode returns a build mode that links through weld without stripping.
func FatMode() BuildMode {
	return BuildMode{Kind: ModeFat}
}

// ThinMode returns a patch build mode over invocations captured by a prior fat build.
func ThinMode(directRustc [][]string, patch PatchTarget) BuildMode {
	return BuildMode{Kind: ModeThin, DirectRustc: directRustc, Patch: &patch}
}

// UsesSelfLinker reports whether weld substitutes itself as the linker.
func (m BuildMode) UsesSelfLinker() bool {
	return m.Kind == ModeFat || m.Kind == ModeThin
}

// Validate checks the thin mode invariants.
func (m BuildMode) Validate() error {
	if m.Kind != ModeThin {
		return nil
	}
	if len(m.DirectRustc) == 0 {
		return ErrThinWithoutInvocations
	}
	if m.Patch == nil || m.Patch.Binary == "" {
		return ErrPatchTargetRequired
	}
	if m.Patch.MainPtr == 0 {
		return ErrMainPtrRequired
	}
	return nil
}
