package domain

import (
	"fmt"
	"path/filepath"
)

// AndroidNDK is a located Android NDK with its host prebuilt toolchain.
type AndroidNDK struct {
	// Root is the NDK installation directory.
	Root string
	// BinDir is the host prebuilt llvm bin directory.
	BinDir string
	// JavaHome is a JDK to expose to gradle when JAVA_HOME is unset. Optional.
	JavaHome string
}

// Linker returns the clang wrapper linking for arch at the given API level.
func (n *AndroidNDK) Linker(arch Arch, apiLevel int) string {
	return filepath.Join(n.BinDir, fmt.Sprintf("%s%d-clang", arch.AndroidClangPrefix(), apiLevel))
}

// CC returns the C compiler for arch.
func (n *AndroidNDK) CC(arch Arch, apiLevel int) string {
	return n.Linker(arch, apiLevel)
}

// CXX returns the C++ compiler for arch.
func (n *AndroidNDK) CXX(arch Arch, apiLevel int) string {
	return filepath.Join(n.BinDir, fmt.Sprintf("%s%d-clang++", arch.AndroidClangPrefix(), apiLevel))
}

// AR returns the archiver shipped with the NDK.
func (n *AndroidNDK) AR() string {
	return filepath.Join(n.BinDir, "llvm-ar")
}
