package domain

import (
	"path/filepath"
	"slices"

	"go.trai.ch/zerr"
)

// TargetKind is how a crate target is selected on the cargo command line.
type TargetKind string

const (
	// TargetKindBin is a binary target, selected with --bin.
	TargetKindBin TargetKind = "bin"
	// TargetKindLib is a library target, selected with --lib.
	TargetKindLib TargetKind = "lib"
	// TargetKindExample is an example target, selected with --example.
	TargetKindExample TargetKind = "example"
)

// Target is a compilable target of a package.
type Target struct {
	Name    string   `json:"name"`
	Kind    []string `json:"kind"`
	SrcPath string   `json:"src_path"`
}

// Is reports whether the target has the given kind.
func (t Target) Is(kind string) bool {
	return slices.Contains(t.Kind, kind)
}

// Package is a cargo package.
type Package struct {
	ID           string              `json:"id"`
	Name         string              `json:"name"`
	Version      string              `json:"version"`
	ManifestPath string              `json:"manifest_path"`
	Targets      []Target            `json:"targets"`
	Features     map[string][]string `json:"features"`
}

// Dir returns the directory containing the package manifest.
func (p *Package) Dir() string {
	return filepath.Dir(p.ManifestPath)
}

// DefaultFeatures returns the features enabled by the package's `default` feature.
func (p *Package) DefaultFeatures() []string {
	return p.Features["default"]
}

// DepKind is one kind of a dependency edge in the resolve graph.
type DepKind struct {
	// Kind is empty for normal dependencies, "dev" or "build" otherwise.
	Kind   string  `json:"kind"`
	Target *string `json:"target"`
}

// NodeDep is an edge of the resolve graph.
type NodeDep struct {
	Pkg      string    `json:"pkg"`
	DepKinds []DepKind `json:"dep_kinds"`
}

// IsDevOnly reports whether the edge exists only for dev builds.
func (d NodeDep) IsDevOnly() bool {
	if len(d.DepKinds) == 0 {
		return false
	}
	for _, k := range d.DepKinds {
		if k.Kind != "dev" {
			return false
		}
	}
	return true
}

// ResolveNode is a package in the resolve graph together with its edges.
type ResolveNode struct {
	ID   string    `json:"id"`
	Deps []NodeDep `json:"deps"`
}

// Resolve is the resolved dependency graph of a workspace.
type Resolve struct {
	Root  string        `json:"root"`
	Nodes []ResolveNode `json:"nodes"`
}

// Workspace is the cargo metadata of a project.
type Workspace struct {
	Root      string    `json:"workspace_root"`
	TargetDir string    `json:"target_directory"`
	Packages  []Package `json:"packages"`
	Members   []string  `json:"workspace_members"`
	Resolve   *Resolve  `json:"resolve"`
}

// PackageByID returns the package with the given id.
func (w *Workspace) PackageByID(id string) (*Package, bool) {
	for i := range w.Packages {
		if w.Packages[i].ID == id {
			return &w.Packages[i], true
		}
	}
	return nil, false
}

// ReachableTargetCount sums the targets of every package reachable from root
// through non-dev edges of the resolve graph, root included.
func (w *Workspace) ReachableTargetCount(rootID string) int {
	if w.Resolve == nil {
		return 0
	}

	nodes := make(map[string]*ResolveNode, len(w.Resolve.Nodes))
	for i := range w.Resolve.Nodes {
		nodes[w.Resolve.Nodes[i].ID] = &w.Resolve.Nodes[i]
	}

	seen := map[string]struct{}{rootID: {}}
	queue := []string{rootID}
	total := 0
	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]

		if pkg, ok := w.PackageByID(id); ok {
			total += len(pkg.Targets)
		}

		node, ok := nodes[id]
		if !ok {
			continue
		}
		for _, dep := range node.Deps {
			if dep.IsDevOnly() {
				continue
			}
			if _, visited := seen[dep.Pkg]; visited {
				continue
			}
			seen[dep.Pkg] = struct{}{}
			queue = append(queue, dep.Pkg)
		}
	}
	return total
}

// CrateSelector picks a package and target out of a workspace.
type CrateSelector struct {
	Package string
	Bin     string
	Example string
}

// Crate is the package and target a build compiles.
type Crate struct {
	Workspace *Workspace
	Package   *Package
	Target    Target
	Kind      TargetKind
}

// Dir returns the directory cargo runs in.
func (c *Crate) Dir() string {
	return c.Package.Dir()
}

// ExecutableName returns the name of the produced executable before platform renaming.
func (c *Crate) ExecutableName() string {
	return c.Target.Name
}

// SelectCrate resolves a selector against the workspace.
func SelectCrate(ws *Workspace, sel CrateSelector) (*Crate, error) {
	pkg, err := selectPackage(ws, sel.Package)
	if err != nil {
		return nil, err
	}

	target, kind, err := selectTarget(pkg, sel)
	if err != nil {
		return nil, err
	}

	return &Crate{Workspace: ws, Package: pkg, Target: target, Kind: kind}, nil
}

func selectPackage(ws *Workspace, name string) (*Package, error) {
	members := make([]*Package, 0, len(ws.Members))
	for _, id := range ws.Members {
		if pkg, ok := ws.PackageByID(id); ok {
			members = append(members, pkg)
		}
	}

	if name != "" {
		for _, pkg := range members {
			if pkg.Name == name {
				return pkg, nil
			}
		}
		return nil, zerr.With(ErrPackageNotFound, "package", name)
	}

	if ws.Resolve != nil && ws.Resolve.Root != "" {
		if pkg, ok := ws.PackageByID(ws.Resolve.Root); ok {
			return pkg, nil
		}
	}
	if len(members) == 1 {
		return members[0], nil
	}
	return nil, ErrAmbiguousPackage
}

func selectTarget(pkg *Package, sel CrateSelector) (Target, TargetKind, error) {
	switch {
	case sel.Example != "":
		return findTarget(pkg, string(TargetKindExample), sel.Example, TargetKindExample)
	case sel.Bin != "":
		return findTarget(pkg, string(TargetKindBin), sel.Bin, TargetKindBin)
	}

	var bins []Target
	for _, t := range pkg.Targets {
		if t.Is(string(TargetKindBin)) {
			if t.Name == pkg.Name {
				return t, TargetKindBin, nil
			}
			bins = append(bins, t)
		}
	}
	if len(bins) == 1 {
		return bins[0], TargetKindBin, nil
	}

	for _, t := range pkg.Targets {
		if t.Is(string(TargetKindLib)) || t.Is("cdylib") || t.Is("staticlib") {
			return t, TargetKindLib, nil
		}
	}
	return Target{}, "", zerr.With(ErrTargetNotFound, "package", pkg.Name)
}

func findTarget(pkg *Package, kind, name string, as TargetKind) (Target, TargetKind, error) {
	for _, t := range pkg.Targets {
		if t.Name == name && t.Is(kind) {
			return t, as, nil
		}
	}
	return Target{}, "", zerr.With(zerr.With(ErrTargetNotFound, "package", pkg.Name), kind, name)
}
