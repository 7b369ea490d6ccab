// Package config holds the explicit, by-value setup structs the core's
// scoring functions and grid builders are configured with. This replaces
// the original design's implicit control flow through global named
// parameter sections (SPEC_FULL.md section 1, "Configuration"; section 9
// design note "Implicit control flow through global parameter sources").
package config

// VdwSetup configures sf.VdwSF. Field names and defaults match the
// original RbtVdwSF parameter names (_USE_4_8, _USE_TRIPOS, _RMAX, _ECUT,
// _E0).
type VdwSetup struct {
	Use4_8    bool    // true = 4-8 potential; false = 6-12
	UseTripos bool    // true = Tripos 5.2 well depths; false = GOLD well depths
	RMax      float64 // maximum range as a multiple of rmin
	ECut      float64 // energy cutoff for the quadratic transition, as a multiple of well depth
	E0        float64 // energy at zero distance, as a multiple of ECut
}

// DefaultVdwSetup matches the original RbtVdwSF constructor defaults.
func DefaultVdwSetup() VdwSetup {
	return VdwSetup{Use4_8: true, UseTripos: false, RMax: 1.5, ECut: 1.0, E0: 1.5}
}

// HHSSetup configures sf.HHSSolvationSF.
type HHSSetup struct {
	ProbeRadius float64 // solvent probe radius, r_s
}

// DefaultHHSSetup matches the HHS paper's r_s = 0.6 Angstrom.
func DefaultHHSSetup() HHSSetup {
	return HHSSetup{ProbeRadius: 0.6}
}

// DihedralSetup configures sf.DihedralSF.
type DihedralSetup struct {
	// DefaultK is the fallback force constant used when a type-pair lookup
	// (by central pair, then by outer pair with wildcards) misses.
	DefaultK float64
}

// DefaultDihedralSetup supplies a conservative zero-energy fallback.
func DefaultDihedralSetup() DihedralSetup {
	return DihedralSetup{DefaultK: 0.0}
}

// GridSetup configures base grid construction defaults shared by
// cavity/site mapping.
type GridSetup struct {
	Tolerance float64 // equality tolerance used by RealGrid comparisons
}

// DefaultGridSetup matches the original's typical 1e-6 tolerance.
func DefaultGridSetup() GridSetup {
	return GridSetup{Tolerance: 1e-6}
}

// SiteMapperSetup configures site.SphereSiteMapper / site.LigandSiteMapper.
type SiteMapperSetup struct {
	GridStep    float64 // cell size of the working grid, Angstrom
	Radius      float64 // small probe radius
	LargeRadius float64 // large probe radius (distinguishes cavity from bulk solvent)
	MinVolume   int     // minimum peak volume, in grid cells
	MaxCavities int     // truncate the sorted cavity list to this many
}

// DefaultSiteMapperSetup mirrors the original rDock defaults (small probe
// 1.5 A water radius, large probe 4.0 A "cavity detection" radius).
func DefaultSiteMapperSetup() SiteMapperSetup {
	return SiteMapperSetup{GridStep: 0.5, Radius: 1.5, LargeRadius: 4.0, MinVolume: 5, MaxCavities: 10}
}

// PartitionSetup configures the vdW/HHS shared two-tier partitioning of
// section 4.8.
type PartitionSetup struct {
	Distance float64 // partition radius; 0 resets to the full list
}
