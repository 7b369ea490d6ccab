// Package elem holds the read-once, immutable catalogs the docking core is
// parameterized by: per-element data, Tripos-5.2 atom types, HHS solvation
// types, and generic named parameter sections loaded from parameter files
// (see SPEC_FULL.md section 3.2). Catalogs are pure lookup tables; nothing
// here depends on model or grid state.
package elem

// Hybrid is the hybridisation state of an atom, shared by the atom graph
// and every atom typer.
type Hybrid int

const (
	HybridUndefined Hybrid = iota
	HybridSP
	HybridSP2
	HybridSP3
	HybridArom
	HybridTri
)

func (h Hybrid) String() string {
	switch h {
	case HybridSP:
		return "SP"
	case HybridSP2:
		return "SP2"
	case HybridSP3:
		return "SP3"
	case HybridArom:
		return "AROM"
	case HybridTri:
		return "TRI"
	default:
		return "UNDEFINED"
	}
}

// TriposType enumerates the ~50 Tripos-5.2 force-field atom types. Order
// matches the original RbtTriposAtomType::eType so Str2Type/Type2Str table
// indices line up with the original parameter files.
type TriposType int

const (
	TriposUndefined TriposType = iota
	TriposAl
	TriposBr
	TriposCCat
	TriposC1
	TriposC1H1
	TriposC2
	TriposC2H1
	TriposC2H2
	TriposC3
	TriposC3H1
	TriposC3H2
	TriposC3H3
	TriposCAr
	TriposCArH1
	TriposCa
	TriposCl
	TriposDu
	TriposF
	TriposH
	TriposHP
	TriposI
	TriposK
	TriposLi
	TriposLP
	TriposN1
	TriposN2
	TriposN3
	TriposN4
	TriposNam
	TriposNar
	TriposNpl3
	TriposNa
	TriposO2
	TriposO3
	TriposOCo2
	TriposP3
	TriposS2
	TriposS3
	TriposSo
	TriposSo2
	TriposSi
	triposMaxTypes // keep last: sizes the name/info tables
)

type triposInfo struct {
	name     string
	atomicNo int
	hybrid   Hybrid
}

var triposTable = [triposMaxTypes]triposInfo{
	TriposUndefined: {"UNDEFINED", 0, HybridUndefined},
	TriposAl:        {"Al", 13, HybridUndefined},
	TriposBr:        {"Br", 35, HybridSP3},
	TriposCCat:      {"C.cat", 6, HybridSP2},
	TriposC1:        {"C.1", 6, HybridSP},
	TriposC1H1:      {"C.1.H1", 6, HybridSP},
	TriposC2:        {"C.2", 6, HybridSP2},
	TriposC2H1:      {"C.2.H1", 6, HybridSP2},
	TriposC2H2:      {"C.2.H2", 6, HybridSP2},
	TriposC3:        {"C.3", 6, HybridSP3},
	TriposC3H1:      {"C.3.H1", 6, HybridSP3},
	TriposC3H2:      {"C.3.H2", 6, HybridSP3},
	TriposC3H3:      {"C.3.H3", 6, HybridSP3},
	TriposCAr:       {"C.ar", 6, HybridArom},
	TriposCArH1:     {"C.ar.H1", 6, HybridArom},
	TriposCa:        {"Ca", 20, HybridUndefined},
	TriposCl:        {"Cl", 17, HybridSP3},
	TriposDu:        {"Du", 0, HybridUndefined},
	TriposF:         {"F", 9, HybridSP3},
	TriposH:         {"H", 1, HybridSP3},
	TriposHP:        {"H.P", 1, HybridSP3},
	TriposI:         {"I", 53, HybridSP3},
	TriposK:         {"K", 19, HybridUndefined},
	TriposLi:        {"Li", 3, HybridUndefined},
	TriposLP:        {"LP", 0, HybridUndefined},
	TriposN1:        {"N.1", 7, HybridSP},
	TriposN2:        {"N.2", 7, HybridSP2},
	TriposN3:        {"N.3", 7, HybridSP3},
	TriposN4:        {"N.4", 7, HybridSP3},
	TriposNam:       {"N.am", 7, HybridTri},
	TriposNar:       {"N.ar", 7, HybridArom},
	TriposNpl3:      {"N.pl3", 7, HybridTri},
	TriposNa:        {"Na", 11, HybridUndefined},
	TriposO2:        {"O.2", 8, HybridSP2},
	TriposO3:        {"O.3", 8, HybridSP3},
	TriposOCo2:      {"O.co2", 8, HybridSP2},
	TriposP3:        {"P.3", 15, HybridSP3},
	TriposS2:        {"S.2", 16, HybridSP2},
	TriposS3:        {"S.3", 16, HybridSP3},
	TriposSo:        {"S.o", 16, HybridSP2},
	TriposSo2:       {"S.o2", 16, HybridSP2},
	TriposSi:        {"Si", 14, HybridUndefined},
}

// Str2Type converts a Tripos type name (e.g. "C.3") to its enum value,
// returning TriposUndefined if unrecognised.
func Str2Type(name string) TriposType {
	for t, info := range triposTable {
		if info.name == name {
			return TriposType(t)
		}
	}
	return TriposUndefined
}

// Type2Str converts a Tripos enum value to its canonical string name.
func (t TriposType) Type2Str() string {
	if t < 0 || int(t) >= len(triposTable) {
		return "UNDEFINED"
	}
	return triposTable[t].name
}

// Type2Hybrid returns the hybridisation state implied by this Tripos type.
func (t TriposType) Type2Hybrid() Hybrid {
	if t < 0 || int(t) >= len(triposTable) {
		return HybridUndefined
	}
	return triposTable[t].hybrid
}

// Type2AtomicNo returns the atomic number implied by this Tripos type.
func (t TriposType) Type2AtomicNo() int {
	if t < 0 || int(t) >= len(triposTable) {
		return 0
	}
	return triposTable[t].atomicNo
}

// AllTriposTypes returns every defined Tripos type, UNDEFINED first, in
// canonical table order (NumTriposTypes entries).
func AllTriposTypes() []TriposType {
	out := make([]TriposType, triposMaxTypes)
	for i := range out {
		out[i] = TriposType(i)
	}
	return out
}

// NumTriposTypes is the size of the Tripos type table (MAXTYPES).
func NumTriposTypes() int { return int(triposMaxTypes) }
