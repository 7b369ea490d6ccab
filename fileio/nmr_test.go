package fileio

import (
	"strings"
	"testing"

	"github.com/cpmech/gosl/chk"
)

const nmrFixture = `# comment line
A:LIG_1:H1 B:LIG_2:H2 3.5
STD (A:LIG_1:H1,A:LIG_1:H2) 4.0
A:LIG_1:H3,A:LIG_1:H4 [B:LIG_2:H5] 5.0
`

func TestReadNMRRestraintFile(tst *testing.T) {
	r, err := ReadNMRRestraintFile(strings.NewReader(nmrFixture))
	if err != nil {
		tst.Fatalf("ReadNMRRestraintFile: %v", err)
	}
	if len(r.NOE) != 2 {
		tst.Fatalf("expected 2 NOE restraints, got %d", len(r.NOE))
	}
	if len(r.STD) != 1 {
		tst.Fatalf("expected 1 STD restraint, got %d", len(r.STD))
	}

	first := r.NOE[0]
	chk.Float64(tst, "first maxDist", 1e-9, first.MaxDist, 3.5)
	if first.Atoms1.Mode != AtomListOR || len(first.Atoms1.Names) != 1 {
		tst.Fatalf("unexpected atoms1: %+v", first.Atoms1)
	}
	spec := first.Atoms1.Names[0]
	if spec.Segment != "A" || spec.SubunitName != "LIG" || spec.SubunitID != "1" || spec.AtomName != "H1" {
		tst.Fatalf("unexpected spec: %+v", spec)
	}

	std := r.STD[0]
	chk.Float64(tst, "std maxDist", 1e-9, std.MaxDist, 4.0)
	if std.Atoms.Mode != AtomListMean || len(std.Atoms.Names) != 2 {
		tst.Fatalf("unexpected std atoms: %+v", std.Atoms)
	}

	second := r.NOE[1]
	if second.Atoms1.Mode != AtomListOR || len(second.Atoms1.Names) != 2 {
		tst.Fatalf("unexpected second.Atoms1: %+v", second.Atoms1)
	}
	if second.Atoms2.Mode != AtomListAND || len(second.Atoms2.Names) != 1 {
		tst.Fatalf("unexpected second.Atoms2: %+v", second.Atoms2)
	}
}

func TestParseAtomList(tst *testing.T) {
	or := parseAtomList("A:LIG_1:H1,A:LIG_1:H2")
	if or.Mode != AtomListOR || len(or.Names) != 2 {
		tst.Fatalf("unexpected OR list: %+v", or)
	}
	and := parseAtomList("[A:LIG_1:H1]")
	if and.Mode != AtomListAND || len(and.Names) != 1 {
		tst.Fatalf("unexpected AND list: %+v", and)
	}
	mean := parseAtomList("(A:LIG_1:H1,A:LIG_1:H2)")
	if mean.Mode != AtomListMean || len(mean.Names) != 2 {
		tst.Fatalf("unexpected MEAN list: %+v", mean)
	}
}
