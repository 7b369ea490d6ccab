package fileio

import (
	"strings"
	"testing"

	"github.com/cpmech/gosl/chk"
)

const paramFixture = `RBT_PARAMETER_FILE_V1.00
TITLE vdw parameters
VERSION 1.0
SECTION VDW
RADIUS_INCR 0.5
E1 0.15
END_SECTION
SECTION SOLVATION
P 0.2
END_SECTION
`

func TestReadParamFile(tst *testing.T) {
	pf, err := ReadParamFile(strings.NewReader(paramFixture))
	if err != nil {
		tst.Fatalf("ReadParamFile: %v", err)
	}
	if pf.Title != "vdw parameters" || pf.Version != "1.0" {
		tst.Fatalf("unexpected title/version: %q %q", pf.Title, pf.Version)
	}
	sec, err := pf.Section("VDW")
	if err != nil {
		tst.Fatalf("Section(VDW): %v", err)
	}
	e1, err := sec.Float("E1")
	if err != nil {
		tst.Fatalf("Float(E1): %v", err)
	}
	chk.Float64(tst, "E1", 1e-9, e1, 0.15)

	if !sec.Has("RADIUS_INCR") {
		tst.Fatalf("expected RADIUS_INCR present")
	}

	if _, err := pf.Section("SOLVATION"); err != nil {
		tst.Fatalf("Section(SOLVATION): %v", err)
	}
	if _, err := pf.Section("MISSING"); err == nil {
		tst.Fatalf("expected error for missing section")
	}
}

func TestReadParamFileRejectsBadHeader(tst *testing.T) {
	if _, err := ReadParamFile(strings.NewReader("NOT_A_PARAM_FILE\n")); err == nil {
		tst.Fatalf("expected error for bad header")
	}
}
