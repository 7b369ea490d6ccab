package fileio

import (
	"strings"
	"testing"

	"github.com/cpmech/gosl/chk"
)

const elementFixture = `TITLE element catalog
VERSION 1.0
HBOND_RADIUS_INCREMENT 0.0
IMPLICIT_RADIUS_INCREMENT 0.2
ELEMENT 6 C 1 4 4 12.011 1.70
ELEMENT 7 N 1 4 3 14.007 1.55
`

func TestReadElementFile(tst *testing.T) {
	cat, err := ReadElementFile(strings.NewReader(elementFixture))
	if err != nil {
		tst.Fatalf("ReadElementFile: %v", err)
	}
	if cat.Title != "element catalog" || cat.Version != "1.0" {
		tst.Fatalf("unexpected title/version: %q %q", cat.Title, cat.Version)
	}
	chk.Float64(tst, "implicit radius increment", 1e-9, cat.ImplicitRadiusIncrement, 0.2)

	c, err := cat.ByName("C")
	if err != nil {
		tst.Fatalf("ByName(C): %v", err)
	}
	if c.AtomicNo != 6 {
		tst.Fatalf("expected atomic no 6, got %d", c.AtomicNo)
	}
	chk.Float64(tst, "C vdw radius", 1e-9, c.VdwRadius, 1.70)

	n, err := cat.ByAtomicNo(7)
	if err != nil {
		tst.Fatalf("ByAtomicNo(7): %v", err)
	}
	if n.Name != "N" {
		tst.Fatalf("expected N, got %q", n.Name)
	}
}
