package fileio

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/rxdock/rxdock-sub002/dockerr"
	"github.com/rxdock/rxdock-sub002/geom"
	"github.com/rxdock/rxdock-sub002/model"
)

// CRDReader reads a CHARMM CRD coordinate file: starred title lines, a
// count line, then whitespace-delimited atom lines (id, subunitId,
// subunitName, name, x, y, z, segmentName, subunitAltId) (spec.md
// section 6, "CRD").
type CRDReader struct {
	r io.Reader
}

// NewCRDReader wraps r.
func NewCRDReader(r io.Reader) *CRDReader { return &CRDReader{r: r} }

func (src *CRDReader) ReadModels() ([]*model.Model, error) {
	sc := bufio.NewScanner(src.r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	m := model.NewModel()
	sawCount := false

	for sc.Scan() {
		line := sc.Text()
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		if strings.HasPrefix(trimmed, "*") {
			title := strings.TrimSpace(strings.TrimPrefix(trimmed, "*"))
			if title != "" {
				m.Titles = append(m.Titles, title)
			}
			continue
		}
		if !sawCount {
			sawCount = true
			continue // the count line itself carries no per-atom data we need
		}
		if err := parseCRDAtomLine(m, trimmed); err != nil {
			return nil, err
		}
	}
	if err := sc.Err(); err != nil {
		return nil, dockerr.New(dockerr.ParseFailure, "crd: read failure: %v", err)
	}
	return []*model.Model{m}, nil
}

func parseCRDAtomLine(m *model.Model, line string) error {
	f := strings.Fields(line)
	if len(f) < 7 {
		return dockerr.New(dockerr.ParseFailure, "crd atom line: need >= 7 fields, got %d: %q", len(f), line)
	}
	x, e1 := strconv.ParseFloat(f[4], 64)
	y, e2 := strconv.ParseFloat(f[5], 64)
	z, e3 := strconv.ParseFloat(f[6], 64)
	if e1 != nil || e2 != nil || e3 != nil {
		return dockerr.New(dockerr.ParseFailure, "crd atom coords: %q", line)
	}
	a := m.AddAtom()
	a.SubunitID = f[1]
	a.SubunitName = f[2]
	a.Name = f[3]
	a.Coord = geom.New(x, y, z)
	if len(f) >= 8 {
		a.SegmentName = f[7]
	}
	return nil
}
