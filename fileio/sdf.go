package fileio

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/rxdock/rxdock-sub002/dockerr"
	"github.com/rxdock/rxdock-sub002/elem"
	"github.com/rxdock/rxdock-sub002/geom"
	"github.com/rxdock/rxdock-sub002/model"
)

// SDFReader reads V2000-style SD/MOL records; ReadModels returns one model
// per record in the stream. Each record is a title line, two metadata lines, a counts line, an atom block, a bond
// block, and trailing `>` data fields up to a `$$$$` terminator (spec.md
// section 6, "SD/MOL").
type SDFReader struct {
	r        io.Reader
	elements *elem.Catalog // optional, used to resolve AtomicNo by symbol
}

// NewSDFReader wraps r. elements may be nil; when non-nil, atom symbols
// are resolved against it to fill AtomicNo/VdwRadius.
func NewSDFReader(r io.Reader, elements *elem.Catalog) *SDFReader {
	return &SDFReader{r: r, elements: elements}
}

// sdfChargeCode maps a non-zero charge column code to a formal charge
// (section 6: "non-zero codes map to +-1,+-2,+-3 via code==0 ? 0 : 4-code").
func sdfChargeCode(code int) int {
	if code == 0 {
		return 0
	}
	return 4 - code
}

func (src *SDFReader) ReadModels() ([]*model.Model, error) {
	sc := bufio.NewScanner(src.r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	var models []*model.Model
	for {
		m, ok, err := src.readOneRecord(sc)
		if err != nil {
			return nil, err
		}
		if !ok {
			break
		}
		models = append(models, m)
	}
	if err := sc.Err(); err != nil {
		return nil, dockerr.New(dockerr.ParseFailure, "sdf: read failure: %v", err)
	}
	return models, nil
}

func (src *SDFReader) readOneRecord(sc *bufio.Scanner) (*model.Model, bool, error) {
	if !sc.Scan() {
		return nil, false, nil
	}
	title := strings.TrimSpace(sc.Text())
	if !sc.Scan() {
		return nil, false, dockerr.New(dockerr.ParseFailure, "sdf: truncated record after title")
	}
	if !sc.Scan() { // comment line
		return nil, false, dockerr.New(dockerr.ParseFailure, "sdf: truncated record, no comment line")
	}
	if !sc.Scan() {
		return nil, false, dockerr.New(dockerr.ParseFailure, "sdf: truncated record, no counts line")
	}
	counts := sc.Text()
	if len(counts) < 6 {
		return nil, false, dockerr.New(dockerr.ParseFailure, "sdf: counts line too short: %q", counts)
	}
	nAtoms, err := strconv.Atoi(strings.TrimSpace(counts[0:3]))
	if err != nil {
		return nil, false, dockerr.New(dockerr.ParseFailure, "sdf: bad atom count %q", counts[0:3])
	}
	nBonds, err := strconv.Atoi(strings.TrimSpace(counts[3:6]))
	if err != nil {
		return nil, false, dockerr.New(dockerr.ParseFailure, "sdf: bad bond count %q", counts[3:6])
	}

	m := model.NewModel()
	m.Titles = append(m.Titles, title)
	atoms := make([]*model.Atom, 0, nAtoms)

	for i := 0; i < nAtoms; i++ {
		if !sc.Scan() {
			return nil, false, dockerr.New(dockerr.ParseFailure, "sdf: truncated atom block")
		}
		f := strings.Fields(sc.Text())
		if len(f) < 4 {
			return nil, false, dockerr.New(dockerr.ParseFailure, "sdf: atom line needs >= 4 fields: %q", sc.Text())
		}
		x, e1 := strconv.ParseFloat(f[0], 64)
		y, e2 := strconv.ParseFloat(f[1], 64)
		z, e3 := strconv.ParseFloat(f[2], 64)
		if e1 != nil || e2 != nil || e3 != nil {
			return nil, false, dockerr.New(dockerr.ParseFailure, "sdf: bad atom coords: %q", sc.Text())
		}
		a := m.AddAtom()
		a.Coord = geom.New(x, y, z)
		a.Name = f[3]
		if src.elements != nil {
			if d, err := src.elements.ByName(f[3]); err == nil {
				a.AtomicNo = d.AtomicNo
				a.VdwRadius = d.VdwRadius
				a.AtomicMass = d.Mass
			}
		}
		if len(f) >= 6 {
			if code, err := strconv.Atoi(f[5]); err == nil {
				a.FormalCharge = sdfChargeCode(code)
			}
		}
		atoms = append(atoms, a)
	}

	for i := 0; i < nBonds; i++ {
		if !sc.Scan() {
			return nil, false, dockerr.New(dockerr.ParseFailure, "sdf: truncated bond block")
		}
		f := strings.Fields(sc.Text())
		if len(f) < 3 {
			return nil, false, dockerr.New(dockerr.ParseFailure, "sdf: bond line needs >= 3 fields: %q", sc.Text())
		}
		ai, e1 := strconv.Atoi(f[0])
		bi, e2 := strconv.Atoi(f[1])
		order, e3 := strconv.Atoi(f[2])
		if e1 != nil || e2 != nil || e3 != nil || ai < 1 || ai > len(atoms) || bi < 1 || bi > len(atoms) {
			return nil, false, dockerr.New(dockerr.ParseFailure, "sdf: bad bond record: %q", sc.Text())
		}
		if _, err := m.AddBond(atoms[ai-1], atoms[bi-1], order); err != nil {
			return nil, false, dockerr.New(dockerr.ParseFailure, "sdf: %v", err)
		}
	}

	if err := readSDFDataFields(sc, m); err != nil {
		return nil, false, err
	}
	return m, true, nil
}

// readSDFDataFields consumes `> <Name>` / value / blank-line groups up to
// the `$$$$` record terminator (section 6, "data fields following `>`").
func readSDFDataFields(sc *bufio.Scanner, m *model.Model) error {
	var currentKey string
	var values []string
	flush := func() {
		if currentKey != "" {
			m.SetData(currentKey, strings.Join(values, "|"))
		}
		currentKey = ""
		values = nil
	}
	for sc.Scan() {
		line := sc.Text()
		trimmed := strings.TrimSpace(line)
		if trimmed == "$$$$" {
			flush()
			return nil
		}
		if strings.HasPrefix(trimmed, ">") {
			flush()
			start := strings.Index(trimmed, "<")
			end := strings.LastIndex(trimmed, ">")
			if start >= 0 && end > start {
				currentKey = trimmed[start+1 : end]
			}
			continue
		}
		if trimmed == "" {
			continue
		}
		values = append(values, trimmed)
	}
	flush()
	return nil
}
