package fileio

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/rxdock/rxdock-sub002/dockerr"
	"github.com/rxdock/rxdock-sub002/model"
)

// PSFReader reads a CHARMM/PSF deck: a `!NTITLE` title block, an
// `!NATOM` atom block, and an `!NBOND:`/`!NBONDS:` bond block with four
// pairs per line (spec.md section 6, "CHARMM/PSF").
type PSFReader struct {
	r io.Reader
}

// NewPSFReader wraps r.
func NewPSFReader(r io.Reader) *PSFReader { return &PSFReader{r: r} }

func (src *PSFReader) ReadModels() ([]*model.Model, error) {
	sc := bufio.NewScanner(src.r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	m := model.NewModel()
	var atoms []*model.Atom

	section := ""
	remaining := 0

	for sc.Scan() {
		line := sc.Text()
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}

		if strings.Contains(trimmed, "!NTITLE") {
			section = "title"
			remaining = headerCount(trimmed)
			continue
		}
		if strings.Contains(trimmed, "!NATOM") {
			section = "atom"
			remaining = headerCount(trimmed)
			continue
		}
		if strings.Contains(trimmed, "!NBOND") {
			section = "bond"
			remaining = headerCount(trimmed)
			continue
		}

		switch section {
		case "title":
			m.Titles = append(m.Titles, strings.TrimPrefix(trimmed, "REMARKS "))
			remaining--
		case "atom":
			if remaining <= 0 {
				continue
			}
			a, err := parsePSFAtomLine(m, trimmed)
			if err != nil {
				return nil, err
			}
			atoms = append(atoms, a)
			remaining--
		case "bond":
			if remaining <= 0 {
				continue
			}
			n, err := parsePSFBondLine(m, atoms, trimmed)
			if err != nil {
				return nil, err
			}
			remaining -= n
		}
	}
	if err := sc.Err(); err != nil {
		return nil, dockerr.New(dockerr.ParseFailure, "psf: read failure: %v", err)
	}
	return []*model.Model{m}, nil
}

// headerCount extracts the leading integer of a PSF section header line
// (e.g. "      42 !NATOM").
func headerCount(line string) int {
	f := strings.Fields(line)
	if len(f) == 0 {
		return 0
	}
	n, _ := strconv.Atoi(f[0])
	return n
}

func parsePSFAtomLine(m *model.Model, line string) (*model.Atom, error) {
	f := strings.Fields(line)
	if len(f) < 8 {
		return nil, dockerr.New(dockerr.ParseFailure, "psf ATOM record: need >= 8 fields, got %d: %q", len(f), line)
	}
	a := m.AddAtom()
	a.SegmentName = f[1]
	a.SubunitID = f[2]
	a.SubunitName = f[3]
	a.Name = f[4]
	a.FFType = f[5]
	if q, err := strconv.ParseFloat(f[6], 64); err == nil {
		a.PartialCharge = q
	}
	if mass, err := strconv.ParseFloat(f[7], 64); err == nil {
		a.AtomicMass = mass
	}
	return a, nil
}

// parsePSFBondLine parses one line of up to four (a,b) id pairs and
// returns how many bonds it contributed.
func parsePSFBondLine(m *model.Model, atoms []*model.Atom, line string) (int, error) {
	f := strings.Fields(line)
	if len(f)%2 != 0 {
		return 0, dockerr.New(dockerr.ParseFailure, "psf BOND record: odd field count: %q", line)
	}
	n := 0
	for i := 0; i+1 < len(f); i += 2 {
		ai, e1 := strconv.Atoi(f[i])
		bi, e2 := strconv.Atoi(f[i+1])
		if e1 != nil || e2 != nil || ai < 1 || ai > len(atoms) || bi < 1 || bi > len(atoms) {
			return n, dockerr.New(dockerr.ParseFailure, "psf BOND: bad atom id pair in %q", line)
		}
		if _, err := m.AddBond(atoms[ai-1], atoms[bi-1], 1); err != nil {
			return n, dockerr.New(dockerr.ParseFailure, "psf BOND: %v", err)
		}
		n++
	}
	return n, nil
}
