package fileio

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/rxdock/rxdock-sub002/dockerr"
	"github.com/rxdock/rxdock-sub002/elem"
)

// ReadElementFile parses an element catalog deck: text sections TITLE,
// VERSION, HBOND_RADIUS_INCREMENT, IMPLICIT_RADIUS_INCREMENT, then
// `ELEMENT atomicNo name minVal maxVal commonVal mass vdwRadius` records
// (spec.md section 6, "Element file").
func ReadElementFile(r io.Reader) (*elem.Catalog, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	cat := elem.NewCatalog()
	for sc.Scan() {
		trimmed := strings.TrimSpace(sc.Text())
		if trimmed == "" {
			continue
		}
		f := strings.Fields(trimmed)
		switch f[0] {
		case "TITLE":
			cat.Title = strings.TrimSpace(strings.TrimPrefix(trimmed, "TITLE"))
		case "VERSION":
			cat.Version = strings.TrimSpace(strings.TrimPrefix(trimmed, "VERSION"))
		case "HBOND_RADIUS_INCREMENT":
			if len(f) < 2 {
				return nil, dockerr.New(dockerr.ParseFailure, "element file: HBOND_RADIUS_INCREMENT missing value")
			}
			v, err := strconv.ParseFloat(f[1], 64)
			if err != nil {
				return nil, dockerr.New(dockerr.ParseFailure, "element file: HBOND_RADIUS_INCREMENT: %v", err)
			}
			cat.HBondRadiusIncrement = v
		case "IMPLICIT_RADIUS_INCREMENT":
			if len(f) < 2 {
				return nil, dockerr.New(dockerr.ParseFailure, "element file: IMPLICIT_RADIUS_INCREMENT missing value")
			}
			v, err := strconv.ParseFloat(f[1], 64)
			if err != nil {
				return nil, dockerr.New(dockerr.ParseFailure, "element file: IMPLICIT_RADIUS_INCREMENT: %v", err)
			}
			cat.ImplicitRadiusIncrement = v
		case "ELEMENT":
			d, err := parseElementRecord(f)
			if err != nil {
				return nil, err
			}
			cat.Add(d)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, dockerr.New(dockerr.ParseFailure, "element file: read failure: %v", err)
	}
	return cat, nil
}

func parseElementRecord(f []string) (elem.Data, error) {
	if len(f) < 8 {
		return elem.Data{}, dockerr.New(dockerr.ParseFailure, "ELEMENT record needs 8 fields, got %d", len(f))
	}
	atomicNo, e1 := strconv.Atoi(f[1])
	minVal, e2 := strconv.Atoi(f[3])
	maxVal, e3 := strconv.Atoi(f[4])
	commonVal, e4 := strconv.Atoi(f[5])
	mass, e5 := strconv.ParseFloat(f[6], 64)
	vdw, e6 := strconv.ParseFloat(f[7], 64)
	for _, e := range []error{e1, e2, e3, e4, e5, e6} {
		if e != nil {
			return elem.Data{}, dockerr.New(dockerr.ParseFailure, "ELEMENT record: %v", e)
		}
	}
	return elem.Data{
		AtomicNo: atomicNo, Name: f[2], MinVal: minVal, MaxVal: maxVal,
		CommonVal: commonVal, Mass: mass, VdwRadius: vdw,
	}, nil
}
