package fileio

import (
	"bufio"
	"io"
	"strings"

	"github.com/rxdock/rxdock-sub002/dockerr"
	"github.com/rxdock/rxdock-sub002/elem"
)

// ReadParamFile parses an `RBT_PARAMETER_FILE_V1.00` deck: a header line,
// TITLE, VERSION, then `SECTION name`...`END_SECTION` blocks of `key
// value` lines (spec.md section 6, "Parameter files").
func ReadParamFile(r io.Reader) (*elem.ParamFile, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	if !sc.Scan() {
		return nil, dockerr.New(dockerr.ParseFailure, "parameter file: empty")
	}
	header := strings.TrimSpace(sc.Text())
	if !strings.HasPrefix(header, "RBT_PARAMETER_FILE") {
		return nil, dockerr.New(dockerr.ParseFailure, "parameter file: bad header %q", header)
	}

	pf := elem.NewParamFile()
	var section *elem.Section

	for sc.Scan() {
		trimmed := strings.TrimSpace(sc.Text())
		if trimmed == "" {
			continue
		}
		f := strings.Fields(trimmed)
		switch {
		case f[0] == "TITLE":
			pf.Title = strings.TrimSpace(strings.TrimPrefix(trimmed, "TITLE"))
		case f[0] == "VERSION":
			pf.Version = strings.TrimSpace(strings.TrimPrefix(trimmed, "VERSION"))
		case f[0] == "SECTION":
			if len(f) < 2 {
				return nil, dockerr.New(dockerr.ParseFailure, "parameter file: SECTION missing name")
			}
			section = &elem.Section{Name: f[1], Values: make(map[string]string)}
		case f[0] == "END_SECTION":
			if section == nil {
				return nil, dockerr.New(dockerr.ParseFailure, "parameter file: END_SECTION without SECTION")
			}
			pf.AddSection(*section)
			section = nil
		default:
			if section == nil {
				continue
			}
			if len(f) < 2 {
				return nil, dockerr.New(dockerr.ParseFailure, "parameter file: key without value: %q", trimmed)
			}
			section.Values[f[0]] = strings.Join(f[1:], " ")
		}
	}
	if err := sc.Err(); err != nil {
		return nil, dockerr.New(dockerr.ParseFailure, "parameter file: read failure: %v", err)
	}
	return pf, nil
}
