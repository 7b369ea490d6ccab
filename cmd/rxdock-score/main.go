// Command rxdock-score is a thin CLI entry point wiring fileio -> model ->
// site -> sf (SPEC_FULL.md section 3.9): it loads a receptor and a ligand,
// maps the ligand-centered cavity, scores the ligand's atoms against the
// receptor atoms within that cavity's border with the vdW and HHS
// solvation terms, and prints the total.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/cpmech/gosl/utl"

	"github.com/rxdock/rxdock-sub002/config"
	"github.com/rxdock/rxdock-sub002/dockerr"
	"github.com/rxdock/rxdock-sub002/elem"
	"github.com/rxdock/rxdock-sub002/fileio"
	"github.com/rxdock/rxdock-sub002/model"
	"github.com/rxdock/rxdock-sub002/sf"
	"github.com/rxdock/rxdock-sub002/site"
)

var (
	receptorPath   = flag.String("receptor", "", "receptor coordinate file")
	receptorFormat = flag.String("receptor-format", "pdb", "receptor file format: mol2|pdb|sdf|psf|crd")
	ligandPath     = flag.String("ligand", "", "ligand coordinate file")
	ligandFormat   = flag.String("ligand-format", "mol2", "ligand file format: mol2|pdb|sdf|psf|crd")
	paramsPath     = flag.String("params", "", "optional VDW/SOLVATION parameter file (RBT_PARAMETER_FILE_V1.00)")
	border         = flag.Float64("border", 6.0, "cavity border distance, Angstrom")
)

func main() {
	defer func() {
		if err := recover(); err != nil {
			utl.PfRed("ERROR: %v\n", err)
			os.Exit(1)
		}
	}()

	utl.PfWhite("\nrxdock-score -- docking scoring-function core\n\n")

	flag.Parse()
	if *receptorPath == "" || *ligandPath == "" {
		utl.Panic("Please provide -receptor and -ligand files.\n")
	}

	logger, err := dockerr.NewZapLogger()
	if err != nil {
		utl.Panic("could not start logger: %v\n", err)
	}

	receptor, err := readOneModel(*receptorPath, *receptorFormat)
	if err != nil {
		utl.Panic("reading receptor: %v\n", err)
	}
	ligand, err := readOneModel(*ligandPath, *ligandFormat)
	if err != nil {
		utl.Panic("reading ligand: %v\n", err)
	}
	logger.Infof("loaded receptor (%d atoms) and ligand (%d atoms)", len(receptor.Atoms()), len(ligand.Atoms()))

	cfg := config.DefaultSiteMapperSetup()
	cavities := site.NewLigandSiteMapper(cfg).MapSite(receptor.Atoms(), ligand.Atoms())
	if len(cavities) == 0 {
		utl.Panic("no cavity found around ligand\n")
	}
	docksite := site.NewDockingSite(cavities, *border)

	nearby, err := docksite.GetAtomList(receptor.Atoms(), 0, *border)
	if err != nil {
		utl.Panic("selecting receptor atoms near cavity: %v\n", err)
	}
	logger.Infof("%d receptor atoms within %.1f A of the cavity", len(nearby), *border)

	vdwParams, hhsParams := emptyParamTables()
	if *paramsPath != "" {
		vdwParams, hhsParams, err = loadParamTables(*paramsPath)
		if err != nil {
			utl.Panic("loading parameter file: %v\n", err)
		}
	} else {
		logger.Warnf("no -params file given; vdW/HHS parameters default to zero")
	}

	vdw := sf.NewVdwSF(config.DefaultVdwSetup(), vdwParams)
	hhs := sf.NewHHSSolvationSF(config.DefaultHHSSetup(), hhsParams)

	vdwScore := vdw.Score(ligand.Atoms(), nearby)
	hhsScore := hhs.Score(ligand.Atoms(), nearby)

	utl.Pf("vdW score:  %12.4f\n", vdwScore)
	utl.Pf("HHS score:  %12.4f\n", hhsScore)
	utl.PfWhite("total:      %12.4f\n", vdwScore+hhsScore)
}

// readOneModel opens path, parses it with the reader for format, and
// returns its first model. Fails with ParseFailure if the file yields no
// model.
func readOneModel(path, format string) (*model.Model, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, dockerr.New(dockerr.ParseFailure, "open %s: %v", path, err)
	}
	defer f.Close()

	src, err := newSource(f, format)
	if err != nil {
		return nil, err
	}
	models, err := src.ReadModels()
	if err != nil {
		return nil, err
	}
	if len(models) == 0 {
		return nil, dockerr.New(dockerr.ParseFailure, "%s: no model found", path)
	}
	return models[0], nil
}

func newSource(f *os.File, format string) (fileio.Source, error) {
	switch format {
	case "mol2":
		return fileio.NewMOL2Reader(f), nil
	case "pdb":
		return fileio.NewPDBReader(f), nil
	case "sdf":
		return fileio.NewSDFReader(f, nil), nil
	case "psf":
		return fileio.NewPSFReader(f), nil
	case "crd":
		return fileio.NewCRDReader(f), nil
	default:
		return nil, dockerr.New(dockerr.BadArgument, "unknown format %q", format)
	}
}

func emptyParamTables() (sf.VdwParamTable, sf.HHSParamTable) {
	return make(sf.VdwParamTable), make(sf.HHSParamTable)
}

// loadParamTables builds VdwParamTable/HHSParamTable from a parameter
// file's VDW/SOLVATION sections. Keys are "FIELD:TriposOrHHSTypeName" (e.g.
// "RADIUS:C.3", "SIGMA:O_sp3") -- a colon separator is used, rather than
// the dot convention of Tripos type names themselves (e.g. "C.ar.H1"),
// so the field prefix can always be split off unambiguously. This is this
// CLI's own loading convention layered on top of the shared
// fileio.ReadParamFile/elem.Section machinery, not a restatement of the
// original rDock prm grammar.
func loadParamTables(path string) (sf.VdwParamTable, sf.HHSParamTable, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, dockerr.New(dockerr.ParseFailure, "open %s: %v", path, err)
	}
	defer f.Close()

	pf, err := fileio.ReadParamFile(f)
	if err != nil {
		return nil, nil, err
	}

	vdwParams := make(sf.VdwParamTable)
	if vdwSec, err := pf.Section("VDW"); err == nil {
		for key, raw := range vdwSec.Values {
			field, typeName, ok := splitFieldKey(key)
			if !ok {
				continue
			}
			t := elem.Str2Type(typeName)
			p := vdwParams[t]
			v := parseFloatOrZero(raw)
			switch field {
			case "RADIUS":
				p.Radius = v
			case "IONPOT":
				p.IonPot = v
			case "POLAR":
				p.Polar = v
			}
			vdwParams[t] = p
		}
	}

	hhsParams := make(sf.HHSParamTable)
	if hhsSec, err := pf.Section("SOLVATION"); err == nil {
		for key, raw := range hhsSec.Values {
			field, typeName, ok := splitFieldKey(key)
			if !ok {
				continue
			}
			t := elem.Str2HHSType(typeName)
			p := hhsParams[t]
			v := parseFloatOrZero(raw)
			switch field {
			case "P":
				p.P = v
			case "R":
				p.R = v
			case "SIGMA":
				p.Sigma = v
			}
			hhsParams[t] = p
		}
	}

	return vdwParams, hhsParams, nil
}

func splitFieldKey(key string) (field, typeName string, ok bool) {
	for i := 0; i < len(key); i++ {
		if key[i] == ':' {
			return key[:i], key[i+1:], true
		}
	}
	return "", "", false
}

func parseFloatOrZero(s string) float64 {
	var v float64
	if _, err := fmt.Sscanf(s, "%g", &v); err != nil {
		return 0
	}
	return v
}
