package elem

// HHSType enumerates the Hasel-Hendrickson-Still solvation atom types.
// Order matches the original RbtHHSType::eType.
type HHSType int

const (
	HHSUndefined HHSType = iota
	HHSCsp3
	HHSCHsp3
	HHSCH2sp3
	HHSCH3sp3
	HHSCsp2
	HHSCHsp2
	HHSCH2sp2
	HHSCsp2p
	HHSCar
	HHSCHar
	HHSCsp
	HHSCsp3P
	HHSCHsp3P
	HHSCH2sp3P
	HHSCH3sp3P
	HHSCsp2P
	HHSCHsp2P
	HHSCH2sp2P
	HHSCarP
	HHSCHarP
	HHSH
	HHSHO
	HHSHN
	HHSHNp
	HHSHS
	HHSOsp3
	HHSOHsp3
	HHSOW
	HHSOtri
	HHSOHtri
	HHSOsp2
	HHSON
	HHSOm
	HHSNsp3
	HHSNHsp3
	HHSNH2sp3
	HHSNsp3p
	HHSNtri
	HHSNHtri
	HHSNH2tri
	HHSNsp2
	HHSNsp2p
	HHSNar
	HHSNsp
	HHSSsp3
	HHSSsp2
	HHSP
	HHSF
	HHSCl
	HHSBr
	HHSI
	HHSMetal
	hhsMaxTypes
)

var hhsNames = [hhsMaxTypes]string{
	HHSUndefined: "UNDEFINED",
	HHSCsp3:      "C_sp3", HHSCHsp3: "CH_sp3", HHSCH2sp3: "CH2_sp3", HHSCH3sp3: "CH3_sp3",
	HHSCsp2: "C_sp2", HHSCHsp2: "CH_sp2", HHSCH2sp2: "CH2_sp2", HHSCsp2p: "C_sp2p",
	HHSCar: "C_ar", HHSCHar: "CH_ar",
	HHSCsp: "C_sp",
	HHSCsp3P:  "C_sp3_P", HHSCHsp3P: "CH_sp3_P", HHSCH2sp3P: "CH2_sp3_P", HHSCH3sp3P: "CH3_sp3_P",
	HHSCsp2P: "C_sp2_P", HHSCHsp2P: "CH_sp2_P", HHSCH2sp2P: "CH2_sp2_P",
	HHSCarP: "C_ar_P", HHSCHarP: "CH_ar_P",
	HHSH: "H", HHSHO: "HO", HHSHN: "HN", HHSHNp: "HNp", HHSHS: "HS",
	HHSOsp3: "O_sp3", HHSOHsp3: "OH_sp3", HHSOW: "OW", HHSOtri: "O_tri", HHSOHtri: "OH_tri",
	HHSOsp2: "O_sp2", HHSON: "ON", HHSOm: "Om",
	HHSNsp3: "N_sp3", HHSNHsp3: "NH_sp3", HHSNH2sp3: "NH2_sp3", HHSNsp3p: "N_sp3p",
	HHSNtri: "N_tri", HHSNHtri: "NH_tri", HHSNH2tri: "NH2_tri",
	HHSNsp2: "N_sp2", HHSNsp2p: "N_sp2p", HHSNar: "N_ar", HHSNsp: "N_sp",
	HHSSsp3: "S_sp3", HHSSsp2: "S_sp2",
	HHSP: "P",
	HHSF: "F", HHSCl: "Cl", HHSBr: "Br", HHSI: "I",
	HHSMetal: "Metal",
}

// Str2HHSType converts an HHS solvation type name to its enum value.
func Str2HHSType(name string) HHSType {
	for t, n := range hhsNames {
		if n == name {
			return HHSType(t)
		}
	}
	return HHSUndefined
}

// Type2Str converts an HHS solvation type to its canonical name.
func (t HHSType) Type2Str() string {
	if t < 0 || int(t) >= len(hhsNames) {
		return "UNDEFINED"
	}
	return hhsNames[t]
}

// HHS solvation constants from the Hasel-Hendrickson-Still paper, shared by
// the solvation typer and scoring function.
const (
	SolventProbeRadius = 0.6               // r_s
	SolventProbeDiam   = 2.0 * SolventProbeRadius // d_s
	Pij12              = 0.8875            // 1-2 connectivity correction
	Pij13              = 0.3516            // 1-3 connectivity correction
	Pij14              = 0.3156            // 1-4+ connectivity correction
)
