package catalog

// Stat indexes the nine junction stat bonuses at record offset 0x17.
type Stat int

const (
	StatHP Stat = iota
	StatStr
	StatVit
	StatMag
	StatSpr
	StatSpd
	StatEva
	StatHit
	StatLuck

	StatCount = 9
)

var statNames = [StatCount]string{"hp", "str", "vit", "mag", "spr", "spd", "eva", "hit", "luck"}

func (s Stat) String() string {
	if s >= 0 && s < StatCount {
		return statNames[s]
	}
	return "stat-invalid"
}

// GF indexes the 16 guardian force compatibility bytes at record offset 0x2A.
type GF int

const (
	GFQuezacotl GF = iota
	GFShiva
	GFIfrit
	GFSiren
	GFBrothers
	GFDiablos
	GFCarbuncle
	GFLeviathan
	GFPandemona
	GFCerberus
	GFAlexander
	GFDoomtrain
	GFBahamut
	GFCactuar
	GFTonberry
	GFEden

	GFCount = 16
)

var gfNames = [GFCount]string{
	"quezacotl", "shiva", "ifrit", "siren", "brothers", "diablos", "carbuncle", "leviathan",
	"pandemona", "cerberus", "alexander", "doomtrain", "bahamut", "cactuar", "tonberry", "eden",
}

func (g GF) String() string {
	if g >= 0 && g < GFCount {
		return gfNames[g]
	}
	return "gf-invalid"
}

// AllStats lists the junction stats in on-disk order.
func AllStats() []Stat {
	out := make([]Stat, StatCount)
	for i := range out {
		out[i] = Stat(i)
	}
	return out
}

// AllGFs lists the guardian forces in on-disk order.
func AllGFs() []GF {
	out := make([]GF, GFCount)
	for i := range out {
		out[i] = GF(i)
	}
	return out
}
