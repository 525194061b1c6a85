package gamepath

import "strconv"

// Gender of a character model. NPC genders use separate model sets.
type Gender uint8

const (
	GenderUnknown Gender = iota
	GenderMale
	GenderFemale
	GenderMaleNpc
	GenderFemaleNpc
)

func (g Gender) String() string {
	switch g {
	case GenderMale:
		return "Male"
	case GenderFemale:
		return "Female"
	case GenderMaleNpc:
		return "MaleNpc"
	case GenderFemaleNpc:
		return "FemaleNpc"
	default:
		return "Unknown"
	}
}

// Name is the human readable form used in labels.
func (g Gender) Name() string {
	switch g {
	case GenderMale:
		return "Male"
	case GenderFemale:
		return "Female"
	case GenderMaleNpc:
		return "Male (NPC)"
	case GenderFemaleNpc:
		return "Female (NPC)"
	default:
		return "Unknown"
	}
}

// ModelRace is the playable race a model set was made for.
type ModelRace uint8

const (
	ModelRaceUnknown ModelRace = iota
	ModelRaceMidlander
	ModelRaceHighlander
	ModelRaceElezen
	ModelRaceLalafell
	ModelRaceMiqote
	ModelRaceRoegadyn
	ModelRaceAuRa
	ModelRaceHrothgar
	ModelRaceViera
)

func (r ModelRace) String() string {
	switch r {
	case ModelRaceMidlander:
		return "Midlander"
	case ModelRaceHighlander:
		return "Highlander"
	case ModelRaceElezen:
		return "Elezen"
	case ModelRaceLalafell:
		return "Lalafell"
	case ModelRaceMiqote:
		return "Miqote"
	case ModelRaceRoegadyn:
		return "Roegadyn"
	case ModelRaceAuRa:
		return "AuRa"
	case ModelRaceHrothgar:
		return "Hrothgar"
	case ModelRaceViera:
		return "Viera"
	default:
		return "Unknown"
	}
}

// Name is the human readable form used in labels.
func (r ModelRace) Name() string {
	switch r {
	case ModelRaceMiqote:
		return "Miqo'te"
	case ModelRaceAuRa:
		return "Au Ra"
	default:
		return r.String()
	}
}

// GenderRace packs gender and race as the 4-digit code used in model paths,
// e.g. 101 for "c0101" (Midlander male) or 1404 for "c1404" (Au Ra female NPC).
// Zero is unset.
type GenderRace uint16

// GenderRaceFromCode parses a 4-digit race code. Codes that do not name a known
// model set yield the zero value.
func GenderRaceFromCode(code string) GenderRace {
	n, err := strconv.ParseUint(code, 10, 16)
	if err != nil {
		return 0
	}
	gr := GenderRace(n)
	if g, r := gr.Split(); g == GenderUnknown || r == ModelRaceUnknown {
		if gr != 9104 && gr != 9204 {
			return 0
		}
	}
	return gr
}

// Split unpacks the code. The model set number is the hundreds part: odd sets are
// male, even sets female, paired per race. The last two digits select player (01)
// or NPC (04) models.
func (gr GenderRace) Split() (Gender, ModelRace) {
	set, kind := uint16(gr)/100, uint16(gr)%100
	npc := false
	switch kind {
	case 1:
	case 4:
		npc = true
	default:
		return GenderUnknown, ModelRaceUnknown
	}

	gender := GenderUnknown
	switch {
	case set == 91:
		gender = GenderMale
	case set == 92:
		gender = GenderFemale
	case set >= 1 && set <= 18 && set%2 == 1:
		gender = GenderMale
	case set >= 1 && set <= 18:
		gender = GenderFemale
	default:
		return GenderUnknown, ModelRaceUnknown
	}
	if npc {
		gender += GenderMaleNpc - GenderMale
	}

	race := ModelRaceUnknown
	switch (set + 1) / 2 {
	case 1:
		race = ModelRaceMidlander
	case 2:
		race = ModelRaceHighlander
	case 3:
		race = ModelRaceElezen
	case 4:
		race = ModelRaceMiqote
	case 5:
		race = ModelRaceRoegadyn
	case 6:
		race = ModelRaceLalafell
	case 7:
		race = ModelRaceAuRa
	case 8:
		race = ModelRaceHrothgar
	case 9:
		race = ModelRaceViera
	}
	return gender, race
}

// Code formats the value back into its 4-digit form.
func (gr GenderRace) Code() string {
	s := strconv.FormatUint(uint64(gr), 10)
	for len(s) < 4 {
		s = "0" + s
	}
	return s
}
