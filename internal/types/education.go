package types

import "strings"

// EducationLevel is the ordinal education scale used by the deterministic
// education axis. The zero value means the level is unknown.
type EducationLevel string

// Education levels, lowest to highest.
const (
	EducationUnknown   EducationLevel = ""
	EducationNone      EducationLevel = "none"
	EducationDiploma   EducationLevel = "diploma"
	EducationBachelor  EducationLevel = "bachelor"
	EducationMaster    EducationLevel = "master"
	EducationDoctorate EducationLevel = "doctorate"
)

// educationRank maps each level to its ordinal position.
var educationRank = map[EducationLevel]int{
	EducationNone:      0,
	EducationDiploma:   1,
	EducationBachelor:  2,
	EducationMaster:    3,
	EducationDoctorate: 4,
}

// Rank returns the ordinal position of the level, or -1 when unknown.
func (l EducationLevel) Rank() int {
	rank, ok := educationRank[l]
	if !ok {
		return -1
	}
	return rank
}

// Known reports whether the level is one of the defined ordinals.
func (l EducationLevel) Known() bool {
	return l.Rank() >= 0
}

// ParseEducationLevel maps a free-form degree word to an EducationLevel.
// Unrecognized input yields EducationUnknown.
func ParseEducationLevel(s string) EducationLevel {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "none":
		return EducationNone
	case "diploma", "diplome", "certificate", "high school":
		return EducationDiploma
	case "bachelor", "bachelors", "licence", "bsc", "ba", "degree":
		return EducationBachelor
	case "master", "masters", "msc", "mba", "ma":
		return EducationMaster
	case "doctorate", "doctorat", "phd", "dphil":
		return EducationDoctorate
	default:
		return EducationUnknown
	}
}
