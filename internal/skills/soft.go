package skills

import "strings"

// softSkillKeywords flag requirement tokens that describe behavioural
// qualities rather than hard skills. These are scored by the semantic
// component, not the deterministic skills axis.
var softSkillKeywords = []string{
	"ponctualite", "punctuality", "punctual",
	"autonomie", "autonomy", "autonomous",
	"leadership", "communication", "communicat",
	"teamwork", "team player", "esprit d'equipe", "collaboration",
	"rigueur", "rigor", "rigorous",
	"organisation", "organization", "organiz",
	"adaptabilite", "adaptability", "flexible", "flexibility",
	"proactive", "proactivite", "motivation", "motivated",
	"interpersonal", "relationnel", "creativity", "creative",
	"problem solving", "critical thinking", "initiative",
}

// IsSoft reports whether a requirement token describes a soft skill.
func IsSoft(token string) bool {
	t := strings.ToLower(token)
	for _, keyword := range softSkillKeywords {
		if strings.Contains(t, keyword) {
			return true
		}
	}
	return false
}

// SplitSoft partitions requirements into hard and soft skill tokens,
// preserving input order.
func SplitSoft(requirements []string) (hard, soft []string) {
	for _, req := range requirements {
		if IsSoft(req) {
			soft = append(soft, req)
		} else {
			hard = append(hard, req)
		}
	}
	return hard, soft
}
