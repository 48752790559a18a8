package scoring

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/MatSouesme/LLM-TsaeChienne/internal/skills"
	"github.com/MatSouesme/LLM-TsaeChienne/internal/types"
)

// techSkillLexicon holds common technical skills used to detect extra
// candidate skills when the profile carries no pre-extracted skill set.
var techSkillLexicon = []string{
	"python", "java", "javascript", "typescript", "c++", "c#", "go", "rust",
	"react", "vue", "angular", "node.js", "django", "flask", "fastapi",
	"postgresql", "mysql", "mongodb", "redis", "elasticsearch",
	"docker", "kubernetes", "aws", "gcp", "azure", "terraform",
	"git", "ci/cd", "jenkins", "github actions", "gitlab",
	"machine learning", "deep learning", "nlp", "computer vision",
	"data science", "data engineering", "etl", "spark", "hadoop",
	"agile", "scrum", "rest api", "graphql", "microservices",
}

// facts is the per-evaluation cache of deterministically extracted
// candidate and job attributes. It is computed once, before the scorers
// run, and shared read-only between them.
type facts struct {
	candidateSkills []string
	hardReqs        []string
	softReqs        []string
	years           float64
	requiredYears   float64
	education       types.EducationLevel
	minEducation    types.EducationLevel
	educationStated bool
}

// extractFacts derives the shared facts from the raw inputs. Pre-extracted
// profile fields always win over text parsing.
func extractFacts(candidate *types.CandidateProfile, job *types.JobSpecification, cfg Config) *facts {
	f := &facts{}

	f.hardReqs, f.softReqs = skills.SplitSoft(job.Requirements)

	if len(candidate.Skills) > 0 {
		f.candidateSkills = candidate.Skills
	} else {
		f.candidateSkills = scanLexicon(candidate.ResumeText)
	}

	if candidate.YearsExperience != nil {
		f.years = *candidate.YearsExperience
	} else {
		f.years = extractYears(candidate.ResumeText)
	}
	f.requiredYears = requiredYears(job, cfg)

	if candidate.Education.Known() {
		f.education = candidate.Education
	} else {
		f.education = detectEducation(candidate.ResumeText)
	}
	f.minEducation, f.educationStated = requiredEducation(job)

	return f
}

// scanLexicon finds lexicon skills mentioned anywhere in the resume text.
func scanLexicon(text string) []string {
	body := strings.ToLower(text)
	var found []string
	for _, skill := range techSkillLexicon {
		if strings.Contains(body, skill) {
			found = append(found, skill)
		}
	}
	return found
}

var (
	dateRangeRe = regexp.MustCompile(`(\d{4})\s*(?:[-–—]|to|à)\s*(\d{4})`)
	ongoingRe   = regexp.MustCompile(`(?i)(?:depuis|since)\s+(\d{4})|(\d{4})\s*(?:[-–—]|to|à)\s*(?:present|aujourd'hui|now|maintenant)`)
	statedYears = regexp.MustCompile(`(?i)(\d+)\+?\s*(?:years?|ans?)\s+(?:of\s+|d')?(?:experience|expérience)`)
)

// extractYears parses total tenure from date ranges and stated-years
// phrases in the resume. Absent evidence degrades to 0.
func extractYears(text string) float64 {
	currentYear := time.Now().Year()
	total := 0
	seen := make(map[[2]int]bool)

	for _, m := range dateRangeRe.FindAllStringSubmatch(text, -1) {
		start, _ := strconv.Atoi(m[1])
		end, _ := strconv.Atoi(m[2])
		if start < 1950 || start > currentYear || end < start || end > currentYear+1 {
			continue
		}
		span := [2]int{start, end}
		if !seen[span] {
			total += end - start
			seen[span] = true
		}
	}

	for _, m := range ongoingRe.FindAllStringSubmatch(text, -1) {
		raw := m[1]
		if raw == "" {
			raw = m[2]
		}
		start, _ := strconv.Atoi(raw)
		if start < 1950 || start > currentYear {
			continue
		}
		counted := false
		for span := range seen {
			if span[0] == start {
				counted = true
				break
			}
		}
		if !counted {
			total += currentYear - start
			seen[[2]int{start, currentYear}] = true
		}
	}

	if total == 0 {
		for _, m := range statedYears.FindAllStringSubmatch(text, -1) {
			if n, err := strconv.Atoi(m[1]); err == nil && n > total {
				total = n
			}
		}
	}
	return float64(total)
}

// requiredYears derives the job-implied tenure from the description, the
// requirements, or failing that a title-seniority heuristic.
func requiredYears(job *types.JobSpecification, cfg Config) float64 {
	text := strings.ToLower(job.Description + " " + strings.Join(job.Requirements, " "))

	best := 0
	for _, m := range statedYears.FindAllStringSubmatch(text, -1) {
		if n, err := strconv.Atoi(m[1]); err == nil && n > best {
			best = n
		}
	}
	if best > 0 {
		return float64(best)
	}

	title := strings.ToLower(job.Title)
	switch {
	case strings.Contains(title, "senior") || strings.Contains(title, "lead") ||
		strings.Contains(text, "senior"):
		return cfg.SeniorRequiredYears
	case strings.Contains(title, "junior") || strings.Contains(title, "graduate") ||
		strings.Contains(text, "junior"):
		return cfg.JuniorRequiredYears
	default:
		return cfg.DefaultRequiredYears
	}
}

// degreeKeywords maps textual degree markers to education levels, checked
// highest first so "PhD in CS, BSc in Math" detects doctorate.
var degreeKeywords = []struct {
	keyword string
	level   types.EducationLevel
}{
	{"phd", types.EducationDoctorate},
	{"doctorate", types.EducationDoctorate},
	{"doctorat", types.EducationDoctorate},
	{"master", types.EducationMaster},
	{"msc", types.EducationMaster},
	{"mba", types.EducationMaster},
	{"bachelor", types.EducationBachelor},
	{"licence", types.EducationBachelor},
	{"bsc", types.EducationBachelor},
	{"diploma", types.EducationDiploma},
	{"diplôme", types.EducationDiploma},
	{"diplome", types.EducationDiploma},
}

// detectEducation finds the highest degree mentioned in free text.
func detectEducation(text string) types.EducationLevel {
	body := strings.ToLower(text)
	for _, entry := range degreeKeywords {
		if strings.Contains(body, entry.keyword) {
			return entry.level
		}
	}
	return types.EducationUnknown
}

// requiredEducation reads the job's stated minimum. The explicit field
// wins; otherwise degree keywords near requirement language are used. The
// second return reports whether any minimum was actually stated.
func requiredEducation(job *types.JobSpecification) (types.EducationLevel, bool) {
	if job.MinEducation.Known() {
		return job.MinEducation, true
	}
	text := strings.ToLower(job.Description + " " + strings.Join(job.Requirements, " "))
	if strings.Contains(text, "required") || strings.Contains(text, "requis") || strings.Contains(text, "minimum") {
		if level := detectEducation(text); level.Known() {
			return level, true
		}
	}
	return types.EducationUnknown, false
}
