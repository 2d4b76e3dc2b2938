package invest

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/abadojack/whatlanggo"

	"storysplit/domain"
)

// Criterion keys, stable across the API and storage.
const (
	CriterionIndependent = "independent"
	CriterionNegotiable  = "negotiable"
	CriterionValuable    = "valuable"
	CriterionEstimable   = "estimable"
	CriterionSmall       = "small"
	CriterionTestable    = "testable"
)

// Result is one scoring pass over a story.
type Result struct {
	Scores   map[string]float64
	Notes    []string
	Language string
}

// Overall is the unweighted mean of the criterion scores.
func (r Result) Overall() float64 {
	if len(r.Scores) == 0 {
		return 0
	}
	var sum float64
	for _, v := range r.Scores {
		sum += v
	}
	return sum / float64(len(r.Scores))
}

// Scorer rates a story against the INVEST mnemonic with regex and
// length heuristics. Scores live in [0,1].
type Scorer struct {
	narrative   *regexp.Regexp
	benefit     *regexp.Regexp
	dependency  *regexp.Regexp
	solution    *regexp.Regexp
	vague       *regexp.Regexp
	measurable  *regexp.Regexp
	subjective  *regexp.Regexp
	conjunction *regexp.Regexp
}

func NewScorer() *Scorer {
	return &Scorer{
		narrative:   regexp.MustCompile(`(?i)\bas an? .{1,80}?\bi (want|need|can)\b`),
		benefit:     regexp.MustCompile(`(?i)\bso that\b`),
		dependency:  regexp.MustCompile(`(?i)\b(depends on|blocked by|after (the )?story|requires story|see story|waiting (on|for))\b`),
		solution:    regexp.MustCompile(`(?i)\b(must use|implemented? (with|using)|using (react|angular|vue|postgres|mysql|mongodb|redis|kafka)|via the \w+ library)\b`),
		vague:       regexp.MustCompile(`(?i)\b(some|various|several|etc|many|a few|fast|quick|easy|somehow)\b`),
		measurable:  regexp.MustCompile(`(?i)(\b(should|must|within|at (least|most)|no more than)\b|\d+\s*(%|ms|s|seconds?|minutes?|items?|users?)?)`),
		subjective:  regexp.MustCompile(`(?i)\b(user-friendly|intuitive|seamless|nice|modern|clean|pretty)\b`),
		conjunction: regexp.MustCompile(`(?i)\b(and|or|then|also|as well as)\b`),
	}
}

// Effort above this is considered too big to estimate as one story.
const smallEffortLimit = 8

// Score runs all six criteria. It is pure: same story in, same result
// out, which is what lets the response layer impersonate an LLM while
// staying testable.
func (s *Scorer) Score(story domain.Story) Result {
	text := story.Text()
	res := Result{
		Scores:   make(map[string]float64, 6),
		Language: whatlanggo.Detect(text).Lang.Iso6391(),
	}

	res.Scores[CriterionIndependent] = s.independent(text, &res)
	res.Scores[CriterionNegotiable] = s.negotiable(text, &res)
	res.Scores[CriterionValuable] = s.valuable(story, &res)
	res.Scores[CriterionEstimable] = s.estimable(story, &res)
	res.Scores[CriterionSmall] = s.small(story, &res)
	res.Scores[CriterionTestable] = s.testable(story, &res)
	return res
}

func (s *Scorer) independent(text string, res *Result) float64 {
	hits := s.dependency.FindAllString(text, -1)
	if len(hits) > 0 {
		res.Notes = append(res.Notes,
			fmt.Sprintf("dependency wording found: %s", strings.Join(hits, ", ")))
	}
	return clamp(1 - 0.35*float64(len(hits)))
}

func (s *Scorer) negotiable(text string, res *Result) float64 {
	hits := s.solution.FindAllString(text, -1)
	if len(hits) > 0 {
		res.Notes = append(res.Notes,
			"the story prescribes a solution instead of a need")
	}
	return clamp(1 - 0.4*float64(len(hits)))
}

func (s *Scorer) valuable(story domain.Story, res *Result) float64 {
	score := 0.2
	if s.narrative.MatchString(story.Description) {
		score += 0.4
	} else {
		res.Notes = append(res.Notes,
			`missing the "as a ... I want ..." narrative`)
	}
	if s.benefit.MatchString(story.Description) {
		score += 0.4
	} else {
		res.Notes = append(res.Notes, `missing a "so that" benefit clause`)
	}
	return clamp(score)
}

func (s *Scorer) estimable(story domain.Story, res *Result) float64 {
	score := 1.0
	vagueHits := len(s.vague.FindAllString(story.Text(), -1))
	score -= 0.15 * float64(vagueHits)
	if vagueHits > 0 {
		res.Notes = append(res.Notes,
			fmt.Sprintf("%d vague quantifiers blur the scope", vagueHits))
	}
	if len(story.AcceptanceCriteria) == 0 {
		score -= 0.3
		res.Notes = append(res.Notes, "no acceptance criteria to estimate against")
	}
	if story.Effort == 0 {
		score -= 0.2
	}
	return clamp(score)
}

func (s *Scorer) small(story domain.Story, res *Result) float64 {
	score := 1.0
	runes := len([]rune(story.Description))
	switch {
	case runes > 1200:
		score -= 0.5
	case runes > 600:
		score -= 0.25
	}
	if len(story.AcceptanceCriteria) > 6 {
		score -= 0.2
		res.Notes = append(res.Notes, "more than six acceptance criteria")
	}
	conj := len(s.conjunction.FindAllString(story.Description, -1))
	words := len(strings.Fields(story.Description))
	if words > 0 && float64(conj)/float64(words) > 0.08 {
		score -= 0.25
		res.Notes = append(res.Notes, "high conjunction density, likely a compound story")
	}
	if story.Effort > smallEffortLimit {
		score -= 0.4
		res.Notes = append(res.Notes,
			fmt.Sprintf("effort %d exceeds the %d point limit", story.Effort, smallEffortLimit))
	}
	return clamp(score)
}

func (s *Scorer) testable(story domain.Story, res *Result) float64 {
	score := 0.2
	criteria := len(story.AcceptanceCriteria)
	score += 0.15 * float64(min(criteria, 4))
	if criteria == 0 {
		res.Notes = append(res.Notes, "nothing to verify: add acceptance criteria")
	}
	measurable := 0
	for _, c := range story.AcceptanceCriteria {
		if s.measurable.MatchString(c) {
			measurable++
		}
	}
	if criteria > 0 && measurable == criteria {
		score += 0.2
	}
	subjectiveHits := len(s.subjective.FindAllString(story.Text(), -1))
	score -= 0.2 * float64(subjectiveHits)
	if subjectiveHits > 0 {
		res.Notes = append(res.Notes, "subjective wording cannot be tested")
	}
	return clamp(score)
}

func clamp(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
