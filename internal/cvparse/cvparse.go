package cvparse

import (
	"context"
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/resumatch/backend/internal/models"
	"github.com/resumatch/backend/internal/providers/llm"
)

const (
	// PromptExcerptLimit is how much CV text goes into the LLM prompt.
	PromptExcerptLimit = 3000
	// SummaryLimit caps the fallback summary.
	SummaryLimit = 300
	// MaxFallbackSkills caps how many skills the fallback keeps.
	MaxFallbackSkills = 5

	llmTimeout = 30 * time.Second
)

// Parsed is the structured result of CV extraction.
type Parsed struct {
	Skills     []string                `json:"skills"`
	Experience []models.ExperienceItem `json:"experience"`
	Education  []models.EducationItem  `json:"education"`
	Summary    string                  `json:"summary"`
}

// Parser turns plain CV text into a Parsed structure, via an LLM when one
// is configured and via the deterministic fallback otherwise. Parse never
// returns an error: every LLM failure is absorbed by the fallback.
type Parser struct {
	provider llm.Provider // nil disables AI extraction
	log      *logrus.Logger
}

func NewParser(provider llm.Provider, log *logrus.Logger) *Parser {
	return &Parser{provider: provider, log: log}
}

func (p *Parser) Parse(ctx context.Context, text string) Parsed {
	if p.provider == nil {
		return Fallback(text)
	}

	ctx, cancel := context.WithTimeout(ctx, llmTimeout)
	defer cancel()

	excerpt := truncateRunes(text, PromptExcerptLimit)
	prompt := fmt.Sprintf(
		`Extract CV data and return ONLY JSON with no extra text: {"skills": [], "experience": [{"title": "", "company": "", "duration": ""}], "education": [{"degree": "", "institution": "", "year": ""}], "summary": ""}. Extract ALL skills mentioned. CV: %s`,
		excerpt,
	)

	reply, err := p.provider.Complete(ctx, prompt)
	if err != nil {
		p.log.WithError(err).Warn("llm extraction failed, using fallback parse")
		return Fallback(text)
	}

	parsed, ok := parseJSONObject(reply)
	if !ok {
		p.log.Warn("no JSON object in llm reply, using fallback parse")
		return Fallback(text)
	}
	return parsed
}

// parseJSONObject extracts the first brace-delimited JSON object from the
// model reply. Models wrap replies in prose or code fences often enough
// that a plain Unmarshal is not enough.
func parseJSONObject(reply string) (Parsed, bool) {
	i := strings.Index(reply, "{")
	j := strings.LastIndex(reply, "}")
	if i < 0 || j <= i {
		return Parsed{}, false
	}

	var parsed Parsed
	if err := json.Unmarshal([]byte(reply[i:j+1]), &parsed); err != nil {
		return Parsed{}, false
	}
	return normalize(parsed), true
}

var skillsLineRe = regexp.MustCompile(`(?i)skills?[:\s]+([^\n]+)`)

// Fallback is the deterministic extraction used when the LLM is unavailable
// or returns garbage. It always yields a well-formed structure, even for
// empty input.
func Fallback(text string) Parsed {
	var skills []string
	for _, m := range skillsLineRe.FindAllStringSubmatch(text, -1) {
		for _, part := range strings.FieldsFunc(m[1], func(r rune) bool { return r == ',' || r == ';' }) {
			s := strings.TrimSpace(part)
			if s == "" {
				continue
			}
			skills = append(skills, s)
			if len(skills) == MaxFallbackSkills {
				break
			}
		}
		if len(skills) == MaxFallbackSkills {
			break
		}
	}

	return normalize(Parsed{Skills: skills, Summary: truncateRunes(text, SummaryLimit)})
}

// truncateRunes cuts on rune boundaries so a multi-byte character is never
// split at the limit.
func truncateRunes(s string, limit int) string {
	if runes := []rune(s); len(runes) > limit {
		return string(runes[:limit])
	}
	return s
}

func normalize(p Parsed) Parsed {
	if p.Skills == nil {
		p.Skills = []string{}
	}
	if p.Experience == nil {
		p.Experience = []models.ExperienceItem{}
	}
	if p.Education == nil {
		p.Education = []models.EducationItem{}
	}
	return p
}
