package wordfn

import (
	"fmt"
	"regexp"

	"github.com/dmitrijs2005/narvi/internal/common"
)

// Complexity is a weighted predicate: every test whose regex matches adds
// its value to the score, and a candidate passes when the score reaches
// MinimumScore.
type Complexity struct {
	MinimumScore int              `json:"minimumscore"`
	Tests        []ComplexityTest `json:"tests" validate:"dive"`
}

type ComplexityTest struct {
	Regex string `json:"regex" validate:"required"`
	Value int    `json:"value"`
}

type compiledTest struct {
	re    *regexp.Regexp
	value int
}

// predicate is the compiled form of Complexity. A nil predicate accepts
// everything.
type predicate struct {
	min   int
	tests []compiledTest
}

func (c *Complexity) compile() (*predicate, error) {
	if c == nil {
		return nil, nil
	}
	p := &predicate{min: c.MinimumScore, tests: make([]compiledTest, 0, len(c.Tests))}
	for _, t := range c.Tests {
		re, err := regexp.Compile(t.Regex)
		if err != nil {
			return nil, fmt.Errorf("%w: complexity regex %q: %v", common.ErrInvalidParameters, t.Regex, err)
		}
		p.tests = append(p.tests, compiledTest{re: re, value: t.Value})
	}
	return p, nil
}

func (p *predicate) score(candidate string) int {
	score := 0
	for _, t := range p.tests {
		if t.re.MatchString(candidate) {
			score += t.value
		}
	}
	return score
}

func (p *predicate) accepts(candidate string) bool {
	if p == nil {
		return true
	}
	return p.score(candidate) >= p.min
}
