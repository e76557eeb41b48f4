package catalog

// AnswerKind describes what shape of answer a question accepts.
type AnswerKind string

const (
	// KindChoice questions accept an option index in [0, ChoiceCount).
	KindChoice AnswerKind = "choice"
	// KindText questions accept free text. They never contribute to scoring.
	KindText AnswerKind = "text"
)

// Question is one step of the assessment wizard. Prompt, options and
// placeholder are localization references resolved by the presentation
// layer, never literal strings.
type Question struct {
	ID             string     `json:"id"`
	PromptRef      string     `json:"promptRef"`
	Kind           AnswerKind `json:"kind"`
	ChoiceCount    int        `json:"choiceCount,omitempty"`
	OptionRef      string     `json:"optionRef,omitempty"`
	PlaceholderRef string     `json:"placeholderRef,omitempty"`
}

// ScoringTable maps a question id to one weight per choice index.
// Only questions present here are scoreable.
type ScoringTable map[string][]int

// ProfileRange maps an inclusive score interval to a profile key.
type ProfileRange struct {
	ProfileKey string `json:"profileKey"`
	MinScore   int    `json:"minScore"`
	MaxScore   int    `json:"maxScore"`
}

// PlanWeek is one week of a support plan template.
type PlanWeek struct {
	ThemeRef string `json:"themeRef"`
	FocusRef string `json:"focusRef"`
}

// PlanTemplate is a profile-keyed multi-week plan outline.
type PlanTemplate struct {
	ProfileKey string     `json:"profileKey"`
	Weeks      []PlanWeek `json:"weeks"`
}

// FallbackActivity is one entry of the generic daily-activity pool used
// when personalized generation is unavailable. TaskRef is a localization
// reference.
type FallbackActivity struct {
	ID      string `json:"id"`
	TaskRef string `json:"taskRef"`
}

// InspirationTemplate seeds activity generation with a category and
// example tasks. Sent to the generator verbatim, never shown to the user.
type InspirationTemplate struct {
	Category string   `json:"category"`
	Examples []string `json:"examples"`
}

// RequiredScoreableAnswers is how many scoreable questions must be
// answered before an assessment can be submitted.
const RequiredScoreableAnswers = 29

// Catalog bundles every configuration table the engine loads at startup.
// Immutable after Load.
type Catalog struct {
	Questions    []Question
	Scoring      ScoringTable
	Profiles     []ProfileRange
	Plans        []PlanTemplate
	FallbackPool []FallbackActivity
	Inspiration  []InspirationTemplate

	byID map[string]*Question
}

// Question returns the question with the given id, or nil. Catalogs
// built as literals have no index and fall back to a scan.
func (c *Catalog) Question(id string) *Question {
	if c.byID == nil {
		for i := range c.Questions {
			if c.Questions[i].ID == id {
				return &c.Questions[i]
			}
		}
		return nil
	}
	return c.byID[id]
}

// Steps returns the number of wizard steps.
func (c *Catalog) Steps() int {
	return len(c.Questions)
}

// PlanFor returns the plan template for a profile key, or nil when the
// profile has no template.
func (c *Catalog) PlanFor(profileKey string) *PlanTemplate {
	for i := range c.Plans {
		if c.Plans[i].ProfileKey == profileKey {
			return &c.Plans[i]
		}
	}
	return nil
}

// ScoreBounds returns the lowest and highest total score reachable with
// the configured scoring table.
func (c *Catalog) ScoreBounds() (min, max int) {
	for _, weights := range c.Scoring {
		lo, hi := weights[0], weights[0]
		for _, w := range weights[1:] {
			if w < lo {
				lo = w
			}
			if w > hi {
				hi = w
			}
		}
		min += lo
		max += hi
	}
	return min, max
}

func (c *Catalog) index() {
	c.byID = make(map[string]*Question, len(c.Questions))
	for i := range c.Questions {
		c.byID[c.Questions[i].ID] = &c.Questions[i]
	}
}
