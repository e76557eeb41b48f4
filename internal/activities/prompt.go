package activities

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/gwcare/glowy/internal/catalog"
)

const systemPrompt = `You are a gentle mental wellness companion suggesting small daily activities.

Rules:
- Generate 3 to 5 simple, actionable activities for today, tailored to the user's wellness profile.
- Use the inspiration categories and examples as a starting point, but create new, relevant, creative tasks. Do not copy the examples verbatim.
- Each task should take 15 minutes or less and require no special equipment.
- The tone is encouraging and supportive, never clinical or prescriptive.
- Each activity needs a unique id (e.g. a timestamp-based string like act-1678886400000), a task description, and completed set to false.
- Write the tasks in the requested language.`

// buildUserMessage constructs the generation prompt from the resolved
// profile, the inspiration templates, and the language tag.
func buildUserMessage(profileLabel string, inspiration []catalog.InspirationTemplate, languageTag string) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Wellness profile: %s\n", profileLabel)
	fmt.Fprintf(&b, "Language: %s\n", languageName(languageTag))

	b.WriteString("\nActivity inspiration:\n")
	if raw, err := json.Marshal(inspiration); err == nil {
		b.Write(raw)
		b.WriteString("\n")
	}

	return b.String()
}

// languageName expands the app's language tags for the prompt; unknown
// tags pass through as-is.
func languageName(tag string) string {
	switch tag {
	case "vi":
		return "Vietnamese"
	case "en":
		return "English"
	default:
		return tag
	}
}
