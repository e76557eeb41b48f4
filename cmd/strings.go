package cmd

import "fmt"

// enStrings resolves catalog localization refs for terminal output.
// The engine hands out refs, never literal text; this table is the
// CLI's presentation layer for the built-in catalog. Unknown refs
// print as-is so custom catalogs remain usable.
var enStrings = map[string]string{
	"assessment.q1":  "I feel tired even after a full night's sleep.",
	"assessment.q2":  "Small tasks feel heavier than they should.",
	"assessment.q3":  "I have trouble falling or staying asleep.",
	"assessment.q4":  "I find moments of genuine joy in my day.",
	"assessment.q5":  "I feel tense or on edge without a clear reason.",
	"assessment.q6":  "My mind races when I try to rest.",
	"assessment.q7":  "I put off things that matter to me.",
	"assessment.q8":  "I feel disconnected from the people around me.",
	"assessment.q9":  "I snap at others more than I would like.",
	"assessment.q10": "I skip meals or eat without really noticing.",
	"assessment.q11": "I can focus on one thing at a time when I need to.",
	"assessment.q12": "I worry about things outside my control.",
	"assessment.q13": "I feel guilty when I take time for myself.",
	"assessment.q14": "My body feels tight or sore from stress.",
	"assessment.q15": "I reach for my phone to avoid my own thoughts.",
	"assessment.q16": "I feel like I am falling behind everyone else.",
	"assessment.q17": "I cancel plans because I have no energy left.",
	"assessment.q18": "I notice and enjoy small pleasant things.",
	"assessment.q19": "I struggle to say no when I am already overloaded.",
	"assessment.q20": "I wake up dreading the day ahead.",
	"assessment.q21": "I replay conversations and regret what I said.",
	"assessment.q22": "I feel numb rather than sad or happy.",
	"assessment.q23": "I rely on caffeine or sugar to get through the day.",
	"assessment.q24": "I compare myself to others and come up short.",
	"assessment.q25": "I feel supported by at least one person in my life.",
	"assessment.q26": "I feel close to tears unexpectedly.",
	"assessment.q27": "I avoid looking at my responsibilities.",
	"assessment.q28": "I feel that nothing I do makes a difference.",
	"assessment.q29": "I lose track of time scrolling or zoning out.",
	"assessment.q30": "Anything else on your mind lately?",

	"assessment.q30_placeholder": "Write as little or as much as you like.",

	"profile.radiant":     "Radiant",
	"profile.balanced":    "Balanced",
	"profile.strained":    "Strained",
	"profile.overwhelmed": "Overwhelmed",

	"plan.radiant_w1_theme": "Keep the glow",
	"plan.radiant_w1_focus": "Notice what is already working and do more of it.",
	"plan.radiant_w2_theme": "Share it",
	"plan.radiant_w2_focus": "Bring your energy to one person who needs it.",
	"plan.radiant_w3_theme": "Stretch gently",
	"plan.radiant_w3_focus": "Try one new thing outside your routine.",
	"plan.radiant_w4_theme": "Anchor the habit",
	"plan.radiant_w4_focus": "Pick the practice you want to keep and make it daily.",

	"plan.balanced_w1_theme": "Take stock",
	"plan.balanced_w1_focus": "Map where your energy goes in a normal week.",
	"plan.balanced_w2_theme": "Protect the good",
	"plan.balanced_w2_focus": "Guard one hour a day that is only yours.",
	"plan.balanced_w3_theme": "Trim the noise",
	"plan.balanced_w3_focus": "Drop one commitment that gives nothing back.",
	"plan.balanced_w4_theme": "Build a buffer",
	"plan.balanced_w4_focus": "Practice one calming routine before stress hits.",

	"plan.strained_w1_theme": "Slow down",
	"plan.strained_w1_focus": "Cut your daily todo list to the three things that matter.",
	"plan.strained_w2_theme": "Sleep first",
	"plan.strained_w2_focus": "Same bedtime every night, screens away an hour before.",
	"plan.strained_w3_theme": "Move a little",
	"plan.strained_w3_focus": "Ten minutes of easy movement, outdoors when you can.",
	"plan.strained_w4_theme": "Say it out loud",
	"plan.strained_w4_focus": "Tell one trusted person how things actually are.",
	"plan.strained_w5_theme": "Lighten the load",
	"plan.strained_w5_focus": "Hand off or postpone one obligation this week.",
	"plan.strained_w6_theme": "Check back in",
	"plan.strained_w6_focus": "Review what eased the strain and keep it going.",

	"plan.overwhelmed_w1_theme": "Just breathe",
	"plan.overwhelmed_w1_focus": "Three slow breathing breaks a day, nothing more.",
	"plan.overwhelmed_w2_theme": "One thing at a time",
	"plan.overwhelmed_w2_focus": "Single-task the mornings; let the rest wait.",
	"plan.overwhelmed_w3_theme": "Ask for help",
	"plan.overwhelmed_w3_focus": "Name the heaviest thing and ask someone to share it.",
	"plan.overwhelmed_w4_theme": "Rest without guilt",
	"plan.overwhelmed_w4_focus": "Schedule rest like an appointment you cannot cancel.",
	"plan.overwhelmed_w5_theme": "Gentle body care",
	"plan.overwhelmed_w5_focus": "Warm meals, short walks, water within reach.",
	"plan.overwhelmed_w6_theme": "Reconnect",
	"plan.overwhelmed_w6_focus": "One short, easy moment with someone who feels safe.",
	"plan.overwhelmed_w7_theme": "Small wins",
	"plan.overwhelmed_w7_focus": "Finish one tiny task a day and let it count.",
	"plan.overwhelmed_w8_theme": "Look back kindly",
	"plan.overwhelmed_w8_focus": "Notice how far you have come since week one.",

	"activities.generic_1": "Step outside and take ten slow, deep breaths.",
	"activities.generic_2": "Drink a full glass of water before your next coffee.",
	"activities.generic_3": "Write down one thing you are grateful for today.",
	"activities.generic_4": "Stretch your neck and shoulders for two minutes.",
	"activities.generic_5": "Send a kind message to someone you have not talked to in a while.",
	"activities.generic_6": "Take a ten minute walk without your phone.",
	"activities.generic_7": "Tidy one small surface near where you sit.",
}

// answerScale is the shared 4-point frequency scale. Per-question
// option refs may override individual entries via "<optionRef>.<idx>".
var answerScale = [...]string{"Never", "Sometimes", "Often", "Always"}

// resolveRef returns the English text for a catalog ref, or the ref
// itself when the table has no entry.
func resolveRef(ref string) string {
	if s, ok := enStrings[ref]; ok {
		return s
	}
	return ref
}

// resolveOption returns the label for one choice of a question.
func resolveOption(optionRef string, idx int) string {
	if s, ok := enStrings[fmt.Sprintf("%s.%d", optionRef, idx)]; ok {
		return s
	}
	if idx >= 0 && idx < len(answerScale) {
		return answerScale[idx]
	}
	return fmt.Sprintf("Option %d", idx+1)
}

// profileLabel returns the display name for a profile key.
func profileLabel(key string) string {
	return resolveRef("profile." + key)
}
