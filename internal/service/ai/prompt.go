package ai

import (
	"fmt"
	"strings"

	"github.com/littlemoneyschool/tutor/backend/internal/model/tutor"
)

// BuildSystemPrompt renders the tutor instructions sent with every provider call.
func BuildSystemPrompt(profile tutor.Profile) string {
	rules := make([]string, 0, len(profile.Rules))
	for i, rule := range profile.Rules {
		rules = append(rules, fmt.Sprintf("%d. %s", i+1, rule))
	}

	examples := make([]string, 0, len(profile.Examples))
	for _, ex := range profile.Examples {
		examples = append(examples, "- "+ex)
	}

	return fmt.Sprintf(`أنت مساعد ذكي متخصص في تعليم الأطفال عن الأموال والأسهم والاستثمار باللغة العربية، واسمك "%s".

قواعد مهمة:
%s

مثال على إجاباتك:
%s

كن %s!`,
		profile.Name,
		strings.Join(rules, "\n"),
		strings.Join(examples, "\n"),
		profile.Tone,
	)
}

// transcript flattens turns for prompt-continuation models.
func transcript(systemPrompt string, turns []transcriptLine) string {
	var b strings.Builder
	b.WriteString(systemPrompt)
	b.WriteString("\n\n")
	for _, line := range turns {
		b.WriteString(line.speaker)
		b.WriteString(": ")
		b.WriteString(line.text)
		b.WriteString("\n")
	}
	b.WriteString(assistantSpeaker)
	b.WriteString(":")
	return b.String()
}

type transcriptLine struct {
	speaker string
	text    string
}

const (
	userSpeaker      = "الطفل"
	assistantSpeaker = "المساعد"
)
