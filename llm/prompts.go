package llm

import "fmt"

func buildEnhancementPrompt(title, description string) string {
	return fmt.Sprintf(`You help people keep a tidy todo list. Rewrite the task description below so it is clear and actionable. Keep any "Context notes" section, keep it short, and reply with plain text only. No markdown, no preamble.

Task title: %s

Current description:
%s`, title, description)
}
