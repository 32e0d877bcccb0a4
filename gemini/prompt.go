package gemini

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/chrisbarreras/resume-backend/models"
	"github.com/chrisbarreras/resume-backend/profile"
)

const maxUserMessageLen = 500

// initialMessage is the literal the UI sends to trigger the default
// "why hire" pitch instead of a user question.
const initialMessage = "initial"

var (
	doubleNewlinePattern = regexp.MustCompile(`\n{2,}`)
	injectionPattern     = regexp.MustCompile(`(?i)\b(system|instruction|ignore|forget)\s*:`)
)

// sanitizeMessage strips role-injection markers, collapses double newlines,
// and caps the length before the message is embedded in the prompt. This is
// best-effort hardening against prompt injection, not a security boundary;
// the system instruction remains the real scope control.
func sanitizeMessage(message string) string {
	message = injectionPattern.ReplaceAllString(message, "")
	message = doubleNewlinePattern.ReplaceAllString(message, "\n")
	message = strings.TrimSpace(message)
	if len(message) > maxUserMessageLen {
		message = message[:maxUserMessageLen]
	}
	return message
}

// buildPrompt layers the fixed system instruction, the profile, the optional
// job-context block, and either the sanitized user question or a pitch
// directive (company-specific when job data is present).
func buildPrompt(userMessage string, jobData *models.JobPostData) string {
	var sb strings.Builder

	sb.WriteString(profile.SystemInstruction)
	sb.WriteString("\n\nPROFILE:\n")
	sb.WriteString(profile.Text)

	if jobData != nil {
		sb.WriteString(fmt.Sprintf("\n\nJOB DATA (if relevant to answer):\nCompany: %s\nPosition: %s\nJob Description: %s\nRequirements: %s",
			jobData.CompanyName, jobData.JobTitle, jobData.JobDescription, jobData.Requirements))
	}

	sb.WriteString("\n\nQUESTION:\n")

	if userMessage == "" || userMessage == initialMessage {
		if jobData != nil {
			sb.WriteString(fmt.Sprintf("Please explain concisely why Chris Barreras would be a strong hire for this role at %s.", jobData.CompanyName))
		} else {
			sb.WriteString("Please explain concisely why Chris Barreras would be a strong hire for this role.")
		}
	} else {
		sb.WriteString(sanitizeMessage(userMessage))
	}

	return sb.String()
}
