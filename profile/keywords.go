package profile

// OnTopicKeywords are terms that mark a question as clearly about the subject.
// Used by the content filter's fast-allow path before any embedding work.
var OnTopicKeywords = []string{
	"chris", "barreras",
	"resume", "cv", "hire", "hiring", "candidate", "fit",
	"skill", "skills", "experience", "education", "degree", "certification",
	"project", "projects", "portfolio", "coursework", "gpa",
	"angular", "typescript", "firebase", "gemini", "studyjarvis",
	"java", "python", "developer", "engineer", "software",
	"internship", "job", "role", "position", "work history",
}

// OffTopicKeywords are terms that mark a question as clearly unrelated.
// A hit here rejects immediately, skipping the embedding comparison.
var OffTopicKeywords = []string{
	"weather", "forecast", "temperature",
	"news", "headline", "election", "politics",
	"sports", "football", "basketball", "baseball", "soccer score",
	"stock", "bitcoin", "crypto",
	"recipe", "cooking",
	"movie", "celebrity",
	"horoscope", "lottery",
}
