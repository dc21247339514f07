package recruiter

// QuickResponse is one predefined recruiter question.
type QuickResponse struct {
	Question string `json:"question"`
	Category string `json:"category"`
}

// QuickResponses returns the fixed catalog of common recruiter
// questions, verbatim.
func (a *Agent) QuickResponses() []QuickResponse {
	return []QuickResponse{
		{Question: "Tell me about your latest projects", Category: "projects"},
		{Question: "What are your main technical skills?", Category: "skills"},
		{Question: "What's your experience with React/Next.js?", Category: "frontend"},
		{Question: "Do you have backend development experience?", Category: "backend"},
		{Question: "Have you worked with AI or blockchain?", Category: "emerging-tech"},
		{Question: "What's your educational background?", Category: "education"},
		{Question: "Are you available for new opportunities?", Category: "availability"},
	}
}
