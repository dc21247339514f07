package portfolio

import "strings"

// Project statuses, ordered the way the gallery sorts them.
const (
	StatusInProgress = "in-progress"
	StatusCompleted  = "completed"
	StatusPlanned    = "planned"
)

// ProjectRecord is a static catalog entry describing one portfolio
// project. Records are read-only; the catalog is redeployed with the
// code.
type ProjectRecord struct {
	ID             string   `json:"id"`
	Title          string   `json:"title"`
	Description    string   `json:"description"`
	TechStack      []string `json:"techstack"`
	Live           string   `json:"live,omitempty"`
	GitHub         string   `json:"github,omitempty"`
	Category       string   `json:"category,omitempty"`
	Industry       string   `json:"industry,omitempty"`
	Status         string   `json:"status,omitempty"`
	CompletionDate string   `json:"completionDate,omitempty"`
}

// ProjectCard is the structured card shape rendered by the chat UI.
type ProjectCard struct {
	Type           string   `json:"type"`
	Title          string   `json:"title"`
	Description    string   `json:"description"`
	Technologies   []string `json:"technologies"`
	GitHub         string   `json:"github,omitempty"`
	Live           string   `json:"live,omitempty"`
	Status         string   `json:"status,omitempty"`
	CompletionDate string   `json:"completionDate,omitempty"`
	Category       string   `json:"category,omitempty"`
}

// Card renders the record as a chat project card.
func (p ProjectRecord) Card() ProjectCard {
	return ProjectCard{
		Type:           "project_card",
		Title:          p.Title,
		Description:    p.Description,
		Technologies:   p.TechStack,
		GitHub:         p.GitHub,
		Live:           p.Live,
		Status:         p.Status,
		CompletionDate: p.CompletionDate,
		Category:       p.Category,
	}
}

// Catalog is an immutable, ordered collection of project records with
// id lookup.
type Catalog struct {
	records []ProjectRecord
	byID    map[string]ProjectRecord
}

// NewCatalog builds a catalog over the given records, preserving order.
func NewCatalog(records []ProjectRecord) *Catalog {
	copied := make([]ProjectRecord, len(records))
	copy(copied, records)
	byID := make(map[string]ProjectRecord, len(copied))
	for _, rec := range copied {
		byID[strings.ToLower(rec.ID)] = rec
	}
	return &Catalog{records: copied, byID: byID}
}

// NewDefaultCatalog builds the catalog of the portfolio's projects.
func NewDefaultCatalog() *Catalog {
	return NewCatalog(defaultProjects)
}

// All returns the records in catalog order.
func (c *Catalog) All() []ProjectRecord {
	copied := make([]ProjectRecord, len(c.records))
	copy(copied, c.records)
	return copied
}

// Resolve looks up a record by its lowercase id.
func (c *Catalog) Resolve(id string) (ProjectRecord, bool) {
	rec, ok := c.byID[strings.ToLower(strings.TrimSpace(id))]
	return rec, ok
}

// IDs returns every record id in catalog order.
func (c *Catalog) IDs() []string {
	ids := make([]string, len(c.records))
	for i, rec := range c.records {
		ids[i] = rec.ID
	}
	return ids
}

var defaultProjects = []ProjectRecord{
	{
		ID:             "carbon-calculator",
		Title:          "Carbon Calculator",
		Description:    "An application where users can calculate their carbon footprint.",
		TechStack:      []string{"React", "Node", "Express", "MongoDB", "TypeScript"},
		Live:           "https://carbonee-calculator.vercel.app/",
		GitHub:         "https://github.com/khairibzd/Carbon-Calculator",
		Category:       "Full Stack",
		Industry:       "Environmental",
		Status:         StatusCompleted,
		CompletionDate: "2023-06-15",
	},
	{
		ID:             "ai-mock-interview",
		Title:          "AI Mock Interview Platform",
		Description:    "An educational platform that generates realistic interview questions and gives detailed feedback.",
		TechStack:      []string{"React", "Next.js", "Prisma", "PostgreSQL", "Prompt Engineering"},
		GitHub:         "https://github.com/khairibzd/ai-mock-interview",
		Category:       "AI/ML",
		Industry:       "Education",
		Status:         StatusCompleted,
		CompletionDate: "2024-03-01",
	},
	{
		ID:             "deal-discover",
		Title:          "DealDiscover",
		Description:    "A recommendation platform with a chatbot that helps users find their specific destination.",
		TechStack:      []string{"Vue", "Pinia", "Rasa Platform", "Python", "TypeScript", "MongoDB"},
		Live:           "https://deal-discover-vue.vercel.app/",
		GitHub:         "https://github.com/medkira/DealDiscover_vue",
		Category:       "Frontend",
		Industry:       "Travel",
		Status:         StatusCompleted,
		CompletionDate: "2023-11-20",
	},
	{
		ID:             "email-reply-agent",
		Title:          "Email Reply Agent",
		Description:    "An intelligent email assistant that analyzes incoming messages and drafts contextually appropriate replies.",
		TechStack:      []string{"Python", "Flask", "SQLite", "Prompt Engineering"},
		GitHub:         "https://github.com/khairibzd/email-reply-agent",
		Category:       "AI/ML",
		Industry:       "Productivity",
		Status:         StatusCompleted,
		CompletionDate: "2024-05-10",
	},
	{
		ID:             "e-waste",
		Title:          "E-waste Management",
		Description:    "A platform that transforms electronic waste management with AI, blockchain and face recognition.",
		TechStack:      []string{"Symfony", "Python", "JavaScript", "Solidity", "IoT", "MySQL"},
		GitHub:         "https://github.com/khairibzd/e-waste-management",
		Category:       "Blockchain",
		Industry:       "Environmental",
		Status:         StatusInProgress,
	},
}
