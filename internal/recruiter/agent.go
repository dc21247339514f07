package recruiter

import (
	"context"
	"log"
	"strings"

	"github.com/khairibzd/portfolio-chat/internal/knowledge"
	"github.com/khairibzd/portfolio-chat/internal/portfolio"
	"github.com/khairibzd/portfolio-chat/provider"
)

// maxHistoryTurns bounds how much caller-supplied conversation history
// is forwarded to the completion service.
const maxHistoryTurns = 8

// contextLimit is how many knowledge documents are retrieved per turn.
const contextLimit = 3

// apologyResponse is the canned degraded reply used whenever the
// completion pipeline fails. The turn never surfaces an error.
const apologyResponse = "I apologize, but I'm experiencing technical difficulties right now. Please try again in a moment, or feel free to reach out to Mohamed directly at khairibouzid95@gmail.com."

const systemPrompt = `You are an AI assistant representing Mohamed Khairi Bouzid, a talented Full-Stack Developer and Computer Engineering student at ESPRIT.

Your role is to help recruiters and potential employers learn about Mohamed's background, projects, and skills in a professional yet conversational manner.

Key guidelines:
- Be professional but friendly and conversational
- Focus on Mohamed's technical expertise, projects, and achievements
- Highlight relevant experience for the recruiter's interests
- Provide specific details about technologies, project outcomes, and skills
- Keep responses concise but informative (2-3 paragraphs max)
- Always maintain a positive, confident tone about Mohamed's capabilities
- If asked about availability, mention he's open to opportunities
- For technical questions, provide depth while remaining accessible

Background context:
- Full-Stack Developer at SW Consulting
- Computer Engineering student at ESPRIT
- Bachelor's in Computer Science from Higher Institute of Computer Science of Mahdia
- Specializes in web development, blockchain technology, and AI integration
- Multilingual: Arabic (native), English (professional), French (professional)
- Based in Tunisia, open to remote and international opportunities

When responding, use the provided context about Mohamed's projects and skills to give specific, relevant examples.

Project cards:
When a recruiter asks to see projects, end your response with a single tag of the exact form [PROJECT_CARDS: id1, id2] listing the relevant project ids from: carbon-calculator, ai-mock-interview, deal-discover, email-reply-agent, e-waste. Emit the tag at most once, only with ids from that list, and never mention the tag itself in your prose.`

// ChatRequest is one inbound question plus the caller-supplied
// conversation history. The history is treated as read-only.
type ChatRequest struct {
	Message             string
	ConversationHistory []provider.Message
}

// ChatResult is the outcome of one chat turn.
type ChatResult struct {
	Response     string
	Context      []knowledge.Item
	ProjectCards []portfolio.ProjectCard
}

// Agent composes one question-answering turn: retrieve context, build
// the prompt, call the completion service and post-process its output.
// Agents are stateless; every call is self-contained.
type Agent struct {
	store    *knowledge.Store
	projects *portfolio.Catalog
	llm      provider.Provider
	logger   *log.Logger
}

// New creates a recruiter agent over the given knowledge store, project
// catalog and completion provider.
func New(store *knowledge.Store, projects *portfolio.Catalog, llm provider.Provider, logger *log.Logger) *Agent {
	if logger == nil {
		logger = log.New(log.Writer(), "[AGENT] ", log.LstdFlags)
	}
	return &Agent{store: store, projects: projects, llm: llm, logger: logger}
}

// ProcessMessage runs one chat turn. All failures degrade to the fixed
// apology response with empty context and cards; no error escapes.
func (a *Agent) ProcessMessage(ctx context.Context, req ChatRequest) ChatResult {
	relevant := a.store.Query(req.Message, contextLimit)

	messages := a.buildMessages(req, relevant)

	raw, err := a.llm.ChatCompletion(ctx, messages)
	if err != nil {
		a.logger.Printf("completion failed: %v", err)
		return ChatResult{
			Response:     apologyResponse,
			Context:      []knowledge.Item{},
			ProjectCards: []portfolio.ProjectCard{},
		}
	}

	display, ids := extractCardDirective(raw)
	cards := a.resolveCards(ids)
	if len(cards) == 0 {
		cards = a.fallbackCards(req.Message)
	}

	return ChatResult{
		Response:     display,
		Context:      relevant,
		ProjectCards: cards,
	}
}

// buildMessages assembles the outbound sequence: system prompt, up to
// the last 8 history turns verbatim, then the user message with the
// retrieved context block directly above the live question.
func (a *Agent) buildMessages(req ChatRequest, relevant []knowledge.Item) []provider.Message {
	messages := make([]provider.Message, 0, len(req.ConversationHistory)+2)
	messages = append(messages, provider.Message{Role: provider.RoleSystem, Content: systemPrompt})

	history := req.ConversationHistory
	if len(history) > maxHistoryTurns {
		history = history[len(history)-maxHistoryTurns:]
	}
	messages = append(messages, history...)

	content := req.Message
	if contextBlock := renderContext(relevant); contextBlock != "" {
		content = "Context about Mohamed Khairi Bouzid:\n" + contextBlock + "\n\nUser question: " + req.Message
	}
	messages = append(messages, provider.Message{Role: provider.RoleUser, Content: content})

	return messages
}

// renderContext joins the retrieved documents as "<title>: <content>"
// blocks separated by blank lines.
func renderContext(items []knowledge.Item) string {
	if len(items) == 0 {
		return ""
	}
	parts := make([]string, len(items))
	for i, item := range items {
		parts[i] = item.Title + ": " + item.Content
	}
	return strings.Join(parts, "\n\n")
}

// resolveCards maps directive ids onto catalog records. Unresolvable
// ids are silently dropped; order and duplicates are preserved.
func (a *Agent) resolveCards(ids []string) []portfolio.ProjectCard {
	cards := make([]portfolio.ProjectCard, 0, len(ids))
	for _, id := range ids {
		if rec, ok := a.projects.Resolve(id); ok {
			cards = append(cards, rec.Card())
		}
	}
	return cards
}
