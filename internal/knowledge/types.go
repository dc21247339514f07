package knowledge

// Kind classifies a knowledge item. Closed enumeration.
type Kind string

const (
	KindProject    Kind = "project"
	KindSkill      Kind = "skill"
	KindAbout      Kind = "about"
	KindExperience Kind = "experience"
)

// Item is an immutable static knowledge record used for retrieval.
// Items are created once at process start from the hard-coded catalog
// and never mutated.
type Item struct {
	ID       string   `json:"id"`
	Kind     Kind     `json:"type"`
	Title    string   `json:"title"`
	Content  string   `json:"content"`
	Keywords []string `json:"keywords"`
	Category string   `json:"category,omitempty"`
}

// scoredItem pairs an item with its relevance score for one query.
type scoredItem struct {
	item  Item
	score int
}
