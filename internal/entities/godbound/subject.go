// Package godbound holds the sheet data model for the Godbound ruleset.
package godbound

// Subject is a character sheet owned by a player or the GM.
type Subject struct {
	ID      string      `json:"id"`
	OwnerID string      `json:"owner_id"`
	Name    string      `json:"name"`
	Type    SubjectType `json:"type"`
	Level   int         `json:"level"`
	TokenID string      `json:"token_id,omitempty"`
	Image   string      `json:"image,omitempty"`

	Attributes map[string]Attribute `json:"attributes"`
	Saves      map[string]Save      `json:"saves"`

	Effort  Effort `json:"effort"`
	HP      Pool   `json:"hp"`
	HitDice Pool   `json:"hit_dice"`
	Morale  int    `json:"morale,omitempty"`

	Items []Item `json:"items,omitempty"`

	CreatedAt int64 `json:"created_at"`
	UpdatedAt int64 `json:"updated_at"`
}

// Attribute is a single attribute score
type Attribute struct {
	Score int `json:"score"`
}

// Save is a computed saving throw target
type Save struct {
	Target int `json:"target"`
}

// Effort tracks a subject's effort pool and what is committed where
type Effort struct {
	Total  int `json:"total"`
	Scene  int `json:"scene"`
	Day    int `json:"day"`
	AtWill int `json:"atWill"`
}

// Committed returns the effort committed across all categories
func (e Effort) Committed() int {
	return e.Scene + e.Day + e.AtWill
}

// Available returns the effort that can still be committed
func (e Effort) Available() int {
	return e.Total - e.Committed()
}

// Get returns the committed effort for a category
func (e Effort) Get(category EffortCategory) (int, bool) {
	switch category {
	case EffortScene:
		return e.Scene, true
	case EffortDay:
		return e.Day, true
	case EffortAtWill:
		return e.AtWill, true
	default:
		return 0, false
	}
}

// Set replaces the committed effort for a category
func (e *Effort) Set(category EffortCategory, value int) bool {
	switch category {
	case EffortScene:
		e.Scene = value
	case EffortDay:
		e.Day = value
	case EffortAtWill:
		e.AtWill = value
	default:
		return false
	}
	return true
}

// Pool is a depletable value such as hit points or hit dice
type Pool struct {
	Value int `json:"value"`
	Max   int `json:"max"`
}

// Item is an embedded item: a word, gift, fact, piece of gear or tactic
type Item struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Type        ItemType `json:"type"`
	Description string   `json:"description,omitempty"`
	EffortCost  int      `json:"effort_cost,omitempty"`
}

// AttributeScore returns the score for the named attribute
func (s *Subject) AttributeScore(name string) (int, bool) {
	attr, ok := s.Attributes[name]
	return attr.Score, ok
}

// SaveTarget returns the computed target for the named save
func (s *Subject) SaveTarget(name string) (int, bool) {
	save, ok := s.Saves[name]
	return save.Target, ok
}

// MoraleScore returns the subject's morale
func (s *Subject) MoraleScore() int {
	return s.Morale
}

// FindItem returns the item with the given id
func (s *Subject) FindItem(id string) (*Item, bool) {
	for i := range s.Items {
		if s.Items[i].ID == id {
			return &s.Items[i], true
		}
	}
	return nil, false
}

// RemoveItem drops the item with the given id and reports whether it existed
func (s *Subject) RemoveItem(id string) bool {
	for i := range s.Items {
		if s.Items[i].ID == id {
			s.Items = append(s.Items[:i], s.Items[i+1:]...)
			return true
		}
	}
	return false
}

// ItemsOfType returns the items of the given type in sheet order
func (s *Subject) ItemsOfType(t ItemType) []Item {
	var out []Item
	for _, item := range s.Items {
		if item.Type == t {
			out = append(out, item)
		}
	}
	return out
}
