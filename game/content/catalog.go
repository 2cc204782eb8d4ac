package content

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// ---- Content definitions ----

// Item is a static item definition.
type Item struct {
	Name        string `json:"name"`
	MaxStack    int    `json:"max_stack"`
	HealthBonus int    `json:"health_bonus"` // added to max health while equipped
	ManaBonus   int    `json:"mana_bonus"`
}

// Skill is a static skill definition. Skills double as buff definitions:
// a buff on a character always references the skill that applied it.
type Skill struct {
	Name        string  `json:"name"`
	MaxLevel    int     `json:"max_level"`
	CastTime    float64 `json:"cast_time"` // seconds
	Cooldown    float64 `json:"cooldown"`
	BuffTime    float64 `json:"buff_time"`
	HealthBonus int     `json:"health_bonus"` // added to max health while the buff is active
	ManaBonus   int     `json:"mana_bonus"`
}

// Quest is a static quest definition.
type Quest struct {
	Name   string `json:"name"`
	Target int    `json:"target"` // progress required for completion
}

// Class is a character class prototype. A fresh character of this class is
// instantiated from it, and its declared capacities size the inventory and
// equipment arrays of every member.
type Class struct {
	Name           string   `json:"name"`
	MaxLevel       int      `json:"max_level"`
	InventorySize  int      `json:"inventory_size"`
	EquipmentSlots []string `json:"equipment_slots"` // slot names; length is the capacity
	SkillTemplates []string `json:"skill_templates"` // skills every member of this class has
	BaseHealth     int      `json:"base_health"`
	BaseMana       int      `json:"base_mana"`
}

// ---- Catalog ----

// Catalog maps definition names to definitions. Persisted rows reference
// content by name; anything the catalog can no longer resolve is treated
// as removed content.
type Catalog struct {
	items   map[string]*Item
	skills  map[string]*Skill
	quests  map[string]*Quest
	classes map[string]*Class
}

func NewCatalog() *Catalog {
	return &Catalog{
		items:   make(map[string]*Item),
		skills:  make(map[string]*Skill),
		quests:  make(map[string]*Quest),
		classes: make(map[string]*Class),
	}
}

func (c *Catalog) AddItem(it *Item)   { c.items[it.Name] = it }
func (c *Catalog) AddSkill(s *Skill)  { c.skills[s.Name] = s }
func (c *Catalog) AddQuest(q *Quest)  { c.quests[q.Name] = q }
func (c *Catalog) AddClass(cl *Class) { c.classes[cl.Name] = cl }

func (c *Catalog) Item(name string) (*Item, bool) {
	it, ok := c.items[name]
	return it, ok
}

func (c *Catalog) Skill(name string) (*Skill, bool) {
	s, ok := c.skills[name]
	return s, ok
}

func (c *Catalog) Quest(name string) (*Quest, bool) {
	q, ok := c.quests[name]
	return q, ok
}

func (c *Catalog) Class(name string) (*Class, bool) {
	cl, ok := c.classes[name]
	return cl, ok
}

// Classes returns all class prototypes.
func (c *Catalog) Classes() []*Class {
	out := make([]*Class, 0, len(c.classes))
	for _, cl := range c.classes {
		out = append(out, cl)
	}
	return out
}

// ---- JSON directory loader ----

// LoadDir builds a Catalog from a data directory containing items.json,
// skills.json, quests.json and classes.json, each a JSON array of the
// corresponding definition. Missing files are skipped so a dev world can
// start from a partial content set.
func LoadDir(dir string) (*Catalog, error) {
	c := NewCatalog()

	var items []*Item
	if err := loadJSON(filepath.Join(dir, "items.json"), &items); err != nil {
		return nil, err
	}
	for _, it := range items {
		c.AddItem(it)
	}

	var skills []*Skill
	if err := loadJSON(filepath.Join(dir, "skills.json"), &skills); err != nil {
		return nil, err
	}
	for _, s := range skills {
		c.AddSkill(s)
	}

	var quests []*Quest
	if err := loadJSON(filepath.Join(dir, "quests.json"), &quests); err != nil {
		return nil, err
	}
	for _, q := range quests {
		c.AddQuest(q)
	}

	var classes []*Class
	if err := loadJSON(filepath.Join(dir, "classes.json"), &classes); err != nil {
		return nil, err
	}
	for _, cl := range classes {
		c.AddClass(cl)
	}

	return c, nil
}

func loadJSON(path string, dest interface{}) error {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("content: read %s: %w", path, err)
	}
	if err := json.Unmarshal(data, dest); err != nil {
		return fmt.Errorf("content: parse %s: %w", path, err)
	}
	return nil
}
