package gen

import "fmt"

// Slot names one of the fixed template slots the code writer fills.
type Slot uint8

// Code slots. The Base slots belong to the generated (overwritable) file,
// the Entity slots to the hand-editable file generated once.
const (
	BeforeType Slot = iota
	AfterType
	BeforeBase
	InsideBase
	BeforeEntity
	InsideEntity
)

var slotNames = [...]string{
	BeforeType:   "beforeType",
	AfterType:    "afterType",
	BeforeBase:   "beforeBase",
	InsideBase:   "insideBase",
	BeforeEntity: "beforeEntity",
	InsideEntity: "insideEntity",
}

// Slots returns all slots in template order.
func Slots() []Slot {
	return []Slot{BeforeType, AfterType, BeforeBase, InsideBase, BeforeEntity, InsideEntity}
}

func (s Slot) String() string {
	if int(s) < len(slotNames) {
		return slotNames[s]
	}
	return fmt.Sprintf("Slot(%d)", s)
}

// Code holds the ordered source lines of every slot. Lines are opaque
// text and only ever appended.
type Code struct {
	BeforeType   []string `yaml:"beforeType,omitempty"`
	AfterType    []string `yaml:"afterType,omitempty"`
	BeforeBase   []string `yaml:"beforeBase,omitempty"`
	InsideBase   []string `yaml:"insideBase,omitempty"`
	BeforeEntity []string `yaml:"beforeEntity,omitempty"`
	InsideEntity []string `yaml:"insideEntity,omitempty"`
}

func (c *Code) slot(s Slot) *[]string {
	switch s {
	case BeforeType:
		return &c.BeforeType
	case AfterType:
		return &c.AfterType
	case BeforeBase:
		return &c.BeforeBase
	case InsideBase:
		return &c.InsideBase
	case BeforeEntity:
		return &c.BeforeEntity
	case InsideEntity:
		return &c.InsideEntity
	default:
		panic(fmt.Sprintf("airent-api: unknown code slot %d", s))
	}
}

// Append appends lines to the given slot.
func (c *Code) Append(s Slot, lines ...string) {
	p := c.slot(s)
	*p = append(*p, lines...)
}

// Lines returns the lines of the given slot.
func (c *Code) Lines(s Slot) []string {
	return *c.slot(s)
}

// Merge appends every slot of o to the matching slot of c.
func (c *Code) Merge(o Code) {
	for _, s := range Slots() {
		c.Append(s, o.Lines(s)...)
	}
}

// Len returns the total number of lines over all slots.
func (c *Code) Len() int {
	n := 0
	for _, s := range Slots() {
		n += len(c.Lines(s))
	}
	return n
}
