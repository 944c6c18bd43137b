// Package task defines the Eisenhower board's task and quadrant model.
package task

// Quadrant is one of the four fixed priority categories a task lives in.
type Quadrant string

const (
	QuadrantUrgentImportant       Quadrant = "urgent-important"
	QuadrantImportantNotUrgent    Quadrant = "important-not-urgent"
	QuadrantUrgentNotImportant    Quadrant = "urgent-not-important"
	QuadrantNotUrgentNotImportant Quadrant = "not-urgent-not-important"
)

// DefaultQuadrant is the quadrant a fresh draft starts in.
const DefaultQuadrant = QuadrantUrgentImportant

// Accent names the semantic color a quadrant is drawn with. The styles
// package maps accents to palette colors.
type Accent string

const (
	AccentRed    Accent = "red"
	AccentBlue   Accent = "blue"
	AccentYellow Accent = "yellow"
	AccentGreen  Accent = "green"
)

// QuadrantInfo is the presentation tuple for a quadrant.
type QuadrantInfo struct {
	Quadrant Quadrant
	Label    string
	Accent   Accent
}

// quadrants is ordered left-to-right, top-to-bottom as drawn on the grid.
var quadrants = []QuadrantInfo{
	{Quadrant: QuadrantUrgentImportant, Label: "Urgent & Important", Accent: AccentRed},
	{Quadrant: QuadrantImportantNotUrgent, Label: "Important & Not Urgent", Accent: AccentBlue},
	{Quadrant: QuadrantUrgentNotImportant, Label: "Urgent & Not Important", Accent: AccentYellow},
	{Quadrant: QuadrantNotUrgentNotImportant, Label: "Not Urgent & Not Important", Accent: AccentGreen},
}

// Quadrants returns the four quadrants in grid order.
func Quadrants() []QuadrantInfo {
	out := make([]QuadrantInfo, len(quadrants))
	copy(out, quadrants)
	return out
}

// ParseQuadrant converts a string into a Quadrant.
func ParseQuadrant(s string) (Quadrant, bool) {
	q := Quadrant(s)
	return q, q.IsValid()
}

// IsValid reports whether q is one of the four known quadrants.
func (q Quadrant) IsValid() bool {
	return q.Index() >= 0
}

// Index returns the grid position of q, or -1 for an unknown quadrant.
func (q Quadrant) Index() int {
	for i, info := range quadrants {
		if info.Quadrant == q {
			return i
		}
	}
	return -1
}

// Label returns the display label, or the raw value for an unknown quadrant.
func (q Quadrant) Label() string {
	if i := q.Index(); i >= 0 {
		return quadrants[i].Label
	}
	return string(q)
}

// Info returns the presentation tuple for q.
func (q Quadrant) Info() (QuadrantInfo, bool) {
	if i := q.Index(); i >= 0 {
		return quadrants[i], true
	}
	return QuadrantInfo{}, false
}

func (q Quadrant) String() string { return string(q) }

// Task is a single item on the board.
type Task struct {
	ID          string   `json:"id"          yaml:"id"`
	Title       string   `json:"title"       yaml:"title"`
	Description string   `json:"description" yaml:"description"`
	Quadrant    Quadrant `json:"quadrant"    yaml:"quadrant"`
	Completed   bool     `json:"completed"   yaml:"completed"`
}

// Draft holds the fields of a task that has not been created yet.
type Draft struct {
	Title       string
	Description string
	Quadrant    Quadrant
}

// NewDraft returns an empty draft targeting q.
func NewDraft(q Quadrant) Draft {
	return Draft{Quadrant: q}
}

// DefaultDraft returns an empty draft in the default quadrant.
func DefaultDraft() Draft {
	return NewDraft(DefaultQuadrant)
}
