package types

// Checklist task kinds.
const (
	TaskTypeOneTime  = "OneTime"
	TaskTypeReusable = "Reusable"
)

// validTaskTypes is the set of recognized checklist task types.
var validTaskTypes = map[string]bool{
	TaskTypeOneTime:  true,
	TaskTypeReusable: true,
}

// ValidTaskType reports whether s names a recognized checklist task type.
func ValidTaskType(s string) bool { return validTaskTypes[s] }

// Checklist is a titled list of tasks. The embedded tasks have no identity of
// their own: they live and die with the parent checklist.
type Checklist struct {
	ID          ID
	Title       string
	Description string
	TaskType    string // one of the TaskType constants
	IsCompleted bool
	Category    string
	CreatedAt   int64 // unix milliseconds
	EndAt       int64 // unix milliseconds
	Tasks       []Task
}

// Task is a single entry embedded in a checklist. No primary key: the parent
// checklist is the only owner.
type Task struct {
	Title       string `json:"title"`
	IsCompleted bool   `json:"isCompleted"`
}

// ChecklistPatch lists exactly the checklist fields an update may touch.
// Nil fields are left unchanged.
type ChecklistPatch struct {
	Title       *string
	Description *string
	TaskType    *string
	IsCompleted *bool
	Category    *string
	EndAt       *int64
	Tasks       *[]Task
}

// Apply merges the patch into the checklist, field by field.
func (p ChecklistPatch) Apply(c *Checklist) {
	if p.Title != nil {
		c.Title = *p.Title
	}
	if p.Description != nil {
		c.Description = *p.Description
	}
	if p.TaskType != nil {
		c.TaskType = *p.TaskType
	}
	if p.IsCompleted != nil {
		c.IsCompleted = *p.IsCompleted
	}
	if p.Category != nil {
		c.Category = *p.Category
	}
	if p.EndAt != nil {
		c.EndAt = *p.EndAt
	}
	if p.Tasks != nil {
		c.Tasks = append([]Task(nil), (*p.Tasks)...)
	}
}
