package models

// View is a named predicate bucket used to filter the task list
type View string

const (
	ViewAll       View = "all"
	ViewToday     View = "today"
	ViewImportant View = "important"
	ViewPlanned   View = "planned"
	ViewAssigned  View = "assigned"
)

// Views lists the views in sidebar order
var Views = []View{ViewToday, ViewImportant, ViewPlanned, ViewAssigned, ViewAll}

// Valid reports whether v is one of the five views
func (v View) Valid() bool {
	switch v {
	case ViewAll, ViewToday, ViewImportant, ViewPlanned, ViewAssigned:
		return true
	}
	return false
}

// Title is the display heading for a view
func (v View) Title() string {
	switch v {
	case ViewAll:
		return "All Tasks"
	case ViewToday:
		return "Today"
	case ViewImportant:
		return "Important"
	case ViewPlanned:
		return "Planned"
	case ViewAssigned:
		return "Assigned to me"
	}
	return string(v)
}

// SortKey orders the flat task list
type SortKey string

const (
	SortNewest   SortKey = "newest"
	SortOldest   SortKey = "oldest"
	SortPriority SortKey = "priority"
)

// Valid reports whether k is a known sort key
func (k SortKey) Valid() bool {
	return k == SortNewest || k == SortOldest || k == SortPriority
}

// ListFilter narrows the flat task list
type ListFilter string

const (
	FilterAll       ListFilter = "all"
	FilterActive    ListFilter = "active"
	FilterCompleted ListFilter = "completed"
	FilterHigh      ListFilter = "high"
	FilterMedium    ListFilter = "medium"
	FilterLow       ListFilter = "low"
)

// Valid reports whether f is a known list filter
func (f ListFilter) Valid() bool {
	switch f {
	case FilterAll, FilterActive, FilterCompleted, FilterHigh, FilterMedium, FilterLow:
		return true
	}
	return false
}
