package models

// ColumnKey is the status of a task and the id of the column that holds it
type ColumnKey string

// The four workflow stages, in board order
const (
	StatusBacklog    ColumnKey = "backlog"
	StatusInProgress ColumnKey = "inProgress"
	StatusReview     ColumnKey = "review"
	StatusDone       ColumnKey = "done"
)

// Column is a static board column definition. Columns are configuration,
// they are never persisted.
type Column struct {
	ID     ColumnKey `json:"id"`
	Title  string    `json:"title"`
	Accent string    `json:"accent"` // Hex color code (e.g., "#f97316")
}

var columns = [...]Column{
	{ID: StatusBacklog, Title: "Backlog", Accent: "#f97316"},
	{ID: StatusInProgress, Title: "In Progress", Accent: "#3b82f6"},
	{ID: StatusReview, Title: "Review", Accent: "#a855f7"},
	{ID: StatusDone, Title: "Done", Accent: "#22c55e"},
}

// Columns returns the board columns in their fixed order
func Columns() []Column {
	out := make([]Column, len(columns))
	copy(out, columns[:])
	return out
}

// ColumnByKey returns the definition for key
func ColumnByKey(key ColumnKey) (Column, bool) {
	for _, c := range columns {
		if c.ID == key {
			return c, true
		}
	}
	return Column{}, false
}

// Valid reports whether k names one of the board columns
func (k ColumnKey) Valid() bool {
	_, ok := ColumnByKey(k)
	return ok
}

// Index returns the position of the column on the board, or -1
func (k ColumnKey) Index() int {
	for i, c := range columns {
		if c.ID == k {
			return i
		}
	}
	return -1
}

// Next returns the column to the right of k
func (k ColumnKey) Next() (ColumnKey, error) {
	i := k.Index()
	if i < 0 {
		return "", ErrInvalidStatus
	}
	if i == len(columns)-1 {
		return "", ErrAlreadyLastColumn
	}
	return columns[i+1].ID, nil
}

// Prev returns the column to the left of k
func (k ColumnKey) Prev() (ColumnKey, error) {
	i := k.Index()
	if i < 0 {
		return "", ErrInvalidStatus
	}
	if i == 0 {
		return "", ErrAlreadyFirstColumn
	}
	return columns[i-1].ID, nil
}
