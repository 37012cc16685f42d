package entities

import "time"

// DealStatus represents the commercial outcome of a deal.
//
// Domain notes:
//   - The status is derived from the stage a deal was last dropped into.
//   - "won" and "lost" are only reachable through stages configured with an outcome.

type DealStatus string

const (
	DealStatusActive DealStatus = "active"
	DealStatusWon    DealStatus = "won"
	DealStatusLost   DealStatus = "lost"
)

func (s DealStatus) IsValid() bool {
	switch s {
	case DealStatusActive, DealStatusWon, DealStatusLost:
		return true
	}
	return false
}

// Deal is a sales opportunity sitting in exactly one pipeline stage.
//
// Identity fields (ID, Title, Company, Contact, Value, DueDate) survive every
// board move; Probability and Status are recomputed on cross-stage moves.
type Deal struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Company     string     `json:"company"`
	Contact     string     `json:"contact"`
	Description string     `json:"description,omitempty"`
	Value       float64    `json:"value"`
	Probability int        `json:"probability"`
	DueDate     time.Time  `json:"due_date"`
	Status      DealStatus `json:"status"`
}

// DealDraft carries the add-deal form fields. The target stage decides
// probability and status.
type DealDraft struct {
	Title       string
	Company     string
	Contact     string
	Description string
	Value       float64
	DueDate     time.Time
}

// DealPatch carries the edit-deal form fields. Nil fields are left untouched.
type DealPatch struct {
	Title       *string
	Company     *string
	Contact     *string
	Description *string
	Value       *float64
	DueDate     *time.Time
}

// IsEmpty reports whether the patch would change nothing.
func (p DealPatch) IsEmpty() bool {
	return p.Title == nil && p.Company == nil && p.Contact == nil &&
		p.Description == nil && p.Value == nil && p.DueDate == nil
}
