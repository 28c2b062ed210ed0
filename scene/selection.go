package scene

import (
	"fmt"
)

//*******************************************
// selection state
//*******************************************

// Classifies the current building selection for display. Routing
// needs exactly two buildings.
func SelectionStatus(selected []string) string {
	switch len(selected) {
	case 0:
		return "select two buildings"
	case 1:
		return "select one more building"
	case 2:
		return "ready"
	default:
		return fmt.Sprintf("%v buildings selected (need exactly 2)", len(selected))
	}
}
