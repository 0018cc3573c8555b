package figure

import (
	"fmt"

	"github.com/conway-lab/lifebench/pkg/table"
)

// PanelSpec selects the data prefix one panel renders and the title it carries.
type PanelSpec struct {
	PrefixWidth int
	Title       string
}

// The single-panel threshold and the fixed prefix steps are one coupled
// decision: steps >= the total column count are filtered out before the full
// width is appended, so the widths stay strictly increasing.
const adaptiveThreshold = 50

var prefixSteps = []int{10, 20, 50}

// SelectLayout decides how many panels to draw for a table with
// totalDataColumns data columns. Below the threshold it yields one untitled
// full-width panel; otherwise four panels at increasing prefix widths,
// intended for a 2x2 grid.
func SelectLayout(totalDataColumns int) ([]PanelSpec, error) {
	if totalDataColumns < 1 {
		return nil, fmt.Errorf("%w: no panel can be built from %d data columns", table.ErrInvalidRange, totalDataColumns)
	}

	if totalDataColumns < adaptiveThreshold {
		return []PanelSpec{{PrefixWidth: totalDataColumns}}, nil
	}

	var specs []PanelSpec
	for _, w := range prefixSteps {
		if w >= totalDataColumns {
			break
		}
		specs = append(specs, PanelSpec{
			PrefixWidth: w,
			Title:       fmt.Sprintf("%d Values from dataset", w),
		})
	}
	specs = append(specs, PanelSpec{
		PrefixWidth: totalDataColumns,
		Title:       fmt.Sprintf("%d Values from dataset", totalDataColumns),
	})

	return specs, nil
}
