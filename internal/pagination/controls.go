package pagination

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// EllipsisText is how an elided run of pages is rendered.
const EllipsisText = "..."

// MaxControls is the longest bar BuildControls produces before truncation:
// first, ellipsis, the five-page window, ellipsis, last.
const MaxControls = 2*windowRadius + 5

// Control is one entry in the page-number bar: a page number or an ellipsis.
type Control struct {
	Page     int
	Ellipsis bool
}

// PageControl returns a control for page n.
func PageControl(n int) Control { return Control{Page: n} }

// EllipsisControl returns an ellipsis marker.
func EllipsisControl() Control { return Control{Ellipsis: true} }

func (c Control) String() string {
	if c.Ellipsis {
		return EllipsisText
	}
	return strconv.Itoa(c.Page)
}

// MarshalJSON renders pages as numbers and ellipses as "...".
func (c Control) MarshalJSON() ([]byte, error) {
	if c.Ellipsis {
		return json.Marshal(EllipsisText)
	}
	return json.Marshal(c.Page)
}

// UnmarshalJSON accepts either a page number or the ellipsis string.
func (c *Control) UnmarshalJSON(data []byte) error {
	var page int
	if err := json.Unmarshal(data, &page); err == nil {
		*c = PageControl(page)
		return nil
	}
	var text string
	if err := json.Unmarshal(data, &text); err != nil {
		return err
	}
	if text != EllipsisText {
		return fmt.Errorf("pagination: unexpected control %q", text)
	}
	*c = EllipsisControl()
	return nil
}

// BuildControls returns the page-number bar for current out of totalPages:
// page 1, a window of up to two pages either side of current (widened to a run of
// five near either edge), ellipses over skipped runs, then the last page. The result
// is cut to its first maxVisible entries, which can drop the trailing ellipsis or
// the last page when maxVisible is small.
func BuildControls(current, totalPages, maxVisible int) []Control {
	if totalPages <= 0 {
		return []Control{}
	}
	if totalPages == 1 {
		return truncate([]Control{PageControl(1)}, maxVisible)
	}

	controls := []Control{PageControl(1)}

	start := max(2, current-windowRadius)
	end := min(totalPages-1, current+windowRadius)

	if current <= windowRadius+1 {
		end = min(edgeRun, totalPages-1)
	} else if current >= totalPages-windowRadius {
		start = max(totalPages-2*windowRadius, 2)
	}

	if start > 2 {
		controls = append(controls, EllipsisControl())
	}
	for i := start; i <= end; i++ {
		controls = append(controls, PageControl(i))
	}
	if end < totalPages-1 {
		controls = append(controls, EllipsisControl())
	}
	controls = append(controls, PageControl(totalPages))

	return truncate(controls, maxVisible)
}

func truncate(controls []Control, maxVisible int) []Control {
	if maxVisible < 0 {
		maxVisible = 0
	}
	if len(controls) > maxVisible {
		return controls[:maxVisible]
	}
	return controls
}
