package formatter

import (
	"fmt"
	"strings"
)

const (
	filledBlock = "█"
	emptyBlock  = "░"
)

// RenderProgress renders a bar like [████░░░░] 45% for a whole percentage.
// The bar is capped at full but the label shows pct as given, so a day past
// its target reads e.g. 150%.
func RenderProgress(pct int, width int) string {
	if width < 2 {
		width = 2
	}
	filled := min(width, max(0, pct*width/100))
	bar := strings.Repeat(filledBlock, filled) + strings.Repeat(emptyBlock, width-filled)
	return fmt.Sprintf("[%s] %s", PercentStyle(pct).Render(bar), fmt.Sprintf("%3d%%", pct))
}
