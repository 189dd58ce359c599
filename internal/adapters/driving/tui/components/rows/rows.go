// Package rows renders a window of raw trip rows as a table.
package rows

import (
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/custodia-labs/bikeshare-cli/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/bikeshare-cli/internal/core/domain"
)

// NoCursor disables row highlighting.
const NoCursor = -1

// Render draws the rows of w under the given CSV header. The first
// column holds each row's index in the filtered table. The row at
// cursor (relative to the window) is highlighted.
func Render(s *styles.Styles, columns []string, w domain.RowWindow, cursor int) string {
	if s == nil {
		s = styles.DefaultStyles()
	}

	headers := make([]string, 0, len(columns)+1)
	headers = append(headers, "")
	headers = append(headers, columns...)

	body := make([][]string, 0, len(w.Records))
	for i := range w.Records {
		cells := make([]string, 0, len(headers))
		cells = append(cells, strconv.Itoa(w.Offset+i))
		cells = append(cells, w.Records[i].Raw...)
		for len(cells) < len(headers) {
			cells = append(cells, "")
		}
		body = append(body, cells)
	}

	return table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(s.TableBorder).
		Headers(headers...).
		Rows(body...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return s.TableHeader
			case row == cursor:
				return s.TableCell.Reverse(true)
			default:
				return s.TableCell
			}
		}).
		Render()
}
