package xenv

import (
	"strings"
	"unicode/utf8"
)

const cellSeparator = "|"

// GenerateMarkdown documents the global registry, see Registry.GenerateMarkdown.
func GenerateMarkdown() string {
	return global.GenerateMarkdown()
}

// GenerateMarkdown renders the declared variables as a markdown table with
// their requirement, secrecy, default and usage.
func (r *Registry) GenerateMarkdown() string {
	table := [][]string{
		{"**Name**", "**Required**", "**Secret**", "**Default value**", "**Usage**"},
	}

	for _, v := range r.declarations() {
		def, hasDefault := v.Default()
		if v.secret {
			def = mask(def)
		}

		table = append(table, []string{
			"`" + v.name + "`",
			boolIcon(!hasDefault),
			boolIcon(v.secret),
			codeBlock(def),
			v.usage,
		})
	}

	sizes := make([]int, len(table[0]))
	for _, row := range table {
		for i, cell := range row {
			sizes[i] = max(sizes[i], utf8.RuneCountInString(cell)+2)
		}
	}

	var out strings.Builder
	for i, row := range table {
		writeRow(&out, row, sizes)

		if i == 0 {
			dashes := make([]string, len(sizes))
			for j, size := range sizes {
				dashes[j] = strings.Repeat("-", size)
			}
			out.WriteString(cellSeparator + strings.Join(dashes, cellSeparator) + cellSeparator + "\n")
		}
	}

	return strings.TrimSpace(out.String())
}

func writeRow(out *strings.Builder, row []string, sizes []int) {
	out.WriteString(cellSeparator)

	for j, cell := range row {
		padding := sizes[j] - utf8.RuneCountInString(cell) - 2
		out.WriteString(" " + cell + " " + strings.Repeat(" ", padding))
		out.WriteString(cellSeparator)
	}

	out.WriteRune('\n')
}

func boolIcon(value bool) string {
	if value {
		return "✅"
	}

	return " "
}

func codeBlock(val string) string {
	if val == "" {
		return val
	}

	return "`" + val + "`"
}
