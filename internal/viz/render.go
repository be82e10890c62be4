package viz

import (
	"fmt"
	"strings"

	"github.com/san-kum/pencil/internal/namelist"
)

// ParamSet is the read-only view of a parameter set that viz renders.
type ParamSet interface {
	Keys() []string
	Get(name string) (namelist.Value, bool)
	Groups() []string
	GroupKeys(module string) []string
	GroupValue(module, name string) (namelist.Value, bool)
	Conflicts() []namelist.Conflict
}

type row struct {
	group string
	key   string
	value string
}

// paramRows flattens a ParamSet: flat keys first, then each group in order.
func paramRows(ps ParamSet) []row {
	var rows []row
	for _, k := range ps.Keys() {
		v, _ := ps.Get(k)
		rows = append(rows, row{key: k, value: v.String()})
	}
	for _, g := range ps.Groups() {
		for _, k := range ps.GroupKeys(g) {
			v, _ := ps.GroupValue(g, k)
			rows = append(rows, row{group: g, key: k, value: v.String()})
		}
	}
	return rows
}

func (r row) name() string {
	if r.group == "" {
		return r.key
	}
	return r.group + "." + r.key
}

// RenderParams lists every parameter, nested groups under their own heading,
// followed by the name conflicts that caused the nesting.
func RenderParams(ps ParamSet) string {
	rows := paramRows(ps)
	width := 0
	for _, r := range rows {
		width = max(width, len(r.key))
	}

	var b strings.Builder
	b.WriteString(HeaderStyle.Render("parameters"))
	b.WriteString("\n")

	group := ""
	for _, r := range rows {
		if r.group != group {
			group = r.group
			b.WriteString("\n" + GroupTitle.Render("["+group+"]") + "\n")
		}
		indent := ""
		if r.group != "" {
			indent = "  "
		}
		fmt.Fprintf(&b, "%s%s = %s\n", indent, KeyStyle.Render(fmt.Sprintf("%-*s", width, r.key)), ValueStyle.Render(r.value))
	}

	if conflicts := ps.Conflicts(); len(conflicts) > 0 {
		b.WriteString("\n" + HeaderStyle.Render("conflicts") + "\n")
		for _, c := range conflicts {
			b.WriteString(Warning.Render(c.String()) + "\n")
		}
	}
	return b.String()
}
