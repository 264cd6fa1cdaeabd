package fourth

import (
	"sort"
	"strings"
)

//// Word Table

// An evaluator carries a table of user words: a name mapped to the token
// sequence that would replace it. Nothing in the evaluation loop consults the
// table yet. The ":" and ";" markers that would fill it are accepted as
// no-ops, and an unrecognized name still fails as an unknown word.
type words struct {
	names []string
	defs  map[string][]string
}

// Names are folded to lower case, matching how tokens are dispatched.
func (ws *words) define(name string, body []string) {
	name = strings.ToLower(name)
	if _, defined := ws.defs[name]; !defined {
		if ws.defs == nil {
			ws.defs = make(map[string][]string)
		}
		ws.names = append(ws.names, name)
	}
	ws.defs[name] = append([]string(nil), body...)
}

func (ws words) lookup(name string) ([]string, bool) {
	body, defined := ws.defs[strings.ToLower(name)]
	if !defined {
		return nil, false
	}
	return append([]string(nil), body...), true
}

// sorted returns defined names in lexical order.
func (ws words) sorted() []string {
	names := append([]string(nil), ws.names...)
	sort.Strings(names)
	return names
}
