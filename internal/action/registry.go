package action

import (
	"sort"
	"strings"

	"github.com/sahilm/fuzzy"
)

// Registry 按注册顺序保存动作。
type Registry struct {
	ordered []Action
	byName  map[string]Action
}

func NewRegistry(actions ...Action) *Registry {
	r := &Registry{byName: make(map[string]Action, len(actions))}
	for _, a := range actions {
		if a == nil {
			continue
		}
		if _, dup := r.byName[a.Name()]; dup {
			continue
		}
		r.ordered = append(r.ordered, a)
		r.byName[a.Name()] = a
	}
	return r
}

func (r *Registry) Get(name string) (Action, bool) {
	a, ok := r.byName[strings.ToLower(strings.TrimSpace(name))]
	return a, ok
}

func (r *Registry) All() []Action {
	return append([]Action(nil), r.ordered...)
}

// Available 返回对选区可用的动作，上下文匹配的排在前面，其余保持注册顺序。
func (r *Registry) Available(sel Selection) []Action {
	type scored struct {
		action Action
		match  bool
	}
	var hits []scored
	for _, a := range r.ordered {
		av := a.Available(sel)
		if !av.Available {
			continue
		}
		hits = append(hits, scored{action: a, match: av.ContextMatch})
	}
	sort.SliceStable(hits, func(i, j int) bool {
		return hits[i].match && !hits[j].match
	})
	out := make([]Action, 0, len(hits))
	for _, h := range hits {
		out = append(out, h.action)
	}
	return out
}

// Find 在给定动作中按名称与标题做模糊匹配，空查询原样返回。
func Find(actions []Action, query string) []Action {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return actions
	}
	keys := make([]string, len(actions))
	for i, a := range actions {
		keys[i] = strings.ToLower(a.Name() + " " + a.Title())
	}
	results := fuzzy.Find(query, keys)
	out := make([]Action, 0, len(results))
	for _, res := range results {
		out = append(out, actions[res.Index])
	}
	return out
}
