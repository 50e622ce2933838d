package dashboard

import (
	"net/url"
	"strings"
)

// Partition splits messages into unresolved and resolved, keeping order.
func Partition(p Person) (active, resolved []Message) {
	active = make([]Message, 0, len(p.Messages))
	resolved = make([]Message, 0)
	for _, msg := range p.Messages {
		if msg.Done {
			resolved = append(resolved, msg)
			continue
		}
		active = append(active, msg)
	}
	return active, resolved
}

func ShareLink(baseURL, slug string) string {
	return strings.TrimRight(baseURL, "/") + "/share/" + url.PathEscape(slug)
}

// PersonView is a person prepared for rendering.
type PersonView struct {
	Person
	Active    []Message
	Resolved  []Message
	ShareLink string
	Expanded  bool
	Copied    bool
}

// Views renders every person in s. Expanded and Copied reflect the UI state.
func Views(s State, baseURL string) []PersonView {
	views := make([]PersonView, 0, len(s.Persons))
	for _, p := range s.Persons {
		active, resolved := Partition(p)
		views = append(views, PersonView{
			Person:    p,
			Active:    active,
			Resolved:  resolved,
			ShareLink: ShareLink(baseURL, p.Slug),
			Expanded:  s.IsExpanded(p.Slug),
			Copied:    s.CopiedSlug == p.Slug,
		})
	}
	return views
}
