package dashboard

import "unicode/utf8"

// MaxNameInput matches the server-side person name limit.
const MaxNameInput = 24

type CreateModal struct {
	Open       bool
	Submitting bool
	Name       string
}

type DeleteModal struct {
	Open       bool
	Submitting bool
	Slug       string
}

type ResolveModal struct {
	Open       bool
	Submitting bool
	Slug       string
	MessageID  string
}

// State is an immutable snapshot. Reduce never modifies its input.
type State struct {
	Persons    []Person
	Loaded     bool
	LoadError  string
	Create     CreateModal
	Delete     DeleteModal
	Resolve    ResolveModal
	CopiedSlug string
	expanded   map[string]bool
}

func (s State) IsExpanded(slug string) bool {
	return s.expanded[slug]
}

func (s State) FindPerson(slug string) (Person, bool) {
	for _, p := range s.Persons {
		if p.Slug == slug {
			return p, true
		}
	}
	return Person{}, false
}

type Action interface {
	isAction()
}

type (
	Loaded          struct{ Persons []Person }
	LoadFailed      struct{ Err error }
	PersonCreated   struct{ Person Person }
	PersonDeleted   struct{ Slug string }
	MessageResolved struct{ Slug, MessageID string }

	OpenCreate    struct{}
	SetCreateName struct{ Name string }
	CancelCreate  struct{}
	SubmitCreate  struct{}
	CreateFailed  struct{}

	OpenDelete   struct{ Slug string }
	CancelDelete struct{}
	SubmitDelete struct{}
	DeleteFailed struct{}

	OpenResolve   struct{ Slug, MessageID string }
	CancelResolve struct{}
	SubmitResolve struct{}
	ResolveFailed struct{}

	ToggleResolved struct{ Slug string }
	LinkCopied     struct{ Slug string }
	CopyCleared    struct{ Slug string }
)

func (Loaded) isAction()          {}
func (LoadFailed) isAction()      {}
func (PersonCreated) isAction()   {}
func (PersonDeleted) isAction()   {}
func (MessageResolved) isAction() {}
func (OpenCreate) isAction()      {}
func (SetCreateName) isAction()   {}
func (CancelCreate) isAction()    {}
func (SubmitCreate) isAction()    {}
func (CreateFailed) isAction()    {}
func (OpenDelete) isAction()      {}
func (CancelDelete) isAction()    {}
func (SubmitDelete) isAction()    {}
func (DeleteFailed) isAction()    {}
func (OpenResolve) isAction()     {}
func (CancelResolve) isAction()   {}
func (SubmitResolve) isAction()   {}
func (ResolveFailed) isAction()   {}
func (ToggleResolved) isAction()  {}
func (LinkCopied) isAction()      {}
func (CopyCleared) isAction()     {}

// Reduce returns the state that follows s after a.
func Reduce(s State, a Action) State {
	switch a := a.(type) {
	case Loaded:
		s.Persons = clonePersons(a.Persons)
		s.Loaded = true
		s.LoadError = ""
	case LoadFailed:
		s.Loaded = true
		if a.Err != nil {
			s.LoadError = a.Err.Error()
		}
	case PersonCreated:
		persons := make([]Person, 0, len(s.Persons)+1)
		persons = append(persons, s.Persons...)
		persons = append(persons, clonePerson(a.Person))
		s.Persons = persons
		s.Create = CreateModal{}
	case PersonDeleted:
		persons := make([]Person, 0, len(s.Persons))
		for _, p := range s.Persons {
			if p.Slug != a.Slug {
				persons = append(persons, p)
			}
		}
		s.Persons = persons
		s.expanded = withExpanded(s.expanded, a.Slug, false)
		s.Delete = DeleteModal{}
		if s.CopiedSlug == a.Slug {
			s.CopiedSlug = ""
		}
	case MessageResolved:
		s.Persons = resolveMessage(s.Persons, a.Slug, a.MessageID)
		s.Resolve = ResolveModal{}

	case OpenCreate:
		if !s.Create.Submitting {
			s.Create = CreateModal{Open: true}
		}
	case SetCreateName:
		if s.Create.Open && !s.Create.Submitting {
			s.Create.Name = truncateRunes(a.Name, MaxNameInput)
		}
	case CancelCreate:
		if !s.Create.Submitting {
			s.Create = CreateModal{}
		}
	case SubmitCreate:
		if s.Create.Open && !s.Create.Submitting {
			s.Create.Submitting = true
		}
	case CreateFailed:
		s.Create.Submitting = false

	case OpenDelete:
		if !s.Delete.Submitting {
			s.Delete = DeleteModal{Open: true, Slug: a.Slug}
		}
	case CancelDelete:
		if !s.Delete.Submitting {
			s.Delete = DeleteModal{}
		}
	case SubmitDelete:
		if s.Delete.Open && !s.Delete.Submitting {
			s.Delete.Submitting = true
		}
	case DeleteFailed:
		s.Delete.Submitting = false

	case OpenResolve:
		if !s.Resolve.Submitting {
			s.Resolve = ResolveModal{Open: true, Slug: a.Slug, MessageID: a.MessageID}
		}
	case CancelResolve:
		if !s.Resolve.Submitting {
			s.Resolve = ResolveModal{}
		}
	case SubmitResolve:
		if s.Resolve.Open && !s.Resolve.Submitting {
			s.Resolve.Submitting = true
		}
	case ResolveFailed:
		s.Resolve.Submitting = false

	case ToggleResolved:
		s.expanded = withExpanded(s.expanded, a.Slug, !s.expanded[a.Slug])
	case LinkCopied:
		s.CopiedSlug = a.Slug
	case CopyCleared:
		if s.CopiedSlug == a.Slug {
			s.CopiedSlug = ""
		}
	}
	return s
}

func withExpanded(current map[string]bool, slug string, expanded bool) map[string]bool {
	next := make(map[string]bool, len(current)+1)
	for k, v := range current {
		next[k] = v
	}
	if expanded {
		next[slug] = true
	} else {
		delete(next, slug)
	}
	return next
}

func resolveMessage(persons []Person, slug, messageID string) []Person {
	result := make([]Person, len(persons))
	copy(result, persons)
	for i, p := range result {
		if p.Slug != slug {
			continue
		}
		messages := make([]Message, len(p.Messages))
		copy(messages, p.Messages)
		for j := range messages {
			if messages[j].ID == messageID {
				messages[j].Done = true
			}
		}
		result[i].Messages = messages
	}
	return result
}

func clonePersons(persons []Person) []Person {
	result := make([]Person, 0, len(persons))
	for _, p := range persons {
		result = append(result, clonePerson(p))
	}
	return result
}

func clonePerson(p Person) Person {
	messages := make([]Message, len(p.Messages))
	copy(messages, p.Messages)
	p.Messages = messages
	return p
}

func truncateRunes(value string, limit int) string {
	if utf8.RuneCountInString(value) <= limit {
		return value
	}
	runes := []rune(value)
	return string(runes[:limit])
}
