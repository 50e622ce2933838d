package inmemory

import (
	"context"
	"sort"
	"sync"
	"time"

	messagedomain "grievance-portal-go/internal/domain/message"
	persondomain "grievance-portal-go/internal/domain/person"
	userdomain "grievance-portal-go/internal/domain/user"
)

// Store keeps users, persons and messages in process memory. It satisfies the
// user, person and message repositories and mirrors the cascade and unique
// constraints of the SQL schema.
type Store struct {
	mu       sync.RWMutex
	now      func() time.Time
	seq      int64
	users    map[string]userdomain.User
	persons  map[string]personItem
	messages map[string]messageItem
}

type personItem struct {
	value persondomain.Person
	seq   int64
}

type messageItem struct {
	value messagedomain.Message
	seq   int64
}

func NewStore() *Store {
	return &Store{
		now:      func() time.Time { return time.Now().UTC() },
		users:    make(map[string]userdomain.User),
		persons:  make(map[string]personItem),
		messages: make(map[string]messageItem),
	}
}

func (s *Store) GetUserByID(ctx context.Context, id string) (*userdomain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	user, ok := s.users[id]
	if !ok {
		return nil, userdomain.ErrUserNotFound
	}
	return &user, nil
}

func (s *Store) GetUserByUsername(ctx context.Context, username string) (*userdomain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, user := range s.users {
		if user.Username == username {
			found := user
			return &found, nil
		}
	}
	return nil, userdomain.ErrUserNotFound
}

func (s *Store) CreateUser(ctx context.Context, user *userdomain.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.users {
		if existing.Username == user.Username {
			return userdomain.ErrUsernameTaken
		}
	}
	if user.CreatedAt.IsZero() {
		user.CreatedAt = s.now()
	}
	s.users[user.ID] = *user
	return nil
}

func (s *Store) ListPersonsWithMessages(ctx context.Context, userID string) ([]persondomain.Person, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	items := make([]personItem, 0)
	for _, item := range s.persons {
		if item.value.UserID == userID {
			items = append(items, item)
		}
	}
	sort.Slice(items, func(i, j int) bool { return items[i].seq < items[j].seq })

	persons := make([]persondomain.Person, 0, len(items))
	for _, item := range items {
		person := item.value
		person.Messages = s.messagesFor(person.ID)
		persons = append(persons, person)
	}
	return persons, nil
}

func (s *Store) GetPersonBySlug(ctx context.Context, slug string) (*persondomain.Person, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	item, ok := s.personBySlug(slug)
	if !ok {
		return nil, persondomain.ErrPersonNotFound
	}
	person := item.value
	return &person, nil
}

func (s *Store) IsSlugTaken(ctx context.Context, slug string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	_, ok := s.personBySlug(slug)
	return ok, nil
}

func (s *Store) CreatePerson(ctx context.Context, person *persondomain.Person) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.personBySlug(person.Slug); ok {
		return persondomain.ErrSlugTaken
	}
	if person.CreatedAt.IsZero() {
		person.CreatedAt = s.now()
	}
	stored := *person
	stored.Messages = nil
	s.seq++
	s.persons[person.ID] = personItem{value: stored, seq: s.seq}
	return nil
}

func (s *Store) DeletePerson(ctx context.Context, id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.persons[id]; !ok {
		return false, nil
	}
	delete(s.persons, id)
	for msgID, item := range s.messages {
		if item.value.PersonID == id {
			delete(s.messages, msgID)
		}
	}
	return true, nil
}

func (s *Store) GetPersonIDBySlug(ctx context.Context, slug string) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	item, ok := s.personBySlug(slug)
	if !ok {
		return "", messagedomain.ErrInvalidLink
	}
	return item.value.ID, nil
}

func (s *Store) CreateMessage(ctx context.Context, msg *messagedomain.Message) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.persons[msg.PersonID]; !ok {
		return messagedomain.ErrInvalidLink
	}
	if msg.CreatedAt.IsZero() {
		msg.CreatedAt = s.now()
	}
	s.seq++
	s.messages[msg.ID] = messageItem{value: cloneMessage(*msg), seq: s.seq}
	return nil
}

func (s *Store) GetMessageWithOwner(ctx context.Context, id string) (*messagedomain.Message, string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	item, ok := s.messages[id]
	if !ok {
		return nil, "", messagedomain.ErrMessageNotFound
	}
	owner := s.persons[item.value.PersonID].value.UserID
	msg := cloneMessage(item.value)
	return &msg, owner, nil
}

func (s *Store) MarkDone(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	item, ok := s.messages[id]
	if !ok {
		return messagedomain.ErrMessageNotFound
	}
	item.value.Done = true
	s.messages[id] = item
	return nil
}

func (s *Store) DeleteMessage(ctx context.Context, id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.messages[id]; !ok {
		return false, nil
	}
	delete(s.messages, id)
	return true, nil
}

func (s *Store) personBySlug(slug string) (personItem, bool) {
	for _, item := range s.persons {
		if item.value.Slug == slug {
			return item, true
		}
	}
	return personItem{}, false
}

// messagesFor returns the person's messages newest first. Caller holds mu.
func (s *Store) messagesFor(personID string) []messagedomain.Message {
	items := make([]messageItem, 0)
	for _, item := range s.messages {
		if item.value.PersonID == personID {
			items = append(items, item)
		}
	}
	sort.Slice(items, func(i, j int) bool { return items[i].seq > items[j].seq })

	messages := make([]messagedomain.Message, 0, len(items))
	for _, item := range items {
		messages = append(messages, cloneMessage(item.value))
	}
	return messages
}

func cloneMessage(msg messagedomain.Message) messagedomain.Message {
	if msg.ExpectedResponse != nil {
		value := *msg.ExpectedResponse
		msg.ExpectedResponse = &value
	}
	return msg
}
