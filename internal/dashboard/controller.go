package dashboard

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"grievance-portal-go/pkg/logger"
)

const copiedIndicatorTTL = 3 * time.Second

var ErrNotConfirmed = errors.New("dashboard: action was not opened for confirmation")

// Client is the subset of the JSON API the dashboard talks to.
type Client interface {
	ListPersons(ctx context.Context) ([]Person, error)
	CreatePerson(ctx context.Context, name string) (Person, error)
	DeletePerson(ctx context.Context, slug string) error
	ResolveMessage(ctx context.Context, id string) (Message, error)
}

type Clipboard interface {
	WriteText(text string) error
}

// ManualCopyError is returned when the clipboard is unavailable; Link should
// be shown to the owner instead.
type ManualCopyError struct {
	Link string
	Err  error
}

func (e *ManualCopyError) Error() string {
	return fmt.Sprintf("please copy this link manually: %s", e.Link)
}

func (e *ManualCopyError) Unwrap() error {
	return e.Err
}

type Controller struct {
	mu        sync.Mutex
	state     State
	client    Client
	clipboard Clipboard
	baseURL   string
	log       logger.Logger
	copyTTL   time.Duration
	copyTimer *time.Timer
	onChange  func(State)
}

func NewController(client Client, clipboard Clipboard, baseURL string, log logger.Logger) *Controller {
	return &Controller{
		client:    client,
		clipboard: clipboard,
		baseURL:   baseURL,
		log:       log,
		copyTTL:   copiedIndicatorTTL,
	}
}

// OnChange registers fn to receive every new snapshot.
func (c *Controller) OnChange(fn func(State)) {
	c.mu.Lock()
	c.onChange = fn
	c.mu.Unlock()
}

func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

func (c *Controller) Views() []PersonView {
	return Views(c.State(), c.baseURL)
}

// Dispatch applies a to the current state and returns the result.
func (c *Controller) Dispatch(a Action) State {
	c.mu.Lock()
	c.state = Reduce(c.state, a)
	next := c.state
	fn := c.onChange
	c.mu.Unlock()

	if fn != nil {
		fn(next)
	}
	return next
}

// begin applies submit only if ready accepts the current state, checking and
// transitioning under one lock. It returns the state seen by ready.
func (c *Controller) begin(ready func(State) bool, submit Action) (State, bool) {
	c.mu.Lock()
	prev := c.state
	if !ready(prev) {
		c.mu.Unlock()
		return prev, false
	}
	c.state = Reduce(prev, submit)
	next := c.state
	fn := c.onChange
	c.mu.Unlock()

	if fn != nil {
		fn(next)
	}
	return prev, true
}

func (c *Controller) Load(ctx context.Context) error {
	persons, err := c.client.ListPersons(ctx)
	if err != nil {
		c.log.Error("dashboard.load: list persons failed", "err", err)
		c.Dispatch(LoadFailed{Err: err})
		return err
	}
	c.Dispatch(Loaded{Persons: persons})
	return nil
}

func (c *Controller) OpenCreate() {
	c.Dispatch(OpenCreate{})
}

func (c *Controller) SetCreateName(name string) {
	c.Dispatch(SetCreateName{Name: name})
}

// ConfirmCreate submits the name typed into the open create modal.
func (c *Controller) ConfirmCreate(ctx context.Context) (Person, error) {
	state, ok := c.begin(func(s State) bool {
		return s.Create.Open && !s.Create.Submitting
	}, SubmitCreate{})
	if !ok {
		return Person{}, ErrNotConfirmed
	}

	person, err := c.client.CreatePerson(ctx, state.Create.Name)
	if err != nil {
		c.log.Error("dashboard.create_person: request failed", "err", err, "name", state.Create.Name)
		c.Dispatch(CreateFailed{})
		return Person{}, err
	}
	c.Dispatch(PersonCreated{Person: person})
	return person, nil
}

func (c *Controller) OpenDelete(slug string) {
	c.Dispatch(OpenDelete{Slug: slug})
}

func (c *Controller) ConfirmDelete(ctx context.Context) error {
	state, ok := c.begin(func(s State) bool {
		return s.Delete.Open && !s.Delete.Submitting
	}, SubmitDelete{})
	if !ok {
		return ErrNotConfirmed
	}

	if err := c.client.DeletePerson(ctx, state.Delete.Slug); err != nil {
		c.log.Error("dashboard.delete_person: request failed", "err", err, "slug", state.Delete.Slug)
		c.Dispatch(DeleteFailed{})
		return err
	}
	c.Dispatch(PersonDeleted{Slug: state.Delete.Slug})
	return nil
}

func (c *Controller) OpenResolve(slug, messageID string) {
	c.Dispatch(OpenResolve{Slug: slug, MessageID: messageID})
}

func (c *Controller) ConfirmResolve(ctx context.Context) error {
	state, ok := c.begin(func(s State) bool {
		return s.Resolve.Open && !s.Resolve.Submitting
	}, SubmitResolve{})
	if !ok {
		return ErrNotConfirmed
	}

	if _, err := c.client.ResolveMessage(ctx, state.Resolve.MessageID); err != nil {
		c.log.Error("dashboard.resolve_message: request failed", "err", err, "message_id", state.Resolve.MessageID)
		c.Dispatch(ResolveFailed{})
		return err
	}
	c.Dispatch(MessageResolved{Slug: state.Resolve.Slug, MessageID: state.Resolve.MessageID})
	return nil
}

func (c *Controller) ToggleResolved(slug string) {
	c.Dispatch(ToggleResolved{Slug: slug})
}

// CopyLink puts the share link for slug on the clipboard and shows the
// copied indicator for a few seconds.
func (c *Controller) CopyLink(slug string) (string, error) {
	link := ShareLink(c.baseURL, slug)
	if c.clipboard == nil {
		return link, &ManualCopyError{Link: link}
	}
	if err := c.clipboard.WriteText(link); err != nil {
		c.log.Warn("dashboard.copy_link: clipboard write failed", "err", err, "slug", slug)
		return link, &ManualCopyError{Link: link, Err: err}
	}

	c.Dispatch(LinkCopied{Slug: slug})

	c.mu.Lock()
	if c.copyTimer != nil {
		c.copyTimer.Stop()
	}
	c.copyTimer = time.AfterFunc(c.copyTTL, func() {
		c.Dispatch(CopyCleared{Slug: slug})
	})
	c.mu.Unlock()

	return link, nil
}
