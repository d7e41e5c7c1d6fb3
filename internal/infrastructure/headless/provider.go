// Package headless is a content provider with no real terminals, file
// browsers or web views behind it. Panes are records in memory whose
// identity tokens can be changed and whose exit can be simulated. The CLI
// playground and the coordinator tests run on it.
package headless

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/koder-native/kterm/internal/application/port"
	"github.com/koder-native/kterm/internal/domain/entity"
	"github.com/koder-native/kterm/internal/logging"
)

// ErrUnknownContent is returned for ids this provider never issued or
// already released.
var ErrUnknownContent = errors.New("unknown content")

// Content is the state of one simulated pane.
type Content struct {
	ID    entity.ContentID
	Kind  entity.PaneKind
	Token string
	Title string
}

// Provider implements port.ContentProvider in memory.
type Provider struct {
	mu       sync.Mutex
	next     int
	contents map[entity.ContentID]*Content
	focused  entity.ContentID
	failing  map[entity.PaneKind]error
	home     string

	onExit  func(entity.ContentID)
	onTitle func(entity.ContentID, string)
}

// New creates a provider. home is the token given to terminals and
// explorers created without a directory.
func New(home string) *Provider {
	return &Provider{
		contents: make(map[entity.ContentID]*Content),
		failing:  make(map[entity.PaneKind]error),
		home:     home,
	}
}

// OnExit registers the callback run when content exits by itself.
func (p *Provider) OnExit(fn func(entity.ContentID)) {
	p.mu.Lock()
	p.onExit = fn
	p.mu.Unlock()
}

// OnTitle registers the callback run when content reports a new title.
func (p *Provider) OnTitle(fn func(entity.ContentID, string)) {
	p.mu.Lock()
	p.onTitle = fn
	p.mu.Unlock()
}

// FailCreate makes CreatePane fail for kind until cleared with a nil err.
func (p *Provider) FailCreate(kind entity.PaneKind, err error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if err == nil {
		delete(p.failing, kind)
		return
	}
	p.failing[kind] = err
}

func (p *Provider) CreatePane(ctx context.Context, kind entity.PaneKind, initParam string) (entity.ContentID, error) {
	p.mu.Lock()
	if err := p.failing[kind]; err != nil {
		p.mu.Unlock()
		return "", fmt.Errorf("start %s: %w", kind, err)
	}
	p.next++
	id := entity.ContentID(fmt.Sprintf("%s-%d", kind, p.next))
	token := initParam
	if token == "" {
		switch kind {
		case entity.KindBrowser:
			token = entity.DefaultBrowserURL
		default:
			token = p.home
		}
	}
	p.contents[id] = &Content{ID: id, Kind: kind, Token: token}
	p.mu.Unlock()

	logging.FromContext(ctx).Debug().
		Str("content_id", string(id)).
		Str("kind", kind.String()).
		Str("token", token).
		Msg("headless content created")
	return id, nil
}

func (p *Provider) DestroyPane(_ context.Context, id entity.ContentID) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	delete(p.contents, id)
	if p.focused == id {
		p.focused = ""
	}
	return nil
}

func (p *Provider) Focus(_ context.Context, id entity.ContentID) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if _, ok := p.contents[id]; !ok {
		return fmt.Errorf("%w: %s", ErrUnknownContent, id)
	}
	p.focused = id
	return nil
}

func (p *Provider) IdentityToken(_ context.Context, id entity.ContentID) (string, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	c, ok := p.contents[id]
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrUnknownContent, id)
	}
	return c.Token, nil
}

// SetToken changes the working directory, path or URL of content, as a
// `cd` in the shell or a click in the browser would.
func (p *Provider) SetToken(id entity.ContentID, token string) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	c, ok := p.contents[id]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownContent, id)
	}
	c.Token = token
	return nil
}

// SetTitle records a title and reports it through the OnTitle callback.
func (p *Provider) SetTitle(id entity.ContentID, title string) error {
	p.mu.Lock()
	c, ok := p.contents[id]
	if !ok {
		p.mu.Unlock()
		return fmt.Errorf("%w: %s", ErrUnknownContent, id)
	}
	c.Title = title
	cb := p.onTitle
	p.mu.Unlock()

	if cb != nil {
		cb(id, title)
	}
	return nil
}

// Exit simulates the content ending on its own, like a shell running
// `exit`. The OnExit callback runs on the calling goroutine.
func (p *Provider) Exit(id entity.ContentID) error {
	p.mu.Lock()
	if _, ok := p.contents[id]; !ok {
		p.mu.Unlock()
		return fmt.Errorf("%w: %s", ErrUnknownContent, id)
	}
	delete(p.contents, id)
	if p.focused == id {
		p.focused = ""
	}
	cb := p.onExit
	p.mu.Unlock()

	if cb != nil {
		cb(id)
	}
	return nil
}

// Focused returns the content that last received focus.
func (p *Provider) Focused() entity.ContentID {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.focused
}

// Live returns a copy of the state of every live content, ordered by id.
func (p *Provider) Live() []Content {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]Content, 0, len(p.contents))
	for _, c := range p.contents {
		out = append(out, *c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Lookup returns the state of one content.
func (p *Provider) Lookup(id entity.ContentID) (Content, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	c, ok := p.contents[id]
	if !ok {
		return Content{}, false
	}
	return *c, true
}

var _ port.ContentProvider = (*Provider)(nil)
