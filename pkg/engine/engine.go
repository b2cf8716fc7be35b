// Package engine implements the notification decision core: a throttle
// gate, a context builder, a tone/category policy and the scheduler that
// drives them on a timer. One tick produces at most one notification;
// producing none is the normal steady-state outcome, not an error.
package engine

import (
	"context"
	"sync"
	"time"

	"github.com/go-pkgz/lgr"

	"github.com/lunawell/nudge/pkg/domain"
)

//go:generate moq -out mocks/store.go -pkg mocks -skip-ensure -fmt goimports . Store
//go:generate moq -out mocks/toaster.go -pkg mocks -skip-ensure -fmt goimports . Toaster

// Store persists preferences, the notification list and the counters
type Store interface {
	Preferences(ctx context.Context) (domain.Preferences, error)
	SavePreferences(ctx context.Context, prefs domain.Preferences) error
	Notifications(ctx context.Context) ([]domain.Notification, error)
	Append(ctx context.Context, n domain.Notification) error
	MarkRead(ctx context.Context, id string) error
	MarkAllRead(ctx context.Context) error
	ClearAll(ctx context.Context) error
	UnreadCount(ctx context.Context) (int, error)
	Dismissals(ctx context.Context) (int, error)
	SetDismissals(ctx context.Context, count int) error
	IncrementDismissals(ctx context.Context) (int, error)
	Profile(ctx context.Context) (domain.Profile, error)
}

// Toaster surfaces a freshly created notification transiently, in addition
// to the persistent list. The UI layer provides the implementation.
type Toaster interface {
	Show(n domain.Notification)
}

// Engine runs one decision pass per tick: gate, build context, decide,
// persist, surface. The tick mutex makes the read-count/decide/append
// sequence atomic with respect to overlapping ticks, so the daily cap
// cannot be exceeded by concurrent invocations.
type Engine struct {
	store  Store
	toast  Toaster
	policy *Policy

	nowFn  func() time.Time
	tickMu sync.Mutex
}

// NewEngine creates the engine. Toaster may be nil when no transient
// surfacing is wanted.
func NewEngine(store Store, toast Toaster, policy *Policy) *Engine {
	return &Engine{
		store:  store,
		toast:  toast,
		policy: policy,
		nowFn:  time.Now,
	}
}

// Tick runs a single pipeline pass. It returns an error only for store
// failures; every throttle or policy decline is a silent no-op.
func (e *Engine) Tick(ctx context.Context) error {
	e.tickMu.Lock()
	defer e.tickMu.Unlock()

	now := e.nowFn()

	prefs, err := e.store.Preferences(ctx)
	if err != nil {
		return err
	}
	dismissals, err := e.store.Dismissals(ctx)
	if err != nil {
		return err
	}
	list, err := e.store.Notifications(ctx)
	if err != nil {
		return err
	}

	if ok, reason := Gate(now, prefs, CountToday(list, now), dismissals); !ok {
		lgr.Printf("[DEBUG] tick suppressed: %s", reason)
		return nil
	}

	profile, err := e.store.Profile(ctx)
	if err != nil {
		return err
	}

	dc := BuildContext(now, profile, prefs.Tone)
	n := e.policy.Decide(dc, now)
	if n == nil {
		lgr.Printf("[DEBUG] policy declined for %s/%s/%s", dc.Phase, dc.Mood, dc.TimeOfDay)
		return nil
	}

	if err := e.store.Append(ctx, *n); err != nil {
		return err
	}
	if e.toast != nil {
		e.toast.Show(*n)
	}

	lgr.Printf("[INFO] created %s notification %s", n.Category, n.ID)
	return nil
}
