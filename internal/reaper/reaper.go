package reaper

import (
	"context"
	"log"
	"time"

	"github.com/vowsnap-dev/vowsnap/internal/store"
)

// Reaper periodically reclaims expired stories and stale presence rows.
// It is advisory: the read paths already filter both out, so a missed
// sweep never changes what clients see.
type Reaper struct {
	stores      *store.Store
	interval    time.Duration
	presenceTTL time.Duration
	ctx         context.Context
	cancel      context.CancelFunc
}

func New(stores *store.Store, interval, presenceTTL time.Duration) *Reaper {
	ctx, cancel := context.WithCancel(context.Background())
	return &Reaper{
		stores:      stores,
		interval:    interval,
		presenceTTL: presenceTTL,
		ctx:         ctx,
		cancel:      cancel,
	}
}

func (r *Reaper) Start() {
	log.Printf("Starting reaper (interval %s, presence TTL %s)", r.interval, r.presenceTTL)
	go r.run()
}

func (r *Reaper) Stop() {
	log.Println("Stopping reaper...")
	r.cancel()
}

func (r *Reaper) run() {
	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	for {
		select {
		case <-r.ctx.Done():
			return
		case <-ticker.C:
			r.Sweep()
		}
	}
}

// Sweep walks every active wedding once.
func (r *Reaper) Sweep() {
	templates, err := r.stores.Templates.ListActive()
	if err != nil {
		log.Printf("Reaper failed to list templates: %v", err)
		return
	}

	cutoff := time.Now().Add(-r.presenceTTL)

	for _, template := range templates {
		stories, err := r.stores.Stories.CleanupExpired(template.TemplateID)
		if err != nil {
			log.Printf("Reaper failed to cleanup stories for %s: %v", template.TemplateID, err)
		}

		users, err := r.stores.LiveUsers.CleanupStale(template.TemplateID, cutoff)
		if err != nil {
			log.Printf("Reaper failed to cleanup live users for %s: %v", template.TemplateID, err)
		}

		if stories > 0 || users > 0 {
			log.Printf("Reaper swept template %s: %d stories, %d live users", template.TemplateID, stories, users)
		}
	}
}

// Global reaper instance
var globalReaper *Reaper

func Initialize(stores *store.Store, interval, presenceTTL time.Duration) {
	globalReaper = New(stores, interval, presenceTTL)
	globalReaper.Start()
}

func Shutdown() {
	if globalReaper != nil {
		globalReaper.Stop()
	}
}
