// Package runtime drives the discussion: desk resolution, round execution,
// the session state machine and meeting reconciliation. It orchestrates the
// system without containing provider or storage logic.
package runtime

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/gabriel-vasile/mimetype"
	"github.com/go-playground/validator/v10"

	"roundtable/contract"
	"roundtable/domain"
	apperrors "roundtable/errors"
)

// DeskResolver owns the handle -> desk-id memoization for one session.
// Resolution is serialized per handle so concurrent rounds cannot provision
// duplicate desk records.
type DeskResolver struct {
	mu       sync.Mutex
	backend  contract.IBackend
	log      *slog.Logger
	validate *validator.Validate
	roster   map[domain.Handle]domain.DisplayMeta
	ids      map[domain.Handle]string
	handles  map[string]domain.Handle
	inflight map[domain.Handle]*sync.Mutex
}

func NewDeskResolver(backend contract.IBackend, log *slog.Logger) *DeskResolver {
	return &DeskResolver{
		backend:  backend,
		log:      log,
		validate: validator.New(),
		roster:   make(map[domain.Handle]domain.DisplayMeta),
		ids:      make(map[domain.Handle]string),
		handles:  make(map[string]domain.Handle),
		inflight: make(map[domain.Handle]*sync.Mutex),
	}
}

// Register makes a participant's display metadata available for later
// provisioning. Registering twice overwrites the metadata, never the id.
func (r *DeskResolver) Register(p domain.Participant) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.roster[p.Handle] = p.Meta
	if p.Resolved() {
		r.ids[p.Handle] = *p.DeskID
		r.handles[*p.DeskID] = p.Handle
	}
}

// Resolve returns the memoized desk id or provisions a backend record.
// Failures memoize nothing, so a later call can retry.
func (r *DeskResolver) Resolve(ctx context.Context, h domain.Handle) (string, error) {
	r.mu.Lock()
	if id, ok := r.ids[h]; ok {
		r.mu.Unlock()
		return id, nil
	}
	meta, known := r.roster[h]
	lock, ok := r.inflight[h]
	if !ok {
		lock = &sync.Mutex{}
		r.inflight[h] = lock
	}
	r.mu.Unlock()

	if !known {
		return "", fmt.Errorf("resolve %q: handle not registered", h)
	}

	// One provisioning call at a time per handle.
	lock.Lock()
	defer lock.Unlock()

	// Another round may have resolved it while we waited.
	r.mu.Lock()
	if id, ok := r.ids[h]; ok {
		r.mu.Unlock()
		return id, nil
	}
	r.mu.Unlock()

	if err := r.validate.Struct(meta); err != nil {
		return "", fmt.Errorf("%w: %v", apperrors.ErrInvalidDeskMeta, err)
	}

	meta.Avatar = r.checkAvatar(h, meta.Avatar)

	id, err := r.backend.CreateDeskRecord(ctx, meta)
	if err != nil {
		return "", fmt.Errorf("provision desk for %q: %w", h, err)
	}

	r.Memoize(h, id)
	r.log.Debug("Desk provisioned", "handle", h, "desk_id", id, "model", meta.ModelID)
	return id, nil
}

// checkAvatar sniffs the avatar file and drops it when it is not an image.
// Best effort: a missing or unreadable file only costs the avatar.
func (r *DeskResolver) checkAvatar(h domain.Handle, path string) string {
	if path == "" {
		return ""
	}
	detected, err := mimetype.DetectFile(path)
	if err != nil {
		r.log.Warn("Avatar unreadable, provisioning without it", "handle", h, "path", path, "error", err)
		return ""
	}
	if !strings.HasPrefix(detected.String(), "image/") {
		r.log.Warn("Avatar is not an image, provisioning without it", "handle", h, "mime", detected.String())
		return ""
	}
	return path
}

// Memoize records a known mapping in both directions.
func (r *DeskResolver) Memoize(h domain.Handle, deskID string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.ids[h] = deskID
	r.handles[deskID] = h
}

func (r *DeskResolver) HandleFor(deskID string) (domain.Handle, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	h, ok := r.handles[deskID]
	return h, ok
}

// HandleForName matches a desk back to the roster by display name. Ambiguous
// names return false: guessing between homonyms would silently merge two
// distinct participants.
func (r *DeskResolver) HandleForName(name string) (domain.Handle, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var found domain.Handle
	matches := 0
	for h, meta := range r.roster {
		if meta.Name == name {
			found = h
			matches++
		}
	}
	if matches != 1 {
		return "", false
	}
	return found, true
}

func (r *DeskResolver) MetaFor(h domain.Handle) (domain.DisplayMeta, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	meta, ok := r.roster[h]
	return meta, ok
}
