package provision

import (
	"context"
	"errors"
	"fmt"
	"log"

	"lifeops-backend/internal/backing"
	"lifeops-backend/internal/kv"
)

// ErrResolve wraps every resolution failure
var ErrResolve = errors.New("provision: unable to resolve resource")

// CreateFunc creates the resource and returns its id
type CreateFunc func(ctx context.Context) (string, error)

// AcceptFunc can reject a found or cached candidate, e.g. a spreadsheet
// missing a required tab
type AcceptFunc func(ctx context.Context, id string) (bool, error)

// Target describes a Drive resource to locate or create
type Target struct {
	Kind     string // spreadsheet, folder, document; used in logs
	CacheKey string
	Name     string
	MimeType string
	ParentID string // search scope; empty means anywhere
	Accept   AcceptFunc
	Create   CreateFunc
}

// Resolution is the outcome of Resolve
type Resolution struct {
	ID    string
	State State
	// Path lists every state visited, starting with Unresolved
	Path []State
}

// Resolver runs the cache -> search -> create state machine
type Resolver struct {
	files backing.Files
	cache kv.Store
}

// NewResolver creates a resolver over the Drive surface and a user's cache
func NewResolver(files backing.Files, cache kv.Store) *Resolver {
	return &Resolver{files: files, cache: cache}
}

// Resolve walks the state machine until a terminal state or an error.
// Duplicate names are not disambiguated: the first search hit wins.
func (r *Resolver) Resolve(ctx context.Context, t Target) (Resolution, error) {
	res := Resolution{State: Unresolved, Path: []State{Unresolved}}
	candidate := ""

	for !res.State.Terminal() {
		var (
			next State
			err  error
		)
		switch res.State {
		case Unresolved:
			next, candidate, err = r.lookup(ctx, t)
		case Cached:
			next, err = r.verify(ctx, t, candidate)
		case NotFound:
			next, candidate, err = r.searchOrCreate(ctx, t)
		}
		if err != nil {
			return res, fmt.Errorf("%w: %s %q: %w", ErrResolve, t.Kind, t.Name, err)
		}
		res.State = next
		res.Path = append(res.Path, next)
	}

	res.ID = candidate
	return res, nil
}

func (r *Resolver) lookup(ctx context.Context, t Target) (State, string, error) {
	id, ok, err := r.cache.Get(ctx, t.CacheKey)
	if err != nil {
		log.Printf("[Provision] cache read %s failed, treating as miss: %v", t.CacheKey, err)
		return NotFound, "", nil
	}
	if !ok || id == "" {
		return NotFound, "", nil
	}
	return Cached, id, nil
}

func (r *Resolver) verify(ctx context.Context, t Target, id string) (State, error) {
	valid, err := r.valid(ctx, t, id)
	if err != nil {
		return Cached, err
	}
	if valid {
		return Verified, nil
	}
	log.Printf("[Provision] cached %s %s is gone, evicting", t.Kind, id)
	if err := r.cache.Delete(ctx, t.CacheKey); err != nil {
		log.Printf("[Provision] evict %s failed: %v", t.CacheKey, err)
	}
	return NotFound, nil
}

func (r *Resolver) valid(ctx context.Context, t Target, id string) (bool, error) {
	f, err := r.files.Stat(ctx, id)
	if backing.IsNotFound(err) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if f.Trashed {
		return false, nil
	}
	if t.Accept != nil {
		return t.Accept(ctx, id)
	}
	return true, nil
}

func (r *Resolver) searchOrCreate(ctx context.Context, t Target) (State, string, error) {
	found, err := r.files.FindByName(ctx, t.Name, t.MimeType, t.ParentID)
	if err != nil {
		return NotFound, "", err
	}
	if found != nil {
		ok := true
		if t.Accept != nil {
			if ok, err = t.Accept(ctx, found.ID); err != nil {
				return NotFound, "", err
			}
		}
		if ok {
			r.remember(ctx, t, found.ID)
			return Verified, found.ID, nil
		}
		log.Printf("[Provision] found %s %s rejected, creating a new one", t.Kind, found.ID)
	}

	if t.Create == nil {
		return NotFound, "", fmt.Errorf("no creator for %s", t.Kind)
	}
	id, err := t.Create(ctx)
	if err != nil {
		return NotFound, "", err
	}
	log.Printf("[Provision] created %s %q: %s", t.Kind, t.Name, id)
	r.remember(ctx, t, id)
	return Created, id, nil
}

func (r *Resolver) remember(ctx context.Context, t Target, id string) {
	if err := r.cache.Set(ctx, t.CacheKey, id); err != nil {
		log.Printf("[Provision] cache write %s failed: %v", t.CacheKey, err)
	}
}
