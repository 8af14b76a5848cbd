// Package store holds the single authoritative resume document and exposes
// every mutation as an atomic transform of the prior snapshot.
//
// Every effective mutation computes a new document value, stamps updatedAt,
// persists the value best-effort, and publishes it to subscribers. Mutations
// that target an id which is no longer present are silent no-ops: the
// document stays fully identical, including updatedAt, and nothing is
// persisted or published.
package store

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/jonathan/cvmaker/internal/ordering"
	"github.com/jonathan/cvmaker/internal/storage"
	"github.com/jonathan/cvmaker/internal/types"
)

// Clock supplies mutation timestamps. Injectable for tests.
type Clock func() time.Time

// Subscriber receives the new document snapshot after every effective mutation.
type Subscriber func(types.Resume)

// Store is the single writer of the resume document.
type Store struct {
	mu          sync.Mutex
	resume      types.Resume
	persister   storage.Persister
	subscribers []Subscriber
	now         Clock
	log         *logrus.Logger
}

// Option configures a Store.
type Option func(*Store)

// WithClock overrides the timestamp source.
func WithClock(c Clock) Option {
	return func(s *Store) { s.now = c }
}

// WithLogger overrides the logger used for swallowed persistence failures.
func WithLogger(log *logrus.Logger) Option {
	return func(s *Store) { s.log = log }
}

// New creates a store backed by the given persister. The persisted document
// is loaded when present; a missing or unparsable document falls back to the
// built-in default without error.
func New(ctx context.Context, persister storage.Persister, opts ...Option) *Store {
	s := &Store{
		persister: persister,
		now:       time.Now,
		log:       logrus.StandardLogger(),
	}
	for _, opt := range opts {
		opt(s)
	}

	resume, err := persister.Load(ctx)
	if err != nil {
		if !errors.Is(err, storage.ErrNotFound) {
			s.log.WithError(err).Warn("stored resume unreadable, starting from default")
		}
		resume = types.DefaultResume()
	}
	s.resume = resume
	return s
}

// Subscribe registers a callback invoked with the new snapshot after every
// effective mutation. It must be called before mutations begin.
func (s *Store) Subscribe(fn Subscriber) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subscribers = append(s.subscribers, fn)
}

// Snapshot returns a deep copy of the current document.
func (s *Store) Snapshot() types.Resume {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.resume.Clone()
}

// mutate runs fn against a clone of the current document. When fn reports an
// effective change the clone is stamped, installed, persisted, and published.
func (s *Store) mutate(ctx context.Context, fn func(r *types.Resume) bool) {
	s.mu.Lock()

	next := s.resume.Clone()
	if !fn(&next) {
		s.mu.Unlock()
		return
	}

	next.UpdatedAt = s.now().UTC().Format(time.RFC3339)
	s.resume = next

	snapshot := next.Clone()
	subscribers := append([]Subscriber(nil), s.subscribers...)
	s.mu.Unlock()

	// Best effort: a failed write must never surface. The in-memory document
	// stays authoritative for the session.
	if err := s.persister.Save(ctx, snapshot); err != nil {
		s.log.WithError(err).Warn("failed to persist resume")
	}

	for _, fn := range subscribers {
		fn(snapshot)
	}
}

// UpdateContact merges the given fields into the contact record.
func (s *Store) UpdateContact(ctx context.Context, patch ContactPatch) {
	s.mutate(ctx, func(r *types.Resume) bool {
		patch.apply(&r.Contact)
		return true
	})
}

// UpdateSettings merges the given fields into the visual settings.
func (s *Store) UpdateSettings(ctx context.Context, patch SettingsPatch) {
	s.mutate(ctx, func(r *types.Resume) bool {
		patch.apply(&r.Settings)
		return true
	})
}

// UpdateTitle sets the document title used as the export filename stem.
func (s *Store) UpdateTitle(ctx context.Context, title string) {
	s.mutate(ctx, func(r *types.Resume) bool {
		r.Title = title
		return true
	})
}

// AddSection appends a new section of the given type and title. Skills and
// languages sections are seeded with one empty entry so the single-entry
// convention holds from creation.
func (s *Store) AddSection(ctx context.Context, t types.SectionType, title string) types.Section {
	section := types.NewSection(t, title)
	if t == types.SectionSkills || t == types.SectionLanguages {
		section.Entries = []types.Entry{types.NewEntry()}
	}
	s.mutate(ctx, func(r *types.Resume) bool {
		r.Sections = append(r.Sections, section.Clone())
		return true
	})
	return section
}

// RemoveSection deletes the section with the given id. Absence is a no-op.
func (s *Store) RemoveSection(ctx context.Context, sectionID string) {
	s.mutate(ctx, func(r *types.Resume) bool {
		for i, sec := range r.Sections {
			if sec.ID == sectionID {
				r.Sections = append(r.Sections[:i], r.Sections[i+1:]...)
				return true
			}
		}
		return false
	})
}

// UpdateSection merges the given fields into the matching section.
func (s *Store) UpdateSection(ctx context.Context, sectionID string, patch SectionPatch) {
	s.mutate(ctx, func(r *types.Resume) bool {
		section := r.FindSection(sectionID)
		if section == nil {
			return false
		}
		patch.apply(section)
		return true
	})
}

// ReorderSections moves the section at from to position to.
func (s *Store) ReorderSections(ctx context.Context, from, to int) {
	s.mutate(ctx, func(r *types.Resume) bool {
		if from == to || from < 0 || to < 0 || from >= len(r.Sections) || to >= len(r.Sections) {
			return false
		}
		r.Sections = ordering.Reorder(r.Sections, from, to)
		return true
	})
}

// ToggleSectionVisibility flips the visible flag of the matching section.
func (s *Store) ToggleSectionVisibility(ctx context.Context, sectionID string) {
	s.mutate(ctx, func(r *types.Resume) bool {
		section := r.FindSection(sectionID)
		if section == nil {
			return false
		}
		section.Visible = !section.Visible
		return true
	})
}

// AddEntry appends one zero-valued entry to the matching section and returns
// it. Absence of the section is a no-op returning a zero entry.
func (s *Store) AddEntry(ctx context.Context, sectionID string) types.Entry {
	entry := types.NewEntry()
	var added bool
	s.mutate(ctx, func(r *types.Resume) bool {
		section := r.FindSection(sectionID)
		if section == nil {
			return false
		}
		section.Entries = append(section.Entries, entry.Clone())
		added = true
		return true
	})
	if !added {
		return types.Entry{}
	}
	return entry
}

// RemoveEntry deletes the matching entry from the matching section.
func (s *Store) RemoveEntry(ctx context.Context, sectionID, entryID string) {
	s.mutate(ctx, func(r *types.Resume) bool {
		section := r.FindSection(sectionID)
		if section == nil {
			return false
		}
		for i, e := range section.Entries {
			if e.ID == entryID {
				section.Entries = append(section.Entries[:i], section.Entries[i+1:]...)
				return true
			}
		}
		return false
	})
}

// UpdateEntry merges the given fields into the matching entry.
//
// Rule for the current flag: a patch that sets current to true also clears
// the stored end date. Setting current back to false leaves the end date
// untouched, so a value written through another path reappears as-is.
func (s *Store) UpdateEntry(ctx context.Context, sectionID, entryID string, patch EntryPatch) {
	s.mutate(ctx, func(r *types.Resume) bool {
		section := r.FindSection(sectionID)
		if section == nil {
			return false
		}
		entry := section.FindEntry(entryID)
		if entry == nil {
			return false
		}
		patch.apply(entry)
		return true
	})
}

// ReorderEntries moves the entry at from to position to within one section.
func (s *Store) ReorderEntries(ctx context.Context, sectionID string, from, to int) {
	s.mutate(ctx, func(r *types.Resume) bool {
		section := r.FindSection(sectionID)
		if section == nil {
			return false
		}
		if from == to || from < 0 || to < 0 || from >= len(section.Entries) || to >= len(section.Entries) {
			return false
		}
		section.Entries = ordering.Reorder(section.Entries, from, to)
		return true
	})
}

// AddSkill appends a skill to the matching entry, deduplicated by exact
// string match.
func (s *Store) AddSkill(ctx context.Context, sectionID, entryID, skill string) {
	s.mutate(ctx, func(r *types.Resume) bool {
		section := r.FindSection(sectionID)
		if section == nil {
			return false
		}
		entry := section.FindEntry(entryID)
		if entry == nil {
			return false
		}
		next := ordering.InsertSkill(entry.Skills, skill)
		if len(next) == len(entry.Skills) {
			return false
		}
		entry.Skills = next
		return true
	})
}

// RemoveSkill removes a skill from the matching entry by exact string match.
func (s *Store) RemoveSkill(ctx context.Context, sectionID, entryID, skill string) {
	s.mutate(ctx, func(r *types.Resume) bool {
		section := r.FindSection(sectionID)
		if section == nil {
			return false
		}
		entry := section.FindEntry(entryID)
		if entry == nil {
			return false
		}
		next := ordering.RemoveSkill(entry.Skills, skill)
		if len(next) == len(entry.Skills) {
			return false
		}
		entry.Skills = next
		return true
	})
}

// ReorderSkills moves the skill at from to position to within one entry.
func (s *Store) ReorderSkills(ctx context.Context, sectionID, entryID string, from, to int) {
	s.mutate(ctx, func(r *types.Resume) bool {
		section := r.FindSection(sectionID)
		if section == nil {
			return false
		}
		entry := section.FindEntry(entryID)
		if entry == nil {
			return false
		}
		if from == to || from < 0 || to < 0 || from >= len(entry.Skills) || to >= len(entry.Skills) {
			return false
		}
		entry.Skills = ordering.Reorder(entry.Skills, from, to)
		return true
	})
}

// EnsureEntry restores the single-entry convention for summary, skills, and
// languages sections: when the matching section has no entries, one empty
// entry is created. The section's sole entry is returned either way.
func (s *Store) EnsureEntry(ctx context.Context, sectionID string) types.Entry {
	var result types.Entry
	created := types.NewEntry()
	s.mutate(ctx, func(r *types.Resume) bool {
		section := r.FindSection(sectionID)
		if section == nil || !section.Type.SingleEntry() {
			return false
		}
		if len(section.Entries) > 0 {
			result = section.Entries[0].Clone()
			return false
		}
		section.Entries = []types.Entry{created.Clone()}
		result = created
		return true
	})
	return result
}

// LoadResume replaces the entire document. A fresh id is assigned only when
// the incoming value has none.
func (s *Store) LoadResume(ctx context.Context, resume types.Resume) {
	s.mutate(ctx, func(r *types.Resume) bool {
		next := resume.Clone()
		if next.ID == "" {
			next.ID = uuid.NewString()
		}
		*r = next
		return true
	})
}

// ResetResume replaces the document with the canonical default under a fresh id.
func (s *Store) ResetResume(ctx context.Context) {
	s.mutate(ctx, func(r *types.Resume) bool {
		*r = types.DefaultResume()
		return true
	})
}
