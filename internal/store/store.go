// Package store caches the sections of one resume during an editing
// session and tracks which of them carry unsaved local edits. Reads
// are lazy, adds and edits are staged until an explicit commit, and
// removals persist immediately.
package store

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"resumecli/internal/api"
	"resumecli/internal/models"
	"resumecli/internal/validate"
)

var (
	// ErrCommitInFlight means a commit for the section has not resolved
	// yet; the caller retries after it settles.
	ErrCommitInFlight = errors.New("section commit already in flight")
	// ErrNotListSection means an entry operation was attempted on a
	// singleton section.
	ErrNotListSection = errors.New("section does not hold a list of entries")
	// ErrIndexOutOfRange means the entry index does not exist.
	ErrIndexOutOfRange = errors.New("entry index out of range")
	// ErrEntryKind means the entry's type does not match the section.
	ErrEntryKind = errors.New("entry type does not match section")
)

type sectionState struct {
	lastKnown  models.SectionValue
	draft      models.SectionValue
	dirty      bool
	committing bool
	loaded     bool
}

// Store is the per-resume section cache. It is scoped to one editing
// session and discarded when the resume is closed.
type Store struct {
	resumeID string
	client   api.Client

	mu       sync.Mutex
	sections map[models.SectionName]*sectionState
}

func New(client api.Client, resumeID string) *Store {
	return &Store{
		resumeID: resumeID,
		client:   client,
		sections: make(map[models.SectionName]*sectionState),
	}
}

func (s *Store) ResumeID() string { return s.resumeID }

func (s *Store) state(name models.SectionName) *sectionState {
	st, ok := s.sections[name]
	if !ok {
		st = &sectionState{}
		s.sections[name] = st
	}
	return st
}

// Load fetches the section's stored value unless it is already cached.
// A backend "not found" means the section was never written; it loads
// as the kind's empty value.
func (s *Store) Load(ctx context.Context, name models.SectionName) (models.SectionValue, error) {
	if _, err := models.ParseSectionName(string(name)); err != nil {
		return nil, err
	}

	s.mu.Lock()
	st := s.state(name)
	if st.loaded {
		value := s.currentLocked(st, name)
		s.mu.Unlock()
		return value, nil
	}
	s.mu.Unlock()

	value, err := s.client.FetchSection(ctx, s.resumeID, name)
	if err != nil {
		if errors.Is(err, api.ErrNotFound) {
			value = models.EmptySection(name)
		} else {
			return nil, err
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	st = s.state(name)
	st.lastKnown = value
	st.loaded = true
	return s.currentLocked(st, name), nil
}

// Value returns the section as the editor currently sees it: the dirty
// draft when one exists, the last known server value otherwise.
func (s *Store) Value(name models.SectionName) models.SectionValue {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.currentLocked(s.state(name), name)
}

func (s *Store) currentLocked(st *sectionState, name models.SectionName) models.SectionValue {
	if st.dirty {
		return st.draft
	}
	if st.lastKnown != nil {
		return st.lastKnown
	}
	return models.EmptySection(name)
}

// Dirty reports whether the section has local edits not yet persisted.
func (s *Store) Dirty(name models.SectionName) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state(name).dirty
}

// SetObject stages a new value for a singleton section.
func (s *Store) SetObject(name models.SectionName, value models.SectionValue) error {
	if name.IsList() {
		return fmt.Errorf("%w: %s holds a list", ErrEntryKind, name)
	}
	if value.Section() != name {
		return fmt.Errorf("%w: got %s for %s", ErrEntryKind, value.Section(), name)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	st := s.state(name)
	st.draft = value
	st.dirty = true
	return nil
}

// UpsertEntry stages one entry of a list section: index -1 appends,
// any other index replaces in place. Nothing is persisted until Commit.
func (s *Store) UpsertEntry(name models.SectionName, index int, entry any) error {
	if !name.IsList() {
		return fmt.Errorf("%w: %s", ErrNotListSection, name)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	st := s.state(name)
	updated, err := upsertInto(s.currentLocked(st, name), index, entry)
	if err != nil {
		return err
	}
	st.draft = updated
	st.dirty = true
	return nil
}

// RemoveEntry removes the entry at index and immediately persists the
// shortened list. Unlike add/edit, removals are not staged.
func (s *Store) RemoveEntry(ctx context.Context, name models.SectionName, index int) (models.SectionValue, error) {
	if !name.IsList() {
		return nil, fmt.Errorf("%w: %s", ErrNotListSection, name)
	}
	s.mu.Lock()
	st := s.state(name)
	updated, err := removeFrom(s.currentLocked(st, name), index)
	if err != nil {
		s.mu.Unlock()
		return nil, err
	}
	st.draft = updated
	st.dirty = true
	s.mu.Unlock()

	return s.Commit(ctx, name)
}

// Commit validates the section's current value and replaces the stored
// value wholesale. On success the server's canonical response becomes
// the new last known value and the dirty flag clears. At most one
// commit per section may be in flight.
func (s *Store) Commit(ctx context.Context, name models.SectionName) (models.SectionValue, error) {
	s.mu.Lock()
	st := s.state(name)
	if st.committing {
		s.mu.Unlock()
		return nil, ErrCommitInFlight
	}
	value := s.currentLocked(st, name)
	st.committing = true
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		st.committing = false
		s.mu.Unlock()
	}()

	normalized, err := validate.Section(value)
	if err != nil {
		return nil, err
	}

	canonical, err := s.client.WriteSection(ctx, s.resumeID, normalized)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	st.lastKnown = canonical
	st.draft = nil
	st.dirty = false
	st.loaded = true
	s.mu.Unlock()
	return canonical, nil
}

// Discard drops the section's local edits, reverting to the last known
// server value.
func (s *Store) Discard(name models.SectionName) {
	s.mu.Lock()
	defer s.mu.Unlock()
	st := s.state(name)
	st.draft = nil
	st.dirty = false
}

func upsertInto(value models.SectionValue, index int, entry any) (models.SectionValue, error) {
	switch list := value.(type) {
	case models.EducationList:
		e, ok := entry.(models.Education)
		if !ok {
			return nil, fmt.Errorf("%w: %T", ErrEntryKind, entry)
		}
		return upsertList(list, index, e)
	case models.ExperienceList:
		e, ok := entry.(models.Experience)
		if !ok {
			return nil, fmt.Errorf("%w: %T", ErrEntryKind, entry)
		}
		return upsertList(list, index, e)
	case models.SkillList:
		e, ok := entry.(models.Skill)
		if !ok {
			return nil, fmt.Errorf("%w: %T", ErrEntryKind, entry)
		}
		return upsertList(list, index, e)
	case models.ProjectList:
		e, ok := entry.(models.Project)
		if !ok {
			return nil, fmt.Errorf("%w: %T", ErrEntryKind, entry)
		}
		return upsertList(list, index, e)
	}
	return nil, fmt.Errorf("%w: %T", ErrNotListSection, value)
}

func removeFrom(value models.SectionValue, index int) (models.SectionValue, error) {
	switch list := value.(type) {
	case models.EducationList:
		return removeAt(list, index)
	case models.ExperienceList:
		return removeAt(list, index)
	case models.SkillList:
		return removeAt(list, index)
	case models.ProjectList:
		return removeAt(list, index)
	}
	return nil, fmt.Errorf("%w: %T", ErrNotListSection, value)
}

func upsertList[T any, L ~[]T](list L, index int, entry T) (L, error) {
	if index < 0 {
		out := make(L, len(list), len(list)+1)
		copy(out, list)
		return append(out, entry), nil
	}
	if index >= len(list) {
		return nil, fmt.Errorf("%w: %d of %d", ErrIndexOutOfRange, index, len(list))
	}
	out := make(L, len(list))
	copy(out, list)
	out[index] = entry
	return out, nil
}

func removeAt[T any, L ~[]T](list L, index int) (L, error) {
	if index < 0 || index >= len(list) {
		return nil, fmt.Errorf("%w: %d of %d", ErrIndexOutOfRange, index, len(list))
	}
	out := make(L, 0, len(list)-1)
	out = append(out, list[:index]...)
	out = append(out, list[index+1:]...)
	return out, nil
}
