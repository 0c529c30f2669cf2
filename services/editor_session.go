package services

// EditorSession is the interaction state of one property edit session: the
// accordion (at most one space expanded), the per-space lazy bed cache and
// the optimistic reorder that reconciles against the server's canonical
// list once the mutation settles. Transitions are plain methods with no
// I/O so the whole machine is testable without rendering.
type EditorSession struct {
	PropertyID uint

	// Spaces is the in-memory ordered list; optimistic between a drop and
	// the next Reconcile.
	Spaces []SpaceView

	// ExpandedSpaceID is 0 when every panel is collapsed.
	ExpandedSpaceID uint

	bedCache map[uint][]BedLine

	// reorderPending is set between ApplyReorder and Reconcile; while set,
	// the local order is a guess, not the truth.
	reorderPending bool
}

func NewEditorSession(propertyID uint, spaces []SpaceView) *EditorSession {
	return &EditorSession{
		PropertyID: propertyID,
		Spaces:     spaces,
		bedCache:   map[uint][]BedLine{},
	}
}

// ToggleSpace opens the panel for id, closing any other open panel
// (accordion semantics). Toggling the open panel collapses it. The return
// value tells the caller whether the space's beds still need fetching.
func (e *EditorSession) ToggleSpace(id uint) (needsFetch bool) {
	if e.ExpandedSpaceID == id {
		e.ExpandedSpaceID = 0
		return false
	}
	e.ExpandedSpaceID = id
	_, cached := e.bedCache[id]
	return !cached
}

// CacheBeds stores a fetched bed list; subsequent toggles of the same
// space reuse it for the rest of the session.
func (e *EditorSession) CacheBeds(spaceID uint, beds []BedLine) {
	e.bedCache[spaceID] = beds
}

// BedsFor returns the cached bed list and whether it has been loaded.
func (e *EditorSession) BedsFor(spaceID uint) ([]BedLine, bool) {
	beds, ok := e.bedCache[spaceID]
	return beds, ok
}

// ApplyReorder rearranges the local list immediately on drop. The id set
// must match the current list exactly, mirroring the server-side contract.
// The optimistic order stands until Reconcile replaces it with the
// server's canonical list — there is no local rollback path on error.
func (e *EditorSession) ApplyReorder(orderedIDs []uint) bool {
	if len(orderedIDs) != len(e.Spaces) {
		return false
	}
	byID := make(map[uint]SpaceView, len(e.Spaces))
	for _, sp := range e.Spaces {
		byID[sp.ID] = sp
	}

	reordered := make([]SpaceView, 0, len(orderedIDs))
	seen := make(map[uint]bool, len(orderedIDs))
	for _, id := range orderedIDs {
		sp, ok := byID[id]
		if !ok || seen[id] {
			return false
		}
		seen[id] = true
		reordered = append(reordered, sp)
	}

	e.Spaces = reordered
	FillLabels(e.Spaces)
	e.reorderPending = true
	return true
}

// ReorderPending reports whether the local order is still unconfirmed.
func (e *EditorSession) ReorderPending() bool {
	return e.reorderPending
}

// Reconcile replaces the local list with the server's canonical list. It
// runs whether the mutation succeeded or failed, which is what clears a
// stale optimistic order. Cache entries and the expanded panel survive
// only when their space still exists.
func (e *EditorSession) Reconcile(server []SpaceView) {
	e.Spaces = server
	e.reorderPending = false

	alive := make(map[uint]bool, len(server))
	for _, sp := range server {
		alive[sp.ID] = true
	}
	if e.ExpandedSpaceID != 0 && !alive[e.ExpandedSpaceID] {
		e.ExpandedSpaceID = 0
	}
	for id := range e.bedCache {
		if !alive[id] {
			delete(e.bedCache, id)
		}
	}
}

// SpaceDeleted removes the space locally after a successful delete.
// Deleting the expanded space collapses the accordion.
func (e *EditorSession) SpaceDeleted(id uint) {
	kept := e.Spaces[:0]
	for _, sp := range e.Spaces {
		if sp.ID != id {
			kept = append(kept, sp)
		}
	}
	e.Spaces = kept
	FillLabels(e.Spaces)

	if e.ExpandedSpaceID == id {
		e.ExpandedSpaceID = 0
	}
	delete(e.bedCache, id)
}
