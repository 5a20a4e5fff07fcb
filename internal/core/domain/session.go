package domain

// SessionStatus is the state of a merge session.
type SessionStatus string

// Session states.
const (
	SessionIdle       SessionStatus = "idle"
	SessionProcessing SessionStatus = "processing"
	SessionSuccess    SessionStatus = "success"
	SessionError      SessionStatus = "error"
)

// String returns the string representation.
func (s SessionStatus) String() string {
	return string(s)
}

// MergeSession is the transient state of one target file's merge
// workflow. All state changes go through the transition methods below;
// callers never flip status fields directly. The session is confined
// to one goroutine and replaced wholesale on reload, never merged.
type MergeSession struct {
	// TargetFileID is the document placeholders are substituted into.
	TargetFileID string

	// DataFileID is the loaded auxiliary data file, if any.
	DataFileID string

	// Pairs is the editable identifier set, in parse order.
	Pairs []IdentifierPair

	// Status is the session state.
	Status SessionStatus

	// Message is the human-readable status line.
	Message string

	// Result is the merged output document, retained until discarded
	// or the session resets.
	Result *VaultFile

	// Replacements is the total replacement count of the last run
	// (plain-text variant only).
	Replacements int
}

// NewMergeSession creates an idle session for a target file.
func NewMergeSession(targetFileID string) *MergeSession {
	return &MergeSession{
		TargetFileID: targetFileID,
		Status:       SessionIdle,
	}
}

// Begin moves the session to processing. Allowed from any state:
// selecting a data file or re-running substitution always re-enters
// processing.
func (s *MergeSession) Begin(message string) {
	s.Status = SessionProcessing
	s.Message = message
}

// Succeed records a completed run. Pairs are replaced with the updated
// set; the result document is retained.
func (s *MergeSession) Succeed(result *VaultFile, pairs []IdentifierPair, replacements int, message string) {
	s.Status = SessionSuccess
	s.Message = message
	s.Result = result
	s.Pairs = pairs
	s.Replacements = replacements
}

// Fail records a failed run. The prior pairs are kept unmodified:
// only status and message change, and no partial result is retained.
func (s *MergeSession) Fail(message string) {
	s.Status = SessionError
	s.Message = message
	s.Result = nil
}

// Reset returns to idle and clears the loaded data, pairs and result.
// Used when the user switches to a different data file or target.
func (s *MergeSession) Reset() {
	s.DataFileID = ""
	s.Pairs = nil
	s.Result = nil
	s.Replacements = 0
	s.Status = SessionIdle
	s.Message = ""
}

// Discard drops the result document and returns to idle without
// clearing the identifier pairs.
func (s *MergeSession) Discard() {
	s.Result = nil
	s.Status = SessionIdle
	s.Message = ""
}

// LoadPairs installs a freshly parsed pair set and records the data
// file it came from.
func (s *MergeSession) LoadPairs(dataFileID string, pairs []IdentifierPair) {
	s.DataFileID = dataFileID
	s.Pairs = pairs
	s.Result = nil
	s.Replacements = 0
}

// EditPair updates a pair's key and value in place and resets its
// status. Returns false if no pair has the given ID.
func (s *MergeSession) EditPair(id, key, value string) bool {
	for i := range s.Pairs {
		if s.Pairs[i].ID == id {
			s.Pairs[i].Key = key
			s.Pairs[i].Value = value
			s.Pairs[i].Status = PairStatusUnset
			return true
		}
	}
	return false
}

// AddPair appends a blank pair with the given handle.
func (s *MergeSession) AddPair(id string) {
	s.Pairs = append(s.Pairs, IdentifierPair{ID: id, Status: PairStatusUnset})
}

// RemovePair deletes a pair by handle. Returns false if absent.
func (s *MergeSession) RemovePair(id string) bool {
	for i := range s.Pairs {
		if s.Pairs[i].ID == id {
			s.Pairs = append(s.Pairs[:i], s.Pairs[i+1:]...)
			return true
		}
	}
	return false
}

// Pair returns the pair with the given handle.
func (s *MergeSession) Pair(id string) (*IdentifierPair, bool) {
	for i := range s.Pairs {
		if s.Pairs[i].ID == id {
			return &s.Pairs[i], true
		}
	}
	return nil, false
}
