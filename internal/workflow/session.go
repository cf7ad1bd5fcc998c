package workflow

// Session is the update log of a single pkgup run
type Session struct {
	Updated []string // Upgraded successfully, in upgrade order
	Failed  []string // Upgrade attempted and failed, in upgrade order
}

func (s *Session) recordUpdated(name string) {
	s.Updated = append(s.Updated, name)
}

func (s *Session) recordFailed(name string) {
	s.Failed = append(s.Failed, name)
}

// HasUpdates reports whether anything was upgraded
func (s *Session) HasUpdates() bool {
	return len(s.Updated) > 0
}
