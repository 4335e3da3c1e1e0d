package entities

// ParseStats counts how many upstream entries a classifier kept and dropped.
type ParseStats struct {
	Parsed  int
	Dropped int
}

func (s *ParseStats) keep() { s.Parsed++ }

func (s *ParseStats) drop() { s.Dropped++ }
