package scheduler

// TickForTest runs one scheduled tick synchronously.
func (s *Scheduler) TickForTest() {
	s.tick()
}
