package mailer

import "time"

// SetClockForTest fixes the dispatcher's notion of now.
func (d *Dispatcher) SetClockForTest(now func() time.Time) {
	d.now = now
}
