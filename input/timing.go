package input

import "time"

// timing is the press/release buffering and key-repeat bookkeeping shared by
// VirtualButton and VirtualStick.
type timing struct {
	pressBuffer    time.Duration
	releaseBuffer  time.Duration
	repeatDelay    time.Duration
	repeatInterval time.Duration

	lastPress    time.Duration
	lastRelease  time.Duration
	repeatAnchor time.Duration

	hasPress   bool
	hasRelease bool
	hasAnchor  bool
}

func (t *timing) press(now time.Duration) {
	t.lastPress = now
	t.repeatAnchor = now
	t.hasPress = true
	t.hasAnchor = true
}

func (t *timing) release(now time.Duration) {
	t.lastRelease = now
	t.hasRelease = true
}

func (t *timing) inPressBuffer(now time.Duration) bool {
	return t.hasPress && now-t.lastPress <= t.pressBuffer
}

func (t *timing) inReleaseBuffer(now time.Duration) bool {
	return t.hasRelease && now-t.lastRelease <= t.releaseBuffer
}

// repeatPulse reports whether a synthetic press falls between the previous
// tick and this one: one pulse per interval once the delay has passed since
// the last real press.
func (t *timing) repeatPulse(now, prev time.Duration) bool {
	if t.repeatInterval <= 0 || !t.hasAnchor {
		return false
	}
	start := t.repeatAnchor + t.repeatDelay
	if now < start {
		return false
	}
	return floorDiv(prev-start, t.repeatInterval) < floorDiv(now-start, t.repeatInterval)
}

// inherit takes over the edge history of prev and keeps t's own durations.
func (t *timing) inherit(prev *timing) {
	t.lastPress, t.hasPress = prev.lastPress, prev.hasPress
	t.lastRelease, t.hasRelease = prev.lastRelease, prev.hasRelease
	t.repeatAnchor, t.hasAnchor = prev.repeatAnchor, prev.hasAnchor
}

func (t *timing) clearPress() { t.hasPress = false }

func (t *timing) clearRelease() { t.hasRelease = false }

func floorDiv(a, b time.Duration) int64 {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return int64(q)
}
