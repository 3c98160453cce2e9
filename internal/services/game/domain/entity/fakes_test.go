package entity

type fakeEngine struct {
	messages []string
	score    int
	running  bool
}

func newFakeEngine() *fakeEngine {
	return &fakeEngine{running: true}
}

func (e *fakeEngine) Notify(message string) { e.messages = append(e.messages, message) }
func (e *fakeEngine) Score() int { return e.score }
func (e *fakeEngine) SetScore(score int) { e.score = score }
func (e *fakeEngine) Running() bool { return e.running }
func (e *fakeEngine) SetRunning(running bool) { e.running = running }

type drawCall struct {
	sprite Sprite
	pos    Position
}

type fakeDisplay struct {
	calls []drawCall
}

func (d *fakeDisplay) DrawObject(sprite Sprite, pos Position) {
	d.calls = append(d.calls, drawCall{sprite: sprite, pos: pos})
}

func equalMessages(got, want []string) bool {
	if len(got) != len(want) {
		return false
	}
	for i := range got {
		if got[i] != want[i] {
			return false
		}
	}
	return true
}
