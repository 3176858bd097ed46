package state

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

type recordingState struct {
	name  string
	calls *[]string
}

func (s *recordingState) Enter()             { *s.calls = append(*s.calls, s.name+".Enter") }
func (s *recordingState) Update(float64)     { *s.calls = append(*s.calls, s.name+".Update") }
func (s *recordingState) Draw(*ebiten.Image) { *s.calls = append(*s.calls, s.name+".Draw") }
func (s *recordingState) Exit()              { *s.calls = append(*s.calls, s.name+".Exit") }

func assertCalls(t *testing.T, got []string, want ...string) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("calls = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("calls = %v, want %v", got, want)
		}
	}
}

func TestStateMachineTransitions(t *testing.T) {
	var calls []string
	a := &recordingState{name: "a", calls: &calls}
	b := &recordingState{name: "b", calls: &calls}

	sm := NewStateMachine()
	sm.Update(0.016)
	sm.Draw(nil)
	if sm.Current() != nil {
		t.Fatal("empty machine has a current state")
	}

	sm.SetState(a)
	sm.Update(0.016)
	sm.SetState(b)
	sm.Draw(nil)
	sm.SetState(nil)

	assertCalls(t, calls, "a.Enter", "a.Update", "a.Exit", "b.Enter", "b.Draw", "b.Exit")
}

func TestPauseResumesPrevious(t *testing.T) {
	var calls []string
	scene := &recordingState{name: "scene", calls: &calls}

	sm := NewStateMachine()
	sm.SetState(scene)
	pause := NewPauseState(sm, scene)
	sm.SetState(pause)
	if sm.Current() != pause {
		t.Fatal("pause is not current")
	}

	pause.Resume()
	if sm.Current() != scene {
		t.Fatal("scene not restored")
	}
	assertCalls(t, calls, "scene.Enter", "scene.Exit", "scene.Enter")
}
