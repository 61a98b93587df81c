package tui

import (
	"testing"
	"time"
)

func TestTickerStartInvalidatesOlderTicks(t *testing.T) {
	var tk ticker
	if tk.Running() {
		t.Fatal("zero ticker should not be running")
	}

	if cmd := tk.Start(200 * time.Millisecond); cmd == nil {
		t.Fatal("Start returned nil cmd")
	}
	first := TickMsg{Gen: tk.gen}
	if !tk.Accept(first) {
		t.Fatal("tick of live schedule rejected")
	}

	tk.Start(150 * time.Millisecond)
	if tk.Accept(first) {
		t.Error("tick of replaced schedule accepted")
	}
	if !tk.Accept(TickMsg{Gen: tk.gen}) {
		t.Error("tick of new schedule rejected")
	}
	if tk.Interval() != 150*time.Millisecond {
		t.Errorf("Interval() = %v, want 150ms", tk.Interval())
	}
}

func TestTickerStop(t *testing.T) {
	var tk ticker
	tk.Start(time.Millisecond)
	live := TickMsg{Gen: tk.gen}

	tk.Stop()
	if tk.Running() {
		t.Error("ticker still running after Stop")
	}
	if tk.Accept(live) {
		t.Error("tick accepted after Stop")
	}
	if tk.Accept(TickMsg{Gen: tk.gen}) {
		t.Error("tick accepted while stopped")
	}
	if cmd := tk.Continue(); cmd != nil {
		t.Error("Continue should not schedule while stopped")
	}
}

func TestTickerCmdCarriesGeneration(t *testing.T) {
	var tk ticker
	tk.Start(time.Millisecond)
	tk.Start(time.Millisecond)

	msg, ok := tk.Continue()().(TickMsg)
	if !ok {
		t.Fatal("cmd did not produce a TickMsg")
	}
	if msg.Gen != tk.gen {
		t.Errorf("Gen = %d, want %d", msg.Gen, tk.gen)
	}
	if !tk.Accept(msg) {
		t.Error("produced tick rejected")
	}
}

func TestTickerArmThenContinue(t *testing.T) {
	var tk ticker
	tk.Start(time.Millisecond)
	old := TickMsg{Gen: tk.gen}

	tk.arm(time.Millisecond)
	if !tk.Running() || tk.Accept(old) {
		t.Fatal("arm should start a new schedule and drop the old one")
	}

	msg, ok := tk.Continue()().(TickMsg)
	if !ok {
		t.Fatal("Continue did not produce a TickMsg")
	}
	if !tk.Accept(msg) {
		t.Error("first tick of an armed schedule rejected")
	}
}
