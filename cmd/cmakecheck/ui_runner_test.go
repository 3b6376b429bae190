package main

import "testing"

func TestWantProgressUI(t *testing.T) {
	if on, err := wantProgressUI("on"); err != nil || !on {
		t.Errorf("on: got %v, %v", on, err)
	}
	if on, err := wantProgressUI("OFF"); err != nil || on {
		t.Errorf("OFF: got %v, %v", on, err)
	}
	if _, err := wantProgressUI("auto"); err != nil {
		t.Errorf("auto: %v", err)
	}
	if _, err := wantProgressUI("bogus"); err == nil {
		t.Error("bogus value accepted")
	}
}

func TestDisplayPath(t *testing.T) {
	if got := displayPath("/proj", "/proj/sub/CMakeLists.txt"); got != "sub/CMakeLists.txt" {
		t.Errorf("got %q", got)
	}
}
