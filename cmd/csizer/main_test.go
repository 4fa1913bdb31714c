package main

import (
	"bytes"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/wippyai/csizer/layout"
	"github.com/wippyai/csizer/typespec"
)

func TestRunSizes(t *testing.T) {
	var out, errOut bytes.Buffer
	code := run([]string{"i", "ci", "ic", "cd", ""}, &out, &errOut)
	if code != 0 {
		t.Fatalf("exit code %d, stderr: %s", code, errOut.String())
	}

	want := "       4 i\n       8 ci\n       5 ic\n      16 cd\n       0 \n"
	if out.String() != want {
		t.Errorf("output:\n%q\nwant:\n%q", out.String(), want)
	}
}

func TestRunLenientEchoesArgument(t *testing.T) {
	var out, errOut bytes.Buffer
	if code := run([]string{"c?i"}, &out, &errOut); code != 0 {
		t.Fatalf("exit code %d", code)
	}
	if out.String() != "       8 c?i\n" {
		t.Errorf("output = %q", out.String())
	}
}

func TestRunStrict(t *testing.T) {
	var out, errOut bytes.Buffer
	code := run([]string{"-strict", "ci", "cxi"}, &out, &errOut)
	if code != 1 {
		t.Fatalf("exit code %d, want 1", code)
	}
	if out.String() != "       8 ci\n" {
		t.Errorf("output = %q", out.String())
	}
	if !strings.Contains(errOut.String(), "invalid_spec") {
		t.Errorf("stderr = %q", errOut.String())
	}
}

func TestRunABI(t *testing.T) {
	var out, errOut bytes.Buffer
	if code := run([]string{"-abi", "ic", "dc"}, &out, &errOut); code != 0 {
		t.Fatalf("exit code %d", code)
	}
	if out.String() != "       8 ic\n      16 dc\n" {
		t.Errorf("output = %q", out.String())
	}
}

func TestRunPrintDemo(t *testing.T) {
	var out, errOut bytes.Buffer
	if code := run([]string{"-print", "l"}, &out, &errOut); code != 0 {
		t.Fatalf("exit code %d, stderr: %s", code, errOut.String())
	}
	want := "       8 l\n0x1000 char A\n0x1004 int 24\n"
	if out.String() != want {
		t.Errorf("output:\n%q\nwant:\n%q", out.String(), want)
	}
}

func TestRunWIT(t *testing.T) {
	var out, errOut bytes.Buffer
	if code := run([]string{"-wit", "cf"}, &out, &errOut); code != 0 {
		t.Fatalf("exit code %d", code)
	}
	if !strings.Contains(out.String(), "record aggregate {\n    f0: s8,\n    f1: f32,\n}") {
		t.Errorf("output = %q", out.String())
	}
}

func TestRunLayoutTable(t *testing.T) {
	var out, errOut bytes.Buffer
	if code := run([]string{"-layout", "-abi", "ic"}, &out, &errOut); code != 0 {
		t.Fatalf("exit code %d", code)
	}
	s := out.String()
	for _, want := range []string{"f0 int", "f1 char", "(tail padding)", "size 8, align 4, padding 3"} {
		if !strings.Contains(s, want) {
			t.Errorf("output missing %q:\n%s", want, s)
		}
	}
}

func TestRunBadFlag(t *testing.T) {
	var out, errOut bytes.Buffer
	if code := run([]string{"-nope"}, &out, &errOut); code != 2 {
		t.Errorf("exit code %d, want 2", code)
	}
	if code := run([]string{"-h"}, &out, &errOut); code != 0 {
		t.Errorf("help exit code %d, want 0", code)
	}
}

func TestLayoutTablePadding(t *testing.T) {
	s := layoutTable(layout.New().Layout(typespec.MustParse("cd")))
	if !strings.Contains(s, "(padding)") {
		t.Errorf("expected padding row:\n%s", s)
	}
	if strings.Contains(s, "tail padding") {
		t.Errorf("unexpected tail padding row:\n%s", s)
	}
}

func TestInteractiveModel(t *testing.T) {
	m := newInteractiveModel(layout.New(), false)

	for _, r := range "ci" {
		m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	if got := m.input.Value(); got != "ci" {
		t.Fatalf("input = %q", got)
	}
	if !strings.Contains(m.View(), "size 8, align 4") {
		t.Errorf("view missing layout summary:\n%s", m.View())
	}

	m.Update(tea.KeyMsg{Type: tea.KeyTab})
	if !strings.Contains(m.View(), "record aggregate") {
		t.Errorf("view missing WIT record:\n%s", m.View())
	}

	m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if len(m.history) != 1 || m.history[0] != "       8 ci" {
		t.Errorf("history = %q", m.history)
	}
	if m.input.Value() != "" {
		t.Errorf("input not reset: %q", m.input.Value())
	}

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if cmd == nil {
		t.Fatal("esc should quit")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("esc should return tea.Quit")
	}
}

func TestInteractiveStrictError(t *testing.T) {
	m := newInteractiveModel(layout.New(), true)
	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'x'}})
	if !strings.Contains(m.View(), "invalid_spec") {
		t.Errorf("view should show invalid_spec:\n%s", m.View())
	}
	m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if len(m.history) != 0 {
		t.Errorf("invalid spec should not be kept: %q", m.history)
	}
}
