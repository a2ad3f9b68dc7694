package output

import (
	"bytes"
	"errors"
	"io"
	"os"
	"strings"
	"testing"
)

// captureOutput captures stdout during test execution
func captureOutput(f func()) string {
	return capture(&os.Stdout, f)
}

// captureStderr captures stderr during test execution
func captureStderr(f func()) string {
	return capture(&os.Stderr, f)
}

func capture(target **os.File, f func()) string {
	old := *target
	r, w, _ := os.Pipe()
	*target = w

	f()

	w.Close()
	*target = old

	var buf bytes.Buffer
	io.Copy(&buf, r)
	return buf.String()
}

func TestSuccess(t *testing.T) {
	output := captureOutput(func() {
		Success("Test message")
	})

	if !strings.Contains(output, "🐣") {
		t.Error("Success output should contain hatching chick emoji")
	}
	if !strings.Contains(output, "Test message") {
		t.Error("Success output should contain the message")
	}
}

func TestError(t *testing.T) {
	stdout := captureOutput(func() {
		output := captureStderr(func() {
			Error("Error message")
		})
		if !strings.Contains(output, "❌") {
			t.Error("Error output should contain X emoji")
		}
		if !strings.Contains(output, "Error message") {
			t.Error("Error output should contain the message")
		}
	})

	if stdout != "" {
		t.Errorf("Error should not write to stdout, got %q", stdout)
	}
}

func TestWarn(t *testing.T) {
	output := captureStderr(func() {
		Warn("careful")
	})

	if !strings.Contains(output, "careful") {
		t.Error("Warn output should contain the message")
	}
}

func TestInfo(t *testing.T) {
	output := captureOutput(func() {
		Info("Info message")
	})

	if !strings.Contains(output, "ℹ️") {
		t.Error("Info output should contain info emoji")
	}
	if !strings.Contains(output, "Info message") {
		t.Error("Info output should contain the message")
	}
}

func TestStep(t *testing.T) {
	output := captureOutput(func() {
		Step("Step message")
	})

	if !strings.Contains(output, "   ") {
		t.Error("Step output should contain indentation")
	}
	if !strings.Contains(output, "Step message") {
		t.Error("Step output should contain the message")
	}
}

func TestSpin_NoTTY(t *testing.T) {
	var buf bytes.Buffer
	called := false

	err := spinTo(&buf, false, "Creating project", func() error {
		called = true
		return nil
	})

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !called {
		t.Error("fn was not called")
	}
	if !strings.Contains(buf.String(), "✅ Creating project") {
		t.Errorf("unexpected output: %q", buf.String())
	}
}

func TestSpin_NoTTYPropagatesError(t *testing.T) {
	var buf bytes.Buffer
	want := errors.New("boom")

	err := spinTo(&buf, false, "Creating project", func() error {
		return want
	})

	if !errors.Is(err, want) {
		t.Errorf("expected %v, got %v", want, err)
	}
	if !strings.Contains(buf.String(), "❌ Creating project") {
		t.Errorf("unexpected output: %q", buf.String())
	}
}

func TestSpinnerModel(t *testing.T) {
	m := newSpinnerModel("Working")

	if !strings.Contains(m.View(), "Working...") {
		t.Errorf("in-progress view should show message, got %q", m.View())
	}

	_, cmd := m.Update(spinnerDoneMsg{err: errors.New("failed")})
	if cmd == nil {
		t.Error("done message should quit the program")
	}
	if !m.done {
		t.Error("model should be marked done")
	}
	if !strings.Contains(m.View(), "❌ Working") {
		t.Errorf("failed view should show error marker, got %q", m.View())
	}
}
