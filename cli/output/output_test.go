package output

import (
	"fmt"
	"io"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

// captureOutput redirects os.Stdout to a buffer, executes f, and returns
// the captured output string.
func captureOutput(f func()) string {
	r, w, err := os.Pipe()
	if err != nil {
		panic(err)
	}

	stdout := os.Stdout
	defer func() {
		os.Stdout = stdout
	}()
	os.Stdout = w

	f()

	w.Close()
	out, err := io.ReadAll(r)
	if err != nil {
		panic(err)
	}
	return string(out)
}

func TestPrintFunctions(t *testing.T) {
	const testMsg = "Test message content"

	tests := []struct {
		name          string
		callFunc      func(msg string)
		expectedTitle string
		expectedColor string
	}{
		{name: "Info", callFunc: Info, expectedTitle: "INFO", expectedColor: blue},
		{name: "Warn", callFunc: Warn, expectedTitle: "WARN", expectedColor: yellow},
		{name: "Error", callFunc: Error, expectedTitle: "ERROR", expectedColor: red},
		{name: "Success", callFunc: Success, expectedTitle: "SUCCESS", expectedColor: green},
		{name: "Debug", callFunc: Debug, expectedTitle: "DEBUG", expectedColor: cyan},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			captured := captureOutput(func() {
				tt.callFunc(testMsg)
			})
			expected := fmt.Sprintf("%s%s[%s]%s %s%s%s\n",
				tt.expectedColor, bold, tt.expectedTitle, reset, tt.expectedColor, testMsg, reset)
			assert.Equal(t, expected, captured)
			assert.True(t, strings.Contains(captured, fmt.Sprintf("[%s]", tt.expectedTitle)))
		})
	}
}

func TestDim(t *testing.T) {
	captured := captureOutput(func() {
		Dim("dim message")
	})
	assert.Equal(t, fmt.Sprintf("%s%s%s\n", grey, "dim message", reset), captured)
}

func TestPlain(t *testing.T) {
	captured := captureOutput(func() {
		Plain("raw value")
	})
	assert.Equal(t, "raw value\n", captured, "Plain output must carry no color codes")
}
