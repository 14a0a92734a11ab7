package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"strings"
	"testing"
)

// ============================================================================
// Success Method Tests - JSON Mode
// ============================================================================

func TestOutputFormatter_Success_JSON(t *testing.T) {
	tests := []struct {
		name     string
		data     interface{}
		validate func(t *testing.T, result map[string]interface{})
	}{
		{
			name: "map data",
			data: map[string]interface{}{"test": "value", "number": float64(42)},
			validate: func(t *testing.T, result map[string]interface{}) {
				if !result["success"].(bool) {
					t.Error("Expected success to be true")
				}
				dataMap := result["data"].(map[string]interface{})
				if dataMap["test"] != "value" {
					t.Errorf("Expected data.test to be 'value', got %v", dataMap["test"])
				}
			},
		},
		{
			name: "string data",
			data: "simple string",
			validate: func(t *testing.T, result map[string]interface{}) {
				if !result["success"].(bool) {
					t.Error("Expected success to be true")
				}
				if result["data"] != "simple string" {
					t.Errorf("Expected data to be 'simple string', got %v", result["data"])
				}
			},
		},
		{
			name: "nil data",
			data: nil,
			validate: func(t *testing.T, result map[string]interface{}) {
				if !result["success"].(bool) {
					t.Error("Expected success to be true")
				}
				if result["data"] != nil {
					t.Errorf("Expected data to be nil, got %v", result["data"])
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Capture stdout
			oldStdout := os.Stdout
			r, w, _ := os.Pipe()
			os.Stdout = w

			formatter := &OutputFormatter{JSON: true, Quiet: false}
			err := formatter.Success(tt.data)
			if err != nil {
				t.Errorf("Expected no error, got %v", err)
			}

			_ = w.Close()
			os.Stdout = oldStdout

			var buf bytes.Buffer
			_, _ = buf.ReadFrom(r)
			output := buf.String()

			// Verify JSON output
			var result map[string]interface{}
			if err := json.Unmarshal([]byte(output), &result); err != nil {
				t.Fatalf("Failed to parse JSON: %v\nOutput: %s", err, output)
			}

			tt.validate(t, result)
		})
	}
}

// ============================================================================
// Success Method Tests - Quiet Mode
// ============================================================================

func TestOutputFormatter_Success_Quiet(t *testing.T) {
	// Quiet mode prints nothing from Success; commands emit their own
	// scripting value instead
	oldStdout := os.Stdout
	r, w, _ := os.Pipe()
	os.Stdout = w

	formatter := &OutputFormatter{JSON: false, Quiet: true}
	err := formatter.Success(map[string]string{"name": "suppressed"})

	_ = w.Close()
	os.Stdout = oldStdout

	if err != nil {
		t.Errorf("Expected no error, got %v", err)
	}

	var buf bytes.Buffer
	_, _ = buf.ReadFrom(r)
	output := buf.String()

	if output != "" {
		t.Errorf("Expected no output in quiet mode, got '%s'", output)
	}
}

// ============================================================================
// Success Method Tests - Human-Readable Mode
// ============================================================================

func TestOutputFormatter_Success_HumanReadable(t *testing.T) {
	tests := []struct {
		name          string
		data          interface{}
		shouldContain string
	}{
		{
			name:          "map",
			data:          map[string]interface{}{"key": "value"},
			shouldContain: "key",
		},
		{
			name:          "string",
			data:          "human readable text",
			shouldContain: "human readable text",
		},
		{
			name:          "slice",
			data:          []string{"item1", "item2"},
			shouldContain: "item1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Capture stdout
			oldStdout := os.Stdout
			r, w, _ := os.Pipe()
			os.Stdout = w

			formatter := &OutputFormatter{JSON: false, Quiet: false}
			err := formatter.Success(tt.data)
			if err != nil {
				t.Errorf("Expected no error, got %v", err)
			}

			_ = w.Close()
			os.Stdout = oldStdout

			var buf bytes.Buffer
			_, _ = buf.ReadFrom(r)
			output := buf.String()

			if !strings.Contains(output, tt.shouldContain) {
				t.Errorf("Expected output to contain '%s', got '%s'", tt.shouldContain, output)
			}
		})
	}
}

// ============================================================================
// Error Method Tests - JSON Mode
// ============================================================================

func TestOutputFormatter_Error_JSON(t *testing.T) {
	tests := []struct {
		name    string
		code    string
		message string
	}{
		{
			name:    "standard error",
			code:    "TEST_ERROR",
			message: "something went wrong",
		},
		{
			name:    "empty message",
			code:    "EMPTY_MSG",
			message: "",
		},
		{
			name:    "special characters in message",
			code:    "SPECIAL_CHAR",
			message: "error with \"quotes\" and \n newlines",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Capture stdout
			oldStdout := os.Stdout
			r, w, _ := os.Pipe()
			os.Stdout = w

			formatter := &OutputFormatter{JSON: true, Quiet: false}
			err := formatter.Error(tt.code, tt.message)
			if err != nil {
				t.Errorf("Expected no error, got %v", err)
			}

			_ = w.Close()
			os.Stdout = oldStdout

			var buf bytes.Buffer
			_, _ = buf.ReadFrom(r)
			output := buf.String()

			// Verify JSON output
			var result map[string]interface{}
			if err := json.Unmarshal([]byte(output), &result); err != nil {
				t.Fatalf("Failed to parse JSON: %v\nOutput: %s", err, output)
			}

			if result["success"].(bool) {
				t.Error("Expected success to be false")
			}

			errorData := result["error"].(map[string]interface{})
			if errorData["code"] != tt.code {
				t.Errorf("Expected error code '%s', got '%s'", tt.code, errorData["code"])
			}
			if errorData["message"] != tt.message {
				t.Errorf("Expected message '%s', got '%s'", tt.message, errorData["message"])
			}

			// Verify no suggestion field when using Error() method
			if _, hasSuggestion := errorData["suggestion"]; hasSuggestion {
				t.Error("Expected no suggestion field in Error() output")
			}
		})
	}
}

// ============================================================================
// Error Method Tests - Human-Readable Mode
// ============================================================================

func TestOutputFormatter_Error_HumanReadable(t *testing.T) {
	// Errors always reach the user; quiet mode only silences success output
	tests := []struct {
		name  string
		quiet bool
	}{
		{"default mode", false},
		{"quiet mode", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Capture stderr
			oldStderr := os.Stderr
			r, w, _ := os.Pipe()
			os.Stderr = w

			formatter := &OutputFormatter{JSON: false, Quiet: tt.quiet}
			err := formatter.Error("TEST_ERROR", "something went wrong")
			if err != nil {
				t.Errorf("Expected no error, got %v", err)
			}

			_ = w.Close()
			os.Stderr = oldStderr

			var buf bytes.Buffer
			_, _ = buf.ReadFrom(r)
			output := buf.String()

			if !strings.Contains(output, "something went wrong") {
				t.Errorf("Expected output to contain error message, got '%s'", output)
			}
			if !strings.Contains(output, "Error:") {
				t.Errorf("Expected output to contain 'Error:', got '%s'", output)
			}
			// Should NOT contain suggestion
			if strings.Contains(output, "Suggestion:") {
				t.Errorf("Expected no suggestion in Error() output, got '%s'", output)
			}
		})
	}
}

// ============================================================================
// ErrorWithSuggestion Method Tests
// ============================================================================

func TestOutputFormatter_ErrorWithSuggestion_JSON(t *testing.T) {
	tests := []struct {
		name       string
		code       string
		message    string
		suggestion string
		hasSuggest bool
	}{
		{
			name:       "with suggestion",
			code:       "TEST_ERROR",
			message:    "something went wrong",
			suggestion: "try this instead",
			hasSuggest: true,
		},
		{
			name:       "without suggestion",
			code:       "NO_SUGGEST",
			message:    "error without suggestion",
			suggestion: "",
			hasSuggest: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Capture stdout
			oldStdout := os.Stdout
			r, w, _ := os.Pipe()
			os.Stdout = w

			formatter := &OutputFormatter{JSON: true, Quiet: false}
			err := formatter.ErrorWithSuggestion(tt.code, tt.message, tt.suggestion)
			if err != nil {
				t.Errorf("Expected no error, got %v", err)
			}

			_ = w.Close()
			os.Stdout = oldStdout

			var buf bytes.Buffer
			_, _ = buf.ReadFrom(r)
			output := buf.String()

			// Verify JSON output
			var result map[string]interface{}
			if err := json.Unmarshal([]byte(output), &result); err != nil {
				t.Fatalf("Failed to parse JSON: %v\nOutput: %s", err, output)
			}

			if result["success"].(bool) {
				t.Error("Expected success to be false")
			}

			errorData := result["error"].(map[string]interface{})
			if tt.hasSuggest {
				if errorData["suggestion"] != tt.suggestion {
					t.Errorf("Expected suggestion '%s', got '%v'", tt.suggestion, errorData["suggestion"])
				}
			} else {
				if _, exists := errorData["suggestion"]; exists {
					t.Error("Expected no suggestion field when suggestion is empty")
				}
			}
		})
	}
}

func TestOutputFormatter_ErrorWithSuggestion_HumanReadable(t *testing.T) {
	// Capture stderr
	oldStderr := os.Stderr
	r, w, _ := os.Pipe()
	os.Stderr = w

	formatter := &OutputFormatter{JSON: false, Quiet: false}
	err := formatter.ErrorWithSuggestion("TEST_ERROR", "something went wrong", "try this instead")

	_ = w.Close()
	os.Stderr = oldStderr

	if err != nil {
		t.Errorf("Expected no error, got %v", err)
	}

	var buf bytes.Buffer
	_, _ = buf.ReadFrom(r)
	output := buf.String()

	for _, expected := range []string{"something went wrong", "try this instead", "Error:", "Suggestion:"} {
		if !strings.Contains(output, expected) {
			t.Errorf("Expected output to contain '%s', got '%s'", expected, output)
		}
	}
}
