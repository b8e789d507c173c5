package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"

	clierrors "github.com/salmonumbrella/ftb/internal/errors"
	"github.com/salmonumbrella/ftb/internal/iocontext"
)

func TestValidateErrorFormat(t *testing.T) {
	for _, valid := range []string{"", "text", "json", "yaml", "JSON", " text "} {
		if err := validateErrorFormat(valid); err != nil {
			t.Errorf("validateErrorFormat(%q) = %v, want nil", valid, err)
		}
	}
	if err := validateErrorFormat("xml"); err == nil {
		t.Error("validateErrorFormat(xml) = nil, want error")
	}
}

func TestBuildErrorEnvelope(t *testing.T) {
	tests := []struct {
		name         string
		err          error
		wantCategory string
		wantType     string
	}{
		{
			name:         "user error",
			err:          clierrors.NewUserError("file not found", "Check the path"),
			wantCategory: "user",
		},
		{
			name:         "validation error",
			err:          &clierrors.ValidationError{Field: "--color", Message: "bad"},
			wantCategory: "user",
			wantType:     "validation",
		},
		{
			name:         "encoding error",
			err:          &clierrors.EncodingError{Source: "stdin"},
			wantCategory: "user",
			wantType:     "encoding",
		},
		{
			name:         "check error",
			err:          &clierrors.CheckError{Source: "doc.md"},
			wantCategory: "system",
			wantType:     "check",
		},
		{
			name:         "plain error",
			err:          errors.New("boom"),
			wantCategory: "system",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			envelope := buildErrorEnvelope(tt.err)
			errMap, ok := envelope["error"].(map[string]interface{})
			if !ok {
				t.Fatalf("envelope missing error object: %v", envelope)
			}
			if errMap["category"] != tt.wantCategory {
				t.Errorf("category = %v, want %v", errMap["category"], tt.wantCategory)
			}
			if tt.wantType != "" && errMap["type"] != tt.wantType {
				t.Errorf("type = %v, want %v", errMap["type"], tt.wantType)
			}
			if errMap["message"] != tt.err.Error() {
				t.Errorf("message = %v, want %v", errMap["message"], tt.err.Error())
			}
		})
	}
}

func TestPrintCommandErrorText(t *testing.T) {
	var errOut bytes.Buffer
	ctx := iocontext.WithIO(context.Background(), nil, nil, &errOut)
	ctx = withErrorFormat(ctx, "text")

	printCommandError(ctx, clierrors.NewUserError("file not found: doc.md", "Check the file path"))

	out := errOut.String()
	if !strings.Contains(out, "file not found: doc.md") {
		t.Errorf("missing error message:\n%s", out)
	}
	if !strings.Contains(out, "Hint: Check the file path") {
		t.Errorf("missing hint:\n%s", out)
	}
}

func TestPrintCommandErrorJSON(t *testing.T) {
	var errOut bytes.Buffer
	ctx := iocontext.WithIO(context.Background(), nil, nil, &errOut)
	ctx = withErrorFormat(ctx, "json")

	printCommandError(ctx, &clierrors.ValidationError{Field: "--color", Message: "bad"})

	var envelope map[string]map[string]interface{}
	if err := json.Unmarshal(errOut.Bytes(), &envelope); err != nil {
		t.Fatalf("stderr is not JSON: %v\n%s", err, errOut.String())
	}
	if envelope["error"]["field"] != "--color" {
		t.Errorf("field = %v, want --color", envelope["error"]["field"])
	}
}

func TestPrintCommandErrorYAML(t *testing.T) {
	var errOut bytes.Buffer
	ctx := iocontext.WithIO(context.Background(), nil, nil, &errOut)
	ctx = withErrorFormat(ctx, "yaml")

	printCommandError(ctx, &clierrors.CheckError{Source: "doc.md"})

	var envelope map[string]map[string]interface{}
	if err := yaml.Unmarshal(errOut.Bytes(), &envelope); err != nil {
		t.Fatalf("stderr is not YAML: %v\n%s", err, errOut.String())
	}
	if envelope["error"]["type"] != "check" {
		t.Errorf("type = %v, want check", envelope["error"]["type"])
	}
}

func TestPrintCommandErrorNil(t *testing.T) {
	var errOut bytes.Buffer
	ctx := iocontext.WithIO(context.Background(), nil, nil, &errOut)
	printCommandError(ctx, nil)
	if errOut.Len() != 0 {
		t.Errorf("nil error should print nothing, got %q", errOut.String())
	}
}
