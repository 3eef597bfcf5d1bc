package ui

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"easel/internal/selection"
)

func TestClassifyConnectionError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"nil", nil, ""},
		{"refused", errors.New("dial tcp: connection refused"), "OFFLINE"},
		{"no host", errors.New("lookup api.artic.edu: no such host"), "HOST NOT FOUND"},
		{"timeout", errors.New("request timeout"), "TIMEOUT"},
		{"deadline", context.DeadlineExceeded, "TIMEOUT"},
		{"other", errors.New("boom"), "ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := classifyConnectionError(tt.err); got != tt.want {
				t.Errorf("classifyConnectionError(%v) = %q, want %q", tt.err, got, tt.want)
			}
		})
	}
}

func TestFormatBulkStatus_Success(t *testing.T) {
	res := selection.BulkResult{Requested: 120, Selected: 120, StartPage: 3, LastPage: 7}
	got := formatBulkStatus(res, nil)
	want := "Selected 120 rows (pages 3-7)"
	if got != want {
		t.Errorf("formatBulkStatus = %q, want %q", got, want)
	}
}

func TestFormatBulkStatus_SinglePage(t *testing.T) {
	res := selection.BulkResult{Requested: 10, Selected: 10, StartPage: 2, LastPage: 2}
	got := formatBulkStatus(res, nil)
	want := "Selected 10 rows on page 2"
	if got != want {
		t.Errorf("formatBulkStatus = %q, want %q", got, want)
	}
}

func TestFormatBulkStatus_Exhausted(t *testing.T) {
	res := selection.BulkResult{Requested: 500, Selected: 42, StartPage: 1, LastPage: 9, Exhausted: true}
	got := formatBulkStatus(res, nil)
	if !strings.Contains(got, "42") || !strings.Contains(got, "no more data") {
		t.Errorf("formatBulkStatus = %q, want exhaustion notice with count", got)
	}
}

func TestFormatBulkStatus_Cancelled(t *testing.T) {
	res := selection.BulkResult{Requested: 100, Selected: 25, StartPage: 1, LastPage: 2}
	got := formatBulkStatus(res, context.Canceled)
	if !strings.Contains(got, "cancelled") || !strings.Contains(got, "25") {
		t.Errorf("formatBulkStatus = %q, want cancellation notice with kept count", got)
	}
}

func TestFormatBulkStatus_FetchError(t *testing.T) {
	res := selection.BulkResult{Requested: 100, Selected: 50, StartPage: 1, LastPage: 2}
	err := &selection.FetchError{Page: 3, Err: fmt.Errorf("api unreachable")}
	got := formatBulkStatus(res, err)
	if !strings.Contains(got, "page 3") || !strings.Contains(got, "50 rows kept") {
		t.Errorf("formatBulkStatus = %q, want failing page and kept count", got)
	}
}
