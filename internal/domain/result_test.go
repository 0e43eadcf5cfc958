package domain

import (
	"reflect"
	"testing"
)

func sampleRun() RunResult {
	return RunResult{
		Results: []PairResult{
			{Key: "checkout", Status: StatusDifferent},
			{Key: "home", Status: StatusIdentical},
			{Key: "login", Status: StatusFailed, Error: "decode failed"},
			{Key: "profile", Status: StatusDifferent},
		},
	}
}

func TestRunResult_Counts(t *testing.T) {
	identical, different, failed := sampleRun().Counts()
	if identical != 1 || different != 2 || failed != 1 {
		t.Fatalf("expected 1/2/1, got %d/%d/%d", identical, different, failed)
	}
}

func TestRunResult_Processed(t *testing.T) {
	if got := sampleRun().Processed(); got != 3 {
		t.Fatalf("expected processed=3, got %d", got)
	}
}

func TestRunResult_Keys_PreservesOrder(t *testing.T) {
	got := sampleRun().Keys(StatusDifferent)
	want := []string{"checkout", "profile"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestRunResult_Keys_EmptyStatus(t *testing.T) {
	run := RunResult{Results: []PairResult{{Key: "a", Status: StatusIdentical}}}
	if got := run.Keys(StatusFailed); got != nil {
		t.Fatalf("expected nil, got %v", got)
	}
}
