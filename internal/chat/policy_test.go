package chat

import "testing"

func TestParsePolicy(t *testing.T) {
	tests := []struct {
		in      string
		want    FinishedPolicy
		wantErr bool
	}{
		{"", PolicyReject, false},
		{"reject", PolicyReject, false},
		{"restart", PolicyRestart, false},
		{"Restart", PolicyReject, true},
		{"ignore", PolicyReject, true},
	}
	for _, tt := range tests {
		got, err := ParsePolicy(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParsePolicy(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("ParsePolicy(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestFinishedPolicyString(t *testing.T) {
	if got := PolicyRestart.String(); got != "restart" {
		t.Errorf("PolicyRestart.String() = %q, want %q", got, "restart")
	}
	if got := FinishedPolicy(9).String(); got != "FinishedPolicy(9)" {
		t.Errorf("FinishedPolicy(9).String() = %q", got)
	}
}

func TestKeyedMutexForgetsIdleKeys(t *testing.T) {
	k := newKeyedMutex()
	unlockA := k.Lock("a")
	unlockB := k.Lock("b")
	if got := k.size(); got != 2 {
		t.Fatalf("size = %d, want 2", got)
	}
	unlockA()
	unlockB()
	if got := k.size(); got != 0 {
		t.Errorf("size after unlock = %d, want 0", got)
	}
}
