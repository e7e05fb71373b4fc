package conflict

import (
	"context"
	"errors"
	"reflect"
	"testing"
	"time"

	"cassandra-launcher/internal/config"
	"cassandra-launcher/internal/runtimeenv"
	"cassandra-launcher/internal/testsupport"
)

var testEnv = runtimeenv.Environment{
	Executable:  "/opt/jdk/bin/java",
	Classpath:   "/opt/cassandra/lib/*",
	RuntimeArgs: []string{"-Xmx1G", "-Dcom.sun.management.jmxremote.port=7199"},
}

func TestCheckDetectsSignature(t *testing.T) {
	runner := &testsupport.Runner{Respond: func(string, []string) ([]byte, error) {
		return []byte("Picked up JAVA_TOOL_OPTIONS\n" + config.DefaultConflictSignature + "\n"), errors.New("exit status 1")
	}}
	probe := Probe{Runner: runner, Detector: SignatureDetector{Signature: config.DefaultConflictSignature}}

	err := probe.Check(context.Background(), testEnv)
	if !errors.Is(err, ErrAlreadyRunning) {
		t.Fatalf("expected ErrAlreadyRunning, got %v", err)
	}

	calls := runner.Calls()
	if len(calls) != 1 {
		t.Fatalf("expected a single probe invocation, got %v", calls)
	}
	wantArgs := []string{"-Xmx1G", "-Dcom.sun.management.jmxremote.port=7199", "-classpath", "/opt/cassandra/lib/*"}
	if calls[0].Name != testEnv.Executable || !reflect.DeepEqual(calls[0].Args, wantArgs) {
		t.Fatalf("unexpected probe invocation %q", calls[0].Line())
	}
}

func TestCheckIgnoresOrdinaryFailure(t *testing.T) {
	runner := &testsupport.Runner{Respond: func(string, []string) ([]byte, error) {
		return []byte("Usage: java [options] <mainclass> [args...]\n"), errors.New("exit status 1")
	}}
	probe := Probe{Runner: runner, Detector: SignatureDetector{Signature: config.DefaultConflictSignature}}

	if err := probe.Check(context.Background(), testEnv); err != nil {
		t.Fatalf("expected probe to pass, got %v", err)
	}
}

func TestCheckTimeoutIsAdvisory(t *testing.T) {
	runner := &testsupport.Runner{}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	probe := Probe{Runner: runner, Detector: SignatureDetector{Signature: "x"}, Timeout: time.Second}

	if err := probe.Check(ctx, testEnv); err != nil {
		t.Fatalf("expected cancelled probe to pass, got %v", err)
	}
}

func TestCheckRequiresDetector(t *testing.T) {
	if err := (Probe{Runner: &testsupport.Runner{}}).Check(context.Background(), testEnv); err == nil {
		t.Fatal("expected error without detector")
	}
}

func TestCheckAgainstStubRuntime(t *testing.T) {
	java := testsupport.WriteExecutable(t, t.TempDir(), "java",
		`echo "`+config.DefaultConflictSignature+`" >&2
exit 1`)
	env := runtimeenv.Environment{Executable: java, Classpath: "/cp"}
	probe := Probe{Detector: SignatureDetector{Signature: config.DefaultConflictSignature}, Timeout: 5 * time.Second}

	if err := probe.Check(context.Background(), env); !errors.Is(err, ErrAlreadyRunning) {
		t.Fatalf("expected stderr signature to be detected, got %v", err)
	}
}

func TestSignatureDetector(t *testing.T) {
	d := SignatureDetector{Signature: "bound"}
	if !d.Conflict([]byte("port already bound here")) {
		t.Fatal("expected substring match")
	}
	if d.Conflict([]byte("port already BOUND")) {
		t.Fatal("expected case-sensitive match")
	}
	if (SignatureDetector{}).Conflict([]byte("anything")) {
		t.Fatal("expected empty signature to never match")
	}
}
