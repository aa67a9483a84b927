package telemetry

import (
	"context"
	"testing"
)

func TestSetupDisabledIsNoop(t *testing.T) {
	cases := []Options{
		{ServiceName: "workoutplanner", Enabled: false, Endpoint: "http://localhost:4318/v1/traces"},
		{ServiceName: "workoutplanner", Enabled: true},
	}
	for _, opts := range cases {
		shutdown, err := Setup(context.Background(), opts)
		if err != nil {
			t.Fatalf("setup %+v: %v", opts, err)
		}
		if err := shutdown(context.Background()); err != nil {
			t.Fatalf("shutdown: %v", err)
		}
	}
}

func TestSetupWithEndpoint(t *testing.T) {
	shutdown, err := Setup(context.Background(), Options{
		ServiceName: "workoutplanner",
		Enabled:     true,
		Endpoint:    "http://127.0.0.1:4318/v1/traces",
	})
	if err != nil {
		t.Fatalf("setup: %v", err)
	}
	// Nothing was traced, so shutdown has nothing to export.
	if err := shutdown(context.Background()); err != nil {
		t.Fatalf("shutdown: %v", err)
	}
}
