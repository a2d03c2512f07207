package main

import (
	"testing"

	"go.uber.org/fx"
)

// TestDependencyGraph checks every constructor's inputs are provided.
func TestDependencyGraph(t *testing.T) {
	err := fx.ValidateApp(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(startServer),
	)
	if err != nil {
		t.Fatalf("invalid fx graph: %v", err)
	}
}
