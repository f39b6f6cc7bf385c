package cmd

import (
	"bytes"
	"io"
	"testing"

	"github.com/spf13/cobra"

	"github.com/mouse-blink/compatfix/internal/adapter"
	"github.com/mouse-blink/compatfix/internal/controller"
	controllermocks "github.com/mouse-blink/compatfix/internal/controller/mocks"
	"github.com/mouse-blink/compatfix/internal/domain"
	"github.com/mouse-blink/compatfix/internal/domain/fixers"
	domainmocks "github.com/mouse-blink/compatfix/internal/domain/mocks"
	m "github.com/mouse-blink/compatfix/internal/model"
)

func newTestRoot(sub ...*cobra.Command) (*cobra.Command, *bytes.Buffer) {
	var out bytes.Buffer

	cmd := newRootCmd()
	cmd.AddCommand(sub...)
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})

	return cmd, &out
}

// withMocks swaps the package workflow and UI for mocks until the test ends.
func withMocks(t *testing.T) (*domainmocks.MockWorkflow, *controllermocks.MockUI) {
	t.Helper()

	mockWorkflow := domainmocks.NewMockWorkflow(t)
	mockUI := controllermocks.NewMockUI(t)

	originalWorkflow, originalUI := workflow, ui
	workflow, ui = mockWorkflow, mockUI

	t.Cleanup(func() { workflow, ui = originalWorkflow, originalUI })

	return mockWorkflow, mockUI
}

// withSampleWorkflow wires the sample catalog on a fresh namespace reporting
// version, and plain output on cmd.
func withSampleWorkflow(t *testing.T, cmd *cobra.Command, version string) *m.Namespace {
	t.Helper()

	ns := fixers.NewDummyNamespace(version)

	originalWorkflow, originalUI, originalNamespace := workflow, ui, namespace
	t.Cleanup(func() { workflow, ui, namespace = originalWorkflow, originalUI, originalNamespace })

	namespace = ns
	ui = controller.NewSimpleUI(cmd)
	workflow = domain.NewWorkflow(
		fixers.NewRegistry(ns),
		fixers.VersionProvider(ns),
		domain.WithUtilitiesFactory(func(cfg m.Config) (m.Utilities, error) {
			return adapter.NewPatchingUtilities(cfg, adapter.WithOutput(io.Discard)), nil
		}),
	)

	return ns
}
