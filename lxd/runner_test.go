package lxd

import "context"

// Records every argument vector issued through the client and lets tests
// script failures and canned output per invocation.
type fakeRunner struct {
	calls  [][]string
	runErr func(args []string) error
	outFn  func(args []string) ([]byte, error)
}

func (f *fakeRunner) Run(ctx context.Context, args ...string) error {
	f.calls = append(f.calls, args)
	if f.runErr != nil {
		return f.runErr(args)
	}
	return nil
}

func (f *fakeRunner) Output(ctx context.Context, args ...string) ([]byte, error) {
	f.calls = append(f.calls, args)
	if f.outFn != nil {
		return f.outFn(args)
	}
	return []byte("[]"), nil
}

func testClient(f *fakeRunner) *Client {
	return &Client{runner: f}
}
