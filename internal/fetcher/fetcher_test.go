package fetcher_test

import (
	"testing"
	"time"

	"gemexport/internal/fetcher"

	"github.com/stretchr/testify/assert"
)

func TestOptionsValidate(t *testing.T) {
	testCases := []struct {
		name   string
		opts   fetcher.Options
		errMsg string
	}{
		{name: "load", opts: fetcher.Options{WaitFor: fetcher.WaitStrategyLoad}},
		{name: "element_with_target", opts: fetcher.Options{WaitFor: fetcher.WaitStrategyElement, WaitTarget: "main"}},
		{name: "time_with_target", opts: fetcher.Options{WaitFor: fetcher.WaitStrategyTime, WaitTarget: "1500"}},
		{name: "element_without_target", opts: fetcher.Options{WaitFor: fetcher.WaitStrategyElement}, errMsg: "--wait-target is required"},
		{name: "time_without_target", opts: fetcher.Options{WaitFor: fetcher.WaitStrategyTime}, errMsg: "--wait-target is required"},
		{name: "unknown_strategy", opts: fetcher.Options{WaitFor: "idle"}, errMsg: "invalid wait strategy"},
		{name: "negative_login_wait", opts: fetcher.Options{WaitFor: fetcher.WaitStrategyLoad, LoginWait: -time.Second}, errMsg: "invalid login wait"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.opts.Validate()
			if tc.errMsg == "" {
				assert.NoError(t, err)
				return
			}
			if assert.Error(t, err) {
				assert.Contains(t, err.Error(), tc.errMsg)
			}
		})
	}
}
