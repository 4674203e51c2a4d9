package progress

import (
	"github.com/trebuchet-org/govctl/internal/usecase"
)

// NewNopSink returns the sink used for structured output and non-interactive runs
func NewNopSink() usecase.ProgressSink {
	return usecase.NopProgress{}
}

// NewSink picks the spinner for interactive table output and a no-op sink otherwise
func NewSink(interactive bool) usecase.ProgressSink {
	if !interactive {
		return NewNopSink()
	}
	return NewSpinnerSink()
}
