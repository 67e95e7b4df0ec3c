// Package patches holds the patch descriptor set for the webview bundle.
package patches

import (
	"github.com/mouse-blink/bundlepatch/internal/domain"
	m "github.com/mouse-blink/bundlepatch/internal/model"
)

// Patch names, as accepted on the command line.
const (
	QueueName         = "approval-queue"
	SerializationName = "approval-serialization"
	AutoAdvanceName   = "approval-auto-advance"
	ReadOnlyName      = "approval-read-only"
)

// All returns every patch in the default application order.
func All() []m.Patch {
	return []m.Patch{
		Queue(),
		Serialization(),
		AutoAdvance(),
		ReadOnly(),
	}
}

// Registry returns a validated registry of All.
func Registry() *domain.Registry {
	return domain.MustNewRegistry(All()...)
}
