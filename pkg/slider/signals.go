package slider

import "github.com/zoobzio/capitan"

// Lifecycle signals.
var (
	// SliderMounted is emitted when a copy of the slider is appended to a container.
	SliderMounted = capitan.NewSignal(
		"slider.mounted",
		"Slider subtree appended to a container",
	)

	// SliderTransitioned is emitted after a transition rendered successfully.
	SliderTransitioned = capitan.NewSignal(
		"slider.transitioned",
		"Current image changed and rendered",
	)

	// SliderUpdateFailed is emitted when a transition was rolled back.
	SliderUpdateFailed = capitan.NewSignal(
		"slider.update.failed",
		"Incremental update failed, index restored",
	)

	// SliderConfigUpdated is emitted when a partial configuration is merged.
	SliderConfigUpdated = capitan.NewSignal(
		"slider.config.updated",
		"Configuration merged",
	)
)

// Auto-advance signals.
var (
	// SliderAutoStarted is emitted when an auto-advance interval is scheduled.
	SliderAutoStarted = capitan.NewSignal(
		"slider.auto.started",
		"Auto-advance started",
	)

	// SliderAutoStopped is emitted when an auto-advance handle is stopped.
	SliderAutoStopped = capitan.NewSignal(
		"slider.auto.stopped",
		"Auto-advance stopped",
	)
)

// Field keys for slider events.
var (
	// KeySlider is the instance identifier.
	KeySlider = capitan.NewStringKey("slider_id")

	// KeyIndex is the current index after the event.
	KeyIndex = capitan.NewIntKey("index")

	// KeyTotal is the number of images.
	KeyTotal = capitan.NewIntKey("total")

	// KeySelector is the mount selector.
	KeySelector = capitan.NewStringKey("selector")

	// KeyError is the error message when an operation fails.
	KeyError = capitan.NewStringKey("error")

	// KeyInterval is the auto-advance interval.
	KeyInterval = capitan.NewDurationKey("interval")
)
