package settle

// EventKind classifies a generation diagnostic.
type EventKind string

const (
	// EventPlacementFailed reports buildings dropped after every
	// placement tier was exhausted, aggregated per settlement.
	EventPlacementFailed EventKind = "placement_failed"
	// EventSpecMissing reports quota units or a focal slot skipped
	// because the catalog holds no eligible spec.
	EventSpecMissing EventKind = "spec_missing"
	// EventFocalSkipped reports a focal building whose spec exists
	// but which found no collision-free spot near the center.
	EventFocalSkipped EventKind = "focal_skipped"
)

// Event is one generation diagnostic. The generator never logs on its
// own; callers subscribe a sink and decide what to surface.
type Event struct {
	Kind       EventKind `json:"kind"`
	Settlement string    `json:"settlement"`
	Message    string    `json:"message"`
	Count      int       `json:"count,omitempty"`
}

// EventSink receives generation diagnostics. Nil sinks drop them.
type EventSink func(Event)

func (g *Generator) emit(e Event) {
	if g.Events != nil {
		g.Events(e)
	}
}
