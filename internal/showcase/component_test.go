package showcase

import (
	"context"
	"errors"
	"testing"

	"github.com/showcase-next/internal/constants"
	"github.com/showcase-next/internal/pubsub"
)

func TestComponentDispatchSelectOption(t *testing.T) {
	component := NewComponent(ComponentOptions{Doc: buildTeeDocument(t)})
	defer component.Close()

	result, err := component.Dispatch(context.Background(), SelectOption{Group: 0, Value: "Red"})
	if err != nil {
		t.Fatalf("dispatch color failed: %v", err)
	}
	if result.Variant != nil {
		t.Fatalf("partial selection want nil variant got id %d", result.Variant.ID)
	}
	if !result.Availability[1]["M"] {
		t.Fatalf("size M with color Red want available")
	}

	result, err = component.Dispatch(context.Background(), SelectOption{Group: 1, Value: "S"})
	if err != nil {
		t.Fatalf("dispatch size failed: %v", err)
	}
	if result.Variant == nil || result.Variant.ID != 1 {
		t.Fatalf("complete selection want variant 1 got %+v", result.Variant)
	}
}

func TestComponentDispatchSelectVariantExpandsSelection(t *testing.T) {
	component := NewComponent(ComponentOptions{Doc: buildTeeDocument(t)})
	defer component.Close()

	result, err := component.Dispatch(context.Background(), SelectVariant{VariantID: 3})
	if err != nil {
		t.Fatalf("dispatch variant failed: %v", err)
	}
	if result.Variant == nil || result.Variant.ID != 3 {
		t.Fatalf("want variant 3 got %+v", result.Variant)
	}

	selection := component.Selection()
	if value, _ := selection.Value(0); value != "Blue" {
		t.Fatalf("color want Blue got %q", value)
	}
	if value, _ := selection.Value(1); value != "S" {
		t.Fatalf("size want S got %q", value)
	}
}

func TestComponentDispatchErrors(t *testing.T) {
	component := NewComponent(ComponentOptions{Doc: buildTeeDocument(t)})
	defer component.Close()

	if _, err := component.Dispatch(context.Background(), SelectOption{Group: 5, Value: "X"}); !errors.Is(err, ErrUnknownGroup) {
		t.Fatalf("want ErrUnknownGroup got %v", err)
	}
	if _, err := component.Dispatch(context.Background(), SelectVariant{VariantID: 999}); !errors.Is(err, ErrUnknownVariant) {
		t.Fatalf("want ErrUnknownVariant got %v", err)
	}
}

func TestComponentClearSelection(t *testing.T) {
	component := NewComponent(ComponentOptions{Doc: buildTeeDocument(t)})
	defer component.Close()

	if _, err := component.Dispatch(context.Background(), SelectVariant{VariantID: 1}); err != nil {
		t.Fatalf("dispatch variant failed: %v", err)
	}
	result, err := component.Dispatch(context.Background(), ClearSelection{})
	if err != nil {
		t.Fatalf("dispatch clear failed: %v", err)
	}
	if result.Variant != nil {
		t.Fatalf("cleared selection want nil variant got id %d", result.Variant.ID)
	}
	if len(component.Selection()) != 0 {
		t.Fatalf("selection want empty got %v", component.Selection())
	}
}

func TestComponentBusEventDrivesProjection(t *testing.T) {
	doc := buildTeeDocument(t)
	bus := pubsub.NewBus()
	sinks := &fakeSinks{mediaOK: true}
	projector := newTestProjector(sinks, nil, nil)
	component := NewComponent(ComponentOptions{Doc: doc, Projector: projector, Bus: bus})
	defer component.Close()

	bus.Publish(pubsub.Event{
		Name:      constants.EventOptionValueSelectionChange,
		ProductID: doc.ProductID,
		Variant:   &doc.Variants[1],
	})

	if projector.CurrentVariantID() != 2 {
		t.Fatalf("projected variant want 2 got %d", projector.CurrentVariantID())
	}
	if sinks.urlVariantID != 2 {
		t.Fatalf("url variant want 2 got %d", sinks.urlVariantID)
	}
}

func TestComponentBusEventFiltersOtherProducts(t *testing.T) {
	doc := buildTeeDocument(t)
	bus := pubsub.NewBus()
	projector := newTestProjector(&fakeSinks{}, nil, nil)
	component := NewComponent(ComponentOptions{Doc: doc, Projector: projector, Bus: bus})
	defer component.Close()

	bus.Publish(pubsub.Event{
		Name:      constants.EventOptionValueSelectionChange,
		ProductID: 999,
		Variant:   &doc.Variants[0],
	})

	if projector.CurrentVariantID() != 0 {
		t.Fatalf("event for other product want no projection got %d", projector.CurrentVariantID())
	}
}

func TestComponentCloseUnsubscribes(t *testing.T) {
	doc := buildTeeDocument(t)
	bus := pubsub.NewBus()
	projector := newTestProjector(&fakeSinks{}, nil, nil)
	component := NewComponent(ComponentOptions{Doc: doc, Projector: projector, Bus: bus})

	if bus.SubscriberCount() != 1 {
		t.Fatalf("subscriber count want 1 got %d", bus.SubscriberCount())
	}
	component.Close()
	if bus.SubscriberCount() != 0 {
		t.Fatalf("subscriber count after close want 0 got %d", bus.SubscriberCount())
	}

	bus.Publish(pubsub.Event{
		Name:      constants.EventOptionValueSelectionChange,
		ProductID: doc.ProductID,
		Variant:   &doc.Variants[0],
	})
	if projector.CurrentVariantID() != 0 {
		t.Fatalf("closed component want no projection got %d", projector.CurrentVariantID())
	}

	// 关闭后本地命令也不再处理
	result, err := component.Dispatch(context.Background(), SelectVariant{VariantID: 1})
	if err != nil {
		t.Fatalf("dispatch after close failed: %v", err)
	}
	if result != nil {
		t.Fatalf("dispatch after close want nil result got %+v", result)
	}
}
