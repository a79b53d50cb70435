package tcontainer

import "testing"

func TestBridgeRoundTripAllScalarTags(t *testing.T) {
	br := NewBridge()

	values := []Value{
		NewNull("n"),
		NewBool("b", true),
		NewShort("s", -7),
		NewUShort("us", 7),
		NewInt("i", -12345),
		NewUInt("ui", 12345),
		mustValue(t, NewLong("l", 100)),
		mustValue(t, NewULong("ul", 100)),
		NewLLong("ll", 1<<40),
		NewULLong("ull", 1<<40),
		NewFloat("f", 1.5),
		NewDouble("d", 1.5),
		NewBytes("by", []byte{1, 2, 3}),
		NewString("st", "hello"),
	}

	for _, v := range values {
		variant, err := br.ToVariant(v)
		if err != nil {
			t.Fatalf("ToVariant(%v): %v", v.Tag(), err)
		}
		back, err := br.ToValue(variant)
		if err != nil {
			t.Fatalf("ToValue(%v): %v", v.Tag(), err)
		}
		if !back.Equal(v) {
			t.Fatalf("round trip mismatch for tag %v: got %+v, want %+v", v.Tag(), back, v)
		}
	}
}

func TestBridgeRoundTripContainerAndArray(t *testing.T) {
	br := NewBridge()

	inner := NewContainer()
	inner.SetMessageType("inner")
	inner.Add(NewInt("x", 1))
	cv := NewContainerValue("nested", inner)

	variant, err := br.ToVariant(cv)
	if err != nil {
		t.Fatalf("ToVariant: %v", err)
	}
	gotContainer, ok := variant.ContainerRef()
	if !ok || gotContainer.MessageType() != "inner" {
		t.Fatalf("ContainerRef() = %v, %v", gotContainer, ok)
	}
	back, err := br.ToValue(variant)
	if err != nil {
		t.Fatalf("ToValue: %v", err)
	}
	if back.Tag() != TagContainer {
		t.Fatalf("Tag() = %v, want TagContainer", back.Tag())
	}

	items := []Value{NewInt("a", 1), NewString("b", "two")}
	av := NewArrayValue("arr", items)
	variant, err = br.ToVariant(av)
	if err != nil {
		t.Fatalf("ToVariant(array): %v", err)
	}
	gotItems, ok := variant.ArrayRef()
	if !ok || len(gotItems) != 2 {
		t.Fatalf("ArrayRef() = %v, %v", gotItems, ok)
	}
}

func TestBridgeStatsCountSuccessAndFailure(t *testing.T) {
	br := NewBridge()

	if _, err := br.ToVariant(NewInt("x", 1)); err != nil {
		t.Fatalf("ToVariant: %v", err)
	}
	malformed := Value{name: "x", tag: TagArray, payload: []byte{1, 2}} // too short for a count header
	if _, err := br.ToVariant(malformed); err == nil {
		t.Fatal("expected a decode failure for a truncated array payload")
	}

	stats := br.Stats()
	if stats.ToVariantOK != 1 {
		t.Fatalf("ToVariantOK = %d, want 1", stats.ToVariantOK)
	}
	if stats.ToVariantFailed != 1 {
		t.Fatalf("ToVariantFailed = %d, want 1", stats.ToVariantFailed)
	}
}

func mustValue(t *testing.T, v Value, err error) Value {
	t.Helper()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return v
}
