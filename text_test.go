package tcontainer

import "testing"

func TestTextRoundTrip(t *testing.T) {
	c := NewContainer()
	c.SetSource("svc-a", "1")
	c.SetTarget("svc-b", "")
	c.SetMessageType("greeting")
	c.Add(NewString("name", "alice"))
	c.Add(NewInt("age", 30))
	c.Add(NewBool("active", true))
	c.Add(NewBytes("blob", []byte{0, 1, 2, 255}))

	text := c.SerializeText()
	if len(text) == 0 || text[0] != '@' {
		t.Fatalf("SerializeText() must start with '@', got %q", text)
	}

	got, err := parseText([]byte(text))
	if err != nil {
		t.Fatalf("parseText: %v", err)
	}
	if got.SourceID() != "svc-a" || got.SourceSubID() != "1" {
		t.Fatalf("source mismatch: %q/%q", got.SourceID(), got.SourceSubID())
	}
	if got.MessageType() != "greeting" {
		t.Fatalf("MessageType() = %q", got.MessageType())
	}
	if got.Size() != 4 {
		t.Fatalf("Size() = %d, want 4", got.Size())
	}
	name := got.GetValue("name")
	if s, _ := name.AsString(); s != "alice" {
		t.Fatalf("name = %q, want alice", s)
	}
	age := got.GetValue("age")
	if n, _ := age.AsInt(); n != 30 {
		t.Fatalf("age = %d, want 30", n)
	}
}

func TestTextEscapingOfMetaCharacters(t *testing.T) {
	c := NewContainer()
	c.SetMessageType("m")
	c.Add(NewString("tricky", "a,b;c{d}e\\f"))

	text := c.SerializeText()
	got, err := parseText([]byte(text))
	if err != nil {
		t.Fatalf("parseText: %v", err)
	}
	v := got.GetValue("tricky")
	s, err := v.AsString()
	if err != nil {
		t.Fatalf("AsString: %v", err)
	}
	if s != "a,b;c{d}e\\f" {
		t.Fatalf("round-tripped string = %q, want %q", s, "a,b;c{d}e\\f")
	}
}

func TestContainerDeserializeAutoDetectsText(t *testing.T) {
	orig := NewContainer()
	orig.SetMessageType("m")
	orig.Add(NewInt("x", 5))
	text := orig.SerializeText()

	got := NewContainer()
	if err := got.Deserialize([]byte(text)); err != nil {
		t.Fatalf("Deserialize: %v", err)
	}
	if got.MessageType() != "m" {
		t.Fatalf("MessageType() = %q, want m", got.MessageType())
	}
}

func TestTextNestedContainerRoundTrip(t *testing.T) {
	inner := NewContainer()
	inner.SetMessageType("inner")
	inner.Add(NewInt("a", 1))

	c := NewContainer()
	c.SetMessageType("outer")
	c.Add(NewContainerValue("nested", inner))

	text := c.SerializeText()
	got, err := parseText([]byte(text))
	if err != nil {
		t.Fatalf("parseText: %v", err)
	}
	nested := got.GetValue("nested")
	sub, err := nested.AsContainer()
	if err != nil {
		t.Fatalf("AsContainer: %v", err)
	}
	if sub.MessageType() != "inner" {
		t.Fatalf("nested MessageType() = %q, want inner", sub.MessageType())
	}
}
