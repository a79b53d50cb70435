package wire

import "testing"

func TestEncodeDecodeRoundTrip(t *testing.T) {
	cases := []struct {
		name    string
		tag     byte
		vname   string
		payload []byte
	}{
		{"empty payload", 0x00, "", nil},
		{"short name and payload", 0x01, "n", []byte{1}},
		{"longer payload", 0x0e, "greeting", []byte("hello, world")},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			buf := Encode(tc.tag, []byte(tc.vname), tc.payload)
			f, next, short, ok := Decode(buf, 0)
			if !ok {
				t.Fatalf("Decode failed, short=%v", short)
			}
			if next != len(buf) {
				t.Fatalf("next = %d, want %d", next, len(buf))
			}
			if f.Tag != tc.tag {
				t.Fatalf("Tag = %d, want %d", f.Tag, tc.tag)
			}
			if string(f.Name) != tc.vname {
				t.Fatalf("Name = %q, want %q", f.Name, tc.vname)
			}
			if string(f.Payload) != string(tc.payload) {
				t.Fatalf("Payload = %v, want %v", f.Payload, tc.payload)
			}
		})
	}
}

func TestEncodeToMatchesEncode(t *testing.T) {
	a := Encode(0x04, []byte("x"), []byte{1, 2, 3, 4})
	b := EncodeTo(nil, 0x04, []byte("x"), []byte{1, 2, 3, 4})
	if string(a) != string(b) {
		t.Fatalf("EncodeTo diverged from Encode: %v vs %v", a, b)
	}
}

func TestDecodeShortBuffer(t *testing.T) {
	_, _, short, ok := Decode(nil, 0)
	if ok {
		t.Fatal("expected failure on empty buffer")
	}
	if !short {
		t.Fatal("expected shortBuffer=true on empty buffer")
	}
}

func TestDecodeTruncatedMidName(t *testing.T) {
	full := Encode(0x02, []byte("hello"), []byte{9})
	truncated := full[:5] // tag + name_len, but no name bytes
	_, _, short, ok := Decode(truncated, 0)
	if ok {
		t.Fatal("expected failure on truncated frame")
	}
	if !short {
		t.Fatal("expected shortBuffer=true on truncated name")
	}
}

func TestPutUint32ReadUint32RoundTrip(t *testing.T) {
	buf := PutUint32(nil, 0xdeadbeef)
	v, next, short, ok := readUint32(buf, 0)
	if !ok || short {
		t.Fatalf("readUint32 failed: ok=%v short=%v", ok, short)
	}
	if next != 4 {
		t.Fatalf("next = %d, want 4", next)
	}
	if uint32(v) != 0xdeadbeef {
		t.Fatalf("v = %#x, want 0xdeadbeef", v)
	}
}

func TestPutStringReadStringRoundTrip(t *testing.T) {
	buf := PutString(nil, "hello")
	s, next, short, ok := ReadString(buf, 0)
	if !ok || short {
		t.Fatalf("ReadString failed: ok=%v short=%v", ok, short)
	}
	if next != len(buf) {
		t.Fatalf("next = %d, want %d", next, len(buf))
	}
	if string(s) != "hello" {
		t.Fatalf("s = %q, want %q", s, "hello")
	}
}

func TestHasTextPrefix(t *testing.T) {
	if !HasTextPrefix([]byte("@header={};")) {
		t.Fatal("expected true for '@'-prefixed input")
	}
	if HasTextPrefix([]byte{0x00, 0x01}) {
		t.Fatal("expected false for a tag-prefixed binary frame")
	}
	if HasTextPrefix(nil) {
		t.Fatal("expected false for empty input")
	}
}
