package tcontainer

import (
	"sync"
	"testing"
)

func TestThreadSafeContainerConcurrentAddAndRead(t *testing.T) {
	tsc := NewThreadSafeContainer()
	tsc.SetMessageType("concurrent")

	var wg sync.WaitGroup
	const writers = 8
	const perWriter = 50
	wg.Add(writers)
	for w := 0; w < writers; w++ {
		go func(w int) {
			defer wg.Done()
			for i := 0; i < perWriter; i++ {
				tsc.Add(NewInt("x", int32(w*perWriter+i)))
			}
		}(w)
	}

	done := make(chan struct{})
	go func() {
		for {
			select {
			case <-done:
				return
			default:
				_ = tsc.Size()
				_ = tsc.ValueArray("x")
			}
		}
	}()

	wg.Wait()
	close(done)

	if got := tsc.Size(); got != writers*perWriter {
		t.Fatalf("Size() = %d, want %d", got, writers*perWriter)
	}
}

func TestThreadSafeContainerRemoveManyAggregatesErrors(t *testing.T) {
	tsc := NewThreadSafeContainer()
	tsc.Add(NewInt("a", 1))
	tsc.Add(NewInt("b", 2))

	err := tsc.RemoveMany([]string{"a", "missing", "also-missing"})
	if err == nil {
		t.Fatal("expected an aggregated error for missing names")
	}
	if tsc.GetValue("a").Tag() != TagNull {
		t.Fatal("RemoveMany should have removed 'a'")
	}
	if tsc.Size() != 1 {
		t.Fatalf("Size() = %d, want 1", tsc.Size())
	}
}

func TestThreadSafeContainerSnapshotIsIndependent(t *testing.T) {
	tsc := NewThreadSafeContainer()
	tsc.Add(NewString("x", "one"))

	snap := tsc.Snapshot()
	tsc.Add(NewString("y", "two"))

	if len(snap) != 1 {
		t.Fatalf("Snapshot captured after mutation: len = %d, want 1", len(snap))
	}
}

func TestThreadSafeContainerHeaderAndDeserialize(t *testing.T) {
	tsc := NewThreadSafeContainer()
	tsc.SetSource("svc-a", "1")
	tsc.SetTarget("svc-b", "2")
	tsc.SetMessageType("ping")
	tsc.Add(NewInt("x", 1))

	data := tsc.Serialize()

	other := NewThreadSafeContainer()
	if err := other.Deserialize(data); err != nil {
		t.Fatalf("Deserialize: %v", err)
	}
	src, srcSub, tgt, tgtSub, mt := other.Header()
	if src != "svc-a" || srcSub != "1" || tgt != "svc-b" || tgtSub != "2" || mt != "ping" {
		t.Fatalf("Header() = %q %q %q %q %q", src, srcSub, tgt, tgtSub, mt)
	}
}

func TestThreadSafeContainerMergeAndCopy(t *testing.T) {
	a := NewThreadSafeContainer()
	a.Add(NewInt("x", 1))

	b := NewContainer()
	b.Add(NewInt("y", 2))
	a.Merge(b)

	if a.Size() != 2 {
		t.Fatalf("Size() after Merge = %d, want 2", a.Size())
	}

	cp := a.Copy(true)
	if cp.Size() != 2 {
		t.Fatalf("Copy().Size() = %d, want 2", cp.Size())
	}
}

func TestWrapThreadSafeContainerPreservesContents(t *testing.T) {
	c := NewContainer()
	c.SetMessageType("wrapped")
	c.Add(NewInt("x", 9))

	tsc := WrapThreadSafeContainer(c)
	if tsc.Size() != 1 {
		t.Fatalf("Size() = %d, want 1", tsc.Size())
	}
	_, _, _, _, mt := tsc.Header()
	if mt != "wrapped" {
		t.Fatalf("MessageType via Header() = %q, want wrapped", mt)
	}
}
