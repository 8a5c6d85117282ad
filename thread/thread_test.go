package thread

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/ignite-laboratories/centurion"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func newMutex(t *testing.T) *Mutex {
	t.Helper()
	m, err := NewMutex()
	if err != nil {
		t.Fatalf("NewMutex: %v", err)
	}
	t.Cleanup(m.Close)
	return m
}

func TestScopedLockThenTryLock(t *testing.T) {
	m := newMutex(t)

	lock, err := ScopedLock(m)
	if err != nil || !lock.Locked() {
		t.Fatalf("ScopedLock = %v, %v", lock, err)
	}
	lock.Release()
	lock.Release()

	try := TryLock(m)
	if !try.Locked() {
		t.Fatalf("the mutex should be lockable after the scoped lock is released")
	}
	try.Release()
}

func TestScopedReleaseLogsUnlockFailure(t *testing.T) {
	core, logs := observer.New(zap.WarnLevel)
	centurion.SetLogger(zap.New(core))
	t.Cleanup(func() { centurion.SetLogger(nil) })

	guard := &Scoped{mutex: MutexHandle(nil), locked: true}
	guard.Release()
	if guard.Locked() {
		t.Fatalf("Release must clear the guard even when unlocking fails")
	}
	entries := logs.FilterMessage("scoped unlock failed").All()
	if len(entries) != 1 {
		t.Fatalf("logged %d unlock failures, want 1", len(entries))
	}
	if _, ok := entries[0].ContextMap()["error"]; !ok {
		t.Fatalf("the unlock failure carries no error field")
	}

	guard.Release()
	if logs.Len() != 1 {
		t.Fatalf("a second Release logged again")
	}
}

func TestMutexIsRecursive(t *testing.T) {
	m := newMutex(t)
	if err := m.Lock(); err != nil {
		t.Fatalf("Lock: %v", err)
	}
	if status := m.TryLock(); status != LockSuccess {
		t.Fatalf("relocking on the owning thread gave %v", status)
	}
	for range 2 {
		if err := m.Unlock(); err != nil {
			t.Fatalf("Unlock: %v", err)
		}
	}
}

func TestTryLockContended(t *testing.T) {
	m := newMutex(t)
	held := make(chan struct{})
	release := make(chan struct{})
	done := make(chan struct{})
	go func() {
		defer close(done)
		lock, err := ScopedLock(m)
		if err != nil {
			t.Errorf("ScopedLock: %v", err)
			close(held)
			return
		}
		close(held)
		<-release
		lock.Release()
	}()
	<-held

	try := TryLock(m)
	if try.Locked() {
		t.Fatalf("the mutex is held by another thread")
	}
	if status := m.TryLock(); status != LockTimedOut {
		t.Fatalf("TryLock = %v", status)
	}
	close(release)
	<-done
}

func TestSemaphore(t *testing.T) {
	s, err := NewSemaphore(1)
	if err != nil {
		t.Fatalf("NewSemaphore: %v", err)
	}
	defer s.Close()

	if s.Tokens() != 1 {
		t.Fatalf("Tokens = %d", s.Tokens())
	}
	if status := s.TryAcquire(); status != LockSuccess {
		t.Fatalf("TryAcquire = %v", status)
	}
	if status := s.TryAcquire(); status != LockTimedOut {
		t.Fatalf("TryAcquire on an empty semaphore = %v", status)
	}
	if status := s.AcquireTimeout(10 * time.Millisecond); status != LockTimedOut {
		t.Fatalf("AcquireTimeout = %v", status)
	}
	if err := s.Release(); err != nil {
		t.Fatalf("Release: %v", err)
	}
	if err := s.Acquire(); err != nil {
		t.Fatalf("Acquire: %v", err)
	}
	if s.Tokens() != 0 {
		t.Fatalf("Tokens = %d", s.Tokens())
	}
}

func TestConditionSignal(t *testing.T) {
	m := newMutex(t)
	c, err := NewCondition()
	if err != nil {
		t.Fatalf("NewCondition: %v", err)
	}
	defer c.Close()

	lock, _ := ScopedLock(m)
	if status := c.WaitTimeout(m, 10*time.Millisecond); status != LockTimedOut {
		t.Fatalf("WaitTimeout = %v", status)
	}
	lock.Release()

	var ready atomic.Bool
	waiter := Start("waiter", func() {
		lock, err := ScopedLock(m)
		if err != nil {
			t.Errorf("ScopedLock: %v", err)
			return
		}
		defer lock.Release()
		for !ready.Load() {
			_ = c.Wait(m)
		}
	})

	lock, _ = ScopedLock(m)
	ready.Store(true)
	_ = c.Broadcast()
	lock.Release()

	waiter.Join()
	if !waiter.Finished() {
		t.Fatalf("the waiter should have observed the broadcast")
	}
}

func TestThreadJoinDetach(t *testing.T) {
	var ran atomic.Bool
	th := Start("worker", func() { ran.Store(true) })
	if th.Name != "worker" || !th.Joinable() {
		t.Fatalf("a new thread is joinable")
	}
	th.Join()
	th.Join()
	th.Detach()
	if th.Joinable() || !ran.Load() || !th.Finished() {
		t.Fatalf("Join should wait for the task and end joinability")
	}

	other := Start("detached", func() {})
	if other.ID == th.ID {
		t.Fatalf("threads need distinct ids")
	}
	other.Detach()
	other.Join()
	if other.Joinable() {
		t.Fatalf("a detached thread is not joinable")
	}
}

func TestEnumNames(t *testing.T) {
	if LockTimedOut.String() != "TimedOut" || PriorityTimeCritical.String() != "TimeCritical" || !LockSuccess.Ok() {
		t.Fatalf("unexpected names")
	}
	defer func() {
		if recover() == nil {
			t.Fatalf("undeclared priorities must panic")
		}
	}()
	_ = Priority(9).String()
}
