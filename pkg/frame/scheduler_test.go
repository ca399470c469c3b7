package frame

import (
	"errors"
	"testing"
)

// TestSchedulerPostRunsNextFrame 测试 Post 的回调在下一帧执行
func TestSchedulerPostRunsNextFrame(t *testing.T) {
	s := NewScheduler()
	ran := false
	s.Post(func() { ran = true })

	if ran {
		t.Error("回调不应该在 Post 时立即执行")
	}
	s.Update()
	if !ran {
		t.Error("回调应该在下一次 Update 时执行")
	}
}

// TestSchedulerRepostDeferredToNextFrame 测试回调中再次 Post 的任务推迟到下一帧
func TestSchedulerRepostDeferredToNextFrame(t *testing.T) {
	s := NewScheduler()
	count := 0
	s.Post(func() {
		count++
		s.Post(func() { count++ })
	})

	s.Update()
	if count != 1 {
		t.Errorf("第一帧后 count = %d, 期望 1（嵌套任务不得在同帧执行）", count)
	}
	s.Update()
	if count != 2 {
		t.Errorf("第二帧后 count = %d, 期望 2", count)
	}
}

// TestSchedulerOrder 测试同帧回调按 Post 顺序执行
func TestSchedulerOrder(t *testing.T) {
	s := NewScheduler()
	var order []int
	for i := 1; i <= 3; i++ {
		i := i
		s.Post(func() { order = append(order, i) })
	}
	s.Update()

	if len(order) != 3 || order[0] != 1 || order[1] != 2 || order[2] != 3 {
		t.Errorf("执行顺序 = %v, 期望 [1 2 3]", order)
	}
}

// TestSchedulerPoll 测试逐帧轮询
func TestSchedulerPoll(t *testing.T) {
	s := NewScheduler()
	ready := false
	var doneErr error
	doneCalled := 0

	s.Poll(func() bool { return ready }, 0, func(err error) {
		doneErr = err
		doneCalled++
	})

	// 条件未满足时持续轮询
	for i := 0; i < 5; i++ {
		s.Update()
	}
	if doneCalled != 0 {
		t.Fatal("条件未满足时不应该完成")
	}

	// 条件满足后下一帧完成
	ready = true
	s.Update()
	if doneCalled != 1 {
		t.Fatalf("doneCalled = %d, 期望 1", doneCalled)
	}
	if doneErr != nil {
		t.Errorf("完成错误 = %v, 期望 nil", doneErr)
	}

	// 完成后不再轮询
	s.Update()
	if doneCalled != 1 {
		t.Errorf("完成后继续回调: doneCalled = %d", doneCalled)
	}
}

// TestSchedulerPollTimeout 测试轮询超时
func TestSchedulerPollTimeout(t *testing.T) {
	s := NewScheduler()
	var doneErr error
	doneCalled := 0

	s.Poll(func() bool { return false }, 3, func(err error) {
		doneErr = err
		doneCalled++
	})

	for i := 0; i < 10; i++ {
		s.Update()
	}
	if doneCalled != 1 {
		t.Fatalf("doneCalled = %d, 期望 1", doneCalled)
	}
	if !errors.Is(doneErr, ErrPollTimeout) {
		t.Errorf("完成错误 = %v, 期望 ErrPollTimeout", doneErr)
	}
}

// TestPromiseResolveOnce 测试 Promise 只完成一次
func TestPromiseResolveOnce(t *testing.T) {
	p := NewPromise()
	calls := 0
	p.Then(func(err error) { calls++ })

	p.Resolve()
	p.Resolve()
	p.Reject(errors.New("late"))

	if calls != 1 {
		t.Errorf("回调次数 = %d, 期望 1", calls)
	}
	if p.Err() != nil {
		t.Errorf("Err() = %v, 期望 nil（后续 Reject 应被忽略）", p.Err())
	}
}

// TestPromiseThenAfterDone 测试完成后注册的回调立即执行
func TestPromiseThenAfterDone(t *testing.T) {
	p := NewPromise()
	wantErr := errors.New("boom")
	p.Reject(wantErr)

	var got error
	called := false
	p.Then(func(err error) {
		called = true
		got = err
	})

	if !called {
		t.Fatal("已完成的 Promise 上注册回调应立即执行")
	}
	if !errors.Is(got, wantErr) {
		t.Errorf("回调错误 = %v, 期望 %v", got, wantErr)
	}
}
