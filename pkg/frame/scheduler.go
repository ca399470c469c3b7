// Package frame 提供与游戏帧循环协作的调度原语
//
// Ebitengine 的 Update 每 tick 调用一次（通常每秒 60 次），所有等待都通过
// "下一帧回调"的方式协作完成，不阻塞任何线程，也不引入工作协程。
// 这是遮罩引导系统唯一的异步模型：测量等待、单帧延迟、轮询都建立在它之上。
package frame

import "errors"

// ErrPollTimeout 轮询在限定帧数内未满足条件
var ErrPollTimeout = errors.New("frame: poll timed out")

// Scheduler 帧调度器
// 持有一个待执行回调队列，宿主每帧调用一次 Update 将队列中的回调全部执行。
// 回调中再次 Post 的任务会排到下一帧，不会在当前帧内被执行。
//
// 非并发安全：所有方法都必须在帧循环所在的同一线程上调用。
type Scheduler struct {
	pending []func()
	frame   uint64 // 已执行的帧数，仅用于日志/调试
}

// NewScheduler 创建帧调度器
func NewScheduler() *Scheduler {
	return &Scheduler{}
}

// Post 将回调安排到下一帧执行
func (s *Scheduler) Post(fn func()) {
	if fn == nil {
		return
	}
	s.pending = append(s.pending, fn)
}

// Update 执行所有已安排的回调（宿主每帧调用一次）
// 执行期间新 Post 的回调留到下一帧
func (s *Scheduler) Update() {
	if len(s.pending) == 0 {
		s.frame++
		return
	}
	batch := s.pending
	s.pending = nil
	for _, fn := range batch {
		fn()
	}
	s.frame++
}

// Frame 返回已执行的帧数
func (s *Scheduler) Frame() uint64 {
	return s.frame
}

// Poll 逐帧轮询 check，直到它返回 true 后调用 done(nil)
//
// timeoutFrames 为最大轮询帧数，超过后调用 done(ErrPollTimeout)；
// timeoutFrames <= 0 表示不限帧数（调用方自行承担永不满足的风险）。
// check 在每帧回调中同步执行，首次检查发生在下一帧。
func (s *Scheduler) Poll(check func() bool, timeoutFrames int, done func(error)) {
	var step func()
	waited := 0
	step = func() {
		if check() {
			done(nil)
			return
		}
		waited++
		if timeoutFrames > 0 && waited >= timeoutFrames {
			done(ErrPollTimeout)
			return
		}
		s.Post(step)
	}
	s.Post(step)
}
