package frame

// Promise 帧循环上的一次性完成通知
//
// 与通道不同，Promise 的回调在帧循环线程上同步交付，调用方无需担心并发。
// Resolve/Reject 只有第一次调用生效，重复完成会被静默忽略（幂等完成语义，
// 与"每次调用恰好产生一次完成"的外部契约配合使用）。
type Promise struct {
	done      bool
	err       error
	callbacks []func(error)
}

// NewPromise 创建未完成的 Promise
func NewPromise() *Promise {
	return &Promise{}
}

// Resolve 以成功状态完成
func (p *Promise) Resolve() {
	p.complete(nil)
}

// Reject 以失败状态完成
func (p *Promise) Reject(err error) {
	p.complete(err)
}

func (p *Promise) complete(err error) {
	if p.done {
		return
	}
	p.done = true
	p.err = err
	callbacks := p.callbacks
	p.callbacks = nil
	for _, fn := range callbacks {
		fn(err)
	}
}

// Then 注册完成回调
// 如果 Promise 已完成，回调立即以最终状态同步执行
func (p *Promise) Then(fn func(error)) *Promise {
	if fn == nil {
		return p
	}
	if p.done {
		fn(p.err)
		return p
	}
	p.callbacks = append(p.callbacks, fn)
	return p
}

// Done 返回是否已完成
func (p *Promise) Done() bool {
	return p.done
}

// Err 返回完成错误（未完成或成功时为 nil）
func (p *Promise) Err() error {
	return p.err
}
