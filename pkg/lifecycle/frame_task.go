package lifecycle

// FrameTask 协作式的逐帧任务
//
// 用单个 pending 标志表示“已请求下一帧”。宿主每个帧边界调用 Take，
// 只有存在未取消的请求时才执行一帧；帧执行完毕后由执行方重新 Request。
// 暂停和销毁只需 Cancel，不需要追踪回调链。
type FrameTask struct {
	pending bool
}

// Request 请求下一帧，已有未决请求时返回 false
func (f *FrameTask) Request() bool {
	if f.pending {
		return false
	}
	f.pending = true
	return true
}

// Cancel 取消未决请求，没有未决请求时返回 false（幂等）
func (f *FrameTask) Cancel() bool {
	if !f.pending {
		return false
	}
	f.pending = false
	return true
}

// Take 在帧边界消费未决请求
func (f *FrameTask) Take() bool {
	if !f.pending {
		return false
	}
	f.pending = false
	return true
}

// Pending 返回是否存在未决请求
func (f *FrameTask) Pending() bool {
	return f.pending
}
