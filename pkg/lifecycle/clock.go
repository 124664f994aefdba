package lifecycle

// SimClock 可暂停的模拟时钟
//
// 模拟时间 = 宿主时间 - 累计暂停时长。暂停期间模拟时间冻结，
// 恢复后从冻结点继续，因此暂停会把下一次发射整体推迟暂停时长，不会补发。
type SimClock struct {
	excluded float64
	pausedAt float64
	paused   bool
}

// Now 返回宿主时间 host 对应的模拟时间（秒）
func (c *SimClock) Now(host float64) float64 {
	if c.paused {
		return c.pausedAt - c.excluded
	}
	return host - c.excluded
}

// Pause 冻结时钟，重复调用无效
func (c *SimClock) Pause(host float64) {
	if c.paused {
		return
	}
	c.paused = true
	c.pausedAt = host
}

// Resume 恢复时钟，暂停时长计入 excluded
func (c *SimClock) Resume(host float64) {
	if !c.paused {
		return
	}
	if host > c.pausedAt {
		c.excluded += host - c.pausedAt
	}
	c.paused = false
}

// Paused 返回时钟是否处于暂停
func (c *SimClock) Paused() bool {
	return c.paused
}
