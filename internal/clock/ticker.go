package clock

import (
	"context"
	"time"

	"github.com/jonboulle/clockwork"
)

// Repeat 每隔 interval 调用一次 fn，直到 ctx 被取消。
// fn 在后台 goroutine 中执行，涉及 UI 的操作需要调用方自行切回 UI 线程。
// 返回的 channel 在 goroutine 退出、ticker 停止后关闭；取消之后不会再调用 fn。
func Repeat(ctx context.Context, clk clockwork.Clock, interval time.Duration, fn func(time.Time)) <-chan struct{} {
	ticker := clk.NewTicker(interval)
	done := make(chan struct{})

	go func() {
		defer close(done)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case t := <-ticker.Chan():
				// 两个 case 同时就绪时 select 随机选择
				if ctx.Err() != nil {
					return
				}
				fn(t)
			}
		}
	}()

	return done
}
