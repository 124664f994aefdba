package game

import (
	"log"

	"github.com/decker502/ripples/pkg/utils"
	"github.com/quasilyte/gdata/v2"
)

// AppName gdata 存储使用的应用名
const AppName = "ripples"

// OpenStorage 打开 gdata 存储
// 失败时返回 nil，调用方进入仅内存的降级模式
func OpenStorage(appName string) *gdata.Manager {
	if err := utils.EnsureStorageDir(); err != nil {
		log.Printf("[Storage] Warning: %v", err)
	}

	manager, err := gdata.Open(gdata.Config{
		AppName: appName,
	})
	if err != nil {
		log.Printf("[Storage] Warning: gdata unavailable: %v (settings will not persist)", err)
		return nil
	}
	return manager
}
