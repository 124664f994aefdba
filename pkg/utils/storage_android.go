//go:build android

package utils

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// EnsureStorageDir 在打开 gdata 之前创建应用私有目录下的 saves 子目录
// gdata 在 Android 上不会预先创建它，首次写入设置会失败
func EnsureStorageDir() error {
	dir := StorageDir()
	if dir == "" {
		return errors.New("cannot detect Android package name")
	}

	saves := filepath.Join(dir, "saves")
	if err := os.MkdirAll(saves, 0755); err != nil {
		return fmt.Errorf("failed to create %s: %w", saves, err)
	}

	probe := filepath.Join(saves, ".probe")
	if err := os.WriteFile(probe, nil, 0644); err != nil {
		return fmt.Errorf("%s is not writable: %w", saves, err)
	}
	return os.Remove(probe)
}

// StorageDir 返回 /data/data/{package}，无法识别包名时返回空字符串
func StorageDir() string {
	pkg := androidPackage()
	if pkg == "" {
		return ""
	}
	return filepath.Join("/data/data", pkg)
}

// androidPackage 从 /proc/self/cmdline 读取进程名（即包名）
func androidPackage() string {
	data, err := os.ReadFile("/proc/self/cmdline")
	if err != nil {
		return ""
	}
	if i := bytes.IndexByte(data, 0); i >= 0 {
		data = data[:i]
	}
	return string(bytes.TrimSpace(data))
}
