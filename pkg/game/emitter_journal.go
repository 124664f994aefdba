package game

import (
	"fmt"
	"log"
	"time"

	"github.com/decker502/ripples/pkg/config"
	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"
)

// JournalEntry 一个手动添加的发射点
type JournalEntry struct {
	X       float64   `yaml:"x"`
	Y       float64   `yaml:"y"`
	R       float64   `yaml:"r"`
	AddedAt time.Time `yaml:"addedAt"`
}

// journalFile 持久化格式
type journalFile struct {
	Emitters []JournalEntry `yaml:"emitters"`
}

const (
	journalObject   = "journal"
	journalProperty = "emitters"
)

// EmitterJournal 记录用户 Shift+点击添加的发射点
//
// 条目格式与场景配置中的 emitters 一致，可以直接复制到 scene.yaml；
// 启动参数 --restore-emitters 会把日志中的发射点追加到种子集合之后。
type EmitterJournal struct {
	gdataManager *gdata.Manager // 可为 nil（降级模式）
	entries      []JournalEntry
	now          func() time.Time
}

// NewEmitterJournal 创建日志并加载已有条目
func NewEmitterJournal(gdataManager *gdata.Manager) *EmitterJournal {
	j := &EmitterJournal{
		gdataManager: gdataManager,
		now:          time.Now,
	}
	if err := j.Load(); err != nil {
		log.Printf("[Journal] Warning: %v (starting empty)", err)
	}
	return j
}

// Load 从 gdata 加载日志
func (j *EmitterJournal) Load() error {
	j.entries = nil
	if j.gdataManager == nil || !j.gdataManager.ObjectPropExists(journalObject, journalProperty) {
		return nil
	}

	data, err := j.gdataManager.LoadObjectProp(journalObject, journalProperty)
	if err != nil {
		return fmt.Errorf("failed to load emitter journal: %w", err)
	}

	var f journalFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return fmt.Errorf("failed to unmarshal emitter journal: %w", err)
	}
	j.entries = f.Emitters
	log.Printf("[Journal] loaded %d emitters", len(j.entries))
	return nil
}

// Append 追加一个手动发射点并立即保存
func (j *EmitterJournal) Append(x, y float64) error {
	j.entries = append(j.entries, JournalEntry{
		X:       x,
		Y:       y,
		R:       config.ManualRadiusClass,
		AddedAt: j.now().UTC(),
	})
	return j.Save()
}

// Save 保存日志到 gdata
func (j *EmitterJournal) Save() error {
	if j.gdataManager == nil {
		return nil
	}

	data, err := yaml.Marshal(journalFile{Emitters: j.entries})
	if err != nil {
		return fmt.Errorf("failed to marshal emitter journal: %w", err)
	}
	if err := j.gdataManager.SaveObjectProp(journalObject, journalProperty, data); err != nil {
		return fmt.Errorf("failed to save emitter journal: %w", err)
	}
	return nil
}

// Clear 清空日志并保存
func (j *EmitterJournal) Clear() error {
	j.entries = nil
	return j.Save()
}

// Entries 返回全部条目
func (j *EmitterJournal) Entries() []JournalEntry {
	return j.entries
}

// EmitterConfigs 把日志转换为场景配置中的发射点格式
// 越界条目被跳过
func (j *EmitterJournal) EmitterConfigs() []config.EmitterConfig {
	out := make([]config.EmitterConfig, 0, len(j.entries))
	for _, e := range j.entries {
		if e.X < 0 || e.X > 1 || e.Y < 0 || e.Y > 1 {
			continue
		}
		r := e.R
		if r < config.RadiusClassMin || r > config.RadiusClassMax {
			r = config.ManualRadiusClass
		}
		out = append(out, config.EmitterConfig{X: e.X, Y: e.Y, R: r})
	}
	return out
}
