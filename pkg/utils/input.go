// Package utils 提供通用工具函数
package utils

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// 保留按键：不参与填充/描边切换
const (
	// KeyToggleFullscreen 切换全屏（由 App 处理）
	KeyToggleFullscreen = ebiten.KeyF11
	// KeyToggleHUD 切换调试信息面板
	KeyToggleHUD = ebiten.KeyF3
)

// DragSample 一次拖拽采样（屏幕坐标）
type DragSample struct {
	X, Y float64
}

// FrameInput 一帧内收集到的全部输入
type FrameInput struct {
	// Drags 本帧的拖拽采样，按发生顺序排列
	Drags []DragSample
	// FillToggles 本帧切换填充模式的次数
	FillToggles int
	// ToggleHUD 本帧是否切换调试面板
	ToggleHUD bool
}

// InputSource 输入来源
// 每帧调用一次 Poll，返回本帧的输入
type InputSource interface {
	Poll() FrameInput
}

// IsReservedKey 判断按键是否为保留按键
func IsReservedKey(key ebiten.Key) bool {
	return key == KeyToggleFullscreen || key == KeyToggleHUD
}

// CountKeyToggles 统计本帧新按下的按键带来的切换
//
// 除保留按键外，每个新按下的按键都切换一次填充模式；
// KeyToggleHUD 每按一次翻转一次调试面板。
func CountKeyToggles(keys []ebiten.Key) (fillToggles int, toggleHUD bool) {
	for _, key := range keys {
		switch {
		case key == KeyToggleHUD:
			toggleHUD = !toggleHUD
		case IsReservedKey(key):
		default:
			fillToggles++
		}
	}
	return fillToggles, toggleHUD
}

// PointerInput 基于 ebiten 的输入来源
// 同时支持鼠标、触摸和键盘
type PointerInput struct {
	drag *DragManager
	keys []ebiten.Key

	// touchToggles 双指触摸是否切换填充模式（仅移动端）
	touchToggles bool
}

// NewPointerInput 创建输入来源
func NewPointerInput() *PointerInput {
	return &PointerInput{
		drag:         NewDragManager(),
		touchToggles: IsMobile(),
	}
}

// Poll 实现 InputSource 接口
func (p *PointerInput) Poll() FrameInput {
	var in FrameInput

	p.drag.Update()
	if p.drag.IsDragging() && p.drag.Moved() {
		info := p.drag.GetInfo()
		in.Drags = append(in.Drags, DragSample{X: float64(info.CurrentX), Y: float64(info.CurrentY)})
	}

	p.keys = inpututil.AppendJustPressedKeys(p.keys[:0])
	in.FillToggles, in.ToggleHUD = CountKeyToggles(p.keys)

	// 移动端没有键盘：双指触摸视为一次切换
	if p.touchToggles && len(inpututil.AppendJustPressedTouchIDs(nil)) > 0 && len(ebiten.AppendTouchIDs(nil)) >= 2 {
		in.FillToggles++
	}

	return in
}

// ============================================================================
// 拖拽状态管理器 - 跟踪鼠标/触摸的按下、移动与释放
// ============================================================================

// DragState 拖拽状态
type DragState int

const (
	// DragStateNone 无拖拽
	DragStateNone DragState = iota
	// DragStateStarted 拖拽开始（刚按下）
	DragStateStarted
	// DragStateDragging 拖拽中（按住移动）
	DragStateDragging
	// DragStateEnded 拖拽结束（释放）
	DragStateEnded
)

// DragInfo 拖拽信息
type DragInfo struct {
	// State 当前拖拽状态
	State DragState
	// StartX, StartY 拖拽起始位置（屏幕坐标）
	StartX, StartY int
	// CurrentX, CurrentY 当前位置（屏幕坐标）
	CurrentX, CurrentY int
	// TouchID 当前跟踪的触摸ID（-1表示鼠标）
	TouchID ebiten.TouchID
	// IsTouchInput 是否为触摸输入（区分触摸和鼠标）
	IsTouchInput bool
}

// DragManager 拖拽管理器
// 跟踪触摸/鼠标的拖拽状态，并记录本帧指针是否移动
type DragManager struct {
	info  DragInfo
	moved bool
}

// NewDragManager 创建拖拽管理器
func NewDragManager() *DragManager {
	return &DragManager{
		info: DragInfo{
			State:   DragStateNone,
			TouchID: -1,
		},
	}
}

// Update 更新拖拽状态（每帧调用一次）
func (dm *DragManager) Update() {
	currentTouchIDs := ebiten.AppendTouchIDs(nil)
	dm.moved = false

	switch dm.info.State {
	case DragStateNone:
		dm.checkDragStart()

	case DragStateStarted, DragStateDragging:
		if dm.checkDragEnd(currentTouchIDs) {
			dm.info.State = DragStateEnded
			return
		}
		dm.info.State = DragStateDragging
		dm.updateCurrentPosition(currentTouchIDs)

	case DragStateEnded:
		// 结束状态只持续一帧，下一帧重置并检测新的拖拽
		dm.Reset()
		dm.checkDragStart()
	}
}

// checkDragStart 检测拖拽开始
func (dm *DragManager) checkDragStart() {
	// 优先检测触摸输入
	justPressedTouchIDs := inpututil.AppendJustPressedTouchIDs(nil)
	if len(justPressedTouchIDs) > 0 {
		touchID := justPressedTouchIDs[0]
		x, y := ebiten.TouchPosition(touchID)
		dm.start(x, y, touchID, true)
		return
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		dm.start(x, y, -1, false)
	}
}

func (dm *DragManager) start(x, y int, touchID ebiten.TouchID, isTouch bool) {
	dm.info = DragInfo{
		State:        DragStateStarted,
		StartX:       x,
		StartY:       y,
		CurrentX:     x,
		CurrentY:     y,
		TouchID:      touchID,
		IsTouchInput: isTouch,
	}
}

// checkDragEnd 检测拖拽结束
func (dm *DragManager) checkDragEnd(currentTouchIDs []ebiten.TouchID) bool {
	if dm.info.IsTouchInput {
		for _, id := range currentTouchIDs {
			if id == dm.info.TouchID {
				return false // 触摸仍然活跃
			}
		}
		return true
	}

	return !ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
}

// updateCurrentPosition 更新当前位置
func (dm *DragManager) updateCurrentPosition(currentTouchIDs []ebiten.TouchID) {
	x, y := dm.info.CurrentX, dm.info.CurrentY
	if dm.info.IsTouchInput {
		for _, id := range currentTouchIDs {
			if id == dm.info.TouchID {
				x, y = ebiten.TouchPosition(id)
				break
			}
		}
	} else {
		x, y = ebiten.CursorPosition()
	}
	dm.MoveTo(x, y)
}

// MoveTo 记录指针的新位置，位置发生变化时 Moved 返回 true
func (dm *DragManager) MoveTo(x, y int) {
	dm.moved = x != dm.info.CurrentX || y != dm.info.CurrentY
	dm.info.CurrentX, dm.info.CurrentY = x, y
}

// Reset 重置拖拽状态
func (dm *DragManager) Reset() {
	dm.info = DragInfo{
		State:   DragStateNone,
		TouchID: -1,
	}
	dm.moved = false
}

// GetInfo 获取完整拖拽信息
func (dm *DragManager) GetInfo() DragInfo {
	return dm.info
}

// IsDragging 是否正在拖拽
func (dm *DragManager) IsDragging() bool {
	return dm.info.State == DragStateDragging
}

// Moved 本帧指针是否移动过
func (dm *DragManager) Moved() bool {
	return dm.moved
}
