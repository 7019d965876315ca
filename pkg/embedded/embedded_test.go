package embedded

import (
	"embed"
	"testing"
)

//go:embed testdata
var testFS embed.FS

// TestReadFileRequiresInit 测试未初始化时的错误提示
func TestReadFileRequiresInit(t *testing.T) {
	initialized = false
	defer func() { initialized = false }()

	if _, err := ReadFile("data/presets.yaml"); err == nil {
		t.Error("未初始化时 ReadFile 应返回错误")
	}
	if _, err := Open("data/presets.yaml"); err == nil {
		t.Error("未初始化时 Open 应返回错误")
	}
}

// TestPathValidation 测试路径前缀校验和格式标准化
func TestPathValidation(t *testing.T) {
	Init(testFS)
	defer func() { initialized = false }()

	// 前缀不是 data/ 的路径一律拒绝
	if _, err := ReadFile("assets/icon.png"); err == nil {
		t.Error("非 data/ 前缀的路径应返回错误")
	}
	if Exists("secrets/key") {
		t.Error("非法前缀不应报告存在")
	}

	// 不存在的 data/ 路径
	if Exists("data/nonexistent.yaml") {
		t.Error("不存在的文件不应报告存在")
	}
}
